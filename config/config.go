// This file is part of mipsdatapath.
//
// mipsdatapath is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mipsdatapath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mipsdatapath.  If not, see <https://www.gnu.org/licenses/>.


package config

import (
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/hardware"
	"github.com/jetsetilly/mipsdatapath/hardware/memory"
	"github.com/jetsetilly/mipsdatapath/loader"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// List of configuration keys.
const (
	KeyMode          = "mode"
	KeyMemoryWords   = "memory.words"
	KeyProgramOrigin = "program.origin"
	KeyProgramFormat = "program.format"
	KeyRunLimit      = "run.limit"
	KeyLogFile       = "log.file"
	KeyLogEcho       = "log.echo"
	KeyLogMaxSize    = "log.maxsize"
)

// EnvPrefix is the prefix for environment variables.
const EnvPrefix = "MIPSDP"

// Sentinal errors.
const (
	ReadError       = "config: %v"
	InvalidMemory   = "config: memory.words must be positive (%d)"
	UnalignedOrigin = "config: program.origin is not word aligned (%#08x)"
)

// NewViper returns a viper instance with the default values set and the
// environment bound.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyMode, hardware.SingleCycle.String())
	v.SetDefault(KeyMemoryWords, memory.DefaultSize)
	v.SetDefault(KeyProgramOrigin, 0)
	v.SetDefault(KeyProgramFormat, loader.FormatAuto)
	v.SetDefault(KeyRunLimit, 10000)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogEcho, false)
	v.SetDefault(KeyLogMaxSize, 10)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile reads the configuration file into the viper instance. An empty
// filename is not an error and nothing is read.
func ReadFile(v *viper.Viper, filename string) error {
	if filename == "" {
		return nil
	}
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		return curated.Errorf(ReadError, err)
	}
	return nil
}

// LoadEnv sets environment variables from the dotenv file. Variables that
// are already set are not changed. An empty filename is not an error.
func LoadEnv(filename string) error {
	if filename == "" {
		return nil
	}
	if err := godotenv.Load(filename); err != nil {
		return curated.Errorf(ReadError, err)
	}
	return nil
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"mode":    KeyMode,
	"memory":  KeyMemoryWords,
	"origin":  KeyProgramOrigin,
	"format":  KeyProgramFormat,
	"limit":   KeyRunLimit,
	"log":     KeyLogFile,
	"echo":    KeyLogEcho,
	"logsize": KeyLogMaxSize,
}

// AddFlags adds the configuration flags to the flag set.
func AddFlags(flags *pflag.FlagSet) {
	flags.String("mode", hardware.SingleCycle.String(), "processor mode: single or multi")
	flags.Int("memory", memory.DefaultSize, "size of memory in words")
	flags.Uint32("origin", 0, "load address of hex programs")
	flags.String("format", loader.FormatAuto, "program format: AUTO, HEX or YAML")
	flags.Int("limit", 10000, "maximum number of steps to run (zero for no limit)")
	flags.String("log", "", "write the log to file")
	flags.Bool("echo", false, "echo the log to stderr")
	flags.Int("logsize", 10, "maximum size of the log file in megabytes before rotation")
}

// BindFlags binds any flags in the set that have a configuration key. Flags
// that have not been changed on the command line do not override the other
// sources.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if key, ok := flagKeys[f.Name]; ok {
			if e := v.BindPFlag(key, f); e != nil {
				err = curated.Errorf(ReadError, e)
			}
		}
	})
	return err
}

// Settings are the resolved configuration values.
type Settings struct {
	Mode        hardware.Mode
	MemoryWords int
	Origin      uint32
	Format      string
	RunLimit    int
	LogFile     string
	LogEcho     bool
	LogMaxSize  int
}

// Resolve the configuration values in the viper instance.
func Resolve(v *viper.Viper) (Settings, error) {
	mode, err := hardware.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Mode:        mode,
		MemoryWords: v.GetInt(KeyMemoryWords),
		Origin:      v.GetUint32(KeyProgramOrigin),
		Format:      v.GetString(KeyProgramFormat),
		RunLimit:    v.GetInt(KeyRunLimit),
		LogFile:     v.GetString(KeyLogFile),
		LogEcho:     v.GetBool(KeyLogEcho),
		LogMaxSize:  v.GetInt(KeyLogMaxSize),
	}

	if s.MemoryWords <= 0 {
		return Settings{}, curated.Errorf(InvalidMemory, s.MemoryWords)
	}
	if s.Origin&0x03 != 0 {
		return Settings{}, curated.Errorf(UnalignedOrigin, s.Origin)
	}

	return s, nil
}
