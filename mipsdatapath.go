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


package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/mipsdatapath/config"
	"github.com/jetsetilly/mipsdatapath/logger"
	"github.com/jetsetilly/mipsdatapath/paths"
	"github.com/jetsetilly/mipsdatapath/statsview"
	"github.com/jetsetilly/mipsdatapath/version"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// session is shared by every command. It is filled in before the command's
// RunE function is called.
type session struct {
	settings config.Settings
	stdout   io.Writer
	stderr   io.Writer

	// closed when the command completes
	logFile io.Closer
}

// setupLogging echoes the central log to the log file and/or stderr as
// required by the settings.
func (s *session) setupLogging() {
	var echo []io.Writer

	if s.settings.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   s.settings.LogFile,
			MaxSize:    s.settings.LogMaxSize,
			MaxBackups: 3,
		}
		s.logFile = lj
		echo = append(echo, lj)
	}

	if s.settings.LogEcho {
		echo = append(echo, s.stderr)
	}

	switch len(echo) {
	case 0:
		logger.SetEcho(nil, false)
	case 1:
		logger.SetEcho(echo[0], false)
	default:
		logger.SetEcho(io.MultiWriter(echo...), false)
	}
}

// wrap the RunE function of a command so that the session is cleaned up
// however the command ends.
func (s *session) wrap(f func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer s.cleanup()
		return f(cmd, args)
	}
}

func (s *session) cleanup() {
	logger.SetEcho(nil, false)
	if s.logFile != nil {
		_ = s.logFile.Close()
		s.logFile = nil
	}
	statsview.Stop()
}

func newRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	s := &session{
		stdout: stdout,
		stderr: stderr,
	}

	var configFile string
	var envFile string
	var stats bool

	root := &cobra.Command{
		Use:     version.ApplicationName,
		Version: version.String(),
		Short:   "MIPS datapath simulator",
		Long: `mipsdatapath simulates the single-cycle and multi-cycle datapath of a small
MIPS-like processor. Programs are hex files of instruction words or YAML
manifests describing the program and the initial machine state.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				configFile = paths.DefaultConfig()
			}

			if err := config.LoadEnv(envFile); err != nil {
				return err
			}

			v := config.NewViper()
			if err := config.ReadFile(v, configFile); err != nil {
				return err
			}
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			var err error
			s.settings, err = config.Resolve(v)
			if err != nil {
				return err
			}

			s.setupLogging()

			if stats {
				statsview.Launch(s.stdout)
			}

			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "configuration file (default "+paths.ResourcePath(paths.ConfigFile)+")")
	flags.StringVar(&envFile, "env", "", "dotenv file of MIPSDP_ variables")
	flags.BoolVar(&stats, "statsview", false, "launch the runtime statistics server")
	config.AddFlags(flags)

	root.AddCommand(newRunCommand(s))
	root.AddCommand(newStepCommand(s))
	root.AddCommand(newWatchCommand(s))
	root.AddCommand(newDumpCommand(s))

	return root
}

func main() {
	root := newRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
}
