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


package loader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/logger"
)

// List of program formats.
const (
	FormatAuto = "AUTO"
	FormatHex  = "HEX"
	FormatYAML = "YAML"
)

// Sentinal errors.
const (
	UnknownFormat     = "loader: unknown program format (%s)"
	UnsupportedScheme = "loader: unsupported URL scheme (%s)"
	UnexpectedHash    = "loader: unexpected hash value"
)

// Loader is used to specify the program to attach to the machine.
type Loader struct {
	// filename or URL of the program
	Filename string

	// one of the Format* values
	Format string

	// expected hash of the program data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// If format is "AUTO" or the empty string the format is decided by the
// filename extension. The extensions .yaml and .yml indicate a manifest.
// Every other extension indicates a hex file.
func NewLoader(filename string, format string) Loader {
	ld := Loader{
		Filename: filename,
		Format:   FormatHex,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		ld.Format = format
	} else {
		switch strings.ToUpper(path.Ext(filename)) {
		case ".YAML":
			fallthrough
		case ".YML":
			ld.Format = FormatYAML
		}
	}

	return ld
}

// ShortName returns the filename without the path and extension.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// read the program data from the filename or URL.
func (ld *Loader) read() error {
	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	case "file":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash)
	}
	ld.Hash = hash

	return nil
}

// Load the program data and parse it according to the format. Subsequent
// calls parse the data already loaded.
func (ld *Loader) Load() (Program, error) {
	if !ld.HasLoaded() {
		if err := ld.read(); err != nil {
			return Program{}, err
		}
	}

	var p Program
	var err error

	switch ld.Format {
	case FormatHex:
		p, err = hexProgram(ld.ShortName(), ld.Data)
	case FormatYAML:
		p, err = yamlProgram(ld.ShortName(), filepath.Dir(ld.Filename), ld.Data)
	default:
		return Program{}, curated.Errorf(UnknownFormat, ld.Format)
	}
	if err != nil {
		return Program{}, err
	}

	if err := p.Check(); err != nil {
		return Program{}, err
	}

	p.Hash = ld.Hash
	logger.Logf(logger.Allow, "loader", "%s (%s)", p, ld.Format)

	return p, nil
}
