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


// Package paths locates the resources used by mipsdatapath. A .mipsdatapath
// directory in the current directory takes precedence over the mipsdatapath
// directory in the user's configuration directory.
package paths

import (
	"os"
	"path/filepath"
)

const localResourcePath = ".mipsdatapath"

// ConfigFile is the name of the configuration file looked for by
// DefaultConfig().
const ConfigFile = "config.yaml"

// ResourcePath returns the resource with the base path prepended. Neither the
// base path nor the resource is checked for existence.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// DefaultConfig returns the path of the configuration file if it exists. An
// empty string is returned otherwise.
func DefaultConfig() string {
	fn := ResourcePath(ConfigFile)
	if info, err := os.Stat(fn); err == nil && !info.IsDir() {
		return fn
	}
	return ""
}

func basePath() string {
	if info, err := os.Stat(localResourcePath); err == nil && info.IsDir() {
		return localResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return localResourcePath
	}
	return filepath.Join(cnf, localResourcePath[1:])
}
