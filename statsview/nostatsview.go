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


//go:build !statsview
// +build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch explains that the statsview server is not available in this build.
func Launch(output io.Writer) {
	fmt.Fprintf(output, "stats server not available. rebuild with the statsview tag to serve %s%s\n", Address, url)
}

// Stop has no effect in this build.
func Stop() {
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
