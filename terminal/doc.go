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


// Package terminal is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into cbreak mode so that a stepped simulation can wait
// for a single keypress between steps.
//
// The key pressed decides how the simulation continues:
//
//	space, return    step once more
//	r                run without waiting
//	q, escape        stop
package terminal
