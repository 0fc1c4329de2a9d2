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


// Package loader is used to specify the program that is to be attached to
// the simulated machine.
//
// Two formats are supported. A hex file contains one instruction word per
// line written in hexadecimal, with or without the 0x prefix. Blank lines
// are ignored and a '#' begins a comment that runs to the end of the line:
//
//	# add $3, $1, $2
//	0x00221820
//	fc000000   # halt
//
// A YAML manifest describes where the program is placed and the state of
// registers and memory before it runs:
//
//	name: sum
//	origin: 0x0
//	words: [0x8c010100, 0x8c020104, 0x00221820, 0xfc000000]
//	registers:
//	  4: 100
//	memory:
//	  0x100: 10
//	  0x104: 20
//
// Instead of words a manifest can name a hex file with the hex field. The
// path is relative to the manifest.
//
// The simplest use of the package:
//
//	ld := loader.NewLoader("programs/sum.hex", "AUTO")
//	prg, err := ld.Load()
//
// Filenames with an http or https scheme are fetched over the network.
package loader
