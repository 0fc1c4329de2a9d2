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

// Package registers implements the storage cells of the datapath: the
// general purpose Register, the ProgramCounter and the 32 entry RegisterFile.
//
// Register and ProgramCounter both implement the Clocked interface. A Clocked
// value only changes when it is written to while its enable gate is set. This
// models the latching of a value on a clock edge rather than an ordinary
// variable assignment. For example:
//
//	r := registers.NewRegister("ALU_OUT", 32)
//	r.Write(10)        // no effect, enable is low
//	r.SetEnable(true)
//	r.Write(10)        // r.Value() == 10
//
// The Latch() function performs the common enable/write/disable sequence.
//
// The RegisterFile is gated separately with a single write enable and a write
// register selector. Register zero is hard-wired to zero and writes to it are
// always discarded.
package registers
