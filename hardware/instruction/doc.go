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

// Package instruction defines the binary layout of an instruction word and
// the classification of instructions used by the control units.
//
// The layout is MIPS-style:
//
//	R-type  | opcode:6 | rs:5 | rt:5 | rd:5 | shamt:5 | funct:6 |
//	I-type  | opcode:6 | rs:5 | rt:5 |       immediate:16       |
//	J-type  | opcode:6 |              address:26                |
//
// Decode() extracts every field from a word regardless of format. The
// immediate field is sign extended to 32 bits.
//
// Classify() sorts an instruction into one of the classes that the control
// units distinguish between. An unrecognised opcode, or an R-type
// instruction with an unrecognised function code, is a decode error.
//
// The Encode functions build instruction words and are mostly useful when
// writing test programs.
package instruction
