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

// Package memory implements the single memory shared by instructions and
// data.
//
// Memory is word addressed. Addresses given to Read(), Write(), Peek() and
// Poke() are byte addresses and the lower two bits are ignored. An address
// beyond the end of memory is an error. It does not wrap around.
//
// Read() and Write() are the operations used by the datapath and are subject
// to the read and write enable gates. A gated-off access does not touch
// memory at all, so an out of range address is not an error in that case.
//
// Peek() and Poke() ignore the gates and are meant for operations outside of
// the normal operation of the machine: loading programs, presetting data and
// inspecting memory from a debugging tool. Load() and Dump() are built on the
// same principle.
package memory
