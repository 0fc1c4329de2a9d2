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

package registers

// ProgramCounter holds the address of the next instruction to fetch. It is a
// 32 bit Register with an additional Increment() operation.
type ProgramCounter struct {
	reg Register
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter() ProgramCounter {
	return ProgramCounter{reg: NewRegister("PC", 32)}
}

func (pc ProgramCounter) String() string {
	return pc.reg.String()
}

// Label implements the Clocked interface.
func (pc ProgramCounter) Label() string {
	return pc.reg.Label()
}

// Value implements the Clocked interface.
func (pc ProgramCounter) Value() uint32 {
	return pc.reg.Value()
}

// SetEnable implements the Clocked interface.
func (pc *ProgramCounter) SetEnable(enable bool) {
	pc.reg.SetEnable(enable)
}

// Enabled implements the Clocked interface.
func (pc ProgramCounter) Enabled() bool {
	return pc.reg.Enabled()
}

// Write implements the Clocked interface.
func (pc *ProgramCounter) Write(val uint32) {
	pc.reg.Write(val)
}

// Reset implements the Clocked interface.
func (pc *ProgramCounter) Reset() {
	pc.reg.Reset()
}

// Increment adds amount to the program counter, wrapping at 32 bits. Like
// Write() it has no effect unless the enable gate is set.
func (pc *ProgramCounter) Increment(amount uint32) {
	pc.reg.Write(pc.reg.Value() + amount)
}
