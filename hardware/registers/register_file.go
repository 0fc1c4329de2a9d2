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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
)

// NumRegisters is the number of general purpose registers in the register
// file.
const NumRegisters = 32

// ReturnAddress is the register written to by the jump-and-link instruction.
const ReturnAddress = 31

// Sentinal error returned when a register number is outside the register file.
const RegisterOutOfRange = "registers: register number out of range (%d)"

// RegisterFile is the bank of general purpose registers.
type RegisterFile struct {
	registers [NumRegisters]Register

	writeEnable   bool
	writeRegister int
}

// NewRegisterFile is the preferred method of initialisation for the
// RegisterFile type.
func NewRegisterFile() RegisterFile {
	rf := RegisterFile{}
	for i := range rf.registers {
		rf.registers[i] = NewRegister(fmt.Sprintf("R%d", i), 32)
	}
	return rf
}

func (rf RegisterFile) String() string {
	s := strings.Builder{}
	for i := range rf.registers {
		s.WriteString(fmt.Sprintf("R%-2d: %#08x", i, rf.registers[i].Value()))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	return s.String()
}

func checkRegister(n int) error {
	if n < 0 || n >= NumRegisters {
		return curated.Errorf(RegisterOutOfRange, n)
	}
	return nil
}

// Read returns the value of register n. Reading is not gated.
func (rf RegisterFile) Read(n int) (uint32, error) {
	if err := checkRegister(n); err != nil {
		return 0, err
	}
	return rf.registers[n].Value(), nil
}

// SetWriteEnable sets the write enable gate for the register file.
func (rf *RegisterFile) SetWriteEnable(enable bool) {
	rf.writeEnable = enable
}

// WriteEnabled returns the state of the write enable gate.
func (rf RegisterFile) WriteEnabled() bool {
	return rf.writeEnable
}

// SetWriteRegister selects the register that will be updated by the next
// call to Write().
func (rf *RegisterFile) SetWriteRegister(n int) error {
	if err := checkRegister(n); err != nil {
		return err
	}
	rf.writeRegister = n
	return nil
}

// WriteRegister returns the currently selected write register.
func (rf RegisterFile) WriteRegister() int {
	return rf.writeRegister
}

// Write the value to the selected write register. Nothing happens if the
// write enable gate is not set or if the selected register is register zero.
func (rf *RegisterFile) Write(val uint32) {
	if !rf.writeEnable || rf.writeRegister == 0 {
		return
	}
	Latch(&rf.registers[rf.writeRegister], val)
}

// Poke sets the value of register n without regard to the write enable gate.
// Register zero remains hard-wired to zero. Used to preset register values
// before a program runs.
func (rf *RegisterFile) Poke(n int, val uint32) error {
	if err := checkRegister(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	Latch(&rf.registers[n], val)
	return nil
}

// Values returns a copy of every register value.
func (rf RegisterFile) Values() [NumRegisters]uint32 {
	var v [NumRegisters]uint32
	for i := range rf.registers {
		v[i] = rf.registers[i].Value()
	}
	return v
}

// Reset sets all registers to zero and lowers the write enable gate.
func (rf *RegisterFile) Reset() {
	for i := range rf.registers {
		rf.registers[i].Reset()
	}
	rf.writeEnable = false
	rf.writeRegister = 0
}
