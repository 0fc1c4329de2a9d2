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
)

// Clocked is implemented by storage cells that only change value on a write
// made while the enable gate is set.
type Clocked interface {
	Label() string
	Value() uint32
	SetEnable(enable bool)
	Enabled() bool
	Write(val uint32)
	Reset()
}

// Latch writes val to the Clocked cell with the enable gate asserted for the
// duration of the write only. The previous state of the gate is restored.
func Latch(c Clocked, val uint32) {
	en := c.Enabled()
	c.SetEnable(true)
	c.Write(val)
	c.SetEnable(en)
}

// Register is a named, fixed width storage cell with a write enable gate.
type Register struct {
	label  string
	width  int
	mask   uint32
	value  uint32
	enable bool
}

// NewRegister is the preferred method of initialisation for the Register
// type. Width is clamped to the range 1 to 32.
func NewRegister(label string, width int) Register {
	if width < 1 {
		width = 1
	} else if width > 32 {
		width = 32
	}

	return Register{
		label: label,
		width: width,
		mask:  uint32((uint64(1) << width) - 1),
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s: %#08x (%d)", r.label, r.value, r.value)
}

// Label implements the Clocked interface.
func (r Register) Label() string {
	return r.label
}

// Width returns the number of bits in the register.
func (r Register) Width() int {
	return r.width
}

// Value implements the Clocked interface.
func (r Register) Value() uint32 {
	return r.value
}

// SetEnable implements the Clocked interface.
func (r *Register) SetEnable(enable bool) {
	r.enable = enable
}

// Enabled implements the Clocked interface.
func (r Register) Enabled() bool {
	return r.enable
}

// Write implements the Clocked interface. The value is truncated to the width
// of the register. Nothing happens if the enable gate is not set.
func (r *Register) Write(val uint32) {
	if !r.enable {
		return
	}
	r.value = val & r.mask
}

// Reset implements the Clocked interface. The value is set to zero and the
// enable gate is lowered.
func (r *Register) Reset() {
	r.value = 0
	r.enable = false
}
