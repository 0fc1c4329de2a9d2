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

package instruction

import "fmt"

// Fields are the decoded parts of an instruction word.
type Fields struct {
	Word uint32

	Opcode uint8
	Rs     uint8
	Rt     uint8
	Rd     uint8
	Shamt  uint8
	Funct  uint8

	// the 16 bit immediate value, sign extended
	Immediate uint32

	// the 26 bit jump target
	Address uint32
}

// Decode extracts all fields from the instruction word.
func Decode(w uint32) Fields {
	imm := w & 0xffff
	if imm&0x8000 == 0x8000 {
		imm |= 0xffff0000
	}

	return Fields{
		Word:      w,
		Opcode:    uint8((w >> 26) & 0x3f),
		Rs:        uint8((w >> 21) & 0x1f),
		Rt:        uint8((w >> 16) & 0x1f),
		Rd:        uint8((w >> 11) & 0x1f),
		Shamt:     uint8((w >> 6) & 0x1f),
		Funct:     uint8(w & 0x3f),
		Immediate: imm,
		Address:   w & 0x03ffffff,
	}
}

func (f Fields) String() string {
	return fmt.Sprintf("opcode=%#02x rs=%d rt=%d rd=%d shamt=%d funct=%#02x imm=%#08x addr=%#07x",
		f.Opcode, f.Rs, f.Rt, f.Rd, f.Shamt, f.Funct, f.Immediate, f.Address)
}
