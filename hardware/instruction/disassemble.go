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

// Disassemble returns a human readable form of the instruction word. Words
// that can not be classified are shown as a data directive.
func Disassemble(w uint32) string {
	f := Decode(w)

	c, err := Classify(f)
	if err != nil {
		return fmt.Sprintf(".word %#08x", w)
	}

	switch c {
	case RType:
		m, ok := functMnemonics[f.Funct]
		if !ok {
			return fmt.Sprintf(".word %#08x", w)
		}
		return fmt.Sprintf("%s $%d, $%d, $%d", m, f.Rd, f.Rs, f.Rt)
	case IType:
		return fmt.Sprintf("%s $%d, $%d, %d", opcodeMnemonics[f.Opcode], f.Rt, f.Rs, int32(f.Immediate))
	case Load, Store:
		return fmt.Sprintf("%s $%d, %d($%d)", opcodeMnemonics[f.Opcode], f.Rt, int32(f.Immediate), f.Rs)
	case Branch:
		return fmt.Sprintf("%s $%d, $%d, %d", opcodeMnemonics[f.Opcode], f.Rs, f.Rt, int32(f.Immediate))
	case Jump:
		return fmt.Sprintf("%s %#08x", opcodeMnemonics[f.Opcode], f.Address<<2)
	case Halt:
		return "halt"
	}

	return fmt.Sprintf(".word %#08x", w)
}
