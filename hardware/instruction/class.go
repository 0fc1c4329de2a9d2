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

import "github.com/jetsetilly/mipsdatapath/curated"

// Class is the broad category of an instruction. The control units generate
// signals according to the class of the instruction.
type Class int

// List of instruction classes.
const (
	RType Class = iota
	IType
	Load
	Store
	Branch
	Jump
	Halt
)

func (c Class) String() string {
	switch c {
	case RType:
		return "R_TYPE"
	case IType:
		return "I_TYPE"
	case Load:
		return "LOAD"
	case Store:
		return "STORE"
	case Branch:
		return "BRANCH"
	case Jump:
		return "JUMP"
	case Halt:
		return "HALT"
	}
	return "unknown class"
}

// Sentinal errors for instructions that can not be decoded.
const (
	UnrecognisedOpcode = "instruction: unrecognised opcode (%#02x)"
	UnrecognisedFunct  = "instruction: unrecognised funct (%#02x)"
)

// Classify returns the Class of the instruction. The function code of an
// R-type instruction is not examined.
func Classify(f Fields) (Class, error) {
	switch f.Opcode {
	case OpRType:
		return RType, nil
	case OpLW:
		return Load, nil
	case OpSW:
		return Store, nil
	case OpBEQ, OpBNE:
		return Branch, nil
	case OpJ, OpJAL:
		return Jump, nil
	case OpHALT:
		return Halt, nil
	case OpADDI, OpSLTI, OpANDI, OpORI, OpXORI:
		return IType, nil
	}
	return 0, curated.Errorf(UnrecognisedOpcode, f.Opcode)
}

// ClassifyWord decodes the word and returns its Class.
func ClassifyWord(w uint32) (Class, error) {
	return Classify(Decode(w))
}
