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

// Package alu implements the combinational arithmetic logic unit of the
// datapath. The ALU takes two 32 bit inputs and an Operation and produces a
// 32 bit result and three condition flags.
package alu

import (
	"fmt"

	"github.com/jetsetilly/mipsdatapath/curated"
)

// Operation selects the function computed by the ALU. The numeric values are
// the values carried by the alu_op control signal.
type Operation int

// List of valid operations.
const (
	ADD Operation = iota
	SUB
	AND
	OR
	XOR
	SLL
	SRL
	SRA
	SLT
)

// NumOperations is the number of valid Operation values.
const NumOperations = 9

func (op Operation) String() string {
	switch op {
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case SLL:
		return "SLL"
	case SRL:
		return "SRL"
	case SRA:
		return "SRA"
	case SLT:
		return "SLT"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Valid returns true if the operation is one of the nine defined operations.
func (op Operation) Valid() bool {
	return op >= ADD && op <= SLT
}

// Sentinal error returned by Execute() when the operation is not valid.
const InvalidOperation = "alu: invalid operation (%d)"

// Flags are the condition flags set by the most recent call to Execute().
type Flags struct {
	Zero     bool
	Negative bool
	Overflow bool
}

// String returns the flags as a three character string. Upper case for a set
// flag, lower case otherwise. For example "zNo".
func (f Flags) String() string {
	b := []byte("zno")
	if f.Zero {
		b[0] = 'Z'
	}
	if f.Negative {
		b[1] = 'N'
	}
	if f.Overflow {
		b[2] = 'O'
	}
	return string(b)
}

const signBit = 0x80000000

// ALU is the arithmetic logic unit.
type ALU struct {
	a  uint32
	b  uint32
	op Operation

	result uint32
	flags  Flags
}

func (alu ALU) String() string {
	return fmt.Sprintf("ALU: %s %#08x, %#08x = %#08x [%s]", alu.op, alu.a, alu.b, alu.result, alu.flags)
}

// SetInputs sets the two ALU inputs.
func (alu *ALU) SetInputs(a, b uint32) {
	alu.a = a
	alu.b = b
}

// Inputs returns the current ALU inputs.
func (alu ALU) Inputs() (uint32, uint32) {
	return alu.a, alu.b
}

// SetOperation selects the ALU function. An invalid operation is accepted
// here and reported by Execute().
func (alu *ALU) SetOperation(op Operation) {
	alu.op = op
}

// Operation returns the currently selected operation.
func (alu ALU) Operation() Operation {
	return alu.op
}

// Execute the selected operation on the current inputs. The result and the
// flags are updated and the result is returned. An invalid operation leaves
// the result and flags unchanged.
func (alu *ALU) Execute() (uint32, error) {
	a := alu.a
	b := alu.b

	var r uint32

	switch alu.op {
	case ADD:
		r = a + b
	case SUB:
		r = a - b
	case AND:
		r = a & b
	case OR:
		r = a | b
	case XOR:
		r = a ^ b
	case SLL:
		r = a << (b & 0x1f)
	case SRL:
		r = a >> (b & 0x1f)
	case SRA:
		r = uint32(int32(a) >> (b & 0x1f))
	case SLT:
		if int32(a) < int32(b) {
			r = 1
		}
	default:
		return alu.result, curated.Errorf(InvalidOperation, int(alu.op))
	}

	alu.result = r
	alu.flags.Zero = r == 0
	alu.flags.Negative = r&signBit == signBit

	switch alu.op {
	case ADD:
		alu.flags.Overflow = a&signBit == b&signBit && r&signBit != a&signBit
	case SUB:
		alu.flags.Overflow = a&signBit != b&signBit && r&signBit != a&signBit
	default:
		alu.flags.Overflow = false
	}

	return r, nil
}

// Result returns the result of the most recent successful call to Execute().
func (alu ALU) Result() uint32 {
	return alu.result
}

// Flags returns the flags of the most recent successful call to Execute().
func (alu ALU) Flags() Flags {
	return alu.flags
}

// Reset clears inputs, result and flags. The operation returns to ADD.
func (alu *ALU) Reset() {
	*alu = ALU{}
}
