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

// Opcode values (bits 31 to 26).
const (
	OpRType = 0x00
	OpJ     = 0x02
	OpJAL   = 0x03
	OpBEQ   = 0x04
	OpBNE   = 0x05
	OpADDI  = 0x08
	OpSLTI  = 0x0a
	OpANDI  = 0x0c
	OpORI   = 0x0d
	OpXORI  = 0x0e
	OpLW    = 0x23
	OpSW    = 0x2b
	OpHALT  = 0x3f
)

// Function code values for R-type instructions (bits 5 to 0).
const (
	FnSLL = 0x00
	FnSRL = 0x02
	FnSRA = 0x03
	FnADD = 0x20
	FnSUB = 0x22
	FnAND = 0x24
	FnOR  = 0x25
	FnXOR = 0x26
	FnSLT = 0x2a
)

var opcodeMnemonics = map[uint8]string{
	OpJ:    "j",
	OpJAL:  "jal",
	OpBEQ:  "beq",
	OpBNE:  "bne",
	OpADDI: "addi",
	OpSLTI: "slti",
	OpANDI: "andi",
	OpORI:  "ori",
	OpXORI: "xori",
	OpLW:   "lw",
	OpSW:   "sw",
	OpHALT: "halt",
}

var functMnemonics = map[uint8]string{
	FnSLL: "sll",
	FnSRL: "srl",
	FnSRA: "sra",
	FnADD: "add",
	FnSUB: "sub",
	FnAND: "and",
	FnOR:  "or",
	FnXOR: "xor",
	FnSLT: "slt",
}
