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


package control

import (
	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/hardware/alu"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
)

var functOperations = map[uint8]alu.Operation{
	instruction.FnADD: alu.ADD,
	instruction.FnSUB: alu.SUB,
	instruction.FnAND: alu.AND,
	instruction.FnOR:  alu.OR,
	instruction.FnXOR: alu.XOR,
	instruction.FnSLL: alu.SLL,
	instruction.FnSRL: alu.SRL,
	instruction.FnSRA: alu.SRA,
	instruction.FnSLT: alu.SLT,
}

var opcodeOperations = map[uint8]alu.Operation{
	instruction.OpADDI: alu.ADD,
	instruction.OpANDI: alu.AND,
	instruction.OpORI:  alu.OR,
	instruction.OpXORI: alu.XOR,
	instruction.OpSLTI: alu.SLT,
}

// Operation returns the ALU operation for an R_TYPE or I_TYPE instruction.
// All other classes use a fixed operation and are not looked up.
func Operation(f instruction.Fields) (alu.Operation, error) {
	if f.Opcode == instruction.OpRType {
		if op, ok := functOperations[f.Funct]; ok {
			return op, nil
		}
		return alu.ADD, curated.Errorf(instruction.UnrecognisedFunct, f.Funct)
	}

	if op, ok := opcodeOperations[f.Opcode]; ok {
		return op, nil
	}
	return alu.ADD, curated.Errorf(instruction.UnrecognisedOpcode, f.Opcode)
}

// branchCondition returns the condition for a BRANCH class instruction.
func branchCondition(f instruction.Fields) BranchCondition {
	if f.Opcode == instruction.OpBNE {
		return BranchOnNotZero
	}
	return BranchOnZero
}
