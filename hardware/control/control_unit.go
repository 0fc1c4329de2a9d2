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
	"github.com/jetsetilly/mipsdatapath/hardware/alu"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
)

// aluSignals sets the ALU operand sources and operation for the class of
// instruction. Used by both control units.
func aluSignals(f instruction.Fields, class instruction.Class) (Signals, error) {
	var s Signals

	switch class {
	case instruction.RType:
		op, err := Operation(f)
		if err != nil {
			return Signals{}, err
		}
		s.ALUSrcA = SrcARegister
		s.ALUSrcB = SrcBRegister
		s.ALUOp = op

	case instruction.IType:
		op, err := Operation(f)
		if err != nil {
			return Signals{}, err
		}
		s.ALUSrcA = SrcARegister
		s.ALUSrcB = SrcBImmediate
		s.ALUOp = op

	case instruction.Load, instruction.Store:
		s.ALUSrcA = SrcARegister
		s.ALUSrcB = SrcBImmediate
		s.ALUOp = alu.ADD

	case instruction.Branch:
		s.ALUSrcA = SrcARegister
		s.ALUSrcB = SrcBRegister
		s.ALUOp = alu.SUB
		s.Branch = branchCondition(f)

	case instruction.Jump:
		// jump-and-link computes the return address in the ALU
		if f.Opcode == instruction.OpJAL {
			s.ALUSrcA = SrcAPC
			s.ALUSrcB = SrcBFour
			s.ALUOp = alu.ADD
		}

	case instruction.Halt:
	}

	return s, nil
}

// ControlUnit is the combinational control unit of the single-cycle
// datapath.
type ControlUnit struct {
	signals Signals
	class   instruction.Class
}

// NewControlUnit is the preferred method of initialisation for the
// ControlUnit type.
func NewControlUnit() *ControlUnit {
	cu := &ControlUnit{}
	cu.Reset()
	return cu
}

// Reset clears the signals. The class of the most recent instruction reverts
// to HALT.
func (cu *ControlUnit) Reset() {
	cu.signals = Signals{}
	cu.class = instruction.Halt
}

// Signals returns the signals from the most recent call to Generate().
func (cu *ControlUnit) Signals() Signals {
	return cu.signals
}

// Class returns the class of the most recently generated instruction.
func (cu *ControlUnit) Class() instruction.Class {
	return cu.class
}

// Generate the complete control vector for the instruction. The signals are
// also stored and are available through Signals() until the next call to
// Generate() or Reset().
//
// For a BRANCH the PC is written from PC+4 until the datapath resolves the
// branch with Signals.Resolve().
func (cu *ControlUnit) Generate(ir uint32) (Signals, error) {
	f := instruction.Decode(ir)

	class, err := instruction.Classify(f)
	if err != nil {
		return Signals{}, err
	}

	s, err := aluSignals(f, class)
	if err != nil {
		return Signals{}, err
	}

	switch class {
	case instruction.RType:
		s.RegWrite = true
		s.RegDst = DstRd
		s.MemToReg = FromALU
		s.PCWrite = true
		s.PCSource = PCNext

	case instruction.IType:
		s.RegWrite = true
		s.RegDst = DstRt
		s.MemToReg = FromALU
		s.PCWrite = true
		s.PCSource = PCNext

	case instruction.Load:
		s.MemRead = true
		s.RegWrite = true
		s.RegDst = DstRt
		s.MemToReg = FromMemory
		s.PCWrite = true
		s.PCSource = PCNext

	case instruction.Store:
		s.MemWrite = true
		s.PCWrite = true
		s.PCSource = PCNext

	case instruction.Branch:
		s.PCWrite = true
		s.PCSource = PCNext

	case instruction.Jump:
		s.PCWrite = true
		s.PCSource = PCJump
		if f.Opcode == instruction.OpJAL {
			s.RegWrite = true
			s.RegDst = DstReturnAddress
			s.MemToReg = FromALU
		}

	case instruction.Halt:
		// every gate low. the PC is not written and fetch does not advance
		s = Signals{}
	}

	cu.signals = s
	cu.class = class

	return s, nil
}
