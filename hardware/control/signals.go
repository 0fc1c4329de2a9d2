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
	"fmt"
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/hardware/alu"
)

// Selector values for the ALU source A multiplexer.
const (
	SrcARegister = iota
	SrcAPC
)

// Selector values for the ALU source B multiplexer.
const (
	SrcBRegister = iota
	SrcBImmediate
	SrcBFour
)

// Selector values for the register destination multiplexer.
const (
	DstRt = iota
	DstRd
	DstReturnAddress
)

// Selector values for the memory to register multiplexer.
const (
	FromALU = iota
	FromMemory
)

// Selector values for the PC source multiplexer.
const (
	PCNext = iota
	PCBranch
	PCJump
)

// BranchCondition is the condition under which a branch is taken.
type BranchCondition int

// List of branch conditions.
const (
	NoBranch BranchCondition = iota
	BranchOnZero
	BranchOnNotZero
)

func (b BranchCondition) String() string {
	switch b {
	case NoBranch:
		return "none"
	case BranchOnZero:
		return "zero"
	case BranchOnNotZero:
		return "not zero"
	}
	return "unknown"
}

// Sentinal error returned by Signals.Check().
const ConflictingMemoryGates = "control: memory read and write asserted together"

// Signals is the complete control vector for one instruction or one clock
// phase. The zero value has every gate low and every selector at zero.
type Signals struct {
	PCWrite  bool
	PCSource int
	MemRead  bool
	MemWrite bool
	RegWrite bool
	RegDst   int
	ALUSrcA  int
	ALUSrcB  int
	ALUOp    alu.Operation
	MemToReg int
	IRWrite  bool

	// the condition used by Resolve()
	Branch BranchCondition
}

// Check returns an error if the signals are self contradictory.
func (s Signals) Check() error {
	if s.MemRead && s.MemWrite {
		return curated.Errorf(ConflictingMemoryGates)
	}
	return nil
}

// Taken returns true if the branch condition is satisfied by the zero flag.
func (s Signals) Taken(zero bool) bool {
	switch s.Branch {
	case BranchOnZero:
		return zero
	case BranchOnNotZero:
		return !zero
	}
	return false
}

// Resolve returns a copy of the signals with the PC written from the branch
// target if the branch condition is satisfied. Otherwise the signals are
// returned unchanged.
func (s Signals) Resolve(zero bool) Signals {
	if s.Taken(zero) {
		s.PCWrite = true
		s.PCSource = PCBranch
	}
	return s
}

// Gates returns true if any of the memory or register file gates are
// asserted.
func (s Signals) Gates() bool {
	return s.MemRead || s.MemWrite || s.RegWrite
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s Signals) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("pc_write=%d pc_source=%d ", flag(s.PCWrite), s.PCSource))
	b.WriteString(fmt.Sprintf("mem_read=%d mem_write=%d ", flag(s.MemRead), flag(s.MemWrite)))
	b.WriteString(fmt.Sprintf("reg_write=%d reg_dst=%d ", flag(s.RegWrite), s.RegDst))
	b.WriteString(fmt.Sprintf("alu_src_a=%d alu_src_b=%d alu_op=%s ", s.ALUSrcA, s.ALUSrcB, s.ALUOp))
	b.WriteString(fmt.Sprintf("mem_to_reg=%d ir_write=%d", s.MemToReg, flag(s.IRWrite)))
	if s.Branch != NoBranch {
		b.WriteString(fmt.Sprintf(" branch=%s", s.Branch))
	}
	return b.String()
}

// Fetch returns the signals for an instruction fetch. Memory is read at the
// PC and latched into the instruction register while the ALU computes PC+4.
func Fetch() Signals {
	return Signals{
		MemRead:  true,
		IRWrite:  true,
		ALUSrcA:  SrcAPC,
		ALUSrcB:  SrcBFour,
		ALUOp:    alu.ADD,
		PCWrite:  true,
		PCSource: PCNext,
	}
}
