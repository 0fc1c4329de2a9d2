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

// State is the current phase of the multi-cycle state machine.
type State int

// List of valid states.
const (
	StateFetch State = iota
	StateDecode
	StateExecute
	StateMemory
	StateWriteback
)

// NumStates is the number of valid State values.
const NumStates = 5

func (s State) String() string {
	switch s {
	case StateFetch:
		return "FETCH"
	case StateDecode:
		return "DECODE"
	case StateExecute:
		return "EXECUTE"
	case StateMemory:
		return "MEMORY"
	case StateWriteback:
		return "WRITEBACK"
	}
	return "UNKNOWN"
}

// Next is the transition function of the state machine. The next state
// depends only on the current state and the class of the instruction.
func Next(s State, class instruction.Class) State {
	switch s {
	case StateFetch:
		return StateDecode

	case StateDecode:
		return StateExecute

	case StateExecute:
		switch class {
		case instruction.Load, instruction.Store:
			return StateMemory
		case instruction.RType, instruction.IType:
			return StateWriteback
		case instruction.Branch, instruction.Jump, instruction.Halt:
			return StateFetch
		}

	case StateMemory:
		switch class {
		case instruction.Load:
			return StateWriteback
		default:
			return StateFetch
		}

	case StateWriteback:
		return StateFetch
	}

	return StateFetch
}

// PhaseSignals returns the signals asserted during state s for an
// instruction of the given class.
func PhaseSignals(s State, f instruction.Fields, class instruction.Class) (Signals, error) {
	switch s {
	case StateFetch:
		return Fetch(), nil

	case StateDecode:
		// register read is a side effect of decoding and is not gated
		return Signals{}, nil

	case StateExecute:
		sig, err := aluSignals(f, class)
		if err != nil {
			return Signals{}, err
		}

		switch class {
		case instruction.Branch:
			// PC+4 was committed during fetch. the PC is only written again
			// if the datapath resolves the branch as taken
			sig.PCWrite = false
			sig.PCSource = PCBranch

		case instruction.Jump:
			sig.PCWrite = true
			sig.PCSource = PCJump

			// there is no writeback phase for a jump so the link register
			// is written during execute
			if f.Opcode == instruction.OpJAL {
				sig.RegWrite = true
				sig.RegDst = DstReturnAddress
				sig.MemToReg = FromALU
			}

		case instruction.Halt:
			sig = Signals{}
		}

		return sig, nil

	case StateMemory:
		// the address is already in ALUOut. the ALU is idle
		sig := Signals{ALUOp: alu.ADD}
		switch class {
		case instruction.Load:
			sig.MemRead = true
		case instruction.Store:
			sig.MemWrite = true
		}
		return sig, nil

	case StateWriteback:
		sig := Signals{}
		switch class {
		case instruction.RType:
			sig.RegWrite = true
			sig.RegDst = DstRd
			sig.MemToReg = FromALU
		case instruction.IType:
			sig.RegWrite = true
			sig.RegDst = DstRt
			sig.MemToReg = FromALU
		case instruction.Load:
			sig.RegWrite = true
			sig.RegDst = DstRt
			sig.MemToReg = FromMemory
		}
		return sig, nil
	}

	return Signals{}, nil
}

// MultiCycle is the control unit of the multi-cycle datapath.
type MultiCycle struct {
	state   State
	signals Signals
	class   instruction.Class
}

// NewMultiCycle is the preferred method of initialisation for the MultiCycle
// type. The initial state is FETCH.
func NewMultiCycle() *MultiCycle {
	mc := &MultiCycle{}
	mc.Reset()
	return mc
}

// Reset returns the state machine to FETCH and clears the signals.
func (mc *MultiCycle) Reset() {
	mc.state = StateFetch
	mc.signals = Signals{}
	mc.class = instruction.Halt
}

// State returns the current state. This is the phase that will be performed
// by the next call to Step().
func (mc *MultiCycle) State() State {
	return mc.state
}

// Signals returns the signals generated by the most recent call to Step().
func (mc *MultiCycle) Signals() Signals {
	return mc.signals
}

// Class returns the class of the instruction in the most recent non-FETCH
// phase.
func (mc *MultiCycle) Class() instruction.Class {
	return mc.class
}

// Peek returns the signals for the current state and the state that would
// follow. The state machine is not changed.
func (mc *MultiCycle) Peek(ir uint32) (Signals, State, error) {
	sig, class, err := mc.generate(ir)
	if err != nil {
		return Signals{}, mc.state, err
	}
	return sig, Next(mc.state, class), nil
}

// Step generates the signals for the current state, advances to the next
// state and returns it. The instruction register is only classified once it
// has been latched, so it is ignored during FETCH. On error the state is not
// changed.
func (mc *MultiCycle) Step(ir uint32) (State, error) {
	sig, class, err := mc.generate(ir)
	if err != nil {
		return mc.state, err
	}

	mc.signals = sig
	mc.class = class
	mc.state = Next(mc.state, class)

	return mc.state, nil
}

func (mc *MultiCycle) generate(ir uint32) (Signals, instruction.Class, error) {
	f := instruction.Decode(ir)

	class := mc.class
	if mc.state != StateFetch {
		var err error
		class, err = instruction.Classify(f)
		if err != nil {
			return Signals{}, class, err
		}
	}

	sig, err := PhaseSignals(mc.state, f, class)
	if err != nil {
		return Signals{}, class, err
	}

	return sig, class, nil
}
