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


package datapath

import (
	"fmt"

	"github.com/jetsetilly/mipsdatapath/hardware/control"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
)

// Result records the outcome of one call to Strategy.Step().
type Result struct {
	// the instruction word and the address it was fetched from
	Instruction uint32
	Address     uint32

	// the phase performed and the phase that will be performed next. for the
	// single-cycle datapath both are always FETCH
	Phase control.State
	Next  control.State

	Description string

	// the instruction has completed all of its phases
	Complete bool

	// the instruction was a HALT and it has completed
	Halted bool
}

func (r Result) String() string {
	s := fmt.Sprintf("%#08x: %-24s %-9s %s", r.Address, instruction.Disassemble(r.Instruction), r.Phase, r.Description)
	if r.Halted {
		s = fmt.Sprintf("%s [halted]", s)
	}
	return s
}

// Strategy advances the Datapath by one step. The meaning of a step depends on
// the implementation.
type Strategy interface {
	// Step drives the datapath forward. The datapath must be the same
	// instance on every call.
	Step(d *Datapath) (Result, error)

	// State returns the state of the control unit. Always FETCH for the
	// single-cycle strategy.
	State() control.State

	// Signals returns the most recently generated control signals.
	Signals() control.Signals

	Reset()
}

// SingleCycle executes one complete instruction per step.
type SingleCycle struct {
	cu *control.ControlUnit
}

// NewSingleCycle is the preferred method of initialisation for the
// SingleCycle type.
func NewSingleCycle() *SingleCycle {
	return &SingleCycle{cu: control.NewControlUnit()}
}

// fetchSignals are used by the single-cycle strategy during the fetch stage.
// The PC is written once the instruction has been executed.
func fetchSignals() control.Signals {
	sig := control.Fetch()
	sig.PCWrite = false
	return sig
}

// Step implements the Strategy interface.
func (sc *SingleCycle) Step(d *Datapath) (Result, error) {
	return sc.ExecuteInstruction(d)
}

// ExecuteInstruction runs every stage for the instruction at the PC. The
// instruction is classified before anything is latched. If any stage fails
// the datapath is returned to the state it was in before the call.
func (sc *SingleCycle) ExecuteInstruction(d *Datapath) (Result, error) {
	c := d.save()
	cu := *sc.cu

	res, err := sc.execute(d)
	if err != nil {
		d.rollback(c)
		*sc.cu = cu
	}
	return res, err
}

func (sc *SingleCycle) execute(d *Datapath) (Result, error) {
	res := Result{
		Address: d.PC(),
		Phase:   control.StateFetch,
		Next:    control.StateFetch,
	}

	w, err := d.mem.Peek(d.PC())
	if err != nil {
		return res, err
	}
	res.Instruction = w

	sig, err := sc.cu.Generate(w)
	if err != nil {
		return res, err
	}

	if err := d.Apply(fetchSignals()); err != nil {
		return res, err
	}
	if _, err := d.FetchInstruction(); err != nil {
		return res, err
	}
	d.DecodeInstruction()

	if err := d.Apply(sig); err != nil {
		return res, err
	}

	if err := d.ReadRegisters(); err != nil {
		return res, err
	}
	r, err := d.Execute()
	if err != nil {
		return res, err
	}
	taken, err := d.ResolveBranch()
	if err != nil {
		return res, err
	}
	if _, _, err := d.MemoryAccess(); err != nil {
		return res, err
	}
	if err := d.WriteBack(); err != nil {
		return res, err
	}
	if err := d.UpdatePC(); err != nil {
		return res, err
	}

	d.cycles++

	res.Complete = true
	res.Halted = sc.cu.Class() == instruction.Halt
	res.Description = fmt.Sprintf("alu=%#08x pc=%#08x", r, d.PC())
	if taken {
		res.Description = fmt.Sprintf("%s branch taken", res.Description)
	}

	return res, nil
}

// State implements the Strategy interface.
func (sc *SingleCycle) State() control.State {
	return control.StateFetch
}

// Signals implements the Strategy interface.
func (sc *SingleCycle) Signals() control.Signals {
	return sc.cu.Signals()
}

// Reset implements the Strategy interface.
func (sc *SingleCycle) Reset() {
	sc.cu.Reset()
}

// MultiCycle executes one phase of an instruction per step.
type MultiCycle struct {
	fsm *control.MultiCycle
}

// NewMultiCycle is the preferred method of initialisation for the MultiCycle
// type.
func NewMultiCycle() *MultiCycle {
	return &MultiCycle{fsm: control.NewMultiCycle()}
}

// Step implements the Strategy interface. The state machine generates the
// signals for its current state and the datapath performs that phase. The
// state machine only advances once the phase has succeeded. On error the
// datapath is returned to the state it was in before the call.
func (mc *MultiCycle) Step(d *Datapath) (Result, error) {
	phase := mc.fsm.State()
	ir := d.IR()

	res := Result{
		Phase: phase,
		Next:  phase,
	}

	sig, next, err := mc.fsm.Peek(ir)
	if err != nil {
		return res, err
	}

	c := d.save()

	if err := d.Apply(sig); err != nil {
		d.rollback(c)
		return res, err
	}

	res.Description, err = d.ExecuteCycle(phase)
	if err != nil {
		d.rollback(c)
		return res, err
	}

	if _, err := mc.fsm.Step(ir); err != nil {
		d.rollback(c)
		return res, err
	}

	res.Instruction = d.IR()
	res.Address = d.IPC()
	res.Next = next
	res.Complete = phase != control.StateFetch && next == control.StateFetch
	res.Halted = res.Complete && mc.fsm.Class() == instruction.Halt

	return res, nil
}

// State implements the Strategy interface.
func (mc *MultiCycle) State() control.State {
	return mc.fsm.State()
}

// Signals implements the Strategy interface.
func (mc *MultiCycle) Signals() control.Signals {
	return mc.fsm.Signals()
}

// Reset implements the Strategy interface.
func (mc *MultiCycle) Reset() {
	mc.fsm.Reset()
}
