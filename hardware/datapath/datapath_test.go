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


package datapath_test

import (
	"testing"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/hardware/alu"
	"github.com/jetsetilly/mipsdatapath/hardware/control"
	"github.com/jetsetilly/mipsdatapath/hardware/datapath"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
	"github.com/jetsetilly/mipsdatapath/hardware/memory"
	"github.com/jetsetilly/mipsdatapath/hardware/mux"
	"github.com/jetsetilly/mipsdatapath/test"
)

func newDatapath(t *testing.T, program ...uint32) *datapath.Datapath {
	t.Helper()

	units, err := datapath.NewUnits(memory.DefaultSize)
	test.DemandSuccess(t, err)
	d, err := datapath.NewDatapath(units)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, d.Load(0, program))

	return d
}

// runInstructions steps the strategy until n instructions have completed.
func runInstructions(t *testing.T, s datapath.Strategy, d *datapath.Datapath, n int) []datapath.Result {
	t.Helper()

	var results []datapath.Result
	for completed := 0; completed < n; {
		r, err := s.Step(d)
		test.DemandSuccess(t, err)
		results = append(results, r)
		if r.Complete {
			completed++
		}
		if len(results) > n*5 {
			t.Fatalf("too many steps for %d instructions", n)
		}
	}

	return results
}

func strategies() map[string]func() datapath.Strategy {
	return map[string]func() datapath.Strategy{
		"single": func() datapath.Strategy { return datapath.NewSingleCycle() },
		"multi":  func() datapath.Strategy { return datapath.NewMultiCycle() },
	}
}

func TestNoMemory(t *testing.T) {
	_, err := datapath.NewDatapath(datapath.Units{})
	test.ExpectSuccess(t, curated.Is(err, datapath.NoMemory))
}

func TestAdd(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			instruction.EncodeI(instruction.OpLW, 0, 1, 0x100),
			instruction.EncodeI(instruction.OpLW, 0, 2, 0x104),
			instruction.EncodeR(instruction.FnADD, 1, 2, 3, 0),
			instruction.EncodeHalt(),
		)
		test.DemandSuccess(t, d.PokeMemory(0x100, 10))
		test.DemandSuccess(t, d.PokeMemory(0x104, 20))

		runInstructions(t, strategy(), d, 3)

		v, err := d.Register(3)
		test.ExpectSuccess(t, err, name)
		test.ExpectEquality(t, v, uint32(30), name)
		test.ExpectEquality(t, d.Flags().Zero, false, name)
		test.ExpectEquality(t, d.PC(), uint32(12), name)
	}
}

func TestCycleCount(t *testing.T) {
	program := []uint32{
		instruction.EncodeI(instruction.OpLW, 0, 1, 0x100),
		instruction.EncodeI(instruction.OpSW, 0, 1, 0x104),
		instruction.EncodeR(instruction.FnADD, 1, 1, 3, 0),
		instruction.EncodeI(instruction.OpBEQ, 0, 0, 1),
		instruction.EncodeHalt(),
	}

	d := newDatapath(t, program...)
	runInstructions(t, datapath.NewSingleCycle(), d, 4)
	test.ExpectEquality(t, d.Cycles(), 4)

	d = newDatapath(t, program...)
	results := runInstructions(t, datapath.NewMultiCycle(), d, 4)
	test.ExpectEquality(t, d.Cycles(), 5+4+4+3)
	test.ExpectEquality(t, len(results), d.Cycles())
}

func TestStoreLoadRoundTrip(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			instruction.EncodeR(instruction.FnADD, 1, 2, 3, 0),
			instruction.EncodeI(instruction.OpSW, 0, 3, 0x200),
			instruction.EncodeI(instruction.OpLW, 0, 4, 0x200),
			instruction.EncodeI(instruction.OpSW, 0, 1, 0x204),
			instruction.EncodeI(instruction.OpLW, 0, 5, 0x204),
		)
		test.DemandSuccess(t, d.PokeRegister(1, 0xffffffff))
		test.DemandSuccess(t, d.PokeRegister(2, 2))

		runInstructions(t, strategy(), d, 5)

		// the addition is truncated to 32 bits
		v, _ := d.Register(4)
		test.ExpectEquality(t, v, uint32(1), name)
		v, _ = d.Register(5)
		test.ExpectEquality(t, v, uint32(0xffffffff), name)

		m, err := d.Dump(0x200, 2)
		test.ExpectSuccess(t, err, name)
		test.ExpectEquality(t, m[0].Data, uint32(1), name)
		test.ExpectEquality(t, m[1].Data, uint32(0xffffffff), name)
		test.ExpectEquality(t, d.MDR(), uint32(0xffffffff), name)
	}
}

func TestBranchTaken(t *testing.T) {
	for name, strategy := range strategies() {
		program := make([]uint32, 4)
		program[3] = instruction.EncodeI(instruction.OpBEQ, 1, 2, 5)
		d := newDatapath(t, program...)
		test.DemandSuccess(t, d.PokeRegister(1, 7))
		test.DemandSuccess(t, d.PokeRegister(2, 7))
		d.SetPC(0x0c)

		s := strategy()
		runInstructions(t, s, d, 1)

		test.ExpectEquality(t, d.Flags().Zero, true, name)
		test.ExpectEquality(t, d.Signals().PCSource, control.PCBranch, name)
		test.ExpectEquality(t, d.Signals().PCWrite, true, name)
		test.ExpectEquality(t, d.PC(), uint32(0x0c+(5<<2)), name)
	}
}

func TestBranchNotTaken(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			instruction.EncodeI(instruction.OpBEQ, 1, 2, 5),
			instruction.EncodeI(instruction.OpBNE, 1, 1, -1),
		)
		test.DemandSuccess(t, d.PokeRegister(1, 7))
		test.DemandSuccess(t, d.PokeRegister(2, 8))

		runInstructions(t, strategy(), d, 2)
		test.ExpectEquality(t, d.PC(), uint32(8), name)
	}
}

func TestBranchBackwards(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			0,
			0,
			instruction.EncodeI(instruction.OpBNE, 1, 0, -2),
		)
		test.DemandSuccess(t, d.PokeRegister(1, 1))
		d.SetPC(8)

		runInstructions(t, strategy(), d, 1)
		test.ExpectEquality(t, d.PC(), uint32(0), name)
	}
}

func TestJumpAndLink(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			0,
			instruction.EncodeJ(instruction.OpJAL, 0x40),
			instruction.EncodeJ(instruction.OpJ, 0x80),
		)
		d.SetPC(4)

		runInstructions(t, strategy(), d, 1)
		test.ExpectEquality(t, d.PC(), uint32(0x40), name)
		v, _ := d.Register(31)
		test.ExpectEquality(t, v, uint32(8), name)

		d.SetPC(8)
		runInstructions(t, strategy(), d, 1)
		test.ExpectEquality(t, d.PC(), uint32(0x80), name)
		v, _ = d.Register(31)
		test.ExpectEquality(t, v, uint32(8), name)
	}
}

func TestImmediateAndShift(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			instruction.EncodeI(instruction.OpADDI, 0, 1, -8),
			instruction.EncodeI(instruction.OpADDI, 0, 2, 2),
			instruction.EncodeR(instruction.FnSRA, 1, 2, 3, 0),
			instruction.EncodeR(instruction.FnSLT, 1, 2, 4, 0),
			instruction.EncodeI(instruction.OpADDI, 0, 0, 99),
		)

		runInstructions(t, strategy(), d, 5)
		r := d.Registers()
		test.ExpectEquality(t, r[1], uint32(0xfffffff8), name)
		test.ExpectEquality(t, r[2], uint32(2), name)
		test.ExpectEquality(t, r[3], uint32(0xfffffffe), name)
		test.ExpectEquality(t, r[4], uint32(1), name)

		// register zero is never written
		test.ExpectEquality(t, r[0], uint32(0), name)
	}
}

func TestHalt(t *testing.T) {
	d := newDatapath(t, instruction.EncodeHalt())
	r, err := datapath.NewSingleCycle().Step(d)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Halted, true)
	test.ExpectEquality(t, r.Complete, true)
	test.ExpectEquality(t, d.PC(), uint32(0))

	d = newDatapath(t, instruction.EncodeHalt())
	results := runInstructions(t, datapath.NewMultiCycle(), d, 1)
	test.ExpectEquality(t, len(results), 3)
	test.ExpectEquality(t, results[0].Halted, false)
	test.ExpectEquality(t, results[1].Halted, false)
	test.ExpectEquality(t, results[2].Halted, true)
	test.ExpectEquality(t, results[2].Phase, control.StateExecute)
	test.ExpectEquality(t, results[2].Next, control.StateFetch)
}

// observed is everything a failed step must leave untouched.
type observed struct {
	pc, ir, ipc, npc  uint32
	a, b, aluOut, mdr uint32
	registers         [32]uint32
	flags             alu.Flags
	cycles            int
	phase             control.State
}

func observe(s datapath.Strategy, d *datapath.Datapath) observed {
	return observed{
		pc:        d.PC(),
		ir:        d.IR(),
		ipc:       d.IPC(),
		npc:       d.NPC(),
		a:         d.A(),
		b:         d.B(),
		aluOut:    d.ALUOut(),
		mdr:       d.MDR(),
		registers: d.Registers(),
		flags:     d.Flags(),
		cycles:    d.Cycles(),
		phase:     s.State(),
	}
}

// stepUntilError steps the strategy until it fails. Returns the error and the
// state of the datapath before the failing step.
func stepUntilError(t *testing.T, s datapath.Strategy, d *datapath.Datapath) (observed, error) {
	t.Helper()

	for i := 0; i < 20; i++ {
		before := observe(s, d)
		if _, err := s.Step(d); err != nil {
			return before, err
		}
	}

	t.Fatalf("no error after 20 steps")
	return observed{}, nil
}

func TestDecodeError(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			instruction.EncodeI(instruction.OpADDI, 0, 1, 5),
			0x01<<26,
		)
		s := strategy()

		before, err := stepUntilError(t, s, d)
		test.ExpectSuccess(t, curated.Is(err, instruction.UnrecognisedOpcode), name)
		test.ExpectEquality(t, observe(s, d), before, name)
		test.ExpectEquality(t, d.Registers()[1], uint32(5), name)

		// the failure repeats without changing anything
		_, err = s.Step(d)
		test.ExpectSuccess(t, curated.Is(err, instruction.UnrecognisedOpcode), name)
		test.ExpectEquality(t, observe(s, d), before, name)
	}

	// the single-cycle datapath never latches an unrecognised word
	d := newDatapath(t, 0x01<<26)
	s := datapath.NewSingleCycle()
	_, err := s.Step(d)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, s.Signals(), control.Signals{})
	test.ExpectEquality(t, d.IR(), uint32(0))
	test.ExpectEquality(t, d.IPC(), uint32(0))
	test.ExpectEquality(t, d.NPC(), uint32(0))
	test.ExpectEquality(t, d.PC(), uint32(0))
}

func TestFetchOutOfRange(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t)
		d.SetPC(memory.DefaultSize << 2)
		s := strategy()

		before := observe(s, d)
		_, err := s.Step(d)
		test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange), name)
		test.ExpectEquality(t, observe(s, d), before, name)
		test.ExpectEquality(t, d.IPC(), uint32(0), name)
		test.ExpectEquality(t, s.State(), control.StateFetch, name)
	}

	// fetching directly latches nothing when the read fails
	d := newDatapath(t)
	d.SetPC(memory.DefaultSize << 2)
	test.DemandSuccess(t, d.Apply(control.Fetch()))
	_, err := d.FetchInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, d.IPC(), uint32(0))
	test.ExpectEquality(t, d.NPC(), uint32(0))
	test.ExpectEquality(t, d.PC(), uint32(memory.DefaultSize<<2))
}

func TestMemoryAccessOutOfRange(t *testing.T) {
	for name, strategy := range strategies() {
		d := newDatapath(t,
			instruction.EncodeI(instruction.OpLW, 0, 1, 0x20),
			instruction.EncodeI(instruction.OpLW, 0, 2, 0x7ff0),
		)
		test.DemandSuccess(t, d.PokeMemory(0x20, 0xabc))
		s := strategy()

		before, err := stepUntilError(t, s, d)
		test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange), name)
		test.ExpectEquality(t, observe(s, d), before, name)
		test.ExpectEquality(t, d.Registers()[1], uint32(0xabc), name)
		test.ExpectEquality(t, d.Registers()[2], uint32(0), name)

		// stepping again fails in the same way and the stale MDR is never
		// written back
		_, err = s.Step(d)
		test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange), name)
		test.ExpectEquality(t, observe(s, d), before, name)
		test.ExpectEquality(t, d.Registers()[2], uint32(0), name)
	}
}

func TestApply(t *testing.T) {
	d := newDatapath(t)

	err := d.Apply(control.Signals{ALUSrcB: 3})
	test.ExpectSuccess(t, curated.Is(err, mux.SelectOutOfRange))

	err = d.Apply(control.Signals{MemRead: true, MemWrite: true})
	test.ExpectSuccess(t, curated.Is(err, control.ConflictingMemoryGates))

	test.ExpectSuccess(t, d.Apply(control.Fetch()))
	test.ExpectEquality(t, d.Signals(), control.Fetch())
}

func TestStageGating(t *testing.T) {
	d := newDatapath(t, 0x12345678)

	// fetch with no gates computes PC+4 but commits nothing
	test.DemandSuccess(t, d.Apply(control.Signals{ALUSrcA: control.SrcAPC, ALUSrcB: control.SrcBFour}))
	w, err := d.FetchInstruction()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0))
	test.ExpectEquality(t, d.IR(), uint32(0))
	test.ExpectEquality(t, d.PC(), uint32(0))
	test.ExpectEquality(t, d.NPC(), uint32(4))

	// memory access with no gates is a no-op
	_, read, err := d.MemoryAccess()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, read, false)

	test.DemandSuccess(t, d.Apply(control.Fetch()))
	w, err = d.FetchInstruction()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x12345678))
	test.ExpectEquality(t, d.IR(), uint32(0x12345678))
	test.ExpectEquality(t, d.PC(), uint32(4))
}

func TestReset(t *testing.T) {
	d := newDatapath(t,
		instruction.EncodeI(instruction.OpADDI, 0, 1, 10),
		instruction.EncodeI(instruction.OpSW, 0, 1, 0x40),
	)
	s := datapath.NewMultiCycle()
	runInstructions(t, s, d, 2)
	test.ExpectInequality(t, d.Cycles(), 0)

	d.Reset()
	s.Reset()
	once := d.String()
	onceRegs := d.Registers()

	d.Reset()
	s.Reset()
	test.ExpectEquality(t, d.String(), once)
	test.ExpectEquality(t, d.Registers(), onceRegs)
	test.ExpectEquality(t, onceRegs, [32]uint32{})
	test.ExpectEquality(t, d.PC(), uint32(0))
	test.ExpectEquality(t, d.IR(), uint32(0))
	test.ExpectEquality(t, d.A(), uint32(0))
	test.ExpectEquality(t, d.B(), uint32(0))
	test.ExpectEquality(t, d.ALUOut(), uint32(0))
	test.ExpectEquality(t, d.Cycles(), 0)
	test.ExpectEquality(t, s.State(), control.StateFetch)

	// memory survives a reset
	m, err := d.Dump(0x40, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m[0].Data, uint32(10))
}
