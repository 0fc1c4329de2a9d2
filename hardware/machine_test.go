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


package hardware_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/govern"
	"github.com/jetsetilly/mipsdatapath/hardware"
	"github.com/jetsetilly/mipsdatapath/hardware/control"
	"github.com/jetsetilly/mipsdatapath/hardware/datapath"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
	"github.com/jetsetilly/mipsdatapath/hardware/memory"
	"github.com/jetsetilly/mipsdatapath/hardware/registers"
	"github.com/jetsetilly/mipsdatapath/loader"
	"github.com/jetsetilly/mipsdatapath/test"
)

func sumProgram() loader.Program {
	return loader.Program{
		Name:   "sum",
		Origin: 0x40,
		Words: []uint32{
			instruction.EncodeI(instruction.OpLW, 0, 1, 0x100),
			instruction.EncodeI(instruction.OpLW, 0, 2, 0x104),
			instruction.EncodeR(instruction.FnADD, 1, 2, 3, 0),
			instruction.EncodeR(instruction.FnADD, 3, 4, 5, 0),
			instruction.EncodeHalt(),
		},
		Registers: map[int]uint32{4: 100},
		Memory:    map[uint32]uint32{0x100: 10, 0x104: 20},
	}
}

func newMachine(t *testing.T, mode hardware.Mode) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(mode, memory.DefaultSize)
	test.DemandSuccess(t, err)
	m.Quiet = true
	return m
}

func TestParseMode(t *testing.T) {
	m, err := hardware.ParseMode("Single")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, hardware.SingleCycle)

	m, err = hardware.ParseMode(" multi ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, hardware.MultiCycle)
	test.ExpectEquality(t, m.String(), "multi")

	_, err = hardware.ParseMode("pipelined")
	test.ExpectSuccess(t, curated.Is(err, hardware.UnknownMode))
}

func TestRunToHalt(t *testing.T) {
	for _, mode := range []hardware.Mode{hardware.SingleCycle, hardware.MultiCycle} {
		m := newMachine(t, mode)
		test.DemandSuccess(t, m.Attach(sumProgram()))
		test.ExpectEquality(t, m.Datapath().PC(), uint32(0x40), mode)

		state, err := m.Run(0, nil)
		test.ExpectSuccess(t, err, mode)
		test.ExpectEquality(t, state, govern.Halted, mode)
		test.ExpectSuccess(t, m.Halted(), mode)
		test.ExpectEquality(t, m.Instructions(), 5, mode)

		s := m.State()
		test.ExpectEquality(t, s.Registers[3], uint32(30), mode)
		test.ExpectEquality(t, s.Registers[5], uint32(130), mode)
		test.ExpectSuccess(t, strings.Contains(s.String(), "[halted]"), mode)

		// a halted machine does not step
		_, err = m.Step()
		test.ExpectSuccess(t, curated.Is(err, hardware.Halted), mode)
	}
}

func TestRunLimit(t *testing.T) {
	m := newMachine(t, hardware.MultiCycle)
	test.DemandSuccess(t, m.Attach(sumProgram()))

	state, err := m.Run(3, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Paused)
	test.ExpectEquality(t, m.Steps(), 3)
	test.ExpectEquality(t, m.Instructions(), 0)
	test.ExpectEquality(t, m.State().Phase, control.StateMemory)

	// continue check ending the run
	state, err = m.Run(0, func(r datapath.Result) (govern.State, error) {
		if r.Complete {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.Instructions(), 1)
	test.ExpectEquality(t, m.State().Registers[1], uint32(10))
}

func TestHistory(t *testing.T) {
	m := newMachine(t, hardware.SingleCycle)
	test.DemandSuccess(t, m.Attach(sumProgram()))

	_, err := m.Run(0, nil)
	test.ExpectSuccess(t, err)

	h := m.History()
	test.DemandEquality(t, len(h), 5)
	test.ExpectEquality(t, h[0].Address, uint32(0x40))
	test.ExpectEquality(t, h[2].Instruction, instruction.EncodeR(instruction.FnADD, 1, 2, 3, 0))
	test.ExpectEquality(t, h[4].Halted, true)
}

func TestReset(t *testing.T) {
	m := newMachine(t, hardware.MultiCycle)
	test.DemandSuccess(t, m.Attach(sumProgram()))
	_, err := m.Run(0, nil)
	test.ExpectSuccess(t, err)

	id := m.RunID()

	m.Reset()
	once := m.State()
	m.Reset()
	twice := m.State()

	test.ExpectEquality(t, once, twice)
	test.ExpectEquality(t, once.Registers, [32]uint32{})
	test.ExpectEquality(t, once.PC, uint32(0x40))
	test.ExpectEquality(t, once.Phase, control.StateFetch)
	test.ExpectEquality(t, once.Halted, false)
	test.ExpectEquality(t, len(m.History()), 0)
	test.ExpectInequality(t, m.RunID(), id)

	// memory and program survive the reset. register presets do not
	_, err = m.Run(0, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.State().Registers[3], uint32(30))
	test.ExpectEquality(t, m.State().Registers[5], uint32(30))
}

func TestAttachErrors(t *testing.T) {
	m := newMachine(t, hardware.SingleCycle)

	p := sumProgram()
	p.Origin = 0x41
	test.ExpectSuccess(t, curated.Is(m.Attach(p), loader.UnalignedOrigin))

	p = sumProgram()
	p.Memory = map[uint32]uint32{memory.DefaultSize << 2: 1}
	err := m.Attach(p)
	test.ExpectSuccess(t, curated.Is(err, hardware.PresetError))
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))

	p = sumProgram()
	p.Origin = (memory.DefaultSize - 2) << 2
	test.ExpectSuccess(t, curated.Is(m.Attach(p), memory.AddressOutOfRange))
}

func TestStepError(t *testing.T) {
	m := newMachine(t, hardware.SingleCycle)
	test.DemandSuccess(t, m.Load(0, []uint32{0x01 << 26}))

	state, err := m.Run(10, nil)
	test.ExpectSuccess(t, curated.Is(err, instruction.UnrecognisedOpcode))
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.Steps(), 0)

	s := m.State()
	test.ExpectEquality(t, s.PC, uint32(0))
	test.ExpectEquality(t, s.IR, uint32(0))
	test.ExpectEquality(t, s.IPC, uint32(0))
	test.ExpectEquality(t, s.Cycles, 0)
}

// a load from outside of memory in the second instruction
func badLoadProgram() loader.Program {
	return loader.Program{
		Name: "badload",
		Words: []uint32{
			instruction.EncodeI(instruction.OpLW, 0, 1, 0x20),
			instruction.EncodeI(instruction.OpLW, 0, 2, 0x400),
			instruction.EncodeHalt(),
		},
		Memory: map[uint32]uint32{0x20: 0xabc},
	}
}

func TestMemoryPhaseError(t *testing.T) {
	m, err := hardware.NewMachine(hardware.MultiCycle, 16)
	test.DemandSuccess(t, err)
	m.Quiet = true
	test.DemandSuccess(t, m.Attach(badLoadProgram()))

	state, err := m.Run(0, nil)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))
	test.ExpectEquality(t, state, govern.Ending)

	before := m.State()
	test.ExpectEquality(t, before.Phase, control.StateMemory)
	test.ExpectEquality(t, before.Registers[1], uint32(0xabc))
	test.ExpectEquality(t, before.Registers[2], uint32(0))
	test.ExpectEquality(t, before.ALUOut, uint32(0x400))

	// the machine does not move on to writeback after the failed phase
	for i := 0; i < 3; i++ {
		_, err = m.Step()
		test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange), i)
		test.ExpectEquality(t, m.State(), before, i)
	}
	test.ExpectEquality(t, m.State().Registers[2], uint32(0))
}

func TestSingleCycleMemoryError(t *testing.T) {
	m, err := hardware.NewMachine(hardware.SingleCycle, 16)
	test.DemandSuccess(t, err)
	m.Quiet = true
	test.DemandSuccess(t, m.Attach(badLoadProgram()))

	_, err = m.Step()
	test.DemandSuccess(t, err)
	before := m.State()

	_, err = m.Step()
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))
	test.ExpectEquality(t, m.State(), before)

	s := m.State()
	test.ExpectEquality(t, s.PC, uint32(4))
	test.ExpectEquality(t, s.IPC, uint32(0))
	test.ExpectEquality(t, s.IR, instruction.EncodeI(instruction.OpLW, 0, 1, 0x20))
	test.ExpectEquality(t, s.MDR, uint32(0xabc))
	test.ExpectEquality(t, s.Registers[2], uint32(0))
	test.ExpectEquality(t, m.Steps(), 1)
}

func TestFailedAttachLeavesMachine(t *testing.T) {
	m := newMachine(t, hardware.SingleCycle)
	test.DemandSuccess(t, m.Attach(sumProgram()))

	unchanged := func(tag string) {
		t.Helper()
		d, err := m.Datapath().Dump(0x100, 2)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, d[0].Data, uint32(10), tag)
		test.ExpectEquality(t, d[1].Data, uint32(20), tag)

		d, err = m.Datapath().Dump(0x40, 1)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, d[0].Data, sumProgram().Words[0], tag)

		test.ExpectEquality(t, m.Datapath().PC(), uint32(0x40), tag)
	}

	p := sumProgram()
	p.Registers = map[int]uint32{40: 1}
	err := m.Attach(p)
	test.ExpectSuccess(t, curated.Is(err, hardware.PresetError))
	test.ExpectSuccess(t, curated.Has(err, registers.RegisterOutOfRange))
	unchanged("register preset")

	p = sumProgram()
	p.Memory = map[uint32]uint32{0x100: 99, memory.DefaultSize << 2: 1}
	err = m.Attach(p)
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))
	unchanged("memory preset")

	p = sumProgram()
	p.Origin = (memory.DefaultSize - 2) << 2
	test.ExpectSuccess(t, curated.Is(m.Attach(p), memory.AddressOutOfRange))
	unchanged("program size")
}

func TestResetOrigin(t *testing.T) {
	m := newMachine(t, hardware.SingleCycle)
	m.Reset()
	test.ExpectEquality(t, m.Datapath().PC(), uint32(0))

	test.DemandSuccess(t, m.Load(0x80, []uint32{instruction.EncodeHalt()}))
	_, err := m.Step()
	test.ExpectSuccess(t, err)

	// every register other than the PC is zero after reset
	m.Reset()
	s := m.State()
	test.ExpectEquality(t, s.PC, uint32(0x80))
	test.ExpectEquality(t, s.IR, uint32(0))
	test.ExpectEquality(t, s.IPC, uint32(0))
	test.ExpectEquality(t, s.NPC, uint32(0))
}
