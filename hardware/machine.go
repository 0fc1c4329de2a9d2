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


package hardware

import (
	"github.com/google/uuid"
	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/hardware/datapath"
	"github.com/jetsetilly/mipsdatapath/hardware/memory"
	"github.com/jetsetilly/mipsdatapath/hardware/registers"
	"github.com/jetsetilly/mipsdatapath/loader"
	"github.com/jetsetilly/mipsdatapath/logger"
)

// Sentinal errors.
const (
	Halted      = "machine: halted"
	PresetError = "machine: preset: %v"
)

// MaxHistory is the number of step results retained by the machine.
const MaxHistory = 1000

// Machine is a complete simulated processor.
type Machine struct {
	mode     Mode
	dp       *datapath.Datapath
	strategy datapath.Strategy

	// address the most recent program was loaded at. the PC is set to this
	// value on reset
	origin uint32

	// the most recent step results. oldest first
	history []datapath.Result

	steps        int
	instructions int
	halted       bool

	// identifies the run since the most recent reset
	runID uuid.UUID

	// suppresses log entries from the machine
	Quiet bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
// Memory will be memWords words in size.
func NewMachine(mode Mode, memWords int) (*Machine, error) {
	units, err := datapath.NewUnits(memWords)
	if err != nil {
		return nil, err
	}

	dp, err := datapath.NewDatapath(units)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		mode:     mode,
		dp:       dp,
		strategy: mode.strategy(),
	}
	m.Reset()

	return m, nil
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return !m.Quiet
}

// Mode returns the processor mode of the machine.
func (m *Machine) Mode() Mode {
	return m.mode
}

// RunID returns the identifier of the current run. A new identifier is
// created on every reset.
func (m *Machine) RunID() uuid.UUID {
	return m.runID
}

// Datapath returns the datapath of the machine. It should be used for its
// read accessors only.
func (m *Machine) Datapath() *datapath.Datapath {
	return m.dp
}

// Load the instruction words into memory at the origin address and reset
// the machine. The PC will be set to the origin.
func (m *Machine) Load(origin uint32, words []uint32) error {
	if err := m.dp.Load(origin, words); err != nil {
		return err
	}
	m.origin = origin
	m.Reset()
	return nil
}

// fits returns an error if the program or any of its presets fall outside
// of the machine.
func (m *Machine) fits(p loader.Program) error {
	size := m.dp.MemorySize()

	for _, a := range p.PresetAddresses() {
		if int(a>>2) >= size {
			return curated.Errorf(PresetError, curated.Errorf(memory.AddressOutOfRange, a))
		}
	}

	for _, n := range p.PresetRegisters() {
		if n < 0 || n >= registers.NumRegisters {
			return curated.Errorf(PresetError, curated.Errorf(registers.RegisterOutOfRange, n))
		}
	}

	if int(p.Origin>>2) >= size || int(p.Origin>>2)+len(p.Words) > size {
		return curated.Errorf(memory.AddressOutOfRange, p.Origin+uint32(len(p.Words)-1)<<2)
	}

	return nil
}

// Attach the program to the machine. Memory is cleared before the program
// is loaded. The register presets of the program are applied after reset.
//
// The program is checked before anything is changed. A program that can not
// be attached leaves the machine as it was.
func (m *Machine) Attach(p loader.Program) error {
	if err := p.Check(); err != nil {
		return err
	}
	if err := m.fits(p); err != nil {
		return err
	}

	m.dp.ClearMemory()

	for _, a := range p.PresetAddresses() {
		if err := m.dp.PokeMemory(a, p.Memory[a]); err != nil {
			return curated.Errorf(PresetError, err)
		}
	}

	if err := m.Load(p.Origin, p.Words); err != nil {
		return err
	}

	for _, n := range p.PresetRegisters() {
		if err := m.dp.PokeRegister(n, p.Registers[n]); err != nil {
			return curated.Errorf(PresetError, err)
		}
	}

	logger.Logf(m, "machine", "attached %s", p)

	return nil
}

// Reset zeroes every register and returns the control unit to its initial
// state. Memory is not changed.
//
// The PC is the exception to the zeroing. It is set to the origin of the most
// recently loaded program so that the program can be run again. Before any
// program is loaded the origin is zero.
func (m *Machine) Reset() {
	m.dp.Reset()
	m.strategy.Reset()
	m.dp.SetPC(m.origin)
	m.history = m.history[:0]
	m.steps = 0
	m.instructions = 0
	m.halted = false
	m.runID = uuid.New()
}

// Halted returns true if the machine has executed a HALT instruction.
func (m *Machine) Halted() bool {
	return m.halted
}

// Steps returns the number of successful calls to Step() since the last
// reset.
func (m *Machine) Steps() int {
	return m.steps
}

// Instructions returns the number of instructions completed since the last
// reset.
func (m *Machine) Instructions() int {
	return m.instructions
}

// History returns a copy of the most recent step results, oldest first.
func (m *Machine) History() []datapath.Result {
	h := make([]datapath.Result, len(m.history))
	copy(h, m.history)
	return h
}

func (m *Machine) record(r datapath.Result) {
	if len(m.history) >= MaxHistory {
		m.history = append(m.history[:0], m.history[1:]...)
	}
	m.history = append(m.history, r)
}
