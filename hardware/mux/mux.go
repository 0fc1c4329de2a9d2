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

// Package mux implements the named multiplexers that route values through
// the datapath. Selection errors are reported when the selection is made
// rather than when the output is read, so that a bad control signal is
// caught at the point it is applied.
package mux

import (
	"fmt"

	"github.com/jetsetilly/mipsdatapath/curated"
)

// Sentinal errors.
const (
	SelectOutOfRange = "mux: %s: select out of range (%d)"
	TooManyInputs    = "mux: %s: too many inputs (%d > %d)"
)

// Multiplexer selects one of a fixed number of inputs.
type Multiplexer struct {
	label  string
	inputs []uint32
	sel    int
}

// NewMultiplexer is the preferred method of initialisation for the
// Multiplexer type. A multiplexer always has at least one input.
func NewMultiplexer(label string, numInputs int) Multiplexer {
	if numInputs < 1 {
		numInputs = 1
	}
	return Multiplexer{
		label:  label,
		inputs: make([]uint32, numInputs),
	}
}

func (m Multiplexer) String() string {
	return fmt.Sprintf("%s: select=%d output=%#08x", m.label, m.sel, m.Output())
}

// Label returns the name of the multiplexer.
func (m Multiplexer) Label() string {
	return m.label
}

// Capacity returns the number of inputs.
func (m Multiplexer) Capacity() int {
	return len(m.inputs)
}

// SetInputs sets the input values, starting with input zero. Inputs not
// included in the call keep their previous value.
func (m *Multiplexer) SetInputs(values ...uint32) error {
	if len(values) > len(m.inputs) {
		return curated.Errorf(TooManyInputs, m.label, len(values), len(m.inputs))
	}
	copy(m.inputs, values)
	return nil
}

// Select sets the selected input. An error leaves the previous selection in
// place.
func (m *Multiplexer) Select(sel int) error {
	if sel < 0 || sel >= len(m.inputs) {
		return curated.Errorf(SelectOutOfRange, m.label, sel)
	}
	m.sel = sel
	return nil
}

// Selected returns the current selection.
func (m Multiplexer) Selected() int {
	return m.sel
}

// Output returns the value of the selected input.
func (m Multiplexer) Output() uint32 {
	return m.inputs[m.sel]
}

// Reset sets all inputs to zero and selects input zero.
func (m *Multiplexer) Reset() {
	for i := range m.inputs {
		m.inputs[i] = 0
	}
	m.sel = 0
}
