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
	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/govern"
	"github.com/jetsetilly/mipsdatapath/hardware/datapath"
	"github.com/jetsetilly/mipsdatapath/logger"
)

// Step advances the machine by one step. In single-cycle mode a step is one
// instruction. In multi-cycle mode it is one clock phase.
//
// Returns an error matching the Halted pattern if the machine has already
// halted. A machine that has halted must be reset before it can step again.
func (m *Machine) Step() (datapath.Result, error) {
	if m.halted {
		return datapath.Result{}, curated.Errorf(Halted)
	}

	r, err := m.strategy.Step(m.dp)
	if err != nil {
		logger.Logf(m, "machine", "%s: %v", m.runID, err)
		return r, err
	}

	m.steps++
	m.record(r)

	if r.Complete {
		m.instructions++
	}

	if r.Halted {
		m.halted = true
		logger.Logf(m, "machine", "%s: halted at %#08x after %d instructions", m.runID, r.Address, m.instructions)
	}

	return r, nil
}

// Run steps the machine until it halts, an error occurs, limit steps have
// been taken or continueCheck returns a state that does not permit
// continuation. A limit of zero or less means there is no limit.
//
// continueCheck is called after every step and can be nil.
func (m *Machine) Run(limit int, continueCheck func(datapath.Result) (govern.State, error)) (govern.State, error) {
	if continueCheck == nil {
		continueCheck = func(_ datapath.Result) (govern.State, error) { return govern.Running, nil }
	}

	logger.Logf(m, "machine", "%s: running in %s-cycle mode", m.runID, m.mode)

	for n := 0; limit <= 0 || n < limit; n++ {
		if m.halted {
			return govern.Halted, nil
		}

		r, err := m.Step()
		if err != nil {
			return govern.Ending, err
		}

		state, err := continueCheck(r)
		if err != nil {
			return govern.Ending, err
		}

		if m.halted {
			return govern.Halted, nil
		}

		if !state.Continue() {
			return state, nil
		}
	}

	logger.Logf(m, "machine", "%s: stopped after %d steps", m.runID, limit)

	return govern.Paused, nil
}
