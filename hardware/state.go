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
	"fmt"
	"strings"

	"github.com/jetsetilly/mipsdatapath/hardware/alu"
	"github.com/jetsetilly/mipsdatapath/hardware/control"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
	"github.com/jetsetilly/mipsdatapath/hardware/registers"
)

// State is a point-in-time copy of every readable value in the machine.
type State struct {
	Mode   Mode
	Phase  control.State
	Halted bool

	PC     uint32
	IR     uint32
	IPC    uint32
	NPC    uint32
	MDR    uint32
	ALUOut uint32
	A      uint32
	B      uint32

	Registers [registers.NumRegisters]uint32
	Flags     alu.Flags
	Signals   control.Signals

	Cycles       int
	Steps        int
	Instructions int
}

// State returns a snapshot of the machine. Taking the snapshot does not
// change the machine.
func (m *Machine) State() State {
	return State{
		Mode:         m.mode,
		Phase:        m.strategy.State(),
		Halted:       m.halted,
		PC:           m.dp.PC(),
		IR:           m.dp.IR(),
		IPC:          m.dp.IPC(),
		NPC:          m.dp.NPC(),
		MDR:          m.dp.MDR(),
		ALUOut:       m.dp.ALUOut(),
		A:            m.dp.A(),
		B:            m.dp.B(),
		Registers:    m.dp.Registers(),
		Flags:        m.dp.Flags(),
		Signals:      m.dp.Signals(),
		Cycles:       m.dp.Cycles(),
		Steps:        m.steps,
		Instructions: m.instructions,
	}
}

func (s State) String() string {
	b := strings.Builder{}

	b.WriteString(fmt.Sprintf("mode=%s phase=%s cycles=%d instructions=%d", s.Mode, s.Phase, s.Cycles, s.Instructions))
	if s.Halted {
		b.WriteString(" [halted]")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("PC=%#08x IR=%#08x (%s)\n", s.PC, s.IR, instruction.Disassemble(s.IR)))
	b.WriteString(fmt.Sprintf("A=%#08x B=%#08x ALUOut=%#08x MDR=%#08x flags=%s\n", s.A, s.B, s.ALUOut, s.MDR, s.Flags))
	b.WriteString(fmt.Sprintf("%s\n", s.Signals))

	for i, v := range s.Registers {
		b.WriteString(fmt.Sprintf("R%-2d=%#08x", i, v))
		if i%4 == 3 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	return b.String()
}
