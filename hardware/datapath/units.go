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
	"github.com/jetsetilly/mipsdatapath/hardware/alu"
	"github.com/jetsetilly/mipsdatapath/hardware/memory"
	"github.com/jetsetilly/mipsdatapath/hardware/registers"
)

// Units are the functional units owned by a Datapath. The Datapath takes
// ownership of the units. In particular the Memory instance must not be
// shared with another Datapath.
type Units struct {
	PC registers.ProgramCounter

	IR     registers.Register
	MDR    registers.Register
	ALUOut registers.Register
	A      registers.Register
	B      registers.Register
	IPC    registers.Register
	NPC    registers.Register

	Registers registers.RegisterFile
	ALU       alu.ALU
	Memory    *memory.Memory
}

// NewUnits creates a complete set of units with memory of the specified
// number of words.
func NewUnits(memWords int) (Units, error) {
	mem, err := memory.NewMemory(memWords)
	if err != nil {
		return Units{}, err
	}

	return Units{
		PC:        registers.NewProgramCounter(),
		IR:        registers.NewRegister("IR", 32),
		MDR:       registers.NewRegister("MDR", 32),
		ALUOut:    registers.NewRegister("ALUOut", 32),
		A:         registers.NewRegister("A", 32),
		B:         registers.NewRegister("B", 32),
		IPC:       registers.NewRegister("IPC", 32),
		NPC:       registers.NewRegister("NPC", 32),
		Registers: registers.NewRegisterFile(),
		Memory:    mem,
	}, nil
}
