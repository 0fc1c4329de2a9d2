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
	"io"

	"github.com/jetsetilly/mipsdatapath/hardware/alu"
	"github.com/jetsetilly/mipsdatapath/hardware/control"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
	"github.com/jetsetilly/mipsdatapath/hardware/memory"
	"github.com/jetsetilly/mipsdatapath/hardware/registers"
)

// PC returns the current value of the program counter.
func (d *Datapath) PC() uint32 {
	return d.pc.Value()
}

// IR returns the value in the instruction register.
func (d *Datapath) IR() uint32 {
	return d.ir.Value()
}

// IPC returns the address of the current instruction.
func (d *Datapath) IPC() uint32 {
	return d.ipc.Value()
}

// NPC returns the most recent PC+4 value.
func (d *Datapath) NPC() uint32 {
	return d.npc.Value()
}

// MDR returns the value in the memory data register.
func (d *Datapath) MDR() uint32 {
	return d.mdr.Value()
}

// ALUOut returns the value in the ALU output register.
func (d *Datapath) ALUOut() uint32 {
	return d.aluOut.Value()
}

// A returns the value of the A holding register.
func (d *Datapath) A() uint32 {
	return d.a.Value()
}

// B returns the value of the B holding register.
func (d *Datapath) B() uint32 {
	return d.b.Value()
}

// Register returns the value of general purpose register n.
func (d *Datapath) Register(n int) (uint32, error) {
	return d.regfile.Read(n)
}

// Registers returns the contents of the register file.
func (d *Datapath) Registers() [registers.NumRegisters]uint32 {
	return d.regfile.Values()
}

// Flags returns the ALU flags from the most recent ALU operation.
func (d *Datapath) Flags() alu.Flags {
	return d.alu.Flags()
}

// Signals returns the most recently applied control signals.
func (d *Datapath) Signals() control.Signals {
	return d.signals
}

// Fields returns the most recently decoded instruction fields.
func (d *Datapath) Fields() instruction.Fields {
	return d.fields
}

// Cycles returns the number of clock cycles performed since the last reset.
func (d *Datapath) Cycles() int {
	return d.cycles
}

// MemorySize returns the number of words of memory.
func (d *Datapath) MemorySize() int {
	return d.mem.Size()
}

// Dump returns count words of memory from origin.
func (d *Datapath) Dump(origin uint32, count int) ([]memory.Word, error) {
	return d.mem.Dump(origin, count)
}

// WriteDump writes count words of memory from origin to the io.Writer.
func (d *Datapath) WriteDump(output io.Writer, origin uint32, count int) error {
	return d.mem.WriteDump(output, origin, count)
}

// Load the words into memory from the origin address.
func (d *Datapath) Load(origin uint32, words []uint32) error {
	return d.mem.Load(origin, words)
}

// PokeMemory writes to memory without regard to the write gate.
func (d *Datapath) PokeMemory(address uint32, data uint32) error {
	return d.mem.Poke(address, data)
}

// PokeRegister writes to general purpose register n without regard to the
// write gate. Writes to register zero are ignored.
func (d *Datapath) PokeRegister(n int, data uint32) error {
	return d.regfile.Poke(n, data)
}

// SetPC sets the program counter without regard to the write gate.
func (d *Datapath) SetPC(address uint32) {
	registers.Latch(&d.pc, address)
}

// ClearMemory zeroes every word of memory.
func (d *Datapath) ClearMemory() {
	d.mem.Clear()
}
