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
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/hardware/alu"
	"github.com/jetsetilly/mipsdatapath/hardware/control"
	"github.com/jetsetilly/mipsdatapath/hardware/instruction"
	"github.com/jetsetilly/mipsdatapath/hardware/memory"
	"github.com/jetsetilly/mipsdatapath/hardware/mux"
	"github.com/jetsetilly/mipsdatapath/hardware/registers"
)

// Sentinal errors.
const (
	NoMemory     = "datapath: no memory"
	UnknownPhase = "datapath: unknown phase (%v)"
)

// Datapath is the network of functional units through which instruction
// data flows.
type Datapath struct {
	pc registers.ProgramCounter

	ir     registers.Register
	mdr    registers.Register
	aluOut registers.Register
	a      registers.Register
	b      registers.Register
	ipc    registers.Register
	npc    registers.Register

	regfile registers.RegisterFile
	alu     alu.ALU
	mem     *memory.Memory

	srcA     mux.Multiplexer
	srcB     mux.Multiplexer
	regDst   mux.Multiplexer
	memToReg mux.Multiplexer
	pcSource mux.Multiplexer

	signals control.Signals
	fields  instruction.Fields

	cycles int
}

// NewDatapath is the preferred method of initialisation for the Datapath
// type.
func NewDatapath(u Units) (*Datapath, error) {
	if u.Memory == nil {
		return nil, curated.Errorf(NoMemory)
	}

	return &Datapath{
		pc:       u.PC,
		ir:       u.IR,
		mdr:      u.MDR,
		aluOut:   u.ALUOut,
		a:        u.A,
		b:        u.B,
		ipc:      u.IPC,
		npc:      u.NPC,
		regfile:  u.Registers,
		alu:      u.ALU,
		mem:      u.Memory,
		srcA:     mux.NewMultiplexer("ALUSrcA", 2),
		srcB:     mux.NewMultiplexer("ALUSrcB", 3),
		regDst:   mux.NewMultiplexer("RegDst", 3),
		memToReg: mux.NewMultiplexer("MemToReg", 2),
		pcSource: mux.NewMultiplexer("PCSource", 3),
	}, nil
}

func (d *Datapath) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s %s %s\n", d.pc, d.ir, d.ipc, d.npc))
	s.WriteString(fmt.Sprintf("%s %s %s %s\n", d.a, d.b, d.aluOut, d.mdr))
	s.WriteString(fmt.Sprintf("flags=%s cycles=%d", d.alu.Flags(), d.cycles))
	return s.String()
}

// Apply the control signals to the datapath. Multiplexer selections that are
// out of range are reported immediately and nothing further is applied.
func (d *Datapath) Apply(sig control.Signals) error {
	if err := sig.Check(); err != nil {
		return err
	}

	if err := d.srcA.Select(sig.ALUSrcA); err != nil {
		return err
	}
	if err := d.srcB.Select(sig.ALUSrcB); err != nil {
		return err
	}
	if err := d.regDst.Select(sig.RegDst); err != nil {
		return err
	}
	if err := d.memToReg.Select(sig.MemToReg); err != nil {
		return err
	}
	if err := d.pcSource.Select(sig.PCSource); err != nil {
		return err
	}

	d.alu.SetOperation(sig.ALUOp)
	d.mem.SetReadEnable(sig.MemRead)
	d.mem.SetWriteEnable(sig.MemWrite)
	d.regfile.SetWriteEnable(sig.RegWrite)
	d.ir.SetEnable(sig.IRWrite)
	d.pc.SetEnable(sig.PCWrite)

	d.signals = sig

	return nil
}

// DecodeInstruction extracts the fields of the word in the instruction
// register. The fields are used by the remaining stages.
func (d *Datapath) DecodeInstruction() instruction.Fields {
	d.fields = instruction.Decode(d.ir.Value())
	return d.fields
}

// operate routes the multiplexed inputs to the ALU and executes the current
// operation.
func (d *Datapath) operate() (uint32, error) {
	err := d.srcA.SetInputs(d.a.Value(), d.ipc.Value())
	if err != nil {
		return 0, err
	}
	err = d.srcB.SetInputs(d.b.Value(), d.fields.Immediate, 4)
	if err != nil {
		return 0, err
	}
	d.alu.SetInputs(d.srcA.Output(), d.srcB.Output())
	return d.alu.Execute()
}

// FetchInstruction reads memory at the PC and latches the word into the
// instruction register if IRWrite is asserted. PC+4 is always computed by
// the ALU but is only committed to the PC if PCWrite is asserted.
//
// Returns the word read from memory. Nothing is latched if the read fails.
func (d *Datapath) FetchInstruction() (uint32, error) {
	w, err := d.mem.Read(d.pc.Value())
	if err != nil {
		return 0, err
	}

	registers.Latch(&d.ipc, d.pc.Value())
	d.ir.Write(w)

	next, err := d.operate()
	if err != nil {
		return 0, err
	}
	registers.Latch(&d.npc, next)
	d.pc.Write(next)

	return w, nil
}

// ReadRegisters copies the rs and rt registers to the A and B holding
// registers. The read is not gated.
func (d *Datapath) ReadRegisters() error {
	a, err := d.regfile.Read(int(d.fields.Rs))
	if err != nil {
		return err
	}
	b, err := d.regfile.Read(int(d.fields.Rt))
	if err != nil {
		return err
	}
	registers.Latch(&d.a, a)
	registers.Latch(&d.b, b)
	return nil
}

// Execute performs the ALU operation on the multiplexed inputs and latches
// the result into ALUOut.
func (d *Datapath) Execute() (uint32, error) {
	r, err := d.operate()
	if err != nil {
		return 0, err
	}
	registers.Latch(&d.aluOut, r)
	return r, nil
}

// ResolveBranch applies the current signals again with the branch condition
// evaluated against the ALU zero flag. Has no effect if the current signals
// do not describe a branch.
func (d *Datapath) ResolveBranch() (bool, error) {
	if d.signals.Branch == control.NoBranch {
		return false, nil
	}
	zero := d.alu.Flags().Zero
	return d.signals.Taken(zero), d.Apply(d.signals.Resolve(zero))
}

// MemoryAccess uses ALUOut as the address. If MemRead is asserted the word is
// latched into MDR and returned with a true value. If MemWrite is asserted
// the value of B is stored. Otherwise the memory is not accessed.
func (d *Datapath) MemoryAccess() (uint32, bool, error) {
	address := d.aluOut.Value()

	if d.mem.ReadEnabled() {
		v, err := d.mem.Read(address)
		if err != nil {
			return 0, false, err
		}
		registers.Latch(&d.mdr, v)
		return v, true, nil
	}

	if d.mem.WriteEnabled() {
		if err := d.mem.Write(address, d.b.Value()); err != nil {
			return 0, false, err
		}
	}

	return 0, false, nil
}

// WriteBack writes ALUOut or MDR to the rt, rd or return address register.
// The write only happens if RegWrite is asserted and never to register zero.
func (d *Datapath) WriteBack() error {
	err := d.regDst.SetInputs(uint32(d.fields.Rt), uint32(d.fields.Rd), registers.ReturnAddress)
	if err != nil {
		return err
	}
	err = d.memToReg.SetInputs(d.aluOut.Value(), d.mdr.Value())
	if err != nil {
		return err
	}
	err = d.regfile.SetWriteRegister(int(d.regDst.Output()))
	if err != nil {
		return err
	}
	d.regfile.Write(d.memToReg.Output())
	return nil
}

// BranchTarget returns the address of a taken branch for the current
// instruction.
func (d *Datapath) BranchTarget() uint32 {
	return d.ipc.Value() + d.fields.Immediate<<2
}

// JumpTarget returns the address of a jump for the current instruction.
func (d *Datapath) JumpTarget() uint32 {
	return d.ipc.Value()&0xf0000000 | d.fields.Address<<2
}

// UpdatePC writes the PC from PC+4, the branch target or the jump target as
// selected by PCSource. The write only happens if PCWrite is asserted.
func (d *Datapath) UpdatePC() error {
	err := d.pcSource.SetInputs(d.npc.Value(), d.BranchTarget(), d.JumpTarget())
	if err != nil {
		return err
	}
	d.pc.Write(d.pcSource.Output())
	return nil
}

// ExecuteCycle performs the stages of the multi-cycle datapath for the
// phase. Signals for the phase must have been applied. Returns a short
// description of what happened.
func (d *Datapath) ExecuteCycle(phase control.State) (string, error) {
	var desc string

	switch phase {
	case control.StateFetch:
		w, err := d.FetchInstruction()
		if err != nil {
			return "", err
		}
		desc = fmt.Sprintf("fetch: %#08x from %#08x", w, d.ipc.Value())

	case control.StateDecode:
		f := d.DecodeInstruction()
		if err := d.ReadRegisters(); err != nil {
			return "", err
		}
		desc = fmt.Sprintf("decode: %s", instruction.Disassemble(f.Word))

	case control.StateExecute:
		r, err := d.Execute()
		if err != nil {
			return "", err
		}
		desc = fmt.Sprintf("execute: alu=%#08x", r)

		taken, err := d.ResolveBranch()
		if err != nil {
			return "", err
		}
		if taken {
			desc = fmt.Sprintf("%s branch taken", desc)
		}

		if d.signals.RegWrite {
			if err := d.WriteBack(); err != nil {
				return "", err
			}
			desc = fmt.Sprintf("%s $%d=%#08x", desc, d.regfile.WriteRegister(), d.memToReg.Output())
		}

		if d.signals.PCWrite {
			if err := d.UpdatePC(); err != nil {
				return "", err
			}
			desc = fmt.Sprintf("%s pc=%#08x", desc, d.pc.Value())
		}

	case control.StateMemory:
		v, read, err := d.MemoryAccess()
		if err != nil {
			return "", err
		}
		if read {
			desc = fmt.Sprintf("memory: read %#08x from %#08x", v, d.aluOut.Value())
		} else if d.signals.MemWrite {
			desc = fmt.Sprintf("memory: wrote %#08x to %#08x", d.b.Value(), d.aluOut.Value())
		} else {
			desc = "memory: idle"
		}

	case control.StateWriteback:
		if err := d.WriteBack(); err != nil {
			return "", err
		}
		desc = fmt.Sprintf("writeback: $%d=%#08x", d.regfile.WriteRegister(), d.memToReg.Output())

	default:
		return "", curated.Errorf(UnknownPhase, phase)
	}

	d.cycles++

	return desc, nil
}

// checkpoint is a copy of the values a step can change before it fails. The
// register file and memory are written after the last point of failure and
// are not included.
type checkpoint struct {
	pc     uint32
	ir     uint32
	mdr    uint32
	aluOut uint32
	a      uint32
	b      uint32
	ipc    uint32
	npc    uint32

	alu     alu.ALU
	signals control.Signals
	fields  instruction.Fields
	cycles  int
}

func (d *Datapath) save() checkpoint {
	return checkpoint{
		pc:      d.pc.Value(),
		ir:      d.ir.Value(),
		mdr:     d.mdr.Value(),
		aluOut:  d.aluOut.Value(),
		a:       d.a.Value(),
		b:       d.b.Value(),
		ipc:     d.ipc.Value(),
		npc:     d.npc.Value(),
		alu:     d.alu,
		signals: d.signals,
		fields:  d.fields,
		cycles:  d.cycles,
	}
}

// rollback restores the datapath to the checkpoint. The signals in force at
// the checkpoint are applied again.
func (d *Datapath) rollback(c checkpoint) {
	_ = d.Apply(c.signals)

	registers.Latch(&d.pc, c.pc)
	registers.Latch(&d.ir, c.ir)
	registers.Latch(&d.mdr, c.mdr)
	registers.Latch(&d.aluOut, c.aluOut)
	registers.Latch(&d.a, c.a)
	registers.Latch(&d.b, c.b)
	registers.Latch(&d.ipc, c.ipc)
	registers.Latch(&d.npc, c.npc)

	d.alu = c.alu
	d.fields = c.fields
	d.cycles = c.cycles
}

// Reset zeroes every register, the register file, the ALU and the
// multiplexers. The cycle count is also reset. The contents of memory are
// unchanged.
func (d *Datapath) Reset() {
	d.pc.Reset()
	d.ir.Reset()
	d.mdr.Reset()
	d.aluOut.Reset()
	d.a.Reset()
	d.b.Reset()
	d.ipc.Reset()
	d.npc.Reset()
	d.regfile.Reset()
	d.alu.Reset()
	d.srcA.Reset()
	d.srcB.Reset()
	d.regDst.Reset()
	d.memToReg.Reset()
	d.pcSource.Reset()
	d.mem.SetReadEnable(false)
	d.mem.SetWriteEnable(false)
	d.signals = control.Signals{}
	d.fields = instruction.Fields{}
	d.cycles = 0
}
