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


// Package datapath wires the functional units of the processor together and
// moves values between them under the direction of control.Signals.
//
// The Datapath exclusively owns every unit it is created with. The units are
// supplied through the Units type, normally created with NewUnits():
//
//	units, err := datapath.NewUnits(memory.DefaultSize)
//	dp, err := datapath.NewDatapath(units)
//
// Each stage of instruction execution is a separate method: FetchInstruction,
// DecodeInstruction, ReadRegisters, Execute, MemoryAccess, WriteBack and
// UpdatePC. Which units respond in a stage is decided by the Signals most
// recently passed to Apply().
//
// The single-cycle and multi-cycle processors are expressed as two Strategy
// implementations over the same Datapath. SingleCycle runs every stage for
// one instruction in a single call to Step(). MultiCycle runs the one stage
// selected by its state machine.
//
// Two holding registers not found in a textbook diagram are used. IPC is the
// address of the current instruction, latched at the start of fetch, and is
// the base for branch and jump targets. NPC holds PC+4 as computed by the ALU
// during fetch.
package datapath
