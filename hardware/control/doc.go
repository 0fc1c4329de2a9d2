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


// Package control generates the control signals that direct the datapath.
//
// ControlUnit is the combinational control of the single-cycle datapath. The
// complete Signals for an instruction are produced in one call to Generate().
//
// MultiCycle is the finite state machine of the multi-cycle datapath. Each
// call to Step() produces the Signals for one clock phase and advances the
// machine to the next State. The sequence of states for each class of
// instruction is:
//
//	R_TYPE, I_TYPE    FETCH -> DECODE -> EXECUTE -> WRITEBACK -> FETCH
//	LOAD              FETCH -> DECODE -> EXECUTE -> MEMORY -> WRITEBACK -> FETCH
//	STORE             FETCH -> DECODE -> EXECUTE -> MEMORY -> FETCH
//	BRANCH, JUMP      FETCH -> DECODE -> EXECUTE -> FETCH
//	HALT              FETCH -> DECODE -> EXECUTE -> FETCH
//
// Neither control unit has access to the datapath. They are given the
// contents of the instruction register by value and the datapath applies the
// resulting Signals. Branch conditions can not be known until the ALU has
// performed the comparison so the datapath completes a branch with
// Signals.Resolve().
package control
