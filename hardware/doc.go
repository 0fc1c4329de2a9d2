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


// Package hardware is the base package for the datapath simulation. The
// Machine type pairs a datapath.Datapath with the control strategy of the
// selected Mode and is the entry point for loading, stepping, running and
// resetting a program.
//
// The functional units are found in the sub-packages: registers, alu,
// memory and mux. The instruction sub-package decodes and classifies
// instruction words and the control sub-package generates the control
// signals for them.
//
// A Machine is not safe for concurrent use. It should be owned by a single
// goroutine which makes all calls to Step(), Run() and Reset().
package hardware
