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


package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
)

// Sentinal errors.
const (
	UnalignedOrigin = "loader: origin is not word aligned (%#08x)"
	UnalignedPreset = "loader: memory preset is not word aligned (%#08x)"
	NoProgram       = "loader: %s: no program words"
)

// Program is a loaded program ready to be attached to a machine.
type Program struct {
	Name   string
	Origin uint32
	Words  []uint32

	// register and memory values to set before the program runs
	Registers map[int]uint32
	Memory    map[uint32]uint32

	// sha1 hash of the data the program was loaded from
	Hash string
}

// Check returns an error if the program can not be attached to a machine.
func (p Program) Check() error {
	if p.Origin&0x03 != 0 {
		return curated.Errorf(UnalignedOrigin, p.Origin)
	}
	if len(p.Words) == 0 {
		return curated.Errorf(NoProgram, p.Name)
	}
	for a := range p.Memory {
		if a&0x03 != 0 {
			return curated.Errorf(UnalignedPreset, a)
		}
	}
	return nil
}

// PresetRegisters returns the register numbers in the Registers field in
// ascending order.
func (p Program) PresetRegisters() []int {
	r := make([]int, 0, len(p.Registers))
	for n := range p.Registers {
		r = append(r, n)
	}
	sort.Ints(r)
	return r
}

// PresetAddresses returns the addresses in the Memory field in ascending
// order.
func (p Program) PresetAddresses() []uint32 {
	a := make([]uint32, 0, len(p.Memory))
	for addr := range p.Memory {
		a = append(a, addr)
	}
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	return a
}

func (p Program) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %d words at %#08x", p.Name, len(p.Words), p.Origin))
	if len(p.Registers) > 0 {
		s.WriteString(fmt.Sprintf(", %d registers", len(p.Registers)))
	}
	if len(p.Memory) > 0 {
		s.WriteString(fmt.Sprintf(", %d memory presets", len(p.Memory)))
	}
	return s.String()
}
