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
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/hardware/datapath"
)

// Mode selects the single-cycle or the multi-cycle processor.
type Mode int

// List of valid modes.
const (
	SingleCycle Mode = iota
	MultiCycle
)

func (m Mode) String() string {
	switch m {
	case SingleCycle:
		return "single"
	case MultiCycle:
		return "multi"
	}
	return "unknown"
}

// Sentinal error returned by ParseMode().
const UnknownMode = "hardware: unknown mode (%s)"

// ParseMode converts the string to a Mode. Either "single" or "multi" is
// accepted, in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return SingleCycle, nil
	case "multi":
		return MultiCycle, nil
	}
	return SingleCycle, curated.Errorf(UnknownMode, s)
}

// strategy returns a new control strategy for the mode.
func (m Mode) strategy() datapath.Strategy {
	if m == MultiCycle {
		return datapath.NewMultiCycle()
	}
	return datapath.NewSingleCycle()
}
