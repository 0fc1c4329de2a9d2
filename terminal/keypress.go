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


package terminal

import (
	"io"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/govern"
	"github.com/pkg/term"
)

// Device is the terminal opened by Open().
const Device = "/dev/tty"

// Sentinal error.
const TerminalError = "terminal: %v"

// KeyState returns the simulation state requested by the key.
func KeyState(key byte) govern.State {
	switch key {
	case 'r', 'R':
		return govern.Running
	case 'q', 'Q', 0x1b, 0x04:
		return govern.Ending
	}
	return govern.Stepping
}

// Keypress reads single keys from the terminal.
type Keypress struct {
	t *term.Term
}

// Open the terminal in cbreak mode. The terminal must be restored with a
// call to Close().
func Open() (*Keypress, error) {
	t, err := term.Open(Device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return &Keypress{t: t}, nil
}

// Wait for a key and return the simulation state it requests. The end of
// input is treated as a request to stop.
func (k *Keypress) Wait() (govern.State, error) {
	b := make([]byte, 1)
	_, err := k.t.Read(b)
	if err != nil {
		if err == io.EOF {
			return govern.Ending, nil
		}
		return govern.Ending, curated.Errorf(TerminalError, err)
	}
	return KeyState(b[0]), nil
}

// Close restores the terminal to the mode it was in when opened.
func (k *Keypress) Close() error {
	if err := k.t.Restore(); err != nil {
		_ = k.t.Close()
		return curated.Errorf(TerminalError, err)
	}
	if err := k.t.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
