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

package memory

import (
	"fmt"
	"io"

	"github.com/jetsetilly/mipsdatapath/curated"
)

// DefaultSize is the number of words in memory if no other size is given.
const DefaultSize = 1024

// Sentinal errors.
const (
	AddressOutOfRange = "memory: address out of range (%#08x)"
	InvalidSize       = "memory: invalid size (%d words)"
)

// Memory is a word addressed store. Byte addresses are converted to word
// addresses by discarding the lower two bits.
type Memory struct {
	data []uint32

	readEnable  bool
	writeEnable bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		return nil, curated.Errorf(InvalidSize, size)
	}
	return &Memory{
		data: make([]uint32, size),
	}, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("memory: %d words [read=%v write=%v]", len(mem.data), mem.readEnable, mem.writeEnable)
}

// Size returns the number of words in memory.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// Memtop returns the highest valid byte address that is word aligned.
func (mem *Memory) Memtop() uint32 {
	return uint32(len(mem.data)-1) << 2
}

func (mem *Memory) index(address uint32) (int, error) {
	idx := int(address >> 2)
	if idx >= len(mem.data) {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return idx, nil
}

// SetReadEnable sets the read enable gate.
func (mem *Memory) SetReadEnable(enable bool) {
	mem.readEnable = enable
}

// SetWriteEnable sets the write enable gate.
func (mem *Memory) SetWriteEnable(enable bool) {
	mem.writeEnable = enable
}

// ReadEnabled returns the state of the read enable gate.
func (mem *Memory) ReadEnabled() bool {
	return mem.readEnable
}

// WriteEnabled returns the state of the write enable gate.
func (mem *Memory) WriteEnabled() bool {
	return mem.writeEnable
}

// Read returns the word at address. If the read enable gate is not set the
// memory is not accessed and zero is returned.
func (mem *Memory) Read(address uint32) (uint32, error) {
	if !mem.readEnable {
		return 0, nil
	}
	return mem.Peek(address)
}

// Write the word to address. If the write enable gate is not set the memory
// is not accessed.
func (mem *Memory) Write(address uint32, data uint32) error {
	if !mem.writeEnable {
		return nil
	}
	return mem.Poke(address, data)
}

// Peek returns the word at address without regard to the read enable gate.
func (mem *Memory) Peek(address uint32) (uint32, error) {
	idx, err := mem.index(address)
	if err != nil {
		return 0, err
	}
	return mem.data[idx], nil
}

// Poke writes the word to address without regard to the write enable gate.
func (mem *Memory) Poke(address uint32, data uint32) error {
	idx, err := mem.index(address)
	if err != nil {
		return err
	}
	mem.data[idx] = data
	return nil
}

// Load copies the words into memory starting at the origin address. Nothing
// is written if any part of the data would fall outside of memory.
func (mem *Memory) Load(origin uint32, words []uint32) error {
	idx, err := mem.index(origin)
	if err != nil {
		return err
	}
	if idx+len(words) > len(mem.data) {
		return curated.Errorf(AddressOutOfRange, uint32(idx+len(words)-1)<<2)
	}
	copy(mem.data[idx:], words)
	return nil
}

// Clear sets every word in memory to zero.
func (mem *Memory) Clear() {
	for i := range mem.data {
		mem.data[i] = 0
	}
}

// Word is a single entry in a memory dump.
type Word struct {
	Address uint32
	Data    uint32
}

func (w Word) String() string {
	return fmt.Sprintf("%#08x: %#08x", w.Address, w.Data)
}

// Dump returns count words starting at the origin address. An origin outside
// of memory is an error. A count that runs past the end of memory is not: the
// result is clamped to the words that exist, so the length of the result
// can be less than count. A negative count is treated as zero.
func (mem *Memory) Dump(origin uint32, count int) ([]Word, error) {
	idx, err := mem.index(origin)
	if err != nil {
		return nil, err
	}

	if count < 0 {
		count = 0
	}
	if idx+count > len(mem.data) {
		count = len(mem.data) - idx
	}

	d := make([]Word, count)
	for i := range d {
		d[i] = Word{
			Address: uint32(idx+i) << 2,
			Data:    mem.data[idx+i],
		}
	}

	return d, nil
}

// WriteDump writes the result of Dump() to io.Writer, one word per line.
func (mem *Memory) WriteDump(output io.Writer, origin uint32, count int) error {
	d, err := mem.Dump(origin, count)
	if err != nil {
		return err
	}
	for _, w := range d {
		if _, err := io.WriteString(output, w.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
