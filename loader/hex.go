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
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/mipsdatapath/curated"
)

// Sentinal error returned by ParseHex().
const InvalidWord = "loader: line %d: invalid word (%s)"

// ParseHex reads instruction words from a hex formatted stream.
func ParseHex(r io.Reader) ([]uint32, error) {
	var words []uint32

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		s := scanner.Text()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return nil, curated.Errorf(InvalidWord, line, s)
		}
		words = append(words, uint32(v))
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("loader: %v", err)
	}

	return words, nil
}

// hexProgram creates a Program from hex data. Hex programs are always
// placed at address zero.
func hexProgram(name string, data []byte) (Program, error) {
	words, err := ParseHex(bytes.NewReader(data))
	if err != nil {
		return Program{}, err
	}
	return Program{
		Name:  name,
		Words: words,
	}, nil
}
