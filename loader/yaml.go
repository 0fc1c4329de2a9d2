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
	"os"
	"path/filepath"

	"github.com/jetsetilly/mipsdatapath/curated"
	"gopkg.in/yaml.v3"
)

// manifest is the YAML representation of a Program.
type manifest struct {
	Name      string            `yaml:"name"`
	Origin    uint32            `yaml:"origin"`
	Words     []uint32          `yaml:"words"`
	Hex       string            `yaml:"hex,omitempty"`
	Registers map[int]uint32    `yaml:"registers,omitempty"`
	Memory    map[uint32]uint32 `yaml:"memory,omitempty"`
}

// ManifestWordsAndHex is returned when a manifest specifies both a list of
// words and a hex file.
const ManifestWordsAndHex = "loader: %s: manifest has both words and a hex file"

// yamlProgram creates a Program from manifest data. The dir argument is used
// to resolve the hex field.
func yamlProgram(name string, dir string, data []byte) (Program, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Program{}, curated.Errorf("loader: %s: %v", name, err)
	}

	if m.Name != "" {
		name = m.Name
	}

	p := Program{
		Name:      name,
		Origin:    m.Origin,
		Words:     m.Words,
		Registers: m.Registers,
		Memory:    m.Memory,
	}

	if m.Hex != "" {
		if len(m.Words) > 0 {
			return Program{}, curated.Errorf(ManifestWordsAndHex, name)
		}

		fn := m.Hex
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(dir, fn)
		}
		f, err := os.Open(fn)
		if err != nil {
			return Program{}, curated.Errorf("loader: %v", err)
		}
		defer f.Close()

		p.Words, err = ParseHex(f)
		if err != nil {
			return Program{}, err
		}
	}

	return p, nil
}

// Marshal returns the program as a YAML manifest.
func (p Program) Marshal() ([]byte, error) {
	m := manifest{
		Name:      p.Name,
		Origin:    p.Origin,
		Words:     p.Words,
		Registers: p.Registers,
		Memory:    p.Memory,
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return nil, curated.Errorf("loader: %v", err)
	}
	return b, nil
}
