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


package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/loader"
	"github.com/jetsetilly/mipsdatapath/test"
)

const hexProgram = `# load, load, add, halt
0x8c010100
8C020104   # no prefix

00221820
0xfc000000
`

func TestParseHex(t *testing.T) {
	words, err := loader.ParseHex(strings.NewReader(hexProgram))
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(words), 4)
	test.ExpectEquality(t, words[0], uint32(0x8c010100))
	test.ExpectEquality(t, words[1], uint32(0x8c020104))
	test.ExpectEquality(t, words[2], uint32(0x00221820))
	test.ExpectEquality(t, words[3], uint32(0xfc000000))

	_, err = loader.ParseHex(strings.NewReader("0x00000000\nnonsense\n"))
	test.ExpectSuccess(t, curated.Is(err, loader.InvalidWord))

	// too wide for a word
	_, err = loader.ParseHex(strings.NewReader("0x100000000"))
	test.ExpectSuccess(t, curated.Is(err, loader.InvalidWord))

	words, err = loader.ParseHex(strings.NewReader("# nothing\n\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(words), 0)
}

func TestNewLoader(t *testing.T) {
	test.ExpectEquality(t, loader.NewLoader("prog.hex", "").Format, loader.FormatHex)
	test.ExpectEquality(t, loader.NewLoader("prog.txt", "AUTO").Format, loader.FormatHex)
	test.ExpectEquality(t, loader.NewLoader("prog.YML", "auto").Format, loader.FormatYAML)
	test.ExpectEquality(t, loader.NewLoader("prog.yaml", "").Format, loader.FormatYAML)
	test.ExpectEquality(t, loader.NewLoader("prog.bin", "yaml").Format, loader.FormatYAML)
	test.ExpectEquality(t, loader.NewLoader("dir/prog.hex", "").ShortName(), "prog")
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestLoadHex(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "sum.hex", hexProgram)

	ld := loader.NewLoader(fn, "")
	p, err := ld.Load()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Name, "sum")
	test.ExpectEquality(t, p.Origin, uint32(0))
	test.ExpectEquality(t, len(p.Words), 4)
	test.ExpectEquality(t, len(p.Hash), 40)
	test.ExpectEquality(t, p.Hash, ld.Hash)
	test.ExpectSuccess(t, ld.HasLoaded())

	// hash mismatch
	ld = loader.NewLoader(fn, "")
	ld.Hash = "0000"
	_, err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.UnexpectedHash))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestLoadEmpty(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "empty.hex", "# nothing here\n")
	ld := loader.NewLoader(fn, "")
	_, err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.NoProgram))
}

func TestLoadMissing(t *testing.T) {
	ld := loader.NewLoader(filepath.Join(t.TempDir(), "missing.hex"), "")
	_, err := ld.Load()
	test.ExpectFailure(t, err)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "sum.yaml", `name: summation
origin: 0x40
words: [0x8c010100, 0x8c020104, 0x00221820, 0xfc000000]
registers:
  4: 100
memory:
  0x100: 10
  0x104: 20
`)

	ld := loader.NewLoader(fn, "")
	p, err := ld.Load()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Name, "summation")
	test.ExpectEquality(t, p.Origin, uint32(0x40))
	test.DemandEquality(t, len(p.Words), 4)
	test.ExpectEquality(t, p.Words[0], uint32(0x8c010100))
	test.ExpectEquality(t, p.Registers[4], uint32(100))
	test.ExpectEquality(t, p.Memory[0x100], uint32(10))
	test.ExpectEquality(t, p.Memory[0x104], uint32(20))
	test.ExpectEquality(t, p.PresetAddresses()[0], uint32(0x100))
	test.ExpectEquality(t, p.PresetRegisters()[0], 4)
}

func TestLoadYAMLWithHex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sum.hex", hexProgram)
	fn := writeFile(t, dir, "manifest.yml", "origin: 0x10\nhex: sum.hex\n")

	ld := loader.NewLoader(fn, "")
	p, err := ld.Load()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Name, "manifest")
	test.ExpectEquality(t, p.Origin, uint32(0x10))
	test.ExpectEquality(t, len(p.Words), 4)

	fn = writeFile(t, dir, "both.yml", "words: [0]\nhex: sum.hex\n")
	ld = loader.NewLoader(fn, "")
	_, err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.ManifestWordsAndHex))
}

func TestLoadYAMLUnaligned(t *testing.T) {
	dir := t.TempDir()

	fn := writeFile(t, dir, "origin.yaml", "origin: 0x2\nwords: [0]\n")
	ld := loader.NewLoader(fn, "")
	_, err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.UnalignedOrigin))

	fn = writeFile(t, dir, "preset.yaml", "words: [0]\nmemory:\n  0x101: 1\n")
	ld = loader.NewLoader(fn, "")
	_, err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.UnalignedPreset))
}

func TestMarshal(t *testing.T) {
	p := loader.Program{
		Name:   "roundtrip",
		Origin: 0x20,
		Words:  []uint32{1, 2, 3},
		Memory: map[uint32]uint32{0x80: 5},
	}
	b, err := p.Marshal()
	test.ExpectSuccess(t, err)

	fn := writeFile(t, t.TempDir(), "roundtrip.yaml", string(b))
	ld := loader.NewLoader(fn, "")
	q, err := ld.Load()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q.Name, p.Name)
	test.ExpectEquality(t, q.Origin, p.Origin)
	test.ExpectEquality(t, len(q.Words), 3)
	test.ExpectEquality(t, q.Memory[0x80], uint32(5))
}

func TestUnknownFormat(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "prog.hex", hexProgram)
	ld := loader.NewLoader(fn, "ELF")
	_, err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.UnknownFormat))
}
