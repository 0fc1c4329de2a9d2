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

package instruction

// EncodeR builds an R-type instruction word. Fields are truncated to their
// widths.
func EncodeR(funct, rs, rt, rd, shamt uint8) uint32 {
	return uint32(rs&0x1f)<<21 | uint32(rt&0x1f)<<16 | uint32(rd&0x1f)<<11 |
		uint32(shamt&0x1f)<<6 | uint32(funct&0x3f)
}

// EncodeI builds an I-type instruction word.
func EncodeI(opcode, rs, rt uint8, imm int16) uint32 {
	return uint32(opcode&0x3f)<<26 | uint32(rs&0x1f)<<21 | uint32(rt&0x1f)<<16 | uint32(uint16(imm))
}

// EncodeJ builds a J-type instruction word. The target is a byte address and
// is stored as a word address in the lower 26 bits.
func EncodeJ(opcode uint8, target uint32) uint32 {
	return uint32(opcode&0x3f)<<26 | (target>>2)&0x03ffffff
}

// EncodeHalt returns the halt instruction.
func EncodeHalt() uint32 {
	return uint32(OpHALT) << 26
}
