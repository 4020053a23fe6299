package disassembler

import (
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

// decodeShiftRegister decodes the data register forms of the shifts and rotates.
//
// The register forms use bits:
//
//	11-9 : count, or the register holding it
//	8    : 0 = right, 1 = left
//	7-6  : size (11 belongs to the memory forms)
//	5    : 0 = immediate count, 1 = count in a data register
//	4-3  : 00 = AS, 01 = LS, 10 = ROX, 11 = RO
//	2-0  : destination data register
//
// An immediate count of 0 means 8.
func decodeShiftRegister(m *match) (string, string, bool) {
	size := isa.SizeField(m.word)
	if !size.Valid() {
		return reject()
	}

	count := m.highReg()
	if m.word&0x0020 == 0 {
		if count == 0 {
			count = 8
		}
		return m.sized(size), fmt.Sprintf("#%d,D%d", count, m.lowReg()), true
	}
	return m.sized(size), fmt.Sprintf("D%d,D%d", count, m.lowReg()), true
}

// decodeShiftMemory decodes the memory forms, which shift a word by one bit
// and carry no size suffix.
func decodeShiftMemory(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode <= isa.ModeAddrReg || mode >= isa.ModePCDisp {
		return reject()
	}
	return m.name, m.operand(mode, reg, isa.SizeByte), true
}
