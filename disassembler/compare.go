package disassembler

import (
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

// decodeToDataRegister decodes CMP, CHK, DIVS, DIVU, MULS and MULU, all of the
// shape <ea>,Dn. Only CMP has a size field; the others are word-sized.
func decodeToDataRegister(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeAddrReg && m.form != FormCMP {
		return reject()
	}
	if mode == isa.ModeInvalid {
		return reject()
	}

	size := isa.SizeWord
	mn := m.name
	if m.form == FormCMP {
		size = isa.SizeField(m.word)
		if !size.Valid() {
			return reject()
		}
		mn = m.sized(size)
	}

	src := m.operand(mode, reg, size)
	return mn, fmt.Sprintf("%s,D%d", src, m.highReg()), true
}

// decodeCompareAddress decodes CMPA. Bit 8 selects a long comparison.
func decodeCompareAddress(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeInvalid {
		return reject()
	}
	size := longSizeBit(m.word, 8)
	src := m.operand(mode, reg, size)
	return m.sized(size), fmt.Sprintf("%s,A%d", src, m.highReg()), true
}
