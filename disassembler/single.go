package disassembler

import (
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

// decodeUnary decodes the single data-alterable operand forms: CLR, NBCD, NEG,
// NEGX, NOT and TAS. TAS is byte-sized and carries no suffix.
func decodeUnary(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeAddrReg || mode >= isa.ModePCDisp {
		return reject()
	}
	if m.form == FormTAS {
		return m.name, m.operand(mode, reg, isa.SizeByte), true
	}
	size := isa.SizeField(m.word)
	if !size.Valid() {
		return reject()
	}
	return m.sized(size), m.operand(mode, reg, size), true
}

// decodeTest decodes TST.
func decodeTest(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeAddrReg || mode >= isa.ModePCDisp {
		return reject()
	}
	size := isa.SizeField(m.word)
	if !size.Valid() {
		return reject()
	}
	mn := m.name
	if m.fixes {
		mn = m.sized(size)
	}
	return mn, m.operand(mode, reg, size), true
}

// decodeExtend decodes EXT. Bit 6 selects word to long over byte to word.
func decodeExtend(m *match) (string, string, bool) {
	return m.sized(longSizeBit(m.word, 6)), fmt.Sprintf("D%d", m.lowReg()), true
}

// decodeLoadAddress decodes LEA.
func decodeLoadAddress(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if !controlMode(mode) {
		return reject()
	}
	src := m.operand(mode, reg, isa.SizeByte)
	return m.name, fmt.Sprintf("%s,A%d", src, m.highReg()), true
}

// decodeLink decodes LINK with its signed 16-bit frame displacement.
func decodeLink(m *match) (string, string, bool) {
	disp := isa.SignExtend16(m.extension())
	return m.name, fmt.Sprintf("A%d,#%+d", m.lowReg(), disp), true
}

// decodeUnlink decodes UNLK.
func decodeUnlink(m *match) (string, string, bool) {
	return m.name, fmt.Sprintf("A%d", m.lowReg()), true
}

// decodeSwap decodes SWAP.
func decodeSwap(m *match) (string, string, bool) {
	return m.name, fmt.Sprintf("D%d", m.lowReg()), true
}

// decodeTrap decodes TRAP and its vector number.
func decodeTrap(m *match) (string, string, bool) {
	vector := m.word & 0x000F
	if m.fixes {
		return m.name, fmt.Sprintf("#%d", vector), true
	}
	return m.name, fmt.Sprintf("%d", vector), true
}

// decodeImplicit decodes the operand-less forms. STOP takes an immediate
// status word, which the uncorrected output neither reads nor prints.
func decodeImplicit(m *match) (string, string, bool) {
	if m.form == FormSTOP && m.fixes {
		return m.name, fmt.Sprintf("#$%04X", m.extension()), true
	}
	return m.name, " ", true
}
