package disassembler

import (
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

// decodeDyadic decodes ADD, AND, EOR, OR and SUB between a data register and an
// effective address. Bit 8 gives the direction: clear means <ea>,Dn and set
// means Dn,<ea>.
func decodeDyadic(m *match) (string, string, bool) {
	mode, reg := m.ea()
	size := isa.SizeField(m.word)
	if !size.Valid() {
		return reject()
	}

	arith := m.form == FormADD || m.form == FormSUB
	if arith && mode == isa.ModeAddrReg && size == isa.SizeByte {
		return reject()
	}

	toEA := m.word&0x0100 != 0
	if m.form == FormEOR && !toEA {
		return reject()
	}
	if toEA && mode >= isa.ModePCDisp {
		return reject()
	}
	if mode == isa.ModeInvalid {
		return reject()
	}

	if m.fixes {
		// Register-direct destinations belong to ADDX/SUBX, ABCD/SBCD, EXG and CMPM.
		if toEA && mode == isa.ModeAddrReg {
			return reject()
		}
		if toEA && mode == isa.ModeDataReg && m.form != FormEOR {
			return reject()
		}
		if (m.form == FormAND || m.form == FormOR) && mode == isa.ModeAddrReg {
			return reject()
		}
	}

	ea := m.operand(mode, reg, size)
	if toEA {
		return m.sized(size), fmt.Sprintf("D%d,%s", m.highReg(), ea), true
	}
	return m.sized(size), fmt.Sprintf("%s,D%d", ea, m.highReg()), true
}

// decodeAddressArithmetic decodes ADDA and SUBA. Bit 8 selects a long operation.
func decodeAddressArithmetic(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeInvalid {
		return reject()
	}
	size := longSizeBit(m.word, 8)
	src := m.operand(mode, reg, size)

	// Classic output names the source register as the destination.
	dst := reg
	if m.fixes {
		dst = m.highReg()
	}
	return m.sized(size), fmt.Sprintf("%s,A%d", src, dst), true
}

// decodeQuick decodes ADDQ and SUBQ. A count field of 0 means 8.
func decodeQuick(m *match) (string, string, bool) {
	mode, reg := m.ea()
	size := isa.SizeField(m.word)
	if !size.Valid() {
		return reject()
	}
	if mode >= isa.ModePCDisp {
		return reject()
	}
	if size == isa.SizeByte && mode == isa.ModeAddrReg {
		return reject()
	}

	count := m.highReg()
	if count == 0 {
		count = 8
	}
	dst := m.operand(mode, reg, size)
	return m.sized(size), fmt.Sprintf("#%d,%s", count, dst), true
}

// decodeExtended decodes ADDX, SUBX and CMPM, which only take register pairs.
func decodeExtended(m *match) (string, string, bool) {
	size := isa.SizeField(m.word)
	if !size.Valid() {
		return reject()
	}

	src, dst := m.lowReg(), m.highReg()
	switch {
	case m.form == FormCMPM:
		return m.sized(size), fmt.Sprintf("(A%d)+,(A%d)+", src, dst), true
	case m.word&0x0008 == 0:
		return m.sized(size), fmt.Sprintf("D%d,D%d", src, dst), true
	}
	return m.sized(size), fmt.Sprintf("-(A%d),-(A%d)", src, dst), true
}

// decodeDecimal decodes ABCD and SBCD.
func decodeDecimal(m *match) (string, string, bool) {
	src, dst := m.lowReg(), m.highReg()
	if m.word&0x0008 == 0 {
		return m.name, fmt.Sprintf("D%d,D%d", src, dst), true
	}
	if m.fixes {
		return m.name, fmt.Sprintf("-(A%d),-(A%d)", src, dst), true
	}
	return m.name, fmt.Sprintf("-(A%d),-A(%d)", src, dst), true
}
