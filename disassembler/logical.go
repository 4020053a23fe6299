package disassembler

import (
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

// decodeImmediate decodes ADDI, ANDI, CMPI, EORI, ORI and SUBI. The logical
// forms also accept the status register as destination.
func decodeImmediate(m *match) (string, string, bool) {
	mode, reg := m.ea()
	size := isa.SizeField(m.word)
	if !size.Valid() {
		return reject()
	}
	switch mode {
	case isa.ModeAddrReg, isa.ModePCDisp, isa.ModePCIndex, isa.ModeInvalid:
		return reject()
	case isa.ModeImmediate:
		if m.form == FormADDI || m.form == FormCMPI || m.form == FormSUBI {
			return reject()
		}
	}

	src := immediateSource(m, size)
	var dst string
	switch {
	case mode != isa.ModeImmediate:
		dst = m.operand(mode, reg, size)
	case m.fixes && size == isa.SizeByte:
		dst = "CCR"
	default:
		dst = "SR"
	}
	return m.sized(size), src + "," + dst, true
}

// immediateSource reads an immediate source operand. Unlike effective address
// immediates these print in uppercase hex.
func immediateSource(m *match, size isa.Size) string {
	data := m.extension()
	switch size {
	case isa.SizeByte:
		return fmt.Sprintf("#$%02X", data&0xFF)
	case isa.SizeWord:
		return fmt.Sprintf("#$%04X", data)
	}
	return fmt.Sprintf("#$%04X%04X", data, m.extension())
}

// EXG operation modes from bits 7-3.
const (
	exchangeData    = 8
	exchangeAddress = 9
	exchangeMixed   = 17
)

// decodeExchange decodes EXG.
func decodeExchange(m *match) (string, string, bool) {
	opmode := (m.word & 0x00F8) >> 3
	low, high := m.lowReg(), m.highReg()
	if m.fixes {
		switch opmode {
		case exchangeData:
			return m.name, fmt.Sprintf("D%d,D%d", high, low), true
		case exchangeAddress:
			return m.name, fmt.Sprintf("A%d,A%d", high, low), true
		case exchangeMixed:
			return m.name, fmt.Sprintf("D%d,A%d", high, low), true
		}
		return reject()
	}

	switch opmode {
	case exchangeData:
		return m.name, fmt.Sprintf("D%d,D%d", low, high), true
	case exchangeAddress:
		return m.name, fmt.Sprintf("A%d,A%d", low, high), true
	case exchangeMixed:
		return m.name, fmt.Sprintf("D%d,A%d", low, high), true
	}
	return reject()
}
