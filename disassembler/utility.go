package disassembler

import (
	"errors"
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

var (
	// ErrInvalidMode is returned when an operand would need a mode the 68000 lacks.
	ErrInvalidMode = errors.New("invalid addressing mode")
	// ErrInvalidSize is returned for an immediate operand without a byte, word or long size.
	ErrInvalidSize = errors.New("invalid operand size")
)

// FormatOperand renders one effective address operand, reading any extension
// words it needs from c. Register-based modes use reg; size only matters for
// immediates. Nothing is read when an error is returned.
func FormatOperand(c *Cursor, mode isa.Mode, reg int, size isa.Size) (string, error) {
	switch mode {
	case isa.ModeDataReg:
		return fmt.Sprintf("D%d", reg), nil
	case isa.ModeAddrReg:
		return fmt.Sprintf("A%d", reg), nil
	case isa.ModeAddrInd:
		return fmt.Sprintf("(A%d)", reg), nil
	case isa.ModePostInc:
		return fmt.Sprintf("(A%d)+", reg), nil
	case isa.ModePreDec:
		return fmt.Sprintf("-(A%d)", reg), nil
	case isa.ModeDisp:
		disp := isa.SignExtend16(c.NextWord())
		return fmt.Sprintf("%+d(A%d)", disp, reg), nil
	case isa.ModePCDisp:
		disp := isa.SignExtend16(c.NextWord())
		// The base is the address of the extension word itself.
		target := c.Address() - 2 + uint32(disp)
		return fmt.Sprintf("%+d(PC) {$%08x}", disp, target), nil
	case isa.ModeIndex:
		ext := c.NextWord()
		return fmt.Sprintf("%+d(A%d,%s)", isa.SignExtend8(ext), reg, indexRegister(ext)), nil
	case isa.ModePCIndex:
		ext := c.NextWord()
		return fmt.Sprintf("%+d(PC,%s)", isa.SignExtend8(ext), indexRegister(ext)), nil
	case isa.ModeAbsShort:
		return fmt.Sprintf("$0000%04x", c.NextWord()), nil
	case isa.ModeAbsLong:
		hi := c.NextWord()
		lo := c.NextWord()
		return fmt.Sprintf("$%04x%04x", hi, lo), nil
	case isa.ModeImmediate:
		if !size.Valid() {
			return "", fmt.Errorf("immediate operand: %w", ErrInvalidSize)
		}
		data := c.NextWord()
		switch size {
		case isa.SizeByte:
			return fmt.Sprintf("#$%02x", data&0xFF), nil
		case isa.SizeWord:
			return fmt.Sprintf("#$%04x", data), nil
		}
		return fmt.Sprintf("#$%04x%04x", data, c.NextWord()), nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
}

// indexRegister decodes the index part of a brief extension word:
// bit 15 selects An over Dn, bits 14-12 the register and bit 11 a long index.
func indexRegister(ext uint16) string {
	class := 'D'
	if ext&0x8000 != 0 {
		class = 'A'
	}
	size := 'W'
	if ext&0x0800 != 0 {
		size = 'L'
	}
	return fmt.Sprintf("%c%d.%c", class, (ext>>12)&7, size)
}

// match is one attempt to decode word as form.
type match struct {
	form  Form
	word  uint16
	name  string
	cur   *Cursor
	fixes bool
	err   error
}

// ea decodes the effective address field in bits 5-0.
func (m *match) ea() (isa.Mode, int) {
	return isa.DecodeMode(m.word)
}

// lowReg is the register field in bits 2-0.
func (m *match) lowReg() int {
	return int(m.word & 7)
}

// highReg is the register field in bits 11-9.
func (m *match) highReg() int {
	return int((m.word >> 9) & 7)
}

// sized appends a size suffix to the form's mnemonic.
func (m *match) sized(s isa.Size) string {
	return m.name + "." + s.String()
}

// operand renders an operand. Forms filter out unrenderable modes before they
// read anything, so a failure here is recorded for the decoder to report.
func (m *match) operand(mode isa.Mode, reg int, size isa.Size) string {
	text, err := FormatOperand(m.cur, mode, reg, size)
	if err != nil && m.err == nil {
		m.err = err
	}
	return text
}

// extension reads the next extension word.
func (m *match) extension() uint16 {
	return m.cur.NextWord()
}

func reject() (string, string, bool) {
	return "", "", false
}

// longSizeBit decodes the single-bit sizes (0=word, 1=long) found at the given bit.
func longSizeBit(word uint16, bit uint) isa.Size {
	return isa.Size((word>>bit)&1) + isa.SizeWord
}
