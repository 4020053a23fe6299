package disassembler

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/Urethramancer/dis68k/isa"
)

// decodeMove decodes MOVE. The size field is encoded as 1=byte, 3=word, 2=long
// and the destination field has its mode and register halves swapped.
func decodeMove(m *match) (string, string, bool) {
	size := isa.MoveSizeField(m.word)
	if !size.Valid() {
		return reject()
	}
	smode, sreg := m.ea()
	if smode == isa.ModeInvalid {
		return reject()
	}
	dmode, dreg := isa.DecodeMode(isa.MoveDestination(m.word))
	if dmode == isa.ModeAddrReg || dmode >= isa.ModePCDisp {
		return reject()
	}

	src := m.operand(smode, sreg, size)
	dst := m.operand(dmode, dreg, size)
	if m.fixes {
		return m.sized(size), src + "," + dst, true
	}
	return m.sized(size), src + "," + dst + " ", true
}

// decodeMoveAddress decodes MOVEA, which has no byte form.
func decodeMoveAddress(m *match) (string, string, bool) {
	size := isa.MoveSizeField(m.word)
	if size != isa.SizeWord && size != isa.SizeLong {
		return reject()
	}
	mode, reg := m.ea()
	if mode == isa.ModeInvalid {
		return reject()
	}
	src := m.operand(mode, reg, size)
	return m.sized(size), fmt.Sprintf("%s,A%d", src, m.highReg()), true
}

// decodeMoveToStatus decodes MOVE to CCR and MOVE to SR.
func decodeMoveToStatus(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeAddrReg || mode == isa.ModeInvalid {
		return reject()
	}
	src := m.operand(mode, reg, isa.SizeWord)
	if m.form == FormMOVEToCCR {
		return m.sized(isa.SizeWord), src + ",CCR", true
	}
	return m.sized(isa.SizeWord), src + ",SR", true
}

// decodeMoveFromStatus decodes MOVE from SR.
func decodeMoveFromStatus(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeAddrReg || mode >= isa.ModePCDisp {
		return reject()
	}
	return m.sized(isa.SizeWord), "SR," + m.operand(mode, reg, isa.SizeWord), true
}

// decodeMoveUSP decodes MOVE to and from the user stack pointer. Bit 3 set
// means from USP.
func decodeMoveUSP(m *match) (string, string, bool) {
	if m.word&0x0008 == 0 {
		return m.name, fmt.Sprintf("A%d,USP", m.lowReg()), true
	}
	return m.name, fmt.Sprintf("USP,A%d", m.lowReg()), true
}

// decodeMoveMultiple decodes MOVEM. Bit 10 set loads registers from memory.
// The register mask follows the opcode and is stored reversed for -(An).
func decodeMoveMultiple(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode <= isa.ModeAddrReg || mode >= isa.ModeImmediate {
		return reject()
	}
	load := m.word&0x0400 != 0
	if !load && mode == isa.ModePostInc {
		return reject()
	}
	if load && mode == isa.ModePreDec {
		return reject()
	}

	size := longSizeBit(m.word, 6)
	mask := m.extension()
	if mode == isa.ModePreDec {
		mask = bits.Reverse16(mask)
	}
	list := registerList(mask)
	ea := m.operand(mode, reg, size)

	if !load {
		return m.sized(size), list + ea, true
	}
	switch {
	case list == "":
		return m.sized(size), ea + ",", true
	case m.fixes:
		return m.sized(size), ea + "," + strings.TrimSuffix(list, ","), true
	}
	return m.sized(size), ea + "," + list[:len(list)-1] + " ", true
}

// decodeMovePeripheral decodes MOVEP. Bit 7 set moves a register to memory.
func decodeMovePeripheral(m *match) (string, string, bool) {
	size := longSizeBit(m.word, 6)
	disp := m.extension()
	if m.word&0x0080 == 0 {
		return m.sized(size), fmt.Sprintf("$%04X(A%d),D%d", disp, m.lowReg(), m.highReg()), true
	}
	return m.sized(size), fmt.Sprintf("D%d,$%04X(A%d)", m.highReg(), disp, m.lowReg()), true
}

// decodeMoveQuick decodes MOVEQ.
func decodeMoveQuick(m *match) (string, string, bool) {
	return m.name, fmt.Sprintf("#$%02X,D%d", m.word&0xFF, m.highReg()), true
}
