package disassembler

import (
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

// conditionMnemonic joins a prefix with the condition in bits 11-8. Branches
// name the true and false conditions RA and SR instead.
func conditionMnemonic(prefix string, word uint16) string {
	cc := isa.ConditionField(word)
	if prefix == "B" {
		switch cc {
		case isa.CondT:
			return "BRA"
		case isa.CondF:
			return "BSR"
		}
	}
	return prefix + cc.String()
}

// decodeBranch decodes Bcc, BRA and BSR. A zero 8-bit displacement means a
// 16-bit displacement follows. Targets are relative to the end of the opcode.
func decodeBranch(m *match) (string, string, bool) {
	var target uint32
	if disp := m.word & 0x00FF; disp != 0 {
		target = m.cur.Address() + uint32(isa.SignExtend8(disp))
	} else {
		disp := isa.SignExtend16(m.extension())
		target = m.cur.Address() - 2 + uint32(disp)
	}
	return conditionMnemonic("B", m.word), fmt.Sprintf("$%08x", target), true
}

// decodeDecrementBranch decodes DBcc, which always carries a 16-bit displacement.
func decodeDecrementBranch(m *match) (string, string, bool) {
	disp := isa.SignExtend16(m.extension())
	target := m.cur.Address() - 2 + uint32(disp)
	return conditionMnemonic("DB", m.word), fmt.Sprintf("D%d,$%08x", m.lowReg(), target), true
}

// decodeSet decodes Scc.
func decodeSet(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeAddrReg || mode >= isa.ModePCDisp {
		return reject()
	}
	return conditionMnemonic("S", m.word), m.operand(mode, reg, isa.SizeByte), true
}

// decodeControl decodes JMP, JSR and PEA, which only take control addressing modes.
func decodeControl(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if !controlMode(mode) {
		return reject()
	}
	return m.name, m.operand(mode, reg, isa.SizeByte), true
}

// controlMode reports whether mode names a memory location without side effects.
func controlMode(mode isa.Mode) bool {
	switch mode {
	case isa.ModeDataReg, isa.ModeAddrReg, isa.ModePostInc, isa.ModePreDec:
		return false
	}
	return mode < isa.ModeImmediate
}
