package disassembler

import (
	"fmt"

	"github.com/Urethramancer/dis68k/isa"
)

// decodeBitOperation decodes the register and immediate forms of BCHG, BCLR,
// BSET and BTST. Only BTST may address relative to the PC.
func decodeBitOperation(m *match) (string, string, bool) {
	mode, reg := m.ea()
	if mode == isa.ModeAddrReg || mode >= isa.ModeImmediate {
		return reject()
	}
	test := m.form == FormBTSTReg || m.form == FormBTSTImm
	if !test && mode >= isa.ModePCDisp {
		return reject()
	}

	var src string
	switch m.form {
	case FormBCHGImm, FormBCLRImm, FormBSETImm, FormBTSTImm:
		bit := m.extension()
		if m.fixes {
			bit &= 0xFF
		} else {
			bit &= 0x2F
		}
		src = fmt.Sprintf("#%d", bit)
	default:
		src = fmt.Sprintf("D%d", m.highReg())
	}

	dst := m.operand(mode, reg, isa.SizeByte)
	return m.name, src + "," + dst, true
}
