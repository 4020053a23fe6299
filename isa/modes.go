package isa

// Mode is a decoded effective addressing mode. The 3-bit mode field covers
// 0-6 directly; mode field 7 selects one of five register-less modes by the
// register field, and the remaining encodings collapse to ModeInvalid.
type Mode int

const (
	// 000: Data Register Direct: Dn
	ModeDataReg Mode = iota
	// 001: Address Register Direct: An
	ModeAddrReg
	// 010: Address Register Indirect: (An)
	ModeAddrInd
	// 011: Address Register Indirect with Postincrement: (An)+
	ModePostInc
	// 100: Address Register Indirect with Predecrement: -(An)
	ModePreDec
	// 101: Address Register Indirect with Displacement: d16(An)
	ModeDisp
	// 110: Address Register Indirect with Index: d8(An,Xn)
	ModeIndex
	// 111/000: Absolute short address
	ModeAbsShort
	// 111/001: Absolute long address
	ModeAbsLong
	// 111/010: Program counter with displacement: d16(PC)
	ModePCDisp
	// 111/011: Program counter with index: d8(PC,Xn)
	ModePCIndex
	// 111/100: Immediate: #<data>
	ModeImmediate
	// 111/101-111: not an addressing mode on the 68000
	ModeInvalid
)

const modeOther = 7

var modeNames = [...]string{
	"Dn", "An", "(An)", "(An)+", "-(An)", "d16(An)", "d8(An,Xn)",
	"abs.W", "abs.L", "d16(PC)", "d8(PC,Xn)", "#imm", "invalid",
}

func (m Mode) String() string {
	if m < ModeDataReg || m > ModeInvalid {
		return "invalid"
	}
	return modeNames[m]
}

// DecodeMode decodes the 6-bit effective address field in the low bits of field.
// Only the low six bits are examined.
func DecodeMode(field uint16) (Mode, int) {
	mode := int((field >> 3) & 7)
	reg := int(field & 7)
	if mode == modeOther {
		if reg > 4 {
			return ModeInvalid, reg
		}
		return ModeAbsShort + Mode(reg), reg
	}
	return Mode(mode), reg
}

// MoveDestination rebuilds the destination field of a MOVE instruction, which is
// stored register-first in bits 11-6, into the usual mode/register order.
func MoveDestination(word uint16) uint16 {
	return ((word & 0x0E00) >> 9) | ((word & 0x01C0) >> 3)
}

// ExtensionWords returns the number of extension words the mode consumes when
// rendered with the given operand size. ModeInvalid consumes none.
func (m Mode) ExtensionWords(size Size) int {
	switch m {
	case ModeDisp, ModeIndex, ModeAbsShort, ModePCDisp, ModePCIndex:
		return 1
	case ModeAbsLong:
		return 2
	case ModeImmediate:
		return size.ImmediateWords()
	}
	return 0
}
