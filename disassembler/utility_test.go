package disassembler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Urethramancer/dis68k/disassembler"
	"github.com/Urethramancer/dis68k/isa"
)

var _ = Describe("FormatOperand", func() {
	format := func(mode isa.Mode, reg int, size isa.Size, words ...uint16) (string, int) {
		c := disassembler.NewCursor(isa.WordsToBytes(words...), 0x1000)
		text, err := disassembler.FormatOperand(c, mode, reg, size)
		Expect(err).NotTo(HaveOccurred())
		return text, c.Position()
	}

	DescribeTable("rendering",
		func(mode isa.Mode, reg int, size isa.Size, words []uint16, want string, used int) {
			text, n := format(mode, reg, size, words...)
			Expect(text).To(Equal(want))
			Expect(n).To(Equal(used))
		},
		Entry("data register", isa.ModeDataReg, 3, isa.SizeWord, []uint16{}, "D3", 0),
		Entry("address register", isa.ModeAddrReg, 4, isa.SizeWord, []uint16{}, "A4", 0),
		Entry("indirect", isa.ModeAddrInd, 1, isa.SizeWord, []uint16{}, "(A1)", 0),
		Entry("postincrement", isa.ModePostInc, 7, isa.SizeWord, []uint16{}, "(A7)+", 0),
		Entry("predecrement", isa.ModePreDec, 7, isa.SizeWord, []uint16{}, "-(A7)", 0),
		Entry("displacement", isa.ModeDisp, 2, isa.SizeWord, []uint16{0xFFF0}, "-16(A2)", 2),
		Entry("zero displacement", isa.ModeDisp, 2, isa.SizeWord, []uint16{0}, "+0(A2)", 2),
		Entry("index", isa.ModeIndex, 0, isa.SizeWord, []uint16{0x9804}, "+4(A0,A1.L)", 2),
		Entry("absolute short", isa.ModeAbsShort, 0, isa.SizeWord, []uint16{0xABCD}, "$0000abcd", 2),
		Entry("absolute long", isa.ModeAbsLong, 1, isa.SizeWord, []uint16{0x00FF, 0x1234}, "$00ff1234", 4),
		Entry("pc displacement", isa.ModePCDisp, 2, isa.SizeWord, []uint16{0x0010}, "+16(PC) {$00001010}", 2),
		Entry("pc index", isa.ModePCIndex, 3, isa.SizeWord, []uint16{0x20FE}, "-2(PC,D2.W)", 2),
		Entry("byte immediate", isa.ModeImmediate, 4, isa.SizeByte, []uint16{0x12AB}, "#$ab", 2),
		Entry("word immediate", isa.ModeImmediate, 4, isa.SizeWord, []uint16{0xBEEF}, "#$beef", 2),
		Entry("long immediate", isa.ModeImmediate, 4, isa.SizeLong, []uint16{0xDEAD, 0xBEEF}, "#$deadbeef", 4),
	)

	It("should refuse the invalid mode without reading", func() {
		c := disassembler.NewCursor([]byte{0x12, 0x34}, 0)
		_, err := disassembler.FormatOperand(c, isa.ModeInvalid, 0, isa.SizeWord)
		Expect(err).To(MatchError(disassembler.ErrInvalidMode))
		Expect(c.Position()).To(BeZero())
	})

	It("should refuse an unsized immediate", func() {
		c := disassembler.NewCursor([]byte{0x12, 0x34}, 0)
		_, err := disassembler.FormatOperand(c, isa.ModeImmediate, 4, isa.SizeInvalid)
		Expect(err).To(MatchError(disassembler.ErrInvalidSize))
		Expect(c.Position()).To(BeZero())
	})
})
