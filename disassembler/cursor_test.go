package disassembler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Urethramancer/dis68k/disassembler"
)

var _ = Describe("Cursor", func() {
	var c *disassembler.Cursor

	BeforeEach(func() {
		c = disassembler.NewCursor([]byte{0x12, 0x34, 0x56}, 0x8000)
	})

	It("should read big-endian words and advance the address", func() {
		Expect(c.NextWord()).To(Equal(uint16(0x1234)))
		Expect(c.Address()).To(Equal(uint32(0x8002)))
		Expect(c.Position()).To(Equal(2))
		Expect(c.Remaining()).To(Equal(1))
		Expect(c.Overflow()).To(BeFalse())
	})

	It("should read single bytes", func() {
		Expect(c.NextByte()).To(Equal(byte(0x12)))
		Expect(c.NextByte()).To(Equal(byte(0x34)))
		Expect(c.Address()).To(Equal(uint32(0x8002)))
	})

	It("should return zero without advancing when a word does not fit", func() {
		c.NextWord()
		Expect(c.NextWord()).To(BeZero())
		Expect(c.Overflow()).To(BeTrue())
		Expect(c.Position()).To(Equal(2))
		Expect(c.Address()).To(Equal(uint32(0x8002)))
	})

	It("should keep the overflow flag set", func() {
		c.NextWord()
		c.NextWord()
		Expect(c.NextByte()).To(Equal(byte(0x56)))
		Expect(c.Overflow()).To(BeTrue())
		Expect(c.NextByte()).To(BeZero())
		Expect(c.Remaining()).To(BeZero())
	})

	It("should accept an empty window", func() {
		empty := disassembler.NewCursor(nil, 0)
		Expect(empty.NextWord()).To(BeZero())
		Expect(empty.Overflow()).To(BeTrue())
	})
})
