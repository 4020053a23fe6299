package disassembler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Urethramancer/dis68k/disassembler"
)

var _ = Describe("Catalogue", func() {
	It("should have 88 slots with the first reserved", func() {
		Expect(disassembler.Forms()).To(Equal(88))
		Expect(disassembler.FormNone.String()).To(Equal("none"))
		Expect(disassembler.FormNone.Matches(0x0000)).To(BeFalse())
		Expect(disassembler.FormUNLK).To(Equal(disassembler.Form(87)))
	})

	It("should keep the classic bit patterns", func() {
		Expect(disassembler.FormABCD.Mask()).To(Equal(uint16(0xF1F0)))
		Expect(disassembler.FormABCD.Value()).To(Equal(uint16(0xC100)))
		Expect(disassembler.FormMOVE.Mask()).To(Equal(uint16(0xC000)))
		Expect(disassembler.FormMOVEM.Value()).To(Equal(uint16(0x4880)))
		Expect(disassembler.FormNOP.Mask()).To(Equal(uint16(0xFFFF)))
	})

	It("should list candidates in scan order", func() {
		Expect(disassembler.Candidates(0x50C8)).To(Equal([]disassembler.Form{
			disassembler.FormADDQ, disassembler.FormDBcc, disassembler.FormScc,
		}))
		Expect(disassembler.Candidates(0x4842)).To(Equal([]disassembler.Form{
			disassembler.FormPEA, disassembler.FormSWAP,
		}))
		Expect(disassembler.Candidates(0xA000)).To(BeEmpty())
	})

	It("should name forms with their variant", func() {
		Expect(disassembler.FormMOVEToSR.String()).To(Equal("MOVE to SR"))
		Expect(disassembler.FormASLMem.String()).To(Equal("ASL ea"))
		Expect(disassembler.FormROLReg.String()).To(Equal("ROL Dn"))
		Expect(disassembler.FormBcc.String()).To(Equal("Bcc"))
	})

	It("should decode through the first form that accepts", func() {
		c := disassembler.NewCursor([]byte{0x48, 0x42}, 0)
		inst := disassembler.New().Decode(c)
		Expect(inst.Form).To(Equal(disassembler.FormSWAP))
	})
})
