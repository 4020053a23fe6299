package disassembler_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/Urethramancer/dis68k/disassembler"
	"github.com/Urethramancer/dis68k/isa"
)

var _ = Describe("Listing", func() {
	var d *disassembler.Decoder

	BeforeEach(func() {
		d = disassembler.New()
	})

	It("should resynchronise after an unknown word", func() {
		lines := d.Listing(isa.WordsToBytes(0x4E71, 0xA000, 0x4E75), 0x1000)

		Expect(lines).To(HaveLen(3))
		Expect(lines[0].Address).To(Equal(uint32(0x1000)))
		Expect(lines[0].Instruction.Mnemonic).To(Equal("NOP"))
		Expect(lines[1].Data).To(BeTrue())
		Expect(lines[1].Address).To(Equal(uint32(0x1002)))
		Expect(lines[1].Bytes).To(Equal([]byte{0xA0, 0x00}))
		Expect(lines[2].Instruction.Mnemonic).To(Equal("RTS"))
	})

	It("should group consecutive data", func() {
		lines := d.Listing(isa.WordsToBytes(0xA000, 0xF123, 0x4E71), 0)

		Expect(lines).To(HaveLen(2))
		Expect(lines[0].Bytes).To(Equal([]byte{0xA0, 0x00, 0xF1, 0x23}))
		Expect(lines[1].Instruction.Form).To(Equal(disassembler.FormNOP))
	})

	It("should treat a truncated instruction and an odd byte as data", func() {
		lines := d.Listing([]byte{0x4E, 0x71, 0x30, 0x3C, 0xFF}, 0)

		Expect(lines).To(HaveLen(2))
		Expect(lines[1].Data).To(BeTrue())
		Expect(lines[1].Bytes).To(Equal([]byte{0x30, 0x3C, 0xFF}))
	})

	It("should keep instruction bytes with their line", func() {
		lines := d.Listing(isa.WordsToBytes(0x48E7, 0xF000, 0x4E75), 0x400)

		Expect(lines[0].Bytes).To(Equal([]byte{0x48, 0xE7, 0xF0, 0x00}))
		Expect(lines[1].Address).To(Equal(uint32(0x404)))
	})

	It("should render address, words and text", func() {
		text := disassembler.Disassemble(isa.WordsToBytes(0x7A12, 0xA000), 0x1000)

		Expect(text).To(Equal(
			"00001000  7A12                      MOVEQ    #$12,D5\n" +
				"00001002  A000                      DC.B     $A0,$00\n"))
	})

	It("should warn about a truncated instruction", func() {
		log, hook := test.NewNullLogger()
		d = disassembler.New(disassembler.WithLogger(log))
		d.Listing([]byte{0x30, 0x3C}, 0)

		var warnings []string
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.WarnLevel {
				warnings = append(warnings, e.Message)
			}
		}
		Expect(warnings).To(ContainElement("instruction truncated by end of image"))
	})

	It("should log unknown words and rejected candidates", func() {
		log, hook := test.NewNullLogger()
		log.SetLevel(logrus.DebugLevel)
		d = disassembler.New(disassembler.WithLogger(log))
		d.Decode(disassembler.NewCursor(isa.WordsToBytes(0x4842), 0))

		entries := hook.AllEntries()
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Message).To(Equal("candidate rejected"))
		Expect(entries[0].Data["form"]).To(Equal("PEA"))
		Expect(entries[1].Message).To(Equal("decoded"))
		Expect(entries[1].Data["form"]).To(Equal("SWAP"))

		hook.Reset()
		d.Decode(disassembler.NewCursor(isa.WordsToBytes(0xA000), 0))
		Expect(hook.LastEntry().Level).To(Equal(logrus.WarnLevel))
		Expect(hook.LastEntry().Data["word"]).To(Equal("A000"))
	})

	It("should skip candidate entries above debug level", func() {
		log, hook := test.NewNullLogger()
		log.SetLevel(logrus.InfoLevel)
		d = disassembler.New(disassembler.WithLogger(log))
		inst := d.Decode(disassembler.NewCursor(isa.WordsToBytes(0x4842), 0))

		Expect(inst.Mnemonic).To(Equal("SWAP"))
		Expect(hook.AllEntries()).To(BeEmpty())

		d.Decode(disassembler.NewCursor(isa.WordsToBytes(0xA000), 0))
		Expect(hook.AllEntries()).To(HaveLen(1))
		Expect(hook.LastEntry().Message).To(Equal("no instruction form matches"))
	})
})

var _ = Describe("Label", func() {
	It("should name branch and call destinations", func() {
		// 1000: BSR 1006  1002: BEQ 1008  1004: RTS  1006: RTS  1008: BRA 1000
		code := isa.WordsToBytes(0x6104, 0x6704, 0x4E75, 0x4E75, 0x60F6)
		lines := disassembler.New().Listing(code, 0x1000)
		disassembler.Label(lines, 0x1000)

		Expect(lines[0].Label).To(Equal("loc_00001000"))
		Expect(lines[0].Target).To(Equal("sub_00001006"))
		Expect(lines[1].Target).To(Equal("loc_00001008"))
		Expect(lines[2].Label).To(BeEmpty())
		Expect(lines[3].Label).To(Equal("sub_00001006"))
		Expect(lines[4].Label).To(Equal("loc_00001008"))
		Expect(lines[0].Text()).To(Equal("BSR      sub_00001006\n"))
	})

	It("should not follow flow past an unconditional branch", func() {
		// 0: BRA 4  2: BSR 6 (unreachable)  4: RTS  6: RTS
		code := isa.WordsToBytes(0x6002, 0x6102, 0x4E75, 0x4E75)
		lines := disassembler.New().Listing(code, 0)
		disassembler.Label(lines, 0)

		Expect(lines[2].Label).To(Equal("loc_00000004"))
		Expect(lines[3].Label).To(BeEmpty())
	})

	It("should write labelled listings", func() {
		var out bytes.Buffer
		code := isa.WordsToBytes(0x51C8, 0xFFFE)
		Expect(disassembler.New().WriteListing(&out, code, 0x2000, true)).To(Succeed())

		lines := strings.Split(out.String(), "\n")
		Expect(lines[0]).To(Equal("loc_00002000:"))
		Expect(lines[1]).To(HaveSuffix("DBF      D0,loc_00002000"))
	})
})
