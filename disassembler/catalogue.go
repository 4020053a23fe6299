package disassembler

// Form identifies one instruction encoding variant. Forms are numbered in
// catalogue order, which is also the order in which a word is tried against them:
// narrower patterns come before the broader ones that would otherwise shadow them.
type Form int

// Instruction forms in catalogue order. FormNone is reserved and never matches.
const (
	FormNone Form = iota
	FormABCD
	FormADD
	FormADDA
	FormADDI
	FormADDQ
	FormADDX
	FormAND
	FormANDI
	FormASLReg
	FormASLMem
	FormASRReg
	FormASRMem
	FormBcc
	FormBCHGReg
	FormBCHGImm
	FormBCLRReg
	FormBCLRImm
	FormBSETReg
	FormBSETImm
	FormBTSTReg
	FormBTSTImm
	FormCHK
	FormCLR
	FormCMP
	FormCMPA
	FormCMPI
	FormCMPM
	FormDBcc
	FormDIVS
	FormDIVU
	FormEOR
	FormEORI
	FormEXG
	FormEXT
	FormJMP
	FormJSR
	FormLEA
	FormLINK
	FormLSLReg
	FormLSLMem
	FormLSRReg
	FormLSRMem
	FormMOVE
	FormMOVEToCCR
	FormMOVEToSR
	FormMOVEFromSR
	FormMOVEUSP
	FormMOVEA
	FormMOVEM
	FormMOVEP
	FormMOVEQ
	FormMULS
	FormMULU
	FormNBCD
	FormNEG
	FormNEGX
	FormNOP
	FormNOT
	FormOR
	FormORI
	FormPEA
	FormRESET
	FormROLReg
	FormROLMem
	FormRORReg
	FormRORMem
	FormROXLReg
	FormROXLMem
	FormROXRReg
	FormROXRMem
	FormRTE
	FormRTR
	FormRTS
	FormSBCD
	FormScc
	FormSTOP
	FormSUB
	FormSUBA
	FormSUBI
	FormSUBQ
	FormSUBX
	FormSWAP
	FormTAS
	FormTRAP
	FormTRAPV
	FormTST
	FormUNLK

	formCount
)

// decodeFunc extracts and renders one form. Returning ok=false rejects the word
// for this form; a rejecting decodeFunc must not have read from the cursor.
type decodeFunc func(m *match) (mnemonic, operands string, ok bool)

type descriptor struct {
	mask     uint16
	value    uint16
	mnemonic string
	variant  string
	decode   decodeFunc
}

var catalogue = [...]descriptor{
	FormNone:       {0x0000, 0x0000, "", "", nil},
	FormABCD:       {0xF1F0, 0xC100, "ABCD", "", decodeDecimal},
	FormADD:        {0xF000, 0xD000, "ADD", "", decodeDyadic},
	FormADDA:       {0xF0C0, 0xD0C0, "ADDA", "", decodeAddressArithmetic},
	FormADDI:       {0xFF00, 0x0600, "ADDI", "", decodeImmediate},
	FormADDQ:       {0xF100, 0x5000, "ADDQ", "", decodeQuick},
	FormADDX:       {0xF130, 0xD100, "ADDX", "", decodeExtended},
	FormAND:        {0xF000, 0xC000, "AND", "", decodeDyadic},
	FormANDI:       {0xFF00, 0x0200, "ANDI", "", decodeImmediate},
	FormASLReg:     {0xF118, 0xE100, "ASL", "Dn", decodeShiftRegister},
	FormASLMem:     {0xFFC0, 0xE1C0, "ASL", "ea", decodeShiftMemory},
	FormASRReg:     {0xF118, 0xE000, "ASR", "Dn", decodeShiftRegister},
	FormASRMem:     {0xFFC0, 0xE0C0, "ASR", "ea", decodeShiftMemory},
	FormBcc:        {0xF000, 0x6000, "Bcc", "", decodeBranch},
	FormBCHGReg:    {0xF1C0, 0x0140, "BCHG", "Dn", decodeBitOperation},
	FormBCHGImm:    {0xFFC0, 0x0840, "BCHG", "#", decodeBitOperation},
	FormBCLRReg:    {0xF1C0, 0x0180, "BCLR", "Dn", decodeBitOperation},
	FormBCLRImm:    {0xFFC0, 0x0880, "BCLR", "#", decodeBitOperation},
	FormBSETReg:    {0xF1C0, 0x01C0, "BSET", "Dn", decodeBitOperation},
	FormBSETImm:    {0xFFC0, 0x08C0, "BSET", "#", decodeBitOperation},
	FormBTSTReg:    {0xF1C0, 0x0100, "BTST", "Dn", decodeBitOperation},
	FormBTSTImm:    {0xFFC0, 0x0800, "BTST", "#", decodeBitOperation},
	FormCHK:        {0xF1C0, 0x4180, "CHK", "", decodeToDataRegister},
	FormCLR:        {0xFF00, 0x4200, "CLR", "", decodeUnary},
	FormCMP:        {0xF100, 0xB000, "CMP", "", decodeToDataRegister},
	FormCMPA:       {0xF0C0, 0xB0C0, "CMPA", "", decodeCompareAddress},
	FormCMPI:       {0xFF00, 0x0C00, "CMPI", "", decodeImmediate},
	FormCMPM:       {0xF138, 0xB108, "CMPM", "", decodeExtended},
	FormDBcc:       {0xF0F8, 0x50C8, "DBcc", "", decodeDecrementBranch},
	FormDIVS:       {0xF1C0, 0x81C0, "DIVS", "", decodeToDataRegister},
	FormDIVU:       {0xF1C0, 0x80C0, "DIVU", "", decodeToDataRegister},
	FormEOR:        {0xF100, 0xB100, "EOR", "", decodeDyadic},
	FormEORI:       {0xFF00, 0x0A00, "EORI", "", decodeImmediate},
	FormEXG:        {0xF100, 0xC100, "EXG", "", decodeExchange},
	FormEXT:        {0xFFB8, 0x4880, "EXT", "", decodeExtend},
	FormJMP:        {0xFFC0, 0x4EC0, "JMP", "", decodeControl},
	FormJSR:        {0xFFC0, 0x4E80, "JSR", "", decodeControl},
	FormLEA:        {0xF1C0, 0x41C0, "LEA", "", decodeLoadAddress},
	FormLINK:       {0xFFF8, 0x4E50, "LINK", "", decodeLink},
	FormLSLReg:     {0xF118, 0xE108, "LSL", "Dn", decodeShiftRegister},
	FormLSLMem:     {0xFFC0, 0xE3C0, "LSL", "ea", decodeShiftMemory},
	FormLSRReg:     {0xF118, 0xE008, "LSR", "Dn", decodeShiftRegister},
	FormLSRMem:     {0xFFC0, 0xE2C0, "LSR", "ea", decodeShiftMemory},
	FormMOVE:       {0xC000, 0x0000, "MOVE", "", decodeMove},
	FormMOVEToCCR:  {0xFFC0, 0x44C0, "MOVE", "to CCR", decodeMoveToStatus},
	FormMOVEToSR:   {0xFFC0, 0x46C0, "MOVE", "to SR", decodeMoveToStatus},
	FormMOVEFromSR: {0xFFC0, 0x40C0, "MOVE", "from SR", decodeMoveFromStatus},
	FormMOVEUSP:    {0xFFF0, 0x4E60, "MOVE", "USP", decodeMoveUSP},
	FormMOVEA:      {0xC1C0, 0x0040, "MOVEA", "", decodeMoveAddress},
	FormMOVEM:      {0xFB80, 0x4880, "MOVEM", "", decodeMoveMultiple},
	FormMOVEP:      {0xF138, 0x0108, "MOVEP", "", decodeMovePeripheral},
	FormMOVEQ:      {0xF100, 0x7000, "MOVEQ", "", decodeMoveQuick},
	FormMULS:       {0xF1C0, 0xC1C0, "MULS", "", decodeToDataRegister},
	FormMULU:       {0xF1C0, 0xC0C0, "MULU", "", decodeToDataRegister},
	FormNBCD:       {0xFFC0, 0x4800, "NBCD", "", decodeUnary},
	FormNEG:        {0xFF00, 0x4400, "NEG", "", decodeUnary},
	FormNEGX:       {0xFF00, 0x4000, "NEGX", "", decodeUnary},
	FormNOP:        {0xFFFF, 0x4E71, "NOP", "", decodeImplicit},
	FormNOT:        {0xFF00, 0x4600, "NOT", "", decodeUnary},
	FormOR:         {0xF000, 0x8000, "OR", "", decodeDyadic},
	FormORI:        {0xFF00, 0x0000, "ORI", "", decodeImmediate},
	FormPEA:        {0xFFC0, 0x4840, "PEA", "", decodeControl},
	FormRESET:      {0xFFFF, 0x4E70, "RESET", "", decodeImplicit},
	FormROLReg:     {0xF118, 0xE118, "ROL", "Dn", decodeShiftRegister},
	FormROLMem:     {0xFFC0, 0xE7C0, "ROL", "ea", decodeShiftMemory},
	FormRORReg:     {0xF118, 0xE018, "ROR", "Dn", decodeShiftRegister},
	FormRORMem:     {0xFFC0, 0xE6C0, "ROR", "ea", decodeShiftMemory},
	FormROXLReg:    {0xF118, 0xE110, "ROXL", "Dn", decodeShiftRegister},
	FormROXLMem:    {0xFFC0, 0xE5C0, "ROXL", "ea", decodeShiftMemory},
	FormROXRReg:    {0xF118, 0xE010, "ROXR", "Dn", decodeShiftRegister},
	FormROXRMem:    {0xFFC0, 0xE4C0, "ROXR", "ea", decodeShiftMemory},
	FormRTE:        {0xFFFF, 0x4E73, "RTE", "", decodeImplicit},
	FormRTR:        {0xFFFF, 0x4E77, "RTR", "", decodeImplicit},
	FormRTS:        {0xFFFF, 0x4E75, "RTS", "", decodeImplicit},
	FormSBCD:       {0xF1F0, 0x8100, "SBCD", "", decodeDecimal},
	FormScc:        {0xF0C0, 0x50C0, "Scc", "", decodeSet},
	FormSTOP:       {0xFFFF, 0x4E72, "STOP", "", decodeImplicit},
	FormSUB:        {0xF000, 0x9000, "SUB", "", decodeDyadic},
	FormSUBA:       {0xF0C0, 0x90C0, "SUBA", "", decodeAddressArithmetic},
	FormSUBI:       {0xFF00, 0x0400, "SUBI", "", decodeImmediate},
	FormSUBQ:       {0xF100, 0x5100, "SUBQ", "", decodeQuick},
	FormSUBX:       {0xF130, 0x9100, "SUBX", "", decodeExtended},
	FormSWAP:       {0xFFF8, 0x4840, "SWAP", "", decodeSwap},
	FormTAS:        {0xFFC0, 0x4AC0, "TAS", "", decodeUnary},
	FormTRAP:       {0xFFF0, 0x4E40, "TRAP", "", decodeTrap},
	FormTRAPV:      {0xFFFF, 0x4E76, "TRAPV", "", decodeImplicit},
	FormTST:        {0xFF00, 0x4A00, "TST", "", decodeTest},
	FormUNLK:       {0xFFF8, 0x4E58, "UNLK", "", decodeUnlink},
}

// The catalogue must hold exactly one descriptor per form.
var _ = [1]struct{}{}[len(catalogue)-int(formCount)]

// Classic output labels the left rotates ROR and the right rotates ROL.
var classicMnemonics = map[Form]string{
	FormROLReg: "ROR",
	FormROLMem: "ROR",
	FormRORReg: "ROL",
	FormRORMem: "ROL",
}

// Forms returns the number of catalogue slots, including the reserved FormNone.
func Forms() int {
	return int(formCount)
}

func (f Form) valid() bool {
	return f > FormNone && f < formCount
}

// Mask is the bit mask applied to a word before comparing it with Value.
func (f Form) Mask() uint16 {
	if !f.valid() {
		return 0
	}
	return catalogue[f].mask
}

// Value is the pattern a masked word must equal to match the form.
func (f Form) Value() uint16 {
	if !f.valid() {
		return 0
	}
	return catalogue[f].value
}

// Matches reports whether word has the form's bit pattern. A match is only a
// candidate: the form's own field checks may still reject the word.
func (f Form) Matches(word uint16) bool {
	return f.valid() && word&catalogue[f].mask == catalogue[f].value
}

func (f Form) String() string {
	if !f.valid() {
		return "none"
	}
	d := catalogue[f]
	if d.variant == "" {
		return d.mnemonic
	}
	return d.mnemonic + " " + d.variant
}

// Candidates lists, in scan order, every form whose bit pattern matches word.
func Candidates(word uint16) []Form {
	var forms []Form
	for f := FormNone + 1; f < formCount; f++ {
		if f.Matches(word) {
			forms = append(forms, f)
		}
	}
	return forms
}
