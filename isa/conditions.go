package isa

// Condition is the 4-bit condition field of Bcc, DBcc and Scc.
type Condition uint8

// Condition codes in encoding order.
const (
	CondT  Condition = iota // true
	CondF                   // false
	CondHI                  // high
	CondLS                  // low or same
	CondCC                  // carry clear
	CondCS                  // carry set
	CondNE                  // not equal
	CondEQ                  // equal
	CondVC                  // overflow clear
	CondVS                  // overflow set
	CondPL                  // plus
	CondMI                  // minus
	CondGE                  // greater or equal
	CondLT                  // less than
	CondGT                  // greater than
	CondLE                  // less or equal
)

var conditionNames = [16]string{
	"T", "F", "HI", "LS", "CC", "CS", "NE", "EQ",
	"VC", "VS", "PL", "MI", "GE", "LT", "GT", "LE",
}

// ConditionField extracts bits 11-8.
func ConditionField(word uint16) Condition {
	return Condition((word >> 8) & 0xF)
}

func (c Condition) String() string {
	return conditionNames[c&0xF]
}
