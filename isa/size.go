package isa

// Size is an operand size as encoded by the two-bit size field of most instructions.
type Size int

const (
	// SizeByte is 8-bit data.
	SizeByte Size = iota
	// SizeWord is 16-bit data.
	SizeWord
	// SizeLong is 32-bit data.
	SizeLong
	// SizeInvalid is the reserved size field value 3.
	SizeInvalid
)

var sizeSuffixes = [...]byte{'B', 'W', 'L'}

// Valid reports whether the size is one of byte, word or long.
func (s Size) Valid() bool {
	return s >= SizeByte && s <= SizeLong
}

// Suffix returns the size letter used after a mnemonic, or 0 for an invalid size.
func (s Size) Suffix() byte {
	if !s.Valid() {
		return 0
	}
	return sizeSuffixes[s]
}

// ImmediateWords returns how many extension words an immediate of this size occupies.
func (s Size) ImmediateWords() int {
	if s == SizeLong {
		return 2
	}
	return 1
}

func (s Size) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(s.Suffix())
}

// SizeField extracts the standard size field (bits 7-6).
func SizeField(word uint16) Size {
	return Size((word >> 6) & 3)
}

// MoveSizeField extracts the MOVE/MOVEA size field (bits 13-12), which uses
// 1=byte, 3=word and 2=long. Zero is not a move and yields SizeInvalid.
func MoveSizeField(word uint16) Size {
	switch (word >> 12) & 3 {
	case 1:
		return SizeByte
	case 2:
		return SizeLong
	case 3:
		return SizeWord
	}
	return SizeInvalid
}
