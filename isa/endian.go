package isa

import "encoding/binary"

// WordsToBytes converts a slice of 16-bit words to a big-endian byte slice.
func WordsToBytes(words ...uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(out[i*2:], w)
	}
	return out
}

// BytesToWords interprets bytes as big-endian 16-bit words.
// If an odd number of bytes is passed, the final byte is padded with 0.
func BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		b = append(b[:len(b):len(b)], 0)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return out
}

// SignExtend8 sign-extends the low byte of v.
func SignExtend8(v uint16) int32 {
	return int32(int8(v & 0xFF))
}

// SignExtend16 sign-extends a 16-bit value.
func SignExtend16(v uint16) int32 {
	return int32(int16(v))
}
