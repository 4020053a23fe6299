// Package isa holds the MC68000 vocabulary shared by the decoder: operand sizes,
// effective addressing modes, condition codes and big-endian word helpers.
package isa
