package disassembler

// Cursor reads big-endian bytes and words from a borrowed window while keeping an
// instruction address in step with the bytes consumed. A read past the end of the
// window returns zero, leaves the position alone and sets a sticky overflow flag.
//
// A Cursor belongs to one decode session and is not safe for concurrent use; the
// window itself is never written, so several cursors may share it.
type Cursor struct {
	window   []byte
	pos      int
	address  uint32
	overflow bool
}

// NewCursor returns a cursor at the start of window, which is addressed as address.
func NewCursor(window []byte, address uint32) *Cursor {
	return &Cursor{window: window, address: address}
}

// NextByte returns the next byte, or 0 and sets the overflow flag if none remain.
func (c *Cursor) NextByte() byte {
	if c.pos < len(c.window) {
		b := c.window[c.pos]
		c.pos++
		c.address++
		return b
	}
	c.overflow = true
	return 0
}

// NextWord returns the next big-endian word, or 0 and sets the overflow flag if
// fewer than two bytes remain.
func (c *Cursor) NextWord() uint16 {
	if c.pos+1 < len(c.window) {
		w := uint16(c.window[c.pos])<<8 | uint16(c.window[c.pos+1])
		c.pos += 2
		c.address += 2
		return w
	}
	c.overflow = true
	return 0
}

// Address is the address of the next byte to be read.
func (c *Cursor) Address() uint32 {
	return c.address
}

// Position is the offset of the next byte within the window.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining is the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.window) - c.pos
}

// Overflow reports whether any read has run past the end of the window.
func (c *Cursor) Overflow() bool {
	return c.overflow
}
