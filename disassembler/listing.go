package disassembler

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Line is one entry of a listing: a decoded instruction, or a run of bytes
// that did not decode and is shown as data.
type Line struct {
	Address     uint32
	Bytes       []byte
	Instruction Instruction
	Data        bool
	// Label names the line when Label found it to be a branch destination.
	Label string
	// Target names the destination of a branch, jump or call.
	Target string
}

// Text is the line's instruction text with any Target substituted for the
// destination address.
func (l Line) Text() string {
	if l.Target == "" || !l.Instruction.Valid {
		return l.Instruction.String()
	}
	inst := l.Instruction
	inst.Operands = replaceAbsoluteAddress(inst.Operands, l.Target)
	return inst.String()
}

// Listing decodes a whole image loaded at origin. Words no form accepts, and
// instructions cut short by the end of the image, become data; decoding then
// resumes at the next word. Consecutive data bytes share one Line.
func (d *Decoder) Listing(code []byte, origin uint32) []Line {
	var lines []Line
	dataStart := -1
	flush := func(end int) {
		if dataStart < 0 {
			return
		}
		lines = append(lines, Line{
			Address: origin + uint32(dataStart),
			Bytes:   code[dataStart:end],
			Data:    true,
		})
		dataStart = -1
	}

	pos := 0
	for pos < len(code) {
		if len(code)-pos < 2 {
			if dataStart < 0 {
				dataStart = pos
			}
			pos = len(code)
			break
		}

		c := NewCursor(code[pos:], origin+uint32(pos))
		inst := d.Decode(c)
		if !inst.Valid || c.Overflow() {
			if c.Overflow() {
				d.log.WithFields(logrus.Fields{
					"address": fmt.Sprintf("%08X", inst.Address),
					"form":    inst.Form.String(),
				}).Warn("instruction truncated by end of image")
			}
			if dataStart < 0 {
				dataStart = pos
			}
			pos += 2
			continue
		}

		flush(pos)
		end := pos + int(inst.Size)
		lines = append(lines, Line{
			Address:     inst.Address,
			Bytes:       code[pos:end],
			Instruction: inst,
		})
		pos = end
	}
	flush(pos)
	return lines
}

// FormatListing renders lines as text: address, raw words and instruction,
// with label lines before named destinations.
func FormatListing(lines []Line) string {
	var out strings.Builder
	stringCounter := 1
	for _, l := range lines {
		if l.Data {
			out.WriteString(analyzeAndFormatData(l.Bytes, l.Address, &stringCounter))
			continue
		}
		if l.Label != "" {
			fmt.Fprintf(&out, "%s:\n", l.Label)
		}
		fmt.Fprintf(&out, "%08x  %-24s  %s", l.Address, hexWords(l.Bytes), l.Text())
	}
	return out.String()
}

// WriteListing decodes code and writes its listing to w.
func (d *Decoder) WriteListing(w io.Writer, code []byte, origin uint32, labels bool) error {
	lines := d.Listing(code, origin)
	if labels {
		Label(lines, origin)
	}
	_, err := io.WriteString(w, FormatListing(lines))
	return err
}

// Disassemble returns the classic listing of code loaded at origin.
func Disassemble(code []byte, origin uint32) string {
	return FormatListing(defaultDecoder.Listing(code, origin))
}
