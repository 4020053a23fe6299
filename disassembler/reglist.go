package disassembler

import (
	"fmt"
	"strings"
)

// registerList renders a MOVEM mask in canonical order, bit 0 being D0 and
// bit 15 A7. Every entry is followed by a comma. Runs of three or more
// registers collapse to a range; pairs stay separate.
func registerList(mask uint16) string {
	var b strings.Builder
	appendRuns(&b, "D", uint8(mask))
	appendRuns(&b, "A", uint8(mask>>8))
	return b.String()
}

// appendRuns writes the runs of set bits in regs, lowest first.
func appendRuns(b *strings.Builder, prefix string, regs uint8) {
	for i := 0; i < 8; {
		if regs&(1<<i) == 0 {
			i++
			continue
		}
		start := i
		for i < 8 && regs&(1<<i) != 0 {
			i++
		}
		end := i - 1
		switch end - start {
		case 0:
			fmt.Fprintf(b, "%s%d,", prefix, start)
		case 1:
			fmt.Fprintf(b, "%s%d,%s%d,", prefix, start, prefix, end)
		default:
			fmt.Fprintf(b, "%s%d-%s%d,", prefix, start, prefix, end)
		}
	}
}
