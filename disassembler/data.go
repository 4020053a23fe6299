package disassembler

import (
	"fmt"
	"strings"
)

// isPrintableASCII checks if a byte is a standard printable ASCII character.
func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// analyzeAndFormatData renders bytes that did not decode as DC.B directives,
// pulling out NUL-terminated strings and aligned four-character tags.
func analyzeAndFormatData(data []byte, baseAddr uint32, stringCounter *int) string {
	var sb strings.Builder
	n := len(data)
	if n == 0 {
		return ""
	}

	i := 0
	minStrLen := 4

	for i < n {
		// Skip non-printables first
		start := i
		for start < n && !isPrintableASCII(data[start]) {
			start++
		}
		if start > i {
			sb.WriteString(formatHexBytes(data[i:start], baseAddr+uint32(i)))
		}

		// Find printable run
		end := start
		for end < n && isPrintableASCII(data[end]) {
			end++
		}
		if end <= start {
			i = start
			continue
		}

		run := data[start:end]
		runAddr := baseAddr + uint32(start)
		isNullTerminated := end < n && data[end] == 0x00

		// printable + NUL, at least 4 chars: string
		if isNullTerminated && len(run) >= minStrLen {
			fmt.Fprintf(&sb, "string%d:\n", *stringCounter)
			(*stringCounter)++
			sb.WriteString(dataLine(runAddr, "", quoteString(run)+",$00"))
			i = end + 1
			continue
		}

		// 4-byte aligned, 4 printable chars: tag
		if len(run) == 4 && runAddr%4 == 0 {
			fmt.Fprintf(&sb, "string%d:\n", *stringCounter)
			(*stringCounter)++
			sb.WriteString(dataLine(runAddr, "", quoteString(run)))
			i = end
			continue
		}

		// anything else, emit as hex
		sb.WriteString(formatHexBytes(run, runAddr))
		i = end
	}

	return sb.String()
}

func quoteString(b []byte) string {
	return "'" + strings.ReplaceAll(string(b), "'", "''") + "'"
}

// formatHexBytes formats a slice of bytes into DC.B directives, 8 bytes per line.
func formatHexBytes(data []byte, baseAddr uint32) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	const bytesPerLine = 8

	for i := 0; i < len(data); i += bytesPerLine {
		end := min(i+bytesPerLine, len(data))
		chunk := data[i:end]

		values := make([]string, len(chunk))
		for j, b := range chunk {
			values[j] = fmt.Sprintf("$%02X", b)
		}
		sb.WriteString(dataLine(baseAddr+uint32(i), hexWords(chunk), strings.Join(values, ",")))
	}

	return sb.String()
}

func dataLine(addr uint32, hex, operands string) string {
	return fmt.Sprintf("%08x  %-24s  %-8s %s\n", addr, hex, "DC.B", operands)
}

// hexWords shows raw bytes as big-endian words, with an odd trailing byte on its own.
func hexWords(b []byte) string {
	parts := make([]string, 0, (len(b)+1)/2)
	for i := 0; i < len(b); i += 2 {
		if i+1 < len(b) {
			parts = append(parts, fmt.Sprintf("%02X%02X", b[i], b[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%02X", b[i]))
		}
	}
	return strings.Join(parts, " ")
}
