package encoding

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// HexDump renders b 16 bytes per line, each line being the offset,
// the hex bytes and their printable ASCII form. Offsets take at least
// four hex digits and grow past 0xffff. Bytes outside the
// printable range are shown as '.'.
func HexDump(b []byte) string {
	var sb strings.Builder

	for off := 0; off < len(b); off += 16 {
		end := off + 16
		if end > len(b) {
			end = len(b)
		}

		line := b[off:end]
		fmt.Fprintf(&sb, "%04x", off)
		sb.WriteString(": ")

		for i := 0; i < 16; i++ {
			if i < len(line) {
				sb.WriteByte(hexDigits[line[i]>>4])
				sb.WriteByte(hexDigits[line[i]&0xf])
			} else {
				sb.WriteString("  ")
			}
			if i%2 == 1 {
				sb.WriteByte(' ')
			}
		}

		sb.WriteByte(' ')
		for _, c := range line {
			if c < 0x20 || c > 0x7e {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(c)
			}
		}
		if end < len(b) {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
