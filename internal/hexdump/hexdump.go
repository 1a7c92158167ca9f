// Package hexdump renders raw bytes as a classic offset/hex/ASCII dump,
// colorizing the ASCII gutter so printable and non-printable runs are easy
// to tell apart at a glance in a terminal.
package hexdump

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const bytesPerLine = 16

var (
	printableColor    = color.New(color.FgGreen)
	nonPrintableColor = color.New(color.FgHiBlack)
)

// Dump renders data as a multi-line hexdump string: an 8-digit hex offset,
// up to 16 space-separated hex byte pairs (with an extra gap after the
// eighth), and a colorized ASCII rendering of the same 16 bytes.
func Dump(data []byte) string {
	var b strings.Builder
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]
		fmt.Fprintf(&b, "%08x  ", offset)
		writeHexColumns(&b, line)
		b.WriteString(" |")
		writeASCIIColumn(&b, line)
		b.WriteString("|\n")
	}
	return b.String()
}

func writeHexColumns(b *strings.Builder, line []byte) {
	for i := 0; i < bytesPerLine; i++ {
		if i == bytesPerLine/2 {
			b.WriteByte(' ')
		}
		if i < len(line) {
			fmt.Fprintf(b, "%02x ", line[i])
		} else {
			b.WriteString("   ")
		}
	}
}

func writeASCIIColumn(b *strings.Builder, line []byte) {
	for _, c := range line {
		if c >= 0x20 && c < 0x7f {
			printableColor.Fprintf(b, "%c", c)
		} else {
			nonPrintableColor.Fprint(b, ".")
		}
	}
}
