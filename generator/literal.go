package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/t14raptor/es3parse/parser/scanner"
)

// formatNumber renders a finite number the way it would be written in a
// script.
func formatNumber(v float64) string {
	abs := math.Abs(v)
	if abs == 0 || abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// numberSource renders any number as script source. Values without a
// literal form are written as divisions.
func numberSource(v float64) string {
	switch {
	case math.IsNaN(v):
		return "0 / 0"
	case math.IsInf(v, 1):
		return "1 / 0"
	case math.IsInf(v, -1):
		return "-1 / 0"
	}
	return formatNumber(v)
}

// numberDump renders a number for tree dumps.
func numberDump(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return formatNumber(v)
}

func quote(str string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range str {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func regExpSource(n float64, body string) string {
	flags := int(n)
	var b strings.Builder
	b.WriteString("/" + body + "/")
	if flags&scanner.RegExpGlobal != 0 {
		b.WriteByte('g')
	}
	if flags&scanner.RegExpIgnoreCase != 0 {
		b.WriteByte('i')
	}
	if flags&scanner.RegExpMultiline != 0 {
		b.WriteByte('m')
	}
	return b.String()
}
