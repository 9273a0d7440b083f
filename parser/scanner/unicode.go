package scanner

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII runes take the unicode table path.
var asciiStart, asciiContinue [utf8.RuneSelf]bool

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicode.IsLetter(chr) || unicode.Is(unicode.Nl, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return isIdentifierStart(chr) ||
		unicode.In(chr, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) ||
		chr == '\u200c' || chr == '\u200d'
}

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

func isWhiteSpace(chr rune) bool {
	switch chr {
	case '\t', '\v', '\f', ' ', '\u00a0', '\ufeff':
		return true
	}
	return chr >= utf8.RuneSelf && unicode.Is(unicode.Zs, chr)
}

func isDecimalDigit(chr rune) bool {
	return '0' <= chr && chr <= '9'
}

func digitValue(chr rune) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

// readHex consumes n hexadecimal digits and returns their value, or -1
// if a non-hex character is found first.
func (s *Scanner) readHex(n int) rune {
	var value rune
	for i := 0; i < n; i++ {
		d := digitValue(s.src.Peek())
		if d >= 16 {
			return -1
		}
		s.src.Next()
		value = value<<4 | rune(d)
	}
	return value
}

// surrogatePair combines a high surrogate read from a \u escape with the
// low surrogate of a directly following \u escape. Anything else is
// returned unchanged and the second escape is left unread.
func (s *Scanner) surrogatePair(high rune) rune {
	if high < 0xd800 || high > 0xdbff {
		return high
	}
	if s.src.PeekAt(0) != '\\' || s.src.PeekAt(1) != 'u' {
		return high
	}
	var low rune
	for i := 2; i < 6; i++ {
		d := digitValue(rune(s.src.PeekAt(i)))
		if d >= 16 {
			return high
		}
		low = low<<4 | rune(d)
	}
	if !utf16.IsSurrogate(low) || low < 0xdc00 {
		return high
	}
	for i := 0; i < 6; i++ {
		s.src.Next()
	}
	return utf16.DecodeRune(high, low)
}
