package scanner

import "github.com/t14raptor/es3parse/token"

// scanRegExp scans a regular expression literal whose opening slash has
// been consumed. The body is kept verbatim in Token.Text and the flags are
// encoded in Token.Number.
func (s *Scanner) scanRegExp() token.Token {
	start := s.src.Offset()
	inClass := false

	for {
		chr := s.src.Peek()
		if chr == eof || isLineTerminator(chr) {
			s.error(errRegExpNotTerminated)
			return token.Undetermined
		}
		if chr == '/' && !inClass {
			break
		}
		s.src.Next()
		switch chr {
		case '\\':
			if next := s.src.Peek(); next == eof || isLineTerminator(next) {
				s.error(errRegExpNotTerminated)
				return token.Undetermined
			}
			s.src.Next()
		case '[':
			inClass = true
		case ']':
			inClass = false
		}
	}
	s.Token.Text = s.src.Slice(start, s.src.Offset())
	s.src.Next() // closing '/'

	var g, i, m int
	for isIdentifierPart(s.src.Peek()) {
		switch chr := s.src.Next(); chr {
		case 'g':
			g++
		case 'i':
			i++
		case 'm':
			m++
		default:
			s.error(errRegExpFlag, chr)
			return token.Undetermined
		}
	}
	if g > 1 || i > 1 || m > 1 {
		s.error(errRegExpDuplicateFlag)
		return token.Undetermined
	}

	flags := 0
	if g > 0 {
		flags |= RegExpGlobal
	}
	if i > 0 {
		flags |= RegExpIgnoreCase
	}
	if m > 0 {
		flags |= RegExpMultiline
	}
	s.Token.Number = float64(flags)
	return token.RegExp
}
