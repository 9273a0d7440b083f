package scanner

import "github.com/t14raptor/es3parse/token"

// scanIdentifier scans an identifier or keyword. Unicode escapes of the
// form \uXXXX are decoded into the name.
func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.Offset()
	escaped := false
	s.buf.Reset()

	for first := true; ; first = false {
		chr := s.src.Peek()
		if chr == '\\' {
			if !escaped {
				s.buf.WriteString(s.src.Slice(start, s.src.Offset()))
				escaped = true
			}
			s.src.Next()
			if !s.src.AdvanceIfByteEquals('u') {
				s.error(errInvalidEscape)
				return token.Undetermined
			}
			value := s.readHex(4)
			if value < 0 {
				s.error(errInvalidEscape)
				return token.Undetermined
			}
			value = s.surrogatePair(value)
			if first && !isIdentifierStart(value) || !first && !isIdentifierPart(value) {
				s.error(errInvalidIdentifierStart)
				return token.Undetermined
			}
			s.buf.WriteRune(value)
			continue
		}
		if !(first && isIdentifierStart(chr) || !first && isIdentifierPart(chr)) {
			break
		}
		s.src.Next()
		if escaped {
			s.buf.WriteRune(chr)
		}
	}

	if escaped {
		s.Token.Text = s.buf.String()
	} else {
		s.Token.Text = s.src.Slice(start, s.src.Offset())
	}
	return token.Lookup(s.Token.Text)
}
