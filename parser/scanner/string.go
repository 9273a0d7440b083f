package scanner

import "github.com/t14raptor/es3parse/token"

// scanString scans a string literal whose opening quote has been
// consumed and stores its decoded value in Token.Text.
func (s *Scanner) scanString(quote rune) token.Token {
	start := s.src.Offset()
	escaped := false
	s.buf.Reset()

	for {
		chr := s.src.Peek()
		switch {
		case chr == quote:
			if escaped {
				s.Token.Text = s.buf.String()
				s.Token.Escaped = true
			} else {
				s.Token.Text = s.src.Slice(start, s.src.Offset())
			}
			s.src.Next()
			return token.String
		case chr == eof || isLineTerminator(chr):
			s.error(errStringNotTerminated)
			return token.Undetermined
		case chr == '\\':
			if !escaped {
				s.buf.WriteString(s.src.Slice(start, s.src.Offset()))
				escaped = true
			}
			s.src.Next()
			if !s.readStringEscapeSequence() {
				return token.Undetermined
			}
		default:
			s.src.Next()
			if escaped {
				s.buf.WriteRune(chr)
			}
		}
	}
}

// readStringEscapeSequence decodes the escape after a backslash into the
// scanner buffer.
func (s *Scanner) readStringEscapeSequence() bool {
	chr := s.src.Peek()
	if isLineTerminator(chr) {
		// Line continuation contributes nothing to the value.
		s.skipLineTerminator()
		return true
	}

	switch chr {
	case eof:
		s.error(errEscapeNotTerminated)
		return false
	case 'u', 'x':
		s.src.Next()
		n := 4
		if chr == 'x' {
			n = 2
		}
		value := s.readHex(n)
		if value < 0 {
			s.error(errInvalidEscape)
			return false
		}
		if chr == 'u' {
			value = s.surrogatePair(value)
		}
		s.buf.WriteRune(value)
		return true
	}

	s.src.Next()
	switch chr {
	case '0':
		s.buf.WriteByte(0)
	case 'b':
		s.buf.WriteByte('\b')
	case 'f':
		s.buf.WriteByte('\f')
	case 'n':
		s.buf.WriteByte('\n')
	case 'r':
		s.buf.WriteByte('\r')
	case 't':
		s.buf.WriteByte('\t')
	case 'v':
		s.buf.WriteByte('\v')
	default:
		s.buf.WriteRune(chr)
	}
	return true
}
