package scanner

// skipLineTerminator consumes one line terminator, treating CRLF as a
// single line break.
func (s *Scanner) skipLineTerminator() {
	if s.src.Next() == '\r' {
		s.src.AdvanceIfByteEquals('\n')
	}
	s.src.line++
}

func (s *Scanner) skipSingleLineComment() {
	for {
		chr := s.src.Peek()
		if chr == eof || isLineTerminator(chr) {
			return
		}
		s.src.Next()
	}
}

// skipMultiLineComment skips a comment whose opening "/*" has been
// consumed and reports whether it spanned a line terminator.
func (s *Scanner) skipMultiLineComment() (hasLineTerminator bool) {
	for {
		chr := s.src.Peek()
		switch {
		case chr == eof:
			s.error(errCommentNotTerminated)
			return
		case isLineTerminator(chr):
			s.skipLineTerminator()
			hasLineTerminator = true
		case chr == '*' && s.src.PeekAt(1) == '/':
			s.src.Next()
			s.src.Next()
			return
		default:
			s.src.Next()
		}
	}
}
