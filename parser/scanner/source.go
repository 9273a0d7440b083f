package scanner

import "unicode/utf8"

const eof = -1

// Source is a rune cursor over the script text that keeps track of the
// current line.
type Source struct {
	str  string
	pos  int
	line int
}

func NewSource(src string) Source {
	return Source{str: src, line: 1}
}

func (s *Source) EOF() bool {
	return s.pos >= len(s.str)
}

func (s *Source) Offset() int {
	return s.pos
}

func (s *Source) Line() int {
	return s.line
}

// Peek returns the next rune without consuming it, or eof.
func (s *Source) Peek() rune {
	if s.pos >= len(s.str) {
		return eof
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return r
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (s *Source) PeekAt(n int) byte {
	if s.pos+n >= len(s.str) {
		return 0
	}
	return s.str[s.pos+n]
}

// Next consumes and returns the next rune, or eof.
func (s *Source) Next() rune {
	if s.pos >= len(s.str) {
		return eof
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		s.pos++
		return rune(b)
	}
	r, size := utf8.DecodeRuneInString(s.str[s.pos:])
	s.pos += size
	return r
}

// AdvanceIfByteEquals consumes the next byte if it equals b.
func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if s.pos < len(s.str) && s.str[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) Slice(from, to int) string {
	return s.str[from:to]
}
