package scanner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/es3parse/token"
)

// Scanner turns script text into tokens on demand. It holds exactly one
// token, the lookahead, in Token.
type Scanner struct {
	Token Token

	// Err collects lexical errors when no ErrorHandler is installed.
	Err error

	src      Source
	filename string
	errh     ErrorHandler

	// last is the kind of the previous token; it decides whether a '/'
	// starts a regular expression or is a division operator.
	last token.Token
	buf  strings.Builder
}

func NewScanner(filename, src string, errh ErrorHandler) *Scanner {
	s := &Scanner{errh: errh}
	s.Init(filename, src)
	return s
}

// Init re-targets the scanner at a new source text.
func (s *Scanner) Init(filename, src string) {
	s.src = NewSource(src)
	s.filename = filename
	s.Token = Token{Line: 1}
	s.last = token.Undetermined
	s.Err = nil
}

func (s *Scanner) Filename() string {
	return s.filename
}

// Line returns the line the scanner is currently positioned on.
func (s *Scanner) Line() int {
	return s.src.Line()
}

func (s *Scanner) error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.errh != nil {
		s.errh(s.src.Line(), msg)
		return
	}
	s.Err = errors.Join(s.Err, Error{Line: s.src.Line(), Message: msg})
}

// Next discards the current lookahead and scans the next token.
func (s *Scanner) Next() {
	s.Token.NewLine = false
	s.Token.Escaped = false
	s.Token.Text = ""
	s.Token.Number = 0

	for {
		s.Token.Line = s.src.Line()
		kind, skip := s.scan()
		if skip {
			continue
		}
		s.Token.Kind = kind
		break
	}
	s.last = s.Token.Kind
}

func (s *Scanner) scan() (token.Token, bool) {
	chr := s.src.Peek()

	switch {
	case chr == eof:
		return token.Eof, false
	case isLineTerminator(chr):
		s.skipLineTerminator()
		s.Token.NewLine = true
		return 0, true
	case isWhiteSpace(chr):
		s.src.Next()
		return 0, true
	case isIdentifierStart(chr) || chr == '\\':
		return s.scanIdentifier(), false
	case isDecimalDigit(chr):
		return s.scanNumber(), false
	}

	s.src.Next()
	switch chr {
	case '(':
		return token.LeftParenthesis, false
	case ')':
		return token.RightParenthesis, false
	case ',':
		return token.Comma, false
	case ':':
		return token.Colon, false
	case ';':
		return token.Semicolon, false
	case '?':
		return token.QuestionMark, false
	case '[':
		return token.LeftBracket, false
	case ']':
		return token.RightBracket, false
	case '{':
		return token.LeftBrace, false
	case '}':
		return token.RightBrace, false
	case '~':
		return token.BitwiseNot, false

	case '\'', '"':
		return s.scanString(chr), false

	case '.':
		if isDecimalDigit(s.src.Peek()) {
			return s.scanFraction(s.src.Offset() - 1), false
		}
		return token.Period, false

	case '/':
		if s.src.AdvanceIfByteEquals('/') {
			s.skipSingleLineComment()
			return 0, true
		}
		if s.src.AdvanceIfByteEquals('*') {
			if s.skipMultiLineComment() {
				s.Token.NewLine = true
			}
			return 0, true
		}
		if s.regExpAllowed() {
			return s.scanRegExp(), false
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.QuotientAssign, false
		}
		return token.Slash, false

	case '<':
		if s.src.AdvanceIfByteEquals('<') {
			if s.src.AdvanceIfByteEquals('=') {
				return token.ShiftLeftAssign, false
			}
			return token.ShiftLeft, false
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.LessOrEqual, false
		}
		return token.Less, false

	case '>':
		if s.src.AdvanceIfByteEquals('>') {
			if s.src.AdvanceIfByteEquals('>') {
				if s.src.AdvanceIfByteEquals('=') {
					return token.UnsignedShiftRightAssign, false
				}
				return token.UnsignedShiftRight, false
			}
			if s.src.AdvanceIfByteEquals('=') {
				return token.ShiftRightAssign, false
			}
			return token.ShiftRight, false
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.GreaterOrEqual, false
		}
		return token.Greater, false

	case '=':
		if s.src.AdvanceIfByteEquals('=') {
			if s.src.AdvanceIfByteEquals('=') {
				return token.StrictEqual, false
			}
			return token.Equal, false
		}
		return token.Assign, false

	case '!':
		if s.src.AdvanceIfByteEquals('=') {
			if s.src.AdvanceIfByteEquals('=') {
				return token.StrictNotEqual, false
			}
			return token.NotEqual, false
		}
		return token.Not, false

	case '+':
		if s.src.AdvanceIfByteEquals('+') {
			return token.Increment, false
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.AddAssign, false
		}
		return token.Plus, false

	case '-':
		if s.src.AdvanceIfByteEquals('-') {
			return token.Decrement, false
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.SubtractAssign, false
		}
		return token.Minus, false

	case '*':
		if s.src.AdvanceIfByteEquals('=') {
			return token.MultiplyAssign, false
		}
		return token.Multiply, false

	case '%':
		if s.src.AdvanceIfByteEquals('=') {
			return token.RemainderAssign, false
		}
		return token.Remainder, false

	case '&':
		if s.src.AdvanceIfByteEquals('&') {
			return token.LogicalAnd, false
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.AndAssign, false
		}
		return token.And, false

	case '|':
		if s.src.AdvanceIfByteEquals('|') {
			return token.LogicalOr, false
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.OrAssign, false
		}
		return token.Or, false

	case '^':
		if s.src.AdvanceIfByteEquals('=') {
			return token.ExclusiveOrAssign, false
		}
		return token.ExclusiveOr, false
	}

	s.error(errUnexpectedCharacter, chr)
	return token.Undetermined, false
}

// regExpAllowed reports whether a '/' after the previous token starts a
// regular expression literal rather than a division.
func (s *Scanner) regExpAllowed() bool {
	switch s.last {
	case token.RightBracket, token.RightParenthesis, token.RightBrace,
		token.Identifier, token.Number, token.String,
		token.False, token.Null, token.This, token.True:
		return false
	}
	return true
}
