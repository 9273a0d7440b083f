package scanner

import (
	"strconv"

	"github.com/t14raptor/es3parse/token"
)

func (s *Scanner) scanNumber() token.Token {
	start := s.src.Offset()

	if s.src.Peek() == '0' {
		switch s.src.PeekAt(1) {
		case 'x', 'X':
			s.src.Next()
			s.src.Next()
			return s.scanHex()
		}
		s.src.Next()
		if isDecimalDigit(s.src.Peek()) {
			s.error(errLeadingZero)
			return token.Undetermined
		}
	} else {
		s.skipDecimalDigits()
	}

	if s.src.AdvanceIfByteEquals('.') {
		return s.scanFraction(start)
	}
	return s.finishDecimal(start)
}

// scanFraction continues a decimal literal after its '.'.
func (s *Scanner) scanFraction(start int) token.Token {
	s.skipDecimalDigits()
	return s.finishDecimal(start)
}

func (s *Scanner) finishDecimal(start int) token.Token {
	if chr := s.src.Peek(); chr == 'e' || chr == 'E' {
		s.src.Next()
		if chr := s.src.Peek(); chr == '+' || chr == '-' {
			s.src.Next()
		}
		if !isDecimalDigit(s.src.Peek()) {
			s.error(errMissingExponent)
			return token.Undetermined
		}
		s.skipDecimalDigits()
	}
	if !s.checkAfterNumericLiteral() {
		return token.Undetermined
	}

	value, err := strconv.ParseFloat(s.src.Slice(start, s.src.Offset()), 64)
	if err != nil {
		// ParseFloat reports ErrRange together with ±Inf or 0, which is the
		// value the literal denotes.
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			s.error("%s", err.Error())
			return token.Undetermined
		}
	}
	s.Token.Number = value
	return token.Number
}

func (s *Scanner) scanHex() token.Token {
	if digitValue(s.src.Peek()) >= 16 {
		s.error(errMalformedHex)
		return token.Undetermined
	}
	var value float64
	for {
		d := digitValue(s.src.Peek())
		if d >= 16 {
			break
		}
		s.src.Next()
		value = value*16 + float64(d)
	}
	if !s.checkAfterNumericLiteral() {
		return token.Undetermined
	}
	s.Token.Number = value
	return token.Number
}

func (s *Scanner) skipDecimalDigits() {
	for isDecimalDigit(s.src.Peek()) {
		s.src.Next()
	}
}

func (s *Scanner) checkAfterNumericLiteral() bool {
	if chr := s.src.Peek(); isIdentifierStart(chr) || isDecimalDigit(chr) {
		s.error(errLetterSuffix)
		return false
	}
	return true
}
