package scanner

import "fmt"

// Error is a lexical error. Scanners without an ErrorHandler collect these
// in Scanner.Err.
type Error struct {
	Line    int
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Line, e.Message)
}

// ErrorHandler receives lexical errors. A handler may abort the scan by
// panicking; if it returns, the offending token is reported as
// token.Undetermined.
type ErrorHandler func(line int, msg string)

const (
	errUnexpectedCharacter    = "unexpected character: %q"
	errStringNotTerminated    = "string not terminated"
	errEscapeNotTerminated    = "unterminated escape sequence"
	errInvalidEscape          = "invalid escape sequence"
	errCommentNotTerminated   = "multi-line comment not terminated"
	errRegExpNotTerminated    = "regular expression not terminated"
	errRegExpFlag             = "illegal flag in regular expression: %c"
	errRegExpDuplicateFlag    = "duplicated flag in regular expression"
	errMalformedHex           = "malformed hexadecimal number"
	errLeadingZero            = "number with leading zero"
	errLetterSuffix           = "number with letter suffix"
	errMissingExponent        = "missing exponent"
	errInvalidIdentifierStart = "invalid identifier escape"
)
