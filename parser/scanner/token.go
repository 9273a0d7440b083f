package scanner

import "github.com/t14raptor/es3parse/token"

// Regular expression flag bits stored in Token.Number for RegExp tokens.
const (
	RegExpGlobal     = 1
	RegExpIgnoreCase = 2
	RegExpMultiline  = 4
)

type Token struct {
	Kind token.Token

	// Text is the identifier name, the decoded string value or the
	// regular expression source.
	Text string
	// Number is the value of a number literal, or the flag bits of a
	// regular expression literal.
	Number float64

	Line int
	// NewLine is set when a line terminator separates this token from the
	// previous one.
	NewLine bool
	// Escaped is set on a string literal whose source contains an escape
	// sequence or a line continuation.
	Escaped bool
}

func (t Token) String() string {
	switch t.Kind {
	case token.Identifier:
		return t.Text
	}
	return t.Kind.String()
}
