package token

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// Token is the set of lexical tokens of the ECMAScript 3 dialect.
type Token int

// String returns the display name of the token as used in diagnostics,
// e.g. '+', 'while' or (identifier).
func (t Token) String() string {
	if t >= 0 && t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsKeyword reports whether t is a reserved word. Property names and
// member names after '.' accept identifiers and keywords alike.
func IsKeyword(t Token) bool {
	return t >= Break && t < lastToken
}

// Lookup returns the keyword token for word, or Identifier.
func Lookup(word string) Token {
	if t, ok := keywordTable[word]; ok {
		return t
	}
	return Identifier
}

// IsFutureReserved reports whether word is reserved for future use in
// every mode.
func IsFutureReserved(word string) bool {
	_, found := slices.BinarySearch(futureWords, word)
	return found
}

// IsStrictFutureReserved reports whether word is reserved in strict mode
// only.
func IsStrictFutureReserved(word string) bool {
	_, found := slices.BinarySearch(strictFutureWords, word)
	return found
}
