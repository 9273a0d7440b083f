package parser

import (
	"fmt"

	"github.com/t14raptor/es3parse/token"
)

const (
	errUnexpectedTokenExpected = "unexpected token: %s (expected %s)"
	errUnexpectedExpression    = "unexpected token in expression: %s"
	errExpectedIdentifier      = "unexpected token: %s (expected identifier)"
	errExpectedIdentifierName  = "unexpected token: %s (expected identifier or keyword)"
	errFutureReserved          = "'%s' is a future reserved word"
	errStrictFutureReserved    = "'%s' is a strict mode future reserved word"
	errStrictWith              = "'with' statements are not allowed in strict mode"
	errForVar                  = "unexpected token in for-var-statement: %s"
	errFor                     = "unexpected token in for-statement: %s"
	errTry                     = "unexpected token in try: %s (expected 'catch' or 'finally')"
	errSwitch                  = "unexpected token in switch: %s (expected 'case' or 'default')"

	warnFunctionStatement = "function statements are not standard"
)

// SyntaxError is the only error a parse returns. The first error aborts
// the parse.
type SyntaxError struct {
	File    string
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

// Warning is a non-fatal diagnostic.
type Warning struct {
	File    string
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: warning: %s", w.File, w.Line, w.Message)
}

// bailout unwinds the parser to the entry point after p.err is set.
type bailout struct{}

// errorf records a syntax error at the line of the lookahead token and
// aborts the parse.
func (p *Parser) errorf(format string, args ...any) {
	p.fail(p.tok.Line, fmt.Sprintf(format, args...))
}

func (p *Parser) fail(line int, msg string) {
	p.err = &SyntaxError{File: p.filename, Line: line, Message: msg}
	panic(bailout{})
}

// lexError is the scanner's error handler.
func (p *Parser) lexError(line int, msg string) {
	p.fail(line, msg)
}

func (p *Parser) warnf(format string, args ...any) {
	w := Warning{File: p.filename, Line: p.tok.Line, Message: fmt.Sprintf(format, args...)}
	p.warnings = append(p.warnings, w)
	if p.warnOut != nil {
		fmt.Fprintln(p.warnOut, w.String())
	}
}

// checkFutureWord rejects identifiers that are reserved for future use.
func (p *Parser) checkFutureWord(name string) {
	if token.IsFutureReserved(name) {
		p.errorf(errFutureReserved, name)
	}
	if p.scope.strict && token.IsStrictFutureReserved(name) {
		p.errorf(errStrictFutureReserved, name)
	}
}
