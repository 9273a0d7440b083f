package parser

import (
	"io"
	"os"
	"strings"

	"github.com/t14raptor/es3parse/ast"
	"github.com/t14raptor/es3parse/parser/scanner"
	"github.com/t14raptor/es3parse/simplifier"
	"github.com/t14raptor/es3parse/token"
)

// Mode controls optional parser behaviour.
type Mode uint

const (
	// Strict parses every body as strict mode code.
	Strict Mode = 1 << iota
	// SkipFolding leaves constant expressions unfolded.
	SkipFolding
)

// Parser turns script text into trees owned by its arena. A Parser is not
// safe for concurrent use; give each goroutine its own.
type Parser struct {
	tok     scanner.Token
	scanner *scanner.Scanner

	arena *ast.Arena
	scope *scope
	mode  Mode

	filename string
	err      *SyntaxError

	warnings []Warning
	warnOut  io.Writer
}

func New(mode Mode) *Parser {
	p := &Parser{
		arena:   ast.NewArena(),
		mode:    mode,
		warnOut: os.Stderr,
	}
	p.scanner = scanner.NewScanner("", "", p.lexError)
	return p
}

// ParseFile parses the source text of a single script with a fresh parser
// and returns its statement list.
func ParseFile(filename, src string, mode Mode) (*ast.Node, error) {
	return New(mode).ParseProgram(filename, src)
}

// SetWarningOutput redirects warnings, os.Stderr by default. A nil writer
// silences them; they are still collected by Warnings.
func (p *Parser) SetWarningOutput(w io.Writer) {
	p.warnOut = w
}

// Warnings returns the warnings reported by the last parse.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// Arena returns the arena owning every node the parser has produced.
func (p *Parser) Arena() *ast.Arena {
	return p.arena
}

// Release frees every node produced so far and returns how many there
// were. Trees returned earlier must not be used afterwards.
func (p *Parser) Release() int {
	return p.arena.Release()
}

// ParseProgram parses a whole script and returns its list of statements
// and function declarations, or nil for an empty script. Constant
// expressions are folded unless SkipFolding is set.
//
// On a syntax error the result is nil and the error is a *SyntaxError.
// Nodes created before the error stay owned by the arena until Release.
func (p *Parser) ParseProgram(filename, src string) (*ast.Node, error) {
	p.reset()
	return p.run(func() *ast.Node {
		return p.program(filename, src)
	})
}

// ParseFunction builds an anonymous function expression from a parameter
// text and a body text, the way a Function constructor would. Params may
// be empty or blank for a function without parameters; otherwise it must
// consist of a comma separated identifier list and nothing else.
func (p *Parser) ParseFunction(filename, params, body string) (*ast.Node, error) {
	p.reset()
	return p.run(func() *ast.Node {
		var list *ast.Node
		if strings.TrimSpace(params) != "" {
			p.init(filename, params)
			p.openScope()
			list = p.parameters()
			p.closeScope()
			p.expect(token.Eof)
		}
		return p.arena.New(ast.ExpFun, nil, list, p.program(filename, body), nil)
	})
}

func (p *Parser) reset() {
	p.err = nil
	p.warnings = nil
	p.scope = nil
}

// run calls f and turns a syntax error raised anywhere below it into an
// error return.
func (p *Parser) run(f func() *ast.Node) (node *ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			node, err = nil, p.err
		}
	}()
	return f(), nil
}

func (p *Parser) init(filename, src string) {
	p.filename = filename
	p.scanner.Init(filename, src)
	p.tok = p.scanner.Token
	p.arena.Line = p.tok.Line
	p.next()
}

func (p *Parser) program(filename, src string) *ast.Node {
	p.init(filename, src)
	p.openScope()
	list := p.script(token.Eof)
	p.closeScope()
	if list != nil && p.mode&SkipFolding == 0 {
		simplifier.Fold(list)
	}
	return list
}

// next consumes the lookahead. Nodes created from here on are stamped with
// the line of the consumed token.
func (p *Parser) next() {
	p.arena.Line = p.tok.Line
	p.scanner.Next()
	p.tok = p.scanner.Token
}

func (p *Parser) accept(value token.Token) bool {
	if p.tok.Kind == value {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(value token.Token) {
	if !p.accept(value) {
		p.errorf(errUnexpectedTokenExpected, p.tok.Kind, value)
	}
}

// semicolon terminates a statement. An explicit semicolon is consumed;
// otherwise a closing brace, the end of input or a preceding line break
// ends the statement.
func (p *Parser) semicolon() {
	if p.accept(token.Semicolon) {
		return
	}
	if p.tok.NewLine || p.tok.Kind == token.RightBrace || p.tok.Kind == token.Eof {
		return
	}
	p.errorf(errUnexpectedTokenExpected, p.tok.Kind, token.Semicolon)
}

// list starts a list chain with a cell holding first.
func (p *Parser) list(first *ast.Node) *listBuilder {
	cell := p.arena.New(ast.List, first, nil, nil, nil)
	return &listBuilder{arena: p.arena, head: cell, tail: cell}
}

type listBuilder struct {
	arena      *ast.Arena
	head, tail *ast.Node
}

func (l *listBuilder) add(item *ast.Node) {
	cell := l.arena.New(ast.List, item, nil, nil, nil)
	l.tail.B = cell
	l.tail = cell
}

func (l *listBuilder) done() *ast.Node {
	return ast.Link(l.head)
}
