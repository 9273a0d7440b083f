package parser

import (
	"github.com/t14raptor/es3parse/ast"
	"github.com/t14raptor/es3parse/token"
)

func (p *Parser) parameters() *ast.Node {
	if p.tok.Kind == token.RightParenthesis {
		return nil
	}
	l := p.list(p.identifier())
	for p.accept(token.Comma) {
		l.add(p.identifier())
	}
	return l.done()
}

// function parses name, parameters and body; the name is optional for
// function expressions.
func (p *Parser) function(named bool) (name, params, body *ast.Node) {
	if named {
		name = p.identifier()
	} else {
		name = p.identifierOpt()
	}
	p.expect(token.LeftParenthesis)
	params = p.parameters()
	p.expect(token.RightParenthesis)
	body = p.functionBody()
	return name, params, body
}

func (p *Parser) functionDeclaration() *ast.Node {
	name, params, body := p.function(true)
	return p.arena.New(ast.FunDec, name, params, body, nil)
}

// functionStatement parses a function declared where only statements are
// allowed and rewrites it as var name = function name() {...}.
func (p *Parser) functionStatement() *ast.Node {
	name, params, body := p.function(true)
	fun := p.arena.New(ast.ExpFun, name, params, body, nil)
	decl := p.arena.New(ast.ExpVar, name, fun, nil, nil)
	return p.arena.New(ast.StmVar, p.list(decl).done(), nil, nil, nil)
}

func (p *Parser) functionExpression() *ast.Node {
	name, params, body := p.function(false)
	return p.arena.New(ast.ExpFun, name, params, body, nil)
}

func (p *Parser) functionBody() *ast.Node {
	p.expect(token.LeftBrace)
	p.openScope()
	body := p.script(token.RightBrace)
	p.closeScope()
	p.expect(token.RightBrace)
	return body
}

func (p *Parser) sourceElement() *ast.Node {
	if p.accept(token.Function) {
		return p.functionDeclaration()
	}
	return p.statement()
}

// script parses source elements up to terminator.
func (p *Parser) script(terminator token.Token) *ast.Node {
	if p.tok.Kind == terminator {
		return nil
	}
	l := p.list(p.element())
	for p.tok.Kind != terminator {
		l.add(p.element())
	}
	return l.done()
}

// element parses a source element. While the directive prologue is open
// it also looks for "use strict", which turns on strict mode for the rest
// of the body. Only a statement made of a single string literal written
// without escapes counts as the directive; the first statement that does
// not start with a string literal closes the prologue.
func (p *Parser) element() *ast.Node {
	if !p.scope.directives {
		return p.sourceElement()
	}
	if p.tok.Kind != token.String {
		p.scope.directives = false
		return p.sourceElement()
	}

	literal := !p.tok.Escaped && p.tok.Text == "use strict"
	element := p.sourceElement()
	if element.Kind != ast.ExpString {
		p.scope.directives = false
		return element
	}
	if literal {
		p.scope.strict = true
	}
	return element
}
