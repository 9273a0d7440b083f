package parser

import (
	"github.com/t14raptor/es3parse/ast"
	"github.com/t14raptor/es3parse/token"
)

func (p *Parser) identifier() *ast.Node {
	if p.tok.Kind != token.Identifier {
		p.errorf(errExpectedIdentifier, p.tok.Kind)
	}
	p.checkFutureWord(p.tok.Text)
	node := p.arena.NewText(ast.Ident, p.tok.Text)
	p.next()
	return node
}

func (p *Parser) identifierOpt() *ast.Node {
	if p.tok.Kind == token.Identifier {
		return p.identifier()
	}
	return nil
}

// identifierName accepts an identifier or any keyword, as allowed after
// '.' and in property names.
func (p *Parser) identifierName() *ast.Node {
	if p.tok.Kind != token.Identifier && !token.IsKeyword(p.tok.Kind) {
		p.errorf(errExpectedIdentifierName, p.tok.Kind)
	}
	node := p.arena.NewText(ast.Ident, p.tok.Text)
	p.next()
	return node
}

func (p *Parser) primary() *ast.Node {
	var node *ast.Node
	switch p.tok.Kind {
	case token.Identifier:
		p.checkFutureWord(p.tok.Text)
		node = p.arena.NewText(ast.ExpIdent, p.tok.Text)
	case token.String:
		node = p.arena.NewText(ast.ExpString, p.tok.Text)
	case token.RegExp:
		node = p.arena.NewText(ast.ExpRegExp, p.tok.Text)
		node.Number = p.tok.Number
	case token.Number:
		node = p.arena.NewNumber(ast.ExpNumber, p.tok.Number)
	case token.This:
		p.next()
		return p.arena.New(ast.ExpThis, nil, nil, nil, nil)
	case token.Null:
		p.next()
		return p.arena.New(ast.ExpNull, nil, nil, nil, nil)
	case token.True:
		p.next()
		return p.arena.New(ast.ExpTrue, nil, nil, nil, nil)
	case token.False:
		p.next()
		return p.arena.New(ast.ExpFalse, nil, nil, nil, nil)
	case token.LeftBrace:
		p.next()
		node = p.arena.New(ast.ExpObject, p.withIn(true, p.objectLiteral), nil, nil, nil)
		p.expect(token.RightBrace)
		return node
	case token.LeftBracket:
		p.next()
		node = p.arena.New(ast.ExpArray, p.withIn(true, p.arrayLiteral), nil, nil, nil)
		p.expect(token.RightBracket)
		return node
	case token.LeftParenthesis:
		p.next()
		node = p.withIn(true, p.expression)
		p.expect(token.RightParenthesis)
		return node
	default:
		p.errorf(errUnexpectedExpression, p.tok.Kind)
	}
	p.next()
	return node
}

func (p *Parser) arrayElement() *ast.Node {
	if p.tok.Kind == token.Comma {
		return p.arena.New(ast.ExpUndef, nil, nil, nil, nil)
	}
	return p.assignment()
}

// arrayLiteral parses the elements between '[' and ']'. Elided elements
// become ExpUndef; a single trailing comma adds nothing.
func (p *Parser) arrayLiteral() *ast.Node {
	if p.tok.Kind == token.RightBracket {
		return nil
	}
	l := p.list(p.arrayElement())
	for p.accept(token.Comma) {
		if p.tok.Kind != token.RightBracket {
			l.add(p.arrayElement())
		}
	}
	return l.done()
}

func (p *Parser) propertyName() *ast.Node {
	var node *ast.Node
	switch p.tok.Kind {
	case token.Number:
		node = p.arena.NewNumber(ast.ExpNumber, p.tok.Number)
	case token.String:
		node = p.arena.NewText(ast.ExpString, p.tok.Text)
	default:
		return p.identifierName()
	}
	p.next()
	return node
}

// propertyAssignment parses name: value, or an accessor of the form
// get name() {...} or set name(arg) {...}.
func (p *Parser) propertyAssignment() *ast.Node {
	name := p.propertyName()

	if p.tok.Kind != token.Colon && name.Kind == ast.Ident {
		switch name.Text {
		case "get":
			name = p.propertyName()
			p.expect(token.LeftParenthesis)
			p.expect(token.RightParenthesis)
			body := p.functionBody()
			return p.arena.New(ast.ExpPropGet, name, nil, body, nil)
		case "set":
			name = p.propertyName()
			p.expect(token.LeftParenthesis)
			arg := p.identifier()
			p.expect(token.RightParenthesis)
			body := p.functionBody()
			return p.arena.New(ast.ExpPropSet, name, p.list(arg).done(), body, nil)
		}
	}

	p.expect(token.Colon)
	value := p.assignment()
	return p.arena.New(ast.ExpPropVal, name, value, nil, nil)
}

// objectLiteral parses the properties between '{' and '}'. Properties may
// be separated by ',', ';' or a line break, and a trailing separator is
// allowed.
func (p *Parser) objectLiteral() *ast.Node {
	if p.tok.Kind == token.RightBrace {
		return nil
	}
	l := p.list(p.propertyAssignment())
	for p.accept(token.Comma) || p.accept(token.Semicolon) || p.tok.NewLine {
		if p.tok.Kind == token.RightBrace {
			break
		}
		l.add(p.propertyAssignment())
	}
	return l.done()
}

func (p *Parser) arguments() *ast.Node {
	if p.tok.Kind == token.RightParenthesis {
		return nil
	}
	l := p.list(p.assignment())
	for p.accept(token.Comma) {
		l.add(p.assignment())
	}
	return l.done()
}

func (p *Parser) newExpression() *ast.Node {
	if p.accept(token.New) {
		callee := p.memberExpression()
		if p.accept(token.LeftParenthesis) {
			args := p.withIn(true, p.arguments)
			p.expect(token.RightParenthesis)
			return p.arena.New(ast.ExpNew, callee, args, nil, nil)
		}
		return p.arena.New(ast.ExpNew, callee, nil, nil, nil)
	}
	if p.accept(token.Function) {
		return p.functionExpression()
	}
	return p.primary()
}

// memberExpression parses '.' and '[]' accesses but no calls, so that the
// argument list after 'new X' binds to the constructor.
func (p *Parser) memberExpression() *ast.Node {
	return p.accessRest(p.newExpression(), false)
}

func (p *Parser) callExpression() *ast.Node {
	return p.accessRest(p.newExpression(), true)
}

func (p *Parser) accessRest(left *ast.Node, calls bool) *ast.Node {
	for {
		switch {
		case p.accept(token.Period):
			left = p.arena.New(ast.ExpMember, left, p.identifierName(), nil, nil)
		case p.accept(token.LeftBracket):
			left = p.arena.New(ast.ExpIndex, left, p.withIn(true, p.expression), nil, nil)
			p.expect(token.RightBracket)
		case calls && p.accept(token.LeftParenthesis):
			left = p.arena.New(ast.ExpCall, left, p.withIn(true, p.arguments), nil, nil)
			p.expect(token.RightParenthesis)
		default:
			return left
		}
	}
}

// postfix applies '++' and '--' only when no line break precedes them.
func (p *Parser) postfix() *ast.Node {
	operand := p.callExpression()
	if !p.tok.NewLine {
		if p.accept(token.Increment) {
			return p.arena.New(ast.ExpPostInc, operand, nil, nil, nil)
		}
		if p.accept(token.Decrement) {
			return p.arena.New(ast.ExpPostDec, operand, nil, nil, nil)
		}
	}
	return operand
}

func (p *Parser) unary() *ast.Node {
	if kind, ok := unaryOperators[p.tok.Kind]; ok {
		p.next()
		return p.arena.New(kind, p.unary(), nil, nil, nil)
	}
	return p.postfix()
}

func (p *Parser) binary(minPrecedence Precedence) *ast.Node {
	left := p.unary()
	for {
		kind := p.tok.Kind
		op := binaryOperators[kind]
		if op.prec <= minPrecedence {
			break
		}
		if kind == token.In && !p.scope.allowIn {
			break
		}
		p.next()
		right := p.binary(op.prec ^ 1)
		left = p.arena.New(op.kind, left, right, nil, nil)
	}
	return left
}

func (p *Parser) conditional() *ast.Node {
	test := p.binary(PrecedenceLowest)
	if p.accept(token.QuestionMark) {
		consequent := p.withIn(true, p.assignment)
		p.expect(token.Colon)
		alternate := p.assignment()
		return p.arena.New(ast.ExpCond, test, consequent, alternate, nil)
	}
	return test
}

func (p *Parser) assignment() *ast.Node {
	target := p.conditional()
	if kind, ok := assignOperators[p.tok.Kind]; ok {
		p.next()
		return p.arena.New(kind, target, p.assignment(), nil, nil)
	}
	return target
}

func (p *Parser) expression() *ast.Node {
	left := p.assignment()
	for p.accept(token.Comma) {
		left = p.arena.New(ast.ExpComma, left, p.assignment(), nil, nil)
	}
	return left
}
