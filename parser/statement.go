package parser

import (
	"github.com/t14raptor/es3parse/ast"
	"github.com/t14raptor/es3parse/token"
)

func (p *Parser) variableDeclaration() *ast.Node {
	name := p.identifier()
	if p.accept(token.Assign) {
		return p.arena.New(ast.ExpVar, name, p.assignment(), nil, nil)
	}
	return p.arena.New(ast.ExpVar, name, nil, nil, nil)
}

func (p *Parser) variableDeclarationList() *ast.Node {
	l := p.list(p.variableDeclaration())
	for p.accept(token.Comma) {
		l.add(p.variableDeclaration())
	}
	return l.done()
}

func (p *Parser) endsStatementList() bool {
	switch p.tok.Kind {
	case token.RightBrace, token.Case, token.Default:
		return true
	}
	return false
}

// statementList parses statements up to '}', 'case' or 'default'.
func (p *Parser) statementList() *ast.Node {
	if p.endsStatementList() {
		return nil
	}
	l := p.list(p.statement())
	for !p.endsStatementList() {
		l.add(p.statement())
	}
	return l.done()
}

func (p *Parser) caseClause() *ast.Node {
	if p.accept(token.Case) {
		test := p.expression()
		p.expect(token.Colon)
		body := p.statementList()
		return p.arena.New(ast.StmCase, test, body, nil, nil)
	}
	if p.accept(token.Default) {
		p.expect(token.Colon)
		body := p.statementList()
		return p.arena.New(ast.StmDefault, body, nil, nil, nil)
	}
	p.errorf(errSwitch, p.tok.Kind)
	return nil
}

func (p *Parser) caseList() *ast.Node {
	if p.tok.Kind == token.RightBrace {
		return nil
	}
	l := p.list(p.caseClause())
	for p.tok.Kind != token.RightBrace {
		l.add(p.caseClause())
	}
	return l.done()
}

func (p *Parser) block() *ast.Node {
	p.expect(token.LeftBrace)
	body := p.statementList()
	p.expect(token.RightBrace)
	return p.arena.New(ast.StmBlock, body, nil, nil, nil)
}

// forExpression parses an optional clause of a for head followed by end.
func (p *Parser) forExpression(end token.Token) *ast.Node {
	var node *ast.Node
	if p.tok.Kind != end {
		node = p.expression()
	}
	p.expect(end)
	return node
}

// forStatement parses the remainder of a for statement after 'for'. The
// head decides between the counted form and the for-in form, each with or
// without a var declaration.
func (p *Parser) forStatement() *ast.Node {
	p.expect(token.LeftParenthesis)

	if p.accept(token.Var) {
		decls := p.withIn(false, p.variableDeclarationList)
		if p.accept(token.Semicolon) {
			test := p.withIn(true, func() *ast.Node { return p.forExpression(token.Semicolon) })
			update := p.withIn(true, func() *ast.Node { return p.forExpression(token.RightParenthesis) })
			body := p.statement()
			return p.arena.New(ast.StmForVar, decls, test, update, body)
		}
		if p.accept(token.In) {
			object := p.withIn(true, p.expression)
			p.expect(token.RightParenthesis)
			body := p.statement()
			return p.arena.New(ast.StmForInVar, decls, object, body, nil)
		}
		p.errorf(errForVar, p.tok.Kind)
	}

	var init *ast.Node
	if p.tok.Kind != token.Semicolon {
		init = p.withIn(false, p.expression)
	}
	if p.accept(token.Semicolon) {
		test := p.withIn(true, func() *ast.Node { return p.forExpression(token.Semicolon) })
		update := p.withIn(true, func() *ast.Node { return p.forExpression(token.RightParenthesis) })
		body := p.statement()
		return p.arena.New(ast.StmFor, init, test, update, body)
	}
	if p.accept(token.In) {
		object := p.withIn(true, p.expression)
		p.expect(token.RightParenthesis)
		body := p.statement()
		return p.arena.New(ast.StmForIn, init, object, body, nil)
	}
	p.errorf(errFor, p.tok.Kind)
	return nil
}

func (p *Parser) statement() *ast.Node {
	switch p.tok.Kind {
	case token.LeftBrace:
		return p.block()

	case token.Var:
		p.next()
		decls := p.variableDeclarationList()
		p.semicolon()
		return p.arena.New(ast.StmVar, decls, nil, nil, nil)

	case token.Semicolon:
		p.next()
		return p.arena.New(ast.StmEmpty, nil, nil, nil, nil)

	case token.If:
		p.next()
		p.expect(token.LeftParenthesis)
		test := p.expression()
		p.expect(token.RightParenthesis)
		consequent := p.statement()
		var alternate *ast.Node
		if p.accept(token.Else) {
			alternate = p.statement()
		}
		return p.arena.New(ast.StmIf, test, consequent, alternate, nil)

	case token.Do:
		p.next()
		body := p.statement()
		p.expect(token.While)
		p.expect(token.LeftParenthesis)
		test := p.expression()
		p.expect(token.RightParenthesis)
		p.semicolon()
		return p.arena.New(ast.StmDo, body, test, nil, nil)

	case token.While:
		p.next()
		p.expect(token.LeftParenthesis)
		test := p.expression()
		p.expect(token.RightParenthesis)
		body := p.statement()
		return p.arena.New(ast.StmWhile, test, body, nil, nil)

	case token.For:
		p.next()
		return p.forStatement()

	case token.Continue, token.Break:
		kind := ast.StmContinue
		if p.tok.Kind == token.Break {
			kind = ast.StmBreak
		}
		p.next()
		var label *ast.Node
		if !p.tok.NewLine {
			label = p.identifierOpt()
		}
		p.semicolon()
		return p.arena.New(kind, label, nil, nil, nil)

	case token.Return:
		p.next()
		var value *ast.Node
		switch p.tok.Kind {
		case token.Semicolon, token.RightBrace, token.Eof:
		default:
			if !p.tok.NewLine {
				value = p.expression()
			}
		}
		p.semicolon()
		return p.arena.New(ast.StmReturn, value, nil, nil, nil)

	case token.With:
		p.next()
		if p.scope.strict {
			p.errorf(errStrictWith)
		}
		p.expect(token.LeftParenthesis)
		object := p.expression()
		p.expect(token.RightParenthesis)
		body := p.statement()
		return p.arena.New(ast.StmWith, object, body, nil, nil)

	case token.Switch:
		p.next()
		p.expect(token.LeftParenthesis)
		discriminant := p.expression()
		p.expect(token.RightParenthesis)
		p.expect(token.LeftBrace)
		cases := p.caseList()
		p.expect(token.RightBrace)
		return p.arena.New(ast.StmSwitch, discriminant, cases, nil, nil)

	case token.Throw:
		p.next()
		value := p.expression()
		p.semicolon()
		return p.arena.New(ast.StmThrow, value, nil, nil, nil)

	case token.Try:
		p.next()
		return p.tryStatement()

	case token.Debugger:
		p.next()
		p.semicolon()
		return p.arena.New(ast.StmDebugger, nil, nil, nil, nil)

	case token.Function:
		p.next()
		p.warnf(warnFunctionStatement)
		return p.functionStatement()

	case token.Identifier:
		expr := p.expression()
		if expr.Kind == ast.ExpIdent && p.accept(token.Colon) {
			label := p.arena.NewText(ast.Ident, expr.Text)
			label.Line = expr.Line
			body := p.statement()
			return p.arena.New(ast.StmLabel, label, body, nil, nil)
		}
		p.semicolon()
		return expr
	}

	expr := p.expression()
	p.semicolon()
	return expr
}

func (p *Parser) tryStatement() *ast.Node {
	body := p.block()
	var param, handler, finalizer *ast.Node
	if p.accept(token.Catch) {
		p.expect(token.LeftParenthesis)
		param = p.identifier()
		p.expect(token.RightParenthesis)
		handler = p.block()
	}
	if p.accept(token.Finally) {
		finalizer = p.block()
	}
	if param == nil && finalizer == nil {
		p.errorf(errTry, p.tok.Kind)
	}
	return p.arena.New(ast.StmTry, body, param, handler, finalizer)
}
