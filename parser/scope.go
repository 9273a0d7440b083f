package parser

import "github.com/t14raptor/es3parse/ast"

// scope tracks the state that changes at function boundaries.
type scope struct {
	outer   *scope
	strict  bool
	allowIn bool

	// directives is set while the directive prologue of the body is
	// being read.
	directives bool
}

func (p *Parser) openScope() {
	strict := p.mode&Strict != 0
	if p.scope != nil {
		strict = strict || p.scope.strict
	}
	p.scope = &scope{
		outer:      p.scope,
		strict:     strict,
		allowIn:    true,
		directives: true,
	}
}

func (p *Parser) closeScope() {
	p.scope = p.scope.outer
}

// withIn parses f with the 'in' operator allowed or disallowed, restoring
// the previous setting afterwards.
func (p *Parser) withIn(allow bool, f func() *ast.Node) *ast.Node {
	saved := p.scope.allowIn
	p.scope.allowIn = allow
	n := f()
	p.scope.allowIn = saved
	return n
}
