package generator

import (
	"strings"

	"github.com/t14raptor/es3parse/ast"
)

type state struct {
	out    *strings.Builder
	node   *ast.Node
	parent *state
	indent int

	// min is the lowest precedence the node may have without being
	// parenthesised.
	min precedence
	// noIn is set inside the head of a for statement, where a bare 'in'
	// operator would be misread.
	noIn bool
}

func (s *state) wrap(node *ast.Node) *state {
	return s.wrapAt(node, precLowest)
}

func (s *state) wrapAt(node *ast.Node, min precedence) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		min:    min,
		noIn:   s.noIn,
	}
}

func (s *state) write(strs ...string) {
	for _, str := range strs {
		s.out.WriteString(str)
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}
