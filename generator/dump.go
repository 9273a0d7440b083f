package generator

import (
	"strings"

	"github.com/t14raptor/es3parse/ast"
)

// Dump renders a tree as an S-expression. Interior nodes print as
// (kind child...), with '_' standing for an empty slot and trailing empty
// slots omitted; list chains print as [item...]. Identifiers, numbers,
// strings and regular expressions print as their value.
//
//	(exp_add x (exp_mul 2 3))
func Dump(node *ast.Node) string {
	var b strings.Builder
	dump(&b, node)
	return b.String()
}

func dump(b *strings.Builder, n *ast.Node) {
	if n == nil {
		b.WriteString("_")
		return
	}
	switch n.Kind {
	case ast.List:
		b.WriteString("[")
		for i, item := range ast.Items(n) {
			if i > 0 {
				b.WriteString(" ")
			}
			dump(b, item)
		}
		b.WriteString("]")
		return
	case ast.Ident, ast.ExpIdent:
		b.WriteString(n.Text)
		return
	case ast.ExpNumber:
		b.WriteString(numberDump(n.Number))
		return
	case ast.ExpString:
		b.WriteString(quote(n.Text))
		return
	case ast.ExpRegExp:
		b.WriteString(regExpSource(n.Number, n.Text))
		return
	}

	children := n.Children()
	last := len(children)
	for last > 0 && children[last-1] == nil {
		last--
	}
	if last == 0 {
		b.WriteString(n.Kind.String())
		return
	}
	b.WriteString("(")
	b.WriteString(n.Kind.String())
	for _, c := range children[:last] {
		b.WriteString(" ")
		dump(b, c)
	}
	b.WriteString(")")
}
