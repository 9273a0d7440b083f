package generator

import (
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/es3parse/ast"
)

type yamlNode struct {
	Kind     string      `yaml:"kind"`
	Line     int         `yaml:"line"`
	Name     string      `yaml:"name,omitempty"`
	String   *string     `yaml:"string,omitempty"`
	Number   *float64    `yaml:"number,omitempty"`
	Items    []*yamlNode `yaml:"items,omitempty"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

// YAML renders a tree as a YAML document. Child slots keep their position;
// empty slots before the last child are written as null.
func YAML(node *ast.Node) ([]byte, error) {
	return yaml.Marshal(toYAML(node))
}

func toYAML(n *ast.Node) *yamlNode {
	if n == nil {
		return nil
	}
	y := &yamlNode{Kind: n.Kind.String(), Line: n.Line}
	switch n.Kind {
	case ast.List:
		for _, item := range ast.Items(n) {
			y.Items = append(y.Items, toYAML(item))
		}
		return y
	case ast.Ident, ast.ExpIdent:
		y.Name = n.Text
		return y
	case ast.ExpNumber:
		v := n.Number
		y.Number = &v
		return y
	case ast.ExpString:
		s := n.Text
		y.String = &s
		return y
	case ast.ExpRegExp:
		s := regExpSource(n.Number, n.Text)
		y.String = &s
		return y
	}

	children := n.Children()
	last := len(children)
	for last > 0 && children[last-1] == nil {
		last--
	}
	for _, c := range children[:last] {
		y.Children = append(y.Children, toYAML(c))
	}
	return y
}
