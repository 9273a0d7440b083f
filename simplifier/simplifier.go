package simplifier

import (
	"math"

	"github.com/t14raptor/es3parse/ast"
)

// Simplifier folds constant arithmetic in place and counts the nodes it
// rewrites.
type Simplifier struct {
	folded int
}

// Fold folds every constant arithmetic expression below n and reports
// whether n itself is now a number literal.
func Fold(n *ast.Node) bool {
	var s Simplifier
	return s.Fold(n)
}

// Folded returns the number of nodes rewritten so far.
func (s *Simplifier) Folded() int {
	return s.folded
}

// Fold rewrites n in place when it is a unary or binary arithmetic node
// whose operands fold to numbers. Children are always folded first, so
// subexpressions are simplified even when n itself cannot be. Operations
// that may have side effects or do not produce a number (calls,
// comparisons, logical operators, assignments) are left alone.
func (s *Simplifier) Fold(n *ast.Node) bool {
	if n.Kind == ast.ExpNumber {
		return true
	}

	a := n.A != nil && s.Fold(n.A)
	b := n.B != nil && s.Fold(n.B)
	if n.C != nil {
		s.Fold(n.C)
	}
	if n.D != nil {
		s.Fold(n.D)
	}

	if !a {
		return false
	}
	x := n.A.Number
	switch n.Kind {
	case ast.ExpNeg:
		return s.set(n, -x)
	case ast.ExpPos:
		return s.set(n, x)
	case ast.ExpBitNot:
		return s.set(n, float64(^ToInt32(x)))
	}

	if !b {
		return false
	}
	y := n.B.Number
	switch n.Kind {
	case ast.ExpMul:
		return s.set(n, x*y)
	case ast.ExpDiv:
		return s.set(n, x/y)
	case ast.ExpMod:
		return s.set(n, math.Mod(x, y))
	case ast.ExpAdd:
		return s.set(n, x+y)
	case ast.ExpSub:
		return s.set(n, x-y)
	case ast.ExpShl:
		return s.set(n, float64(ToInt32(x)<<(ToUint32(y)&0x1F)))
	case ast.ExpShr:
		return s.set(n, float64(ToInt32(x)>>(ToUint32(y)&0x1F)))
	case ast.ExpUShr:
		return s.set(n, float64(ToUint32(x)>>(ToUint32(y)&0x1F)))
	case ast.ExpBitAnd:
		return s.set(n, float64(ToInt32(x)&ToInt32(y)))
	case ast.ExpBitXor:
		return s.set(n, float64(ToInt32(x)^ToInt32(y)))
	case ast.ExpBitOr:
		return s.set(n, float64(ToInt32(x)|ToInt32(y)))
	}
	return false
}

func (s *Simplifier) set(n *ast.Node, v float64) bool {
	n.SetNumber(v)
	s.folded++
	return true
}
