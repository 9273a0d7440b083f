package generator

import (
	"math"

	"github.com/t14raptor/es3parse/ast"
)

type precedence int

const (
	precLowest precedence = iota
	precComma
	precAssign
	precConditional
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquals
	precCompare
	precShift
	precAdd
	precMultiply
	precPrefix
	precPostfix
	precMember
	precPrimary
)

var operators = map[ast.Kind]string{
	ast.ExpLogOr:      "||",
	ast.ExpLogAnd:     "&&",
	ast.ExpBitOr:      "|",
	ast.ExpBitXor:     "^",
	ast.ExpBitAnd:     "&",
	ast.ExpEq:         "==",
	ast.ExpNe:         "!=",
	ast.ExpStrictEq:   "===",
	ast.ExpStrictNe:   "!==",
	ast.ExpLt:         "<",
	ast.ExpGt:         ">",
	ast.ExpLe:         "<=",
	ast.ExpGe:         ">=",
	ast.ExpInstanceof: "instanceof",
	ast.ExpIn:         "in",
	ast.ExpShl:        "<<",
	ast.ExpShr:        ">>",
	ast.ExpUShr:       ">>>",
	ast.ExpAdd:        "+",
	ast.ExpSub:        "-",
	ast.ExpMul:        "*",
	ast.ExpDiv:        "/",
	ast.ExpMod:        "%",

	ast.ExpAss:       "=",
	ast.ExpAssMul:    "*=",
	ast.ExpAssDiv:    "/=",
	ast.ExpAssMod:    "%=",
	ast.ExpAssAdd:    "+=",
	ast.ExpAssSub:    "-=",
	ast.ExpAssShl:    "<<=",
	ast.ExpAssShr:    ">>=",
	ast.ExpAssUShr:   ">>>=",
	ast.ExpAssBitAnd: "&=",
	ast.ExpAssBitXor: "^=",
	ast.ExpAssBitOr:  "|=",

	ast.ExpDelete:  "delete ",
	ast.ExpImport:  "import ",
	ast.ExpVoid:    "void ",
	ast.ExpTypeof:  "typeof ",
	ast.ExpPreInc:  "++",
	ast.ExpPreDec:  "--",
	ast.ExpPos:     "+",
	ast.ExpNeg:     "-",
	ast.ExpBitNot:  "~",
	ast.ExpLogNot:  "!",
	ast.ExpPostInc: "++",
	ast.ExpPostDec: "--",
}

func precedenceOf(n *ast.Node) precedence {
	switch n.Kind {
	case ast.ExpComma:
		return precComma
	case ast.ExpAss, ast.ExpAssMul, ast.ExpAssDiv, ast.ExpAssMod, ast.ExpAssAdd, ast.ExpAssSub,
		ast.ExpAssShl, ast.ExpAssShr, ast.ExpAssUShr, ast.ExpAssBitAnd, ast.ExpAssBitXor, ast.ExpAssBitOr:
		return precAssign
	case ast.ExpCond:
		return precConditional
	case ast.ExpLogOr:
		return precLogicalOr
	case ast.ExpLogAnd:
		return precLogicalAnd
	case ast.ExpBitOr:
		return precBitwiseOr
	case ast.ExpBitXor:
		return precBitwiseXor
	case ast.ExpBitAnd:
		return precBitwiseAnd
	case ast.ExpEq, ast.ExpNe, ast.ExpStrictEq, ast.ExpStrictNe:
		return precEquals
	case ast.ExpLt, ast.ExpGt, ast.ExpLe, ast.ExpGe, ast.ExpInstanceof, ast.ExpIn:
		return precCompare
	case ast.ExpShl, ast.ExpShr, ast.ExpUShr:
		return precShift
	case ast.ExpAdd, ast.ExpSub:
		return precAdd
	case ast.ExpMul, ast.ExpDiv, ast.ExpMod:
		return precMultiply
	case ast.ExpDelete, ast.ExpImport, ast.ExpVoid, ast.ExpTypeof, ast.ExpPreInc, ast.ExpPreDec,
		ast.ExpPos, ast.ExpNeg, ast.ExpBitNot, ast.ExpLogNot:
		return precPrefix
	case ast.ExpPostInc, ast.ExpPostDec:
		return precPostfix
	case ast.ExpCall, ast.ExpNew, ast.ExpMember, ast.ExpIndex:
		return precMember
	case ast.ExpNumber:
		switch {
		case math.IsNaN(n.Number) || math.IsInf(n.Number, 0):
			// Written as a division.
			return precMultiply
		case math.Signbit(n.Number):
			return precPrefix
		}
	}
	return precPrimary
}

func isBinary(kind ast.Kind) bool {
	return kind >= ast.ExpMod && kind <= ast.ExpLogOr
}

func isAssignment(kind ast.Kind) bool {
	return kind >= ast.ExpAss && kind <= ast.ExpAssBitOr
}
