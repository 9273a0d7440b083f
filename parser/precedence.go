package parser

import (
	"github.com/t14raptor/es3parse/ast"
	"github.com/t14raptor/es3parse/token"
)

// Precedence represents operator binding power for the binary operator
// loop.
//
// Even values are left-associative and odd values right-associative. The
// loop stops when lbp <= minBP and the recursive call passes lbp ^ 1 as
// the new minimum, so a left-associative operator does not continue at
// its own level while a right-associative one does.
//
// The logical operators are right-associative: a && b && c is built as
// a && (b && c).
type Precedence uint8

const (
	PrecedenceLowest     Precedence = 0
	PrecedenceLogicalOr  Precedence = 3  // ||                         (right-assoc)
	PrecedenceLogicalAnd Precedence = 5  // &&                         (right-assoc)
	PrecedenceBitwiseOr  Precedence = 6  // |                          (left-assoc)
	PrecedenceBitwiseXor Precedence = 8  // ^                          (left-assoc)
	PrecedenceBitwiseAnd Precedence = 10 // &                          (left-assoc)
	PrecedenceEquals     Precedence = 12 // == != === !==              (left-assoc)
	PrecedenceCompare    Precedence = 14 // < > <= >= instanceof in    (left-assoc)
	PrecedenceShift      Precedence = 16 // << >> >>>                  (left-assoc)
	PrecedenceAdd        Precedence = 18 // + -                        (left-assoc)
	PrecedenceMultiply   Precedence = 20 // * / %                      (left-assoc)
)

type binaryOperator struct {
	prec Precedence
	kind ast.Kind
}

// binaryOperators maps each binary operator token to its left binding
// power and the node kind it builds. A zero entry is not an operator.
var binaryOperators [256]binaryOperator

// assignOperators maps assignment tokens to their node kind.
var assignOperators = map[token.Token]ast.Kind{
	token.Assign:                   ast.ExpAss,
	token.MultiplyAssign:           ast.ExpAssMul,
	token.QuotientAssign:           ast.ExpAssDiv,
	token.RemainderAssign:          ast.ExpAssMod,
	token.AddAssign:                ast.ExpAssAdd,
	token.SubtractAssign:           ast.ExpAssSub,
	token.ShiftLeftAssign:          ast.ExpAssShl,
	token.ShiftRightAssign:         ast.ExpAssShr,
	token.UnsignedShiftRightAssign: ast.ExpAssUShr,
	token.AndAssign:                ast.ExpAssBitAnd,
	token.ExclusiveOrAssign:        ast.ExpAssBitXor,
	token.OrAssign:                 ast.ExpAssBitOr,
}

// unaryOperators maps prefix operator tokens to their node kind.
var unaryOperators = map[token.Token]ast.Kind{
	token.Delete:     ast.ExpDelete,
	token.Import:     ast.ExpImport,
	token.Void:       ast.ExpVoid,
	token.Typeof:     ast.ExpTypeof,
	token.Increment:  ast.ExpPreInc,
	token.Decrement:  ast.ExpPreDec,
	token.Plus:       ast.ExpPos,
	token.Minus:      ast.ExpNeg,
	token.BitwiseNot: ast.ExpBitNot,
	token.Not:        ast.ExpLogNot,
}

func init() {
	set := func(t token.Token, prec Precedence, kind ast.Kind) {
		binaryOperators[t] = binaryOperator{prec: prec, kind: kind}
	}
	set(token.LogicalOr, PrecedenceLogicalOr, ast.ExpLogOr)
	set(token.LogicalAnd, PrecedenceLogicalAnd, ast.ExpLogAnd)
	set(token.Or, PrecedenceBitwiseOr, ast.ExpBitOr)
	set(token.ExclusiveOr, PrecedenceBitwiseXor, ast.ExpBitXor)
	set(token.And, PrecedenceBitwiseAnd, ast.ExpBitAnd)
	set(token.Equal, PrecedenceEquals, ast.ExpEq)
	set(token.NotEqual, PrecedenceEquals, ast.ExpNe)
	set(token.StrictEqual, PrecedenceEquals, ast.ExpStrictEq)
	set(token.StrictNotEqual, PrecedenceEquals, ast.ExpStrictNe)
	set(token.Less, PrecedenceCompare, ast.ExpLt)
	set(token.Greater, PrecedenceCompare, ast.ExpGt)
	set(token.LessOrEqual, PrecedenceCompare, ast.ExpLe)
	set(token.GreaterOrEqual, PrecedenceCompare, ast.ExpGe)
	set(token.InstanceOf, PrecedenceCompare, ast.ExpInstanceof)
	set(token.In, PrecedenceCompare, ast.ExpIn)
	set(token.ShiftLeft, PrecedenceShift, ast.ExpShl)
	set(token.ShiftRight, PrecedenceShift, ast.ExpShr)
	set(token.UnsignedShiftRight, PrecedenceShift, ast.ExpUShr)
	set(token.Plus, PrecedenceAdd, ast.ExpAdd)
	set(token.Minus, PrecedenceAdd, ast.ExpSub)
	set(token.Multiply, PrecedenceMultiply, ast.ExpMul)
	set(token.Slash, PrecedenceMultiply, ast.ExpDiv)
	set(token.Remainder, PrecedenceMultiply, ast.ExpMod)
}
