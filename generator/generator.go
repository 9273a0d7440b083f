package generator

import (
	"strings"

	"github.com/t14raptor/es3parse/ast"
)

// Generate renders a tree back to script source. The root may be a
// statement list, a single statement or an expression. Parentheses are
// inserted where operator precedence requires them, so parsing the output
// yields an equivalent tree.
func Generate(node *ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	if node != nil && node.Kind == ast.List {
		genStatements(s, node, false)
	} else {
		gen(s)
	}
	return s.out.String()
}

func gen(s *state) {
	n := s.node
	switch {
	case n == nil:
	case n.Kind == ast.List:
		genList(s, n, precAssign)
	case n.Kind == ast.FunDec || n.Kind.IsStatement():
		genStatement(s)
	default:
		genExpression(s)
	}
}

func genList(s *state, head *ast.Node, min precedence) {
	for i, item := range ast.Items(head) {
		if i > 0 {
			s.write(", ")
		}
		gen(s.wrapAt(item, min))
	}
}

// genStatements writes a statement list, one statement per line. Inside a
// block every statement starts on a new padded line.
func genStatements(s *state, head *ast.Node, padFirst bool) {
	for i, item := range ast.Items(head) {
		if i > 0 || padFirst {
			s.lineAndPad()
		}
		genStatementNode(s.wrap(item))
	}
}

// genStatementNode writes a statement, turning a bare expression into an
// expression statement.
func genStatementNode(s *state) {
	n := s.node
	if n.Kind == ast.FunDec || n.Kind.IsStatement() {
		genStatement(s)
		return
	}
	if startsAmbiguously(n) {
		s.write("(")
		gen(s.wrap(n))
		s.write(")")
	} else {
		gen(s.wrap(n))
	}
	s.write(";")
}

// startsAmbiguously reports whether an expression statement would begin
// with '{' or 'function' and be misread as a block or declaration.
func startsAmbiguously(n *ast.Node) bool {
	for n != nil {
		switch {
		case n.Kind == ast.ExpObject || n.Kind == ast.ExpFun:
			return true
		case isBinary(n.Kind) || isAssignment(n.Kind),
			n.Kind == ast.ExpComma, n.Kind == ast.ExpCond,
			n.Kind == ast.ExpCall, n.Kind == ast.ExpMember, n.Kind == ast.ExpIndex,
			n.Kind == ast.ExpPostInc, n.Kind == ast.ExpPostDec:
			n = n.A
		default:
			return false
		}
	}
	return false
}

func genBlock(s *state, body *ast.Node) {
	s.write("{")
	if body != nil {
		s.indent++
		genStatements(s, body, true)
		s.indent--
		s.lineAndPad()
	}
	s.write("}")
}

// genBody writes the statement controlled by if, while, for and friends.
func genBody(s *state, body *ast.Node) {
	if body.Kind == ast.StmBlock {
		s.write(" ")
		genBlock(s, body.A)
		return
	}
	s.indent++
	s.lineAndPad()
	genStatementNode(s.wrap(body))
	s.indent--
}

func genFunction(s *state, name, params, body *ast.Node) {
	s.write("function")
	if name != nil {
		s.write(" ", name.Text)
	}
	s.write("(")
	genList(s, params, precAssign)
	s.write(") ")
	genBlock(s, body)
}

func genStatement(s *state) {
	n := s.node
	switch n.Kind {
	case ast.FunDec:
		genFunction(s, n.A, n.B, n.C)
	case ast.StmBlock:
		genBlock(s, n.A)
	case ast.StmEmpty:
		s.write(";")
	case ast.StmVar:
		s.write("var ")
		genList(s, n.A, precAssign)
		s.write(";")
	case ast.StmIf:
		s.write("if (")
		gen(s.wrap(n.A))
		s.write(")")
		consequent := n.B
		if n.C != nil && danglingIf(consequent) {
			s.write(" {")
			s.indent++
			s.lineAndPad()
			genStatementNode(s.wrap(consequent))
			s.indent--
			s.lineAndPad()
			s.write("}")
		} else {
			genBody(s, consequent)
		}
		if n.C != nil {
			if consequent.Kind == ast.StmBlock || danglingIf(consequent) {
				s.write(" ")
			} else {
				s.lineAndPad()
			}
			s.write("else")
			if n.C.Kind == ast.StmIf {
				s.write(" ")
				genStatement(s.wrap(n.C))
			} else {
				genBody(s, n.C)
			}
		}
	case ast.StmDo:
		s.write("do")
		genBody(s, n.A)
		if n.A.Kind == ast.StmBlock {
			s.write(" ")
		} else {
			s.lineAndPad()
		}
		s.write("while (")
		gen(s.wrap(n.B))
		s.write(");")
	case ast.StmWhile:
		s.write("while (")
		gen(s.wrap(n.A))
		s.write(")")
		genBody(s, n.B)
	case ast.StmFor, ast.StmForVar:
		s.write("for (")
		if n.Kind == ast.StmForVar {
			s.write("var ")
		}
		head := s.wrap(nil)
		head.noIn = true
		if n.Kind == ast.StmForVar {
			genList(head, n.A, precAssign)
		} else {
			gen(head.wrap(n.A))
		}
		s.write(";")
		if n.B != nil {
			s.write(" ")
			gen(s.wrap(n.B))
		}
		s.write(";")
		if n.C != nil {
			s.write(" ")
			gen(s.wrap(n.C))
		}
		s.write(")")
		genBody(s, n.D)
	case ast.StmForIn, ast.StmForInVar:
		s.write("for (")
		head := s.wrap(nil)
		head.noIn = true
		if n.Kind == ast.StmForInVar {
			s.write("var ")
			genList(head, n.A, precAssign)
		} else {
			gen(head.wrapAt(n.A, precMember))
		}
		s.write(" in ")
		gen(s.wrap(n.B))
		s.write(")")
		genBody(s, n.C)
	case ast.StmContinue, ast.StmBreak:
		if n.Kind == ast.StmContinue {
			s.write("continue")
		} else {
			s.write("break")
		}
		if n.A != nil {
			s.write(" ", n.A.Text)
		}
		s.write(";")
	case ast.StmReturn:
		s.write("return")
		if n.A != nil {
			s.write(" ")
			gen(s.wrap(n.A))
		}
		s.write(";")
	case ast.StmWith:
		s.write("with (")
		gen(s.wrap(n.A))
		s.write(")")
		genBody(s, n.B)
	case ast.StmSwitch:
		s.write("switch (")
		gen(s.wrap(n.A))
		s.write(") {")
		for _, clause := range ast.Items(n.B) {
			s.lineAndPad()
			genStatement(s.wrap(clause))
		}
		s.lineAndPad()
		s.write("}")
	case ast.StmCase, ast.StmDefault:
		body := n.A
		if n.Kind == ast.StmCase {
			s.write("case ")
			gen(s.wrap(n.A))
			body = n.B
		} else {
			s.write("default")
		}
		s.write(":")
		s.indent++
		genStatements(s, body, true)
		s.indent--
	case ast.StmThrow:
		s.write("throw ")
		gen(s.wrap(n.A))
		s.write(";")
	case ast.StmTry:
		s.write("try ")
		genBlock(s, n.A.A)
		if n.B != nil {
			s.write(" catch (", n.B.Text, ") ")
			genBlock(s, n.C.A)
		}
		if n.D != nil {
			s.write(" finally ")
			genBlock(s, n.D.A)
		}
	case ast.StmDebugger:
		s.write("debugger;")
	case ast.StmLabel:
		s.write(n.A.Text, ":")
		if n.B.Kind == ast.StmBlock {
			s.write(" ")
			genStatementNode(s.wrap(n.B))
		} else {
			s.indent++
			s.lineAndPad()
			genStatementNode(s.wrap(n.B))
			s.indent--
		}
	}
}

// danglingIf reports whether n ends in an if statement without else, which
// would capture a following else.
func danglingIf(n *ast.Node) bool {
	for n != nil {
		switch n.Kind {
		case ast.StmIf:
			if n.C == nil {
				return true
			}
			n = n.C
		case ast.StmWhile, ast.StmWith:
			n = n.B
		case ast.StmFor, ast.StmForVar:
			n = n.D
		case ast.StmForIn, ast.StmForInVar:
			n = n.C
		case ast.StmLabel:
			n = n.B
		default:
			return false
		}
	}
	return false
}

func genExpression(s *state) {
	n := s.node
	prec := precedenceOf(n)
	if prec < s.min || s.noIn && n.Kind == ast.ExpIn {
		s.write("(")
		defer s.write(")")
		// Inside parentheses 'in' is unambiguous again.
		s = s.wrapAt(n, precLowest)
		s.noIn = false
	}

	switch {
	case isBinary(n.Kind):
		left, right := prec, prec+1
		if n.Kind == ast.ExpLogAnd || n.Kind == ast.ExpLogOr {
			left, right = prec+1, prec
		}
		gen(s.wrapAt(n.A, left))
		s.write(" ", operators[n.Kind], " ")
		gen(s.wrapAt(n.B, right))
		return
	case isAssignment(n.Kind):
		gen(s.wrapAt(n.A, precConditional))
		s.write(" ", operators[n.Kind], " ")
		gen(s.wrapAt(n.B, precAssign))
		return
	}

	switch n.Kind {
	case ast.ExpIdent, ast.Ident:
		s.write(n.Text)
	case ast.ExpNumber:
		s.write(numberSource(n.Number))
	case ast.ExpString:
		s.write(quote(n.Text))
	case ast.ExpRegExp:
		s.write(regExpSource(n.Number, n.Text))
	case ast.ExpUndef:
	case ast.ExpNull:
		s.write("null")
	case ast.ExpTrue:
		s.write("true")
	case ast.ExpFalse:
		s.write("false")
	case ast.ExpThis:
		s.write("this")
	case ast.ExpArray:
		s.write("[")
		items := ast.Items(n.A)
		genList(s, n.A, precAssign)
		if len(items) > 0 && items[len(items)-1].Kind == ast.ExpUndef {
			s.write(",")
		}
		s.write("]")
	case ast.ExpObject:
		s.write("{")
		for i, prop := range ast.Items(n.A) {
			if i > 0 {
				s.write(", ")
			}
			genProperty(s, prop)
		}
		s.write("}")
	case ast.ExpFun:
		genFunction(s, n.A, n.B, n.C)
	case ast.ExpIndex:
		gen(s.wrapAt(n.A, precMember))
		s.write("[")
		gen(s.wrap(n.B))
		s.write("]")
	case ast.ExpMember:
		if n.A.Kind == ast.ExpNumber {
			s.write("(")
			gen(s.wrap(n.A))
			s.write(")")
		} else {
			gen(s.wrapAt(n.A, precMember))
		}
		s.write(".", n.B.Text)
	case ast.ExpCall:
		gen(s.wrapAt(n.A, precMember))
		s.write("(")
		genList(s, n.B, precAssign)
		s.write(")")
	case ast.ExpNew:
		s.write("new ")
		if containsCall(n.A) {
			s.write("(")
			gen(s.wrap(n.A))
			s.write(")")
		} else {
			gen(s.wrapAt(n.A, precMember))
		}
		s.write("(")
		genList(s, n.B, precAssign)
		s.write(")")
	case ast.ExpPostInc, ast.ExpPostDec:
		gen(s.wrapAt(n.A, precMember))
		s.write(operators[n.Kind])
	case ast.ExpDelete, ast.ExpImport, ast.ExpVoid, ast.ExpTypeof, ast.ExpPreInc, ast.ExpPreDec,
		ast.ExpPos, ast.ExpNeg, ast.ExpBitNot, ast.ExpLogNot:
		s.write(operators[n.Kind])
		if needsSpace(n.Kind, n.A) {
			s.write(" ")
		}
		gen(s.wrapAt(n.A, precPrefix))
	case ast.ExpCond:
		gen(s.wrapAt(n.A, precLogicalOr))
		s.write(" ? ")
		consequent := s.wrapAt(n.B, precAssign)
		consequent.noIn = false
		gen(consequent)
		s.write(" : ")
		gen(s.wrapAt(n.C, precAssign))
	case ast.ExpComma:
		gen(s.wrapAt(n.A, precComma))
		s.write(", ")
		gen(s.wrapAt(n.B, precAssign))
	case ast.ExpVar:
		s.write(n.A.Text)
		if n.B != nil {
			s.write(" = ")
			gen(s.wrapAt(n.B, precAssign))
		}
	}
}

func genProperty(s *state, prop *ast.Node) {
	switch prop.Kind {
	case ast.ExpPropVal:
		genPropertyName(s, prop.A)
		s.write(": ")
		gen(s.wrapAt(prop.B, precAssign))
	case ast.ExpPropGet, ast.ExpPropSet:
		if prop.Kind == ast.ExpPropGet {
			s.write("get ")
		} else {
			s.write("set ")
		}
		genPropertyName(s, prop.A)
		s.write("(")
		genList(s, prop.B, precAssign)
		s.write(") ")
		genBlock(s, prop.C)
	}
}

func genPropertyName(s *state, name *ast.Node) {
	switch name.Kind {
	case ast.ExpNumber:
		s.write(formatNumber(name.Number))
	case ast.ExpString:
		s.write(quote(name.Text))
	default:
		s.write(name.Text)
	}
}

// containsCall reports whether the callee of a new expression contains a
// call that would otherwise take the constructor arguments.
func containsCall(n *ast.Node) bool {
	for n != nil {
		switch n.Kind {
		case ast.ExpCall:
			return true
		case ast.ExpMember, ast.ExpIndex:
			n = n.A
		default:
			return false
		}
	}
	return false
}

// needsSpace reports whether a prefix operator would fuse with the start of
// its operand, as in "- -x" or "+ +x".
func needsSpace(op ast.Kind, operand *ast.Node) bool {
	var clash []ast.Kind
	switch op {
	case ast.ExpNeg, ast.ExpPreDec:
		clash = []ast.Kind{ast.ExpNeg, ast.ExpPreDec}
	case ast.ExpPos, ast.ExpPreInc:
		clash = []ast.Kind{ast.ExpPos, ast.ExpPreInc}
	default:
		return false
	}
	for _, k := range clash {
		if operand.Kind == k {
			return true
		}
	}
	if operand.Kind == ast.ExpNumber && (op == ast.ExpNeg || op == ast.ExpPreDec) {
		return numberSource(operand.Number)[0] == '-'
	}
	return false
}
