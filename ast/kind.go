package ast

// Kind tags a Node. The meaning of the child slots A-D, Text and Number
// depends on the kind; see the comments on each group below.
type Kind int

const (
	// Structural nodes.
	List Kind = iota
	FunDec
	Ident

	// Primary expressions. Leaves carry Text (identifier, string, regexp
	// source) or Number (number value, regexp flag bits).
	ExpIdent
	ExpNumber
	ExpString
	ExpRegExp
	ExpUndef
	ExpNull
	ExpTrue
	ExpFalse
	ExpThis

	// Literals with children: array (A = element list), object (A = property
	// list) and property assignments (A = name, B = value or parameters,
	// C = accessor body).
	ExpArray
	ExpObject
	ExpPropVal
	ExpPropGet
	ExpPropSet

	// Function expression: A = name (may be nil), B = parameters, C = body.
	ExpFun

	// Member access and calls.
	ExpIndex
	ExpMember
	ExpCall
	ExpNew

	// Unary operators; the operand is A.
	ExpPostInc
	ExpPostDec
	ExpDelete
	ExpVoid
	ExpTypeof
	ExpPreInc
	ExpPreDec
	ExpPos
	ExpNeg
	ExpBitNot
	ExpLogNot
	ExpImport

	// Binary operators; A is the left operand and B the right one.
	ExpMod
	ExpDiv
	ExpMul
	ExpSub
	ExpAdd
	ExpUShr
	ExpShr
	ExpShl
	ExpIn
	ExpInstanceof
	ExpGe
	ExpLe
	ExpGt
	ExpLt
	ExpStrictNe
	ExpStrictEq
	ExpNe
	ExpEq
	ExpBitAnd
	ExpBitXor
	ExpBitOr
	ExpLogAnd
	ExpLogOr

	// A ? B : C.
	ExpCond

	// Assignment; A is the target.
	ExpAss
	ExpAssMul
	ExpAssDiv
	ExpAssMod
	ExpAssAdd
	ExpAssSub
	ExpAssShl
	ExpAssShr
	ExpAssUShr
	ExpAssBitAnd
	ExpAssBitXor
	ExpAssBitOr

	ExpComma
	ExpVar

	// Statements.
	StmBlock
	StmEmpty
	StmVar
	StmIf
	StmDo
	StmWhile
	StmFor
	StmForVar
	StmForIn
	StmForInVar
	StmContinue
	StmBreak
	StmReturn
	StmWith
	StmSwitch
	StmThrow
	StmTry
	StmDebugger
	StmLabel
	StmCase
	StmDefault
)

var kindNames = [...]string{
	List:          "ast_list",
	FunDec:        "ast_fundec",
	Ident:         "ast_identifier",
	ExpIdent:      "exp_identifier",
	ExpNumber:     "exp_number",
	ExpString:     "exp_string",
	ExpRegExp:     "exp_regexp",
	ExpUndef:      "exp_undef",
	ExpNull:       "exp_null",
	ExpTrue:       "exp_true",
	ExpFalse:      "exp_false",
	ExpThis:       "exp_this",
	ExpArray:      "exp_array",
	ExpObject:     "exp_object",
	ExpPropVal:    "exp_prop_val",
	ExpPropGet:    "exp_prop_get",
	ExpPropSet:    "exp_prop_set",
	ExpFun:        "exp_fun",
	ExpIndex:      "exp_index",
	ExpMember:     "exp_member",
	ExpCall:       "exp_call",
	ExpNew:        "exp_new",
	ExpPostInc:    "exp_postinc",
	ExpPostDec:    "exp_postdec",
	ExpDelete:     "exp_delete",
	ExpVoid:       "exp_void",
	ExpTypeof:     "exp_typeof",
	ExpPreInc:     "exp_preinc",
	ExpPreDec:     "exp_predec",
	ExpPos:        "exp_pos",
	ExpNeg:        "exp_neg",
	ExpBitNot:     "exp_bitnot",
	ExpLogNot:     "exp_lognot",
	ExpImport:     "exp_import",
	ExpMod:        "exp_mod",
	ExpDiv:        "exp_div",
	ExpMul:        "exp_mul",
	ExpSub:        "exp_sub",
	ExpAdd:        "exp_add",
	ExpUShr:       "exp_ushr",
	ExpShr:        "exp_shr",
	ExpShl:        "exp_shl",
	ExpIn:         "exp_in",
	ExpInstanceof: "exp_instanceof",
	ExpGe:         "exp_ge",
	ExpLe:         "exp_le",
	ExpGt:         "exp_gt",
	ExpLt:         "exp_lt",
	ExpStrictNe:   "exp_strictne",
	ExpStrictEq:   "exp_stricteq",
	ExpNe:         "exp_ne",
	ExpEq:         "exp_eq",
	ExpBitAnd:     "exp_bitand",
	ExpBitXor:     "exp_bitxor",
	ExpBitOr:      "exp_bitor",
	ExpLogAnd:     "exp_logand",
	ExpLogOr:      "exp_logor",
	ExpCond:       "exp_cond",
	ExpAss:        "exp_ass",
	ExpAssMul:     "exp_ass_mul",
	ExpAssDiv:     "exp_ass_div",
	ExpAssMod:     "exp_ass_mod",
	ExpAssAdd:     "exp_ass_add",
	ExpAssSub:     "exp_ass_sub",
	ExpAssShl:     "exp_ass_shl",
	ExpAssShr:     "exp_ass_shr",
	ExpAssUShr:    "exp_ass_ushr",
	ExpAssBitAnd:  "exp_ass_bitand",
	ExpAssBitXor:  "exp_ass_bitxor",
	ExpAssBitOr:   "exp_ass_bitor",
	ExpComma:      "exp_comma",
	ExpVar:        "exp_var",
	StmBlock:      "stm_block",
	StmEmpty:      "stm_empty",
	StmVar:        "stm_var",
	StmIf:         "stm_if",
	StmDo:         "stm_do",
	StmWhile:      "stm_while",
	StmFor:        "stm_for",
	StmForVar:     "stm_for_var",
	StmForIn:      "stm_for_in",
	StmForInVar:   "stm_for_in_var",
	StmContinue:   "stm_continue",
	StmBreak:      "stm_break",
	StmReturn:     "stm_return",
	StmWith:       "stm_with",
	StmSwitch:     "stm_switch",
	StmThrow:      "stm_throw",
	StmTry:        "stm_try",
	StmDebugger:   "stm_debugger",
	StmLabel:      "stm_label",
	StmCase:       "stm_case",
	StmDefault:    "stm_default",
}

// String returns the lowercase name of the kind as used in tree dumps.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsExpression reports whether k belongs to the expression family.
func (k Kind) IsExpression() bool { return k >= ExpIdent && k <= ExpVar }

// IsStatement reports whether k belongs to the statement family.
func (k Kind) IsStatement() bool { return k >= StmBlock && k <= StmDefault }
