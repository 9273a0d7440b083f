package token

const (
	Undetermined Token = iota

	Eof

	Identifier
	Number
	String
	RegExp

	LeftBrace        // {
	RightBrace       // }
	LeftParenthesis  // (
	RightParenthesis // )
	LeftBracket      // [
	RightBracket     // ]
	Period           // .
	Semicolon        // ;
	Comma            // ,
	Colon            // :
	QuestionMark     // ?

	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=
	Equal          // ==
	NotEqual       // !=
	StrictEqual    // ===
	StrictNotEqual // !==

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %
	Increment // ++
	Decrement // --

	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	And         // &
	Or          // |
	ExclusiveOr // ^
	Not         // !
	BitwiseNot  // ~
	LogicalAnd  // &&
	LogicalOr   // ||

	Assign                   // =
	AddAssign                // +=
	SubtractAssign           // -=
	MultiplyAssign           // *=
	QuotientAssign           // /=
	RemainderAssign          // %=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=
	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=

	// Keywords. Everything from Break onwards is a reserved word, which is
	// what the lax property-name rule relies on.
	Break
	Case
	Catch
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	False
	Finally
	For
	Function
	If
	Import
	In
	InstanceOf
	New
	Null
	Return
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With

	lastToken
)

var token2string = [...]string{
	Undetermined:             "(undetermined)",
	Eof:                      "(end-of-file)",
	Identifier:               "(identifier)",
	Number:                   "(number)",
	String:                   "(string)",
	RegExp:                   "(regexp)",
	LeftBrace:                "'{'",
	RightBrace:               "'}'",
	LeftParenthesis:          "'('",
	RightParenthesis:         "')'",
	LeftBracket:              "'['",
	RightBracket:             "']'",
	Period:                   "'.'",
	Semicolon:                "';'",
	Comma:                    "','",
	Colon:                    "':'",
	QuestionMark:             "'?'",
	Less:                     "'<'",
	Greater:                  "'>'",
	LessOrEqual:              "'<='",
	GreaterOrEqual:           "'>='",
	Equal:                    "'=='",
	NotEqual:                 "'!='",
	StrictEqual:              "'==='",
	StrictNotEqual:           "'!=='",
	Plus:                     "'+'",
	Minus:                    "'-'",
	Multiply:                 "'*'",
	Slash:                    "'/'",
	Remainder:                "'%'",
	Increment:                "'++'",
	Decrement:                "'--'",
	ShiftLeft:                "'<<'",
	ShiftRight:               "'>>'",
	UnsignedShiftRight:       "'>>>'",
	And:                      "'&'",
	Or:                       "'|'",
	ExclusiveOr:              "'^'",
	Not:                      "'!'",
	BitwiseNot:               "'~'",
	LogicalAnd:               "'&&'",
	LogicalOr:                "'||'",
	Assign:                   "'='",
	AddAssign:                "'+='",
	SubtractAssign:           "'-='",
	MultiplyAssign:           "'*='",
	QuotientAssign:           "'/='",
	RemainderAssign:          "'%='",
	ShiftLeftAssign:          "'<<='",
	ShiftRightAssign:         "'>>='",
	UnsignedShiftRightAssign: "'>>>='",
	AndAssign:                "'&='",
	OrAssign:                 "'|='",
	ExclusiveOrAssign:        "'^='",
	Break:                    "'break'",
	Case:                     "'case'",
	Catch:                    "'catch'",
	Continue:                 "'continue'",
	Debugger:                 "'debugger'",
	Default:                  "'default'",
	Delete:                   "'delete'",
	Do:                       "'do'",
	Else:                     "'else'",
	False:                    "'false'",
	Finally:                  "'finally'",
	For:                      "'for'",
	Function:                 "'function'",
	If:                       "'if'",
	Import:                   "'import'",
	In:                       "'in'",
	InstanceOf:               "'instanceof'",
	New:                      "'new'",
	Null:                     "'null'",
	Return:                   "'return'",
	Switch:                   "'switch'",
	This:                     "'this'",
	Throw:                    "'throw'",
	True:                     "'true'",
	Try:                      "'try'",
	Typeof:                   "'typeof'",
	Var:                      "'var'",
	Void:                     "'void'",
	While:                    "'while'",
	With:                     "'with'",
}

var keywordTable = map[string]Token{
	"break":      Break,
	"case":       Case,
	"catch":      Catch,
	"continue":   Continue,
	"debugger":   Debugger,
	"default":    Default,
	"delete":     Delete,
	"do":         Do,
	"else":       Else,
	"false":      False,
	"finally":    Finally,
	"for":        For,
	"function":   Function,
	"if":         If,
	"import":     Import,
	"in":         In,
	"instanceof": InstanceOf,
	"new":        New,
	"null":       Null,
	"return":     Return,
	"switch":     Switch,
	"this":       This,
	"throw":      Throw,
	"true":       True,
	"try":        Try,
	"typeof":     Typeof,
	"var":        Var,
	"void":       Void,
	"while":      While,
	"with":       With,
}

// Sorted for binary search.
var futureWords = []string{
	"class", "const", "enum", "export", "extends", "super",
}

var strictFutureWords = []string{
	"implements", "interface", "let", "package", "private", "protected",
	"public", "static", "yield",
}
