package parser_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/t14raptor/es3parse/ast"
	"github.com/t14raptor/es3parse/generator"
	"github.com/t14raptor/es3parse/parser"
	"github.com/t14raptor/es3parse/simplifier"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string, mode parser.Mode) *ast.Node {
	t.Helper()
	p := parser.New(mode)
	p.SetWarningOutput(nil)
	program, err := p.ParseProgram("test.js", code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return program
}

// assertDump parses code and compares the dump of the tree.
func assertDump(t *testing.T, code string, mode parser.Mode, want string) {
	t.Helper()
	got := generator.Dump(mustParse(t, code, mode))
	if got != want {
		t.Errorf("Dump(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// assertError parses code and checks the full error text.
func assertError(t *testing.T, code string, mode parser.Mode, want string) {
	t.Helper()
	p := parser.New(mode)
	p.SetWarningOutput(nil)
	program, err := p.ParseProgram("test.js", code)
	if err == nil {
		t.Fatalf("parse(%q) succeeded with %s; want error %q", code, generator.Dump(program), want)
	}
	if program != nil {
		t.Errorf("parse(%q) returned a tree alongside the error", code)
	}
	if got := err.Error(); got != want {
		t.Errorf("parse(%q) error\n  got:  %s\n  want: %s", code, got, want)
	}
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestPrecedence(t *testing.T) {
	program := mustParse(t, "1 + 2 * 3", parser.SkipFolding)
	root := program.A
	if root.Kind != ast.ExpAdd {
		t.Fatalf("root = %v; want exp_add", root.Kind)
	}
	if root.B.Kind != ast.ExpMul {
		t.Errorf("right operand = %v; want exp_mul", root.B.Kind)
	}
	assertDump(t, "1 + 2 * 3", 0, "[7]")
}

func TestAssociativity(t *testing.T) {
	assertDump(t, "2 - 3 - 4", parser.SkipFolding, "[(exp_sub (exp_sub 2 3) 4)]")
	assertDump(t, "2 - 3 - 4", 0, "[-5]")
	assertDump(t, "a = b = c", 0, "[(exp_ass a (exp_ass b c))]")
	assertDump(t, "a += b -= c", 0, "[(exp_ass_add a (exp_ass_sub b c))]")
	assertDump(t, "a && b && c", 0, "[(exp_logand a (exp_logand b c))]")
	assertDump(t, "a || b && c || d", 0, "[(exp_logor a (exp_logor (exp_logand b c) d))]")
	assertDump(t, "a, b, c", 0, "[(exp_comma (exp_comma a b) c)]")
	assertDump(t, "a ? b : c ? d : e", 0, "[(exp_cond a b (exp_cond c d e))]")
}

func TestBinaryOperators(t *testing.T) {
	tests := map[string]string{
		"a | b ^ c & d":              "[(exp_bitor a (exp_bitxor b (exp_bitand c d)))]",
		"a == b != c === d !== e":    "[(exp_strictne (exp_stricteq (exp_ne (exp_eq a b) c) d) e)]",
		"a < b > c <= d >= e":        "[(exp_ge (exp_le (exp_gt (exp_lt a b) c) d) e)]",
		"a instanceof b in c":        "[(exp_in (exp_instanceof a b) c)]",
		"a << b >> c >>> d":          "[(exp_ushr (exp_shr (exp_shl a b) c) d)]",
		"a == b < c":                 "[(exp_eq a (exp_lt b c))]",
		"a * b % c / d":              "[(exp_div (exp_mod (exp_mul a b) c) d)]",
		"a = b ? c : d":              "[(exp_ass a (exp_cond b c d))]",
		"a *= b; a /= b; a %= b":     "[(exp_ass_mul a b) (exp_ass_div a b) (exp_ass_mod a b)]",
		"a <<= b; a >>= b; a >>>= b": "[(exp_ass_shl a b) (exp_ass_shr a b) (exp_ass_ushr a b)]",
		"a &= b; a ^= b; a |= b":     "[(exp_ass_bitand a b) (exp_ass_bitxor a b) (exp_ass_bitor a b)]",
	}
	for code, want := range tests {
		assertDump(t, code, 0, want)
	}
}

func TestUnaryOperators(t *testing.T) {
	assertDump(t, "delete a.b; void 0; typeof x", 0,
		"[(exp_delete (exp_member a b)) (exp_void 0) (exp_typeof x)]")
	assertDump(t, "++a; --a; a++; a--", 0,
		"[(exp_preinc a) (exp_predec a) (exp_postinc a) (exp_postdec a)]")
	assertDump(t, "+a; -a; ~a; !a", 0, "[(exp_pos a) (exp_neg a) (exp_bitnot a) (exp_lognot a)]")
	assertDump(t, "import x", 0, "[(exp_import x)]")
	assertDump(t, "!!a", 0, "[(exp_lognot (exp_lognot a))]")
	assertDump(t, "-a * b", 0, "[(exp_mul (exp_neg a) b)]")
}

func TestPostfixNewline(t *testing.T) {
	assertDump(t, "x\n++y", 0, "[x (exp_preinc y)]")
	assertDump(t, "x++\ny", 0, "[(exp_postinc x) y]")
	assertDump(t, "x\n--\ny", 0, "[x (exp_predec y)]")
}

func TestPrimaryExpressions(t *testing.T) {
	assertDump(t, "this; null; true; false", 0, "[exp_this exp_null exp_true exp_false]")
	assertDump(t, `'a'; "b"; 1.5; 0x10`, 0, `["a" "b" 1.5 16]`)
	assertDump(t, "x = /a|b/gim", 0, "[(exp_ass x /a|b/gim)]")
	assertDump(t, "(a + b) * c", 0, "[(exp_mul (exp_add a b) c)]")

	program := mustParse(t, "x = /re/g", 0)
	re := program.A.B
	if re.Kind != ast.ExpRegExp || re.Text != "re" || re.Number != 1 {
		t.Errorf("regexp = %v %q %v", re.Kind, re.Text, re.Number)
	}
}

func TestMemberAndCall(t *testing.T) {
	assertDump(t, "a.b[c](d, e).f", 0, "[(exp_member (exp_call (exp_index (exp_member a b) c) [d e]) f)]")
	assertDump(t, "a.if.class", 0, "[(exp_member (exp_member a if) class)]")
	assertDump(t, "f()", 0, "[(exp_call f)]")
	assertDump(t, "a\n(b)", 0, "[(exp_call a [b])]")
	assertDump(t, "new X", 0, "[(exp_new X)]")
	assertDump(t, "new X(1)(2)", 0, "[(exp_call (exp_new X [1]) [2])]")
	assertDump(t, "new a.b[c](d)", 0, "[(exp_new (exp_index (exp_member a b) c) [d])]")
	assertDump(t, "new new X()()", 0, "[(exp_new (exp_new X))]")
	assertDump(t, "new function () {}", 0, "[(exp_new exp_fun)]")
}

func TestArrayLiteral(t *testing.T) {
	assertDump(t, "x = []", 0, "[(exp_ass x exp_array)]")
	assertDump(t, "x = [1, 2]", 0, "[(exp_ass x (exp_array [1 2]))]")
	assertDump(t, "x = [1,,2,]", 0, "[(exp_ass x (exp_array [1 exp_undef 2]))]")
	assertDump(t, "x = [,]", 0, "[(exp_ass x (exp_array [exp_undef]))]")
	assertDump(t, "x = [,,]", 0, "[(exp_ass x (exp_array [exp_undef exp_undef]))]")
	assertDump(t, "x = [a in b]", 0, "[(exp_ass x (exp_array [(exp_in a b)]))]")
}

func TestObjectLiteral(t *testing.T) {
	assertDump(t, "x = {}", 0, "[(exp_ass x exp_object)]")
	assertDump(t, "x = {a: 1, 'b': 2, 3: 4, if: 5}", 0,
		`[(exp_ass x (exp_object [(exp_prop_val a 1) (exp_prop_val "b" 2) (exp_prop_val 3 4) (exp_prop_val if 5)]))]`)
	assertDump(t, "x = {a: 1,}", 0, "[(exp_ass x (exp_object [(exp_prop_val a 1)]))]")
	assertDump(t, "x = {a: 1; b: 2}", 0, "[(exp_ass x (exp_object [(exp_prop_val a 1) (exp_prop_val b 2)]))]")
	assertDump(t, "x = {a: 1\nb: 2}", 0, "[(exp_ass x (exp_object [(exp_prop_val a 1) (exp_prop_val b 2)]))]")
	assertDump(t, "x = {get: 1, set: 2}", 0, "[(exp_ass x (exp_object [(exp_prop_val get 1) (exp_prop_val set 2)]))]")
	assertDump(t, "x = {get a() { return 1 }, set 'b'(v) { y = v }}", 0,
		`[(exp_ass x (exp_object [(exp_prop_get a _ [(stm_return 1)]) (exp_prop_set "b" [v] [(exp_ass y v)])]))]`)

	assertError(t, "x = {a 1}", 0, "test.js:1: unexpected token: (number) (expected ':')")
	assertError(t, "x = {set a() {}}", 0, "test.js:1: unexpected token: ')' (expected identifier)")
}

func TestFunctionExpressions(t *testing.T) {
	assertDump(t, "f = function (a, b) { return a }", 0,
		"[(exp_ass f (exp_fun _ [a b] [(stm_return a)]))]")
	assertDump(t, "f = function g() {}", 0, "[(exp_ass f (exp_fun g))]")
	assertDump(t, "(function () {})()", 0, "[(exp_call exp_fun)]")
}

// ---------------------------------------------------------------------------
// Constant folding
// ---------------------------------------------------------------------------

func TestFolding(t *testing.T) {
	tests := map[string]string{
		"1 + x":              "[(exp_add 1 x)]",
		"~0":                 "[-1]",
		"4 % 0":              "[NaN]",
		"-(1 + 2) * 3":       "[-9]",
		"1 << 40":            "[256]",
		"-1 >>> 28":          "[15]",
		"x + 2 * 3":          "[(exp_add x 6)]",
		"f(1 + 1)":           "[(exp_call f [2])]",
		"1 < 2":              "[(exp_lt 1 2)]",
		"1 && 2":             "[(exp_logand 1 2)]",
		"!0":                 "[(exp_lognot 0)]",
		"'a' + 1":            `[(exp_add "a" 1)]`,
		"x = [1 + 1, -(-2)]": "[(exp_ass x (exp_array [2 2]))]",
	}
	for code, want := range tests {
		assertDump(t, code, 0, want)
	}
}

func TestFoldingIdempotent(t *testing.T) {
	sources := []string{
		"var a = 1 + 2 * 3, b = x - 4 / 2;",
		"function f(y) { return ~y + (5 >> 1) * -(3) }",
		"z = (1 + 2) ? 3 % 2 : 0x10 | 1;",
	}
	for _, src := range sources {
		program := mustParse(t, src, 0)
		before := generator.Dump(program)
		simplifier.Fold(program)
		if after := generator.Dump(program); after != before {
			t.Errorf("refolding %q changed the tree\n  before: %s\n  after:  %s", src, before, after)
		}
	}
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestSemicolonInsertion(t *testing.T) {
	assertDump(t, "return\n1", 0, "[stm_return 1]")
	assertDump(t, "return 1", 0, "[(stm_return 1)]")
	assertDump(t, "function f() { return }", 0, "[(ast_fundec f _ [stm_return])]")
	assertDump(t, "a\nb", 0, "[a b]")
	assertDump(t, "{ a } b", 0, "[(stm_block [a]) b]")
	assertDump(t, "do x; while (y)\nz", 0, "[(stm_do x y) z]")
	assertError(t, "do x; while (y) z", 0, "test.js:1: unexpected token: (identifier) (expected ';')")
	assertDump(t, "throw e", 0, "[(stm_throw e)]")

	assertError(t, "a b", 0, "test.js:1: unexpected token: (identifier) (expected ';')")
}

func TestVarStatement(t *testing.T) {
	assertDump(t, "var a;", 0, "[(stm_var [(exp_var a)])]")
	assertDump(t, "var a = 1, b, c = a + 1", 0, "[(stm_var [(exp_var a 1) (exp_var b) (exp_var c (exp_add a 1))])]")
	assertError(t, "var = 1", 0, "test.js:1: unexpected token: '=' (expected identifier)")
	assertError(t, "var if", 0, "test.js:1: unexpected token: 'if' (expected identifier)")
}

func TestIfStatement(t *testing.T) {
	assertDump(t, "if (a) b; else c", 0, "[(stm_if a b c)]")
	assertDump(t, "if (a) b", 0, "[(stm_if a b)]")
	assertDump(t, "if (a) if (b) c; else d", 0, "[(stm_if a (stm_if b c d))]")
	assertDump(t, ";", 0, "[stm_empty]")
}

func TestLoops(t *testing.T) {
	assertDump(t, "while (a) b()", 0, "[(stm_while a (exp_call b))]")
	assertDump(t, "do { a() } while (b);", 0, "[(stm_do (stm_block [(exp_call a)]) b)]")
	assertDump(t, "while (1) { break\nfoo }", 0, "[(stm_while 1 (stm_block [stm_break foo]))]")
	assertDump(t, "while (1) continue;", 0, "[(stm_while 1 stm_continue)]")
}

func TestForStatements(t *testing.T) {
	assertDump(t, "for (var i = 0; i < 10; i++) ;", 0,
		"[(stm_for_var [(exp_var i 0)] (exp_lt i 10) (exp_postinc i) stm_empty)]")
	assertDump(t, "for (var k in obj) ;", 0, "[(stm_for_in_var [(exp_var k)] obj stm_empty)]")
	assertDump(t, "for (;;) ;", 0, "[(stm_for _ _ _ stm_empty)]")
	assertDump(t, "for (k in obj) ;", 0, "[(stm_for_in k obj stm_empty)]")
	assertDump(t, "for (a.b in c) {}", 0, "[(stm_for_in (exp_member a b) c stm_block)]")
	assertDump(t, "for (i = 0, j = 1; ; ) ;", 0, "[(stm_for (exp_comma (exp_ass i 0) (exp_ass j 1)) _ _ stm_empty)]")
	assertDump(t, "for (var i = a ? b in c : d; ;) ;", 0,
		"[(stm_for_var [(exp_var i (exp_cond a (exp_in b c) d))] _ _ stm_empty)]")
	assertDump(t, "for (var i = (a in b); ;) ;", 0, "[(stm_for_var [(exp_var i (exp_in a b))] _ _ stm_empty)]")
	assertDump(t, "for (x = [a in b]; ;) ;", 0, "[(stm_for (exp_ass x (exp_array [(exp_in a b)])) _ _ stm_empty)]")
	assertDump(t, "for (;; i < n in m) ;", 0, "[(stm_for _ _ (exp_in (exp_lt i n) m) stm_empty)]")

	assertError(t, "for (var i = 0)", 0, "test.js:1: unexpected token in for-var-statement: ')'")
	assertError(t, "for (a b", 0, "test.js:1: unexpected token in for-statement: (identifier)")
	assertError(t, "for (x = 'k' in o; ;) ;", 0, "test.js:1: unexpected token: ';' (expected ')')")
}

func TestTryStatement(t *testing.T) {
	assertError(t, "try { a(); }", 0,
		"test.js:1: unexpected token in try: (end-of-file) (expected 'catch' or 'finally')")
	assertDump(t, "try {a();} catch(e){} finally{}", 0,
		"[(stm_try (stm_block [(exp_call a)]) e stm_block stm_block)]")
	assertDump(t, "try {} catch (e) { log(e) }", 0, "[(stm_try stm_block e (stm_block [(exp_call log [e])]))]")
	assertDump(t, "try {} finally {}", 0, "[(stm_try stm_block _ _ stm_block)]")
	assertError(t, "try {} catch {}", 0, "test.js:1: unexpected token: '{' (expected '(')")
}

func TestSwitchStatement(t *testing.T) {
	assertDump(t, "switch (x) { case 1: a; case 2: default: b }", 0,
		"[(stm_switch x [(stm_case 1 [a]) (stm_case 2) (stm_default [b])])]")
	assertDump(t, "switch (x) {}", 0, "[(stm_switch x)]")
	assertError(t, "switch (x) { foo }", 0,
		"test.js:1: unexpected token in switch: (identifier) (expected 'case' or 'default')")
}

func TestJumpStatements(t *testing.T) {
	assertDump(t, "a: while (1) { continue a; break a }", 0,
		"[(stm_label a (stm_while 1 (stm_block [(stm_continue a) (stm_break a)])))]")
	assertDump(t, "debugger", 0, "[stm_debugger]")
}

func TestLabelledStatement(t *testing.T) {
	program := mustParse(t, "outer: inner: x++", 0)
	outer := program.A
	if outer.Kind != ast.StmLabel {
		t.Fatalf("statement = %v; want stm_label", outer.Kind)
	}
	if outer.A.Kind != ast.Ident || outer.A.Text != "outer" {
		t.Errorf("label = %v %q; want ast_identifier outer", outer.A.Kind, outer.A.Text)
	}
	if outer.A.Parent != outer {
		t.Error("label is not attached to its statement")
	}
	inner := outer.B
	if inner.Kind != ast.StmLabel || inner.A.Text != "inner" {
		t.Fatalf("nested statement = %v; want stm_label inner", inner.Kind)
	}
	if inner.B.Kind != ast.ExpPostInc {
		t.Errorf("body = %v; want exp_postinc", inner.B.Kind)
	}

	assertError(t, "(a): x", 0, "test.js:1: unexpected token: ':' (expected ';')")
	assertError(t, "a.b: x", 0, "test.js:1: unexpected token: ':' (expected ';')")
}

func TestWithStatement(t *testing.T) {
	assertDump(t, "with (a) b", 0, "[(stm_with a b)]")
	assertError(t, "with (a) b", parser.Strict, "test.js:1: 'with' statements are not allowed in strict mode")
	assertError(t, "'use strict'; with (a) b", 0, "test.js:1: 'with' statements are not allowed in strict mode")
}

// ---------------------------------------------------------------------------
// Functions and reserved words
// ---------------------------------------------------------------------------

func TestFunctionDeclaration(t *testing.T) {
	assertDump(t, "function f(a, b) { var c = a; return c }", 0,
		"[(ast_fundec f [a b] [(stm_var [(exp_var c a)]) (stm_return c)])]")
	assertError(t, "function () {}", 0, "test.js:1: unexpected token: '(' (expected identifier)")
}

func TestFunctionStatement(t *testing.T) {
	var buf bytes.Buffer
	p := parser.New(0)
	p.SetWarningOutput(&buf)
	program, err := p.ParseProgram("test.js", "if (a)\n  function f(x) { return x }")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := "[(stm_if a (stm_var [(exp_var f (exp_fun f [x] [(stm_return x)]))]))]"
	if got := generator.Dump(program); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if got := buf.String(); got != "test.js:2: warning: function statements are not standard\n" {
		t.Errorf("warning output = %q", got)
	}
	warnings := p.Warnings()
	if len(warnings) != 1 || warnings[0].Line != 2 || warnings[0].File != "test.js" {
		t.Errorf("Warnings() = %+v", warnings)
	}

	// Declarations at the top of a body are not warned about.
	if _, err := p.ParseProgram("test.js", "function g() { function h() {} }"); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := len(p.Warnings()); got != 0 {
		t.Errorf("got %d warnings for top-level declarations", got)
	}

	// Blocks are statement positions.
	if _, err := p.ParseProgram("test.js", "{ function k() {} }"); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := len(p.Warnings()); got != 1 {
		t.Errorf("got %d warnings for a function in a block; want 1", got)
	}
}

func TestReservedWords(t *testing.T) {
	assertError(t, "var class = 1", 0, "test.js:1: 'class' is a future reserved word")
	assertError(t, "enum", 0, "test.js:1: 'enum' is a future reserved word")
	assertError(t, "function f(super) {}", 0, "test.js:1: 'super' is a future reserved word")

	// Strict mode words are plain identifiers unless strict.
	assertDump(t, "var let = 1; yield(static)", 0, "[(stm_var [(exp_var let 1)]) (exp_call yield [static])]")
	assertError(t, "var let = 1", parser.Strict, "test.js:1: 'let' is a strict mode future reserved word")
	assertError(t, "x = public", parser.Strict, "test.js:1: 'public' is a strict mode future reserved word")

	// Names after '.' and in object literals are not checked.
	assertDump(t, "a.class; x = {enum: 1}", parser.Strict, "[(exp_member a class) (exp_ass x (exp_object [(exp_prop_val enum 1)]))]")
}

func TestUseStrictDirective(t *testing.T) {
	assertError(t, "'use strict'; var yield", 0, "test.js:1: 'yield' is a strict mode future reserved word")
	assertError(t, "'a'; \"use strict\"\nvar static", 0, "test.js:2: 'static' is a strict mode future reserved word")
	assertError(t, "function f() { 'use strict'; var private }", 0,
		"test.js:1: 'private' is a strict mode future reserved word")

	// Strictness ends with the function body.
	mustParse(t, "function f() { 'use strict' } var private", 0)
	// Only the leading directives count.
	mustParse(t, "x; 'use strict'; var package", 0)

	// A directive is a bare string literal written without escapes.
	assertDump(t, `("use strict"); with (a) b`, 0, `["use strict" (stm_with a b)]`)
	assertDump(t, `'use\x20strict'; with (a) b`, 0, `["use strict" (stm_with a b)]`)
	assertDump(t, `'use strict'.length; with (a) b`, 0, `[(exp_member "use strict" length) (stm_with a b)]`)
	assertDump(t, `('a'); 'use strict'; with (a) b`, 0, `["a" "use strict" (stm_with a b)]`)

	// Escaped strings do not close the prologue.
	assertError(t, `'\x61'; 'use strict'; with (a) b`, 0, "test.js:1: 'with' statements are not allowed in strict mode")
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestSyntaxErrors(t *testing.T) {
	assertError(t, "a\n+\n)", 0, "test.js:3: unexpected token in expression: ')'")
	assertError(t, "x = 'abc", 0, "test.js:1: string not terminated")
	assertError(t, "f(a,", 0, "test.js:1: unexpected token in expression: (end-of-file)")
	assertError(t, "if (a", 0, "test.js:1: unexpected token: (end-of-file) (expected ')')")
	assertError(t, "x = 09", 0, "test.js:1: number with leading zero")
	assertError(t, "}", 0, "test.js:1: unexpected token in expression: '}'")
}

func TestSyntaxErrorType(t *testing.T) {
	p := parser.New(0)
	program, err := p.ParseProgram("lib/app.js", "var a = 1;\nvar b = ;")
	if program != nil {
		t.Error("tree returned on error")
	}
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("error %T is not a *parser.SyntaxError", err)
	}
	if syntaxErr.File != "lib/app.js" || syntaxErr.Line != 2 {
		t.Errorf("error position = %s:%d", syntaxErr.File, syntaxErr.Line)
	}
	if syntaxErr.Message != "unexpected token in expression: ';'" {
		t.Errorf("message = %q", syntaxErr.Message)
	}

	// The parser is usable again after an error.
	if _, err := p.ParseProgram("ok.js", "a"); err != nil {
		t.Errorf("parse after error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Entry points and arena
// ---------------------------------------------------------------------------

func TestEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "  \n\t", "// only a comment\n/* and another */"} {
		program, err := parser.ParseFile("empty.js", src, 0)
		if err != nil || program != nil {
			t.Errorf("ParseFile(%q) = %v, %v; want nil, nil", src, program, err)
		}
	}
}

func TestParseFunction(t *testing.T) {
	p := parser.New(0)
	fun, err := p.ParseFunction("f.js", "a, b", "return a + b * 2")
	if err != nil {
		t.Fatalf("ParseFunction error: %v", err)
	}
	if got, want := generator.Dump(fun), "(exp_fun _ [a b] [(stm_return (exp_add a (exp_mul b 2)))])"; got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	for _, params := range []string{"", "   "} {
		fun, err = p.ParseFunction("f.js", params, "return 1 + 1")
		if err != nil {
			t.Fatalf("ParseFunction(%q) error: %v", params, err)
		}
		if got, want := generator.Dump(fun), "(exp_fun _ _ [(stm_return 2)])"; got != want {
			t.Errorf("ParseFunction(%q) = %s; want %s", params, got, want)
		}
	}

	fun, err = p.ParseFunction("f.js", "", "")
	if err != nil || fun == nil || fun.Kind != ast.ExpFun || !fun.IsLeaf() {
		t.Errorf("empty function = %v, %v", fun, err)
	}

	tests := map[string]string{
		"a b":   "f.js:1: unexpected token: (identifier) (expected (end-of-file))",
		"a,":    "f.js:1: unexpected token: (end-of-file) (expected identifier)",
		"class": "f.js:1: 'class' is a future reserved word",
	}
	for params, want := range tests {
		fun, err := p.ParseFunction("f.js", params, "")
		if err == nil || fun != nil {
			t.Errorf("ParseFunction(%q) = %v, %v; want error", params, fun, err)
			continue
		}
		if err.Error() != want {
			t.Errorf("ParseFunction(%q) error = %q; want %q", params, err.Error(), want)
		}
	}

	if _, err := p.ParseFunction("f.js", "a", "return a +"); err == nil {
		t.Error("body error not reported")
	}
}

func TestArenaRelease(t *testing.T) {
	p := parser.New(0)
	_, err := p.ParseProgram("test.js", "function f(a) { for (var i = 0; i < a; i++) { g(i * 2 + 1) } }\nf(3)")
	if err != nil {
		t.Fatal(err)
	}
	created := p.Arena().Allocated()
	if created == 0 {
		t.Fatal("no nodes allocated")
	}
	if live := p.Arena().Len(); live != created {
		t.Errorf("Len() = %d; want %d", live, created)
	}
	if freed := p.Release(); freed != created {
		t.Errorf("Release() = %d; want %d", freed, created)
	}
	if freed := p.Release(); freed != 0 {
		t.Errorf("second Release() = %d; want 0", freed)
	}

	// A failed parse leaves its partial tree to the arena as well.
	if _, err := p.ParseProgram("test.js", "var a = [1, 2, 3 +"); err == nil {
		t.Fatal("expected an error")
	}
	partial := p.Arena().Allocated() - created
	if partial == 0 {
		t.Fatal("failed parse allocated nothing")
	}
	if freed := p.Release(); freed != partial {
		t.Errorf("Release() after error = %d; want %d", freed, partial)
	}
}

func TestLineNumbers(t *testing.T) {
	program := mustParse(t, "var a = 1;\nvar b = 2;\n\nvar c = 3;", 0)
	var lines []int
	for _, stmt := range ast.Items(program) {
		lines = append(lines, stmt.Line)
	}
	if len(lines) != 3 || lines[0] != 1 || lines[1] != 2 || lines[2] != 4 {
		t.Errorf("statement lines = %v; want [1 2 4]", lines)
	}

	src := strings.Join([]string{
		"function f(a,",
		"  b) {",
		"  if (a)",
		"    return a +",
		"      b;",
		"  while (b--) { g(a,",
		"    b) }",
		"}",
		"x = f(1,",
		"  2)",
	}, "\n")
	program = mustParse(t, src, 0)

	// Nodes are created after their children, so a child never carries a
	// later line than its parent. The next cell of a list is created after
	// the cell that points to it and is exempt.
	ast.Inspect(program, func(n *ast.Node) bool {
		if n == nil {
			return false
		}
		for _, c := range n.Children() {
			if c == nil || n.Kind == ast.List && c == n.B {
				continue
			}
			if c.Line > n.Line {
				t.Errorf("%v at line %d has child %v at line %d", n.Kind, n.Line, c.Kind, c.Line)
			}
		}
		if n.Line < 1 || n.Line > 10 {
			t.Errorf("%v has line %d", n.Kind, n.Line)
		}
		return true
	})

	items := ast.Items(program)
	if items[0].Line > items[1].Line {
		t.Errorf("top-level lines %d, %d are not ordered", items[0].Line, items[1].Line)
	}
	if items[1].Line != 10 {
		t.Errorf("assignment line = %d; want 10", items[1].Line)
	}
}

func TestParentLinks(t *testing.T) {
	program := mustParse(t, "a; b; c + d", 0)
	if program.Parent != nil {
		t.Error("program list has a parent")
	}
	second := program.B
	third := second.B
	if second.Parent != program || third.Parent != second {
		t.Error("list cells do not point at their predecessor")
	}
	sum := third.A
	if sum.Parent != third || sum.A.Parent != sum || sum.B.Parent != sum {
		t.Error("expression children do not point at their parent")
	}
	if got := ast.Count(program); got != 3 {
		t.Errorf("Count() = %d; want 3", got)
	}
}
