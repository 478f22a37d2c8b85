package parser

import (
	"testing"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src, "test://unit"))
	prog := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return prog
}

func parseExprOnly(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog := mustParse(t, "fn f { return "+src+" }")
	fn := prog.File.Statements[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	return ret.Value
}

func assertPrecedence(t *testing.T, src, want string) {
	t.Helper()
	got := ast.Print(parseExprOnly(t, src))
	if got != want {
		t.Errorf("precedence mismatch for %q:\n  got:  %s\n  want: %s", src, got, want)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	assertPrecedence(t, "1 + 2 * 3", "(1 + (2 * 3))")
	assertPrecedence(t, "1 + 2 + 3", "((1 + 2) + 3)")
	assertPrecedence(t, "1 + 2 < 3 + 4", "((1 + 2) < (3 + 4))")
	assertPrecedence(t, "1 < 2 == 3 < 4", "(((1 < 2) == 3) < 4)")
}

func TestFunctionWithParams(t *testing.T) {
	prog := mustParse(t, "export fn add(a, b) { return a + b }")
	fn := prog.File.Statements[0].(*ast.Function)
	if !fn.Exported || fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
}

func TestIfElse(t *testing.T) {
	prog := mustParse(t, `fn sign(n) { if n > 0 { return 1 } else { return 0 } }`)
	fn := prog.File.Statements[0].(*ast.Function)
	ifStmt := fn.Body[0].(*ast.If)
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("expected one statement in each branch: %+v", ifStmt)
	}
}

func TestWhileLoop(t *testing.T) {
	prog := mustParse(t, `fn count { let i = 0 while i < 3 { i = i + 1 } return i }`)
	fn := prog.File.Statements[0].(*ast.Function)
	if _, ok := fn.Body[1].(*ast.While); !ok {
		t.Fatalf("expected a While statement, got %T", fn.Body[1])
	}
}

func TestModuleQualifiedCall(t *testing.T) {
	prog := mustParse(t, `fn main { return math.add(2, 3) }`)
	fn := prog.File.Statements[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	call, ok := ret.Value.(*ast.ModuleCall)
	if !ok || call.Module != "math" || call.Name != "add" || len(call.Args) != 2 {
		t.Fatalf("unexpected module call shape: %+v", ret.Value)
	}
}

func TestImportStatement(t *testing.T) {
	prog := mustParse(t, "import math\nfn main { return 1 }")
	imp, ok := prog.File.Statements[0].(*ast.Import)
	if !ok || imp.Name != "math" {
		t.Fatalf("expected an Import statement, got %+v", prog.File.Statements[0])
	}
}

func TestPanicStatement(t *testing.T) {
	prog := mustParse(t, `fn bad { panic("nope") }`)
	fn := prog.File.Statements[0].(*ast.Function)
	pan, ok := fn.Body[0].(*ast.Panic)
	if !ok {
		t.Fatalf("expected a Panic statement, got %T", fn.Body[0])
	}
	lit, ok := pan.Value.(*ast.StringLit)
	if !ok || lit.Value != "nope" {
		t.Fatalf("unexpected panic value: %+v", pan.Value)
	}
}

func TestMissingValueIsParseError(t *testing.T) {
	p := New(lexer.New("fn f { let x = }", "test://unit"))
	p.Parse()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error for a missing let value")
	}
}
