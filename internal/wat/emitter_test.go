package wat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astrixa-lang/astrixa/internal/ir"
	"github.com/astrixa-lang/astrixa/internal/lexer"
	"github.com/astrixa-lang/astrixa/internal/module"
	"github.com/astrixa-lang/astrixa/internal/optimize"
	"github.com/astrixa-lang/astrixa/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

func lowerSource(t *testing.T, src string) *ir.Module {
	t.Helper()
	p := parser.New(lexer.New(src, "test://unit"))
	prog := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	mod := ir.Lower(prog.File.Statements)
	optimize.Module(mod)
	return mod
}

func TestEmitIntegerArithmetic(t *testing.T) {
	mod := lowerSource(t, "fn main { let x = 2 + 3 * 4 return x }")
	out := EmitModule(mod)
	if !strings.Contains(out, "i32.const 14") {
		t.Errorf("expected a folded constant 14, got:\n%s", out)
	}
	if !strings.Contains(out, `(export "main" (func $main))`) {
		t.Errorf("expected main to be exported (the emitter exports every function), got:\n%s", out)
	}
}

func TestEmitPanicLowering(t *testing.T) {
	mod := lowerSource(t, `fn bad { panic("nope") }`)
	out := EmitModule(mod)
	if !strings.Contains(out, `(data (i32.const 0) "nope")`) {
		t.Errorf("expected data section entry for \"nope\" at offset 0, got:\n%s", out)
	}
	if !strings.Contains(out, "call $panic") || !strings.Contains(out, "unreachable") {
		t.Errorf("expected call $panic followed by unreachable, got:\n%s", out)
	}
}

func TestEmitModuleImportCall(t *testing.T) {
	dir := t.TempDir()
	writeAx(t, dir, "math", "export fn add(a, b) { return a + b }")
	writeAx(t, dir, "main", "import math\nfn main { return math.add(2, 3) }")

	l := module.New(dir)
	stmts, err := module.Flatten(l, "main")
	if err != nil {
		t.Fatal(err)
	}
	mod := ir.Lower(stmts)
	optimize.Module(mod)
	out := EmitModule(mod)

	if !strings.Contains(out, "$math_add") {
		t.Errorf("expected sanitized symbol $math_add, got:\n%s", out)
	}
	if !strings.Contains(out, `(export "math.add" (func $math_add))`) {
		t.Errorf("expected dotted export name preserved, got:\n%s", out)
	}
}

func TestEmitWhileLoopBranches(t *testing.T) {
	mod := lowerSource(t, `fn count { let i = 0 while i < 3 { i = i + 1 } return i }`)
	out := EmitModule(mod)
	if !strings.Contains(out, "br_if") || !strings.Contains(out, "br ") {
		t.Errorf("expected a br_if/br pair for the loop, got:\n%s", out)
	}
}

func TestImportsAreSynthesizedAndSorted(t *testing.T) {
	mod := lowerSource(t, `fn main { println_str("hi") abs(1) return 0 }`)
	out := EmitModule(mod)
	if !strings.Contains(out, `(import "env" "println_str"`) {
		t.Errorf("expected an env import for println_str, got:\n%s", out)
	}
	absIdx := strings.Index(out, `(import "env" "abs"`)
	printlnIdx := strings.Index(out, `(import "env" "println_str"`)
	if absIdx < 0 || absIdx > printlnIdx {
		t.Errorf("expected the abs import before println_str (alphabetical), got:\n%s", out)
	}
}

// TestEmitModuleSnapshots pins full WAT output for a handful of small
// programs against committed snapshots, in the same role go-snaps plays
// for fixture output in the pack's DWScript interpreter tests.
func TestEmitModuleSnapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic": "fn main { let x = 2 + 3 * 4 return x }",
		"conditional": `fn classify(n) {
  if n < 0 {
    return 0
  }
  return 1
}`,
		"loop": `fn count {
  let i = 0
  while i < 3 {
    i = i + 1
  }
  return i
}`,
	}
	for name, src := range programs {
		mod := lowerSource(t, src)
		out := EmitModule(mod)
		snaps.MatchSnapshot(t, name, out)
	}
}

func writeAx(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".ax"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
}
