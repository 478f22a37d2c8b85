package ir

import (
	"testing"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/google/go-cmp/cmp"
)

func TestLowerEmptyFunction(t *testing.T) {
	fn := &ast.Function{Name: "main"}
	mod := Lower([]ast.Stmt{fn})
	if len(mod.Functions) != 1 {
		t.Fatalf("expected 1 function")
	}
	got := mod.Functions[0].Instructions
	want := []Instruction{
		{Op: OpLoadConstInt, IntVal: 0},
		{Op: OpReturn},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerLetAndReturn(t *testing.T) {
	fn := &ast.Function{
		Name: "main",
		Body: []ast.Stmt{
			&ast.Let{Name: "x", Value: &ast.BinaryOp{
				Op:    ast.OpAdd,
				Left:  &ast.IntLit{Value: 2},
				Right: &ast.BinaryOp{Op: ast.OpMul, Left: &ast.IntLit{Value: 3}, Right: &ast.IntLit{Value: 4}},
			}},
			&ast.Return{Value: &ast.Identifier{Name: "x"}},
		},
	}
	mod := Lower([]ast.Stmt{fn})
	got := mod.Functions[0].Instructions
	want := []Instruction{
		{Op: OpLoadConstInt, IntVal: 2},
		{Op: OpLoadConstInt, IntVal: 3},
		{Op: OpLoadConstInt, IntVal: 4},
		{Op: OpMul},
		{Op: OpAdd},
		{Op: OpStoreLocal, Slot: 0},
		{Op: OpLoadLocal, Slot: 0},
		{Op: OpReturn},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if mod.Functions[0].LocalCount != 1 {
		t.Errorf("expected local_count 1, got %d", mod.Functions[0].LocalCount)
	}
}

func TestLowerIfElse(t *testing.T) {
	fn := &ast.Function{
		Name:   "sign",
		Params: []string{"n"},
		Body: []ast.Stmt{
			&ast.If{
				Cond: &ast.BinaryOp{Op: ast.OpGt, Left: &ast.Identifier{Name: "n"}, Right: &ast.IntLit{Value: 0}},
				Then: []ast.Stmt{&ast.Return{Value: &ast.IntLit{Value: 1}}},
				Else: []ast.Stmt{&ast.Return{Value: &ast.IntLit{Value: 0}}},
			},
		},
	}
	mod := Lower([]ast.Stmt{fn})
	instrs := mod.Functions[0].Instructions

	var jifCount, jmpCount int
	for _, in := range instrs {
		if in.Op == OpJumpIfFalse {
			jifCount++
			if in.Target < 0 || in.Target > len(instrs) {
				t.Errorf("JumpIfFalse target out of range: %d", in.Target)
			}
		}
		if in.Op == OpJump {
			jmpCount++
			if in.Target < 0 || in.Target > len(instrs) {
				t.Errorf("Jump target out of range: %d", in.Target)
			}
		}
	}
	if jifCount != 1 || jmpCount != 1 {
		t.Errorf("expected exactly one JumpIfFalse and one Jump, got %d/%d", jifCount, jmpCount)
	}
}

func TestLowerWhileLoopTarget(t *testing.T) {
	fn := &ast.Function{
		Name: "count",
		Body: []ast.Stmt{
			&ast.Let{Name: "i", Value: &ast.IntLit{Value: 0}},
			&ast.While{
				Cond: &ast.BinaryOp{Op: ast.OpLt, Left: &ast.Identifier{Name: "i"}, Right: &ast.IntLit{Value: 3}},
				Body: []ast.Stmt{
					&ast.Assign{Name: "i", Value: &ast.BinaryOp{Op: ast.OpAdd, Left: &ast.Identifier{Name: "i"}, Right: &ast.IntLit{Value: 1}}},
				},
			},
			&ast.Return{Value: &ast.Identifier{Name: "i"}},
		},
	}
	mod := Lower([]ast.Stmt{fn})
	instrs := mod.Functions[0].Instructions

	var jifIdx, jmpIdx int = -1, -1
	for i, in := range instrs {
		if in.Op == OpJumpIfFalse {
			jifIdx = i
		}
		if in.Op == OpJump {
			jmpIdx = i
		}
	}
	if jifIdx == -1 || jmpIdx == -1 {
		t.Fatal("expected both JumpIfFalse and Jump")
	}
	if instrs[jifIdx].Target != jmpIdx+1 {
		t.Errorf("JumpIfFalse target should equal instruction after trailing Jump: got %d want %d", instrs[jifIdx].Target, jmpIdx+1)
	}
}

func TestLowerCallClassification(t *testing.T) {
	fn := &ast.Function{
		Name: "main",
		Body: []ast.Stmt{
			&ast.ExprStmt{Value: &ast.Call{Name: "println_str", Args: []ast.Expr{&ast.StringLit{Value: "hi"}}}},
			&ast.ExprStmt{Value: &ast.ModuleCall{Module: "math", Name: "add", Args: []ast.Expr{&ast.IntLit{Value: 2}, &ast.IntLit{Value: 3}}}},
		},
	}
	mod := Lower([]ast.Stmt{fn})
	instrs := mod.Functions[0].Instructions

	foundStd, foundUser := false, false
	for _, in := range instrs {
		if in.Op == OpCallStd && in.Name == "println_str" {
			foundStd = true
		}
		if in.Op == OpCall && in.Name == "math.add" {
			foundUser = true
		}
	}
	if !foundStd {
		t.Error("expected println_str to lower as CallStd")
	}
	if !foundUser {
		t.Error("expected math.add to lower as a plain Call (no such registry entry)")
	}
}
