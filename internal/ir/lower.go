package ir

import (
	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/registry"
)

// Lower converts a flattened statement list into an IR module. Only
// top-level Function statements produce IR functions; Import
// statements have already been consumed by the loader.
func Lower(stmts []ast.Stmt) *Module {
	mod := &Module{}
	for _, s := range stmts {
		if fn, ok := s.(*ast.Function); ok {
			mod.Functions = append(mod.Functions, lowerFunction(fn))
		}
	}
	return mod
}

// funcLowerer holds per-function lowering state: the slot table and
// the instruction buffer under construction.
type funcLowerer struct {
	slots      map[string]int
	nextSlot   int
	instrs     []Instruction
}

func lowerFunction(fn *ast.Function) *Function {
	fl := &funcLowerer{slots: make(map[string]int)}
	for _, p := range fn.Params {
		fl.allocSlot(p)
	}

	for _, s := range fn.Body {
		fl.lowerStmt(s)
	}

	// I1: every IR function ends with Return.
	if len(fl.instrs) == 0 || fl.instrs[len(fl.instrs)-1].Op != OpReturn {
		fl.emit(Instruction{Op: OpLoadConstInt, IntVal: 0})
		fl.emit(Instruction{Op: OpReturn})
	}

	return &Function{
		Name:         fn.Name,
		ParamCount:   len(fn.Params),
		LocalCount:   fl.nextSlot,
		Instructions: fl.instrs,
		Exported:     fn.Exported,
	}
}

func (fl *funcLowerer) allocSlot(name string) int {
	slot := fl.nextSlot
	fl.slots[name] = slot
	fl.nextSlot++
	return slot
}

func (fl *funcLowerer) emit(i Instruction) int {
	fl.instrs = append(fl.instrs, i)
	return len(fl.instrs) - 1
}

func (fl *funcLowerer) here() int { return len(fl.instrs) }

func (fl *funcLowerer) patchTarget(idx, target int) {
	fl.instrs[idx].Target = target
}

func (fl *funcLowerer) lowerStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Let:
		fl.lowerExpr(n.Value)
		slot := fl.allocSlot(n.Name)
		fl.emit(Instruction{Op: OpStoreLocal, Slot: slot})

	case *ast.Assign:
		fl.lowerExpr(n.Value)
		if slot, ok := fl.slots[n.Name]; ok {
			fl.emit(Instruction{Op: OpStoreLocal, Slot: slot})
		}
		// else: checker already reported an undefined-variable error;
		// silently skip emission per spec §4.5.

	case *ast.If:
		fl.lowerExpr(n.Cond)
		jifIdx := fl.emit(Instruction{Op: OpJumpIfFalse})
		for _, inner := range n.Then {
			fl.lowerStmt(inner)
		}
		if n.Else != nil {
			jmpIdx := fl.emit(Instruction{Op: OpJump})
			fl.patchTarget(jifIdx, fl.here())
			for _, inner := range n.Else {
				fl.lowerStmt(inner)
			}
			fl.patchTarget(jmpIdx, fl.here())
		} else {
			fl.patchTarget(jifIdx, fl.here())
		}

	case *ast.While:
		loopStart := fl.here()
		fl.lowerExpr(n.Cond)
		jifIdx := fl.emit(Instruction{Op: OpJumpIfFalse})
		for _, inner := range n.Body {
			fl.lowerStmt(inner)
		}
		fl.emit(Instruction{Op: OpJump, Target: loopStart})
		fl.patchTarget(jifIdx, fl.here())

	case *ast.Return:
		if n.Value != nil {
			fl.lowerExpr(n.Value)
		} else {
			fl.emit(Instruction{Op: OpLoadConstInt, IntVal: 0})
		}
		fl.emit(Instruction{Op: OpReturn})

	case *ast.Panic:
		fl.lowerExpr(n.Value)
		fl.emit(Instruction{Op: OpPanic})

	case *ast.ExprStmt:
		fl.lowerExpr(n.Value)
		if isCallExpr(n.Value) {
			fl.instrs[len(fl.instrs)-1].Discard = true
		}

	case *ast.Import, *ast.Function:
		// not reachable inside a function body
	}
}

func isCallExpr(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Call, *ast.ModuleCall:
		return true
	default:
		return false
	}
}

func (fl *funcLowerer) lowerExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.IntLit:
		fl.emit(Instruction{Op: OpLoadConstInt, IntVal: n.Value})
	case *ast.FloatLit:
		fl.emit(Instruction{Op: OpLoadConstFloat, FloatVal: n.Value})
	case *ast.BoolLit:
		fl.emit(Instruction{Op: OpLoadConstBool, BoolVal: n.Value})
	case *ast.StringLit:
		fl.emit(Instruction{Op: OpLoadConstString, StrVal: n.Value})

	case *ast.Identifier:
		if slot, ok := fl.slots[n.Name]; ok {
			fl.emit(Instruction{Op: OpLoadLocal, Slot: slot})
		} else {
			fl.emit(Instruction{Op: OpLoadVar, Name: n.Name})
		}

	case *ast.Call:
		for _, a := range n.Args {
			fl.lowerExpr(a)
		}
		fl.emitCall(n.Name, len(n.Args))

	case *ast.ModuleCall:
		for _, a := range n.Args {
			fl.lowerExpr(a)
		}
		fl.emitCall(n.Module+"."+n.Name, len(n.Args))

	case *ast.BinaryOp:
		fl.lowerExpr(n.Left)
		fl.lowerExpr(n.Right)
		fl.emit(Instruction{Op: binOpToOp(n.Op)})
	}
}

// emitCall classifies name against the call-family registries in the
// order FS, Web3, AI, Std (per DESIGN.md Open Question 3), falling
// back to a plain user-function call.
func (fl *funcLowerer) emitCall(name string, argCount int) {
	if fam, ok := registry.Classify(name); ok {
		switch fam {
		case registry.FamilyFS:
			fl.emit(Instruction{Op: OpCallFS, Name: name, ArgCount: argCount})
			return
		case registry.FamilyWeb3:
			fl.emit(Instruction{Op: OpCallWeb3, Name: name, ArgCount: argCount})
			return
		case registry.FamilyAI:
			fl.emit(Instruction{Op: OpCallAI, Name: name, ArgCount: argCount})
			return
		case registry.FamilyStd:
			fl.emit(Instruction{Op: OpCallStd, Name: name, ArgCount: argCount})
			return
		}
	}
	fl.emit(Instruction{Op: OpCall, Name: name, ArgCount: argCount})
}

func binOpToOp(op ast.BinOpKind) Op {
	switch op {
	case ast.OpAdd:
		return OpAdd
	case ast.OpSub:
		return OpSub
	case ast.OpMul:
		return OpMul
	case ast.OpDiv:
		return OpDiv
	case ast.OpMod:
		return OpMod
	case ast.OpEq:
		return OpEq
	case ast.OpNe:
		return OpNe
	case ast.OpLt:
		return OpLt
	case ast.OpLe:
		return OpLe
	case ast.OpGt:
		return OpGt
	case ast.OpGe:
		return OpGe
	default:
		return OpNop
	}
}
