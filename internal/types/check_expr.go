package types

import (
	"strconv"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/diag"
)

// typeOfExpr types e, recording diagnostics for arithmetic/comparison/
// call mismatches. Unknown is returned wherever a mismatch would
// otherwise cascade into more errors.
func (c *Checker) typeOfExpr(e ast.Expr) Type {
	switch n := e.(type) {
	case *ast.IntLit:
		return Int
	case *ast.FloatLit:
		return Float
	case *ast.BoolLit:
		return Bool
	case *ast.StringLit:
		return String

	case *ast.Identifier:
		if t, ok := c.locals[n.Name]; ok {
			return t
		}
		c.errorf(n.Pos_, diag.TypeUndefinedVar, "undefined variable \""+n.Name+"\"", "")
		return Unknown

	case *ast.Call:
		return c.typeOfCall(n.Name, n.Args, n.Pos_)

	case *ast.ModuleCall:
		return c.typeOfCall(n.Module+"."+n.Name, n.Args, n.Pos_)

	case *ast.BinaryOp:
		return c.typeOfBinaryOp(n)

	default:
		return Unknown
	}
}

func (c *Checker) typeOfCall(name string, args []ast.Expr, pos ast.Pos) Type {
	argTypes := make([]Type, len(args))
	for i, a := range args {
		argTypes[i] = c.typeOfExpr(a)
	}

	sig, ok := c.sigs[name]
	if !ok {
		// Calls to stdlib/AI/Web3/FS (or forward-unresolved names) have
		// externally fixed signatures; assume Int per spec §4.4.
		return Int
	}

	if len(sig.Params) != len(argTypes) {
		c.errorf(pos, diag.TypeArityMismatch,
			"call to \""+name+"\" expects "+strconv.Itoa(len(sig.Params))+" argument(s)", "")
		return sig.Return
	}
	for i, want := range sig.Params {
		got := argTypes[i]
		if want != Unknown && got != Unknown && want != got {
			c.errorf(pos, diag.TypeMismatch,
				"argument "+strconv.Itoa(i+1)+" to \""+name+"\" has type "+got.String()+", want "+want.String(), "")
		}
	}
	return sig.Return
}

func (c *Checker) typeOfBinaryOp(n *ast.BinaryOp) Type {
	lt := c.typeOfExpr(n.Left)
	rt := c.typeOfExpr(n.Right)

	switch n.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		if lt == Unknown || rt == Unknown {
			return Unknown
		}
		if lt == rt && (lt == Int || lt == Float) {
			return lt
		}
		c.errorf(n.Pos_, diag.TypeMismatch, "arithmetic requires matching Int or Float operands", "")
		return Unknown

	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		if lt == Unknown || rt == Unknown {
			return Bool
		}
		if lt == rt && (lt == Int || lt == Float) {
			return Bool
		}
		c.errorf(n.Pos_, diag.TypeMismatch, "comparison requires matching Int or Float operands", "")
		return Bool

	default:
		return Unknown
	}
}
