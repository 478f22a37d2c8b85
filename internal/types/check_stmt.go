package types

import (
	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/diag"
)

// checkStmt type-checks one statement in isolation. For If and While it
// only validates the condition — body recursion (and return-type
// collection) is driven by walkBody so each inner statement is visited
// exactly once.
func (c *Checker) checkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Let:
		t := c.typeOfExpr(n.Value)
		c.locals[n.Name] = t

	case *ast.Assign:
		existing, ok := c.locals[n.Name]
		if !ok {
			c.errorf(n.Pos_, diag.TypeUndefinedVar, "undefined variable \""+n.Name+"\"", "declare it first with 'let'")
			return
		}
		vt := c.typeOfExpr(n.Value)
		if existing != Unknown && vt != Unknown && existing != vt {
			c.errorf(n.Pos_, diag.TypeMismatch,
				"cannot assign "+vt.String()+" to "+n.Name+" of type "+existing.String(), "")
		}

	case *ast.If:
		ct := c.typeOfExpr(n.Cond)
		if ct != Int && ct != Bool && ct != Unknown {
			c.errorf(n.Pos_, diag.TypeNonNumericCond, "if condition must be Int or Bool", "")
		}

	case *ast.While:
		ct := c.typeOfExpr(n.Cond)
		if ct != Int && ct != Bool && ct != Unknown {
			c.errorf(n.Pos_, diag.TypeNonNumericCond, "while condition must be Int or Bool", "")
		}

	case *ast.Return:
		// Type collection for return-consistency checking happens in
		// walkBody, which calls typeOfExpr itself; checking it again
		// here would double-report errors in the return expression.

	case *ast.Panic:
		pt := c.typeOfExpr(n.Value)
		if pt != String && pt != Unknown {
			c.errorf(n.Pos_, diag.TypeNonStringPanic, "panic expects a String argument", "wrap the value in a string")
		}

	case *ast.ExprStmt:
		c.typeOfExpr(n.Value)

	case *ast.Import, *ast.Function:
		// nothing to check directly; functions are handled by checkFunction

	default:
	}
}
