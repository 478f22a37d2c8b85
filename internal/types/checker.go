package types

import (
	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/diag"
)

// Checker performs the one-pass astrixa type check over a flattened
// list of top-level statements.
type Checker struct {
	sigs   map[string]*Signature
	errs   []*diag.Report
	locals map[string]Type
	file   string
}

// NewChecker creates a checker for a single flattened compilation unit.
func NewChecker(file string) *Checker {
	return &Checker{sigs: make(map[string]*Signature), file: file}
}

// Signatures exposes the function-signature table built by Check, keyed
// by function name. The checker runs on the flattened unit, so names
// are not module-qualified (spec non-goal: no cross-module checking).
func (c *Checker) Signatures() map[string]*Signature { return c.sigs }

// Check walks stmts (the flattened statement list) and returns every
// collected diagnostic, in source order.
func (c *Checker) Check(stmts []ast.Stmt) []*diag.Report {
	// First pass: register provisional signatures for every function so
	// forward references and recursion resolve during body checking.
	for _, s := range stmts {
		if fn, ok := s.(*ast.Function); ok {
			c.registerProvisional(fn)
		}
	}

	for _, s := range stmts {
		if fn, ok := s.(*ast.Function); ok {
			c.checkFunction(fn)
		}
	}

	return c.errs
}

func (c *Checker) registerProvisional(fn *ast.Function) {
	sig := &Signature{Return: declaredType(fn.ReturnType)}
	for range fn.Params {
		sig.Params = append(sig.Params, Int)
	}
	c.sigs[fn.Name] = sig
}

func declaredType(name string) Type {
	switch name {
	case "Int":
		return Int
	case "Float":
		return Float
	case "Bool":
		return Bool
	case "String":
		return String
	case "Void", "":
		return Void
	default:
		return Unknown
	}
}

func (c *Checker) errorf(pos ast.Pos, code diag.Code, msg, help string) {
	r := diag.New(code, diag.PhaseType, msg, diag.Span{Line: pos.Line, Column: pos.Column, File: c.file})
	if help != "" {
		r = r.WithFix(help)
	}
	c.errs = append(c.errs, r)
}

// checkFunction walks fn's body once, checking each statement and
// simultaneously collecting the type of every reachable Return
// expression (recursing into if/while, never into nested functions —
// the language has none). Once the walk completes, the collected
// return types are reconciled into the function's final signature.
func (c *Checker) checkFunction(fn *ast.Function) {
	saved := c.locals
	c.locals = make(map[string]Type)
	for _, p := range fn.Params {
		c.locals[p] = Int
	}

	var returns []Type
	c.walkBody(fn.Body, &returns)

	inferred := Void
	consistent := true
	seen := false
	for _, t := range returns {
		if t == Unknown {
			continue
		}
		if !seen {
			inferred = t
			seen = true
			continue
		}
		if inferred != t {
			consistent = false
		}
	}
	if !consistent {
		c.errorf(fn.Pos_, diag.TypeInconsistentRet,
			"function \""+fn.Name+"\" returns inconsistent types", "make every return expression the same type")
	} else if seen {
		c.sigs[fn.Name].Return = inferred
	}

	for _, p := range fn.Params {
		delete(c.locals, p)
	}
	c.locals = saved
}

// walkBody checks each statement in stmts and appends the type of every
// Return expression reachable within it (including nested if/while) to
// *returns.
func (c *Checker) walkBody(stmts []ast.Stmt, returns *[]Type) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.Return:
			c.checkStmt(n)
			if n.Value == nil {
				*returns = append(*returns, Void)
			} else {
				*returns = append(*returns, c.typeOfExpr(n.Value))
			}
		case *ast.If:
			c.checkStmt(n)
			c.walkBody(n.Then, returns)
			if n.Else != nil {
				c.walkBody(n.Else, returns)
			}
		case *ast.While:
			c.checkStmt(n)
			c.walkBody(n.Body, returns)
		default:
			c.checkStmt(s)
		}
	}
}
