package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a single expression in canonical, fully-parenthesized
// form. Used by parser tests asserting operator precedence.
func Print(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *IntLit:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLit:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *BoolLit:
		b.WriteString(strconv.FormatBool(n.Value))
	case *StringLit:
		b.WriteString(strconv.Quote(n.Value))
	case *Identifier:
		b.WriteString(n.Name)
	case *Call:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, a)
		}
		b.WriteByte(')')
	case *ModuleCall:
		b.WriteString(n.Module)
		b.WriteByte('.')
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, a)
		}
		b.WriteByte(')')
	case *BinaryOp:
		b.WriteByte('(')
		printExpr(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(string(n.Op))
		b.WriteByte(' ')
		printExpr(b, n.Right)
		b.WriteByte(')')
	default:
		b.WriteString("<?>")
	}
}

// PrintProgram renders a full program as an indented, deterministic
// text form suitable for golden-file comparison.
func PrintProgram(p *Program) string {
	var b strings.Builder
	if p == nil || p.File == nil {
		return ""
	}
	for _, s := range p.File.Statements {
		printStmt(&b, s, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func printStmt(b *strings.Builder, s Stmt, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *Import:
		fmt.Fprintf(b, "import %s\n", n.Name)
	case *Function:
		kw := "fn"
		if n.Exported {
			kw = "export fn"
		}
		fmt.Fprintf(b, "%s %s(%s) {\n", kw, n.Name, strings.Join(n.Params, ", "))
		for _, inner := range n.Body {
			printStmt(b, inner, depth+1)
		}
		indent(b, depth)
		b.WriteString("}\n")
	case *Let:
		fmt.Fprintf(b, "let %s = %s\n", n.Name, Print(n.Value))
	case *Assign:
		fmt.Fprintf(b, "%s = %s\n", n.Name, Print(n.Value))
	case *If:
		fmt.Fprintf(b, "if %s {\n", Print(n.Cond))
		for _, inner := range n.Then {
			printStmt(b, inner, depth+1)
		}
		indent(b, depth)
		if n.Else != nil {
			b.WriteString("} else {\n")
			for _, inner := range n.Else {
				printStmt(b, inner, depth+1)
			}
			indent(b, depth)
		}
		b.WriteString("}\n")
	case *While:
		fmt.Fprintf(b, "while %s {\n", Print(n.Cond))
		for _, inner := range n.Body {
			printStmt(b, inner, depth+1)
		}
		indent(b, depth)
		b.WriteString("}\n")
	case *Return:
		if n.Value == nil {
			b.WriteString("return\n")
		} else {
			fmt.Fprintf(b, "return %s\n", Print(n.Value))
		}
	case *Panic:
		fmt.Fprintf(b, "panic(%s)\n", Print(n.Value))
	case *ExprStmt:
		fmt.Fprintf(b, "%s\n", Print(n.Value))
	default:
		b.WriteString("<?>\n")
	}
}
