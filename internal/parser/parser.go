// Package parser implements astrixa's recursive-descent parser: token
// stream to AST, with structured diagnostics carrying location and
// optional help text.
package parser

import (
	"strconv"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/diag"
	"github.com/astrixa-lang/astrixa/internal/lexer"
	"github.com/astrixa-lang/astrixa/internal/token"
)

// Parser holds a single-token lookahead cursor over a Lexer's output.
type Parser struct {
	l    *lexer.Lexer
	file string

	cur  token.Token
	peek token.Token

	errs []error
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.cur = l.NextToken()
	p.peek = l.NextToken()
	if p.cur.File != "" {
		p.file = p.cur.File
	}
	return p
}

func (p *Parser) Errors() []error { return p.errs }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curPos() ast.Pos {
	return ast.Pos{Line: p.cur.Line, Column: p.cur.Column, File: p.file}
}

func (p *Parser) errorf(code diag.Code, msg, help string) {
	pos := p.curPos()
	r := diag.New(code, diag.PhaseParse, msg, diag.Span{Line: pos.Line, Column: pos.Column, File: pos.File})
	if help != "" {
		r = r.WithFix(help)
	}
	p.errs = append(p.errs, diag.Wrap(r))
}

func (p *Parser) expect(t token.Type, code diag.Code, what string) bool {
	if p.cur.Type != t {
		p.errorf(code, "expected "+what+", found "+p.cur.Type.String(), "")
		return false
	}
	p.advance()
	return true
}

// Parse parses an entire file: a sequence of top-level Import and
// Function statements. Non-recognized tokens at the top level are
// skipped without emitting a statement (tolerant top-level skipping,
// per spec §4.2). Inside function bodies parsing does not stop at an
// error: it continues to the closing brace, so Errors may hold several
// diagnostics and callers that want one take the first.
func (p *Parser) Parse() *ast.Program {
	file := &ast.File{Path: p.file}
	for p.cur.Type != token.EOF {
		switch p.cur.Type {
		case token.IMPORT:
			file.Statements = append(file.Statements, p.parseImport())
		case token.EXPORT:
			file.Statements = append(file.Statements, p.parseFunction(true))
		case token.FN:
			file.Statements = append(file.Statements, p.parseFunction(false))
		default:
			p.advance()
		}
	}
	return &ast.Program{File: file}
}

func (p *Parser) parseImport() ast.Stmt {
	pos := p.curPos()
	p.advance() // 'import'
	name := p.cur.Literal
	p.expect(token.IDENT, diag.ParseMissingName, "a module name")
	return &ast.Import{Name: name, Pos_: pos}
}

func (p *Parser) parseFunction(exported bool) ast.Stmt {
	pos := p.curPos()
	if exported {
		p.advance() // 'export'
	}
	p.advance() // 'fn'

	name := p.cur.Literal
	p.expect(token.IDENT, diag.ParseMissingName, "a function name")

	var params []string
	if p.cur.Type == token.LPAREN {
		p.advance()
		for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
			params = append(params, p.cur.Literal)
			p.expect(token.IDENT, diag.ParseMissingName, "a parameter name")
			if p.cur.Type == token.COMMA {
				p.advance()
			}
		}
		p.expect(token.RPAREN, diag.ParseMissingDelim, "')'")
	}

	returnType := ""
	if p.cur.Type == token.ARROW {
		p.advance()
		returnType = p.cur.Literal
		p.expect(token.IDENT, diag.ParseMissingName, "a return type")
	}

	body := p.parseBlock()

	return &ast.Function{Name: name, Params: params, ReturnType: returnType, Body: body, Exported: exported, Pos_: pos}
}

func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(token.LBRACE, diag.ParseMissingDelim, "'{'")
	var stmts []ast.Stmt
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBRACE, diag.ParseMissingDelim, "'}'")
	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Type {
	case token.LET:
		return p.parseLet()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.PANIC:
		return p.parsePanic()
	case token.IDENT:
		if p.peek.Type == token.ASSIGN {
			return p.parseAssign()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLet() ast.Stmt {
	pos := p.curPos()
	p.advance() // 'let'
	name := p.cur.Literal
	p.expect(token.IDENT, diag.ParseMissingName, "a variable name")
	p.expect(token.ASSIGN, diag.ParseUnexpectedToken, "'='")
	value := p.parseExpr(0)
	return &ast.Let{Name: name, Value: value, Pos_: pos}
}

func (p *Parser) parseAssign() ast.Stmt {
	pos := p.curPos()
	name := p.cur.Literal
	p.advance() // ident
	p.advance() // '='
	value := p.parseExpr(0)
	return &ast.Assign{Name: name, Value: value, Pos_: pos}
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.curPos()
	p.advance() // 'if'
	cond := p.parseExpr(0)
	then := p.parseBlock()
	var els []ast.Stmt
	if p.cur.Type == token.ELSE {
		p.advance()
		els = p.parseBlock()
	}
	return &ast.If{Cond: cond, Then: then, Else: els, Pos_: pos}
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.curPos()
	p.advance() // 'while'
	cond := p.parseExpr(0)
	body := p.parseBlock()
	return &ast.While{Cond: cond, Body: body, Pos_: pos}
}

func (p *Parser) parseReturn() ast.Stmt {
	pos := p.curPos()
	p.advance() // 'return'
	if p.atStmtEnd() {
		return &ast.Return{Pos_: pos}
	}
	value := p.parseExpr(0)
	return &ast.Return{Value: value, Pos_: pos}
}

func (p *Parser) parsePanic() ast.Stmt {
	pos := p.curPos()
	p.advance() // 'panic'
	value := p.parseExpr(0)
	return &ast.Panic{Value: value, Pos_: pos}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	pos := p.curPos()
	value := p.parseExpr(0)
	return &ast.ExprStmt{Value: value, Pos_: pos}
}

// atStmtEnd reports whether the cursor sits at a token that cannot
// begin an expression, i.e. the statement being parsed has no value
// (a bare `return`).
func (p *Parser) atStmtEnd() bool {
	switch p.cur.Type {
	case token.RBRACE, token.EOF, token.LET, token.IF, token.WHILE, token.RETURN, token.PANIC:
		return true
	default:
		return false
	}
}

// --- Expressions: comparison > additive > multiplicative > call/primary ---

func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	for p.cur.Type.IsOperator() && p.cur.Type.Precedence() > minPrec {
		op := p.cur
		prec := op.Type.Precedence()
		p.advance()
		right := p.parseExpr(prec)
		left = &ast.BinaryOp{Op: opKind(op.Type), Left: left, Right: right, Pos_: ast.Pos{Line: op.Line, Column: op.Column, File: p.file}}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	pos := p.curPos()
	switch p.cur.Type {
	case token.INT:
		lit := p.cur.Literal
		p.advance()
		v, _ := strconv.ParseInt(lit, 10, 64)
		return &ast.IntLit{Value: v, Pos_: pos}

	case token.FLOAT:
		lit := p.cur.Literal
		p.advance()
		v, _ := strconv.ParseFloat(lit, 64)
		return &ast.FloatLit{Value: v, Pos_: pos}

	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Pos_: pos}

	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Pos_: pos}

	case token.STRING:
		lit := p.cur.Literal
		p.advance()
		return &ast.StringLit{Value: lit, Pos_: pos}

	case token.LPAREN:
		p.advance()
		e := p.parseExpr(0)
		p.expect(token.RPAREN, diag.ParseMissingDelim, "')'")
		return e

	case token.IDENT:
		name := p.cur.Literal
		p.advance()

		if p.cur.Type == token.DOT {
			p.advance()
			member := p.cur.Literal
			p.expect(token.IDENT, diag.ParseMissingName, "a member name")
			if p.cur.Type == token.LPAREN {
				args := p.parseArgs()
				return &ast.ModuleCall{Module: name, Name: member, Args: args, Pos_: pos}
			}
			// A bare `module.member` with no call parens isn't part of
			// this language's grammar; report and recover as an
			// identifier so expression parsing can continue.
			p.errorf(diag.ParseUnexpectedToken, "expected '(' after "+name+"."+member, "")
			return &ast.Identifier{Name: name, Pos_: pos}
		}

		if p.cur.Type == token.LPAREN {
			args := p.parseArgs()
			return &ast.Call{Name: name, Args: args, Pos_: pos}
		}

		return &ast.Identifier{Name: name, Pos_: pos}

	default:
		p.errorf(diag.ParseUnexpectedToken, "unexpected token "+p.cur.Type.String(), "")
		p.advance()
		return &ast.IntLit{Value: 0, Pos_: pos}
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		args = append(args, p.parseExpr(0))
		if p.cur.Type == token.COMMA {
			p.advance()
		}
	}
	p.expect(token.RPAREN, diag.ParseMissingDelim, "')'")
	return args
}

func opKind(t token.Type) ast.BinOpKind {
	switch t {
	case token.PLUS:
		return ast.OpAdd
	case token.MINUS:
		return ast.OpSub
	case token.STAR:
		return ast.OpMul
	case token.SLASH:
		return ast.OpDiv
	case token.PERCENT:
		return ast.OpMod
	case token.EQ:
		return ast.OpEq
	case token.NE:
		return ast.OpNe
	case token.LT:
		return ast.OpLt
	case token.LE:
		return ast.OpLe
	case token.GT:
		return ast.OpGt
	case token.GE:
		return ast.OpGe
	default:
		return ""
	}
}
