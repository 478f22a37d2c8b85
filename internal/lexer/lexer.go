// Package lexer turns astrixa source text into a stream of tokens.
package lexer

import (
	"strings"

	"github.com/astrixa-lang/astrixa/internal/token"
	"golang.org/x/text/unicode/norm"
)

// Lexer scans one source file into tokens, tracking (line, column) of
// every character it consumes.
type Lexer struct {
	input  string
	file   string
	pos    int
	ch     byte
	line   int
	column int

	errs []*Error
}

// Error is a lexical diagnostic.
type Error struct {
	Message string
	Line    int
	Column  int
	File    string
	Help    string
}

func (e *Error) Error() string { return e.Message }

// New creates a Lexer over src, normalizing it to NFC first.
// Identifiers are ASCII-only ([A-Za-z_][A-Za-z0-9_]*), so the
// normalization affects only the contents of string literals.
func New(src string, file string) *Lexer {
	l := &Lexer{input: norm.NFC.String(src), file: file, line: 1, column: 0}
	l.advance()
	return l
}

// Errors returns all lexical diagnostics accumulated so far.
func (l *Lexer) Errors() []*Error { return l.errs }

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		l.ch = 0
		l.pos++
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.advance()
	}
}

// NextToken produces the next token in the stream, including a final
// EOF token once the input is exhausted.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col := l.line, l.column
	mk := func(t token.Type, lit string) token.Token {
		return token.New(t, lit, line, col, l.file)
	}

	switch {
	case l.ch == 0:
		return mk(token.EOF, "")
	case isLetter(l.ch):
		ident := l.readIdentifier()
		return mk(token.LookupIdent(ident), ident)
	case isDigit(l.ch):
		return l.readNumber(line, col)
	case l.ch == '"':
		return l.readString(line, col)
	}

	switch l.ch {
	case '(':
		l.advance()
		return mk(token.LPAREN, "(")
	case ')':
		l.advance()
		return mk(token.RPAREN, ")")
	case '{':
		l.advance()
		return mk(token.LBRACE, "{")
	case '}':
		l.advance()
		return mk(token.RBRACE, "}")
	case ':':
		l.advance()
		return mk(token.COLON, ":")
	case ',':
		l.advance()
		return mk(token.COMMA, ",")
	case '.':
		l.advance()
		return mk(token.DOT, ".")
	case '+':
		l.advance()
		return mk(token.PLUS, "+")
	case '-':
		l.advance()
		if l.ch == '>' {
			l.advance()
			return mk(token.ARROW, "->")
		}
		return mk(token.MINUS, "-")
	case '*':
		l.advance()
		return mk(token.STAR, "*")
	case '/':
		l.advance()
		return mk(token.SLASH, "/")
	case '%':
		l.advance()
		return mk(token.PERCENT, "%")
	case '=':
		l.advance()
		if l.ch == '=' {
			l.advance()
			return mk(token.EQ, "==")
		}
		return mk(token.ASSIGN, "=")
	case '!':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return mk(token.NE, "!=")
		}
		l.errorf(line, col, "unexpected character '!'", "did you mean '!='?")
		l.advance()
		return mk(token.ILLEGAL, "!")
	case '<':
		l.advance()
		if l.ch == '=' {
			l.advance()
			return mk(token.LE, "<=")
		}
		return mk(token.LT, "<")
	case '>':
		l.advance()
		if l.ch == '=' {
			l.advance()
			return mk(token.GE, ">=")
		}
		return mk(token.GT, ">")
	}

	ch := l.ch
	l.errorf(line, col, "unexpected character '"+string(ch)+"'", "unexpected character")
	l.advance()
	return mk(token.ILLEGAL, string(ch))
}

func (l *Lexer) errorf(line, col int, msg, help string) {
	l.errs = append(l.errs, &Error{Message: msg, Line: line, Column: col, File: l.file, Help: help})
}

func (l *Lexer) readIdentifier() string {
	start := l.pos - 1
	for isLetter(l.ch) || isDigit(l.ch) {
		l.advance()
	}
	return l.input[start : l.pos-1]
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.pos - 1
	isFloat := false
	for isDigit(l.ch) {
		l.advance()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		isFloat = true
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
	}
	lit := l.input[start : l.pos-1]
	if isFloat {
		return token.New(token.FLOAT, lit, line, col, l.file)
	}
	return token.New(token.INT, lit, line, col, l.file)
}

func (l *Lexer) readString(line, col int) token.Token {
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		if l.ch == 0 {
			l.errorf(line, col, "unterminated string literal", "add a closing '\"'")
			return token.New(token.STRING, b.String(), line, col, l.file)
		}
		if l.ch == '"' {
			l.advance()
			break
		}
		if l.ch == '\\' {
			l.advance()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteByte('\\')
				b.WriteByte(l.ch)
			}
			l.advance()
			continue
		}
		b.WriteByte(l.ch)
		l.advance()
	}
	return token.New(token.STRING, b.String(), line, col, l.file)
}

func isLetter(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
