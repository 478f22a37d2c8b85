// Package compile orchestrates the full astrixa pipeline: lexing,
// parsing, module loading, type checking, IR lowering, optimization,
// and WAT emission, over a single root source file or raw source
// string.
package compile

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/diag"
	"github.com/astrixa-lang/astrixa/internal/ir"
	"github.com/astrixa-lang/astrixa/internal/lexer"
	"github.com/astrixa-lang/astrixa/internal/module"
	"github.com/astrixa-lang/astrixa/internal/optimize"
	"github.com/astrixa-lang/astrixa/internal/parser"
	"github.com/astrixa-lang/astrixa/internal/types"
	"github.com/astrixa-lang/astrixa/internal/wat"
)

// Config controls which phases run and how deep the pipeline goes.
type Config struct {
	// SkipOptimize disables constant folding, DCE, and inlining — set
	// by `axc build --no-optimize`.
	SkipOptimize bool

	// StopAfter names the last phase to run: "parse", "check", "lower",
	// or "" (build all the way to WAT, the default). Any other value,
	// "lex" included, also runs the whole pipeline.
	StopAfter string

	// SearchPaths are extra module search directories, forwarded to
	// the loader.
	SearchPaths []string
}

// Source is one compilation unit: either raw code with a synthetic
// filename, or a root module name to be resolved via the loader when
// Path is set.
type Source struct {
	Code string
	Path string // if set, Code is ignored and Path is loaded from disk
}

// Result carries every intermediate artifact produced along the way,
// plus per-phase wall-clock timings in the teacher's own style.
type Result struct {
	Tokens       int
	Program      *ast.Program
	Signatures   map[string]*types.Signature
	Module       *ir.Module
	WAT          string
	Errors       []error
	PhaseTimings map[string]time.Duration
}

// Run executes cfg against src, stopping early at cfg.StopAfter or at
// the first phase that reports errors for phases that must abort
// (lex/parse/module/type — see spec.md §7).
func Run(cfg Config, src Source) (Result, error) {
	result := Result{PhaseTimings: make(map[string]time.Duration)}

	stmts, prog, err := parseAndLoad(cfg, src, &result)
	if err != nil || stmts == nil {
		return result, err
	}
	if cfg.StopAfter == "parse" {
		return result, nil
	}

	start := time.Now()
	checker := types.NewChecker(filenameOf(src))
	checkErrs := checker.Check(stmts)
	result.PhaseTimings["check"] = time.Since(start)
	result.Signatures = checker.Signatures()
	if len(checkErrs) > 0 {
		for _, e := range checkErrs {
			result.Errors = append(result.Errors, diag.Wrap(e))
		}
		return result, nil
	}
	if cfg.StopAfter == "check" {
		return result, nil
	}

	start = time.Now()
	mod := ir.Lower(stmts)
	result.PhaseTimings["lower"] = time.Since(start)
	result.Module = mod
	if cfg.StopAfter == "lower" {
		return result, nil
	}

	if !cfg.SkipOptimize {
		start = time.Now()
		optimize.Module(mod)
		result.PhaseTimings["optimize"] = time.Since(start)
	}

	start = time.Now()
	result.WAT = wat.EmitModule(mod)
	result.PhaseTimings["emit"] = time.Since(start)

	_ = prog // retained on Result for callers that want the raw AST
	return result, nil
}

func filenameOf(src Source) string {
	if src.Path != "" {
		return src.Path
	}
	return "<string>"
}

// parseAndLoad runs lex+parse (and, for a file-backed Source, module
// flattening) and records the resulting statement list and AST on
// result. Lex/parse errors abort the pipeline per spec.md §7.
func parseAndLoad(cfg Config, src Source, result *Result) ([]ast.Stmt, *ast.Program, error) {
	if src.Path != "" {
		l := module.New(append([]string{filepath.Dir(src.Path)}, cfg.SearchPaths...)...)
		name := strings.TrimSuffix(filepath.Base(src.Path), ".ax")
		start := time.Now()
		stmts, err := module.Flatten(l, name)
		result.PhaseTimings["parse"] = time.Since(start)
		if err != nil {
			result.Errors = append(result.Errors, err)
			return nil, nil, nil
		}
		result.Tokens = len(stmts)
		prog := &ast.Program{File: &ast.File{Path: src.Path, Statements: stmts}}
		result.Program = prog
		return stmts, prog, nil
	}

	start := time.Now()
	lx := lexer.New(src.Code, "<string>")
	p := parser.New(lx)
	prog := p.Parse()
	result.PhaseTimings["parse"] = time.Since(start)
	result.Program = prog

	if lerrs := lx.Errors(); len(lerrs) > 0 {
		for _, e := range lerrs {
			result.Errors = append(result.Errors, errorOf(e))
		}
		return nil, prog, nil
	}
	if perrs := p.Errors(); len(perrs) > 0 {
		result.Errors = append(result.Errors, perrs...)
		return nil, prog, nil
	}
	return prog.File.Statements, prog, nil
}

func errorOf(e *lexer.Error) error {
	r := diag.New(diag.LexUnexpectedChar, diag.PhaseLex, e.Message,
		diag.Span{Line: e.Line, Column: e.Column, File: e.File})
	if e.Help != "" {
		r = r.WithFix(e.Help)
	}
	return diag.Wrap(r)
}

// ReadSource reads path from disk for CLI callers that want the raw
// text (e.g. to echo it back alongside diagnostics).
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
