// Package module resolves astrixa import names to parsed source units,
// caching each file's AST and refusing import cycles.
package module

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/diag"
	"github.com/astrixa-lang/astrixa/internal/lexer"
	"github.com/astrixa-lang/astrixa/internal/parser"
)

// Module is one loaded source unit.
type Module struct {
	Name     string
	FilePath string
	File     *ast.File
	Imports  []string
}

// Loader resolves `<name>.ax` files across a configured search path
// list, parsing each at most once.
type Loader struct {
	searchPaths []string

	mu        sync.RWMutex
	cache     map[string]*Module
	loadStack []string // names inside the current Load; Load does not follow imports, so Flatten detects import cycles
}

// New creates a Loader with the default search paths (".", "./stdlib")
// augmented by extra.
func New(extra ...string) *Loader {
	paths := append([]string{".", "./stdlib"}, extra...)
	return &Loader{searchPaths: paths, cache: make(map[string]*Module)}
}

// Load resolves name to a cached or freshly parsed Module.
func (l *Loader) Load(name string) (*Module, error) {
	l.mu.RLock()
	if m, ok := l.cache[name]; ok {
		l.mu.RUnlock()
		return m, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check under the write lock: another goroutine may have loaded
	// it first (first writer wins).
	if m, ok := l.cache[name]; ok {
		return m, nil
	}

	if err := l.checkCycle(name); err != nil {
		return nil, err
	}

	l.loadStack = append(l.loadStack, name)
	defer func() { l.loadStack = l.loadStack[:len(l.loadStack)-1] }()

	path, err := l.resolvePath(name)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Wrap(diag.New(diag.ModuleReadFail, diag.PhaseModule,
			"failed to read module \""+name+"\": "+err.Error(), diag.Span{File: path}))
	}

	p := parser.New(lexer.New(string(src), path))
	prog := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, diag.Wrap(diag.New(diag.ModuleParse, diag.PhaseModule,
			"parse error in module \""+name+"\": "+errs[0].Error(), diag.Span{File: path}))
	}

	m := &Module{Name: name, FilePath: path, File: prog.File, Imports: prog.File.Imports()}
	l.cache[name] = m
	return m, nil
}

func (l *Loader) resolvePath(name string) (string, error) {
	for _, dir := range l.searchPaths {
		candidate := filepath.Join(dir, name+".ax")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", diag.Wrap(diag.New(diag.ModuleNotFound, diag.PhaseModule,
		"module \""+name+"\" not found", diag.Span{}).
		WithFix("searched: " + strings.Join(l.searchPaths, ", ")))
}

// checkCycle reports a ModuleCycle error naming the full import chain
// if name is already on the current load stack.
func (l *Loader) checkCycle(name string) error {
	for _, inProgress := range l.loadStack {
		if inProgress == name {
			chain := append(append([]string{}, l.loadStack...), name)
			return diag.Wrap(diag.New(diag.ModuleCycle, diag.PhaseModule,
				"import cycle: "+strings.Join(chain, " -> "), diag.Span{}).
				WithFix("remove one of the imports in this cycle"))
		}
	}
	return nil
}
