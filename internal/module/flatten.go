package module

import (
	"strings"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/diag"
)

// Flatten loads root and every module it transitively imports, then
// returns their statements concatenated in dependency order: each
// imported module's statements precede the importer's. The loader's
// cache parses each `.ax` file once, and a visited set makes each
// module contribute its statements exactly once even if imported from
// several places. An import cycle (including a self-import) is refused
// with a ModuleCycle error naming the chain.
func Flatten(l *Loader, root string) ([]ast.Stmt, error) {
	visited := make(map[string]bool)
	var order []*Module
	var chain []string // modules whose imports are being visited

	var visit func(name string) error
	visit = func(name string) error {
		for _, inProgress := range chain {
			if inProgress == name {
				return diag.Wrap(diag.New(diag.ModuleCycle, diag.PhaseModule,
					"import cycle: "+strings.Join(append(append([]string{}, chain...), name), " -> "), diag.Span{}).
					WithFix("remove one of the imports in this cycle"))
			}
		}
		m, err := l.Load(name)
		if err != nil {
			return err
		}
		if visited[m.Name] {
			return nil
		}
		visited[m.Name] = true
		chain = append(chain, name)
		for _, dep := range m.Imports {
			if err := visit(dep); err != nil {
				return err
			}
		}
		chain = chain[:len(chain)-1]
		order = append(order, m)
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for _, m := range order {
		stmts = append(stmts, m.File.Statements...)
	}
	return stmts, nil
}
