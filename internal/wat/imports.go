package wat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/astrixa-lang/astrixa/internal/ir"
	"github.com/astrixa-lang/astrixa/internal/registry"
)

// collectImports gathers the deduplicated set of external names
// referenced by any CallStd/CallAI/CallWeb3/CallFS/Panic instruction
// across mod. The order returned here is first-seen across functions
// in module order, but that order is not what makes output
// deterministic: importsSection sorts the names alphabetically before
// rendering, which is what guarantees two compiles of the same source
// produce byte-identical WAT regardless of instruction-scan order —
// a deterministic substitute for the original reference compiler's
// hash-set collection either way.
func collectImports(mod *ir.Module) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, fn := range mod.Functions {
		for _, in := range fn.Instructions {
			switch in.Op {
			case ir.OpCallStd, ir.OpCallAI, ir.OpCallWeb3, ir.OpCallFS:
				add(in.Name)
			case ir.OpPanic:
				add("panic")
			}
		}
	}
	return names
}

// importSignature renders the `(param ...) (result ...)` clause for an
// import from registry.Lookup, the same table lowering classifies call
// families against. Lowering does not check call arity against it. The
// fixed `panic` import is not part of the call-family registry (it is
// synthesized directly by Panic lowering) and gets its own signature.
func importSignature(name string) string {
	if name == "panic" {
		return "(param i32 i32)"
	}
	e, ok := registry.Lookup(name)
	if !ok {
		return "(param i32) (result i32)"
	}
	var b strings.Builder
	if e.Arity > 0 {
		b.WriteString("(param")
		for i := 0; i < e.Arity; i++ {
			b.WriteString(" i32")
		}
		b.WriteString(")")
	}
	if e.Result {
		if e.Arity > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("(result i32)")
	}
	return b.String()
}

func importsSection(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	var b strings.Builder
	for _, name := range sorted {
		sym := sanitize(name)
		fmt.Fprintf(&b, "  (import \"env\" %q (func $%s %s))\n", name, sym, importSignature(name))
	}
	return b.String()
}

// sanitize replaces dots with underscores so a module-qualified name is
// a valid WAT identifier; the original dotted name is preserved in
// exports.
func sanitize(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}
