package optimize

import "github.com/astrixa-lang/astrixa/internal/ir"

// Function runs constant folding then dead-code truncation on a single
// function, in place.
func Function(fn *ir.Function) {
	FoldConstants(fn)
	TruncateDeadCode(fn)
}

// Module runs the full three-pass pipeline over mod: fold + DCE per
// function, then module-wide inlining (which itself re-runs fold + DCE
// on every function to clean up newly exposed opportunities).
func Module(mod *ir.Module) {
	for _, fn := range mod.Functions {
		Function(fn)
	}
	InlineModule(mod)
}
