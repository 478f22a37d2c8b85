package optimize

import "github.com/astrixa-lang/astrixa/internal/ir"

const maxInlineInstrs = 5
const maxInlineParams = 5

// isInlineCandidate reports whether fn is small and simple enough to
// splice directly at its call sites.
func isInlineCandidate(fn *ir.Function) bool {
	if len(fn.Instructions) > maxInlineInstrs || fn.ParamCount > maxInlineParams {
		return false
	}
	if len(fn.Instructions) == 0 || fn.Instructions[len(fn.Instructions)-1].Op != ir.OpReturn {
		return false
	}
	returnCount := 0
	for i, in := range fn.Instructions {
		switch in.Op {
		case ir.OpJump, ir.OpJumpIfFalse, ir.OpCall, ir.OpCallStd, ir.OpCallAI:
			return false
		case ir.OpReturn:
			returnCount++
			if i != len(fn.Instructions)-1 {
				return false
			}
		}
	}
	return returnCount == 1
}

// InlineModule splices every inline-candidate function's body into its
// call sites across mod, then re-runs folding and DCE on every
// function to clean up newly exposed opportunities.
func InlineModule(mod *ir.Module) {
	candidates := make(map[string]*ir.Function)
	for _, fn := range mod.Functions {
		if isInlineCandidate(fn) {
			candidates[fn.Name] = fn
		}
	}
	if len(candidates) == 0 {
		return
	}

	for _, fn := range mod.Functions {
		inlineCalls(fn, candidates)
	}

	for _, fn := range mod.Functions {
		FoldConstants(fn)
		TruncateDeadCode(fn)
	}
}

// inlineCalls splices every inline-candidate call site in caller and
// retargets every Jump/JumpIfFalse to account for the length delta each
// splice introduces, the same way const_fold.go's retargetAfterFold
// does for folding: a position map from old index to new index is
// built during the splice, then every branch target is rewritten
// through it in one pass at the end.
func inlineCalls(caller *ir.Function, candidates map[string]*ir.Function) {
	old := caller.Instructions
	out := make([]ir.Instruction, 0, len(old))
	oldToNew := make([]int, len(old)+1)

	for i := 0; i < len(old); i++ {
		oldToNew[i] = len(out)
		in := old[i]
		if in.Op != ir.OpCall {
			out = append(out, in)
			continue
		}
		callee, ok := candidates[in.Name]
		if !ok || callee.ParamCount != in.ArgCount {
			out = append(out, in)
			continue
		}

		base := caller.LocalCount
		caller.LocalCount += callee.LocalCount

		// Pop argument values in reverse into the fresh slots.
		for slot := in.ArgCount - 1; slot >= 0; slot-- {
			out = append(out, ir.Instruction{Op: ir.OpStoreLocal, Slot: base + slot})
		}

		// Splice the candidate's body minus its final Return, rewriting
		// every local reference by +base.
		body := callee.Instructions[:len(callee.Instructions)-1]
		for _, bi := range body {
			rewritten := bi
			if bi.Op == ir.OpLoadLocal || bi.Op == ir.OpStoreLocal {
				rewritten.Slot = base + bi.Slot
			}
			out = append(out, rewritten)
		}
	}
	oldToNew[len(old)] = len(out)

	for k := range out {
		if out[k].Op == ir.OpJump || out[k].Op == ir.OpJumpIfFalse {
			out[k].Target = oldToNew[out[k].Target]
		}
	}

	caller.Instructions = out
}
