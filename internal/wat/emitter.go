package wat

import (
	"fmt"
	"strings"

	"github.com/astrixa-lang/astrixa/internal/ir"
	"github.com/astrixa-lang/astrixa/internal/registry"
)

// EmitModule renders a complete WAT text module for mod: header, memory
// export, interned-string data section, imports synthesized from the
// call-family registry, and one function definition per ir.Function.
func EmitModule(mod *ir.Module) string {
	arena := newStringArena()
	arena.collect(mod)
	imports := collectImports(mod)

	var b strings.Builder
	b.WriteString("(module\n")
	b.WriteString("  (memory (export \"memory\") 1)\n")
	b.WriteString(importsSection(imports))
	b.WriteString(arena.dataSection())
	for _, fn := range mod.Functions {
		b.WriteString(EmitFunction(fn, arena))
	}
	b.WriteString(")\n")
	return b.String()
}

// EmitFunction renders a single function definition followed by its
// export, given an arena already populated with every string constant
// in the owning module. Every function is exported under its original
// name. It mirrors the original compiler's generate_wat test seam; the
// arena type is package-private, so only code inside this package can
// call it.
func EmitFunction(fn *ir.Function, arena *stringArena) string {
	sym := sanitize(fn.Name)
	var b strings.Builder

	fmt.Fprintf(&b, "  (func $%s", sym)
	for i := 0; i < fn.ParamCount; i++ {
		fmt.Fprintf(&b, " (param $p%d i32)", i)
	}
	b.WriteString(" (result i32)\n")

	if fn.LocalCount > fn.ParamCount {
		b.WriteString("    (local")
		for i := fn.ParamCount; i < fn.LocalCount; i++ {
			b.WriteString(" i32")
		}
		b.WriteString(")\n")
	}

	for _, in := range fn.Instructions {
		emitInstruction(&b, in, arena)
	}

	b.WriteString("  )\n")
	fmt.Fprintf(&b, "  (export %q (func $%s))\n", fn.Name, sym)
	return b.String()
}

var binOpText = map[ir.Op]string{
	ir.OpAdd: "i32.add",
	ir.OpSub: "i32.sub",
	ir.OpMul: "i32.mul",
	ir.OpDiv: "i32.div_s",
	ir.OpMod: "i32.rem_s",
	ir.OpEq:  "i32.eq",
	ir.OpNe:  "i32.ne",
	ir.OpLt:  "i32.lt_s",
	ir.OpLe:  "i32.le_s",
	ir.OpGt:  "i32.gt_s",
	ir.OpGe:  "i32.ge_s",
	ir.OpAnd: "i32.and",
	ir.OpOr:  "i32.or",
}

// emitInstruction appends the WAT text for a single IR instruction. The
// ABI is uniformly i32: floats are reinterpreted via i32.reinterpret_f32
// at the boundary rather than widening locals to f32, keeping every
// local and stack slot one word, as spec §4.7 lays out for this ABI.
func emitInstruction(b *strings.Builder, in ir.Instruction, arena *stringArena) {
	switch in.Op {
	case ir.OpLoadConstInt:
		fmt.Fprintf(b, "    i32.const %d\n", in.IntVal)

	case ir.OpLoadConstFloat:
		fmt.Fprintf(b, "    f32.const %g\n", in.FloatVal)
		b.WriteString("    i32.reinterpret_f32\n")

	case ir.OpLoadConstBool:
		v := 0
		if in.BoolVal {
			v = 1
		}
		fmt.Fprintf(b, "    i32.const %d\n", v)

	case ir.OpLoadConstString:
		ptr, length := arena.intern(in.StrVal)
		fmt.Fprintf(b, "    i32.const %d\n", ptr)
		fmt.Fprintf(b, "    i32.const %d\n", length)

	case ir.OpLoadLocal:
		fmt.Fprintf(b, "    local.get %d\n", in.Slot)

	case ir.OpStoreLocal:
		fmt.Fprintf(b, "    local.set %d\n", in.Slot)

	case ir.OpLoadVar:
		fmt.Fprintf(b, "    global.get $%s\n", sanitize(in.Name))

	case ir.OpStoreVar:
		fmt.Fprintf(b, "    global.set $%s\n", sanitize(in.Name))

	case ir.OpNot:
		b.WriteString("    i32.eqz\n")

	case ir.OpAdd, ir.OpSub, ir.OpMul, ir.OpDiv, ir.OpMod,
		ir.OpEq, ir.OpNe, ir.OpLt, ir.OpLe, ir.OpGt, ir.OpGe,
		ir.OpAnd, ir.OpOr:
		fmt.Fprintf(b, "    %s\n", binOpText[in.Op])

	case ir.OpJump:
		fmt.Fprintf(b, "    br %d\n", in.Target)

	case ir.OpJumpIfFalse:
		fmt.Fprintf(b, "    i32.eqz\n    br_if %d\n", in.Target)

	case ir.OpCall:
		fmt.Fprintf(b, "    call $%s\n", sanitize(in.Name))

	case ir.OpCallStd, ir.OpCallAI, ir.OpCallWeb3, ir.OpCallFS:
		fmt.Fprintf(b, "    call $%s\n", sanitize(in.Name))
		// Void imports leave nothing on the stack to drop.
		if e, ok := registry.Lookup(in.Name); in.Discard && (!ok || e.Result) {
			b.WriteString("    drop\n")
		}

	case ir.OpReturn:
		b.WriteString("    return\n")

	case ir.OpPanic:
		b.WriteString("    call $panic\n")
		b.WriteString("    unreachable\n")

	case ir.OpPop:
		b.WriteString("    drop\n")

	case ir.OpDup:
		b.WriteString("    ;; dup unsupported on the value stack; callers must re-derive\n")

	case ir.OpNop:
		// no-op, nothing to emit

	default:
		fmt.Fprintf(b, "    ;; unhandled op %d\n", in.Op)
	}

	if in.Discard && in.Op == ir.OpCall {
		b.WriteString("    drop\n")
	}
}
