// Package wat emits WebAssembly Text from a lowered, optimized IR
// module: a memory export, a data section of interned strings, import
// declarations synthesized from the call-family registry, and sanitized
// function definitions.
package wat

import (
	"fmt"
	"strings"

	"github.com/astrixa-lang/astrixa/internal/ir"
)

// stringArena assigns every distinct string referenced by
// LoadConstString a stable (ptr, len) pair in a single, module-wide
// linear arena.
//
// The original reference compiler builds the data section from a
// module-scoped allocator but re-interns strings per function using a
// second allocator that restarts its offset at 0 — two functions
// referencing the same string get different (and, for the second
// function, wrong) pointers, silently violating invariant I4 ("the set
// of strings referenced by LoadConstString equals the set of strings
// placed in the data section"). This port uses one module-level arena
// consulted by both the data section and every function's
// LoadConstString lowering, which is the only way to satisfy I4 when a
// string is shared across functions.
type stringArena struct {
	offsets map[string]int
	order   []string
	next    int
}

func newStringArena() *stringArena {
	return &stringArena{offsets: make(map[string]int)}
}

func (a *stringArena) intern(s string) (ptr, length int) {
	if ptr, ok := a.offsets[s]; ok {
		return ptr, len(s)
	}
	ptr = a.next
	a.offsets[s] = ptr
	a.order = append(a.order, s)
	a.next += len(s)
	return ptr, len(s)
}

func (a *stringArena) collect(mod *ir.Module) {
	for _, fn := range mod.Functions {
		for _, in := range fn.Instructions {
			if in.Op == ir.OpLoadConstString {
				a.intern(in.StrVal)
			}
		}
	}
}

// dataSection renders the `(data ...)` declarations in interning order.
func (a *stringArena) dataSection() string {
	var b strings.Builder
	for _, s := range a.order {
		ptr := a.offsets[s]
		fmt.Fprintf(&b, "  (data (i32.const %d) \"%s\")\n", ptr, escapeWAT(s))
	}
	return b.String()
}

// escapeWAT renders s using WAT string escape rules: `\"` `\\` `\n`
// `\r` `\t` verbatim-escaped, printable ASCII passed through, and any
// other byte as `\xx` hex.
func escapeWAT(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				fmt.Fprintf(&b, `\%02x`, c)
			}
		}
	}
	return b.String()
}
