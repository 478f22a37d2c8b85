// Package registry is the single source of truth for the stdlib, AI,
// Web3, and filesystem call families recognized during lowering and
// consulted again during WAT import synthesis.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Family names a disjoint call-classification bucket.
type Family string

const (
	FamilyStd  Family = "std"
	FamilyAI   Family = "ai"
	FamilyWeb3 Family = "web3"
	FamilyFS   Family = "fs"
)

// Category groups entries for documentation purposes.
type Category string

const (
	CategoryCore   Category = "core"
	CategoryMath   Category = "math"
	CategoryTime   Category = "time"
	CategoryCrypto Category = "crypto"
	CategoryAI     Category = "ai"
	CategoryWeb3   Category = "web3"
	CategoryFS     Category = "fs"
)

// Param is a WAT value type, always i32 in this ABI (pointers, lengths,
// handles, and scalar ints all fit in one word).
const Param = "i32"

// Entry describes one externally-provided function: its classification
// family, its fixed WAT import arity, and whether it returns a value.
type Entry struct {
	Name     string
	Family   Family
	Category Category
	Arity    int
	Result   bool // true if the import returns one i32
}

var entries = map[string]Entry{}
var order []string

func register(name string, fam Family, cat Category, arity int, result bool) {
	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: duplicate entry %q", name))
	}
	entries[name] = Entry{Name: name, Family: fam, Category: cat, Arity: arity, Result: result}
	order = append(order, name)
}

func init() {
	// Core
	register("print_str", FamilyStd, CategoryCore, 2, false)
	register("println_str", FamilyStd, CategoryCore, 2, false)
	register("input", FamilyStd, CategoryCore, 0, true)
	register("len", FamilyStd, CategoryCore, 1, true)
	register("exit", FamilyStd, CategoryCore, 1, false)

	// Math
	register("abs", FamilyStd, CategoryMath, 1, true)
	register("pow", FamilyStd, CategoryMath, 2, true)
	register("sqrt", FamilyStd, CategoryMath, 1, true)
	register("min", FamilyStd, CategoryMath, 2, true)
	register("max", FamilyStd, CategoryMath, 2, true)
	register("rand", FamilyStd, CategoryMath, 0, true)

	// Time
	register("time", FamilyStd, CategoryTime, 0, true)
	register("sleep", FamilyStd, CategoryTime, 1, false)

	// Crypto
	register("hash", FamilyStd, CategoryCrypto, 2, true)
	register("keccak", FamilyStd, CategoryCrypto, 2, true)
	register("sha256", FamilyStd, CategoryCrypto, 2, true)

	// AI
	register("ai_generate", FamilyAI, CategoryAI, 2, true)
	register("ai_embed", FamilyAI, CategoryAI, 2, true)
	register("ai_classify", FamilyAI, CategoryAI, 2, true)

	// Web3
	register("web3_wallet", FamilyWeb3, CategoryWeb3, 0, true)
	register("web3_sign", FamilyWeb3, CategoryWeb3, 2, true)
	register("web3_keccak", FamilyWeb3, CategoryWeb3, 2, true)
	register("web3_balance", FamilyWeb3, CategoryWeb3, 1, true)
	register("web3_send", FamilyWeb3, CategoryWeb3, 2, true)
	register("web3_verify", FamilyWeb3, CategoryWeb3, 4, true)

	// FS — defined here per DESIGN.md Open Question 3 resolution; the
	// original reference implementation calls is_fs_function but never
	// defines it.
	register("fs.read", FamilyFS, CategoryFS, 2, true)
	register("fs.write", FamilyFS, CategoryFS, 4, true)
	register("fs.exists", FamilyFS, CategoryFS, 2, true)
	register("fs.delete", FamilyFS, CategoryFS, 2, true)

	sort.Strings(order)
}

// Lookup resolves name to its registry Entry.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// Classify returns the call family for name. Each name is registered in
// exactly one family (register panics on duplicates), so a single lookup
// decides it and no ordering between families arises.
func Classify(name string) (Family, bool) {
	e, ok := entries[name]
	if !ok {
		return "", false
	}
	return e.Family, true
}

// IsFS, IsWeb3, IsAI, IsStdlib test membership in a specific family.
func IsFS(name string) bool    { return familyIs(name, FamilyFS) }
func IsWeb3(name string) bool  { return familyIs(name, FamilyWeb3) }
func IsAI(name string) bool    { return familyIs(name, FamilyAI) }
func IsStdlib(name string) bool { return familyIs(name, FamilyStd) }

func familyIs(name string, f Family) bool {
	e, ok := entries[name]
	return ok && e.Family == f
}

// Names returns every registered name in sorted order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Docs renders a Markdown reference of every registered import, grouped
// by category, mirroring the original compiler's stdlib doc generator.
func Docs() string {
	var b strings.Builder
	byCat := map[Category][]Entry{}
	for _, name := range order {
		e := entries[name]
		byCat[e.Category] = append(byCat[e.Category], e)
	}
	cats := []Category{CategoryCore, CategoryMath, CategoryTime, CategoryCrypto, CategoryAI, CategoryWeb3, CategoryFS}
	for _, cat := range cats {
		es := byCat[cat]
		if len(es) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", strings.ToUpper(string(cat)))
		for _, e := range es {
			res := "()"
			if e.Result {
				res = "(i32)"
			}
			fmt.Fprintf(&b, "- `%s` — %d arg(s) -> %s\n", e.Name, e.Arity, res)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
