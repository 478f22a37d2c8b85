package cmd

import (
	"fmt"
	"strings"

	"github.com/astrixa-lang/astrixa/internal/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Generate reference documentation",
}

// categoryFilter is a pflag.Value restricting `doc stdlib` to one
// registry.Category, or "all" (the default) for every category.
type categoryFilter struct {
	value string
}

func (f *categoryFilter) String() string { return f.value }

func (f *categoryFilter) Set(s string) error {
	switch registry.Category(s) {
	case registry.CategoryCore, registry.CategoryMath, registry.CategoryTime,
		registry.CategoryCrypto, registry.CategoryAI, registry.CategoryWeb3, registry.CategoryFS:
		f.value = s
		return nil
	case "all":
		f.value = "all"
		return nil
	default:
		return fmt.Errorf("unknown category %q (core, math, time, crypto, ai, web3, fs, or all)", s)
	}
}

func (f *categoryFilter) Type() string { return "category" }

var docStdlibFilter = &categoryFilter{value: "all"}

var docStdlibCmd = &cobra.Command{
	Use:   "stdlib",
	Short: "Print the stdlib/AI/Web3/FS import reference",
	RunE: func(_ *cobra.Command, _ []string) error {
		full := registry.Docs()
		if docStdlibFilter.value == "all" {
			fmt.Print(full)
			return nil
		}
		fmt.Print(sectionFor(full, docStdlibFilter.value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.AddCommand(docStdlibCmd)
	docStdlibCmd.Flags().Var(docStdlibFilter, "category", "restrict output to one category (core, math, time, crypto, ai, web3, fs, all)")
}

var _ pflag.Value = (*categoryFilter)(nil)

// sectionFor extracts the "## CATEGORY" block matching category from a
// Docs() rendering; Docs groups entries by category with a blank line
// between sections.
func sectionFor(full, category string) string {
	heading := "## " + strings.ToUpper(category)
	start := strings.Index(full, heading)
	if start < 0 {
		return ""
	}
	rest := full[start:]
	if end := strings.Index(rest[1:], "\n## "); end >= 0 {
		return rest[:end+1]
	}
	return rest
}
