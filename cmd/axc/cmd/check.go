package cmd

import (
	"fmt"
	"strings"

	"github.com/astrixa-lang/astrixa/internal/compile"
	"github.com/astrixa-lang/astrixa/internal/diag"
	"github.com/spf13/cobra"
)

var (
	checkEval  string
	checkWatch bool
	checkJSON  bool
	checkSet   []string
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check an astrixa file or expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEval, "eval", "e", "", "check inline source instead of reading a file")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "re-check interactively as source is retyped")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print diagnostics as JSON reports instead of text")
	checkCmd.Flags().StringArrayVar(&checkSet, "set", nil, "patch a field=value into each JSON report (implies --json)")
}

func runCheck(_ *cobra.Command, args []string) error {
	if checkWatch {
		return runWatch()
	}

	src, filename, err := readInput(checkEval, args)
	if err != nil {
		return err
	}
	return checkAndReport(src, filename)
}

// checkAndReport runs the pipeline through the type-check phase and
// prints either a signature summary or every collected diagnostic.
func checkAndReport(src, filename string) error {
	res, err := compile.Run(compile.Config{StopAfter: "check"}, compile.Source{Code: src})
	if err != nil {
		return err
	}
	if len(res.Errors) == 0 {
		fmt.Println(green(fmt.Sprintf("%s: no errors", filename)))
		for name, sig := range res.Signatures {
			fmt.Printf("  %s -> %s\n", bold(name), sig.Return.String())
		}
		return nil
	}

	for _, e := range res.Errors {
		r, ok := diag.AsReport(e)
		if !ok {
			fmt.Println(red(e.Error()))
			continue
		}
		if checkJSON || len(checkSet) > 0 {
			out, jerr := patchedReportJSON(r, checkSet)
			if jerr != nil {
				return jerr
			}
			fmt.Println(string(out))
			continue
		}
		fmt.Println(red(r.Diagnostic().String()))
	}
	return fmt.Errorf("%d error(s)", len(res.Errors))
}

// patchedReportJSON renders r as JSON, applying each "field=value"
// override in sets via diag.PatchField before printing.
func patchedReportJSON(r *diag.Report, sets []string) ([]byte, error) {
	out, err := r.ToJSON()
	if err != nil {
		return nil, err
	}
	for _, kv := range sets {
		field, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("--set expects field=value, got %q", kv)
		}
		out, err = diag.PatchField(out, field, value)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
