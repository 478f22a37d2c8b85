package cmd

import (
	"fmt"
	"os"

	"github.com/astrixa-lang/astrixa/internal/compile"
	"github.com/astrixa-lang/astrixa/internal/diag"
	"github.com/spf13/cobra"
)

var (
	buildOut          string
	buildSkipOptimize bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file.ax>",
	Short: "Compile an astrixa module to WAT",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "write WAT to this file instead of stdout")
	buildCmd.Flags().BoolVar(&buildSkipOptimize, "no-optimize", false, "skip constant folding, DCE, and inlining")
}

func runBuild(_ *cobra.Command, args []string) error {
	res, err := compile.Run(compile.Config{SkipOptimize: buildSkipOptimize}, compile.Source{Path: args[0]})
	if err != nil {
		return err
	}
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			if r, ok := diag.AsReport(e); ok {
				fmt.Fprintln(os.Stderr, red(r.Diagnostic().String()))
			} else {
				fmt.Fprintln(os.Stderr, red(e.Error()))
			}
		}
		return fmt.Errorf("%d error(s), build aborted", len(res.Errors))
	}

	if buildOut == "" {
		fmt.Print(res.WAT)
		return nil
	}
	if err := os.WriteFile(buildOut, []byte(res.WAT), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", buildOut, err)
	}
	fmt.Println(green("wrote " + buildOut))
	return nil
}
