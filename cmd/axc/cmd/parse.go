package cmd

import (
	"fmt"
	"os"

	"github.com/astrixa-lang/astrixa/internal/ast"
	"github.com/astrixa-lang/astrixa/internal/lexer"
	"github.com/astrixa-lang/astrixa/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an astrixa file or expression and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading a file")
}

func runParse(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(parseEval, args)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(src, filename))
	prog := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s %s\n", red("parse error:"), e.Error())
		}
		return fmt.Errorf("%d parse error(s)", len(errs))
	}

	fmt.Print(ast.PrintProgram(prog))
	return nil
}
