package cmd

import (
	"fmt"
	"os"

	"github.com/astrixa-lang/astrixa/internal/lexer"
	"github.com/astrixa-lang/astrixa/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval       string
	lexShowPos    bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an astrixa file or expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(src, filename)
	count := 0
	for {
		tok := l.NextToken()
		if lexOnlyErrors && tok.Type != token.ILLEGAL {
			if tok.Type == token.EOF {
				break
			}
			continue
		}
		count++
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s %s @%d:%d\n", red("lex error:"), e.Message, e.Line, e.Column)
		}
		return fmt.Errorf("%d lex error(s)", len(errs))
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-10s]", tok.Type.String())
	if tok.Literal != "" {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Line, tok.Column)
	}
	fmt.Println(out)
}

func readInput(eval string, args []string) (src, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(b), args[0], nil
	}
	return "", "", fmt.Errorf("provide a file path or use -e for inline source")
}
