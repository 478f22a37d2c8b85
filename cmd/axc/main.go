// Command axc is the astrixa compiler CLI: lex/parse/check/build
// subcommands plus a stdlib doc generator and a watch-mode REPL loop
// over internal/compile.
package main

import (
	"fmt"
	"os"

	"github.com/astrixa-lang/astrixa/cmd/axc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
