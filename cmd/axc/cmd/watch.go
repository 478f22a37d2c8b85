package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// runWatch runs an interactive check loop: each line (or ":file <path>"
// command) is re-checked immediately and the result printed, without
// restarting the process. Grounded on the teacher's REPL loop, but
// scoped to re-checking instead of evaluating.
func runWatch() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	historyFile := filepath.Join(os.TempDir(), ".axc_check_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println(bold("axc check --watch"))
	fmt.Println("Type astrixa source and press Enter to check it.")
	fmt.Println("Use :file <path> to check a file, :quit to exit.")
	fmt.Println()

	for {
		input, err := line.Prompt(cyan("check> "))
		if err == io.EOF {
			fmt.Println(green("Goodbye!"))
			return nil
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red("input error:"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == ":quit" || input == ":q" {
			fmt.Println(green("Goodbye!"))
			return nil
		}
		if strings.HasPrefix(input, ":file ") {
			path := strings.TrimSpace(strings.TrimPrefix(input, ":file "))
			b, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, red("error:"), err)
				continue
			}
			_ = checkAndReport(string(b), path)
			continue
		}

		_ = checkAndReport(input, "<watch>")
	}
}
