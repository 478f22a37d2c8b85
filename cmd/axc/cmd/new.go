package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/astrixa-lang/astrixa/internal/manifest"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new astrixa project",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	name := args[0]
	fmt.Println(bold(green(fmt.Sprintf("Creating new astrixa project '%s'", name))))

	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	if err := os.MkdirAll(filepath.Join(name, "src"), 0755); err != nil {
		return err
	}

	m := manifest.New(name)
	if err := os.WriteFile(filepath.Join(name, manifest.FileName), []byte(renderManifest(m)), 0644); err != nil {
		return err
	}
	fmt.Println("  " + green("created") + " " + manifest.FileName)

	mainAx := "fn main {\n  println_str(\"hello, astrixa\")\n  return 0\n}\n"
	if err := os.WriteFile(filepath.Join(name, "src", "main.ax"), []byte(mainAx), 0644); err != nil {
		return err
	}
	fmt.Println("  " + green("created") + " src/main.ax")

	return nil
}

// renderManifest formats m as the fixed astrixa.toml layout. Only
// writing (never parsing) this format is this package's concern, per
// DESIGN.md's manifest entry.
func renderManifest(m *manifest.Manifest) string {
	s := "[package]\n"
	s += fmt.Sprintf("name = %q\n", m.Package.Name)
	s += fmt.Sprintf("version = %q\n", m.Package.Version)
	if m.Package.License != "" {
		s += fmt.Sprintf("license = %q\n", m.Package.License)
	}
	s += "\n[dependencies]\n"
	for dep, ver := range m.Dependencies {
		s += fmt.Sprintf("%s = %q\n", dep, ver)
	}
	return s
}
