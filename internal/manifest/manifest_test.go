package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRootLocatesAncestor(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[package]\nname=\"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindProjectRootMissingIsErrNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindProjectRoot(dir); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNewManifestDefaults(t *testing.T) {
	m := New("hello")
	if m.Package.Version != "0.1.0" || m.Package.License != "MIT" {
		t.Errorf("unexpected defaults: %+v", m.Package)
	}
	m.AddDependency("stdlib", "1.0.0")
	if m.Dependencies["stdlib"] != "1.0.0" {
		t.Error("expected AddDependency to record the dependency")
	}
}
