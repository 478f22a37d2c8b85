package compile

import (
	"os"
	"testing"
)

func TestSuiteBasicsAllPass(t *testing.T) {
	s, err := LoadSuite("testdata/basics.yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range s.Run() {
		if !r.Passed {
			t.Errorf("case %q failed: %s", r.Case.ID, r.Failure)
		}
	}
}

func TestLoadSuiteMissingNameIsError(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.yaml"
	if err := os.WriteFile(path, []byte("cases: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSuite(path); err == nil {
		t.Fatal("expected an error for a suite with no name")
	}
}
