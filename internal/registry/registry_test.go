package registry

import "testing"

func TestClassifyFamilies(t *testing.T) {
	cases := map[string]Family{
		"print_str":   FamilyStd,
		"ai_generate": FamilyAI,
		"web3_wallet": FamilyWeb3,
		"fs.read":     FamilyFS,
	}
	for name, want := range cases {
		got, ok := Classify(name)
		if !ok || got != want {
			t.Errorf("Classify(%q) = %s, %v; want %s", name, got, ok, want)
		}
	}
}

func TestUnknownName(t *testing.T) {
	if _, ok := Classify("not_a_builtin"); ok {
		t.Error("expected unknown name to be unclassified")
	}
}

func TestPredicates(t *testing.T) {
	if !IsFS("fs.write") || IsWeb3("fs.write") || IsAI("fs.write") || IsStdlib("fs.write") {
		t.Error("fs.write should classify only as FS")
	}
}

func TestDocsNonEmpty(t *testing.T) {
	if Docs() == "" {
		t.Error("expected non-empty docs")
	}
}
