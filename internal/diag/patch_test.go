package diag

import (
	"strings"
	"testing"
)

func TestPatchFieldOverridesMessage(t *testing.T) {
	r := New(TypeUndefinedVar, PhaseType, "undefined variable 'x'", Span{Line: 3, Column: 5, File: "main.ax"})
	body, err := r.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	patched, err := PatchField(body, "message", "undefined variable 'y'")
	if err != nil {
		t.Fatalf("PatchField: %v", err)
	}
	if !strings.Contains(string(patched), "undefined variable 'y'") {
		t.Errorf("expected patched message in output, got:\n%s", patched)
	}

	msg, ok := Field(patched, "message")
	if !ok || msg != "undefined variable 'y'" {
		t.Errorf("Field(message) = %q, %v; want \"undefined variable 'y'\", true", msg, ok)
	}

	if _, ok := Field(patched, "data.missing"); ok {
		t.Errorf("expected absent field to report ok=false")
	}
}
