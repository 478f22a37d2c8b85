package diag

import "testing"

func TestDiagnosticString(t *testing.T) {
	r := New(TypeMismatch, PhaseType, "cannot assign Float to Int", Span{Line: 4, Column: 9}).
		WithFix("convert the value with an explicit cast")
	got := r.Diagnostic().String()
	want := "Error: cannot assign Float to Int\n → line 4, column 9\nconvert the value with an explicit cast"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestAsReport(t *testing.T) {
	r := New(ModuleCycle, PhaseModule, "import cycle: a -> b -> a", Span{})
	err := Wrap(r)
	got, ok := AsReport(err)
	if !ok || got.Code != ModuleCycle {
		t.Fatalf("AsReport failed to recover report: %v %v", got, ok)
	}
}

func TestPatchAndField(t *testing.T) {
	r := New(TypeMismatch, PhaseType, "bad", Span{Line: 1, Column: 1})
	raw, err := r.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	patched, err := PatchField(raw, "message", "patched message")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := Field(patched, "message")
	if !ok || got != "patched message" {
		t.Fatalf("Field returned %q, %v", got, ok)
	}
}
