package cmd

import (
	"strings"
	"testing"

	"github.com/astrixa-lang/astrixa/internal/diag"
)

func TestPatchedReportJSONAppliesSetOverrides(t *testing.T) {
	r := diag.New(diag.TypeUndefinedVar, diag.PhaseType, "undefined variable 'x'", diag.Span{Line: 1, Column: 1})
	out, err := patchedReportJSON(r, []string{"message=patched"})
	if err != nil {
		t.Fatalf("patchedReportJSON: %v", err)
	}
	if !strings.Contains(string(out), "patched") {
		t.Errorf("expected patched message in output, got:\n%s", out)
	}
}

func TestPatchedReportJSONRejectsMalformedSet(t *testing.T) {
	r := diag.New(diag.TypeUndefinedVar, diag.PhaseType, "undefined variable 'x'", diag.Span{Line: 1, Column: 1})
	if _, err := patchedReportJSON(r, []string{"no-equals-sign"}); err == nil {
		t.Fatal("expected an error for a malformed --set value")
	}
}
