package compile

import (
	"strings"
	"testing"
)

func TestRunFullPipelineProducesWAT(t *testing.T) {
	res, err := Run(Config{}, Source{Code: "fn main { let x = 2 + 3 * 4 return x }"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if !strings.Contains(res.WAT, "i32.const 14") {
		t.Errorf("expected folded constant in WAT, got:\n%s", res.WAT)
	}
}

func TestRunStopsAfterCheck(t *testing.T) {
	res, err := Run(Config{StopAfter: "check"}, Source{Code: "fn f(n) { return n + 1 }"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Module != nil {
		t.Error("expected lowering to be skipped when StopAfter is \"check\"")
	}
	if res.Signatures["f"] == nil {
		t.Fatal("expected a registered signature for f")
	}
}

func TestRunCollectsTypeErrors(t *testing.T) {
	res, err := Run(Config{}, Source{Code: `
		fn bad(n) {
			if n > 0 { return 1 } else { return "nope" }
		}
	`})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected an inconsistent-return-type error")
	}
}

func TestRunAbortsOnParseError(t *testing.T) {
	res, err := Run(Config{}, Source{Code: "fn f { let x = }"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected a parse error")
	}
	if res.Module != nil {
		t.Error("expected lowering to be skipped after a parse error")
	}
}
