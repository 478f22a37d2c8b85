package compile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case describes a single end-to-end pipeline check: source text run
// through Run, with assertions on the resulting diagnostics and WAT
// output.
type Case struct {
	ID            string   `yaml:"id"`
	Description   string   `yaml:"description"`
	Source        string   `yaml:"source"`
	ExpectErrors  bool     `yaml:"expect_errors"`
	ErrorContains []string `yaml:"error_contains"`
	WATContains   []string `yaml:"wat_contains"`
	StopAfter     string   `yaml:"stop_after"`
}

// Suite is a YAML-described batch of Cases, grounded on the teacher's
// eval_harness benchmark-spec shape but scoped to this compiler's own
// phases instead of language-model evaluation.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// LoadSuite reads and parses a Suite from path.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse suite YAML: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("suite missing required field: name")
	}
	return &s, nil
}

// CaseResult is the outcome of running one Case.
type CaseResult struct {
	Case    Case
	Passed  bool
	Failure string
}

// Run executes every case in s and returns one CaseResult per case, in
// order.
func (s *Suite) Run() []CaseResult {
	results := make([]CaseResult, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, runCase(c))
	}
	return results
}

func runCase(c Case) CaseResult {
	res, _ := Run(Config{StopAfter: c.StopAfter}, Source{Code: c.Source})

	if c.ExpectErrors && len(res.Errors) == 0 {
		return CaseResult{Case: c, Failure: "expected errors but got none"}
	}
	if !c.ExpectErrors && len(res.Errors) > 0 {
		return CaseResult{Case: c, Failure: fmt.Sprintf("unexpected errors: %v", res.Errors)}
	}
	for _, want := range c.ErrorContains {
		if !anyErrorContains(res.Errors, want) {
			return CaseResult{Case: c, Failure: fmt.Sprintf("no error contains %q", want)}
		}
	}
	for _, want := range c.WATContains {
		if !strings.Contains(res.WAT, want) {
			return CaseResult{Case: c, Failure: fmt.Sprintf("WAT does not contain %q", want)}
		}
	}
	return CaseResult{Case: c, Passed: true}
}

func anyErrorContains(errs []error, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Error(), substr) {
			return true
		}
	}
	return false
}
