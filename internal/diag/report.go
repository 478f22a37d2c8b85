package diag

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Span locates a diagnostic in source text.
type Span struct {
	Line   int
	Column int
	File   string
}

// Report is the structured, machine-consumable form of a diagnostic.
type Report struct {
	Schema  string         `json:"schema"`
	Code    Code           `json:"code"`
	Phase   Phase          `json:"phase"`
	Message string         `json:"message"`
	Span    Span           `json:"span"`
	Data    map[string]any `json:"data,omitempty"`
	Fix     string         `json:"fix,omitempty"`
}

const schemaVersion = "astrixa.diag/v1"

// New constructs a Report with the fixed schema tag.
func New(code Code, phase Phase, message string, span Span) *Report {
	return &Report{Schema: schemaVersion, Code: code, Phase: phase, Message: message, Span: span}
}

// WithFix attaches a one-line suggested fix and returns the receiver.
func (r *Report) WithFix(fix string) *Report {
	r.Fix = fix
	return r
}

// WithData attaches a key/value to the report's structured payload.
func (r *Report) WithData(key string, value any) *Report {
	if r.Data == nil {
		r.Data = make(map[string]any)
	}
	r.Data[key] = value
	return r
}

func (r *Report) Error() string {
	return r.Diagnostic().String()
}

// ToJSON renders the report with deterministic key ordering.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Diagnostic projects a Report onto the public {message,line,column,help?}
// shape described by the language spec.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
	Help    string
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("Error: %s\n → line %d, column %d", d.Message, d.Line, d.Column)
	if d.Help != "" {
		s += "\n" + d.Help
	}
	return s
}

// Diagnostic converts a Report to its public projection.
func (r *Report) Diagnostic() Diagnostic {
	return Diagnostic{Message: r.Message, Line: r.Span.Line, Column: r.Span.Column, Help: r.Fix}
}

// ReportError wraps a *Report so it satisfies the error interface while
// remaining recoverable with errors.As.
type ReportError struct {
	*Report
}

func (e *ReportError) Error() string { return e.Report.Error() }

func (e *ReportError) Unwrap() error { return nil }

// AsReport extracts the *Report carried by err, if any.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Report, true
	}
	var r *Report
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// Wrap turns a Report into an error value.
func Wrap(r *Report) error {
	return &ReportError{Report: r}
}
