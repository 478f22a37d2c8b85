// Package diag implements astrixa's structured diagnostics: values, not
// control flow, carrying a stable error code alongside the user-facing
// message/line/column/help shape.
package diag

// Code identifies the class of a diagnostic in a stable, greppable form.
type Code string

const (
	// Lex errors
	LexUnterminatedString Code = "LEX001"
	LexUnexpectedChar     Code = "LEX002"

	// Parse errors
	ParseUnexpectedToken Code = "PAR001"
	ParseMissingDelim    Code = "PAR002"
	ParseMissingName     Code = "PAR003"
	ParseUnexpectedKw    Code = "PAR004"

	// Module/loader errors
	ModuleNotFound Code = "MOD001"
	ModuleReadFail Code = "MOD002"
	ModuleCycle    Code = "MOD003"
	ModuleParse    Code = "MOD004"

	// Type errors
	TypeUndefinedVar      Code = "TC001"
	TypeArityMismatch     Code = "TC002"
	TypeMismatch          Code = "TC003"
	TypeInconsistentRet   Code = "TC004"
	TypeNonStringPanic    Code = "TC005"
	TypeNonNumericCond    Code = "TC006"

	// Lowering (implementation bugs, not user-facing)
	LowerUnresolvedIdent Code = "LOW001"

	// Emitter (internal invariant violations)
	EmitInvariant Code = "EMIT001"
)

// Phase names the pipeline stage that produced a Report.
type Phase string

const (
	PhaseLex    Phase = "lex"
	PhaseParse  Phase = "parse"
	PhaseModule Phase = "module"
	PhaseType   Phase = "type"
	PhaseLower  Phase = "lower"
	PhaseEmit   Phase = "emit"
)
