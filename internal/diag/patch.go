package diag

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// PatchField overrides a single dotted field in a report's JSON
// representation without requiring a full struct round trip. It backs
// the CLI's `--set field=value` diagnostics override flag.
func PatchField(reportJSON []byte, path, value string) ([]byte, error) {
	return sjson.SetBytes(reportJSON, path, value)
}

// Field reads a single dotted field out of a report's JSON
// representation, returning ("", false) if absent.
func Field(reportJSON []byte, path string) (string, bool) {
	res := gjson.GetBytes(reportJSON, path)
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}
