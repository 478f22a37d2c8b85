package cmd

import (
	"strings"
	"testing"

	"github.com/astrixa-lang/astrixa/internal/manifest"
)

func TestRenderManifestIncludesNameAndVersion(t *testing.T) {
	m := manifest.New("hello")
	out := renderManifest(m)
	if !strings.Contains(out, `name = "hello"`) || !strings.Contains(out, `version = "0.1.0"`) {
		t.Errorf("unexpected manifest output:\n%s", out)
	}
}
