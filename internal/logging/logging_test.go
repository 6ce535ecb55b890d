package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRespectsDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug().Msg("hidden")
	l.Info().Str("path", "out/icon.png").Msg("asset.written")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "asset.written") || !strings.Contains(out, "path=out/icon.png") {
		t.Fatalf("missing info line: %q", out)
	}

	buf.Reset()
	l = New(&buf, true)
	l.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}
