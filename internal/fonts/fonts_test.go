package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/logging"
)

func TestLoadMissingFontFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, false)

	s := Load(filepath.Join(t.TempDir(), "msjhbd.ttc"), "", log)
	face := s.Bold(32)
	if face == nil {
		t.Fatalf("expected fallback face")
	}
	if h := face.Metrics().Height.Ceil(); h <= 0 {
		t.Fatalf("fallback face has no height")
	}
	if !strings.Contains(buf.String(), "fonts.fallback") {
		t.Fatalf("expected a fallback warning, got %q", buf.String())
	}
}

func TestLoadUsesRequestedFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	s := Load(path, path, logging.Nop())
	builtin := Builtin()

	// Monospace advances differ from Go Regular for narrow glyphs.
	a, _ := s.Regular(20).GlyphAdvance('i')
	b, _ := builtin.Regular(20).GlyphAdvance('i')
	if a == b {
		t.Fatalf("expected the requested font to be used, advances equal (%v)", a)
	}
}

func TestParseFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	if !domain.IsKind(err, domain.KindFontUnavailable) {
		t.Fatalf("expected font_unavailable, got %v", err)
	}
}

func TestFaceCached(t *testing.T) {
	s := Builtin()
	if s.Bold(19) != s.Bold(19) {
		t.Fatalf("expected cached face")
	}
	if s.Bold(19) == s.Regular(19) {
		t.Fatalf("bold and regular must differ")
	}
}
