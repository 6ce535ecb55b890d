package cli

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/youruser/assetkit/internal/domain"
	imagepkg "github.com/youruser/assetkit/internal/image"
)

// workspace writes a source image and a config pointing every output into dir.
func workspace(t *testing.T, sourceSize int) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	src := filepath.Join(dir, "major.png")
	if err := imagepkg.SavePNG(imaging.New(sourceSize, sourceSize, color.NRGBA{R: 90, G: 90, B: 220, A: 255}), src); err != nil {
		t.Fatal(err)
	}
	yml := fmt.Sprintf(`sourcePath: %s
outputDir: %s
store:
  outputDir: %s
poster:
  output: %s
preview:
  output: %s
`, src, filepath.Join(dir, "res"), filepath.Join(dir, "google_play"), filepath.Join(dir, "poster.png"), filepath.Join(dir, "preview.png"))
	cfgPath = filepath.Join(dir, "assetkit.yaml")
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, cfgPath
}

func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestIconsCommand(t *testing.T) {
	dir, cfg := workspace(t, 256)
	out, err := execute("--config", cfg, "icons")
	if err != nil {
		t.Fatalf("icons: %v\n%s", err, out)
	}
	for _, name := range []string{"ic_launcher.png", "ic_launcher_round.png"} {
		if _, err := os.Stat(filepath.Join(dir, "res", "mipmap-hdpi", name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if !strings.Contains(out, "asset=icons") {
		t.Fatalf("log does not name the step: %s", out)
	}
}

func TestStoreFailureNamesAssetAndPath(t *testing.T) {
	_, cfg := workspace(t, 300)
	out, err := execute("--config", cfg, "store")
	if !domain.IsKind(err, domain.KindCropOutOfBounds) {
		t.Fatalf("expected crop_out_of_bounds, got %v", err)
	}
	for _, want := range []string{"asset=store", "kind=crop_out_of_bounds", "path=feature_graphic_1024x500.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestMissingSourceFails(t *testing.T) {
	dir, cfg := workspace(t, 64)
	if err := os.Remove(filepath.Join(dir, "major.png")); err != nil {
		t.Fatal(err)
	}
	out, err := execute("--config", cfg, "adaptive")
	if !domain.IsKind(err, domain.KindSourceMissing) {
		t.Fatalf("expected source_missing, got %v", err)
	}
	if !strings.Contains(out, "path="+filepath.Join(dir, "major.png")) {
		t.Fatalf("log does not name the input: %s", out)
	}
}

func TestExplicitMissingConfigFails(t *testing.T) {
	_, err := execute("--config", filepath.Join(t.TempDir(), "nope.yaml"), "icons")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestAllCommand(t *testing.T) {
	dir, cfg := workspace(t, 1024)
	out, err := execute("--config", cfg, "all")
	if err != nil {
		t.Fatalf("all: %v\n%s", err, out)
	}
	for _, p := range []string{
		filepath.Join("res", "mipmap-anydpi-v26", "ic_launcher.xml"),
		filepath.Join("google_play", "feature_graphic_1024x500.png"),
		"poster.png",
		"preview.png",
	} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("%s: %v", p, err)
		}
	}
}

func TestRejectsArguments(t *testing.T) {
	_, cfg := workspace(t, 64)
	if _, err := execute("--config", cfg, "icons", "extra"); err == nil {
		t.Fatalf("positional arguments should be rejected")
	}
}
