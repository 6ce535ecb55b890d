package store

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/youruser/assetkit/internal/domain"
	imagepkg "github.com/youruser/assetkit/internal/image"
	"github.com/youruser/assetkit/internal/logging"
)

func TestCropBoxFeatureGraphic(t *testing.T) {
	box, err := CropBox(image.Rect(0, 0, 1024, 1024), 1024, 500)
	if err != nil {
		t.Fatalf("crop box: %v", err)
	}
	if box.Min.X != 0 || box.Max.X != 1024 {
		t.Fatalf("horizontal extent %d..%d", box.Min.X, box.Max.X)
	}
	if box.Min.Y != 262 || box.Max.Y != 762 {
		t.Fatalf("top=%d bottom=%d, want 262 and 762", box.Min.Y, box.Max.Y)
	}
}

func TestCropBoxCases(t *testing.T) {
	cases := []struct {
		src  image.Rectangle
		w, h int
		want image.Rectangle
	}{
		{image.Rect(0, 0, 1000, 800), 500, 500, image.Rect(250, 150, 750, 650)},
		{image.Rect(0, 0, 101, 101), 50, 50, image.Rect(25, 25, 75, 75)},
		{image.Rect(10, 20, 110, 120), 100, 100, image.Rect(10, 20, 110, 120)},
	}
	for _, c := range cases {
		got, err := CropBox(c.src, c.w, c.h)
		if err != nil {
			t.Fatalf("CropBox(%v, %d, %d): %v", c.src, c.w, c.h, err)
		}
		if got != c.want {
			t.Errorf("CropBox(%v, %d, %d) = %v, want %v", c.src, c.w, c.h, got, c.want)
		}
	}
}

func TestCropBoxOutOfBounds(t *testing.T) {
	for _, src := range []image.Rectangle{image.Rect(0, 0, 800, 800), image.Rect(0, 0, 2000, 400)} {
		_, err := CropBox(src, 1024, 500)
		if !domain.IsKind(err, domain.KindCropOutOfBounds) {
			t.Fatalf("source %v: expected crop_out_of_bounds, got %v", src, err)
		}
	}
}

func TestRenderCropKeepsCentre(t *testing.T) {
	src := imaging.New(1024, 1024, color.NRGBA{A: 255})
	// Mark the rows just inside the expected crop edges.
	for x := 0; x < 1024; x++ {
		src.SetNRGBA(x, 262, color.NRGBA{R: 255, A: 255})
		src.SetNRGBA(x, 761, color.NRGBA{G: 255, A: 255})
	}
	c := NewCropper(logging.Nop())
	out, err := c.Render(src, Target{Name: "feature.png", Width: 1024, Height: 500})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Bounds().Size() != image.Pt(1024, 500) {
		t.Fatalf("size %v", out.Bounds().Size())
	}
	if c := out.NRGBAAt(10, 0); c.R != 255 {
		t.Fatalf("first row should be source row 262, got %v", c)
	}
	if c := out.NRGBAAt(10, 499); c.G != 255 {
		t.Fatalf("last row should be source row 761, got %v", c)
	}
}

func TestRenderUndersizedFails(t *testing.T) {
	c := NewCropper(logging.Nop())
	_, err := c.Render(imaging.New(512, 512, color.White), Target{Name: "feature.png", Width: 1024, Height: 500})
	if !domain.IsKind(err, domain.KindCropOutOfBounds) {
		t.Fatalf("expected crop_out_of_bounds, got %v", err)
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Path != "feature.png" {
		t.Fatalf("error should name the asset, got %v", err)
	}
}

func TestRenderResizeMode(t *testing.T) {
	c := NewCropper(logging.Nop())
	out, err := c.Render(imaging.New(300, 200, color.White), Target{Name: "icon.png", Width: 512, Height: 512, Mode: ModeResize})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Bounds().Size() != image.Pt(512, 512) {
		t.Fatalf("size %v", out.Bounds().Size())
	}
}

func TestTargetValidate(t *testing.T) {
	bad := []Target{
		{Name: "", Width: 1, Height: 1},
		{Name: "a/b.png", Width: 1, Height: 1},
		{Name: "a.png", Width: 0, Height: 1},
		{Name: "a.png", Width: 1, Height: 1, Mode: "stretch"},
	}
	for _, tg := range bad {
		if err := tg.Validate(); err == nil {
			t.Errorf("expected %+v to be invalid", tg)
		}
	}
	if err := (Target{Name: "a.png", Width: 1, Height: 1}).Validate(); err != nil {
		t.Fatalf("valid target rejected: %v", err)
	}
}

func TestGenerateWritesAll(t *testing.T) {
	out := t.TempDir()
	c := NewCropper(logging.Nop())
	targets := []Target{
		{Name: "play_store_icon_512.png", Width: 512, Height: 512, Mode: ModeResize},
		{Name: "feature_graphic_1024x500.png", Width: 1024, Height: 500, Mode: ModeCrop},
	}
	written, err := c.Generate(imaging.New(1024, 1024, color.White), targets, out)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("written %v", written)
	}
	img, err := imagepkg.Load(filepath.Join(out, "feature_graphic_1024x500.png"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Size() != image.Pt(1024, 500) {
		t.Fatalf("feature graphic size %v", img.Bounds().Size())
	}
}

func TestGenerateStopsAtFirstFailure(t *testing.T) {
	out := t.TempDir()
	c := NewCropper(logging.Nop())
	targets := []Target{
		{Name: "small.png", Width: 100, Height: 100},
		{Name: "huge.png", Width: 4000, Height: 100},
		{Name: "never.png", Width: 10, Height: 10},
	}
	written, err := c.Generate(imaging.New(200, 200, color.White), targets, out)
	if !domain.IsKind(err, domain.KindCropOutOfBounds) {
		t.Fatalf("expected crop_out_of_bounds, got %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("expected only the first asset, got %v", written)
	}
}
