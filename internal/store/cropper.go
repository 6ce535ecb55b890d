package store

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/youruser/assetkit/internal/domain"
	imagepkg "github.com/youruser/assetkit/internal/image"
)

// Mode selects how a store asset is derived from the source.
type Mode string

const (
	// ModeCrop takes a centred box of the target size out of the source.
	ModeCrop Mode = "crop"
	// ModeResize resamples the whole source to the target size.
	ModeResize Mode = "resize"
)

// Target is one store asset, written as Name inside the store directory.
type Target struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mode   Mode   `yaml:"mode"`
}

func (t Target) mode() Mode {
	if t.Mode == "" {
		return ModeCrop
	}
	return t.Mode
}

func (t Target) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("name is empty")
	}
	if filepath.Base(t.Name) != t.Name {
		return fmt.Errorf("name %q must be a plain file name", t.Name)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", t.Width, t.Height)
	}
	switch t.mode() {
	case ModeCrop, ModeResize:
	default:
		return fmt.Errorf("unknown mode %q", t.Mode)
	}
	return nil
}

// CropBox returns the centred w×h box inside src. A source smaller than the
// target in either axis is rejected rather than clamped or upscaled.
func CropBox(src image.Rectangle, w, h int) (image.Rectangle, error) {
	sw, sh := src.Dx(), src.Dy()
	if sw < w || sh < h {
		return image.Rectangle{}, &domain.OpError{
			Op:   "store.crop_box",
			Kind: domain.KindCropOutOfBounds,
			Err:  fmt.Errorf("target %dx%d exceeds source %dx%d", w, h, sw, sh),
		}
	}
	left := (sw - w) / 2
	top := (sh - h) / 2
	return image.Rect(left, top, left+w, top+h).Add(src.Min), nil
}

type Cropper struct {
	Log zerolog.Logger
}

func NewCropper(log zerolog.Logger) *Cropper {
	return &Cropper{Log: log}
}

// Render derives a single asset of exactly t.Width×t.Height.
func (c *Cropper) Render(src image.Image, t Target) (*image.NRGBA, error) {
	if err := t.Validate(); err != nil {
		return nil, &domain.OpError{Op: "store.render", Kind: domain.KindInvalidConfig, Path: t.Name, Err: err}
	}

	if t.mode() == ModeResize {
		return imaging.Resize(src, t.Width, t.Height, imaging.Lanczos), nil
	}

	box, err := CropBox(src.Bounds(), t.Width, t.Height)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = t.Name
		}
		return nil, err
	}
	out := imaging.Crop(src, box)

	// Store validators reject near-miss dimensions.
	if b := out.Bounds(); b.Dx() != t.Width || b.Dy() != t.Height {
		c.Log.Debug().Str("asset", t.Name).Str("got", b.Size().String()).Msg("store.corrective_resize")
		out = imaging.Resize(out, t.Width, t.Height, imaging.Lanczos)
	}
	return out, nil
}

// Generate writes every target into outputDir and returns the written paths.
// Paths written before a failure stay on disk.
func (c *Cropper) Generate(src image.Image, targets []Target, outputDir string) ([]string, error) {
	var written []string
	for _, t := range targets {
		img, err := c.Render(src, t)
		if err != nil {
			return written, err
		}
		path := filepath.Join(outputDir, t.Name)
		if err := imagepkg.SavePNG(img, path); err != nil {
			return written, err
		}
		c.Log.Info().Str("path", path).Str("size", img.Bounds().Size().String()).Str("mode", string(t.mode())).Msg("store.asset_written")
		written = append(written, path)
	}
	return written, nil
}
