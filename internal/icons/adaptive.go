package icons

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/youruser/assetkit/internal/domain"
	imagepkg "github.com/youruser/assetkit/internal/image"
	"github.com/youruser/assetkit/internal/util"
)

// SafeZoneScale is the share of the canvas the source occupies, so launcher
// masks (circle, squircle, rounded square) never clip the subject.
const SafeZoneScale = 0.72

// DescriptorDir holds the density-independent adaptive-icon XML.
const DescriptorDir = "mipmap-anydpi-v26"

const descriptorTemplate = `<?xml version="1.0" encoding="utf-8"?>
<adaptive-icon xmlns:android="http://schemas.android.com/apk/res/android">
    <background android:drawable="@mipmap/%s_background" />
    <foreground android:drawable="@mipmap/%s_foreground" />
</adaptive-icon>
`

// AdaptiveIconSet is one density's layer pair. Both layers share a size.
type AdaptiveIconSet struct {
	Label      string
	Background *image.NRGBA
	Foreground *image.NRGBA
}

type AdaptiveComposer struct {
	BaseName string
	// Fill is the background canvas colour behind the scaled source.
	Fill color.Color
	Log  zerolog.Logger
}

func NewAdaptiveComposer(baseName string, log zerolog.Logger) *AdaptiveComposer {
	return &AdaptiveComposer{BaseName: baseName, Fill: color.White, Log: log}
}

// SafeZoneSize is the side of the scaled source inside a canvas of side n.
func SafeZoneSize(n int) int {
	return int(float64(n) * SafeZoneScale)
}

// Layers builds the background and foreground for one canvas size.
func (a *AdaptiveComposer) Layers(src image.Image, canvas domain.Size) (bg, fg *image.NRGBA) {
	target := domain.Size{Width: SafeZoneSize(canvas.Width), Height: SafeZoneSize(canvas.Height)}
	resized := imaging.Resize(src, target.Width, target.Height, imaging.Lanczos)

	bg = imaging.New(canvas.Width, canvas.Height, a.Fill)
	bg = imagepkg.OverlayCentered(bg, resized)
	fg = imaging.New(canvas.Width, canvas.Height, color.NRGBA{})
	return bg, fg
}

// Compose returns one layer pair per label, in label order.
func (a *AdaptiveComposer) Compose(src image.Image, table domain.DensitySpec) []AdaptiveIconSet {
	sets := make([]AdaptiveIconSet, 0, len(table))
	for _, label := range table.Labels() {
		bg, fg := a.Layers(src, table[label])
		sets = append(sets, AdaptiveIconSet{Label: label, Background: bg, Foreground: fg})
	}
	return sets
}

// Descriptor is the two-layer XML shared by every density.
func (a *AdaptiveComposer) Descriptor() []byte {
	return []byte(fmt.Sprintf(descriptorTemplate, a.BaseName, a.BaseName))
}

// Generate writes the layers under <outputDir>/<label>/ and the descriptor as
// both <base>.xml and <base>_round.xml under DescriptorDir.
func (a *AdaptiveComposer) Generate(src image.Image, table domain.DensitySpec, outputDir string) ([]string, error) {
	var written []string
	for _, set := range a.Compose(src, table) {
		dir := filepath.Join(outputDir, set.Label)
		for _, layer := range []struct {
			suffix string
			img    *image.NRGBA
		}{{"_background", set.Background}, {"_foreground", set.Foreground}} {
			path := filepath.Join(dir, a.BaseName+layer.suffix+".png")
			if err := imagepkg.SavePNG(layer.img, path); err != nil {
				return written, err
			}
			written = append(written, path)
			a.Log.Info().Str("label", set.Label).Str("path", path).Msg("icons.adaptive_layer_written")
		}
	}

	desc := a.Descriptor()
	for _, name := range []string{a.BaseName + ".xml", a.BaseName + "_round.xml"} {
		path := filepath.Join(outputDir, DescriptorDir, name)
		if err := util.WriteFile(path, desc); err != nil {
			return written, &domain.OpError{Op: "icons.write_descriptor", Kind: domain.KindEncodeFailure, Path: path, Err: err}
		}
		written = append(written, path)
		a.Log.Info().Str("path", path).Msg("icons.descriptor_written")
	}
	return written, nil
}
