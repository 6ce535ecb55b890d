package icons

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/youruser/assetkit/internal/domain"
	imagepkg "github.com/youruser/assetkit/internal/image"
)

// Resizer fans one source out into a launcher icon per density.
type Resizer struct {
	// BaseName names the files: <BaseName>.png and <BaseName>_round.png.
	BaseName string
	Log      zerolog.Logger
}

func NewResizer(baseName string, log zerolog.Logger) *Resizer {
	return &Resizer{BaseName: baseName, Log: log}
}

// Square resamples src to exactly size with a Lanczos filter.
func Square(src image.Image, size domain.Size) *image.NRGBA {
	return imaging.Resize(src, size.Width, size.Height, imaging.Lanczos)
}

// Round masks a square icon to the ellipse inscribed in its bounds.
func Round(square image.Image) *image.NRGBA {
	return imagepkg.Circular(square)
}

// Generate writes <outputDir>/<label>/<base>.png for every density and, when
// round is set, <base>_round.png beside it. It stops at the first failure and
// returns the paths written so far.
func (r *Resizer) Generate(src image.Image, spec domain.DensitySpec, outputDir string, round bool) ([]string, error) {
	var written []string
	for _, label := range spec.Labels() {
		size := spec[label]
		dir := filepath.Join(outputDir, label)

		sq := Square(src, size)
		path := filepath.Join(dir, r.BaseName+".png")
		if err := imagepkg.SavePNG(sq, path); err != nil {
			return written, err
		}
		written = append(written, path)
		r.Log.Info().Str("label", label).Str("size", size.String()).Str("path", path).Msg("icons.square_written")

		if !round {
			continue
		}
		path = filepath.Join(dir, r.BaseName+"_round.png")
		if err := imagepkg.SavePNG(Round(sq), path); err != nil {
			return written, err
		}
		written = append(written, path)
		r.Log.Info().Str("label", label).Str("size", size.String()).Str("path", path).Msg("icons.round_written")
	}
	return written, nil
}
