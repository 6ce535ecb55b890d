package imagepkg

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/util"
)

// Load opens and decodes a JPEG/PNG source, honouring EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "image.load",
			Kind: domain.KindSourceMissing,
			Path: path,
			Err:  err,
		}
	}
	return img, nil
}

// Decode reads an image from r (used for uploaded or embedded sources).
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &domain.OpError{Op: "image.decode", Kind: domain.KindSourceMissing, Err: err}
	}
	return img, nil
}

// SavePNG writes img as PNG, creating parent directories and overwriting any
// existing file.
func SavePNG(img image.Image, path string) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return &domain.OpError{Op: "image.save", Kind: domain.KindEncodeFailure, Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &domain.OpError{Op: "image.save", Kind: domain.KindEncodeFailure, Path: path, Err: err}
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return &domain.OpError{Op: "image.save", Kind: domain.KindEncodeFailure, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "image.save", Kind: domain.KindEncodeFailure, Path: path, Err: err}
	}
	return nil
}

// EncodePNG returns PNG bytes of img.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, &domain.OpError{Op: "image.encode", Kind: domain.KindEncodeFailure, Err: err}
	}
	return buf.Bytes(), nil
}
