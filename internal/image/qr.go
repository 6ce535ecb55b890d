package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/assetkit/internal/domain"
)

// quietZone is the border go-qrcode adds on every side, in modules.
const quietZone = 4

// badgeMargin is added to the logo diameter to get the badge diameter.
const badgeMargin = 16

// QRStyle colours a QR composite. Accent outlines the logo badge.
type QRStyle struct {
	Foreground color.Color
	Background color.Color
	Accent     color.Color
}

func DefaultQRStyle() QRStyle {
	return QRStyle{Foreground: color.Black, Background: color.White, Accent: color.Black}
}

// GenerateQRPNG returns PNG bytes of a plain QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	img, err := ComposeQR(text, nil, size, DefaultQRStyle())
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// ComposeQR encodes text at error-correction level High into a size×size
// raster. With a logo, a circular badge of diameter size/4+16 is drawn in the
// centre and the logo, resized to size/4 and cut to a circle, is laid on top.
// Either the full composite is returned or an error; never a partial one.
func ComposeQR(text string, logo image.Image, size int, style QRStyle) (*image.NRGBA, error) {
	sym, payload, err := renderSymbol(text, size, style)
	if err != nil {
		return nil, &domain.OpError{Op: "image.compose_qr", Kind: domain.KindCompositeFailure, Err: err}
	}
	if logo == nil {
		return sym, nil
	}

	if logo.Bounds().Empty() {
		return nil, &domain.OpError{Op: "image.compose_qr", Kind: domain.KindCompositeFailure, Err: fmt.Errorf("logo is empty")}
	}
	d := size / 4
	badgeD := d + badgeMargin
	if d <= 0 || badgeD >= payload {
		return nil, &domain.OpError{
			Op:   "image.compose_qr",
			Kind: domain.KindCompositeFailure,
			Err:  fmt.Errorf("badge of %dpx does not fit inside the %dpx symbol payload", badgeD, payload),
		}
	}

	badge := Badge(badgeD, style.Background, style.Accent, 3)
	out := OverlayCentered(sym, badge)

	l := Circular(imaging.Resize(logo, d, d, imaging.Lanczos))
	return OverlayCentered(out, l), nil
}

// renderSymbol returns the symbol at exactly size×size with sharp module
// edges, and the side in pixels of the area inside the quiet zone.
func renderSymbol(text string, size int, style QRStyle) (*image.NRGBA, int, error) {
	if size <= 0 {
		return nil, 0, fmt.Errorf("qr size %d must be positive", size)
	}
	q, err := qrcode.New(text, qrcode.Highest)
	if err != nil {
		return nil, 0, err
	}
	q.ForegroundColor = style.Foreground
	q.BackgroundColor = style.Background

	modules := len(q.Bitmap())
	raw := q.Image(size)

	payload := (modules - 2*quietZone) * size / modules

	out := imaging.Clone(raw)
	if b := out.Bounds(); b.Dx() != size || b.Dy() != size {
		// Too small for one pixel per module; nearest keeps edges hard.
		out = imaging.Resize(out, size, size, imaging.NearestNeighbor)
	}
	return out, payload, nil
}
