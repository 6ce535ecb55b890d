package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
)

// CenterOffset is the top-left at which an inner box sits centred in outer.
// Odd remainders round towards the top-left.
func CenterOffset(outer, inner image.Point) image.Point {
	return image.Pt((outer.X-inner.X)/2, (outer.Y-inner.Y)/2)
}

// OverlayCentered alpha-blends fg over the centre of bg, using fg's own alpha
// as the blend mask. bg is not modified.
func OverlayCentered(bg, fg image.Image) *image.NRGBA {
	pt := CenterOffset(bg.Bounds().Size(), fg.Bounds().Size())
	return imaging.Overlay(bg, fg, pt, 1.0)
}
