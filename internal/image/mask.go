package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// EllipseMask returns a w×h alpha mask of the ellipse inscribed in the box.
func EllipseMask(w, h int) *image.Alpha {
	dc := gg.NewContext(w, h)
	dc.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2)
	dc.SetColor(color.White)
	dc.Fill()
	return dc.AsMask()
}

// ApplyMask returns a copy of src whose alpha is multiplied by mask.
func ApplyMask(src image.Image, mask *image.Alpha) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(out, out.Bounds(), src, b.Min, mask, mask.Bounds().Min, draw.Src)
	return out
}

// Circular masks src to the ellipse inscribed in its bounds.
func Circular(src image.Image) *image.NRGBA {
	b := src.Bounds()
	return ApplyMask(src, EllipseMask(b.Dx(), b.Dy()))
}

// Badge is a transparent d×d square holding a filled circle with an inner
// outline of the given width.
func Badge(d int, fill, outline color.Color, width float64) *image.NRGBA {
	dc := gg.NewContext(d, d)
	r := float64(d) / 2
	dc.DrawCircle(r, r, r-width/2)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(width)
	dc.Stroke()
	return imaging.Clone(dc.Image())
}
