package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is an alpha-capable working buffer. Callers draw in any order and
// call Flatten once at the end.
type Canvas struct {
	dc *gg.Context
	bg color.Color
}

// NewCanvas returns a w×h canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, bg: bg}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Image exposes the working buffer (premultiplied RGBA).
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// RoundedRect fills r and, if outline is non-nil, strokes it with the given width.
// r is inclusive of its Max corner, like the box a designer would measure.
func (c *Canvas) RoundedRect(r image.Rectangle, radius float64, fill, outline color.Color, width float64) {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	if fill != nil {
		c.dc.DrawRoundedRectangle(x, y, w+1, h+1, radius)
		c.dc.SetColor(fill)
		c.dc.Fill()
	}
	if outline != nil && width > 0 {
		inset := width / 2
		c.dc.DrawRoundedRectangle(x+inset, y+inset, w+1-width, h+1-width, radius-inset)
		c.dc.SetColor(outline)
		c.dc.SetLineWidth(width)
		c.dc.Stroke()
	}
}

// HLine draws a horizontal line from x0 to x1 (inclusive) with its top edge at y.
func (c *Canvas) HLine(x0, x1, y int, col color.Color, width int) {
	if width <= 0 {
		width = 1
	}
	draw.Draw(c.rgba(), image.Rect(x0, y, x1+1, y+width), image.NewUniform(col), image.Point{}, draw.Over)
}

// Column fills the 1px-wide column x between y0 and y1 (exclusive).
func (c *Canvas) Column(x, y0, y1 int, col color.Color) {
	draw.Draw(c.rgba(), image.Rect(x, y0, x+1, y1), image.NewUniform(col), image.Point{}, draw.Src)
}

// GradientBar paints a full-width bar of height h at y with one solid colour
// per column.
func (c *Canvas) GradientBar(y, h int, g Gradient) {
	w := c.Width()
	for x := 0; x < w; x++ {
		c.Column(x, y, y+h, g.At(x, w))
	}
}

// Text draws s with its top-left corner at (x, y) and returns the y just
// below the line.
func (c *Canvas) Text(s string, x, y int, face font.Face, col color.Color) int {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, float64(x), float64(y+face.Metrics().Ascent.Ceil()))
	return y + LineHeight(face)
}

// CenteredText draws s horizontally centred on the canvas.
func (c *Canvas) CenteredText(s string, y int, face font.Face, col color.Color) int {
	return c.Text(s, c.CenterX(s, face), y, face, col)
}

// CenterX is the x at which s starts when centred on the canvas.
func (c *Canvas) CenterX(s string, face font.Face) int {
	return (c.Width() - TextWidth(face, s)) / 2
}

// Paste alpha-blends img with its top-left at pt.
func (c *Canvas) Paste(img image.Image, pt image.Point) {
	b := img.Bounds()
	draw.Draw(c.rgba(), image.Rectangle{Min: pt, Max: pt.Add(b.Size())}, img, b.Min, draw.Over)
}

// Flatten composites the working buffer over an opaque background.
func (c *Canvas) Flatten() *image.NRGBA {
	out := imaging.New(c.Width(), c.Height(), c.bg)
	return imaging.Overlay(out, c.dc.Image(), image.Pt(0, 0), 1.0)
}

func (c *Canvas) rgba() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// TextWidth is the advance width of s in whole pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight is ascent plus descent of face in whole pixels.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}
