package imagepkg

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient is a 3-stop horizontal gradient: Start at the left edge, Mid at the
// centre, End at the right edge, linear in RGB between neighbouring stops.
type Gradient struct {
	Start, Mid, End color.Color
}

// At returns the colour of column x in a bar width pixels wide.
func (g Gradient) At(x, width int) color.NRGBA {
	t := 0.0
	if width > 1 {
		t = float64(x) / float64(width-1)
	}

	var c colorful.Color
	if t < 0.5 {
		c = toColorful(g.Start).BlendRgb(toColorful(g.Mid), t*2)
	} else {
		c = toColorful(g.Mid).BlendRgb(toColorful(g.End), (t-0.5)*2)
	}
	r, gr, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: gr, B: b, A: 0xff}
}

func toColorful(c color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
}
