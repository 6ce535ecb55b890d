package icons

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	imagepkg "github.com/youruser/assetkit/internal/image"
)

// Launchers show a 72dp viewport of the 108dp adaptive canvas.
const (
	viewportDP = 72
	canvasDP   = 108
)

var (
	PreviewScreen = image.Pt(500, 800)
	PreviewColor  = color.NRGBA{R: 50, G: 50, B: 150, A: 255}
)

// Viewport is the centred square the launcher mask cuts out of a canvas of side n.
func Viewport(n int) image.Rectangle {
	d := n * viewportDP / canvasDP
	off := (n - d) / 2
	return image.Rect(off, off, off+d, off+d)
}

// Preview simulates a circular launcher mask over an adaptive background
// layer and centres the result on a phone-screen coloured canvas.
func Preview(background image.Image) *image.NRGBA {
	b := background.Bounds()
	vp := Viewport(b.Dx()).Add(b.Min)
	icon := imagepkg.Circular(imaging.Crop(background, vp))

	screen := imaging.New(PreviewScreen.X, PreviewScreen.Y, PreviewColor)
	return imagepkg.OverlayCentered(screen, icon)
}
