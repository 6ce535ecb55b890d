package poster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog"

	"github.com/youruser/assetkit/internal/domain"
	imagepkg "github.com/youruser/assetkit/internal/image"
)

// Engine stacks blocks top to bottom on a fixed-width canvas.
type Engine struct {
	Width     int
	MinHeight int
	TopMargin int
	Gap       int

	Background color.Color
	Gradient   imagepkg.Gradient
	Log        zerolog.Logger
}

func NewEngine(theme Theme, log zerolog.Logger) *Engine {
	return &Engine{
		Width:      1080,
		MinHeight:  1920,
		TopMargin:  55,
		Gap:        24,
		Background: theme.Background,
		Gradient:   theme.Gradient(),
		Log:        log,
	}
}

type Placement struct {
	Block  Block
	Y      int
	Height int
}

// Layout is the resolved position of every block and the final poster height.
type Layout struct {
	Placements []Placement
	Height     int
}

// Layout places flowing blocks at the cursor and bottom-anchored blocks against
// the bottom edge. It draws nothing.
func (e *Engine) Layout(blocks []Block) (Layout, error) {
	var (
		flow     []Placement
		anchored []Block
		tail     int
	)
	cursor := e.TopMargin
	for _, b := range blocks {
		h := b.Height()
		if h <= 0 {
			return Layout{}, &domain.OpError{
				Op:   "poster.layout",
				Kind: domain.KindInvalidConfig,
				Path: b.Name(),
				Err:  fmt.Errorf("declared height %d must be positive", h),
			}
		}
		if _, ok := b.(bottomAnchored); ok {
			anchored = append(anchored, b)
			tail += h
			continue
		}
		flow = append(flow, Placement{Block: b, Y: cursor, Height: h})
		cursor += h + e.Gap
	}

	height := cursor + tail
	if height < e.MinHeight {
		height = e.MinHeight
	}

	y := height
	placed := make([]Placement, len(anchored))
	for i := len(anchored) - 1; i >= 0; i-- {
		h := anchored[i].Height()
		y -= h
		placed[i] = Placement{Block: anchored[i], Y: y, Height: h}
	}

	return Layout{Placements: append(flow, placed...), Height: height}, nil
}

// Render lays out and draws blocks onto one opaque poster. A block that draws
// past its declared height fails the render with KindLayoutOverflow.
func (e *Engine) Render(blocks []Block) (*image.NRGBA, error) {
	l, err := e.Layout(blocks)
	if err != nil {
		return nil, err
	}

	c := imagepkg.NewCanvas(e.Width, l.Height, e.Background)
	c.GradientBar(0, barHeight, e.Gradient)

	for _, p := range l.Placements {
		drawn, err := p.Block.Draw(c, p.Y)
		if err != nil {
			return nil, &domain.OpError{Op: "poster.render", Kind: domain.KindCompositeFailure, Path: p.Block.Name(), Err: err}
		}
		if drawn > p.Height {
			return nil, &domain.OpError{
				Op:   "poster.render",
				Kind: domain.KindLayoutOverflow,
				Path: p.Block.Name(),
				Err:  fmt.Errorf("drew %dpx into a %dpx slot", drawn, p.Height),
			}
		}
		e.Log.Debug().Str("block", p.Block.Name()).Int("y", p.Y).Int("height", p.Height).Int("drawn", drawn).Msg("poster.block_drawn")
	}

	return c.Flatten(), nil
}
