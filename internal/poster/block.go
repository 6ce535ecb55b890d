package poster

import (
	imagepkg "github.com/youruser/assetkit/internal/image"
)

// Block is one self-measured unit of poster content.
type Block interface {
	// Name identifies the block in logs and errors.
	Name() string
	// Height is the declared vertical extent the engine reserves.
	Height() int
	// Draw renders the block with its top edge at y and returns how far
	// below y it actually drew.
	Draw(c *imagepkg.Canvas, y int) (int, error)
}

// bottomAnchored blocks are pinned to the bottom edge of the poster instead
// of following the cursor.
type bottomAnchored interface {
	anchoredToBottom()
}

// Frame is the horizontal geometry, palette and faces shared by all blocks.
type Frame struct {
	Width  int
	Margin int
	Theme  Theme
	Type   Typography
}

func NewFrame(theme Theme, typ Typography) Frame {
	return Frame{Width: 1080, Margin: 90, Theme: theme, Type: typ}
}

func (f Frame) cardLeft() int  { return f.Margin - 10 }
func (f Frame) cardRight() int { return f.Width - f.Margin + 10 }
func (f Frame) inner() int     { return f.Margin + 25 }

// extent tracks the lowest pixel row a block has drawn.
type extent struct {
	top, bottom int
}

func newExtent(y int) *extent { return &extent{top: y, bottom: y} }

func (e *extent) add(y int) {
	if y > e.bottom {
		e.bottom = y
	}
}

func (e *extent) size() int { return e.bottom - e.top }
