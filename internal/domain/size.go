package domain

import (
	"fmt"
	"sort"
)

// Size is a pixel dimension pair.
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

func Square(n int) Size { return Size{Width: n, Height: n} }

func (s Size) Valid() bool { return s.Width > 0 && s.Height > 0 }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// DensitySpec maps a density label (e.g. "mipmap-xhdpi") to an output size.
type DensitySpec map[string]Size

// Labels returns the labels in sorted order so fan-out is deterministic.
func (d DensitySpec) Labels() []string {
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Largest returns the label with the biggest area. Ties resolve to the
// lexically last label.
func (d DensitySpec) Largest() (string, bool) {
	best := ""
	area := -1
	for _, l := range d.Labels() {
		s := d[l]
		if a := s.Width * s.Height; a >= area {
			best, area = l, a
		}
	}
	return best, best != ""
}
