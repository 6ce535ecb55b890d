package poster

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"

	"github.com/youruser/assetkit/internal/config"
	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/fonts"
	imagepkg "github.com/youruser/assetkit/internal/image"
)

// Theme is the resolved poster palette.
type Theme struct {
	Background color.NRGBA
	CardBG     color.NRGBA
	CardBorder color.NRGBA
	Primary    color.NRGBA
	Pink       color.NRGBA
	Gold       color.NRGBA
	Teal       color.NRGBA
	White      color.NRGBA
	TextSec    color.NRGBA
	TextMuted  color.NRGBA
	Danger     color.NRGBA
	Success    color.NRGBA
}

func NewTheme(p config.Palette) (Theme, error) {
	var t Theme
	for _, e := range []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"background", p.Background, &t.Background},
		{"cardBackground", p.CardBG, &t.CardBG},
		{"cardBorder", p.CardBorder, &t.CardBorder},
		{"primary", p.Primary, &t.Primary},
		{"pink", p.Pink, &t.Pink},
		{"gold", p.Gold, &t.Gold},
		{"teal", p.Teal, &t.Teal},
		{"white", p.White, &t.White},
		{"textSecondary", p.TextSec, &t.TextSec},
		{"textMuted", p.TextMuted, &t.TextMuted},
		{"danger", p.Danger, &t.Danger},
		{"success", p.Success, &t.Success},
	} {
		c, err := config.ParseColor(e.hex)
		if err != nil {
			return Theme{}, &domain.OpError{Op: "poster.theme", Kind: domain.KindInvalidConfig, Err: fmt.Errorf("%s: %w", e.name, err)}
		}
		*e.dst = c
	}
	return t, nil
}

// DefaultTheme is the built-in dark palette.
func DefaultTheme() Theme {
	t, err := NewTheme(config.Default().Poster.Palette)
	if err != nil {
		panic(err)
	}
	return t
}

// Named resolves a palette key used by layout files ("teal", "danger", ...).
func (t Theme) Named(name string) (color.NRGBA, bool) {
	switch name {
	case "background":
		return t.Background, true
	case "cardBackground":
		return t.CardBG, true
	case "cardBorder":
		return t.CardBorder, true
	case "primary":
		return t.Primary, true
	case "pink":
		return t.Pink, true
	case "gold":
		return t.Gold, true
	case "teal":
		return t.Teal, true
	case "white":
		return t.White, true
	case "textSecondary":
		return t.TextSec, true
	case "textMuted":
		return t.TextMuted, true
	case "danger":
		return t.Danger, true
	case "success":
		return t.Success, true
	}
	return color.NRGBA{}, false
}

// Gradient is the primary→pink→gold bar used at the top and bottom edges.
func (t Theme) Gradient() imagepkg.Gradient {
	return imagepkg.Gradient{Start: t.Primary, Mid: t.Pink, End: t.Gold}
}

func (t Theme) QRStyle() imagepkg.QRStyle {
	return imagepkg.QRStyle{Foreground: t.Primary, Background: t.Background, Accent: t.Primary}
}

// Typography is the fixed set of faces the blocks draw with.
type Typography struct {
	Hero     font.Face
	Tagline  font.Face
	H2       font.Face
	BodyBold font.Face
	Body     font.Face
	Detail   font.Face
	CTA      font.Face
	URL      font.Face
	Footer   font.Face
}

func NewTypography(s *fonts.Set) Typography {
	return Typography{
		Hero:     s.Bold(72),
		Tagline:  s.Bold(32),
		H2:       s.Bold(30),
		BodyBold: s.Bold(19),
		Body:     s.Regular(19),
		Detail:   s.Regular(16),
		CTA:      s.Bold(24),
		URL:      s.Regular(18),
		Footer:   s.Regular(14),
	}
}
