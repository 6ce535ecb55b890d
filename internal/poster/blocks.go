package poster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	imagepkg "github.com/youruser/assetkit/internal/image"
)

// Hero: icon, product name and two taglines, all centred.
const (
	heroIconSize     = 90
	heroIconAdvance  = 108
	heroTitleAdvance = 90
	heroLineAdvance  = 46
)

type HeroBlock struct {
	f        Frame
	Icon     image.Image
	Title    string
	Tagline  string
	Tagline2 string
	Declared int
}

func (b *HeroBlock) Name() string { return "hero" }

func (b *HeroBlock) Height() int {
	if b.Declared > 0 {
		return b.Declared
	}
	h := heroTitleAdvance + 2*heroLineAdvance
	if b.Icon != nil {
		h += heroIconAdvance
	}
	return h
}

func (b *HeroBlock) Draw(c *imagepkg.Canvas, y int) (int, error) {
	ext := newExtent(y)
	th, ty := b.f.Theme, b.f.Type

	if b.Icon != nil {
		icon := imaging.Resize(b.Icon, heroIconSize, heroIconSize, imaging.Lanczos)
		c.Paste(icon, image.Pt((c.Width()-heroIconSize)/2, y))
		ext.add(y + heroIconSize)
		y += heroIconAdvance
	}

	ext.add(c.CenteredText(b.Title, y, ty.Hero, th.White))
	y += heroTitleAdvance
	ext.add(c.CenteredText(b.Tagline, y, ty.Tagline, th.TextSec))
	y += heroLineAdvance
	ext.add(c.CenteredText(b.Tagline2, y, ty.Tagline, th.Gold))

	return ext.size(), nil
}

// Card offsets, relative to the card top unless noted.
const (
	cardRadius       = 20
	cardTitleTop     = 24
	cardLeadTop      = 75
	cardFirstLine    = 32 // below the lead
	cardLineStep     = 28
	cardDividerGap   = 40 // below the last body line
	cardFlowGap      = 42 // below the last body line
	cardFlowDetail   = 32
	cardFlowDivider  = 68 // below the flow line
	cardCompareTop   = 16 // below the divider
	cardCompareNote  = 30
	cardPadBottom    = 16
	cardDividerInset = 25
)

// Tier is the emphasis of a card body line.
type Tier int

const (
	TierPrimary Tier = iota
	TierSecondary
)

type Line struct {
	Text string
	Tier Tier
}

// Flow is a centred highlight line with a detail line under it.
type Flow struct {
	Text   string
	Detail string
}

// Comparison is the muted "traditional way" row at the bottom of a card.
type Comparison struct {
	Label     string
	Platforms string
	Note      string
	NoteColor color.NRGBA
}

type CardBlock struct {
	f          Frame
	Title      string
	Lead       string
	Lines      []Line
	Flow       *Flow
	Comparison *Comparison
	Declared   int
}

func (b *CardBlock) Name() string { return "card:" + b.Title }

func (b *CardBlock) Height() int { return b.Declared }

func (b *CardBlock) Draw(c *imagepkg.Canvas, y int) (int, error) {
	ext := newExtent(y)
	th, ty := b.f.Theme, b.f.Type
	inner := b.f.inner()

	c.RoundedRect(image.Rect(b.f.cardLeft(), y, b.f.cardRight(), y+b.Declared-1), cardRadius, th.CardBG, th.CardBorder, 1)

	ext.add(c.Text(b.Title, inner, y+cardTitleTop, ty.H2, th.White))

	ly := y + cardLeadTop
	ext.add(c.Text(b.Lead, inner, ly, ty.BodyBold, th.Primary))

	last := ly
	for i, l := range b.Lines {
		col := th.White
		if l.Tier == TierSecondary {
			col = th.TextSec
		}
		last = ly + cardFirstLine + i*cardLineStep
		ext.add(c.Text(l.Text, inner, last, ty.Body, col))
	}

	div := last + cardDividerGap
	if b.Flow != nil {
		fy := last + cardFlowGap
		ext.add(c.CenteredText(b.Flow.Text, fy, ty.BodyBold, th.Teal))
		if b.Flow.Detail != "" {
			ext.add(c.Text(b.Flow.Detail, inner, fy+cardFlowDetail, ty.Detail, th.TextSec))
		}
		div = fy + cardFlowDivider
	}

	if b.Comparison != nil {
		c.HLine(inner, b.f.cardRight()-cardDividerInset, div, th.CardBorder, 1)
		ext.add(div + 1)

		cy := div + cardCompareTop
		cmp := b.Comparison
		ext.add(c.Text(cmp.Label, inner, cy, ty.BodyBold, th.TextMuted))
		if cmp.Platforms != "" {
			px := inner + imagepkg.TextWidth(ty.BodyBold, cmp.Label) + 16
			ext.add(c.Text(cmp.Platforms, px, cy+2, ty.Detail, th.TextMuted))
		}
		if cmp.Note != "" {
			ext.add(c.Text(cmp.Note, inner, cy+cardCompareNote, ty.Body, cmp.NoteColor))
		}
	}

	ext.add(ext.bottom + cardPadBottom)
	return ext.size(), nil
}

// Advantage rows have a fixed height.
const (
	advantageFirstRow = 72
	advantageRowStep  = 44
)

type Advantage struct {
	Title       string
	Description string
	Color       color.NRGBA
}

type AdvantageBlock struct {
	f        Frame
	Title    string
	Rows     []Advantage
	Declared int
}

func (b *AdvantageBlock) Name() string { return "advantages" }

func (b *AdvantageBlock) Height() int { return b.Declared }

func (b *AdvantageBlock) Draw(c *imagepkg.Canvas, y int) (int, error) {
	ext := newExtent(y)
	th, ty := b.f.Theme, b.f.Type
	inner := b.f.inner()

	c.RoundedRect(image.Rect(b.f.cardLeft(), y, b.f.cardRight(), y+b.Declared-1), cardRadius, th.CardBG, th.CardBorder, 1)
	ext.add(c.Text(b.Title, inner, y+cardTitleTop, ty.H2, th.White))

	ay := y + advantageFirstRow
	for _, r := range b.Rows {
		ext.add(c.Text(r.Title, inner, ay, ty.BodyBold, r.Color))
		dx := inner + imagepkg.TextWidth(ty.BodyBold, r.Title) + 16
		ext.add(c.Text(r.Description, dx, ay+1, ty.Detail, th.TextSec))
		ay += advantageRowStep
	}

	ext.add(ext.bottom + cardPadBottom)
	return ext.size(), nil
}

// QR block: short divider, call to action, QR with logo, URL caption.
const (
	qrDividerTop   = 16
	qrDividerHalf  = 100
	qrCaptionTop   = 48
	qrSymbolTop    = 90
	qrURLGap       = 14
	qrURLAllowance = 24
)

type QRBlock struct {
	f          Frame
	Caption    string
	URL        string
	DisplayURL string
	Size       int
	Logo       image.Image
	Declared   int
}

func (b *QRBlock) Name() string { return "qr" }

func (b *QRBlock) Height() int {
	if b.Declared > 0 {
		return b.Declared
	}
	return qrSymbolTop + b.Size + qrURLGap + qrURLAllowance
}

func (b *QRBlock) Draw(c *imagepkg.Canvas, y int) (int, error) {
	ext := newExtent(y)
	th, ty := b.f.Theme, b.f.Type
	mid := c.Width() / 2

	c.HLine(mid-qrDividerHalf, mid+qrDividerHalf, y+qrDividerTop, th.CardBorder, 1)
	ext.add(y + qrDividerTop + 1)

	ext.add(c.CenteredText(b.Caption, y+qrCaptionTop, ty.CTA, th.White))

	qr, err := imagepkg.ComposeQR(b.URL, b.Logo, b.Size, th.QRStyle())
	if err != nil {
		return 0, err
	}
	qy := y + qrSymbolTop
	c.Paste(qr, image.Pt((c.Width()-b.Size)/2, qy))
	ext.add(qy + b.Size)

	ext.add(c.CenteredText(b.DisplayURL, qy+b.Size+qrURLGap, ty.URL, th.TextMuted))
	return ext.size(), nil
}

// Footer: attribution line over the bottom gradient bar.
const (
	footerTextTop = 6
	footerHeight  = 42
	barHeight     = 6
)

type FooterBlock struct {
	f    Frame
	Text string
}

func (b *FooterBlock) Name() string { return "footer" }

func (b *FooterBlock) Height() int { return footerHeight }

func (b *FooterBlock) anchoredToBottom() {}

func (b *FooterBlock) Draw(c *imagepkg.Canvas, y int) (int, error) {
	ext := newExtent(y)
	ext.add(c.CenteredText(b.Text, y+footerTextTop, b.f.Type.Footer, b.f.Theme.TextMuted))
	c.GradientBar(y+footerHeight-barHeight, barHeight, b.f.Theme.Gradient())
	ext.add(y + footerHeight)
	return ext.size(), nil
}
