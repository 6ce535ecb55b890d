package poster

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/youruser/assetkit/internal/config"
	"github.com/youruser/assetkit/internal/domain"
)

// Spec is the poster content. It can be loaded from YAML; colours are palette
// keys ("teal") or hex strings.
type Spec struct {
	Hero       HeroSpec       `yaml:"hero"`
	Cards      []CardSpec     `yaml:"cards"`
	Advantages AdvantagesSpec `yaml:"advantages"`
	QR         QRSpec         `yaml:"qr"`
	Footer     FooterSpec     `yaml:"footer"`
}

type HeroSpec struct {
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Tagline2 string `yaml:"tagline2"`
	Height   int    `yaml:"height"`
}

type LineSpec struct {
	Text      string `yaml:"text"`
	Secondary bool   `yaml:"secondary"`
}

type FlowSpec struct {
	Text   string `yaml:"text"`
	Detail string `yaml:"detail"`
}

type ComparisonSpec struct {
	Label     string `yaml:"label"`
	Platforms string `yaml:"platforms"`
	Note      string `yaml:"note"`
	NoteColor string `yaml:"noteColor"`
}

type CardSpec struct {
	Title      string          `yaml:"title"`
	Lead       string          `yaml:"lead"`
	Lines      []LineSpec      `yaml:"lines"`
	Flow       *FlowSpec       `yaml:"flow"`
	Comparison *ComparisonSpec `yaml:"comparison"`
	Height     int             `yaml:"height"`
}

type AdvantageSpec struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type AdvantagesSpec struct {
	Title  string          `yaml:"title"`
	Rows   []AdvantageSpec `yaml:"rows"`
	Height int             `yaml:"height"`
}

type QRSpec struct {
	Caption    string `yaml:"caption"`
	DisplayURL string `yaml:"displayUrl"`
	Size       int    `yaml:"size"`
	Height     int    `yaml:"height"`
}

type FooterSpec struct {
	Text string `yaml:"text"`
}

// DefaultSpec is the built-in product poster.
func DefaultSpec() Spec {
	return Spec{
		Hero: HeroSpec{
			Title:    "E-Claw",
			Tagline:  "People talk to people on LINE",
			Tagline2: "Bots talk to bots on E-Claw",
		},
		Cards: []CardSpec{
			{
				Title: "Bot-to-bot conversations",
				Lead:  "E-Claw",
				Lines: []LineSpec{
					{Text: "Bots on the same device can talk to each other freely"},
					{Text: "Direct messages (speak-to) and one-to-many broadcast", Secondary: true},
					{Text: "Bot A can start a chat with Bot B while Bot C is notified", Secondary: true},
				},
				Comparison: &ComparisonSpec{
					Label:     "The usual way",
					Platforms: "Telegram / LINE / WhatsApp",
					Note:      "Every bot is isolated and cannot message the others",
					NoteColor: "textMuted",
				},
				Height: 340,
			},
			{
				Title: "Cross-device messaging",
				Lead:  "E-Claw",
				Lines: []LineSpec{
					{Text: "Each bot gets a unique publicCode when it is bound"},
					{Text: "Any bot that knows a publicCode can reach it from any device", Secondary: true},
					{Text: "The server routes: look up publicCode, find device, push", Secondary: true},
				},
				Flow: &FlowSpec{
					Text:   "Bot on device A  ->  E-Claw Server  ->  Bot on device B",
					Detail: "Pushed over MCP, so bots receive remote messages instantly",
				},
				Comparison: &ComparisonSpec{
					Label:     "The usual way",
					Platforms: "Telegram / LINE / WhatsApp",
					Note:      "No cross-device bot messaging; platforms are fully isolated",
					NoteColor: "danger",
				},
				Height: 390,
			},
		},
		Advantages: AdvantagesSpec{
			Title: "Why E-Claw?",
			Rows: []AdvantageSpec{
				{Title: "Real time", Description: "Socket.IO push with no polling delay", Color: "teal"},
				{Title: "MCP protocol", Description: "A standard bot interface, not tied to one platform", Color: "primary"},
				{Title: "Cross-device routing", Description: "Global publicCode routing between devices", Color: "pink"},
				{Title: "Many characters", Description: "Up to 8 AI bots per device, each with its own skills", Color: "gold"},
			},
			Height: 270,
		},
		QR: QRSpec{
			Caption:    "Scan to get started",
			DisplayURL: "eclawbot.com",
			Size:       220,
		},
		Footer: FooterSpec{Text: "E-Claw by OpenClaw  |  Powered by MCP"},
	}
}

// LoadSpec reads a poster layout file.
func LoadSpec(path string) (Spec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, &domain.OpError{Op: "poster.load_spec", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	var s Spec
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Spec{}, &domain.OpError{Op: "poster.load_spec", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	if err := s.Validate(); err != nil {
		return Spec{}, &domain.OpError{Op: "poster.load_spec", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return s, nil
}

func (s Spec) Validate() error {
	if s.Hero.Title == "" {
		return fmt.Errorf("hero.title is empty")
	}
	for i, c := range s.Cards {
		if c.Height <= 0 {
			return fmt.Errorf("cards[%d].height must be positive", i)
		}
		if len(c.Lines) == 0 {
			return fmt.Errorf("cards[%d] has no lines", i)
		}
	}
	if len(s.Advantages.Rows) > 0 && s.Advantages.Height <= 0 {
		return fmt.Errorf("advantages.height must be positive")
	}
	if s.QR.Size <= 0 {
		return fmt.Errorf("qr.size must be positive")
	}
	return nil
}

// Assets are the rasters and payload the poster embeds.
type Assets struct {
	// Icon is drawn above the title; nil skips it.
	Icon image.Image
	// Logo sits in the QR badge; nil gives a plain QR.
	Logo image.Image
	URL  string
}

// Build turns s into the ordered block list for the engine.
func Build(s Spec, f Frame, a Assets) ([]Block, error) {
	resolve := func(name string) (color.NRGBA, error) {
		if c, ok := f.Theme.Named(name); ok {
			return c, nil
		}
		c, err := config.ParseColor(name)
		if err != nil {
			return color.NRGBA{}, &domain.OpError{Op: "poster.build", Kind: domain.KindInvalidConfig, Err: fmt.Errorf("colour %q: %w", name, err)}
		}
		return c, nil
	}

	blocks := []Block{&HeroBlock{
		f:        f,
		Icon:     a.Icon,
		Title:    s.Hero.Title,
		Tagline:  s.Hero.Tagline,
		Tagline2: s.Hero.Tagline2,
		Declared: s.Hero.Height,
	}}

	for _, cs := range s.Cards {
		card := &CardBlock{f: f, Title: cs.Title, Lead: cs.Lead, Declared: cs.Height}
		for _, l := range cs.Lines {
			tier := TierPrimary
			if l.Secondary {
				tier = TierSecondary
			}
			card.Lines = append(card.Lines, Line{Text: l.Text, Tier: tier})
		}
		if cs.Flow != nil {
			card.Flow = &Flow{Text: cs.Flow.Text, Detail: cs.Flow.Detail}
		}
		if cs.Comparison != nil {
			name := cs.Comparison.NoteColor
			if name == "" {
				name = "textMuted"
			}
			nc, err := resolve(name)
			if err != nil {
				return nil, err
			}
			card.Comparison = &Comparison{
				Label:     cs.Comparison.Label,
				Platforms: cs.Comparison.Platforms,
				Note:      cs.Comparison.Note,
				NoteColor: nc,
			}
		}
		blocks = append(blocks, card)
	}

	if len(s.Advantages.Rows) > 0 {
		adv := &AdvantageBlock{f: f, Title: s.Advantages.Title, Declared: s.Advantages.Height}
		for _, r := range s.Advantages.Rows {
			c, err := resolve(r.Color)
			if err != nil {
				return nil, err
			}
			adv.Rows = append(adv.Rows, Advantage{Title: r.Title, Description: r.Description, Color: c})
		}
		blocks = append(blocks, adv)
	}

	blocks = append(blocks,
		&QRBlock{
			f:          f,
			Caption:    s.QR.Caption,
			URL:        a.URL,
			DisplayURL: s.QR.DisplayURL,
			Size:       s.QR.Size,
			Logo:       a.Logo,
			Declared:   s.QR.Height,
		},
		&FooterBlock{f: f, Text: s.Footer.Text},
	)
	return blocks, nil
}

// Render builds s with the given frame and assets and renders it.
func Render(s Spec, f Frame, a Assets, log zerolog.Logger) (*image.NRGBA, error) {
	blocks, err := Build(s, f, a)
	if err != nil {
		return nil, err
	}
	return NewEngine(f.Theme, log).Render(blocks)
}
