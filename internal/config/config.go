package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/store"
)

// DefaultPath is read when no --config flag is given; its absence is not an error.
const DefaultPath = "assetkit.yaml"

type FontPaths struct {
	Bold    string `yaml:"bold"`
	Regular string `yaml:"regular"`
}

type Store struct {
	OutputDir string         `yaml:"outputDir"`
	Targets   []store.Target `yaml:"targets"`
}

// Palette holds the poster colours as hex strings ("#RRGGBB").
type Palette struct {
	Background string `yaml:"background"`
	CardBG     string `yaml:"cardBackground"`
	CardBorder string `yaml:"cardBorder"`
	Primary    string `yaml:"primary"`
	Pink       string `yaml:"pink"`
	Gold       string `yaml:"gold"`
	Teal       string `yaml:"teal"`
	White      string `yaml:"white"`
	TextSec    string `yaml:"textSecondary"`
	TextMuted  string `yaml:"textMuted"`
	Danger     string `yaml:"danger"`
	Success    string `yaml:"success"`
}

func (p Palette) entries() map[string]string {
	return map[string]string{
		"background":     p.Background,
		"cardBackground": p.CardBG,
		"cardBorder":     p.CardBorder,
		"primary":        p.Primary,
		"pink":           p.Pink,
		"gold":           p.Gold,
		"teal":           p.Teal,
		"white":          p.White,
		"textSecondary":  p.TextSec,
		"textMuted":      p.TextMuted,
		"danger":         p.Danger,
		"success":        p.Success,
	}
}

type Poster struct {
	Output string `yaml:"output"`
	// Layout is an optional YAML file replacing the built-in poster content.
	Layout  string  `yaml:"layout"`
	Palette Palette `yaml:"palette"`
}

type Preview struct {
	Output string `yaml:"output"`
}

type Serve struct {
	Addr string `yaml:"addr"`
}

// Config is resolved once at startup and passed explicitly to each pipeline.
type Config struct {
	SourcePath        string
	OutputDir         string
	LogoPath          string
	FontPaths         FontPaths
	QRURL             string
	IconBaseName      string
	RoundIcons        bool
	Densities         domain.DensitySpec
	AdaptiveDensities domain.DensitySpec
	Store             Store
	Poster            Poster
	Preview           Preview
	Serve             Serve
}

func Default() Config {
	return Config{
		SourcePath:   "picture/major.jpg",
		OutputDir:    "app/src/main/res",
		QRURL:        "https://eclawbot.com/portal/dashboard.html",
		IconBaseName: "ic_launcher",
		RoundIcons:   true,
		Densities: domain.DensitySpec{
			"mipmap-mdpi":    domain.Square(48),
			"mipmap-hdpi":    domain.Square(72),
			"mipmap-xhdpi":   domain.Square(96),
			"mipmap-xxhdpi":  domain.Square(144),
			"mipmap-xxxhdpi": domain.Square(192),
		},
		AdaptiveDensities: domain.DensitySpec{
			"mipmap-mdpi":    domain.Square(108),
			"mipmap-hdpi":    domain.Square(162),
			"mipmap-xhdpi":   domain.Square(216),
			"mipmap-xxhdpi":  domain.Square(324),
			"mipmap-xxxhdpi": domain.Square(432),
		},
		Store: Store{
			OutputDir: "google_play",
			Targets: []store.Target{
				{Name: "play_store_icon_512.png", Width: 512, Height: 512, Mode: store.ModeResize},
				{Name: "feature_graphic_1024x500.png", Width: 1024, Height: 500, Mode: store.ModeCrop},
			},
		},
		Poster: Poster{
			Output: "poster.png",
			Palette: Palette{
				Background: "#0D0D1A",
				CardBG:     "#1A1A2E",
				CardBorder: "#333355",
				Primary:    "#6C63FF",
				Pink:       "#FF6584",
				Gold:       "#FFD23F",
				Teal:       "#4ECDC4",
				White:      "#FFFFFF",
				TextSec:    "#BBBBBB",
				TextMuted:  "#777777",
				Danger:     "#F44336",
				Success:    "#4CAF50",
			},
		},
		Preview: Preview{Output: "icon_preview.png"},
		Serve:   Serve{Addr: ":8080"},
	}
}

// LogoSource is the image used for the poster hero and the QR badge.
func (c Config) LogoSource() string {
	if c.LogoPath != "" {
		return c.LogoPath
	}
	return c.SourcePath
}

func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.SourcePath) == "" {
		problems = append(problems, "sourcePath is empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		problems = append(problems, "outputDir is empty")
	}
	if strings.TrimSpace(c.QRURL) == "" {
		problems = append(problems, "qrUrl is empty")
	}
	if strings.TrimSpace(c.IconBaseName) == "" {
		problems = append(problems, "iconBaseName is empty")
	}
	for _, spec := range []struct {
		name string
		d    domain.DensitySpec
	}{{"densities", c.Densities}, {"adaptiveDensities", c.AdaptiveDensities}} {
		for _, label := range spec.d.Labels() {
			if !spec.d[label].Valid() {
				problems = append(problems, fmt.Sprintf("%s.%s has non-positive size %s", spec.name, label, spec.d[label]))
			}
		}
	}
	for i, t := range c.Store.Targets {
		if err := t.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("store.targets[%d]: %v", i, err))
		}
	}
	palette := c.Poster.Palette.entries()
	keys := make([]string, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, err := ParseColor(palette[key]); err != nil {
			problems = append(problems, fmt.Sprintf("poster.palette.%s: %v", key, err))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &domain.OpError{
		Op:   "config.validate",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s", strings.Join(problems, "; ")),
	}
}
