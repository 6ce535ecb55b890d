package pipeline

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/youruser/assetkit/internal/config"
	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/fonts"
	"github.com/youruser/assetkit/internal/icons"
	imagepkg "github.com/youruser/assetkit/internal/image"
	"github.com/youruser/assetkit/internal/poster"
	"github.com/youruser/assetkit/internal/store"
)

// heroIconSize is the resolution of the round icon handed to the poster hero,
// matching the largest legacy launcher density.
const heroIconSize = 192

// Pipeline runs the asset generators against one resolved configuration.
// Inputs are loaded lazily and reused across steps.
type Pipeline struct {
	Cfg config.Config
	Log zerolog.Logger

	source image.Image
	logo   image.Image
	fonts  *fonts.Set
}

func New(cfg config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{Cfg: cfg, Log: log}
}

// Step is one named generator.
type Step struct {
	Name string
	Run  func() ([]string, error)
}

// Steps lists every generator in the order "all" runs them.
func (p *Pipeline) Steps() []Step {
	return []Step{
		{Name: "icons", Run: p.Icons},
		{Name: "adaptive", Run: p.Adaptive},
		{Name: "store", Run: p.Store},
		{Name: "poster", Run: p.Poster},
		{Name: "preview", Run: p.Preview},
	}
}

// Step looks up a generator by name.
func (p *Pipeline) Step(name string) (Step, bool) {
	for _, s := range p.Steps() {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}

// All runs every step, stopping at the first failure.
func (p *Pipeline) All() ([]string, error) {
	var written []string
	for _, s := range p.Steps() {
		out, err := s.Run()
		written = append(written, out...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (p *Pipeline) Source() (image.Image, error) {
	if p.source == nil {
		img, err := imagepkg.Load(p.Cfg.SourcePath)
		if err != nil {
			return nil, err
		}
		p.source = img
	}
	return p.source, nil
}

// Logo is the image for the poster hero and QR badge.
func (p *Pipeline) Logo() (image.Image, error) {
	if p.Cfg.LogoSource() == p.Cfg.SourcePath {
		return p.Source()
	}
	if p.logo == nil {
		img, err := imagepkg.Load(p.Cfg.LogoSource())
		if err != nil {
			return nil, err
		}
		p.logo = img
	}
	return p.logo, nil
}

func (p *Pipeline) Fonts() *fonts.Set {
	if p.fonts == nil {
		p.fonts = fonts.Load(p.Cfg.FontPaths.Bold, p.Cfg.FontPaths.Regular, p.Log)
	}
	return p.fonts
}

func (p *Pipeline) Icons() ([]string, error) {
	src, err := p.Source()
	if err != nil {
		return nil, err
	}
	r := icons.NewResizer(p.Cfg.IconBaseName, p.Log)
	return r.Generate(src, p.Cfg.Densities, p.Cfg.OutputDir, p.Cfg.RoundIcons)
}

func (p *Pipeline) Adaptive() ([]string, error) {
	src, err := p.Source()
	if err != nil {
		return nil, err
	}
	a := icons.NewAdaptiveComposer(p.Cfg.IconBaseName, p.Log)
	return a.Generate(src, p.Cfg.AdaptiveDensities, p.Cfg.OutputDir)
}

func (p *Pipeline) Store() ([]string, error) {
	src, err := p.Source()
	if err != nil {
		return nil, err
	}
	return store.NewCropper(p.Log).Generate(src, p.Cfg.Store.Targets, p.Cfg.Store.OutputDir)
}

// RenderPoster builds the poster in memory.
func (p *Pipeline) RenderPoster() (*image.NRGBA, error) {
	theme, err := poster.NewTheme(p.Cfg.Poster.Palette)
	if err != nil {
		return nil, err
	}

	spec := poster.DefaultSpec()
	if p.Cfg.Poster.Layout != "" {
		if spec, err = poster.LoadSpec(p.Cfg.Poster.Layout); err != nil {
			return nil, err
		}
	}

	logo, err := p.Logo()
	if err != nil {
		return nil, err
	}
	icon := icons.Round(imaging.Resize(logo, heroIconSize, heroIconSize, imaging.Lanczos))

	frame := poster.NewFrame(theme, poster.NewTypography(p.Fonts()))
	return poster.Render(spec, frame, poster.Assets{Icon: icon, Logo: logo, URL: p.Cfg.QRURL}, p.Log)
}

func (p *Pipeline) Poster() ([]string, error) {
	img, err := p.RenderPoster()
	if err != nil {
		return nil, err
	}
	if err := imagepkg.SavePNG(img, p.Cfg.Poster.Output); err != nil {
		return nil, err
	}
	p.Log.Info().Str("path", p.Cfg.Poster.Output).Str("size", img.Bounds().Size().String()).Msg("poster.written")
	return []string{p.Cfg.Poster.Output}, nil
}

// RenderPreview masks the largest adaptive background the way a circular
// launcher would.
func (p *Pipeline) RenderPreview() (*image.NRGBA, error) {
	src, err := p.Source()
	if err != nil {
		return nil, err
	}
	label, ok := p.Cfg.AdaptiveDensities.Largest()
	if !ok {
		return nil, &domain.OpError{Op: "pipeline.preview", Kind: domain.KindInvalidConfig, Err: errors.New("no adaptive densities configured")}
	}
	a := icons.NewAdaptiveComposer(p.Cfg.IconBaseName, p.Log)
	bg, _ := a.Layers(src, p.Cfg.AdaptiveDensities[label])
	return icons.Preview(bg), nil
}

func (p *Pipeline) Preview() ([]string, error) {
	img, err := p.RenderPreview()
	if err != nil {
		return nil, err
	}
	if err := imagepkg.SavePNG(img, p.Cfg.Preview.Output); err != nil {
		return nil, err
	}
	p.Log.Info().Str("path", p.Cfg.Preview.Output).Msg("preview.written")
	return []string{p.Cfg.Preview.Output}, nil
}
