package config

import (
	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/store"
)

// YAMLConfig mirrors the on-disk file. Zero values and nil maps mean
// "keep the default".
type YAMLConfig struct {
	SourcePath        string             `yaml:"sourcePath"`
	OutputDir         string             `yaml:"outputDir"`
	LogoPath          string             `yaml:"logoPath"`
	FontPaths         FontPaths          `yaml:"fontPaths"`
	QRURL             string             `yaml:"qrUrl"`
	IconBaseName      string             `yaml:"iconBaseName"`
	RoundIcons        *bool              `yaml:"roundIcons"`
	Densities         domain.DensitySpec `yaml:"densities"`
	AdaptiveDensities domain.DensitySpec `yaml:"adaptiveDensities"`
	Store             YAMLStore          `yaml:"store"`
	Poster            YAMLPoster         `yaml:"poster"`
	Preview           Preview            `yaml:"preview"`
	Serve             Serve              `yaml:"serve"`
}

type YAMLStore struct {
	OutputDir string         `yaml:"outputDir"`
	Targets   []store.Target `yaml:"targets"`
}

type YAMLPoster struct {
	Output  string  `yaml:"output"`
	Layout  string  `yaml:"layout"`
	Palette Palette `yaml:"palette"`
}
