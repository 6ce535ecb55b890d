package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/youruser/assetkit/internal/domain"
)

// Load reads path over Default(). An empty path falls back to DefaultPath,
// which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			return cfg, cfg.Validate()
		}
		return Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := Parse(b)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a YAML document over Default() and validates the result.
func Parse(b []byte) (Config, error) {
	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, &domain.OpError{
			Op:   "config.parse",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	cfg := Merge(Default(), dto)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
