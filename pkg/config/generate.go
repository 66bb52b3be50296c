package config

import (
	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as a TOML document
func Generate(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
