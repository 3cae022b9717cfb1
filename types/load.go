package types

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrConfigEmpty is returned for documents without any content
var ErrConfigEmpty = errors.New("YAML configuration is empty")

// ParseConfig decodes a YAML document, applies defaults and validates it
func ParseConfig(data []byte) (*Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	if doc == nil {
		return nil, ErrConfigEmpty
	}

	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}

	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return c, nil
}
