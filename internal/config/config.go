package config

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Config drives the range demo.
type Config struct {
	// Values is the sequence that gets wrapped in a view.
	Values []int `json:"values"`
	// Divisor is the number of subranges the view is divided into.
	Divisor int `json:"divisor"`
	// Find is the value looked up with Has.
	Find int `json:"find"`
	// Pool is an optional address range, "from-to" or a prefix, that is
	// split into Divisor address pools.
	Pool string `json:"pool,omitempty"`
}

func Default() Config {
	return Config{
		Values:  []int{1, 3, 5, 7, 9},
		Divisor: 3,
		Find:    5,
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Divisor <= 0 {
		return errors.Errorf("divisor must be greater than zero, got %d", c.Divisor)
	}
	return nil
}
