package plot

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/henderiw/rangebound/pkg/rangectl"
)

// Glyph binds source columns to the axes. Width and Height are the glyph
// size in data units; half of it widens the data extent on each side.
type Glyph struct {
	X      string  `yaml:"x"`
	Y      string  `yaml:"y"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Config is the declarative description of a plot: its two ranges, the data
// and the glyphs drawing the data.
type Config struct {
	XRange rangectl.Config      `yaml:"xRange"`
	YRange rangectl.Config      `yaml:"yRange"`
	Source map[string][]float64 `yaml:"source,omitempty"`
	Glyphs []Glyph              `yaml:"glyphs,omitempty"`
}

// Load decodes a YAML plot config. Unknown fields are rejected.
func Load(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode plot config: %w", err)
	}
	return cfg, nil
}

func (r Config) validateGlyphs() error {
	var errm error
	for i, g := range r.Glyphs {
		for _, col := range []string{g.X, g.Y} {
			if _, ok := r.Source[col]; !ok {
				errm = errors.Join(errm, fmt.Errorf("glyph %d: column %q not in source", i, col))
			}
		}
		if g.Width < 0 || g.Height < 0 {
			errm = errors.Join(errm, fmt.Errorf("glyph %d: negative size %gx%g", i, g.Width, g.Height))
		}
	}
	return errm
}
