package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/henderiw/rangebound/pkg/plot"
)

// Scenario is a plot plus the interactions replayed against it.
type Scenario struct {
	Plot  plot.Config `yaml:"plot"`
	Steps []Step      `yaml:"steps"`
}

// Step holds exactly one interaction.
type Step struct {
	Pan     *PanStep             `yaml:"pan,omitempty"`
	Zoom    *ZoomStep            `yaml:"zoom,omitempty"`
	BoxZoom *BoxZoomStep         `yaml:"boxzoom,omitempty"`
	Reset   bool                 `yaml:"reset,omitempty"`
	Stream  map[string][]float64 `yaml:"stream,omitempty"`
}

type PanStep struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

type ZoomStep struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Factor float64 `yaml:"factor"`
}

type BoxZoomStep struct {
	X0 float64 `yaml:"x0"`
	X1 float64 `yaml:"x1"`
	Y0 float64 `yaml:"y0"`
	Y1 float64 `yaml:"y1"`
}

func loadScenario(r io.Reader) (*Scenario, error) {
	s := &Scenario{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	var errm error
	for i, st := range s.Steps {
		if n := st.count(); n != 1 {
			errm = errors.Join(errm, fmt.Errorf("step %d: expected exactly one action, got %d", i, n))
		}
	}
	if errm != nil {
		return nil, errm
	}
	return s, nil
}

func (r Step) count() int {
	n := 0
	if r.Pan != nil {
		n++
	}
	if r.Zoom != nil {
		n++
	}
	if r.BoxZoom != nil {
		n++
	}
	if r.Reset {
		n++
	}
	if r.Stream != nil {
		n++
	}
	return n
}

func (r Step) String() string {
	switch {
	case r.Pan != nil:
		return fmt.Sprintf("pan dx=%g dy=%g", r.Pan.DX, r.Pan.DY)
	case r.Zoom != nil:
		return fmt.Sprintf("zoom x=%g y=%g factor=%g", r.Zoom.X, r.Zoom.Y, r.Zoom.Factor)
	case r.BoxZoom != nil:
		return fmt.Sprintf("boxzoom x=%g:%g y=%g:%g", r.BoxZoom.X0, r.BoxZoom.X1, r.BoxZoom.Y0, r.BoxZoom.Y1)
	case r.Reset:
		return "reset"
	case r.Stream != nil:
		return "stream"
	}
	return "noop"
}

// apply runs the step against p.
func (r Step) apply(p *plot.Plot) error {
	switch {
	case r.Pan != nil:
		p.Pan(r.Pan.DX, r.Pan.DY)
	case r.Zoom != nil:
		p.Zoom(r.Zoom.X, r.Zoom.Y, r.Zoom.Factor)
	case r.BoxZoom != nil:
		p.BoxZoom(r.BoxZoom.X0, r.BoxZoom.X1, r.BoxZoom.Y0, r.BoxZoom.Y1)
	case r.Reset:
		p.Reset()
	case r.Stream != nil:
		return p.Source().Stream(r.Stream)
	}
	return nil
}

// replay runs every step and writes the ranges after each step to w.
func replay(s *Scenario, p *plot.Plot, w io.Writer) error {
	printRanges(w, "initial", p)
	for i, st := range s.Steps {
		if err := st.apply(p); err != nil {
			return fmt.Errorf("step %d %s: %w", i, st, err)
		}
		printRanges(w, st.String(), p)
	}
	return nil
}

func printRanges(w io.Writer, label string, p *plot.Plot) {
	snap := p.Snapshot()
	fmt.Fprintf(w, "%-32s x=%s y=%s\n", label, snap[plot.AxisX], snap[plot.AxisY])
}
