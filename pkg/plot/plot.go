package plot

import (
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/rangebound/pkg/axis"
	"github.com/henderiw/rangebound/pkg/interval"
	"github.com/henderiw/rangebound/pkg/source"
)

const (
	AxisX = "x"
	AxisY = "y"
)

type Option func(*Plot)

func WithLogger(l logr.Logger) Option {
	return func(r *Plot) {
		r.l = l
	}
}

// Plot wires an x and a y range to a data source. Data driven ranges are
// refitted whenever the source changes.
type Plot struct {
	l      logr.Logger
	axes   axis.Table
	src    *source.Source
	glyphs []Glyph
}

func New(cfg Config, opts ...Option) (*Plot, error) {
	r := &Plot{
		l:      logr.Discard(),
		glyphs: append([]Glyph(nil), cfg.Glyphs...),
	}
	for _, o := range opts {
		o(r)
	}

	if err := cfg.validateGlyphs(); err != nil {
		return nil, err
	}
	src, err := source.New(cfg.Source)
	if err != nil {
		return nil, err
	}
	axes, err := axis.New(map[string]axis.Spec{
		AxisX: {Labels: labels.Set{axis.LabelDimension: axis.DimensionWidth}, Config: cfg.XRange},
		AxisY: {Labels: labels.Set{axis.LabelDimension: axis.DimensionHeight}, Config: cfg.YRange},
	}, axis.WithLogger(r.l))
	if err != nil {
		return nil, err
	}
	r.src = src
	r.axes = axes

	r.fit()
	src.Subscribe(func(*source.Source) { r.fit() })
	return r, nil
}

// extent returns the data extent of one dimension over all glyphs.
func (r *Plot) extent(dimension string) interval.Extent {
	e := interval.EmptyExtent()
	for _, g := range r.glyphs {
		col, half := g.X, g.Width/2
		if dimension == axis.DimensionHeight {
			col, half = g.Y, g.Height/2
		}
		ge, err := r.src.Extent(col, half)
		if err != nil {
			// the column was dropped by a Replace
			r.l.V(1).Info("glyph column missing", "column", col, "err", err.Error())
			continue
		}
		e = e.Union(ge)
	}
	return e
}

func (r *Plot) fit() {
	for _, dimension := range []string{axis.DimensionWidth, axis.DimensionHeight} {
		e := r.extent(dimension)
		for _, a := range r.axes.GetByLabel(axis.DimensionSelector(dimension)) {
			a.Range.RecomputeAutoRange(e)
		}
	}
}

// Pan shifts the x axes by dx and the y axes by dy, in data units.
func (r *Plot) Pan(dx, dy float64) {
	r.axes.Pan(axis.DimensionSelector(axis.DimensionWidth), dx)
	r.axes.Pan(axis.DimensionSelector(axis.DimensionHeight), dy)
}

// Zoom scales both axes by factor around the data point (ax, ay).
func (r *Plot) Zoom(ax, ay, factor float64) {
	for _, a := range r.axes.GetAll() {
		anchor := ax
		if a.Dimension() == axis.DimensionHeight {
			anchor = ay
		}
		a.Range.Zoom(anchor, factor)
	}
}

// BoxZoom zooms the x axes to x0..x1 and the y axes to y0..y1.
func (r *Plot) BoxZoom(x0, x1, y0, y1 float64) {
	for _, a := range r.axes.GetAll() {
		if a.Dimension() == axis.DimensionHeight {
			a.Range.ZoomTo(y0, y1)
			continue
		}
		a.Range.ZoomTo(x0, x1)
	}
}

func (r *Plot) Reset() {
	for _, a := range r.axes.GetAll() {
		a.Range.Reset()
	}
}

func (r *Plot) Axis(name string) (*axis.Axis, error) {
	return r.axes.Get(name)
}

func (r *Plot) Axes() axis.Table { return r.axes }

func (r *Plot) Source() *source.Source { return r.src }

// Snapshot returns the current interval of every axis by name.
func (r *Plot) Snapshot() map[string]interval.Interval {
	out := map[string]interval.Interval{}
	iter := r.axes.Iterate()
	for iter.Next() {
		out[iter.Name()] = iter.Value().Range.Interval()
	}
	return out
}
