package plot

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henderiw/rangebound/pkg/interval"
	"github.com/henderiw/rangebound/pkg/rangectl"
)

func bounded(b interval.Bounds) *interval.Bounds { return &b }

// newPanPlot builds two 0.9 wide squares at (1, 1) and (2, 1).
func newPanPlot(t *testing.T, xr, yr *rangectl.Config) *Plot {
	t.Helper()
	cfg := Config{
		XRange: rangectl.FixedConfig(0, 3, nil),
		YRange: rangectl.FixedConfig(0, 3, nil),
		Source: map[string][]float64{"x": {1, 2}, "y": {1, 1}},
		Glyphs: []Glyph{{X: "x", Y: "y", Width: 0.9, Height: 0.9}},
	}
	if xr != nil {
		cfg.XRange = *xr
	}
	if yr != nil {
		cfg.YRange = *yr
	}
	p, err := New(cfg)
	require.NoError(t, err)
	return p
}

func fixed(start, end float64, b *interval.Bounds) *rangectl.Config {
	cfg := rangectl.FixedConfig(start, end, b)
	return &cfg
}

func TestPanBounds(t *testing.T) {
	cases := map[string]struct {
		xr, yr   *rangectl.Config
		dx, dy   float64
		axis     string
		expected interval.Interval
	}{
		"XDoesNotPanLeftOfMin": {
			xr:       fixed(0, 3, bounded(interval.Lower(-1))),
			dx:       -200,
			axis:     AxisX,
			expected: interval.New(-1, 2),
		},
		"XDoesNotPanRightOfMax": {
			xr:       fixed(0, 3, bounded(interval.Upper(4))),
			dx:       200,
			axis:     AxisX,
			expected: interval.New(1, 4),
		},
		"YDoesNotPanBelowMin": {
			yr:       fixed(0, 3, bounded(interval.Lower(-1))),
			dx:       10,
			dy:       -150,
			axis:     AxisY,
			expected: interval.New(-1, 2),
		},
		"YDoesNotPanAboveMax": {
			yr:       fixed(0, 3, bounded(interval.Upper(4))),
			dx:       10,
			dy:       150,
			axis:     AxisY,
			expected: interval.New(1, 4),
		},
		"ReversedXDoesNotPanPastMin": {
			xr:       fixed(3, 0, bounded(interval.Lower(-1))),
			dx:       -200,
			axis:     AxisX,
			expected: interval.New(2, -1),
		},
		"ReversedXDoesNotPanPastMax": {
			xr:       fixed(3, 0, bounded(interval.Upper(4))),
			dx:       200,
			axis:     AxisX,
			expected: interval.New(4, 1),
		},
		"ReversedYDoesNotPanPastMin": {
			yr:       fixed(3, 0, bounded(interval.Lower(-1))),
			dy:       -150,
			axis:     AxisY,
			expected: interval.New(2, -1),
		},
		"ReversedYDoesNotPanPastMax": {
			yr:       fixed(3, 0, bounded(interval.Upper(4))),
			dy:       150,
			axis:     AxisY,
			expected: interval.New(4, 1),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := newPanPlot(t, tc.xr, tc.yr)
			p.Pan(tc.dx, tc.dy)
			got := p.Snapshot()[tc.axis]
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestAutoBoundsPreventPanningButCanZoom(t *testing.T) {
	auto := &rangectl.BoundsConfig{Auto: true}
	cases := map[string]struct {
		xr, yr *rangectl.Config
	}{
		"DataRange": {
			xr: &rangectl.Config{RangePadding: 0.1, Bounds: auto},
			yr: &rangectl.Config{RangePadding: 0.1, Bounds: auto},
		},
		"FixedRange": {
			xr: &rangectl.Config{Start: rangectl.Float(0.45), End: rangectl.Float(3), Bounds: auto},
			yr: &rangectl.Config{Start: rangectl.Float(0), End: rangectl.Float(3), Mode: rangectl.ModeDataDriven, Bounds: auto},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := newPanPlot(t, tc.xr, tc.yr)
			x, err := p.Axis(AxisX)
			require.NoError(t, err)

			p.BoxZoom(0.8, 1.5, 0.8, 1.2)
			p.Pan(0.2, 0)
			assert.Greater(t, x.Range.Start(), 0.5)

			p.Pan(-10, 0)
			assert.Greater(t, x.Range.Start(), 0.4)
			assert.Less(t, x.Range.Start(), 0.5)
		})
	}
}

func TestNoBoundsAllowsUnlimitedPanning(t *testing.T) {
	cases := map[string]struct {
		xr, yr *rangectl.Config
	}{
		"DataRange": {
			xr: &rangectl.Config{},
			yr: &rangectl.Config{},
		},
		"FixedRange": {
			xr: fixed(0.45, 3, nil),
			yr: &rangectl.Config{Start: rangectl.Float(0), End: rangectl.Float(3), Mode: rangectl.ModeDataDriven},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := newPanPlot(t, tc.xr, tc.yr)
			p.Pan(5000, 15000)
			s := p.Snapshot()
			assert.Greater(t, s[AxisX].Start, 20.0)
			assert.Greater(t, s[AxisY].Start, 20.0)
		})
	}
}

func TestDataDrivenFollowsSource(t *testing.T) {
	p := newPanPlot(t, &rangectl.Config{}, &rangectl.Config{})
	s := p.Snapshot()
	assert.InDelta(t, 0.55, s[AxisX].Start, 1e-9)
	assert.InDelta(t, 2.45, s[AxisX].End, 1e-9)
	assert.InDelta(t, 0.55, s[AxisY].Start, 1e-9)
	assert.InDelta(t, 1.45, s[AxisY].End, 1e-9)

	require.NoError(t, p.Source().Stream(map[string][]float64{"x": {3}, "y": {5}}))
	s = p.Snapshot()
	assert.InDelta(t, 3.45, s[AxisX].End, 1e-9)
	assert.InDelta(t, 5.45, s[AxisY].End, 1e-9)

	// once panned the x range stays where the user left it
	p.Pan(1, 0)
	panned := p.Snapshot()[AxisX]
	require.NoError(t, p.Source().Stream(map[string][]float64{"x": {10}, "y": {1}}))
	assert.Equal(t, panned, p.Snapshot()[AxisX])
	assert.InDelta(t, 5.45, p.Snapshot()[AxisY].End, 1e-9)

	p.Reset()
	assert.InDelta(t, 10.45, p.Snapshot()[AxisX].End, 1e-9)
}

func TestZoomAndReset(t *testing.T) {
	p := newPanPlot(t, fixed(0, 4, nil), fixed(4, 0, nil))
	p.Zoom(2, 2, 0.5)
	if diff := cmp.Diff(map[string]interval.Interval{
		AxisX: interval.New(1, 3),
		AxisY: interval.New(3, 1),
	}, p.Snapshot()); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	p.Reset()
	if diff := cmp.Diff(map[string]interval.Interval{
		AxisX: interval.New(0, 4),
		AxisY: interval.New(4, 0),
	}, p.Snapshot()); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestNewErrors(t *testing.T) {
	cases := map[string]Config{
		"MissingColumn": {
			XRange: rangectl.FixedConfig(0, 1, nil),
			YRange: rangectl.FixedConfig(0, 1, nil),
			Glyphs: []Glyph{{X: "x", Y: "y"}},
		},
		"RaggedSource": {
			XRange: rangectl.FixedConfig(0, 1, nil),
			YRange: rangectl.FixedConfig(0, 1, nil),
			Source: map[string][]float64{"x": {1}, "y": {1, 2}},
		},
		"InvalidRange": {
			XRange: rangectl.Config{Mode: rangectl.ModeFixed},
			YRange: rangectl.FixedConfig(0, 1, nil),
		},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
xRange:
  start: 0
  end: 3
  bounds:
    min: -1
yRange:
  rangePadding: 0.1
  bounds:
    auto: true
source:
  x: [1, 2]
  y: [1, 1]
glyphs:
- x: x
  y: y
  width: 0.9
  height: 0.9
`))
	require.NoError(t, err)
	assert.Equal(t, rangectl.ModeFixed, cfg.XRange.EffectiveMode())
	assert.Equal(t, rangectl.ModeDataDriven, cfg.YRange.EffectiveMode())
	assert.True(t, cfg.YRange.Bounds.Auto)

	p, err := New(cfg)
	require.NoError(t, err)
	p.Pan(-200, 0)
	assert.Equal(t, interval.New(-1, 2), p.Snapshot()[AxisX])

	_, err = Load(strings.NewReader("xRange: {begin: 1}\n"))
	assert.Error(t, err)
}
