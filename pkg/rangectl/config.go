package rangectl

import (
	"errors"
	"fmt"
	"math"

	"github.com/henderiw/rangebound/pkg/interval"
)

var ErrInvalidConfig = errors.New("invalid range config")

// Mode selects how the interval is driven.
type Mode string

const (
	// ModeFixed intervals only change through explicit pan/zoom calls.
	ModeFixed Mode = "fixed"
	// ModeDataDriven intervals are refitted to the data extent whenever it
	// changes.
	ModeDataDriven Mode = "data"
)

type PaddingUnits string

const (
	PaddingPercent  PaddingUnits = "percent"
	PaddingAbsolute PaddingUnits = "absolute"
)

// Follow keeps a data driven interval attached to one end of the data.
type Follow string

const (
	FollowNone  Follow = ""
	FollowStart Follow = "start"
	FollowEnd   Follow = "end"
)

const DefaultSpan float64 = 2

// BoundsConfig configures hard bounds. A nil side is unbounded. Auto derives
// the bounds: from the initial interval in fixed mode, from the fitted data
// envelope in data mode.
type BoundsConfig struct {
	Min  *float64 `yaml:"min,omitempty"`
	Max  *float64 `yaml:"max,omitempty"`
	Auto bool     `yaml:"auto,omitempty"`
}

// Config is the construction record of a Range.
type Config struct {
	Start  *float64      `yaml:"start,omitempty"`
	End    *float64      `yaml:"end,omitempty"`
	Bounds *BoundsConfig `yaml:"bounds,omitempty"`
	Mode   Mode          `yaml:"mode,omitempty"`

	MinInterval *float64 `yaml:"minInterval,omitempty"`
	MaxInterval *float64 `yaml:"maxInterval,omitempty"`

	RangePadding   float64      `yaml:"rangePadding,omitempty"`
	PaddingUnits   PaddingUnits `yaml:"paddingUnits,omitempty"`
	Flipped        bool         `yaml:"flipped,omitempty"`
	Follow         Follow       `yaml:"follow,omitempty"`
	FollowInterval *float64     `yaml:"followInterval,omitempty"`
	DefaultSpan    *float64     `yaml:"defaultSpan,omitempty"`
}

// Float returns a pointer to v, for filling optional config fields.
func Float(v float64) *float64 { return &v }

// FixedConfig returns the config of a fixed interval with optional bounds.
func FixedConfig(start, end float64, b *interval.Bounds) Config {
	cfg := Config{Start: Float(start), End: Float(end), Mode: ModeFixed}
	if b != nil {
		cfg.Bounds = BoundsFrom(*b)
	}
	return cfg
}

// BoundsFrom converts bounds into their config form; infinite sides are left
// unset.
func BoundsFrom(b interval.Bounds) *BoundsConfig {
	bc := &BoundsConfig{}
	if !math.IsInf(b.Min, -1) {
		bc.Min = Float(b.Min)
	}
	if !math.IsInf(b.Max, 1) {
		bc.Max = Float(b.Max)
	}
	return bc
}

// EffectiveMode returns the configured mode, defaulting to fixed when both
// endpoints are given and to data driven otherwise.
func (r Config) EffectiveMode() Mode {
	if r.Mode != "" {
		return r.Mode
	}
	if r.Start != nil && r.End != nil {
		return ModeFixed
	}
	return ModeDataDriven
}

func (r Config) defaultSpan() float64 {
	if r.DefaultSpan == nil {
		return DefaultSpan
	}
	return *r.DefaultSpan
}

// Validate reports every problem of the config. Bound problems wrap
// interval.ErrInvalidBounds, everything else wraps ErrInvalidConfig.
func (r Config) Validate() error {
	var errm error
	invalid := func(format string, a ...any) {
		errm = errors.Join(errm, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, a...)))
	}

	mode := r.EffectiveMode()
	switch mode {
	case ModeFixed:
		if r.Start == nil || r.End == nil {
			invalid("fixed mode requires both start and end")
		}
	case ModeDataDriven:
	default:
		invalid("unknown mode %q", mode)
	}
	if r.Start != nil && !interval.IsFinite(*r.Start) {
		invalid("start %g is not finite", *r.Start)
	}
	if r.End != nil && !interval.IsFinite(*r.End) {
		invalid("end %g is not finite", *r.End)
	}
	if r.Bounds != nil {
		if _, err := r.Bounds.bounds(); err != nil {
			errm = errors.Join(errm, err)
		}
		if r.Bounds.Auto && (r.Bounds.Min != nil || r.Bounds.Max != nil) {
			invalid("auto bounds cannot be combined with explicit min/max")
		}
	}
	if r.MinInterval != nil && !(*r.MinInterval >= 0) {
		invalid("minInterval %g must be >= 0", *r.MinInterval)
	}
	if r.MaxInterval != nil && !(*r.MaxInterval > 0) {
		invalid("maxInterval %g must be > 0", *r.MaxInterval)
	}
	if r.MinInterval != nil && r.MaxInterval != nil && *r.MinInterval > *r.MaxInterval {
		invalid("minInterval %g is bigger then maxInterval %g", *r.MinInterval, *r.MaxInterval)
	}
	if !(r.RangePadding >= 0) || math.IsInf(r.RangePadding, 0) {
		invalid("rangePadding %g must be a finite value >= 0", r.RangePadding)
	}
	switch r.PaddingUnits {
	case "", PaddingPercent, PaddingAbsolute:
	default:
		invalid("unknown paddingUnits %q", r.PaddingUnits)
	}
	switch r.Follow {
	case FollowNone:
	case FollowStart, FollowEnd:
		if r.FollowInterval == nil || !(*r.FollowInterval > 0) {
			invalid("follow %q requires a followInterval > 0", r.Follow)
		}
	default:
		invalid("unknown follow %q", r.Follow)
	}
	if span := r.defaultSpan(); !(span > 0) || math.IsInf(span, 0) {
		invalid("defaultSpan %g must be a finite value > 0", span)
	}
	return errm
}

// bounds returns nil when no explicit limit is configured.
func (r *BoundsConfig) bounds() (*interval.Bounds, error) {
	if r == nil || (r.Min == nil && r.Max == nil) {
		return nil, nil
	}
	b := interval.Unbounded()
	if r.Min != nil {
		b.Min = *r.Min
	}
	if r.Max != nil {
		b.Max = *r.Max
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
