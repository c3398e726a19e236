package rangectl

import (
	"github.com/go-logr/logr"

	"github.com/henderiw/rangebound/pkg/interval"
)

// ChangeFunc is called with the new endpoints after every change of the
// interval.
type ChangeFunc func(start, end float64)

type Option func(*Range)

func WithLogger(l logr.Logger) Option {
	return func(r *Range) {
		r.l = l
	}
}

// Range is a bounded range controller. It owns one interval, optional hard
// bounds and the observers of the interval.
//
// Range is not safe for concurrent use; callers serialize access. Observers
// run synchronously and may call back into the Range.
type Range struct {
	l    logr.Logger
	cfg  Config
	mode Mode

	iv         interval.Interval
	bounds     *interval.Bounds
	autoBounds bool

	// reset is the interval restored by Reset; fitted is the last envelope
	// computed from data, nil until the first fit.
	reset       interval.Interval
	fitted      *interval.Interval
	interactive bool

	observers []*observer
	nextID    uint64
}

type observer struct {
	id     uint64
	fn     ChangeFunc
	active bool
}

func New(cfg Config, opts ...Option) (*Range, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := cfg.Bounds.bounds()
	if err != nil {
		return nil, err
	}
	r := &Range{
		l:          logr.Discard(),
		cfg:        cfg,
		mode:       cfg.EffectiveMode(),
		bounds:     b,
		autoBounds: cfg.Bounds != nil && cfg.Bounds.Auto,
	}
	for _, o := range opts {
		o(r)
	}

	r.iv = r.initial()
	if r.autoBounds && r.mode == ModeFixed {
		ab := interval.NewBounds(r.iv.Min(), r.iv.Max())
		r.bounds = &ab
	}
	r.iv, _ = interval.Clamp(r.iv, r.bounds, r.iv.Width())
	r.reset = r.iv

	r.l.V(2).Info("range created", "mode", r.mode, "interval", r.iv.String(), "bounds", r.boundsString())
	return r, nil
}

// initial returns the configured interval; missing endpoints of a data driven
// range are filled with the default span.
func (r *Range) initial() interval.Interval {
	span := r.cfg.defaultSpan()
	switch {
	case r.cfg.Start != nil && r.cfg.End != nil:
		return interval.New(*r.cfg.Start, *r.cfg.End)
	case r.cfg.Start != nil:
		if r.cfg.Flipped {
			return interval.New(*r.cfg.Start, *r.cfg.Start-span)
		}
		return interval.New(*r.cfg.Start, *r.cfg.Start+span)
	case r.cfg.End != nil:
		if r.cfg.Flipped {
			return interval.New(*r.cfg.End+span, *r.cfg.End)
		}
		return interval.New(*r.cfg.End-span, *r.cfg.End)
	}
	if r.cfg.Flipped {
		return interval.New(span/2, -span/2)
	}
	return interval.New(-span/2, span/2)
}

func (r *Range) Start() float64 { return r.iv.Start }
func (r *Range) End() float64 { return r.iv.End }
func (r *Range) Interval() interval.Interval { return r.iv }
func (r *Range) Mode() Mode { return r.mode }

// Interactive reports whether the interval was changed by pan or zoom since
// creation or the last Reset. Interactive data driven ranges keep their
// interval when the data changes.
func (r *Range) Interactive() bool { return r.interactive }

// Bounds returns the current hard bounds; false means unbounded.
func (r *Range) Bounds() (interval.Bounds, bool) {
	if r.bounds == nil {
		return interval.Bounds{}, false
	}
	return *r.bounds, true
}

func (r *Range) boundsString() string {
	if r.bounds == nil {
		return "none"
	}
	return r.bounds.String()
}

// Subscribe registers fn for change notifications. The returned func removes
// the registration.
func (r *Range) Subscribe(fn ChangeFunc) func() {
	r.nextID++
	o := &observer{id: r.nextID, fn: fn, active: true}
	r.observers = append(r.observers, o)
	return func() {
		o.active = false
		observers := make([]*observer, 0, len(r.observers))
		for _, other := range r.observers {
			if other.id != o.id {
				observers = append(observers, other)
			}
		}
		r.observers = observers
	}
}

// set stores iv and notifies the observers when it differs from the current
// interval. An observer that changes the range again supersedes iv: the
// nested change has already notified everyone, so the remaining observers are
// skipped.
func (r *Range) set(iv interval.Interval, op string) bool {
	if iv.Equal(r.iv) {
		r.l.V(2).Info("range unchanged", "op", op, "interval", r.iv.String())
		return false
	}
	r.l.V(2).Info("range changed", "op", op, "from", r.iv.String(), "to", iv.String())
	r.iv = iv
	observers := r.observers
	for _, o := range observers {
		if !r.iv.Equal(iv) {
			break
		}
		if o.active {
			o.fn(iv.Start, iv.End)
		}
	}
	return true
}

func (r *Range) clamp(iv interval.Interval, width float64, op string) interval.Interval {
	out, clamped := interval.Clamp(iv, r.bounds, width)
	if clamped {
		r.l.V(1).Info("range clamped", "op", op, "requested", iv.String(), "clamped", out.String(), "bounds", r.boundsString())
	}
	return out
}
