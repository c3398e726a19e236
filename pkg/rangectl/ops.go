package rangectl

import (
	"github.com/henderiw/rangebound/pkg/interval"
)

// Pan shifts the interval by delta data units and clamps it against the
// bounds. Non-finite deltas, and deltas that overflow the endpoints, are
// ignored.
func (r *Range) Pan(delta float64) {
	shifted := r.iv.Shift(delta)
	if !interval.IsFinite(delta) || !shifted.IsFinite() {
		r.l.V(2).Info("pan ignored", "delta", delta)
		return
	}
	next := r.clamp(shifted, r.iv.Width(), "pan")
	if r.set(next, "pan") {
		r.interactive = true
	}
}

// Zoom scales the distance of both endpoints to anchor by factor. A factor
// above 1 zooms out, below 1 zooms in. The resulting width is limited to
// [minInterval, maxInterval] before the bounds are applied. Non-finite input,
// factors <= 0 and zooms that overflow the endpoints are ignored.
func (r *Range) Zoom(anchor, factor float64) {
	if !interval.IsFinite(anchor) || !interval.IsFinite(factor) || factor <= 0 {
		r.l.V(2).Info("zoom ignored", "anchor", anchor, "factor", factor)
		return
	}
	next := interval.New(
		anchor+(r.iv.Start-anchor)*factor,
		anchor+(r.iv.End-anchor)*factor,
	)
	next = r.limitWidth(next, anchor)
	if !next.IsFinite() {
		r.l.V(2).Info("zoom ignored", "anchor", anchor, "factor", factor, "reason", "overflow")
		return
	}
	next = r.clamp(next, next.Width(), "zoom")
	if r.set(next, "zoom") {
		r.interactive = true
	}
}

// ZoomTo sets the interval to the region between a and b, written in the
// current direction of the interval. Empty or non-finite regions are ignored.
func (r *Range) ZoomTo(a, b float64) {
	if !interval.IsFinite(a) || !interval.IsFinite(b) || a == b {
		r.l.V(2).Info("zoom to ignored", "a", a, "b", b)
		return
	}
	region := interval.New(a, b)
	next := r.iv.Oriented(region.Min(), region.Max())
	next = r.limitWidth(next, 0.5*(a+b))
	next = r.clamp(next, next.Width(), "zoomTo")
	if r.set(next, "zoomTo") {
		r.interactive = true
	}
}

// Reset restores the initial interval, or the last data fit for a data
// driven range, and forgets interactive changes.
func (r *Range) Reset() {
	next := r.reset
	if r.mode == ModeDataDriven && r.fitted != nil {
		next = *r.fitted
	}
	r.interactive = false
	r.set(r.clamp(next, next.Width(), "reset"), "reset")
}

// RecomputeAutoRange refits a data driven range to the data extent e. Auto
// bounds follow the fitted envelope. The interval is only refitted while the
// range has not been changed interactively, and explicitly configured
// endpoints are kept. Fixed ranges and empty extents are ignored.
//
// Calling it again with the same extent does not change the state.
func (r *Range) RecomputeAutoRange(e interval.Extent) {
	if r.mode != ModeDataDriven {
		r.l.V(2).Info("auto range ignored", "mode", r.mode)
		return
	}
	if e.IsEmpty() {
		r.l.V(2).Info("auto range ignored", "reason", "empty extent")
		return
	}
	env := r.envelope(e)
	if r.autoBounds {
		b := interval.NewBounds(env.Min(), env.Max())
		r.bounds = &b
	}
	fit := env
	if r.cfg.Start != nil {
		fit.Start = *r.cfg.Start
	}
	if r.cfg.End != nil {
		fit.End = *r.cfg.End
	}
	r.fitted = &fit

	next := r.iv
	if !r.interactive {
		next = fit
	}
	r.l.V(1).Info("auto range", "extent", e, "envelope", env.String(), "bounds", r.boundsString(), "interactive", r.interactive)
	r.set(r.clamp(next, next.Width(), "autorange"), "autorange")
}

// envelope computes the interval fitted to e: follow window, padding and
// orientation.
func (r *Range) envelope(e interval.Extent) interval.Interval {
	lo, hi := e.Min, e.Max
	if fi := r.cfg.FollowInterval; fi != nil && hi-lo > *fi {
		switch r.cfg.Follow {
		case FollowStart:
			hi = lo + *fi
		case FollowEnd:
			lo = hi - *fi
		}
	}

	if w := hi - lo; w == 0 {
		half := r.cfg.defaultSpan() / 2
		lo, hi = lo-half, hi+half
	} else if r.cfg.RangePadding > 0 {
		pad := w * r.cfg.RangePadding / 2
		if r.cfg.PaddingUnits == PaddingAbsolute {
			pad = r.cfg.RangePadding
		}
		lo, hi = lo-pad, hi+pad
	}

	if r.cfg.Flipped {
		return interval.New(hi, lo)
	}
	return interval.New(lo, hi)
}

// limitWidth rescales iv about anchor so its width lies within the configured
// min/max interval.
func (r *Range) limitWidth(iv interval.Interval, anchor float64) interval.Interval {
	w := iv.Width()
	target := w
	if r.cfg.MinInterval != nil && w < *r.cfg.MinInterval {
		target = *r.cfg.MinInterval
	}
	if r.cfg.MaxInterval != nil && w > *r.cfg.MaxInterval {
		target = *r.cfg.MaxInterval
	}
	if target == w {
		return iv
	}
	if w == 0 {
		return r.iv.Oriented(anchor-target/2, anchor+target/2)
	}
	scale := target / w
	return interval.New(anchor+(iv.Start-anchor)*scale, anchor+(iv.End-anchor)*scale)
}
