package interval

// Clamp applies the bounds policy to iv. width is the width the interval had
// before it was shifted: a pan passes the old width, a zoom the new one.
//
// A nil b leaves iv untouched. Otherwise the interval is moved back inside
// the bounds, and pinned to exactly [b.Min, b.Max] when it does not fit. The
// direction of iv is preserved.
func Clamp(iv Interval, b *Bounds, width float64) (Interval, bool) {
	if b == nil {
		return iv, false
	}
	lo, hi := iv.Min(), iv.Max()
	switch {
	case b.Finite() && width >= b.Width():
		lo, hi = b.Min, b.Max
	case lo < b.Min:
		lo = b.Min
		hi = lo + width
	case hi > b.Max:
		hi = b.Max
		lo = hi - width
	}
	out := iv.Oriented(lo, hi)
	return out, !out.Equal(iv)
}
