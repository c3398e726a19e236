package interval

import "math"

// Extent tracks the min / max of a set of data values.
type Extent struct {
	Min float64
	Max float64
}

// EmptyExtent returns an extent with Min at +Inf and Max at -Inf, suitable for
// iteratively calling Include.
func EmptyExtent() Extent {
	return Extent{Min: math.Inf(1), Max: math.Inf(-1)}
}

// ExtentOf returns the extent of the finite values in vals.
func ExtentOf(vals ...float64) Extent {
	e := EmptyExtent()
	for _, v := range vals {
		e = e.Include(v)
	}
	return e
}

// Include grows the extent to cover v. NaN and infinite values are ignored.
func (r Extent) Include(v float64) Extent {
	if !IsFinite(v) {
		return r
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

func (r Extent) Union(other Extent) Extent {
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}
	return Extent{Min: math.Min(r.Min, other.Min), Max: math.Max(r.Max, other.Max)}
}

// IsEmpty is true when no finite value was ever included.
func (r Extent) IsEmpty() bool {
	return !IsFinite(r.Min) || !IsFinite(r.Max) || r.Min > r.Max
}

func (r Extent) Width() float64 { return r.Max - r.Min }

// Pad grows both sides by w.
func (r Extent) Pad(w float64) Extent {
	if r.IsEmpty() {
		return r
	}
	return Extent{Min: r.Min - w, Max: r.Max + w}
}

// Bounds returns the extent as hard bounds.
func (r Extent) Bounds() Bounds {
	return Bounds{Min: r.Min, Max: r.Max}
}
