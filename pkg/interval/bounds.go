package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds are hard limits on an interval. An unbounded side is stored as
// -Inf (Min) or +Inf (Max). Min <= Max regardless of interval direction.
type Bounds struct {
	Min float64
	Max float64
}

func NewBounds(min, max float64) Bounds {
	return Bounds{Min: min, Max: max}
}

// Lower returns bounds with only a lower limit.
func Lower(min float64) Bounds {
	return Bounds{Min: min, Max: math.Inf(1)}
}

// Upper returns bounds with only an upper limit.
func Upper(max float64) Bounds {
	return Bounds{Min: math.Inf(-1), Max: max}
}

func Unbounded() Bounds {
	return Bounds{Min: math.Inf(-1), Max: math.Inf(1)}
}

// ParseBounds parses "min:max"; either side may be left empty to leave that
// side unbounded, e.g. "-1:" or ":4".
func ParseBounds(s string) (Bounds, error) {
	b := Unbounded()
	h := strings.IndexByte(s, ':')
	if h == -1 {
		return b, fmt.Errorf("no colon in bounds %q", s)
	}
	from, to := strings.TrimSpace(s[:h]), strings.TrimSpace(s[h+1:])
	if from != "" {
		v, err := strconv.ParseFloat(from, 64)
		if err != nil {
			return b, fmt.Errorf("invalid min %q in bounds %q", from, s)
		}
		b.Min = v
	}
	if to != "" {
		v, err := strconv.ParseFloat(to, 64)
		if err != nil {
			return b, fmt.Errorf("invalid max %q in bounds %q", to, s)
		}
		b.Max = v
	}
	return b, b.Validate()
}

func (r Bounds) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return fmt.Errorf("%w: NaN limit in %s", ErrInvalidBounds, r)
	}
	if math.IsInf(r.Min, 1) || math.IsInf(r.Max, -1) {
		return fmt.Errorf("%w: min %g, max %g leave no finite values", ErrInvalidBounds, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %g is bigger then max %g", ErrInvalidBounds, r.Min, r.Max)
	}
	return nil
}

func (r Bounds) String() string {
	var sb strings.Builder
	if !math.IsInf(r.Min, -1) {
		sb.WriteString(strconv.FormatFloat(r.Min, 'g', -1, 64))
	}
	sb.WriteByte(':')
	if !math.IsInf(r.Max, 1) {
		sb.WriteString(strconv.FormatFloat(r.Max, 'g', -1, 64))
	}
	return sb.String()
}

// Width returns Max - Min; +Inf when a side is unbounded.
func (r Bounds) Width() float64 { return r.Max - r.Min }

// Finite reports whether both sides are limited.
func (r Bounds) Finite() bool {
	return IsFinite(r.Min) && IsFinite(r.Max)
}

// Contains reports whether both endpoints of iv lie within the bounds.
func (r Bounds) Contains(iv Interval) bool {
	return iv.Min() >= r.Min && iv.Max() <= r.Max
}
