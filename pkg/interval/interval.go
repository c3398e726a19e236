package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interval is a 1-D data-space window. Start may be larger than End, which
// represents an axis that increases right-to-left.
type Interval struct {
	Start float64
	End   float64
}

func New(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// ParseInterval parses "start:end".
func ParseInterval(s string) (Interval, error) {
	var iv Interval
	h := strings.IndexByte(s, ':')
	if h == -1 {
		return iv, fmt.Errorf("no colon in interval %q", s)
	}
	from, to := strings.TrimSpace(s[:h]), strings.TrimSpace(s[h+1:])
	start, err := strconv.ParseFloat(from, 64)
	if err != nil {
		return iv, fmt.Errorf("invalid start %q in interval %q", from, s)
	}
	end, err := strconv.ParseFloat(to, 64)
	if err != nil {
		return iv, fmt.Errorf("invalid end %q in interval %q", to, s)
	}
	return Interval{Start: start, End: end}, nil
}

func (r Interval) String() string {
	return fmt.Sprintf("%g:%g", r.Start, r.End)
}

// Span returns End - Start; negative when reversed.
func (r Interval) Span() float64 { return r.End - r.Start }

// Width returns the absolute span.
func (r Interval) Width() float64 { return math.Abs(r.Span()) }

// Direction returns +1 for a forward interval, -1 for a reversed one and 0
// when both endpoints coincide.
func (r Interval) Direction() int {
	switch s := r.Span(); {
	case s > 0:
		return 1
	case s < 0:
		return -1
	}
	return 0
}

func (r Interval) Reversed() bool { return r.Start > r.End }

// Min returns the lower endpoint regardless of direction.
func (r Interval) Min() float64 { return math.Min(r.Start, r.End) }

// Max returns the upper endpoint regardless of direction.
func (r Interval) Max() float64 { return math.Max(r.Start, r.End) }

func (r Interval) IsFinite() bool {
	return IsFinite(r.Start) && IsFinite(r.End)
}

func (r Interval) Shift(delta float64) Interval {
	return Interval{Start: r.Start + delta, End: r.End + delta}
}

// Oriented returns the interval covering lo..hi written in the direction of
// the receiver.
func (r Interval) Oriented(lo, hi float64) Interval {
	if r.Reversed() {
		return Interval{Start: hi, End: lo}
	}
	return Interval{Start: lo, End: hi}
}

// Equal reports whether both endpoints match exactly.
func (r Interval) Equal(other Interval) bool {
	return r.Start == other.Start && r.End == other.End
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
