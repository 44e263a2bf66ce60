package interval

import "fmt"

// Interval is a closed integer range [Low, High]. An interval with Low > High is empty.
type Interval struct {
	Low  int
	High int
}

// Empty is the canonical empty interval. It is the identity for Union.
var Empty = Interval{Low: 1, High: 0}

// New returns [low, high].
func New(low, high int) Interval {
	return Interval{Low: low, High: high}
}

// Point returns the singleton interval [v, v].
func Point(v int) Interval {
	return Interval{Low: v, High: v}
}

// IsEmpty reports whether the interval contains no values.
func (i Interval) IsEmpty() bool {
	return i.Low > i.High
}

// IsPoint reports whether the interval holds exactly one value.
func (i Interval) IsPoint() bool {
	return i.Low == i.High
}

// Contains reports whether v lies inside the interval, bounds included.
func (i Interval) Contains(v int) bool {
	return i.Low <= v && v <= i.High
}

// Covers reports whether every value of o is also in i. The empty interval is covered by anything.
func (i Interval) Covers(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return i.Low <= o.Low && o.High <= i.High
}

// Union returns the smallest interval containing both i and o.
func (i Interval) Union(o Interval) Interval {
	switch {
	case i.IsEmpty():
		return o
	case o.IsEmpty():
		return i
	}
	return Interval{Low: min(i.Low, o.Low), High: max(i.High, o.High)}
}

// Intersect returns the values common to i and o, possibly empty.
func (i Interval) Intersect(o Interval) Interval {
	r := Interval{Low: max(i.Low, o.Low), High: min(i.High, o.High)}
	if r.IsEmpty() {
		return Empty
	}
	return r
}

// Shift moves both bounds by d.
func (i Interval) Shift(d int) Interval {
	if i.IsEmpty() {
		return i
	}
	return Interval{Low: i.Low + d, High: i.High + d}
}

// String renders "low" for a singleton and "low-high" otherwise.
func (i Interval) String() string {
	if i.IsEmpty() {
		return "-"
	}
	if i.IsPoint() {
		return fmt.Sprintf("%d", i.Low)
	}
	return fmt.Sprintf("%d-%d", i.Low, i.High)
}
