package forecast

import (
	"TurnipSentinel/internal/candidate"
	"TurnipSentinel/internal/interval"
	"TurnipSentinel/internal/model"
	"TurnipSentinel/internal/pattern"
)

// PriceRange converts a slot's multiplier bound into the absolute prices it can
// produce for the given buy price. The low end is rounded down and the high end
// up, so no attainable integer price is ever excluded.
func PriceRange(base int, b pattern.Bound) interval.Interval {
	low := base * b.Rate.Low / pattern.Scale
	high := (base*b.Rate.High + pattern.Scale - 1) / pattern.Scale
	return interval.New(low, high).Shift(b.Offset)
}

// PriceRanges converts every slot of a candidate.
func PriceRanges(base int, c candidate.Candidate) [model.SlotCount]interval.Interval {
	var out [model.SlotCount]interval.Interval
	for i, b := range c.Slots {
		out[i] = PriceRange(base, b)
	}
	return out
}
