package model

import "TurnipSentinel/internal/interval"

// PatternPrediction is the consolidated price outlook for one pattern that is
// still consistent with the observed prices.
type PatternPrediction struct {
	PatternName string
	BasePrice   int
	// Ranges holds the absolute price range per slot. Observed slots are singletons.
	Ranges [SlotCount]interval.Interval
	// Variants lists every surviving candidate of the pattern, ungrouped.
	Variants []Variant
}

// Variant is a single surviving candidate: its phase lengths and its own price ranges.
type Variant struct {
	PhaseLengths []int
	Ranges       [SlotCount]interval.Interval
}

// Strings renders each slot as "low" or "low-high".
func (p *PatternPrediction) Strings() [SlotCount]string {
	return RangeStrings(p.Ranges)
}

// RangeStrings renders a week of price ranges.
func RangeStrings(ranges [SlotCount]interval.Interval) [SlotCount]string {
	var out [SlotCount]string
	for i, r := range ranges {
		out[i] = r.String()
	}
	return out
}
