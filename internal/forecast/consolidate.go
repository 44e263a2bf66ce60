package forecast

import (
	"TurnipSentinel/internal/interval"
	"TurnipSentinel/internal/model"
)

// Consolidate unions the surviving candidates slot by slot, then pins observed
// slots to the observed price.
func Consolidate(survivors []Survivor, obs model.Observations) [model.SlotCount]interval.Interval {
	var out [model.SlotCount]interval.Interval
	for i := range out {
		out[i] = interval.Empty
	}
	for _, sv := range survivors {
		for i, r := range sv.Ranges {
			out[i] = out[i].Union(r)
		}
	}
	return Pin(out, obs)
}

// Pin replaces every observed slot with a singleton of the observed value.
func Pin(ranges [model.SlotCount]interval.Interval, obs model.Observations) [model.SlotCount]interval.Interval {
	for s, v := range obs {
		if s.Valid() {
			ranges[s] = interval.Point(v)
		}
	}
	return ranges
}
