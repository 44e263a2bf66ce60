package forecast

import (
	"TurnipSentinel/internal/candidate"
	"TurnipSentinel/internal/interval"
	"TurnipSentinel/internal/model"
	"TurnipSentinel/internal/pattern"
)

// Survivor is a candidate that agrees with every observation, with its price ranges.
type Survivor struct {
	Candidate candidate.Candidate
	Ranges    [model.SlotCount]interval.Interval
}

// Consistent reports whether every observed price lies inside the range of its slot.
// Slots without an observation impose no constraint.
func Consistent(ranges [model.SlotCount]interval.Interval, obs model.Observations) bool {
	for s, v := range obs {
		if !s.Valid() || !ranges[s].Contains(v) {
			return false
		}
	}
	return true
}

// Survivors runs the candidates of p through the observations.
func Survivors(p pattern.Pattern, base int, obs model.Observations) []Survivor {
	var out []Survivor
	for c := range candidate.Generate(p) {
		ranges := PriceRanges(base, c)
		if !Consistent(ranges, obs) {
			continue
		}
		out = append(out, Survivor{Candidate: c, Ranges: ranges})
	}
	return out
}
