// Package candidate enumerates every phase-length instantiation a pattern allows
// and derives the multiplier bounds of each slot for it.
package candidate

import (
	"iter"

	"TurnipSentinel/internal/model"
	"TurnipSentinel/internal/pattern"
)

// Candidate is one fully bound instantiation of a pattern.
type Candidate struct {
	Pattern pattern.Pattern
	// Lengths holds the length of each phase, in the pattern's phase order.
	Lengths []int
	Slots   [model.SlotCount]pattern.Bound
}

// Generate yields the candidates of p. Length combinations that do not fill the
// week exactly, or that break one of the pattern's ties, are skipped.
func Generate(p pattern.Pattern) iter.Seq[Candidate] {
	m := p.Model()
	return func(yield func(Candidate) bool) {
		lengths := make([]int, len(m.Phases))

		var walk func(i, used int) bool
		walk = func(i, used int) bool {
			if i == len(m.Phases) {
				if used != model.SlotCount || !tiesHold(m.Ties, lengths) {
					return true
				}
				return yield(build(m, lengths))
			}
			ph := m.Phases[i]
			for n := ph.MinLen; n <= ph.MaxLen && used+n <= model.SlotCount; n++ {
				lengths[i] = n
				if !walk(i+1, used+n) {
					return false
				}
			}
			return true
		}
		walk(0, 0)
	}
}

// Count returns how many candidates p has.
func Count(p pattern.Pattern) int {
	n := 0
	for range Generate(p) {
		n++
	}
	return n
}

func tiesHold(ties []pattern.Tie, lengths []int) bool {
	for _, tie := range ties {
		sum := 0
		for _, idx := range tie.Phases {
			sum += lengths[idx]
		}
		if sum != tie.Total {
			return false
		}
	}
	return true
}

func build(m pattern.Model, lengths []int) Candidate {
	c := Candidate{
		Pattern: m.Pattern,
		Lengths: append([]int(nil), lengths...),
	}
	slot := 0
	for i, ph := range m.Phases {
		for _, b := range ph.Bounds(lengths[i]) {
			c.Slots[slot] = b
			slot++
		}
	}
	return c
}
