// Package pattern declares the four weekly turnip price patterns as static
// phase tables. Multipliers are expressed in basis points of the buy price.
package pattern

import (
	"TurnipSentinel/internal/interval"
)

// Scale is the number of rate units per 1.0x of the buy price.
const Scale = 10000

// MaxRate is the largest multiplier any pattern table uses.
const MaxRate = 6 * Scale

// Pattern is one of the fixed weekly price trajectory shapes.
type Pattern int

const (
	Fluctuating Pattern = iota
	LargeSpike
	Decreasing
	SmallSpike
)

// All lists the patterns in display order.
var All = []Pattern{Fluctuating, LargeSpike, Decreasing, SmallSpike}

func (p Pattern) String() string {
	switch p {
	case Fluctuating:
		return "Fluctuating"
	case LargeSpike:
		return "Large Spike"
	case Decreasing:
		return "Decreasing"
	case SmallSpike:
		return "Small Spike"
	default:
		return "Unknown"
	}
}

// Kind is the multiplier-generation rule of a phase.
type Kind int

const (
	// KindUniform draws every slot independently from Rate.
	KindUniform Kind = iota
	// KindDecreasing starts somewhere in Rate and drops by a value in Step after each slot.
	KindDecreasing
	// KindSpike has a fixed length with one bound per position.
	KindSpike
)

func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "uniform"
	case KindDecreasing:
		return "decreasing"
	case KindSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// Bound is the multiplier range of a single slot. Offset is added to the
// rounded price, which the small spike uses for the slots around its peak.
type Bound struct {
	Rate   interval.Interval
	Offset int
}

// Phase is a contiguous run of slots sharing one rule.
type Phase struct {
	Name   string
	Kind   Kind
	MinLen int
	MaxLen int
	Rate   interval.Interval
	Step   interval.Interval
	Spike  []Bound
}

// Tie requires the lengths of the listed phases to add up to Total.
type Tie struct {
	Phases []int
	Total  int
}

// Model is the full declaration of a pattern.
type Model struct {
	Pattern Pattern
	Phases  []Phase
	Ties    []Tie
}

// Bounds returns the per-slot multiplier bounds of the phase when it runs for n slots.
// Decreasing phases carry the running rate interval from one slot to the next.
func (ph Phase) Bounds(n int) []Bound {
	out := make([]Bound, 0, n)
	switch ph.Kind {
	case KindUniform:
		for i := 0; i < n; i++ {
			out = append(out, Bound{Rate: ph.Rate})
		}
	case KindDecreasing:
		rate := ph.Rate
		for i := 0; i < n; i++ {
			out = append(out, Bound{Rate: rate})
			rate = interval.New(rate.Low-ph.Step.High, rate.High-ph.Step.Low)
		}
	case KindSpike:
		out = append(out, ph.Spike[:min(n, len(ph.Spike))]...)
	}
	return out
}
