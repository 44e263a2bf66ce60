package pattern

import "TurnipSentinel/internal/interval"

var (
	highRate    = interval.New(9000, 14000)
	decStep     = interval.New(300, 500)
	fluctStep   = interval.New(400, 1000)
	lowTailRate = interval.New(4000, 9000)
)

var fluctuatingModel = Model{
	Pattern: Fluctuating,
	Phases: []Phase{
		{Name: "high 1", Kind: KindUniform, MinLen: 0, MaxLen: 6, Rate: highRate},
		{Name: "decreasing 1", Kind: KindDecreasing, MinLen: 2, MaxLen: 3, Rate: interval.New(6000, 8000), Step: fluctStep},
		{Name: "high 2", Kind: KindUniform, MinLen: 1, MaxLen: 7, Rate: highRate},
		{Name: "decreasing 2", Kind: KindDecreasing, MinLen: 2, MaxLen: 3, Rate: interval.New(6000, 8000), Step: fluctStep},
		{Name: "high 3", Kind: KindUniform, MinLen: 0, MaxLen: 6, Rate: highRate},
	},
	Ties: []Tie{
		{Phases: []int{0, 2, 4}, Total: 7},
		{Phases: []int{1, 3}, Total: 5},
	},
}

var largeSpikeModel = Model{
	Pattern: LargeSpike,
	Phases: []Phase{
		{Name: "decreasing", Kind: KindDecreasing, MinLen: 1, MaxLen: 7, Rate: interval.New(8500, 9000), Step: decStep},
		{Name: "spike", Kind: KindSpike, MinLen: 5, MaxLen: 5, Spike: []Bound{
			{Rate: interval.New(9000, 14000)},
			{Rate: interval.New(14000, 20000)},
			{Rate: interval.New(20000, 60000)},
			{Rate: interval.New(14000, 20000)},
			{Rate: interval.New(9000, 14000)},
		}},
		{Name: "random low", Kind: KindUniform, MinLen: 0, MaxLen: 6, Rate: lowTailRate},
	},
}

var decreasingModel = Model{
	Pattern: Decreasing,
	Phases: []Phase{
		{Name: "decreasing", Kind: KindDecreasing, MinLen: 12, MaxLen: 12, Rate: interval.New(8500, 9000), Step: decStep},
	},
}

var smallSpikeModel = Model{
	Pattern: SmallSpike,
	Phases: []Phase{
		{Name: "decreasing 1", Kind: KindDecreasing, MinLen: 0, MaxLen: 7, Rate: lowTailRate, Step: decStep},
		{Name: "spike", Kind: KindSpike, MinLen: 5, MaxLen: 5, Spike: []Bound{
			{Rate: interval.New(9000, 14000)},
			{Rate: interval.New(9000, 14000)},
			{Rate: interval.New(14000, 20000), Offset: -1},
			{Rate: interval.New(14000, 20000)},
			{Rate: interval.New(14000, 20000), Offset: -1},
		}},
		{Name: "decreasing 2", Kind: KindDecreasing, MinLen: 0, MaxLen: 7, Rate: lowTailRate, Step: decStep},
	},
}

// Model returns the phase table of the pattern.
func (p Pattern) Model() Model {
	switch p {
	case Fluctuating:
		return fluctuatingModel
	case LargeSpike:
		return largeSpikeModel
	case Decreasing:
		return decreasingModel
	case SmallSpike:
		return smallSpikeModel
	default:
		return Model{Pattern: p}
	}
}
