package pattern

import (
	"testing"

	"TurnipSentinel/internal/interval"
	"TurnipSentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_LengthsCanReachWeek(t *testing.T) {
	for _, p := range All {
		m := p.Model()
		require.NotEmpty(t, m.Phases, p.String())
		minSum, maxSum := 0, 0
		for _, ph := range m.Phases {
			assert.LessOrEqual(t, ph.MinLen, ph.MaxLen, "%s/%s", p, ph.Name)
			minSum += ph.MinLen
			maxSum += ph.MaxLen
		}
		assert.LessOrEqual(t, minSum, model.SlotCount, p.String())
		assert.GreaterOrEqual(t, maxSum, model.SlotCount, p.String())
	}
}

func TestModel_SpikeTablesMatchLength(t *testing.T) {
	for _, p := range All {
		for _, ph := range p.Model().Phases {
			if ph.Kind != KindSpike {
				continue
			}
			assert.Equal(t, ph.MinLen, ph.MaxLen, "%s/%s", p, ph.Name)
			assert.Len(t, ph.Spike, ph.MaxLen, "%s/%s", p, ph.Name)
		}
	}
}

func TestModel_RatesWithinMaxRate(t *testing.T) {
	for _, p := range All {
		for _, ph := range p.Model().Phases {
			assert.LessOrEqual(t, ph.Rate.High, MaxRate, "%s/%s", p, ph.Name)
			for _, b := range ph.Spike {
				assert.LessOrEqual(t, b.Rate.High, MaxRate, "%s/%s", p, ph.Name)
			}
		}
	}
}

func TestPhaseBounds_Decreasing(t *testing.T) {
	ph := Phase{Kind: KindDecreasing, Rate: interval.New(8500, 9000), Step: interval.New(300, 500)}
	b := ph.Bounds(4)
	require.Len(t, b, 4)
	assert.Equal(t, interval.New(8500, 9000), b[0].Rate)
	assert.Equal(t, interval.New(8000, 8700), b[1].Rate)
	assert.Equal(t, interval.New(7500, 8400), b[2].Rate)
	assert.Equal(t, interval.New(7000, 8100), b[3].Rate)
}

func TestPhaseBounds_Uniform(t *testing.T) {
	ph := Phase{Kind: KindUniform, Rate: interval.New(4000, 9000)}
	b := ph.Bounds(3)
	require.Len(t, b, 3)
	for _, bound := range b {
		assert.Equal(t, interval.New(4000, 9000), bound.Rate)
		assert.Zero(t, bound.Offset)
	}
	assert.Empty(t, ph.Bounds(0))
}

func TestPhaseBounds_SmallSpikeOffsets(t *testing.T) {
	spike := SmallSpike.Model().Phases[1]
	b := spike.Bounds(5)
	require.Len(t, b, 5)
	assert.Equal(t, []int{0, 0, -1, 0, -1}, []int{b[0].Offset, b[1].Offset, b[2].Offset, b[3].Offset, b[4].Offset})
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "Fluctuating", Fluctuating.String())
	assert.Equal(t, "Large Spike", LargeSpike.String())
	assert.Equal(t, "Decreasing", Decreasing.String())
	assert.Equal(t, "Small Spike", SmallSpike.String())
	assert.Equal(t, "Unknown", Pattern(9).String())
}
