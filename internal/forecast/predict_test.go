package forecast

import (
	"errors"
	"sync"
	"testing"

	"TurnipSentinel/internal/interval"
	"TurnipSentinel/internal/model"
	"TurnipSentinel/internal/pattern"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(preds []model.PatternPrediction) []string {
	out := make([]string, 0, len(preds))
	for _, p := range preds {
		out = append(out, p.PatternName)
	}
	return out
}

func byName(t *testing.T, preds []model.PatternPrediction, name string) model.PatternPrediction {
	t.Helper()
	for _, p := range preds {
		if p.PatternName == name {
			return p
		}
	}
	t.Fatalf("pattern %q not in %v", name, names(preds))
	return model.PatternPrediction{}
}

func TestPredict_NoObservations(t *testing.T) {
	preds, err := Predict(100, model.Observations{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fluctuating", "Large Spike", "Decreasing", "Small Spike"}, names(preds))

	dec := byName(t, preds, "Decreasing")
	assert.Equal(t, "85-90", dec.Ranges[0].String())
	assert.Equal(t, "30-57", dec.Ranges[11].String())
	assert.Len(t, dec.Variants, 1)

	assert.Equal(t, interval.New(60, 140), byName(t, preds, "Fluctuating").Ranges[0])
	assert.Equal(t, interval.New(85, 90), byName(t, preds, "Large Spike").Ranges[0])
	assert.Equal(t, interval.New(40, 140), byName(t, preds, "Small Spike").Ranges[0])
	assert.Len(t, byName(t, preds, "Fluctuating").Variants, 56)
}

func TestPredict_FirstSlotScenario(t *testing.T) {
	preds, err := Predict(100, model.Observations{0: 85})
	require.NoError(t, err)
	assert.Equal(t, []string{"Large Spike", "Decreasing", "Small Spike"}, names(preds))
	for _, p := range preds {
		assert.Equal(t, "85", p.Strings()[0], p.PatternName)
		assert.Equal(t, 100, p.BasePrice)
	}
}

func TestPredict_Unreachable(t *testing.T) {
	preds, err := Predict(90, model.Observations{0: 200})
	require.NoError(t, err)
	assert.Empty(t, preds)
}

func TestPredict_FullDecreasingWeek(t *testing.T) {
	obs := model.Observations{}
	for s := 0; s < model.SlotCount; s++ {
		obs[model.Slot(s)] = 90 - 3*s
	}
	preds, err := Predict(100, obs)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "Decreasing", preds[0].PatternName)
	require.Len(t, preds[0].Variants, 1)
	for s, r := range preds[0].Ranges {
		assert.Equal(t, interval.Point(90-3*s), r, "slot %d", s)
	}
}

func TestPredict_FullLargeSpikeWeek(t *testing.T) {
	prices := []int{88, 85, 82, 120, 170, 400, 160, 100, 50, 60, 70, 80}
	obs := model.ObservationsFromPrices(prices)
	preds, err := Predict(100, obs)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "Large Spike", preds[0].PatternName)
	require.Len(t, preds[0].Variants, 1)
	assert.Equal(t, []int{3, 5, 4}, preds[0].Variants[0].PhaseLengths)
	for s, r := range preds[0].Strings() {
		assert.Equal(t, interval.Point(prices[s]).String(), r)
	}
}

func TestPredict_ObservedSlotsArePinned(t *testing.T) {
	obs := model.Observations{0: 88, 3: 80, 4: 130}
	preds, err := Predict(100, obs)
	require.NoError(t, err)
	require.NotEmpty(t, preds)
	for _, p := range preds {
		for s, v := range obs {
			assert.Equal(t, interval.Point(v), p.Ranges[s], "%s %s", p.PatternName, s)
		}
		for _, v := range p.Variants {
			for s, price := range obs {
				assert.Equal(t, interval.Point(price), v.Ranges[s])
			}
		}
	}
}

func TestPredict_UnionCoversSurvivors(t *testing.T) {
	obs := model.Observations{0: 88, 1: 84}
	for _, p := range pattern.All {
		survivors := Survivors(p, 100, obs)
		if len(survivors) == 0 {
			continue
		}
		merged := Consolidate(survivors, obs)
		for _, sv := range survivors {
			for s, r := range sv.Ranges {
				if _, seen := obs[model.Slot(s)]; seen {
					continue
				}
				assert.True(t, merged[s].Covers(r), "%s slot %d: %v does not cover %v", p, s, merged[s], r)
			}
		}
	}
}

func TestPredict_MoreObservationsNeverWiden(t *testing.T) {
	steps := []struct {
		slot  model.Slot
		price int
	}{
		{0, 88}, {1, 84}, {2, 80}, {3, 125}, {4, 160},
	}
	obs := model.Observations{}
	prev, err := Predict(100, obs)
	require.NoError(t, err)
	for _, st := range steps {
		obs = obs.With(st.slot, st.price)
		next, err := Predict(100, obs)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(next), len(prev))
		for _, p := range next {
			before := byName(t, prev, p.PatternName)
			for s := range p.Ranges {
				assert.True(t, before.Ranges[s].Covers(p.Ranges[s]),
					"%s slot %d widened from %v to %v", p.PatternName, s, before.Ranges[s], p.Ranges[s])
			}
		}
		prev = next
	}
}

func TestPredict_Idempotent(t *testing.T) {
	obs := model.Observations{0: 95, 1: 110, 5: 70}
	a, err := Predict(103, obs)
	require.NoError(t, err)
	b, err := Predict(103, obs)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPredict_DoesNotMutateObservations(t *testing.T) {
	obs := model.Observations{2: 77}
	_, err := Predict(100, obs)
	require.NoError(t, err)
	assert.Equal(t, model.Observations{2: 77}, obs)
}

func TestPredict_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		base int
		obs  model.Observations
		want error
	}{
		{"zero base", 0, nil, ErrInvalidBasePrice},
		{"negative base", -5, nil, ErrInvalidBasePrice},
		{"base too large", MaxBasePrice + 1, nil, ErrInvalidBasePrice},
		{"slot too high", 100, model.Observations{12: 90}, ErrInvalidSlot},
		{"negative slot", 100, model.Observations{-1: 90}, ErrInvalidSlot},
		{"zero price", 100, model.Observations{3: 0}, ErrInvalidPrice},
		{"negative price", 100, model.Observations{3: -4}, ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, err := Predict(tt.base, tt.obs)
			assert.Nil(t, preds)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestPriceRange_Rounding(t *testing.T) {
	tests := []struct {
		name  string
		base  int
		bound pattern.Bound
		want  interval.Interval
	}{
		{"exact", 100, pattern.Bound{Rate: interval.New(8500, 9000)}, interval.New(85, 90)},
		{"rounds outward", 99, pattern.Bound{Rate: interval.New(8500, 9000)}, interval.New(84, 90)},
		{"offset", 100, pattern.Bound{Rate: interval.New(14000, 20000), Offset: -1}, interval.New(139, 199)},
		{"large spike peak", 110, pattern.Bound{Rate: interval.New(20000, 60000)}, interval.New(220, 660)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceRange(tt.base, tt.bound), tt.name)
	}
}

func TestConsistent(t *testing.T) {
	var ranges [model.SlotCount]interval.Interval
	for i := range ranges {
		ranges[i] = interval.New(50, 100)
	}
	assert.True(t, Consistent(ranges, nil))
	assert.True(t, Consistent(ranges, model.Observations{0: 50, 11: 100}))
	assert.False(t, Consistent(ranges, model.Observations{4: 101}))
	assert.False(t, Consistent(ranges, model.Observations{12: 60}))
}

func TestPredict_LargestBasePrice(t *testing.T) {
	preds, err := Predict(MaxBasePrice, model.Observations{})
	require.NoError(t, err)
	spike := byName(t, preds, "Large Spike")
	// Slot 5 is the peak when the spike starts on Tuesday PM.
	assert.Equal(t, MaxBasePrice*6, spike.Ranges[5].High)
	for s, r := range spike.Ranges {
		assert.False(t, r.IsEmpty(), "slot %d", s)
		assert.Positive(t, r.Low, "slot %d", s)
	}
}

func TestPredict_Concurrent(t *testing.T) {
	inputs := []model.Observations{
		{},
		{0: 85},
		{0: 88, 3: 80, 4: 130},
		{2: 60, 6: 120},
	}
	want := make([][]model.PatternPrediction, len(inputs))
	for i, obs := range inputs {
		preds, err := Predict(100, obs)
		require.NoError(t, err)
		want[i] = preds
	}

	got := make([][]model.PatternPrediction, len(inputs)*8)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = Predict(100, inputs[i%len(inputs)])
		}()
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want[i%len(inputs)], got[i], "call %d", i)
	}
}
