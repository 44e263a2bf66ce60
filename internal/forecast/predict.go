// Package forecast narrows the four price patterns down to the ones that agree
// with a week's observed prices and reports their price ranges.
package forecast

import (
	"errors"
	"fmt"
	"math"

	"TurnipSentinel/internal/model"
	"TurnipSentinel/internal/pattern"
)

// MaxBasePrice is the largest buy price whose price ranges fit in an int.
const MaxBasePrice = (math.MaxInt - pattern.Scale) / pattern.MaxRate

var (
	ErrInvalidBasePrice = errors.New("buy price out of range")
	ErrInvalidSlot      = errors.New("slot out of range")
	ErrInvalidPrice     = errors.New("sell price must be positive")
)

// Validate rejects inputs the engine cannot reason about.
func Validate(base int, obs model.Observations) error {
	if base <= 0 || base > MaxBasePrice {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidBasePrice, base, MaxBasePrice)
	}
	for _, s := range obs.Slots() {
		if !s.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidSlot, int(s))
		}
		if v := obs[s]; v <= 0 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidPrice, s, v)
		}
	}
	return nil
}

// Predict returns one prediction per pattern that is still consistent with obs,
// in pattern order. An empty result means no pattern fits and is not an error.
func Predict(base int, obs model.Observations) ([]model.PatternPrediction, error) {
	if err := Validate(base, obs); err != nil {
		return nil, err
	}
	var out []model.PatternPrediction
	for _, p := range pattern.All {
		if pred, ok := predictPattern(p, base, obs); ok {
			out = append(out, pred)
		}
	}
	return out, nil
}

func predictPattern(p pattern.Pattern, base int, obs model.Observations) (model.PatternPrediction, bool) {
	survivors := Survivors(p, base, obs)
	if len(survivors) == 0 {
		return model.PatternPrediction{}, false
	}
	pred := model.PatternPrediction{
		PatternName: p.String(),
		BasePrice:   base,
		Ranges:      Consolidate(survivors, obs),
		Variants:    make([]model.Variant, 0, len(survivors)),
	}
	for _, sv := range survivors {
		pred.Variants = append(pred.Variants, model.Variant{
			PhaseLengths: sv.Candidate.Lengths,
			Ranges:       Pin(sv.Ranges, obs),
		})
	}
	return pred, true
}
