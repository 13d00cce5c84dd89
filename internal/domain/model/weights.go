package model

import (
	"fmt"
	"math"
)

// Factor names one of the five scoring functions.
type Factor string

// Scoring factors, named as they appear in API payloads.
const (
	FactorCounter     Factor = "counter"
	FactorSynergy     Factor = "synergy"
	FactorComposition Factor = "team_composition"
	FactorPriority    Factor = "pick_priority"
	FactorRoleFit     Factor = "role_fit"
)

// weightTolerance bounds floating error when checking normalization.
const weightTolerance = 0.001

// Weights is the relative emphasis of each factor. A normalized value has
// non-negative fields summing to 1.
type Weights struct {
	Counter     float64 `json:"counter"`
	Synergy     float64 `json:"synergy"`
	Composition float64 `json:"team_composition"`
	Priority    float64 `json:"pick_priority"`
	RoleFit     float64 `json:"role_fit"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Counter + w.Synergy + w.Composition + w.Priority + w.RoleFit
}

// Add returns w shifted by delta. The result may be negative or unnormalized.
func (w Weights) Add(delta Weights) Weights {
	return Weights{
		Counter:     w.Counter + delta.Counter,
		Synergy:     w.Synergy + delta.Synergy,
		Composition: w.Composition + delta.Composition,
		Priority:    w.Priority + delta.Priority,
		RoleFit:     w.RoleFit + delta.RoleFit,
	}
}

// Normalize clamps negative weights to zero and rescales to sum 1. An
// all-zero input yields equal weights.
func (w Weights) Normalize() Weights {
	c := Weights{
		Counter:     math.Max(0, w.Counter),
		Synergy:     math.Max(0, w.Synergy),
		Composition: math.Max(0, w.Composition),
		Priority:    math.Max(0, w.Priority),
		RoleFit:     math.Max(0, w.RoleFit),
	}
	total := c.Sum()
	if total == 0 {
		return Weights{Counter: 0.2, Synergy: 0.2, Composition: 0.2, Priority: 0.2, RoleFit: 0.2}
	}
	return Weights{
		Counter:     c.Counter / total,
		Synergy:     c.Synergy / total,
		Composition: c.Composition / total,
		Priority:    c.Priority / total,
		RoleFit:     c.RoleFit / total,
	}
}

// Validate checks that w is normalized.
func (w Weights) Validate() error {
	for f, v := range w.Map() {
		if v < 0 {
			return fmt.Errorf("weight %s is negative: %f", f, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.4f, expected 1.0", w.Sum())
	}
	return nil
}

// Get returns the weight of a single factor.
func (w Weights) Get(f Factor) float64 {
	switch f {
	case FactorCounter:
		return w.Counter
	case FactorSynergy:
		return w.Synergy
	case FactorComposition:
		return w.Composition
	case FactorPriority:
		return w.Priority
	case FactorRoleFit:
		return w.RoleFit
	}
	return 0
}

// Map returns the weights keyed by factor name.
func (w Weights) Map() map[Factor]float64 {
	return map[Factor]float64{
		FactorCounter:     w.Counter,
		FactorSynergy:     w.Synergy,
		FactorComposition: w.Composition,
		FactorPriority:    w.Priority,
		FactorRoleFit:     w.RoleFit,
	}
}

// WeightsFromMap builds Weights from factor names. Unknown names are an error.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	var w Weights
	for k, v := range m {
		switch Factor(k) {
		case FactorCounter:
			w.Counter = v
		case FactorSynergy:
			w.Synergy = v
		case FactorComposition:
			w.Composition = v
		case FactorPriority:
			w.Priority = v
		case FactorRoleFit:
			w.RoleFit = v
		default:
			return Weights{}, fmt.Errorf("unknown weight factor %q", k)
		}
	}
	return w, nil
}
