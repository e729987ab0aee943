// Package bnb - relaxation policies (upper bounds).
//
// Rationale:
//   - Pruning is only as good as the bound is tight, and only CORRECT if the
//     bound never underestimates. Every policy here certifies
//     Value ≥ best feasible completion of the given decisions.
//   - Three stock bounds of increasing sharpness, pointwise ordered
//     VeryNaive ≥ Naive ≥ Fractional ≥ optimum:
//     VeryNaive ignores capacity entirely, Naive at least notices when the
//     fixed items alone overflow, Fractional is the LP optimum (greedy
//     density fill with one fractional split item).
//
// Contracts (checked by the engine on every return, see validateRelaxed):
//   - Selection length equals the item count; entries in [0,1].
//   - Fixed items keep their decision in the selection.
//   - Value ≥ the selection's own objective.
//
// Complexity: VeryNaive and Naive O(n); Fractional O(n) past the cached
// density order (O(n log n) once per instance).
package bnb

import (
	"fmt"

	"github.com/katalvlaran/knapbnb/knapsack"
)

// Relaxation computes an optimistic completion for a node's decisions.
//
// Implementations must be deterministic and must never underestimate: a
// bound below the subtree optimum silently breaks pruning soundness, which
// the engine cannot detect (property tests can, against BruteForce).
type Relaxation interface {
	Relax(inst *knapsack.Instance, dec Decisions) (RelaxedSolution, error)
}

// fixedAggregates sums weight and value of the Included items.
func fixedAggregates(inst *knapsack.Instance, dec Decisions) (used, accrued float64) {
	var i int
	for i = range dec {
		if dec[i] == Included {
			used += inst.Items[i].Weight
			accrued += inst.Items[i].Value
		}
	}
	return used, accrued
}

// checkShape guards the policy input. A mismatch is a programming error in
// the caller, reported rather than searched over.
func checkShape(inst *knapsack.Instance, dec Decisions) error {
	if inst == nil {
		return ErrNilInstance
	}
	if len(dec) != inst.NumItems() {
		return fmt.Errorf("bnb: decisions length %d does not match %d items", len(dec), inst.NumItems())
	}
	return nil
}

// VeryNaiveRelaxation takes every undecided item whole and never looks at
// the capacity. The loosest sound bound: it never detects infeasibility and
// is integral only on fully decided nodes. Exists as the teaching baseline
// and as the worst case for dominance tests.
type VeryNaiveRelaxation struct{}

// Relax implements Relaxation.
func (VeryNaiveRelaxation) Relax(inst *knapsack.Instance, dec Decisions) (RelaxedSolution, error) {
	if err := checkShape(inst, dec); err != nil {
		return RelaxedSolution{}, err
	}

	var (
		sel   []float64
		value float64
		i     int
	)
	sel = make([]float64, len(dec))
	for i = range dec {
		if dec[i] == Excluded {
			continue
		}
		// Included and Undecided alike count whole.
		sel[i] = 1
		value += inst.Items[i].Value
	}
	return RelaxedSolution{Selection: sel, Value: value}, nil
}

// NaiveRelaxation takes every undecided item whole, but first checks the
// fixed items against the capacity: a node whose Included weight already
// overflows is marked infeasible. Still ignores capacity for the undecided
// suffix, so the bound stays loose.
type NaiveRelaxation struct{}

// Relax implements Relaxation.
func (NaiveRelaxation) Relax(inst *knapsack.Instance, dec Decisions) (RelaxedSolution, error) {
	if err := checkShape(inst, dec); err != nil {
		return RelaxedSolution{}, err
	}

	used, accrued := fixedAggregates(inst, dec)
	if used > inst.Capacity {
		return InfeasibleRelaxation(), nil
	}

	var (
		sel   []float64
		value float64
		i     int
	)
	sel = make([]float64, len(dec))
	value = accrued
	for i = range dec {
		switch dec[i] {
		case Included:
			sel[i] = 1
		case Undecided:
			sel[i] = 1
			value += inst.Items[i].Value
		}
	}
	return RelaxedSolution{Selection: sel, Value: value}, nil
}

// FractionalRelaxation is the LP relaxation: undecided items are taken in
// density order, whole while they fit, then one fractional slice of the
// first item that does not. Zero-weight items lead the density order and are
// always taken whole, so the fill never divides by zero. This is the
// tightest bound achievable without integrality and dominates both naive
// bounds everywhere.
type FractionalRelaxation struct{}

// Relax implements Relaxation.
func (FractionalRelaxation) Relax(inst *knapsack.Instance, dec Decisions) (RelaxedSolution, error) {
	if err := checkShape(inst, dec); err != nil {
		return RelaxedSolution{}, err
	}

	used, accrued := fixedAggregates(inst, dec)
	if used > inst.Capacity {
		return InfeasibleRelaxation(), nil
	}

	var (
		sel       []float64
		remaining float64
		value     float64
		i         int
		idx       int
		w         float64
	)
	sel = make([]float64, len(dec))
	for i = range dec {
		if dec[i] == Included {
			sel[i] = 1
		}
	}

	remaining = inst.Capacity - used
	value = accrued
	for _, idx = range inst.DensityOrder() {
		if dec[idx] != Undecided {
			continue
		}
		w = inst.Items[idx].Weight
		if w <= remaining {
			// Whole fit; covers zero-weight items even at zero capacity.
			sel[idx] = 1
			remaining -= w
			value += inst.Items[idx].Value
			continue
		}
		if remaining > 0 {
			// Split item: w > remaining > 0, so the ratio is well-defined.
			sel[idx] = remaining / w
			value += sel[idx] * inst.Items[idx].Value
		}
		// Density order puts zero-weight items first, so nothing later fits.
		break
	}
	return RelaxedSolution{Selection: sel, Value: value}, nil
}
