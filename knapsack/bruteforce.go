// SPDX-License-Identifier: MIT

// Package knapsack: exhaustive reference solver.
//
// BruteForce exists as ground truth: it enumerates every subset, so its
// answer is correct by construction. Branch-and-bound results are checked
// against it in tests, and small instances can use it directly.
//
// Determinism contract: subsets are enumerated by increasing cardinality and,
// within a cardinality, in lexicographic index order. Only a strictly better
// value replaces the incumbent, so among equal-value optima the first subset
// in enumeration order wins. Same instance ⇒ same selection, always.
package knapsack

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxBruteForceItems caps exhaustive enumeration at 2^24 subsets. Larger
// instances return ErrTooManyItems; use the bnb package for those.
const MaxBruteForceItems = 24

// BruteForce solves the instance exactly by enumerating all 2^n subsets.
//
// Returns the optimal value and one optimal selection (selected[i] == true
// means item i is packed). The empty packing is always feasible, so a valid
// instance always has a solution with value ≥ 0.
//
// Complexity: O(2^n · n) time, O(n) space beyond the combination stream.
func BruteForce(in *Instance) (float64, []bool, error) {
	if in == nil {
		return 0, nil, ErrNilInstance
	}
	if err := in.Validate(); err != nil {
		return 0, nil, err
	}

	var n int
	n = in.NumItems()
	if n > MaxBruteForceItems {
		return 0, nil, fmt.Errorf("%w: %d items (max %d)", ErrTooManyItems, n, MaxBruteForceItems)
	}

	var (
		bestValue    float64
		bestSelected []bool
		k            int
		combo        []int
		idx          int
		weight       float64
		value        float64
	)
	// Cardinality 0: the empty packing, feasible by validation (capacity ≥ 0).
	bestValue = 0
	bestSelected = make([]bool, n)

	for k = 1; k <= n; k++ {
		for _, combo = range combin.Combinations(n, k) {
			weight, value = 0, 0
			for _, idx = range combo {
				weight += in.Items[idx].Weight
				value += in.Items[idx].Value
			}
			if weight > in.Capacity {
				continue
			}
			if value > bestValue {
				bestValue = value
				bestSelected = make([]bool, n)
				for _, idx = range combo {
					bestSelected[idx] = true
				}
			}
		}
	}
	return bestValue, bestSelected, nil
}
