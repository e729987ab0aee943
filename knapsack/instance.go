// SPDX-License-Identifier: MIT

// Package knapsack: the 0/1 knapsack problem model.
//
// This file defines Item and Instance, validation, derived aggregates and the
// density order used by greedy bounds and heuristics.
//
// Design goals:
//   - Plain data: exported fields with stable json/yaml tags; an Instance is
//     a value that can be read from disk, logged, and handed to a solver.
//   - Immutability by convention: once a search starts, the instance must not
//     be mutated. Solvers snapshot what they need; derived data here is
//     cached lazily and never recomputed after first use.
//   - Degenerate inputs are valid: zero items, zero capacity and zero-weight
//     items are all legal and meaningful.
package knapsack

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Item is one object that may be packed: a non-negative weight consuming
// capacity and a non-negative value contributing to the objective.
type Item struct {
	Weight float64 `json:"weight" yaml:"weight"`
	Value  float64 `json:"value"  yaml:"value"`
}

// Density reports value per unit weight. Zero-weight items are infinitely
// dense: they consume no capacity, so any rational packing takes them whole.
//
// Complexity: O(1).
func (it Item) Density() float64 {
	if it.Weight == 0 {
		return math.Inf(1)
	}
	return it.Value / it.Weight
}

// Instance is a complete 0/1 knapsack problem: a set of items and a single
// capacity. The zero value is a valid empty instance.
//
// Fields are exported for construction and (de)serialization; treat an
// Instance as read-only once it has been handed to a solver.
type Instance struct {
	// ID is an optional caller-chosen label carried through traces and logs.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Items in index order. Item indices are the identity used by decisions,
	// selections and solutions everywhere downstream.
	Items []Item `json:"items" yaml:"items"`

	// Capacity is the total weight budget. Must be finite and ≥ 0.
	Capacity float64 `json:"capacity" yaml:"capacity"`

	// density caches DensityOrder; nil until first use.
	density []int
}

// New builds a validated Instance from a copy of items.
//
// The items slice is copied so later caller-side mutation cannot corrupt a
// running search.
//
// Complexity: O(n) time and space.
func New(items []Item, capacity float64) (*Instance, error) {
	in := &Instance{
		Items:    append([]Item(nil), items...),
		Capacity: capacity,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// Must is New for fixtures and examples: it panics on invalid input instead
// of returning an error.
func Must(items []Item, capacity float64) *Instance {
	in, err := New(items, capacity)
	if err != nil {
		panic(err)
	}
	return in
}

// Validate checks the instance against the model contract:
//   - capacity finite and ≥ 0,
//   - every weight finite and ≥ 0,
//   - every value finite and ≥ 0.
//
// The first violation is returned, wrapped with the offending field so that
// errors.Is matching and human inspection both work.
//
// Complexity: O(n).
func (in *Instance) Validate() error {
	if in == nil {
		return ErrNilInstance
	}
	if math.IsNaN(in.Capacity) || math.IsInf(in.Capacity, 0) {
		return fmt.Errorf("capacity=%v: %w", in.Capacity, ErrNonFinite)
	}
	if in.Capacity < 0 {
		return fmt.Errorf("capacity=%v: %w", in.Capacity, ErrNegativeCapacity)
	}

	var (
		i  int
		it Item
	)
	for i, it = range in.Items {
		if math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) {
			return fmt.Errorf("item %d weight=%v: %w", i, it.Weight, ErrNonFinite)
		}
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return fmt.Errorf("item %d value=%v: %w", i, it.Value, ErrNonFinite)
		}
		if it.Weight < 0 {
			return fmt.Errorf("item %d weight=%v: %w", i, it.Weight, ErrNegativeWeight)
		}
		if it.Value < 0 {
			return fmt.Errorf("item %d value=%v: %w", i, it.Value, ErrNegativeValue)
		}
	}
	return nil
}

// NumItems returns len(Items). Nil-safe.
func (in *Instance) NumItems() int {
	if in == nil {
		return 0
	}
	return len(in.Items)
}

// Weights returns a fresh dense slice of item weights in index order.
// Solvers use this to snapshot the instance before searching.
//
// Complexity: O(n) time and space.
func (in *Instance) Weights() []float64 {
	w := make([]float64, in.NumItems())

	var i int
	for i = range in.Items {
		w[i] = in.Items[i].Weight
	}
	return w
}

// Values returns a fresh dense slice of item values in index order.
//
// Complexity: O(n) time and space.
func (in *Instance) Values() []float64 {
	v := make([]float64, in.NumItems())

	var i int
	for i = range in.Items {
		v[i] = in.Items[i].Value
	}
	return v
}

// TotalWeight sums all item weights.
//
// Complexity: O(n).
func (in *Instance) TotalWeight() float64 {
	return floats.Sum(in.Weights())
}

// TotalValue sums all item values. This is the trivial upper bound on any
// packing.
//
// Complexity: O(n).
func (in *Instance) TotalValue() float64 {
	return floats.Sum(in.Values())
}

// MaxItemValue returns the largest single item value, or 0 for an empty
// instance.
//
// Complexity: O(n).
func (in *Instance) MaxItemValue() float64 {
	if in.NumItems() == 0 {
		return 0
	}
	return floats.Max(in.Values())
}

// DensityOrder returns item indices sorted by density (value per weight),
// descending. Zero-weight items sort first; ties keep the lower index first.
//
// The order is computed once and cached; the returned slice is shared and
// MUST NOT be modified by callers. Greedy bounds and heuristics walk this
// order, so keeping it stable is what makes them deterministic.
//
// Complexity: O(n log n) on first call, O(1) after.
func (in *Instance) DensityOrder() []int {
	if in.density != nil {
		return in.density
	}

	var (
		n     int
		order []int
		i     int
	)
	n = in.NumItems()
	order = make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	// Stable sort keeps equal densities in index order.
	sort.SliceStable(order, func(a, b int) bool {
		return in.Items[order[a]].Density() > in.Items[order[b]].Density()
	})

	in.density = order
	return in.density
}
