// Package bnb - the solution pool (incumbent bookkeeping).
//
// Rationale:
//   - Every feasible integral solution the search encounters is kept, not
//     just the winner: post-hoc inspection of near-optimal packings is a
//     routine ask, and dedupe must be exact so repeat discoveries do not
//     masquerade as progress.
//   - A B-tree ordered by (value, assignment) gives ordered enumeration and
//     exact-duplicate lookup in one structure.
//   - The incumbent only ever improves: Add reports true exactly when the
//     best value strictly increased, which is the engine's trigger for
//     incumbent events.
package bnb

import (
	"fmt"
	"math"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/knapbnb/knapsack"
)

// SolutionPool collects distinct feasible solutions and tracks the best.
// Not safe for concurrent use, like the search that feeds it.
type SolutionPool struct {
	inst    *knapsack.Instance
	eps     float64
	tree    *btree.BTreeG[Solution]
	best    Solution
	hasBest bool
}

// NewSolutionPool builds an empty pool validating against inst.
func NewSolutionPool(inst *knapsack.Instance, eps float64) *SolutionPool {
	return &SolutionPool{
		inst: inst,
		eps:  eps,
		tree: btree.NewBTreeG[Solution](lessSolution),
	}
}

// lessSolution orders by value, then assignment rendering. Total over
// distinct solutions, which makes Get an exact-duplicate probe.
func lessSolution(a, b Solution) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	return a.Assignment.String() < b.Assignment.String()
}

// Add validates s, inserts it unless already present, and reports whether
// the incumbent strictly improved.
//
// Contract failures (incomplete assignment, capacity breach, misreported
// aggregates) return ErrPoolContract wraps; the pool never stores them.
//
// Complexity: O(n + log m) for n items and m pooled solutions.
func (p *SolutionPool) Add(s Solution) (bool, error) {
	if len(s.Assignment) != p.inst.NumItems() {
		return false, fmt.Errorf("%w: assignment covers %d of %d items", ErrPoolContract, len(s.Assignment), p.inst.NumItems())
	}
	if !s.Assignment.Complete() {
		return false, fmt.Errorf("%w: assignment %s is incomplete", ErrPoolContract, s.Assignment)
	}

	exact := newSolution(p.inst, s.Assignment)
	if math.Abs(exact.Value-s.Value) > p.eps || math.Abs(exact.Weight-s.Weight) > p.eps {
		return false, fmt.Errorf("%w: reported value=%g weight=%g, assignment yields value=%g weight=%g",
			ErrPoolContract, s.Value, s.Weight, exact.Value, exact.Weight)
	}
	if exact.Weight > p.inst.Capacity+p.eps {
		return false, fmt.Errorf("%w: weight %g exceeds capacity %g", ErrPoolContract, exact.Weight, p.inst.Capacity)
	}

	if _, dup := p.tree.Get(exact); dup {
		return false, nil
	}
	p.tree.Set(exact)

	if !p.hasBest || exact.Value > p.best.Value {
		p.best = exact
		p.hasBest = true
		return true, nil
	}
	return false, nil
}

// Best returns the incumbent, ok=false while the pool is empty.
func (p *SolutionPool) Best() (Solution, bool) {
	return p.best, p.hasBest
}

// BestValue returns the incumbent value, -Inf while the pool is empty; the
// pruning comparison uses this directly.
func (p *SolutionPool) BestValue() float64 {
	if !p.hasBest {
		return math.Inf(-1)
	}
	return p.best.Value
}

// Len returns the number of distinct solutions pooled.
func (p *SolutionPool) Len() int {
	return p.tree.Len()
}

// Solutions returns all pooled solutions, best value first. Equal values
// come out in reverse assignment order; the point is a deterministic,
// value-sorted listing.
//
// Complexity: O(m).
func (p *SolutionPool) Solutions() []Solution {
	var out []Solution
	out = make([]Solution, 0, p.tree.Len())
	p.tree.Reverse(func(s Solution) bool {
		out = append(out, s)
		return true
	})
	return out
}
