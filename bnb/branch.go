// Package bnb - branching policies (which item to split on).
//
// Contracts:
//   - Pick is called only on nodes that survived pruning, are not integral
//     and still have undecided items; it must return an undecided index.
//   - The engine verifies the pick and fails fast with ErrBranchingContract
//     on a fixed index. A node with nothing left returns ErrNoUndecided,
//     which the engine also treats as a contract breach (it never asks).
package bnb

import (
	"github.com/katalvlaran/knapbnb/knapsack"
)

// Branching selects the undecided item a node splits on.
type Branching interface {
	Pick(inst *knapsack.Instance, n *Node) (int, error)
}

// FirstUndecidedBranching picks the lowest undecided index. Index order is
// instance order, so under depth-first search the tree fixes items 0,1,2,…
// along every path.
type FirstUndecidedBranching struct{}

// Pick implements Branching.
func (FirstUndecidedBranching) Pick(_ *knapsack.Instance, n *Node) (int, error) {
	return firstUndecided(n.Decisions)
}

// FractionalBranching pivots on the relaxation's split item: the one the
// greedy fill took fractionally. Fixing it either way invalidates the
// parent's bound in both children, which tightens the tree fastest. Falls
// back to the first undecided index when the relaxation left no fraction
// (or a non-fractional relaxation is plugged in).
type FractionalBranching struct {
	// Eps widens the integrality test on the selection; zero means exact.
	Eps float64
}

// Pick implements Branching.
func (b FractionalBranching) Pick(_ *knapsack.Instance, n *Node) (int, error) {
	var idx int
	idx = n.Relaxed.SplitIndex(b.Eps)
	if idx >= 0 && !n.Decisions.Decided(idx) {
		return idx, nil
	}
	return firstUndecided(n.Decisions)
}

// firstUndecided scans for the lowest free index.
//
// Complexity: O(n).
func firstUndecided(dec Decisions) (int, error) {
	var i int
	for i = range dec {
		if dec[i] == Undecided {
			return i, nil
		}
	}
	return -1, ErrNoUndecided
}
