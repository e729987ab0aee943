// Package bnb - heuristic policies (primal lower bounds).
//
// Contracts:
//   - Complete returns a full feasible packing extending the node's fixed
//     decisions, or ok=false to decline. It must never relax a fixed item
//     and never exceed the capacity; the engine re-checks and fails fast
//     with ErrHeuristicContract on a breach.
//   - Soundness matters for pruning: the returned value must be achievable.
//     The engine recomputes it from the assignment, so a misreported value
//     is caught, but an assignment that mutates fixed items is the
//     dangerous case the checks exist for.
package bnb

import (
	"github.com/katalvlaran/knapbnb/knapsack"
)

// Heuristic proposes a feasible completion of a node, used as an incumbent
// candidate and as the node's lower bound.
type Heuristic interface {
	Complete(inst *knapsack.Instance, n *Node) (Solution, bool)
}

// NoHeuristic always declines. Pure branch-and-bound: incumbents then come
// only from integral nodes.
type NoHeuristic struct{}

// Complete implements Heuristic.
func (NoHeuristic) Complete(*knapsack.Instance, *Node) (Solution, bool) {
	return Solution{}, false
}

// GreedyHeuristic completes a node by walking the density order: every
// undecided item that still fits is included, the rest are excluded. Always
// succeeds, runs in O(n), and on many instances lands close enough to the
// optimum to prune aggressively from the first iteration.
type GreedyHeuristic struct{}

// Complete implements Heuristic.
func (GreedyHeuristic) Complete(inst *knapsack.Instance, n *Node) (Solution, bool) {
	var (
		assignment Decisions
		remaining  float64
		idx        int
	)
	assignment = n.Decisions.Clone()
	remaining = inst.Capacity - n.UsedWeight

	for _, idx = range inst.DensityOrder() {
		if assignment[idx] != Undecided {
			continue
		}
		if inst.Items[idx].Weight <= remaining {
			assignment[idx] = Included
			remaining -= inst.Items[idx].Weight
		} else {
			assignment[idx] = Excluded
		}
	}
	return newSolution(inst, assignment), true
}
