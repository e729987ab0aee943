// Package bnb - relaxed solutions (upper bounds with a witness).
//
// A RelaxedSolution is what a relaxation policy returns for a node: an
// optimistic per-item selection, possibly fractional, and the bound it
// certifies. A single -Inf value marks a subtree proven infeasible.
//
// Contracts:
//   - len(Selection) == number of items; entries lie in [0,1].
//   - Fixed items keep their decision: Excluded ⇒ 0, Included ⇒ 1.
//   - Value ≥ the selection's own objective (a bound may be looser than its
//     witness, never tighter).
//
// The engine checks these on every policy return; see validateRelaxed.
package bnb

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/knapbnb/knapsack"
)

// RelaxedSolution carries the optimistic completion of one node.
type RelaxedSolution struct {
	// Selection holds one fraction per item. Fixed items match their
	// decision; undecided items carry whatever the relaxation chose.
	Selection []float64

	// Value is the certified upper bound for the node's subtree.
	// math.Inf(-1) marks the subtree infeasible.
	Value float64
}

// InfeasibleRelaxation marks a subtree whose fixed decisions already break
// the capacity. Selection stays nil; the -Inf bound prunes unconditionally.
func InfeasibleRelaxation() RelaxedSolution {
	return RelaxedSolution{Value: math.Inf(-1)}
}

// Infeasible reports whether this is the -Inf marker.
func (rs RelaxedSolution) Infeasible() bool {
	return math.IsInf(rs.Value, -1)
}

// Integral reports whether every selection entry is within eps of 0 or 1.
// The infeasible marker is never integral.
//
// Complexity: O(n).
func (rs RelaxedSolution) Integral(eps float64) bool {
	if rs.Infeasible() {
		return false
	}

	var f float64
	for _, f = range rs.Selection {
		if !scalar.EqualWithinAbs(f, 0, eps) && !scalar.EqualWithinAbs(f, 1, eps) {
			return false
		}
	}
	return true
}

// SplitIndex returns the lowest item index selected strictly fractionally
// (more than eps away from both 0 and 1), or -1 when the selection is
// integral. Fractional branching pivots on this item.
//
// Complexity: O(n).
func (rs RelaxedSolution) SplitIndex(eps float64) int {
	if rs.Infeasible() {
		return -1
	}

	var i int
	for i = range rs.Selection {
		if !scalar.EqualWithinAbs(rs.Selection[i], 0, eps) && !scalar.EqualWithinAbs(rs.Selection[i], 1, eps) {
			return i
		}
	}
	return -1
}

// Weight returns the (possibly fractional) capacity the selection consumes.
//
// Complexity: O(n).
func (rs RelaxedSolution) Weight(inst *knapsack.Instance) float64 {
	var (
		w float64
		i int
	)
	for i = range rs.Selection {
		w += rs.Selection[i] * inst.Items[i].Weight
	}
	return w
}

// SelectionValue returns the objective of the selection itself. For the
// stock relaxations this equals Value; a custom bound may certify more.
//
// Complexity: O(n).
func (rs RelaxedSolution) SelectionValue(inst *knapsack.Instance) float64 {
	var (
		v float64
		i int
	)
	for i = range rs.Selection {
		v += rs.Selection[i] * inst.Items[i].Value
	}
	return v
}

// ObeysCapacity reports whether the selection fits the capacity within eps.
// The infeasible marker never does.
//
// Complexity: O(n).
func (rs RelaxedSolution) ObeysCapacity(inst *knapsack.Instance, eps float64) bool {
	if rs.Infeasible() {
		return false
	}
	return rs.Weight(inst) <= inst.Capacity+eps
}

// String renders the selection as "[1|0.5|0]"; the infeasible marker renders
// as "[-inf]".
func (rs RelaxedSolution) String() string {
	if rs.Infeasible() {
		return "[-inf]"
	}

	var (
		parts []string
		f     float64
	)
	parts = make([]string, 0, len(rs.Selection))
	for _, f = range rs.Selection {
		parts = append(parts, fmt.Sprintf("%g", f))
	}
	return "[" + strings.Join(parts, "|") + "]"
}
