// Package bnb - feasible integral solutions.
package bnb

import (
	"fmt"

	"github.com/katalvlaran/knapbnb/knapsack"
)

// Solution is one complete feasible packing: every item fixed, total weight
// within capacity. Produced by heuristics, integral nodes, and the pool.
type Solution struct {
	// Assignment fixes every item; no Undecided entries.
	Assignment Decisions
	// Value is the packed objective, consistent with Assignment.
	Value float64
	// Weight is the packed capacity use, consistent with Assignment.
	Weight float64
}

// Selected converts the assignment to include flags, the shape BruteForce
// and most callers speak.
//
// Complexity: O(n).
func (s Solution) Selected() []bool {
	var (
		out []bool
		i   int
	)
	out = make([]bool, len(s.Assignment))
	for i = range s.Assignment {
		out[i] = s.Assignment[i] == Included
	}
	return out
}

// String renders as "value=7 weight=5 items=1?0?"-style summary.
func (s Solution) String() string {
	return fmt.Sprintf("value=%g weight=%g items=%s", s.Value, s.Weight, s.Assignment)
}

// newSolution builds a Solution from a complete assignment, recomputing the
// aggregates from the instance so the result is exact by construction.
//
// Complexity: O(n).
func newSolution(inst *knapsack.Instance, assignment Decisions) Solution {
	var (
		s Solution
		i int
	)
	s.Assignment = assignment
	for i = range assignment {
		if assignment[i] == Included {
			s.Weight += inst.Items[i].Weight
			s.Value += inst.Items[i].Value
		}
	}
	return s
}

// assignmentFromSelection rounds an integral selection into a complete
// assignment. Entries within eps of 1 are Included, the rest Excluded.
// Callers must have checked Integral(eps) first.
//
// Complexity: O(n).
func assignmentFromSelection(sel []float64, eps float64) Decisions {
	var (
		dec Decisions
		i   int
	)
	dec = NewDecisions(len(sel))
	for i = range sel {
		if sel[i] >= 1-eps {
			dec[i] = Included
		} else {
			dec[i] = Excluded
		}
	}
	return dec
}
