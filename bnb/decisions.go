// Package bnb - branching decision vectors.
//
// A Decisions value records, per item, whether the search has fixed it out
// of the knapsack, into the knapsack, or not yet. Nodes own one Decisions
// each; the only way a vector grows more fixed is Split, which copies.
//
// Contracts:
//   - Index identity: position i always refers to instance item i.
//   - Monotonicity: a fixed item is never unfixed; Split on a fixed item is
//     an error, not an overwrite.
//   - Shared reads: policies receive the node's vector read-only. Mutating
//     it outside Split corrupts the ancestor bookkeeping.
package bnb

import (
	"fmt"
	"strings"
)

// Decision is the per-item branching state. The zero value is Undecided, so
// make([]Decision, n) is a valid fresh vector.
type Decision int8

const (
	// Undecided items are still free; both children of a branch exist for them.
	Undecided Decision = iota
	// Excluded items are fixed out of the knapsack in this subtree.
	Excluded
	// Included items are fixed into the knapsack in this subtree.
	Included
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case Undecided:
		return "undecided"
	case Excluded:
		return "excluded"
	case Included:
		return "included"
	default:
		return fmt.Sprintf("Decision(%d)", int8(d))
	}
}

// Decisions maps item index to Decision for one node of the search tree.
type Decisions []Decision

// NewDecisions returns an all-Undecided vector for n items.
//
// Complexity: O(n).
func NewDecisions(n int) Decisions {
	return make(Decisions, n)
}

// Len returns the number of items covered.
func (d Decisions) Len() int { return len(d) }

// At returns the decision for item i.
func (d Decisions) At(i int) Decision { return d[i] }

// Decided reports whether item i is fixed.
func (d Decisions) Decided(i int) bool { return d[i] != Undecided }

// Complete reports whether every item is fixed. A complete vector describes
// exactly one packing.
//
// Complexity: O(n).
func (d Decisions) Complete() bool {
	var x Decision
	for _, x = range d {
		if x == Undecided {
			return false
		}
	}
	return true
}

// CountDecided returns how many items are fixed.
//
// Complexity: O(n).
func (d Decisions) CountDecided() int {
	var (
		c int
		x Decision
	)
	for _, x = range d {
		if x != Undecided {
			c++
		}
	}
	return c
}

// IncludedIndices returns the fixed-in item indices in ascending order.
//
// Complexity: O(n).
func (d Decisions) IncludedIndices() []int {
	var (
		out []int
		i   int
	)
	for i = range d {
		if d[i] == Included {
			out = append(out, i)
		}
	}
	return out
}

// ExcludedIndices returns the fixed-out item indices in ascending order.
//
// Complexity: O(n).
func (d Decisions) ExcludedIndices() []int {
	var (
		out []int
		i   int
	)
	for i = range d {
		if d[i] == Excluded {
			out = append(out, i)
		}
	}
	return out
}

// Clone returns an independent copy.
//
// Complexity: O(n).
func (d Decisions) Clone() Decisions {
	return append(Decisions(nil), d...)
}

// Split fixes item i both ways: the first copy excludes it, the second
// includes it. The receiver is left untouched. Splitting a fixed item
// returns ErrItemDecided; an out-of-range index returns a wrapped error.
//
// Complexity: O(n).
func (d Decisions) Split(i int) (exclude, include Decisions, err error) {
	if i < 0 || i >= len(d) {
		return nil, nil, fmt.Errorf("bnb: split index %d out of range [0,%d)", i, len(d))
	}
	if d[i] != Undecided {
		return nil, nil, fmt.Errorf("item %d is %s: %w", i, d[i], ErrItemDecided)
	}

	exclude = d.Clone()
	exclude[i] = Excluded
	include = d.Clone()
	include[i] = Included
	return exclude, include, nil
}

// String renders the vector compactly: '?' undecided, '0' excluded,
// '1' included. Example: "1?0?".
func (d Decisions) String() string {
	var b strings.Builder
	b.Grow(len(d))

	var x Decision
	for _, x = range d {
		switch x {
		case Excluded:
			b.WriteByte('0')
		case Included:
			b.WriteByte('1')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
