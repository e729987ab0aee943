// Package bnb - search tree nodes and the arena that owns them.
//
// Rationale:
//   - Nodes live in a flat append-only arena (the Tree); identity is the
//     arena index. Parent/child links are indices, so the whole structure
//     serializes trivially and never cycles through pointers.
//   - Creation order IS the ID order: node k was created before node k+1.
//     Replay tooling leans on this, as does the frontier tie-break.
//   - Two timestamps in iteration units tell the story of each node:
//     CreatedAt (which iteration spawned it; 0 for the root) and
//     ProcessedAt (which iteration popped it; NotProcessed until then).
package bnb

import (
	"fmt"
	"math"
)

// Status is the lifecycle state of a node.
type Status int

const (
	// StatusOpen - created, bounded, waiting in the frontier.
	StatusOpen Status = iota
	// StatusIntegral - processed; yielded a feasible integral solution or
	// met its bound, so the subtree is closed by optimality.
	StatusIntegral
	// StatusInfeasible - processed; the fixed decisions already break the
	// capacity, so the subtree is empty.
	StatusInfeasible
	// StatusPruned - processed or swept; the bound proves the subtree cannot
	// beat the incumbent.
	StatusPruned
	// StatusBranched - processed; split into two children.
	StatusBranched
)

// String implements fmt.Stringer. Trace records carry these labels.
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusIntegral:
		return "integral"
	case StatusInfeasible:
		return "infeasible"
	case StatusPruned:
		return "pruned"
	case StatusBranched:
		return "branched"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether the node is done (no longer in the frontier).
func (s Status) Terminal() bool {
	return s == StatusIntegral || s == StatusInfeasible || s == StatusPruned || s == StatusBranched
}

const (
	// NoParent is the Parent of the root node.
	NoParent = -1
	// NotProcessed is the ProcessedAt of a node still in the frontier.
	NotProcessed = -1
)

// Node is one vertex of the branch-and-bound tree. The engine owns every
// Node; observers and policies read, never write.
type Node struct {
	// ID is the arena index; equal to creation order.
	ID int
	// Parent is the spawning node's ID, NoParent for the root.
	Parent int
	// Children holds the two child IDs once branched: exclude side first,
	// include side second. Nil for unbranched nodes.
	Children []int
	// Depth is the number of fixed decisions along the path from the root.
	Depth int

	// Decisions is the per-item branching state defining this subtree.
	Decisions Decisions
	// UsedWeight is the capacity consumed by Included items. Maintained
	// incrementally on branch, O(1) per child.
	UsedWeight float64
	// AccruedValue is the objective collected by Included items.
	AccruedValue float64

	// Relaxed is the bound certificate, evaluated eagerly at creation.
	Relaxed RelaxedSolution
	// LowerBound is the best feasible completion value known for this node,
	// NaN until a heuristic or integral acceptance sets it.
	LowerBound float64

	// Status is the lifecycle state.
	Status Status
	// CreatedAt is the iteration that spawned this node (0 for the root).
	CreatedAt int
	// ProcessedAt is the iteration that popped this node, or NotProcessed.
	ProcessedAt int
}

// UpperBound returns the certified optimistic value of the subtree.
func (n *Node) UpperBound() float64 { return n.Relaxed.Value }

// HasLowerBound reports whether a feasible completion value is known.
func (n *Node) HasLowerBound() bool { return !math.IsNaN(n.LowerBound) }

// Processed reports whether the node has been popped.
func (n *Node) Processed() bool { return n.ProcessedAt != NotProcessed }

// Tree is the arena of all nodes created by one search, in creation order.
type Tree struct {
	nodes []*Node
}

// Len returns the number of nodes created so far.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns node 0, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[0]
}

// Node returns the node with the given ID, or nil when out of range.
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// All returns the backing slice in creation order. Read-only by contract;
// the engine keeps appending to it while the search runs.
func (t *Tree) All() []*Node { return t.nodes }

// add appends a node, assigning its ID. Engine-internal.
func (t *Tree) add(n *Node) *Node {
	n.ID = len(t.nodes)
	t.nodes = append(t.nodes, n)
	return n
}
