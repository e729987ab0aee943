// Package bnb - the frontier: a heap of open nodes.
//
// Rationale:
//   - container/heap over the policy comparator plus the FIFO tie-break.
//     Because node IDs are unique, the effective order is strictly total;
//     heap non-stability can never surface.
//   - maxUpperBound is a linear scan. The global prune sweep and the global
//     bound need the frontier maximum even under depth-first order, and a
//     second bound-ordered index is not worth its bookkeeping here.
package bnb

import (
	"container/heap"
	"math"
)

// frontier owns the open nodes. Engine-internal; strategies see only the
// comparator it applies.
type frontier struct {
	order SearchOrder
	nodes []*Node
}

// compile-time check keeps the heap contract honest.
var _ heap.Interface = (*frontier)(nil)

func newFrontier(order SearchOrder) *frontier {
	return &frontier{order: order}
}

// Len implements heap.Interface.
func (f *frontier) Len() int { return len(f.nodes) }

// Less implements heap.Interface: policy order first, FIFO on ties.
func (f *frontier) Less(i, j int) bool {
	a, b := f.nodes[i], f.nodes[j]
	if f.order.Less(a, b) {
		return true
	}
	if f.order.Less(b, a) {
		return false
	}
	return a.ID < b.ID
}

// Swap implements heap.Interface.
func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
}

// Push implements heap.Interface. Use push.
func (f *frontier) Push(x any) {
	f.nodes = append(f.nodes, x.(*Node))
}

// Pop implements heap.Interface. Use pop.
func (f *frontier) Pop() any {
	old := f.nodes
	n := old[len(old)-1]
	old[len(old)-1] = nil
	f.nodes = old[:len(old)-1]
	return n
}

// push enqueues an open node.
//
// Complexity: O(log n).
func (f *frontier) push(n *Node) {
	heap.Push(f, n)
}

// pop removes and returns the highest-priority node; nil when empty.
//
// Complexity: O(log n).
func (f *frontier) pop() *Node {
	if f.Len() == 0 {
		return nil
	}
	return heap.Pop(f).(*Node)
}

// maxUpperBound returns the best bound among open nodes, -Inf when empty.
//
// Complexity: O(n).
func (f *frontier) maxUpperBound() float64 {
	var (
		best float64
		n    *Node
	)
	best = math.Inf(-1)
	for _, n = range f.nodes {
		if n.UpperBound() > best {
			best = n.UpperBound()
		}
	}
	return best
}

// drain empties the frontier in priority order.
//
// Complexity: O(n log n).
func (f *frontier) drain() []*Node {
	var out []*Node
	out = make([]*Node, 0, f.Len())
	for f.Len() > 0 {
		out = append(out, f.pop())
	}
	return out
}
