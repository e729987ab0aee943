// Package bnb - search-order policies (who gets popped next).
//
// Rationale:
//   - The frontier is one heap for every strategy; strategies only supply
//     the comparator. Ties are always settled by the engine with the FIFO
//     rule (lower node ID first), so every order is total and every run is
//     reproducible no matter how coarse the comparator is.
package bnb

// SearchOrder ranks open nodes. Less reports whether a should be popped
// before b. It must be a strict weak ordering and deterministic; it must
// not mutate the nodes.
type SearchOrder interface {
	Less(a, b *Node) bool
}

// OrderFunc adapts a plain comparator to SearchOrder, the open extension
// point for hybrid strategies (depth-then-bound and friends).
type OrderFunc func(a, b *Node) bool

// Less implements SearchOrder.
func (f OrderFunc) Less(a, b *Node) bool { return f(a, b) }

// DepthFirst explores newest nodes first (LIFO). Node IDs are creation
// order, so the comparator needs nothing beyond the ID. Children are pushed
// exclude side then include side, which makes depth-first try inclusion
// first on every branch.
func DepthFirst() SearchOrder {
	return OrderFunc(func(a, b *Node) bool { return a.ID > b.ID })
}

// BestFirst explores the largest upper bound first; ties fall through to
// the engine's FIFO rule. Bounds are evaluated eagerly at node creation
// exactly so this comparator always has both sides available.
func BestFirst() SearchOrder {
	return OrderFunc(func(a, b *Node) bool { return a.UpperBound() > b.UpperBound() })
}
