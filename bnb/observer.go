// Package bnb - observer hooks (structured search events).
//
// Rationale:
//   - The engine never logs, prints or counts on its own; everything an
//     external recorder, logger or metrics sink could want is pushed
//     through Observer callbacks in deterministic order.
//   - Callbacks receive live *Node pointers for zero-copy inspection.
//     Observers must treat them as read-only and must not retain them past
//     the callback if they mutate state elsewhere; recorders copy.
//   - NopObserver is the embeddable default: custom observers override only
//     the calls they care about.
package bnb

import (
	"github.com/katalvlaran/knapbnb/knapsack"
)

// IterationSummary describes one finished iteration of the search loop.
type IterationSummary struct {
	// Iteration counts from 1; equals the processed node's ProcessedAt.
	Iteration int
	// NodeID is the node processed this iteration.
	NodeID int
	// Depth of the processed node.
	Depth int
	// Status the node ended the iteration with.
	Status Status
	// NodeBound is the processed node's upper bound.
	NodeBound float64
	// Incumbent is the best feasible value so far, -Inf while none.
	Incumbent float64
	// GlobalBound is max(incumbent, best open bound): the certified ceiling
	// on the optimum at this point of the search.
	GlobalBound float64
	// FrontierLen counts open nodes after the iteration.
	FrontierLen int
	// NodesCreated counts all nodes ever created, including the root.
	NodesCreated int
	// PoolLen counts distinct feasible solutions found so far.
	PoolLen int
}

// Observer receives search events. Implementations must be cheap or must
// buffer: they run inline in the search loop.
type Observer interface {
	// SearchStarted fires once, before the root node is created.
	SearchStarted(inst *knapsack.Instance)
	// NodeCreated fires for every node entering the tree, root included,
	// with its bound already evaluated.
	NodeCreated(n *Node)
	// IterationEnded fires after each iteration's node reached a terminal
	// status, before any global prune sweep of that iteration.
	IterationEnded(sum IterationSummary, n *Node)
	// IncumbentImproved fires when the pool's best value strictly rises.
	// iteration is the current iteration; n is the node responsible.
	IncumbentImproved(iteration int, n *Node, s Solution)
	// NodePruned fires for nodes swept out of the frontier by the global
	// bound check, without consuming an iteration.
	NodePruned(n *Node)
	// SearchFinished fires once, after the frontier empties or the
	// iteration budget runs out.
	SearchFinished(res Result)
}

// NopObserver implements Observer with no-ops. Embed it and override.
type NopObserver struct{}

// SearchStarted implements Observer.
func (NopObserver) SearchStarted(*knapsack.Instance) {}

// NodeCreated implements Observer.
func (NopObserver) NodeCreated(*Node) {}

// IterationEnded implements Observer.
func (NopObserver) IterationEnded(IterationSummary, *Node) {}

// IncumbentImproved implements Observer.
func (NopObserver) IncumbentImproved(int, *Node, Solution) {}

// NodePruned implements Observer.
func (NopObserver) NodePruned(*Node) {}

// SearchFinished implements Observer.
func (NopObserver) SearchFinished(Result) {}

// MultiObserver fans every event out to its members in slice order.
type MultiObserver []Observer

// SearchStarted implements Observer.
func (m MultiObserver) SearchStarted(inst *knapsack.Instance) {
	for _, o := range m {
		o.SearchStarted(inst)
	}
}

// NodeCreated implements Observer.
func (m MultiObserver) NodeCreated(n *Node) {
	for _, o := range m {
		o.NodeCreated(n)
	}
}

// IterationEnded implements Observer.
func (m MultiObserver) IterationEnded(sum IterationSummary, n *Node) {
	for _, o := range m {
		o.IterationEnded(sum, n)
	}
}

// IncumbentImproved implements Observer.
func (m MultiObserver) IncumbentImproved(iteration int, n *Node, s Solution) {
	for _, o := range m {
		o.IncumbentImproved(iteration, n, s)
	}
}

// NodePruned implements Observer.
func (m MultiObserver) NodePruned(n *Node) {
	for _, o := range m {
		o.NodePruned(n)
	}
}

// SearchFinished implements Observer.
func (m MultiObserver) SearchFinished(res Result) {
	for _, o := range m {
		o.SearchFinished(res)
	}
}
