// Package bnb_test shared fixtures: reference instances with hand-checked
// optima, an event-recording observer, and a completion oracle.
package bnb_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapbnb/bnb"
	"github.com/katalvlaran/knapbnb/knapsack"
)

// demoInstance is the four-item walkthrough: optimum 7 = items 0+1 at
// weight 5.
func demoInstance() *knapsack.Instance {
	return &knapsack.Instance{
		Items: []knapsack.Item{
			{Weight: 2, Value: 3},
			{Weight: 3, Value: 4},
			{Weight: 4, Value: 5},
			{Weight: 5, Value: 6},
		},
		Capacity: 5,
	}
}

// unitValueInstance: weights 1..n, all values 1; optimum is the largest
// count of lightest items that fits.
func unitValueInstance(n int, capacity float64) *knapsack.Instance {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{Weight: float64(i + 1), Value: 1}
	}
	return &knapsack.Instance{Items: items, Capacity: capacity}
}

// mixedValueInstance: ten fillers (weights 1..10, value 10) plus two
// premium items (11→20, 12→30); optimum 60 at capacity 20.
func mixedValueInstance() *knapsack.Instance {
	items := make([]knapsack.Item, 0, 12)
	for w := 1; w <= 10; w++ {
		items = append(items, knapsack.Item{Weight: float64(w), Value: 10})
	}
	items = append(items,
		knapsack.Item{Weight: 11, Value: 20},
		knapsack.Item{Weight: 12, Value: 30},
	)
	return &knapsack.Instance{Items: items, Capacity: 20}
}

// oddWeightInstance: twenty items, odd weights 1..39, irregular values;
// optimum 171 at capacity 100.
func oddWeightInstance() *knapsack.Instance {
	values := []float64{10, 15, 7, 22, 13, 17, 9, 27, 16, 21, 29, 30, 25, 31, 18, 33, 20, 35, 23, 37}
	items := make([]knapsack.Item, len(values))
	for i, v := range values {
		items[i] = knapsack.Item{Weight: float64(2*i + 1), Value: v}
	}
	return &knapsack.Instance{Items: items, Capacity: 100}
}

// eventLog records the full observer stream as comparable strings.
type eventLog struct {
	events []string
}

func (l *eventLog) SearchStarted(inst *knapsack.Instance) {
	l.events = append(l.events, fmt.Sprintf("start items=%d cap=%g", inst.NumItems(), inst.Capacity))
}

func (l *eventLog) NodeCreated(n *bnb.Node) {
	l.events = append(l.events, fmt.Sprintf("create id=%d parent=%d at=%d ub=%g", n.ID, n.Parent, n.CreatedAt, n.UpperBound()))
}

func (l *eventLog) IterationEnded(sum bnb.IterationSummary, _ *bnb.Node) {
	l.events = append(l.events, fmt.Sprintf("iter=%d node=%d status=%s incumbent=%g bound=%g",
		sum.Iteration, sum.NodeID, sum.Status, sum.Incumbent, sum.GlobalBound))
}

func (l *eventLog) IncumbentImproved(iteration int, n *bnb.Node, s bnb.Solution) {
	l.events = append(l.events, fmt.Sprintf("incumbent iter=%d node=%d value=%g", iteration, n.ID, s.Value))
}

func (l *eventLog) NodePruned(n *bnb.Node) {
	l.events = append(l.events, fmt.Sprintf("sweep id=%d ub=%g", n.ID, n.UpperBound()))
}

func (l *eventLog) SearchFinished(res bnb.Result) {
	l.events = append(l.events, fmt.Sprintf("finish best=%g proven=%t iters=%d nodes=%d",
		res.Best.Value, res.Proven, res.Iterations, res.NodesCreated))
}

// bestCompletion exhaustively computes the best feasible objective reachable
// from a partial decision vector; -Inf when even the fixed part overflows.
// Oracle for bound-soundness and dominance checks.
func bestCompletion(inst *knapsack.Instance, dec bnb.Decisions) float64 {
	var (
		undecided []int
		used      float64
		accrued   float64
	)
	for i := 0; i < dec.Len(); i++ {
		switch dec.At(i) {
		case bnb.Included:
			used += inst.Items[i].Weight
			accrued += inst.Items[i].Value
		case bnb.Undecided:
			undecided = append(undecided, i)
		}
	}
	if used > inst.Capacity {
		return math.Inf(-1)
	}

	best := accrued
	for mask := 1; mask < 1<<len(undecided); mask++ {
		w, v := used, accrued
		for bit, idx := range undecided {
			if mask&(1<<bit) != 0 {
				w += inst.Items[idx].Weight
				v += inst.Items[idx].Value
			}
		}
		if w <= inst.Capacity && v > best {
			best = v
		}
	}
	return best
}

// statusCounts tallies terminal statuses over a finished tree.
func statusCounts(tree *bnb.Tree) map[bnb.Status]int {
	counts := make(map[bnb.Status]int)
	for _, n := range tree.All() {
		counts[n.Status]++
	}
	return counts
}
