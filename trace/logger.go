// Package trace - structured progress logging.
package trace

import (
	"log/slog"

	"github.com/katalvlaran/knapbnb/bnb"
	"github.com/katalvlaran/knapbnb/knapsack"
)

// LogObserver narrates a search through slog: run milestones at Info,
// per-node noise at Debug, iteration lines sampled every n iterations.
type LogObserver struct {
	log   *slog.Logger
	every int
}

var _ bnb.Observer = (*LogObserver)(nil)

// NewLogObserver wraps logger; nil falls back to slog.Default. every
// controls iteration sampling and is clamped to at least 1.
func NewLogObserver(logger *slog.Logger, every int) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	if every < 1 {
		every = 1
	}
	return &LogObserver{log: logger, every: every}
}

// SearchStarted implements bnb.Observer.
func (o *LogObserver) SearchStarted(inst *knapsack.Instance) {
	o.log.Info("search.start",
		"instance", inst.ID,
		"items", inst.NumItems(),
		"capacity", inst.Capacity)
}

// NodeCreated implements bnb.Observer.
func (o *LogObserver) NodeCreated(n *bnb.Node) {
	o.log.Debug("node.created",
		"node", n.ID,
		"parent", n.Parent,
		"depth", n.Depth,
		"bound", n.UpperBound())
}

// IterationEnded implements bnb.Observer.
func (o *LogObserver) IterationEnded(sum bnb.IterationSummary, _ *bnb.Node) {
	if sum.Iteration%o.every != 0 {
		return
	}
	o.log.Info("iteration",
		"iteration", sum.Iteration,
		"node", sum.NodeID,
		"status", sum.Status.String(),
		"incumbent", sum.Incumbent,
		"bound", sum.GlobalBound,
		"frontier", sum.FrontierLen)
}

// IncumbentImproved implements bnb.Observer.
func (o *LogObserver) IncumbentImproved(iteration int, n *bnb.Node, s bnb.Solution) {
	o.log.Info("incumbent.improved",
		"iteration", iteration,
		"node", n.ID,
		"value", s.Value,
		"weight", s.Weight)
}

// NodePruned implements bnb.Observer.
func (o *LogObserver) NodePruned(n *bnb.Node) {
	o.log.Debug("node.swept",
		"node", n.ID,
		"bound", n.UpperBound())
}

// SearchFinished implements bnb.Observer.
func (o *LogObserver) SearchFinished(res bnb.Result) {
	args := []any{
		"found", res.Found,
		"proven", res.Proven,
		"iterations", res.Iterations,
		"nodes", res.NodesCreated,
	}
	if res.Found {
		args = append(args, "best", res.Best.Value)
	}
	o.log.Info("search.finish", args...)
}
