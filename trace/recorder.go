// Package trace - the tree recorder.
//
// Rationale:
//   - The recorder is a bnb.Observer that copies every event into plain
//     records at the moment it fires. Nothing points back into the engine,
//     so the record stays valid after the search is gone.
//   - One recorder covers one run. Each recorder mints its own run ID so
//     archived records stay distinguishable across repeated solves.
package trace

import (
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/knapbnb/bnb"
	"github.com/katalvlaran/knapbnb/knapsack"
)

// TreeRecorder captures a full, replayable TreeRecord of one search run.
// Attach with bnb.WithObserver; drive exactly one search with it.
type TreeRecorder struct {
	rec TreeRecord

	// lastIter stamps sweep events, which fire between iterations.
	lastIter int
}

var _ bnb.Observer = (*TreeRecorder)(nil)

// NewTreeRecorder returns an empty recorder with a fresh run ID.
func NewTreeRecorder() *TreeRecorder {
	return &TreeRecorder{rec: TreeRecord{RunID: uuid.NewString()}}
}

// Record returns a deep copy of everything recorded so far.
func (r *TreeRecorder) Record() TreeRecord {
	return r.rec.Clone()
}

// WriteJSON streams the current record as indented JSON.
func (r *TreeRecorder) WriteJSON(w io.Writer) error {
	return r.rec.WriteJSON(w)
}

// ReplayAt rewinds the recorded run to the state after iteration k; see
// TreeRecord.ReplayAt.
func (r *TreeRecorder) ReplayAt(k int) TreeRecord {
	return r.rec.ReplayAt(k)
}

// SearchStarted implements bnb.Observer.
func (r *TreeRecorder) SearchStarted(inst *knapsack.Instance) {
	r.rec.InstanceID = inst.ID
}

// NodeCreated implements bnb.Observer.
func (r *TreeRecorder) NodeCreated(n *bnb.Node) {
	ub := finitePtr(n.UpperBound())
	r.rec.Nodes = append(r.rec.Nodes, NodeRecord{
		ID:         n.ID,
		Parent:     n.Parent,
		Depth:      n.Depth,
		Label:      boundLabel(ub),
		Status:     n.Status.String(),
		UpperBound: ub,
		CreatedAt:  n.CreatedAt,
	})
}

// IterationEnded implements bnb.Observer.
func (r *TreeRecorder) IterationEnded(sum bnb.IterationSummary, n *bnb.Node) {
	r.lastIter = sum.Iteration
	r.rec.Iterations = append(r.rec.Iterations, IterationRecord{
		Iteration: sum.Iteration,
		NodeID:    sum.NodeID,
		Status:    sum.Status.String(),
		Incumbent: finitePtr(sum.Incumbent),
		Bound:     finitePtr(sum.GlobalBound),
	})

	rec := &r.rec.Nodes[n.ID]
	rec.Status = n.Status.String()
	processedAt := n.ProcessedAt
	rec.ProcessedAt = &processedAt
	if n.HasLowerBound() {
		lb := n.LowerBound
		rec.LowerBound = &lb
	}
	if len(n.Children) > 0 {
		rec.Children = append([]int(nil), n.Children...)
	}
}

// IncumbentImproved implements bnb.Observer.
func (r *TreeRecorder) IncumbentImproved(iteration int, n *bnb.Node, s bnb.Solution) {
	r.rec.Improvements = append(r.rec.Improvements, ImprovementRecord{
		Iteration: iteration,
		NodeID:    n.ID,
		Value:     s.Value,
	})
}

// NodePruned implements bnb.Observer.
func (r *TreeRecorder) NodePruned(n *bnb.Node) {
	rec := &r.rec.Nodes[n.ID]
	rec.Status = n.Status.String()
	sweptAt := r.lastIter
	rec.SweptAt = &sweptAt
}

// SearchFinished implements bnb.Observer.
func (r *TreeRecorder) SearchFinished(res bnb.Result) {
	out := &ResultRecord{
		Found:        res.Found,
		Proven:       res.Proven,
		Iterations:   res.Iterations,
		NodesCreated: res.NodesCreated,
	}
	if res.Found {
		out.BestValue = finitePtr(res.Best.Value)
		out.Selected = res.Best.Selected()
	}
	r.rec.Result = out
}
