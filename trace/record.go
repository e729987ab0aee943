// Package trace - serializable search records.
//
// Rationale:
//   - Records mirror the engine's tree and iteration stream in plain data:
//     ints, strings, pointers. Everything JSON-encodes, nothing aliases the
//     live search.
//   - Bounds that are -Inf (infeasible markers, the empty incumbent) encode
//     as nil pointers: encoding/json rejects non-finite floats outright.
//   - ReplayAt rewinds a finished record to any iteration, so a visualizer
//     can scrub through the search without re-running it.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// NodeRecord is the serializable snapshot of one tree node.
type NodeRecord struct {
	ID     int    `json:"id"`
	Parent int    `json:"parent"` // -1 for the root
	Depth  int    `json:"depth"`
	Label  string `json:"label"` // bound to one decimal, "-inf" for infeasible
	Status string `json:"status"`

	// UpperBound is nil for infeasible-marked nodes, LowerBound nil until a
	// feasible completion is known.
	UpperBound *float64 `json:"ub,omitempty"`
	LowerBound *float64 `json:"lb,omitempty"`

	CreatedAt int `json:"created_at"`
	// ProcessedAt is nil until the node is popped; swept nodes keep nil and
	// carry SweptAt instead.
	ProcessedAt *int  `json:"processed_at,omitempty"`
	SweptAt     *int  `json:"swept_at,omitempty"`
	Children    []int `json:"children,omitempty"`
}

// IterationRecord is one line of the iteration stream.
type IterationRecord struct {
	Iteration int    `json:"iteration"`
	NodeID    int    `json:"node_id"`
	Status    string `json:"status"`

	// Incumbent and Bound are nil while unknown (-Inf in the engine).
	Incumbent *float64 `json:"incumbent,omitempty"`
	Bound     *float64 `json:"global_bound,omitempty"`
}

// ImprovementRecord marks one strict rise of the incumbent.
type ImprovementRecord struct {
	Iteration int     `json:"iteration"`
	NodeID    int     `json:"node_id"`
	Value     float64 `json:"value"`
}

// ResultRecord is the final outcome of the recorded run.
type ResultRecord struct {
	BestValue    *float64 `json:"best_value,omitempty"`
	Selected     []bool   `json:"selected,omitempty"`
	Found        bool     `json:"found"`
	Proven       bool     `json:"proven"`
	Iterations   int      `json:"iterations"`
	NodesCreated int      `json:"nodes_created"`
}

// TreeRecord is the full story of one search run.
type TreeRecord struct {
	RunID        string              `json:"run_id"`
	InstanceID   string              `json:"instance_id,omitempty"`
	Nodes        []NodeRecord        `json:"nodes"`
	Iterations   []IterationRecord   `json:"iterations"`
	Improvements []ImprovementRecord `json:"improvements,omitempty"`
	Result       *ResultRecord       `json:"result,omitempty"`
}

// Clone returns a deep copy sharing no pointers with the receiver.
func (r TreeRecord) Clone() TreeRecord {
	out := r
	out.Nodes = make([]NodeRecord, len(r.Nodes))
	for i, n := range r.Nodes {
		out.Nodes[i] = n.clone()
	}
	out.Iterations = make([]IterationRecord, len(r.Iterations))
	for i, it := range r.Iterations {
		out.Iterations[i] = it.clone()
	}
	out.Improvements = append([]ImprovementRecord(nil), r.Improvements...)
	if r.Result != nil {
		res := *r.Result
		res.BestValue = clonePtr(r.Result.BestValue)
		res.Selected = append([]bool(nil), r.Result.Selected...)
		out.Result = &res
	}
	return out
}

func (n NodeRecord) clone() NodeRecord {
	out := n
	out.UpperBound = clonePtr(n.UpperBound)
	out.LowerBound = clonePtr(n.LowerBound)
	out.ProcessedAt = clonePtr(n.ProcessedAt)
	out.SweptAt = clonePtr(n.SweptAt)
	out.Children = append([]int(nil), n.Children...)
	return out
}

func (it IterationRecord) clone() IterationRecord {
	out := it
	out.Incumbent = clonePtr(it.Incumbent)
	out.Bound = clonePtr(it.Bound)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// finitePtr boxes v, mapping -Inf (and NaN) to nil so the record always
// JSON-encodes.
func finitePtr(v float64) *float64 {
	if math.IsInf(v, -1) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// boundLabel renders an upper bound for display.
func boundLabel(ub *float64) string {
	if ub == nil {
		return "-inf"
	}
	return fmt.Sprintf("%.1f", *ub)
}

// WriteJSON streams the record as indented JSON.
func (r TreeRecord) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReplayAt rewinds the record to the state right after iteration k: nodes
// created later vanish, nodes processed or swept later reopen, and the
// iteration stream is truncated. k is clamped to [0, len(Iterations)]; the
// result is fully recorded only at the final k.
//
// Complexity: O(nodes + iterations).
func (r TreeRecord) ReplayAt(k int) TreeRecord {
	if k < 0 {
		k = 0
	}
	if k > len(r.Iterations) {
		k = len(r.Iterations)
	}

	out := r.Clone()
	out.Iterations = out.Iterations[:k]

	var nodes []NodeRecord
	for _, n := range out.Nodes {
		if n.CreatedAt > k {
			continue
		}
		if n.ProcessedAt != nil && *n.ProcessedAt > k {
			n = reopen(n)
		}
		if n.ProcessedAt == nil && n.SweptAt != nil && *n.SweptAt > k {
			n = reopen(n)
		}
		nodes = append(nodes, n)
	}
	out.Nodes = nodes

	var improved []ImprovementRecord
	for _, imp := range out.Improvements {
		if imp.Iteration <= k {
			improved = append(improved, imp)
		}
	}
	out.Improvements = improved

	if k < len(r.Iterations) {
		out.Result = nil
	}
	return out
}

// reopen rolls a node back to its frontier state.
func reopen(n NodeRecord) NodeRecord {
	n.Status = "open"
	n.ProcessedAt = nil
	n.SweptAt = nil
	n.LowerBound = nil
	n.Children = nil
	return n
}
