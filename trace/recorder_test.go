package trace_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knapbnb/bnb"
	"github.com/katalvlaran/knapbnb/knapsack"
	"github.com/katalvlaran/knapbnb/trace"
)

// RecorderSuite exercises the tree recorder against the four-item
// walkthrough instance, whose full search tree is known by hand.
type RecorderSuite struct {
	suite.Suite
}

func (s *RecorderSuite) demoInstance() *knapsack.Instance {
	inst, err := knapsack.New([]knapsack.Item{
		{Weight: 2, Value: 3},
		{Weight: 3, Value: 4},
		{Weight: 4, Value: 5},
		{Weight: 5, Value: 6},
	}, 5)
	require.NoError(s.T(), err)
	inst.ID = "demo"
	return inst
}

// record runs the walkthrough configuration with a fresh recorder and
// returns the captured record.
func (s *RecorderSuite) record() trace.TreeRecord {
	rec := trace.NewTreeRecorder()
	_, err := bnb.Solve(s.demoInstance(),
		bnb.WithRelaxation(bnb.NaiveRelaxation{}),
		bnb.WithBranching(bnb.FirstUndecidedBranching{}),
		bnb.WithOrder(bnb.DepthFirst()),
		bnb.WithHeuristic(bnb.NoHeuristic{}),
		bnb.WithObserver(rec),
	)
	require.NoError(s.T(), err)
	return rec.Record()
}

// TestWalkthroughRecord pins the shape of the recorded walkthrough run.
func (s *RecorderSuite) TestWalkthroughRecord() {
	rec := s.record()

	_, err := uuid.Parse(rec.RunID)
	require.NoError(s.T(), err, "run ID is a UUID")
	require.Equal(s.T(), "demo", rec.InstanceID)
	require.Len(s.T(), rec.Nodes, 23)
	require.Len(s.T(), rec.Iterations, 20)

	// The single incumbent: node 7 at iteration 7.
	require.Len(s.T(), rec.Improvements, 1)
	require.Equal(s.T(), 7, rec.Improvements[0].Iteration)
	require.Equal(s.T(), 7, rec.Improvements[0].NodeID)
	require.Equal(s.T(), 7.0, rec.Improvements[0].Value)

	require.NotNil(s.T(), rec.Result)
	require.True(s.T(), rec.Result.Found)
	require.True(s.T(), rec.Result.Proven)
	require.NotNil(s.T(), rec.Result.BestValue)
	require.Equal(s.T(), 7.0, *rec.Result.BestValue)
	require.Equal(s.T(), []bool{true, true, false, false}, rec.Result.Selected)
	require.Equal(s.T(), 20, rec.Result.Iterations)
	require.Equal(s.T(), 23, rec.Result.NodesCreated)
}

// TestNodeRecords spot-checks the interesting node shapes: the optimum, an
// infeasible subtree, and the nodes the closing sweep drains without ever
// popping them.
func (s *RecorderSuite) TestNodeRecords() {
	rec := s.record()

	opt := rec.Nodes[7]
	require.Equal(s.T(), "integral", opt.Status)
	require.Equal(s.T(), "7.0", opt.Label)
	require.NotNil(s.T(), opt.UpperBound)
	require.Equal(s.T(), 7.0, *opt.UpperBound)
	require.NotNil(s.T(), opt.LowerBound)
	require.Equal(s.T(), 7.0, *opt.LowerBound)
	require.NotNil(s.T(), opt.ProcessedAt)
	require.Equal(s.T(), 7, *opt.ProcessedAt)
	require.Equal(s.T(), 5, opt.Parent)
	require.Equal(s.T(), 4, opt.Depth)

	infeasible := rec.Nodes[6]
	require.Equal(s.T(), "infeasible", infeasible.Status)
	require.Equal(s.T(), "-inf", infeasible.Label)
	require.Nil(s.T(), infeasible.UpperBound)

	for _, id := range []int{19, 21, 22} {
		swept := rec.Nodes[id]
		require.Equal(s.T(), "pruned", swept.Status, "node %d", id)
		require.Nil(s.T(), swept.ProcessedAt, "swept nodes are never popped")
		require.NotNil(s.T(), swept.SweptAt, "node %d", id)
		require.Equal(s.T(), 20, *swept.SweptAt, "node %d", id)
	}

	root := rec.Nodes[0]
	require.Equal(s.T(), "branched", root.Status)
	require.Equal(s.T(), []int{1, 2}, root.Children)
	require.Equal(s.T(), -1, root.Parent)
	require.Equal(s.T(), "18.0", root.Label)
}

// TestIterationStream checks the incumbent and bound columns around the
// moment the optimum is found.
func (s *RecorderSuite) TestIterationStream() {
	rec := s.record()

	// Before iteration 7 there is no incumbent.
	require.Nil(s.T(), rec.Iterations[0].Incumbent)
	require.Equal(s.T(), 1, rec.Iterations[0].Iteration)
	require.Equal(s.T(), 0, rec.Iterations[0].NodeID)
	require.Equal(s.T(), "branched", rec.Iterations[0].Status)
	require.NotNil(s.T(), rec.Iterations[0].Bound)
	require.Equal(s.T(), 18.0, *rec.Iterations[0].Bound)

	at7 := rec.Iterations[6]
	require.Equal(s.T(), "integral", at7.Status)
	require.NotNil(s.T(), at7.Incumbent)
	require.Equal(s.T(), 7.0, *at7.Incumbent)

	// The final iteration branches node 20; the bound column already sits at
	// the incumbent, which is what triggers the sweep right after.
	last := rec.Iterations[19]
	require.Equal(s.T(), 20, last.Iteration)
	require.Equal(s.T(), "branched", last.Status)
	require.NotNil(s.T(), last.Bound)
	require.Equal(s.T(), 7.0, *last.Bound)
}

// TestReplayScrub rewinds the record to a few checkpoints.
func (s *RecorderSuite) TestReplayScrub() {
	rec := s.record()

	at0 := rec.ReplayAt(0)
	require.Len(s.T(), at0.Nodes, 1)
	require.Equal(s.T(), "open", at0.Nodes[0].Status)
	require.Nil(s.T(), at0.Nodes[0].ProcessedAt)
	require.Empty(s.T(), at0.Iterations)
	require.Nil(s.T(), at0.Result)

	at1 := rec.ReplayAt(1)
	require.Len(s.T(), at1.Nodes, 3)
	require.Equal(s.T(), "branched", at1.Nodes[0].Status)
	require.Equal(s.T(), []int{1, 2}, at1.Nodes[0].Children)
	require.Equal(s.T(), "open", at1.Nodes[1].Status)
	require.Equal(s.T(), "open", at1.Nodes[2].Status)
	require.Len(s.T(), at1.Iterations, 1)

	at7 := rec.ReplayAt(7)
	require.Len(s.T(), at7.Nodes, 9, "nodes 9 and 10 are created at iteration 8")
	require.Equal(s.T(), "integral", at7.Nodes[7].Status)
	require.Len(s.T(), at7.Improvements, 1)
	// Node 19 does not exist yet, node 1 is still waiting.
	require.Equal(s.T(), "open", at7.Nodes[1].Status)

	// One step before the end: nodes 21 and 22 are not born yet and node 19
	// has not been swept.
	at19 := rec.ReplayAt(19)
	require.Len(s.T(), at19.Nodes, 21)
	require.Equal(s.T(), "open", at19.Nodes[19].Status)
	require.Equal(s.T(), "open", at19.Nodes[20].Status)
	require.Nil(s.T(), at19.Result)

	full := rec.ReplayAt(20)
	require.Len(s.T(), full.Nodes, 23)
	require.Equal(s.T(), "pruned", full.Nodes[19].Status)
	require.Equal(s.T(), "pruned", full.Nodes[22].Status)
	require.NotNil(s.T(), full.Result)

	// Out-of-range checkpoints clamp.
	require.Len(s.T(), rec.ReplayAt(-3).Nodes, 1)
	require.NotNil(s.T(), rec.ReplayAt(99).Result)
}

// TestRecordIsDetached proves Record returns a deep copy.
func (s *RecorderSuite) TestRecordIsDetached() {
	recorder := trace.NewTreeRecorder()
	_, err := bnb.Solve(s.demoInstance(), bnb.WithObserver(recorder))
	require.NoError(s.T(), err)

	a := recorder.Record()
	b := recorder.Record()

	a.Nodes[0].Status = "tampered"
	if a.Nodes[0].UpperBound != nil {
		*a.Nodes[0].UpperBound = -1
	}
	require.NotEqual(s.T(), a.Nodes[0].Status, b.Nodes[0].Status)
	require.Equal(s.T(), 7.0, *b.Nodes[0].UpperBound)
}

// TestJSONRoundTrip encodes the record and decodes it back intact.
func (s *RecorderSuite) TestJSONRoundTrip() {
	rec := s.record()

	var buf bytes.Buffer
	require.NoError(s.T(), rec.WriteJSON(&buf))

	var decoded trace.TreeRecord
	require.NoError(s.T(), json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(s.T(), rec, decoded)
}

// TestDeterministicAcrossRuns: identical runs differ only in run ID.
func (s *RecorderSuite) TestDeterministicAcrossRuns() {
	a := s.record()
	b := s.record()

	require.NotEqual(s.T(), a.RunID, b.RunID)
	a.RunID = ""
	b.RunID = ""
	require.Equal(s.T(), a, b)
}

// TestHeuristicLowerBoundRecorded: a branched node still carries the lower
// bound its heuristic completion established.
func (s *RecorderSuite) TestHeuristicLowerBoundRecorded() {
	recorder := trace.NewTreeRecorder()
	_, err := bnb.Solve(s.demoInstance(),
		bnb.WithRelaxation(bnb.NaiveRelaxation{}),
		bnb.WithBranching(bnb.FirstUndecidedBranching{}),
		bnb.WithOrder(bnb.DepthFirst()),
		bnb.WithHeuristic(bnb.GreedyHeuristic{}),
		bnb.WithObserver(recorder),
	)
	require.NoError(s.T(), err)

	rec := recorder.Record()
	root := rec.Nodes[0]
	require.Equal(s.T(), "branched", root.Status)
	require.NotNil(s.T(), root.LowerBound)
	require.Equal(s.T(), 7.0, *root.LowerBound)
}

// SingleIterationRecord covers the degenerate one-node run.
func (s *RecorderSuite) TestSingleIterationRecord() {
	recorder := trace.NewTreeRecorder()
	_, err := bnb.Solve(s.demoInstance(), bnb.WithObserver(recorder))
	require.NoError(s.T(), err)

	rec := recorder.Record()
	require.Len(s.T(), rec.Nodes, 1)
	require.Len(s.T(), rec.Iterations, 1)
	require.Equal(s.T(), "integral", rec.Nodes[0].Status)
	require.NotNil(s.T(), rec.Result)
	require.True(s.T(), rec.Result.Proven)
}

// Entry point for running the suite.
func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderSuite))
}
