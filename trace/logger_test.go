package trace

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapbnb/bnb"
	"github.com/katalvlaran/knapbnb/knapsack"
)

// walkthroughInstance is the four-item fixture with a hand-known tree:
// 20 iterations and 23 nodes under the walkthrough options.
func walkthroughInstance(t *testing.T) *knapsack.Instance {
	t.Helper()
	inst, err := knapsack.New([]knapsack.Item{
		{Weight: 2, Value: 3},
		{Weight: 3, Value: 4},
		{Weight: 4, Value: 5},
		{Weight: 5, Value: 6},
	}, 5)
	require.NoError(t, err)
	inst.ID = "demo"
	return inst
}

// walkthroughOptions is the loose-bound configuration that produces the
// full 20-iteration tree.
func walkthroughOptions(extra ...bnb.Option) []bnb.Option {
	opts := []bnb.Option{
		bnb.WithRelaxation(bnb.NaiveRelaxation{}),
		bnb.WithBranching(bnb.FirstUndecidedBranching{}),
		bnb.WithOrder(bnb.DepthFirst()),
		bnb.WithHeuristic(bnb.NoHeuristic{}),
	}
	return append(opts, extra...)
}

func TestNewLogObserver_Defaults(t *testing.T) {
	obs := NewLogObserver(nil, 0)
	require.NotNil(t, obs.log)
	assert.Equal(t, 1, obs.every)

	obs = NewLogObserver(slog.Default(), 5)
	assert.Equal(t, 5, obs.every)
}

func TestLogObserver_DebugStream(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := bnb.Solve(walkthroughInstance(t),
		walkthroughOptions(bnb.WithObserver(NewLogObserver(logger, 5)))...)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=search.start")
	assert.Contains(t, out, "instance=demo items=4 capacity=5")

	// Sampled at stride 5 over 20 iterations: lines 5, 10, 15, 20.
	assert.Equal(t, 4, strings.Count(out, "msg=iteration "))

	assert.Equal(t, 1, strings.Count(out, "msg=incumbent.improved"))
	assert.Contains(t, out, "msg=incumbent.improved iteration=7 node=7 value=7 weight=5")

	// Every node creation and the three sweep victims appear at Debug.
	assert.Equal(t, 23, strings.Count(out, "msg=node.created"))
	assert.Equal(t, 3, strings.Count(out, "msg=node.swept"))

	assert.Contains(t, out, "msg=search.finish")
	assert.Contains(t, out, "found=true proven=true iterations=20 nodes=23 best=7")
}

func TestLogObserver_InfoLevelMutesNodeNoise(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := bnb.Solve(walkthroughInstance(t),
		walkthroughOptions(bnb.WithObserver(NewLogObserver(logger, 1)))...)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 20, strings.Count(out, "msg=iteration "))
	assert.NotContains(t, out, "msg=node.created")
	assert.NotContains(t, out, "msg=node.swept")
}
