package bnb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapbnb/bnb"
)

func TestFirstUndecidedBranching_PicksLowestFreeIndex(t *testing.T) {
	inst := demoInstance()
	pol := bnb.FirstUndecidedBranching{}

	n := &bnb.Node{Decisions: bnb.NewDecisions(4)}
	idx, err := pol.Pick(inst, n)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	dec := bnb.NewDecisions(4)
	dec, _, err = dec.Split(0)
	require.NoError(t, err)
	_, dec, err = dec.Split(1)
	require.NoError(t, err)

	n = &bnb.Node{Decisions: dec}
	idx, err = pol.Pick(inst, n)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestFirstUndecidedBranching_NoUndecided(t *testing.T) {
	inst := demoInstance()

	dec := bnb.NewDecisions(2)
	dec, _, err := dec.Split(0)
	require.NoError(t, err)
	dec, _, err = dec.Split(1)
	require.NoError(t, err)

	_, err = bnb.FirstUndecidedBranching{}.Pick(inst, &bnb.Node{Decisions: dec})
	assert.ErrorIs(t, err, bnb.ErrNoUndecided)
}

func TestFractionalBranching_PivotsOnSplitItem(t *testing.T) {
	inst := demoInstance()
	pol := bnb.FractionalBranching{Eps: eps}

	n := &bnb.Node{
		Decisions: bnb.NewDecisions(4),
		Relaxed:   bnb.RelaxedSolution{Selection: []float64{1, 1, 0.25, 0}, Value: 8.25},
	}
	idx, err := pol.Pick(inst, n)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestFractionalBranching_FallsBackWhenIntegral(t *testing.T) {
	inst := demoInstance()
	pol := bnb.FractionalBranching{Eps: eps}

	// An integral selection carries no split item; the policy falls back to
	// the first undecided index.
	dec := bnb.NewDecisions(4)
	dec, _, err := dec.Split(0)
	require.NoError(t, err)

	n := &bnb.Node{
		Decisions: dec,
		Relaxed:   bnb.RelaxedSolution{Selection: []float64{0, 1, 1, 0}, Value: 9},
	}
	idx, err := pol.Pick(inst, n)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestFractionalBranching_FallsBackOnInfeasibleMarker(t *testing.T) {
	inst := demoInstance()
	pol := bnb.FractionalBranching{Eps: eps}

	n := &bnb.Node{
		Decisions: bnb.NewDecisions(4),
		Relaxed:   bnb.InfeasibleRelaxation(),
	}
	idx, err := pol.Pick(inst, n)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}
