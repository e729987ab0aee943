// Package bnb - functional configuration for the search.
//
// Defaults are the strongest stock setup: the LP bound, split-item
// branching, depth-first order and the greedy primal heuristic. Every
// policy can be swapped independently; NewSearch validates the resolved
// configuration once and fails fast with ErrOptionViolation.
package bnb

import (
	"fmt"
	"math"
)

// Default tolerances and budgets; see the Option setters.
const (
	// DefaultEps is the comparison tolerance: integrality of fractions,
	// bound-vs-incumbent pruning, capacity slack.
	DefaultEps = 1e-9

	// DefaultIterationLimit of 0 means unlimited: run to proof.
	DefaultIterationLimit = 0
)

// Options carries the resolved search configuration.
type Options struct {
	// Relaxation computes upper bounds; nil is rejected.
	Relaxation Relaxation
	// Branching picks split items; nil is rejected.
	Branching Branching
	// Order ranks the frontier; nil is rejected.
	Order SearchOrder
	// Heuristic proposes feasible completions; nil is rejected (use
	// NoHeuristic to disable).
	Heuristic Heuristic
	// Eps is the non-negative comparison tolerance.
	Eps float64
	// IterationLimit caps Step count; 0 means unlimited.
	IterationLimit int
	// Observer receives search events; nil is rejected (use NopObserver).
	Observer Observer
}

// Option mutates Options. Setters only record; validation happens once in
// NewSearch.
type Option func(*Options)

// DefaultOptions returns the documented defaults: FractionalRelaxation,
// FractionalBranching, DepthFirst, GreedyHeuristic, DefaultEps, no
// iteration limit, NopObserver.
func DefaultOptions() Options {
	return Options{
		Relaxation:     FractionalRelaxation{},
		Branching:      FractionalBranching{Eps: DefaultEps},
		Order:          DepthFirst(),
		Heuristic:      GreedyHeuristic{},
		Eps:            DefaultEps,
		IterationLimit: DefaultIterationLimit,
		Observer:       NopObserver{},
	}
}

// WithRelaxation plugs in an upper-bound policy.
func WithRelaxation(r Relaxation) Option {
	return func(o *Options) { o.Relaxation = r }
}

// WithBranching plugs in a branching-variable policy.
func WithBranching(b Branching) Option {
	return func(o *Options) { o.Branching = b }
}

// WithOrder plugs in a frontier order.
func WithOrder(s SearchOrder) Option {
	return func(o *Options) { o.Order = s }
}

// WithHeuristic plugs in a primal heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithEps sets the comparison tolerance. Must be finite and ≥ 0.
func WithEps(eps float64) Option {
	return func(o *Options) { o.Eps = eps }
}

// WithIterationLimit caps the number of iterations; 0 means unlimited.
// When the cap is hit, Run returns ErrIterationLimit together with the
// incumbent found so far.
func WithIterationLimit(limit int) Option {
	return func(o *Options) { o.IterationLimit = limit }
}

// WithObserver attaches an event sink. Combine several with MultiObserver.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// gatherOptions resolves setters over defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()

	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	switch {
	case o.Relaxation == nil:
		return o, fmt.Errorf("%w: nil Relaxation", ErrOptionViolation)
	case o.Branching == nil:
		return o, fmt.Errorf("%w: nil Branching", ErrOptionViolation)
	case o.Order == nil:
		return o, fmt.Errorf("%w: nil Order", ErrOptionViolation)
	case o.Heuristic == nil:
		return o, fmt.Errorf("%w: nil Heuristic (use NoHeuristic{})", ErrOptionViolation)
	case o.Observer == nil:
		return o, fmt.Errorf("%w: nil Observer (use NopObserver{})", ErrOptionViolation)
	case math.IsNaN(o.Eps) || math.IsInf(o.Eps, 0) || o.Eps < 0:
		return o, fmt.Errorf("%w: eps=%v must be finite and non-negative", ErrOptionViolation, o.Eps)
	case o.IterationLimit < 0:
		return o, fmt.Errorf("%w: iteration limit %d must be ≥ 0", ErrOptionViolation, o.IterationLimit)
	}
	return o, nil
}
