// Package bnb - sentinel errors.
//
// Rationale:
//   - Every failure mode is a distinct, errors.Is-matchable sentinel with a
//     "bnb:" prefix, wrapped at the call site with node and field context.
//   - Contract sentinels (relaxation, branching, heuristic, pool) mark
//     programming errors in plugged-in policies. The engine fails fast on
//     them instead of searching on top of an unsound bound.
//   - ErrIterationLimit is NOT a contract violation: it is the anytime exit.
//     Run returns it together with the best incumbent found so far.
package bnb

import "errors"

var (
	// ErrNilInstance is returned by NewSearch and Solve when inst == nil.
	ErrNilInstance = errors.New("bnb: nil instance")

	// ErrBadInstance wraps a knapsack validation failure detected before the
	// search starts.
	ErrBadInstance = errors.New("bnb: invalid instance")

	// ErrOptionViolation is returned when options resolve to an unusable
	// configuration (nil policy, negative tolerance, negative limit).
	ErrOptionViolation = errors.New("bnb: option violation")

	// ErrItemDecided is returned by Decisions.Split when the requested item
	// is already fixed. Surfacing through the engine it becomes part of an
	// ErrBranchingContract wrap.
	ErrItemDecided = errors.New("bnb: item already decided")

	// ErrNoUndecided is returned by branching policies asked to pick an item
	// on a node with no undecided items left.
	ErrNoUndecided = errors.New("bnb: no undecided item to branch on")

	// ErrRelaxationContract is returned when a relaxation policy produces an
	// ill-formed bound: wrong selection length, entries outside [0,1], fixed
	// entries contradicting the node, or a bound below its own selection.
	ErrRelaxationContract = errors.New("bnb: relaxation contract violated")

	// ErrBranchingContract is returned when a branching policy picks an item
	// outside the undecided set.
	ErrBranchingContract = errors.New("bnb: branching contract violated")

	// ErrHeuristicContract is returned when a heuristic offers an incomplete
	// or infeasible packing, or misreports its value.
	ErrHeuristicContract = errors.New("bnb: heuristic contract violated")

	// ErrPoolContract is returned when a solution offered to the pool is
	// incomplete or violates the capacity.
	ErrPoolContract = errors.New("bnb: solution pool contract violated")

	// ErrIterationLimit is returned by Run/Solve when the configured budget
	// is exhausted before the frontier empties. The Result alongside still
	// carries the incumbent; Proven is false.
	ErrIterationLimit = errors.New("bnb: iteration limit reached")
)
