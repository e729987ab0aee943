// Package bnb - the search engine.
//
// Rationale:
//   - The loop is fixed; the four policies are plugged in. Every node pops
//     exactly once and runs the same protocol: infeasibility guard, bound
//     prune, integral acceptance, heuristic, bound-met check, branch.
//   - Bounds are evaluated eagerly when a node is created, never at pop
//     time. Best-first ordering needs comparable bounds for nodes that have
//     not been processed yet, and the global bound must cover open nodes.
//   - After every iteration the global prune sweep clears the frontier
//     whenever no open node can beat the incumbent anymore; the search then
//     ends with the optimum proven.
//
// Contracts:
//   - Single-threaded: one Search per goroutine, no locking, and in return
//     byte-for-byte reproducible runs (IDs, statuses, stamps, events).
//   - Policy outputs are validated on every call; a violation poisons the
//     Search with a sentinel error rather than risking a wrong optimum.
//   - Fully decided nodes close through integral acceptance: their
//     selection is forced to match their decisions by the relaxation
//     contract, so a dedicated leaf path would be unreachable.
package bnb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapbnb/knapsack"
)

// Result is the outcome of a search.
type Result struct {
	// Best is the incumbent; meaningful only when Found.
	Best Solution
	// Found reports whether any feasible solution was seen. A valid
	// instance always yields one once the search runs long enough (the
	// empty packing is feasible).
	Found bool
	// Proven reports whether the frontier was exhausted: Best is then the
	// optimum, not just the best seen so far.
	Proven bool
	// Iterations counts processed nodes.
	Iterations int
	// NodesCreated counts all tree nodes, root included.
	NodesCreated int
}

// Search is one branch-and-bound run over one instance. Create with
// NewSearch, then drive with Step or Run. Not safe for concurrent use.
type Search struct {
	inst *knapsack.Instance
	opts Options

	// Dense snapshots taken at start; branching reads these, so caller-side
	// mutation of the instance mid-run cannot skew the aggregates.
	weights []float64
	values  []float64

	tree  *Tree
	front *frontier
	pool  *SolutionPool

	iter     int
	done     bool
	finished bool
	limited  bool
	err      error
}

// NewSearch validates the instance and options, creates and bounds the root
// node, and leaves the search ready for the first Step.
func NewSearch(inst *knapsack.Instance, opts ...Option) (*Search, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInstance, err)
	}

	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	s := &Search{
		inst:    inst,
		opts:    o,
		weights: inst.Weights(),
		values:  inst.Values(),
		tree:    &Tree{},
		front:   newFrontier(o.Order),
		pool:    NewSolutionPool(inst, o.Eps),
	}

	s.opts.Observer.SearchStarted(inst)
	if _, err = s.createNode(NoParent, 0, NewDecisions(inst.NumItems()), 0, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// Solve runs a search to completion in one call.
func Solve(inst *knapsack.Instance, opts ...Option) (Result, error) {
	s, err := NewSearch(inst, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run()
}

// Run drives Step until the search finishes. On ErrIterationLimit the
// returned Result still carries the incumbent (anytime behavior); on a
// contract violation the Result reflects the poisoned state and must not
// be trusted as an optimum.
func (s *Search) Run() (Result, error) {
	var (
		more bool
		err  error
	)
	for {
		more, err = s.Step()
		if err != nil {
			return s.Result(), err
		}
		if !more {
			return s.Result(), nil
		}
	}
}

// Step runs one iteration: pop, protocol, events, sweep. It reports true
// when a node was processed, false once the search is over. The iteration
// budget surfaces here as ErrIterationLimit.
func (s *Search) Step() (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.limited {
		return false, ErrIterationLimit
	}
	if s.done {
		return false, nil
	}
	if s.opts.IterationLimit > 0 && s.iter >= s.opts.IterationLimit {
		s.limited = true
		s.finish()
		return false, ErrIterationLimit
	}

	s.iter++
	n := s.front.pop()
	n.ProcessedAt = s.iter

	if err := s.process(n); err != nil {
		s.err = err
		return false, err
	}
	s.emitIteration(n)
	s.sweep()

	if s.front.Len() == 0 {
		s.finish()
	}
	return true, nil
}

// Done reports whether the search is over (proven, limited or poisoned).
func (s *Search) Done() bool { return s.done || s.err != nil }

// Result snapshots the current outcome; callable at any point, not just at
// the end.
func (s *Search) Result() Result {
	best, found := s.pool.Best()
	return Result{
		Best:         best,
		Found:        found,
		Proven:       s.front.Len() == 0 && s.err == nil && !s.limited,
		Iterations:   s.iter,
		NodesCreated: s.tree.Len(),
	}
}

// Tree exposes the arena of all nodes created so far. Read-only.
func (s *Search) Tree() *Tree { return s.tree }

// Pool exposes the solution pool. Read-only.
func (s *Search) Pool() *SolutionPool { return s.pool }

// Incumbent returns the best feasible solution so far.
func (s *Search) Incumbent() (Solution, bool) { return s.pool.Best() }

// Iterations returns the number of processed nodes so far.
func (s *Search) Iterations() int { return s.iter }

// FrontierLen returns the number of open nodes.
func (s *Search) FrontierLen() int { return s.front.Len() }

// GlobalBound returns the certified ceiling on the optimum right now:
// max(incumbent, best open bound). -Inf before anything is known.
func (s *Search) GlobalBound() float64 {
	return math.Max(s.pool.BestValue(), s.front.maxUpperBound())
}

// createNode evaluates the bound eagerly, appends the node to the arena,
// pushes it onto the frontier and announces it. CreatedAt is the current
// iteration: 0 for the root, the parent's ProcessedAt for children.
func (s *Search) createNode(parent, depth int, dec Decisions, usedWeight, accruedValue float64) (*Node, error) {
	rs, err := s.opts.Relaxation.Relax(s.inst, dec)
	if err != nil {
		return nil, fmt.Errorf("bnb: relaxation failed at depth %d: %w", depth, err)
	}
	if err = validateRelaxed(s.inst, dec, rs, s.opts.Eps); err != nil {
		return nil, err
	}

	n := s.tree.add(&Node{
		Parent:       parent,
		Depth:        depth,
		Decisions:    dec,
		UsedWeight:   usedWeight,
		AccruedValue: accruedValue,
		Relaxed:      rs,
		LowerBound:   math.NaN(),
		Status:       StatusOpen,
		CreatedAt:    s.iter,
		ProcessedAt:  NotProcessed,
	})
	s.front.push(n)
	s.opts.Observer.NodeCreated(n)
	return n, nil
}

// process runs the node protocol and leaves n in a terminal status.
func (s *Search) process(n *Node) error {
	// Infeasibility guard. The -Inf marker covers bounds that checked the
	// fixed weight; the explicit weight test covers bounds that did not.
	if n.Relaxed.Infeasible() || n.UsedWeight > s.inst.Capacity+s.opts.Eps {
		n.Status = StatusInfeasible
		return nil
	}

	// Bound prune: the subtree cannot strictly beat the incumbent. Before
	// any solution exists the incumbent is -Inf and nothing prunes.
	if n.UpperBound() <= s.pool.BestValue()+s.opts.Eps {
		n.Status = StatusPruned
		return nil
	}

	// Integral acceptance: the bound witness itself is a feasible packing,
	// so the subtree optimum is exactly the bound. Fully decided nodes
	// always land here.
	if n.Relaxed.Integral(s.opts.Eps) && n.Relaxed.ObeysCapacity(s.inst, s.opts.Eps) {
		sol := newSolution(s.inst, assignmentFromSelection(n.Relaxed.Selection, s.opts.Eps))
		improved, err := s.pool.Add(sol)
		if err != nil {
			return err
		}
		n.LowerBound = sol.Value
		n.Status = StatusIntegral
		if improved {
			s.opts.Observer.IncumbentImproved(s.iter, n, sol)
		}
		return nil
	}

	// Heuristic completion: a feasible witness raises the node's lower
	// bound and may move the incumbent.
	if sol, ok := s.opts.Heuristic.Complete(s.inst, n); ok {
		if err := s.validateHeuristic(n, sol); err != nil {
			return err
		}
		improved, err := s.pool.Add(sol)
		if err != nil {
			return err
		}
		if !n.HasLowerBound() || sol.Value > n.LowerBound {
			n.LowerBound = sol.Value
		}
		if improved {
			s.opts.Observer.IncumbentImproved(s.iter, n, sol)
		}
	}

	// Bound met: the heuristic achieved everything the bound allows, so
	// branching cannot find more.
	if n.HasLowerBound() && n.UpperBound()-n.LowerBound <= s.opts.Eps {
		n.Status = StatusIntegral
		return nil
	}

	// Branch: split one undecided item, bound both children eagerly,
	// exclude side first.
	item, err := s.opts.Branching.Pick(s.inst, n)
	if err != nil {
		return fmt.Errorf("%w: node %d: %w", ErrBranchingContract, n.ID, err)
	}
	if item < 0 || item >= n.Decisions.Len() || n.Decisions.Decided(item) {
		return fmt.Errorf("%w: node %d: item %d is not undecided", ErrBranchingContract, n.ID, item)
	}

	exclude, include, err := n.Decisions.Split(item)
	if err != nil {
		return fmt.Errorf("%w: node %d: %w", ErrBranchingContract, n.ID, err)
	}
	left, err := s.createNode(n.ID, n.Depth+1, exclude, n.UsedWeight, n.AccruedValue)
	if err != nil {
		return err
	}
	right, err := s.createNode(n.ID, n.Depth+1, include, n.UsedWeight+s.weights[item], n.AccruedValue+s.values[item])
	if err != nil {
		return err
	}
	n.Children = []int{left.ID, right.ID}
	n.Status = StatusBranched
	return nil
}

// sweep prunes the whole frontier once no open bound can beat the
// incumbent. Swept nodes consume no iteration; they are announced through
// NodePruned.
func (s *Search) sweep() {
	if s.pool.Len() == 0 || s.front.Len() == 0 {
		return
	}
	if s.front.maxUpperBound() > s.pool.BestValue()+s.opts.Eps {
		return
	}

	var n *Node
	for _, n = range s.front.drain() {
		n.Status = StatusPruned
		s.opts.Observer.NodePruned(n)
	}
}

// emitIteration publishes the per-iteration summary.
func (s *Search) emitIteration(n *Node) {
	s.opts.Observer.IterationEnded(IterationSummary{
		Iteration:    s.iter,
		NodeID:       n.ID,
		Depth:        n.Depth,
		Status:       n.Status,
		NodeBound:    n.UpperBound(),
		Incumbent:    s.pool.BestValue(),
		GlobalBound:  s.GlobalBound(),
		FrontierLen:  s.front.Len(),
		NodesCreated: s.tree.Len(),
		PoolLen:      s.pool.Len(),
	}, n)
}

// finish marks the search done and announces the result exactly once.
func (s *Search) finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.done = true
	s.opts.Observer.SearchFinished(s.Result())
}

// validateRelaxed enforces the relaxation output contract: shape, range,
// fixed-entry consistency, and a bound no tighter than its own witness.
func validateRelaxed(inst *knapsack.Instance, dec Decisions, rs RelaxedSolution, eps float64) error {
	if rs.Infeasible() {
		return nil
	}
	if math.IsNaN(rs.Value) {
		return fmt.Errorf("%w: NaN bound", ErrRelaxationContract)
	}
	if len(rs.Selection) != len(dec) {
		return fmt.Errorf("%w: selection covers %d of %d items", ErrRelaxationContract, len(rs.Selection), len(dec))
	}

	var (
		i int
		f float64
	)
	for i, f = range rs.Selection {
		if math.IsNaN(f) || f < -eps || f > 1+eps {
			return fmt.Errorf("%w: selection[%d]=%v outside [0,1]", ErrRelaxationContract, i, f)
		}
		switch dec[i] {
		case Excluded:
			if f > eps {
				return fmt.Errorf("%w: selection[%d]=%v but item is excluded", ErrRelaxationContract, i, f)
			}
		case Included:
			if f < 1-eps {
				return fmt.Errorf("%w: selection[%d]=%v but item is included", ErrRelaxationContract, i, f)
			}
		}
	}
	if sv := rs.SelectionValue(inst); rs.Value < sv-eps {
		return fmt.Errorf("%w: bound %g below its own selection value %g", ErrRelaxationContract, rs.Value, sv)
	}
	return nil
}

// validateHeuristic enforces the heuristic output contract: completeness,
// fixed decisions respected, aggregates honest, capacity respected.
func (s *Search) validateHeuristic(n *Node, sol Solution) error {
	if len(sol.Assignment) != s.inst.NumItems() {
		return fmt.Errorf("%w: assignment covers %d of %d items", ErrHeuristicContract, len(sol.Assignment), s.inst.NumItems())
	}
	if !sol.Assignment.Complete() {
		return fmt.Errorf("%w: assignment %s is incomplete", ErrHeuristicContract, sol.Assignment)
	}

	var i int
	for i = range n.Decisions {
		if n.Decisions[i] != Undecided && sol.Assignment[i] != n.Decisions[i] {
			return fmt.Errorf("%w: node %d fixed item %d as %s, heuristic says %s",
				ErrHeuristicContract, n.ID, i, n.Decisions[i], sol.Assignment[i])
		}
	}

	exact := newSolution(s.inst, sol.Assignment)
	if math.Abs(exact.Value-sol.Value) > s.opts.Eps || math.Abs(exact.Weight-sol.Weight) > s.opts.Eps {
		return fmt.Errorf("%w: reported value=%g weight=%g, assignment yields value=%g weight=%g",
			ErrHeuristicContract, sol.Value, sol.Weight, exact.Value, exact.Weight)
	}
	if exact.Weight > s.inst.Capacity+s.opts.Eps {
		return fmt.Errorf("%w: weight %g exceeds capacity %g", ErrHeuristicContract, exact.Weight, s.inst.Capacity)
	}
	return nil
}
