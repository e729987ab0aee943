// Package bnb implements exact 0/1 knapsack solving by branch-and-bound
// with four independently pluggable policies: the upper-bound relaxation,
// the branching-variable choice, the frontier search order, and the primal
// heuristic. The loop, the tree bookkeeping, the pruning protocol and the
// event stream are fixed; the policies decide how fast the proof goes.
//
// Overview:
//
//   - NewSearch builds a Search from a knapsack.Instance and options; Step
//     advances one iteration at a time, Run drives to the end, and Solve is
//     the one-call wrapper.
//   - Each node fixes a subset of items in or out (Decisions) and carries a
//     bound certificate (RelaxedSolution) evaluated eagerly at creation.
//   - The frontier is one heap for every strategy; DepthFirst, BestFirst or
//     any OrderFunc comparator ranks it, and ties always fall back to FIFO
//     on creation order, so runs are reproducible to the byte.
//   - Every feasible packing met along the way lands in the SolutionPool;
//     the incumbent is its best entry and only ever improves.
//   - Observers receive the full life of the search: node creations,
//     per-iteration summaries, incumbent improvements, sweep prunes, and
//     the final result. The trace package builds on exactly this stream.
//
// The node protocol, per iteration:
//
//  1. Pop the highest-priority open node; stamp ProcessedAt.
//  2. Infeasible (fixed weight over capacity, or the bound's -Inf marker)
//     ⇒ StatusInfeasible.
//  3. Bound ≤ incumbent ⇒ StatusPruned; equality prunes, because a subtree
//     that cannot strictly improve the value proves nothing new.
//  4. Bound witness integral and feasible ⇒ pool it, StatusIntegral.
//  5. Heuristic completion ⇒ pool it, raise the node's lower bound.
//  6. Lower bound meets the upper bound ⇒ StatusIntegral.
//  7. Otherwise branch: two children (exclude first, include second), both
//     bounded eagerly, parent StatusBranched.
//
// After each iteration, the global prune sweep: once no open bound exceeds
// the incumbent, the remaining frontier is drained as StatusPruned and the
// search ends with the optimum proven.
//
// Choosing policies:
//
//   - FractionalRelaxation dominates NaiveRelaxation dominates
//     VeryNaiveRelaxation, pointwise on every node; tighter bounds mean
//     smaller trees, never more iterations on the same instance and order.
//   - FractionalBranching pivots on the bound's split item, invalidating
//     the parent's bound in both children; FirstUndecidedBranching is the
//     predictable baseline.
//   - DepthFirst reaches feasible leaves fastest with O(depth) frontier;
//     BestFirst closes the global bound fastest but holds a wide frontier.
//   - GreedyHeuristic lands an incumbent on iteration one, which is what
//     makes early pruning bite; NoHeuristic gives the pure tree.
//
// Performance and complexity:
//
//   - Worst case the tree is exponential in items; that is the problem, not
//     the implementation. Per iteration: one O(n) policy call per created
//     node, O(log f) heap ops for frontier size f, and an O(f) bound scan
//     for the sweep.
//   - Memory is linear in nodes created; each node holds its decision
//     vector and bound witness, O(n) each.
//
// Error handling (sentinel errors):
//
//   - ErrNilInstance, ErrBadInstance: rejected before the search starts.
//   - ErrOptionViolation: nil policy, bad eps, negative limit.
//   - ErrRelaxationContract, ErrBranchingContract, ErrHeuristicContract,
//     ErrPoolContract: a plugged-in policy broke its contract; the Search
//     is poisoned and returns the same error from then on.
//   - ErrIterationLimit: the configured budget ran out; the Result carries
//     the best incumbent found (anytime behavior), Proven stays false.
//
// Determinism:
//
//   - Same instance, same options ⇒ identical node IDs, statuses, stamps,
//     iteration counts and event streams. No goroutines, no clocks, no
//     randomness anywhere in the loop.
//
// See also:
//
//   - knapsack: the instance model, ground-truth solver and generator.
//   - trace: recorders turning the event stream into replayable records,
//     logs and metrics.
//
// Thanks for choosing knapbnb! We aim to provide rock-solid optimization
// primitives that blend mathematical rigor, performance, and clarity.
package bnb
