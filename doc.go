// Package knapbnb is an exact 0/1 knapsack laboratory: a branch-and-bound
// engine with swappable strategies, built to make the search itself
// observable, replayable and comparable, bound by bound, branch by branch.
//
// 🚀 What is knapbnb?
//
//	A deterministic, single-threaded solver toolkit that brings together:
//		• Problem modeling: validated instances, YAML/JSON codecs, seeded generators
//		• Four pluggable policies: relaxation (bound), branching, search order, heuristic
//		• A fixed search core: frontier, incumbent pool, arena tree, pruning protocol
//		• Full observability: event stream, slog progress logs, Prometheus metrics
//		• Replayable tree records: scrub any finished run iteration by iteration
//
// ✨ Why choose knapbnb?
//
//   - Reproducible – same instance, same policies, same tree, byte for byte
//   - Honest experiments – swap one policy at a time and compare iteration counts
//   - Anytime answers – cap the iterations and keep the best incumbent found
//   - Proof on exit – an exhausted frontier certifies the optimum
//
// Under the hood, everything is organized under three subpackages:
//
//	knapsack/ — Instance, Item, validation, brute-force oracle, codecs, generators
//	bnb/      — the engine: Search, Node, Tree, policies, options, observers
//	trace/    — TreeRecorder + ReplayAt, LogObserver (slog), MetricsObserver (Prometheus)
//
// Quick example:
//
//	inst, _ := knapsack.New([]knapsack.Item{
//		{Weight: 2, Value: 3}, {Weight: 3, Value: 4},
//		{Weight: 4, Value: 5}, {Weight: 5, Value: 6},
//	}, 5)
//	res, _ := bnb.Solve(inst)   // LP bound, greedy incumbent, depth-first
//	fmt.Println(res.Best.Value) // 7, proven optimal
//
// Swapping strategies is one option away:
//
//	bnb.Solve(inst,
//		bnb.WithRelaxation(bnb.NaiveRelaxation{}), // watch the tree grow
//		bnb.WithOrder(bnb.BestFirst()),            // close the bound faster
//		bnb.WithObserver(trace.NewTreeRecorder()), // record every iteration
//	)
//
// Dive into each package's doc.go for the full contracts, the pruning
// protocol, and worked walkthroughs of the search tree.
//
//	go get github.com/katalvlaran/knapbnb
package knapbnb
