// SPDX-License-Identifier: MIT

// Package knapsack models the 0/1 knapsack problem: items with non-negative
// weights and values, a capacity, and the question of which subset maximizes
// total value without exceeding the capacity.
//
// Overview:
//
//   - Instance is the problem: a slice of Item plus a Capacity. It is plain
//     data with json/yaml tags, validated once, then treated as read-only.
//   - DensityOrder exposes the value-per-weight greedy order that fractional
//     bounds and primal heuristics walk; zero-weight items lead it.
//   - BruteForce is the exhaustive reference solver (ground truth for tests
//     and honest answers for small instances).
//   - Random produces reproducible instances from a seed for property tests
//     and benchmarks.
//   - DecodeYAML / DecodeJSON and their encoders move instances to and from
//     disk; decoders validate, so a decoded instance is always solvable.
//
// When to use:
//
//   - As the input vocabulary for the bnb package, which searches instances
//     exactly by branch-and-bound.
//   - Standalone, when 2^n is small enough that BruteForce is the simplest
//     correct tool.
//
// Degenerate inputs:
//
//   - An empty instance and a zero capacity are both valid; the optimal
//     packing is then empty (value 0), not an error.
//   - Zero-weight items are valid and infinitely dense: they fit any
//     capacity, including zero.
//
// Error handling (sentinel errors):
//
//   - ErrNilInstance:      nil *Instance where a concrete one is required.
//   - ErrNegativeWeight:   an item weight < 0.
//   - ErrNegativeValue:    an item value < 0.
//   - ErrNegativeCapacity: capacity < 0.
//   - ErrNonFinite:        NaN or ±Inf in any numeric field.
//   - ErrTooManyItems:     BruteForce refused (> MaxBruteForceItems items).
//   - ErrBadGenerator:     Random called with an unsatisfiable shape.
//   - ErrDecode:           YAML/JSON payload did not parse.
//
// Determinism:
//
//   - DensityOrder is stable (ties keep index order), BruteForce enumerates
//     in a fixed order, and Random is seed-driven. Nothing in this package
//     consults wall clocks or global randomness.
//
// See also:
//
//   - bnb: the branch-and-bound engine consuming these instances.
//   - trace: structured records of a search over an instance.
//
// Thanks for choosing knapbnb! We aim to provide rock-solid optimization
// primitives that blend mathematical rigor, performance, and clarity.
package knapsack
