// Package trace turns the bnb event stream into durable artifacts: a
// replayable JSON record of the whole search tree, structured progress
// logs, and Prometheus metrics. Everything here is a bnb.Observer; attach
// any of them with bnb.WithObserver, or several at once through
// bnb.MultiObserver.
//
// Overview:
//
//   - TreeRecorder copies every node, iteration, improvement and the final
//     result into a TreeRecord tagged with a fresh run ID. The record is
//     plain data: marshal it, archive it, diff it between runs.
//   - TreeRecord.ReplayAt(k) rewinds a record to the state right after
//     iteration k, so a visualizer can scrub through the search without
//     re-running it.
//   - LogObserver narrates the run through log/slog: milestones at Info,
//     per-node events at Debug, iteration lines sampled at a configurable
//     stride.
//   - MetricsObserver exports counters, gauges and a depth histogram under
//     the knapbnb_ prefix to any prometheus.Registerer.
//
// Records hold no ±Inf: bounds that are -Inf in the engine (infeasible
// markers, the empty incumbent) become nil pointers, since encoding/json
// rejects non-finite floats.
//
// Determinism:
//
//   - Two runs with the same instance and options produce identical records
//     except for the run ID. That makes records diffable regression
//     artifacts for solver changes.
//
// See also:
//
//   - bnb: the engine and the Observer contract this package consumes.
//
// Thanks for choosing knapbnb! We aim to provide rock-solid optimization
// primitives that blend mathematical rigor, performance, and clarity.
package trace
