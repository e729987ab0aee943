// SPDX-License-Identifier: MIT

// Package knapsack: sentinel errors for instance validation, codecs and
// reference tooling.
//
// NOTE ON NAMING & PREFIXING:
//   - Every message is prefixed with "knapsack:" so that errors remain
//     attributable after wrapping (fmt.Errorf("...: %w", err)).
//   - Callers must match with errors.Is; messages are not a stable API.
package knapsack

import "errors"

var (
	// ErrNilInstance is returned when a nil *Instance reaches an API that
	// requires a concrete instance.
	ErrNilInstance = errors.New("knapsack: nil instance")

	// ErrNegativeWeight is returned by Validate when an item has weight < 0.
	ErrNegativeWeight = errors.New("knapsack: negative item weight")

	// ErrNegativeValue is returned by Validate when an item has value < 0.
	ErrNegativeValue = errors.New("knapsack: negative item value")

	// ErrNegativeCapacity is returned by Validate when capacity < 0.
	ErrNegativeCapacity = errors.New("knapsack: negative capacity")

	// ErrNonFinite is returned by Validate when a weight, value or the
	// capacity is NaN or ±Inf. Wrapped with the offending field.
	ErrNonFinite = errors.New("knapsack: non-finite number")

	// ErrTooManyItems guards BruteForce against exponential blowups:
	// instances above MaxBruteForceItems are refused.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive enumeration")

	// ErrBadGenerator is returned by Random when the requested shape is
	// unsatisfiable (negative n, non-positive bounds, bad capacity ratio).
	ErrBadGenerator = errors.New("knapsack: invalid generator parameters")

	// ErrDecode is returned by the YAML/JSON decoders when the payload does
	// not parse. Wrapped with the underlying codec error.
	ErrDecode = errors.New("knapsack: cannot decode instance")
)
