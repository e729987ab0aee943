// SPDX-License-Identifier: MIT

// Package knapsack: deterministic random instance generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical instance across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Integrality: generated weights and values are whole numbers, so exact
//     float comparisons in tests stay exact.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, but every call builds its own
//     generator from the seed, so Random itself is safe to call concurrently.
package knapsack

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultGenSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultGenSeed int64 = 1

// Generator defaults; see the GenOption setters.
const (
	// DefaultMaxWeight bounds generated item weights: 1..DefaultMaxWeight.
	DefaultMaxWeight = 20

	// DefaultMaxValue bounds generated item values: 1..DefaultMaxValue.
	DefaultMaxValue = 30

	// DefaultCapacityRatio sets capacity = floor(ratio · total weight).
	DefaultCapacityRatio = 0.5
)

// GenOption tunes Random. Setters only record values; Random validates the
// final configuration and reports ErrBadGenerator on nonsense.
type GenOption func(*genConfig)

type genConfig struct {
	maxWeight     int
	maxValue      int
	capacityRatio float64
}

// WithMaxWeight bounds item weights to 1..w.
func WithMaxWeight(w int) GenOption {
	return func(c *genConfig) { c.maxWeight = w }
}

// WithMaxValue bounds item values to 1..v.
func WithMaxValue(v int) GenOption {
	return func(c *genConfig) { c.maxValue = v }
}

// WithCapacityRatio sets capacity to floor(r · total weight). r==0 produces
// the zero-capacity degenerate instance; r≥1 makes every packing feasible.
func WithCapacityRatio(r float64) GenOption {
	return func(c *genConfig) { c.capacityRatio = r }
}

// Random generates a reproducible instance with n items.
//
// Policy: seed==0 ⇒ defaultGenSeed; otherwise the seed is used verbatim.
// Weights are uniform on 1..maxWeight, values uniform on 1..maxValue, and
// capacity is floor(capacityRatio · total weight). The instance ID encodes
// the shape and seed so traces stay attributable.
//
// Complexity: O(n) time and space.
func Random(n int, seed int64, opts ...GenOption) (*Instance, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadGenerator, n)
	}

	cfg := genConfig{
		maxWeight:     DefaultMaxWeight,
		maxValue:      DefaultMaxValue,
		capacityRatio: DefaultCapacityRatio,
	}

	var opt GenOption
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.maxWeight < 1 {
		return nil, fmt.Errorf("%w: maxWeight=%d", ErrBadGenerator, cfg.maxWeight)
	}
	if cfg.maxValue < 1 {
		return nil, fmt.Errorf("%w: maxValue=%d", ErrBadGenerator, cfg.maxValue)
	}
	if math.IsNaN(cfg.capacityRatio) || math.IsInf(cfg.capacityRatio, 0) || cfg.capacityRatio < 0 {
		return nil, fmt.Errorf("%w: capacityRatio=%v", ErrBadGenerator, cfg.capacityRatio)
	}

	var s int64
	s = seed
	if s == 0 {
		s = defaultGenSeed
	}
	rng := rand.New(rand.NewSource(s))

	var (
		items       []Item
		i           int
		totalWeight float64
	)
	items = make([]Item, n)
	for i = 0; i < n; i++ {
		items[i] = Item{
			Weight: float64(1 + rng.Intn(cfg.maxWeight)),
			Value:  float64(1 + rng.Intn(cfg.maxValue)),
		}
		totalWeight += items[i].Weight
	}

	in, err := New(items, math.Floor(cfg.capacityRatio*totalWeight))
	if err != nil {
		return nil, err
	}
	in.ID = fmt.Sprintf("random-n%d-s%d", n, seed)
	return in, nil
}
