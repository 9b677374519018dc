// SPDX-License-Identifier: MIT
// Package: bstviz/preset
//
// generate.go — deterministic insertion-order generators.
//
// Contract:
//   - Same arguments and seed ⇒ identical output.
//   - Invalid sizes return ErrBadSize; generators never panic.

package preset

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

// maxDepth bounds PerfectOrder so 2^depth-1 values stay allocatable.
const maxDepth = 24

// Option configures stochastic generators.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(1))
	}

	return c
}

// Ascending returns 1..n; inserting it yields a right-skewed tree.
func Ascending(n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadSize, "Ascending: n=%d", n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out, nil
}

// Descending returns n..1; inserting it yields a left-skewed tree.
func Descending(n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadSize, "Descending: n=%d", n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}

	return out, nil
}

// PerfectOrder returns the values 1..2^depth-1 in breadth-first order of the
// perfect tree over them: each level's midpoints before the next level's.
// Inserting the result yields a perfect tree of height depth.
func PerfectOrder(depth int) ([]int, error) {
	if depth < 0 || depth > maxDepth {
		return nil, errors.Wrapf(ErrBadSize, "PerfectOrder: depth=%d (want 0..%d)", depth, maxDepth)
	}
	n := (1 << depth) - 1
	out := make([]int, 0, n)
	type span struct{ lo, hi int }
	queue := []span{{1, n}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.lo > s.hi {
			continue
		}
		mid := (s.lo + s.hi) / 2
		out = append(out, mid)
		queue = append(queue, span{s.lo, mid - 1}, span{mid + 1, s.hi})
	}

	return out, nil
}

// Shuffled returns a random permutation of 1..n.
// Without WithSeed or WithRand the source is seeded with 1.
func Shuffled(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadSize, "Shuffled: n=%d", n)
	}
	c := newConfig(opts)
	out := c.rng.Perm(n)
	for i := range out {
		out[i]++
	}

	return out, nil
}
