package spr

import (
	"fmt"

	"github.com/katalvlaran/symseq/search"
)

// Deterministic defaults, matching the published SPR article demo.
const (
	// DefaultMaxLength caps the pattern lengths the build will consider.
	DefaultMaxLength = 10

	// DefaultThreshold is the minimum observed/possible ratio a scale must
	// reach for its PTP matrix to be worth keeping.
	DefaultThreshold = 0.1

	// DefaultModulus and DefaultBase drive the rolling hash.
	DefaultModulus int64 = 4241
	DefaultBase    int64 = 42
)

// Options configures a model build. The struct is consumed by value at
// Build time; a built Model never reads it again, so reusing or mutating
// an Options value between builds is safe.
//
// Fields:
//   - MaxLength — positive cap on the pattern lengths (scales) considered.
//   - Threshold — minimum acceptable observed/possible sparsity ratio in
//     [0,1]; the build stops at the first scale falling below it.
//   - Hash      — rolling-hash parameters; weak values cost time, not
//     correctness.
//   - Seed      — seed for Simulate's random draws; 0 selects a fixed
//     default so simulations stay reproducible out of the box.
type Options struct {
	MaxLength int
	Threshold float64
	Hash      search.Params
	Seed      int64
}

// DefaultOptions returns the article-demo configuration:
// MaxLength 10, Threshold 0.1, hash (modulus 4241, base 42).
func DefaultOptions() Options {
	return Options{
		MaxLength: DefaultMaxLength,
		Threshold: DefaultThreshold,
		Hash:      search.Params{Modulus: DefaultModulus, Base: DefaultBase},
	}
}

// validate reports the first configuration problem, wrapping the matching
// sentinel with the offending value.
func (o Options) validate() error {
	if o.MaxLength <= 0 {
		return fmt.Errorf("Build: maxLength=%d: %w", o.MaxLength, ErrBadMaxLength)
	}
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("Build: threshold=%v: %w", o.Threshold, ErrBadThreshold)
	}
	if !o.Hash.Valid() {
		return fmt.Errorf("Build: modulus=%d base=%d: %w", o.Hash.Modulus, o.Hash.Base, ErrBadHashParams)
	}

	return nil
}
