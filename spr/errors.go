// Package: symseq/spr
//
// errors.go — sentinel errors for model construction and queries.
//
// Error policy (follows the module-wide convention):
//   • Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX), never by string comparison.
//   • Sentinels carry no parameters; call sites attach context with %w.
//   • "Observed zero times" is NOT an error anywhere: a zero-count row is a
//     valid row. Lookup failures mean a pattern that cannot exist at all
//     (symbol outside the alphabet) and surface ngram.ErrUnknownSymbol.

package spr

import "errors"

// ErrBadMaxLength indicates Options.MaxLength is not a positive integer.
// Classification: configuration error.
var ErrBadMaxLength = errors.New("spr: maxLength must be positive")

// ErrBadThreshold indicates Options.Threshold lies outside [0,1].
// Classification: configuration error.
var ErrBadThreshold = errors.New("spr: sparsity threshold outside [0,1]")

// ErrBadHashParams indicates Options.Hash cannot drive the rolling hash
// (non-positive modulus, or base outside [0, modulus)).
// Classification: configuration error.
var ErrBadHashParams = errors.New("spr: invalid hash parameters")

// ErrDegenerateModel indicates every retained scale had zero support for
// the requested context, leaving nothing to average: the prediction would
// otherwise be a silent division by zero. Surfaced explicitly instead of
// returning NaN or an arbitrary symbol.
var ErrDegenerateModel = errors.New("spr: no retained scale has support for this context")

// ErrNoSuchScale indicates a scale index outside the retained range
// [1, Scales()] was requested from a built model.
var ErrNoSuchScale = errors.New("spr: scale not retained by this model")
