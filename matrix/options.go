// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and solving.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"math"
	"math/rand/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	// Off by default: NaN and ±Inf propagate through arithmetic untouched.
	DefaultValidateNaNInf = false

	// DefaultPivotTolerance is the magnitude at or below which Solve treats a
	// pivot as zero. Zero means only an exact 0.0 pivot is singular.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"
	panicRandSourceNil         = "matrix: WithRandSource: source must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool       // DefaultValidateNaNInf
	pivotTol       float64    // DefaultPivotTolerance, >= 0
	rng            *rand.Rand // nil ⇒ process-global math/rand/v2 source
}

// WithValidateNaNInf enables strict finite-value validation on newly created
// matrices: Set and Apply reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPivotTolerance sets the magnitude at or below which Solve reports
// ErrSingular.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes eps into Options.
//
// Notes:
//   - The default (0) keeps the exact-zero pivot test: nearly singular systems
//     are solved and may return huge or non-finite components.
//
// AI-Hints:
//   - Scale-aware thresholds work best: pick eps relative to the largest |A[i,j]|.
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// WithRandSource makes Random draw from r instead of the process-global
// generator. Pass a seeded source for reproducible matrices.
func WithRandSource(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandSourceNil)
	}

	return func(o *Options) { o.rng = r }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		pivotTol:       DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// draw returns one value in [0,1) from the configured source.
func (o Options) draw() float64 {
	if o.rng != nil {
		return o.rng.Float64()
	}

	return rand.Float64()
}
