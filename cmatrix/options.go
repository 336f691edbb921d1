// SPDX-License-Identifier: MIT

// Package cmatrix: functional configuration for ingestion and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package cmatrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance used by AllClose-style comparisons.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the absolute tolerance used by AllClose-style comparisons.
	DefaultAbsTol = 1e-8

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTolInvalid = "cmatrix: WithTolerance: rtol and atol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	rtol           float64 // >= 0; DefaultRelTol
	atol           float64 // >= 0; DefaultAbsTol
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithTolerance sets the relative and absolute tolerances used by AllClose.
// Implementation:
//   - Stage 1: validate both values are finite and ≥ 0.
//   - Stage 2: return a setter writing them into Options.
//
// Errors:
//   - Panics with a stable message when either tolerance is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithTolerance(rtol, atol float64) Option {
	if !validTol(rtol) || !validTol(atol) {
		panic(panicTolInvalid)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// WithValidateNaNInf enables rejection of NaN/Inf components on ingestion (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value guard on ingestion.
// Use only for controlled experiments where NaN/Inf placeholders are expected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves a sequence of Option setters on top of the defaults.
// Callers in sibling packages use it to forward their own policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// RelTol returns the effective relative tolerance.
func (o Options) RelTol() float64 { return o.rtol }

// AbsTol returns the effective absolute tolerance.
func (o Options) AbsTol() float64 { return o.atol }

// ValidateNaNInf reports whether ingestion rejects NaN/Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		rtol:           DefaultRelTol,
		atol:           DefaultAbsTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func validTol(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
