// SPDX-License-Identifier: MIT

// Package quantum: functional configuration for comparisons and ingestion.
//
// Notes:
//   - Ket/Bra equality and Commute/IsHermitian always compare with tolerance.
//   - Operator.Equal is always exact.
//   - IsUnitary compares A·A† with the identity under the Equality policy
//     (EqualityApprox by default).
package quantum

import (
	"math"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// Equality selects how two Operators are compared where a policy applies.
type Equality int

const (
	// EqualityApprox compares element-wise within (rtol, atol).
	EqualityApprox Equality = iota
	// EqualityExact compares element-wise with ==.
	EqualityExact
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance for approximate comparisons.
	DefaultRelTol = cmatrix.DefaultRelTol

	// DefaultAbsTol is the absolute tolerance for approximate comparisons.
	DefaultAbsTol = cmatrix.DefaultAbsTol

	// DefaultUnitaryEquality is the comparison policy used by IsUnitary.
	DefaultUnitaryEquality = EqualityApprox

	// DefaultValidateNaNInf rejects NaN/Inf amplitudes at construction.
	DefaultValidateNaNInf = cmatrix.DefaultValidateNaNInf
)

const (
	panicTolInvalid = "quantum: WithTolerance: rtol and atol must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rtol           float64
	atol           float64
	equality       Equality
	validateNaNInf bool
}

// WithTolerance sets the relative and absolute tolerances used by approximate
// comparisons. Panics when either value is negative, NaN or infinite.
func WithTolerance(rtol, atol float64) Option {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) || rtol < 0 || atol < 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// WithExactEquality makes IsUnitary compare A·A† with the identity exactly.
func WithExactEquality() Option {
	return func(o *Options) { o.equality = EqualityExact }
}

// WithApproxEquality makes IsUnitary compare within tolerance (default).
func WithApproxEquality() Option {
	return func(o *Options) { o.equality = EqualityApprox }
}

// WithNoValidateNaNInf lets constructors accept NaN/Inf amplitudes.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves setters on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// RelTol returns the effective relative tolerance.
func (o Options) RelTol() float64 { return o.rtol }

// AbsTol returns the effective absolute tolerance.
func (o Options) AbsTol() float64 { return o.atol }

// Equality returns the effective Operator comparison policy for IsUnitary.
func (o Options) Equality() Equality { return o.equality }

func gatherOptions(user ...Option) Options {
	o := Options{
		rtol:           DefaultRelTol,
		atol:           DefaultAbsTol,
		equality:       DefaultUnitaryEquality,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// tolerance translates the comparison policy for cmatrix.AllClose.
func (o Options) tolerance() cmatrix.Option {
	return cmatrix.WithTolerance(o.rtol, o.atol)
}

// ingestion translates the NaN/Inf policy for cmatrix constructors.
func (o Options) ingestion() cmatrix.Option {
	if o.validateNaNInf {
		return cmatrix.WithValidateNaNInf()
	}

	return cmatrix.WithNoValidateNaNInf()
}
