// Package cmatrix is the dense complex matrix primitive behind qalgebra.
//
// What & Why:
//
//	Dense wraps a gonum *mat.CDense behind an immutable surface: every kernel
//	(Add, Sub, Scale, Div, Pow, Mul, Transpose, Conj, ConjTranspose, Outer,
//	Dotu) allocates a fresh result and never mutates its operands, so values
//	can be shared freely between goroutines. Accessors (Data, Flat) return
//	copies.
//
// Errors:
//
//	Kernels return package sentinels (ErrDimensionMismatch, ErrDivisionByZero,
//	ErrBadShape, ErrRaggedRows, ErrNaNInf, ...) wrapped with an operation tag;
//	match them with errors.Is. Nothing panics on user input.
//
// Comparison:
//
//	Equal is exact (gonum mat.CEqual). AllClose follows the familiar
//	|a−b| ≤ atol + rtol·|b| rule with DefaultRelTol/DefaultAbsTol, overridable
//	via WithTolerance.
//
// Complexity:
//
//	Element-wise kernels are O(r*c); Mul is O(r*k*c) via cblas128.Gemm.
package cmatrix
