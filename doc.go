// SPDX-License-Identifier: MIT

// Package qalgebra is a small, dependency-light toolkit for bra-ket algebra:
// kets, bras and operators over complex amplitudes, combined through explicit
// dispatch tables rather than ad-hoc type switches.
//
// What is qalgebra?
//
//	A library (plus a CLI) that brings together:
//		• Values: Ket |ψ⟩ (n×1), Bra ⟨φ| (1×n), Operator A (n×m)
//		• Composition: |k⟩⟨b|, ⟨b|k⟩, A|k⟩, ⟨b|A, A·B
//		• Scalars: Mul, Div and element-wise Pow on vectors
//		• Adjoints: Dagger for every category
//		• Brackets: Commute, Commutator [A,B] and AntiCommutator {A,B}
//		• Checks: IsHermitian, IsUnitary, Trace, ExpectationValue
//
// Everything is organized under these packages:
//
//	cmatrix/         - immutable complex dense matrices on top of gonum
//	quantum/         - Ket, Bra, Operator and the algebra tables
//	internal/codec/  - JSON literals and the msgpack record format
//	internal/config/ - environment and .env configuration
//	internal/logger/ - zerolog setup for the CLI
//	cmd/qalgebra/    - command-line front end
//
// Quick example:
//
//	X := quantum.PauliX()
//	Z := quantum.PauliZ()
//	quantum.Commute(X, Z) // false: XZ = −ZX
//
//	go get github.com/katalvlaran/qalgebra/quantum
package qalgebra
