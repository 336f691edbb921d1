// Package quantum implements the bra-ket algebra of finite-dimensional
// quantum mechanics on top of cmatrix.
//
// What & Why:
//
//	Three immutable value types model the objects of the algebra:
//	  - Ket      a column vector |ψ⟩ (n×1)
//	  - Bra      a row vector ⟨φ| (1×n), the dual of a Ket
//	  - Operator a matrix acting on Kets from the left and Bras from the right
//
//	Scalar multiplication (Mul) and composition (Apply) are deliberately
//	separate operations. Both are resolved by tables keyed on the operand
//	Kind, so every legal combination is listed in one place and every other
//	combination fails loudly:
//
//	  Apply(Ket, Bra)           → Operator   outer product |k⟩⟨b|
//	  Apply(Bra, Ket)           → complex128 Σ b_i·k_i (bilinear, no conjugation)
//	  Apply(Operator, Ket)      → Ket        A·k
//	  Apply(Operator, Bra)      → Bra        b·A
//	  Apply(Operator, Operator) → Operator   A·B
//
// Duality:
//
//	Dagger conjugates and flips orientation (Ket ↔ Bra, A → A†).
//	ConjugateTranspose on vectors only flips orientation and does NOT
//	conjugate; the two are distinct contracts.
//
// Equality:
//
//	Ket/Bra Equal and Commute compare within tolerance (WithTolerance).
//	Operator.Equal is exact; Operator.EqualApprox compares with tolerance.
//	IsUnitary uses tolerance unless WithExactEquality is given.
//
// Errors:
//
//	ErrTypeMismatch, ErrUnsupportedOperation, ErrEmpty, and the re-exported
//	ErrDimensionMismatch / ErrDivisionByZero / ErrOutOfRange. Match with errors.Is.
//
// Concurrency:
//
//	Values never change after construction; concurrent use is safe.
//
// Example:
//
//	k := quantum.MustKet(1, 0)
//	x := quantum.PauliX()
//	flipped, _ := x.ApplyKet(k) // |1⟩
//	fmt.Println(flipped)
package quantum
