// SPDX-License-Identifier: MIT

// Package cmatrix - Dense complex storage (row-major) & safe accessors.
//
// Purpose:
//   - Wrap gonum's *mat.CDense behind an immutable surface: no method mutates
//     the receiver, and every accessor returns a copy.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Enforce the ingestion numeric policy (optional rejection of NaN/Inf).
//
// Complexity quicksheet:
//   - NewDense/FromRows/FromFlat: O(r*c); At: O(1); Data/Flat/Clone: O(r*c).

package cmatrix

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxFromRows = "FromRows"
	ctxFromFlat = "FromFlat"
	ctxIdentity = "Identity"
	ctxNew      = "NewDense"
	ctxReshape  = "Reshape"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = " "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable r×c complex matrix.
//   - m holds a contiguous gonum CDense (Stride == Cols, never sliced).
//   - The zero value is not usable; construct with NewDense, FromRows, FromFlat or Identity.
type Dense struct {
	m *mat.CDense
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrBadShape when rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}

	return &Dense{m: mat.NewCDense(rows, cols, nil)}, nil
}

// FromRows builds a Dense from nested row data, copying every element.
//
// Implementation:
//   - Stage 1: validate non-empty and rectangular input.
//   - Stage 2: copy row-major into a fresh buffer, applying the NaN/Inf policy.
//
// Errors:
//   - ErrBadShape (no rows or empty first row), ErrRaggedRows, ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]complex128, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]complex128, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrRaggedRows))
		}
		buf = append(buf, row...)
	}
	if o.validateNaNInf {
		if idx := firstNonFinite(buf); idx >= 0 {
			return nil, denseErrorf(ctxFromRows, idx/c, idx%c, ErrNaNInf)
		}
	}

	return &Dense{m: mat.NewCDense(r, c, buf)}, nil
}

// FromRowsOf is the generic form of FromRows accepting any Number element type.
func FromRowsOf[T Number](rows [][]T, opts ...Option) (*Dense, error) {
	conv := make([][]complex128, len(rows))
	for i, row := range rows {
		conv[i] = toComplexSlice(row)
	}

	return FromRows(conv, opts...)
}

// FromFlat builds an r×c Dense from row-major data, copying it.
//
// Errors:
//   - ErrBadShape when rows<=0, cols<=0 or len(data) != rows*cols; ErrNaNInf.
func FromFlat(rows, cols int, data []complex128, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, matrixErrorf(ctxFromFlat, ErrBadShape)
	}
	if o.validateNaNInf {
		if idx := firstNonFinite(data); idx >= 0 {
			return nil, denseErrorf(ctxFromFlat, idx/cols, idx%cols, ErrNaNInf)
		}
	}
	buf := make([]complex128, len(data))
	copy(buf, data)

	return &Dense{m: mat.NewCDense(rows, cols, buf)}, nil
}

// Identity returns the n×n identity matrix.
//
// Errors:
//   - ErrBadShape when n<=0.
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(ctxIdentity, ErrBadShape)
	}
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return &Dense{m: m}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int {
	r, _ := d.m.Dims()
	return r
}

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int {
	_, c := d.m.Dims()
	return c
}

// Dims returns (rows, cols).
func (d *Dense) Dims() (int, int) { return d.m.Dims() }

// Len returns rows*cols.
func (d *Dense) Len() int {
	r, c := d.m.Dims()
	return r * c
}

// At retrieves the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when either index is outside bounds.
func (d *Dense) At(row, col int) (complex128, error) {
	r, c := d.m.Dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return d.m.At(row, col), nil
}

// Data returns a deep copy of the matrix as nested rows.
// Complexity: O(r*c).
func (d *Dense) Data() [][]complex128 {
	r, c := d.m.Dims()
	src := d.raw()
	out := make([][]complex128, r)
	for i := 0; i < r; i++ {
		row := make([]complex128, c)
		copy(row, src[i*c:(i+1)*c])
		out[i] = row
	}

	return out
}

// Flat returns a copy of the row-major backing data.
func (d *Dense) Flat() []complex128 {
	out := make([]complex128, d.Len())
	copy(out, d.raw())

	return out
}

// Clone returns a deep copy. Since Dense is immutable this is rarely needed,
// but it lets callers detach from any shared history explicitly.
func (d *Dense) Clone() *Dense {
	r, c := d.m.Dims()

	return &Dense{m: mat.NewCDense(r, c, d.Flat())}
}

// Reshape returns a copy with the same row-major data laid out as rows×cols.
// Reshape(1, -1) and Reshape(-1, 1) infer the free dimension, like the
// canonical row/column orientations of vectors.
//
// Errors:
//   - ErrBadShape when the element count does not match.
func (d *Dense) Reshape(rows, cols int) (*Dense, error) {
	n := d.Len()
	switch {
	case rows == -1 && cols > 0 && n%cols == 0:
		rows = n / cols
	case cols == -1 && rows > 0 && n%rows == 0:
		cols = n / rows
	}
	if rows <= 0 || cols <= 0 || rows*cols != n {
		return nil, matrixErrorf(ctxReshape, ErrBadShape)
	}

	return &Dense{m: mat.NewCDense(rows, cols, d.Flat())}, nil
}

// IsSquare reports whether Rows == Cols.
func (d *Dense) IsSquare() bool {
	r, c := d.m.Dims()
	return r == c
}

// String renders the matrix row by row, e.g.
//
//	[[(1+0i) (0+0i)]
//	 [(0+0i) (1+0i)]]
//
// Complexity: O(r*c).
func (d *Dense) String() string {
	if d == nil || d.m == nil {
		return "<nil>"
	}
	r, c := d.m.Dims()
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i := 0; i < r; i++ {
		if i > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatComplex(d.m.At(i, j), 'g', -1, 128))
		}
		sb.WriteString(_fmtRowClose)
	}
	sb.WriteString(_fmtRowClose)

	return sb.String()
}

// raw exposes the backing slice for read-only use inside the package.
// Callers MUST NOT write through it.
func (d *Dense) raw() []complex128 { return d.m.RawCMatrix().Data }

// newFromBuf adopts buf (no copy) as the backing store of an r×c result.
// Only kernels that just allocated buf may call it.
func newFromBuf(r, c int, buf []complex128) *Dense {
	return &Dense{m: mat.NewCDense(r, c, buf)}
}

// firstNonFinite returns the index of the first NaN/Inf component or -1.
func firstNonFinite(s []complex128) int {
	for i, v := range s {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return i
		}
	}

	return -1
}

// FromFlatOf is the generic form of FromFlat accepting any Number element type.
func FromFlatOf[T Number](rows, cols int, data []T, opts ...Option) (*Dense, error) {
	return FromFlat(rows, cols, toComplexSlice(data), opts...)
}
