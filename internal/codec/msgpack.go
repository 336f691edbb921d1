// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Record is the binary form of one operand: its kind name ("Ket", "Bra",
// "Operator"), its shape and the row-major real and imaginary parts.
type Record struct {
	Kind string    `msgpack:"kind" json:"kind"`
	Rows int       `msgpack:"rows" json:"rows"`
	Cols int       `msgpack:"cols" json:"cols"`
	Re   []float64 `msgpack:"re" json:"re"`
	Im   []float64 `msgpack:"im" json:"im"`
}

// NewRecord flattens rectangular rows into a Record.
//
// Errors:
//   - ErrEmpty; ErrRecord for ragged rows.
func NewRecord(kind string, rows [][]complex128) (Record, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Record{}, fmt.Errorf("NewRecord: %w", ErrEmpty)
	}
	r, c := len(rows), len(rows[0])
	rec := Record{Kind: kind, Rows: r, Cols: c, Re: make([]float64, 0, r*c), Im: make([]float64, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return Record{}, fmt.Errorf("NewRecord: row %d has %d columns, want %d: %w", i, len(row), c, ErrRecord)
		}
		for _, v := range row {
			rec.Re = append(rec.Re, real(v))
			rec.Im = append(rec.Im, imag(v))
		}
	}

	return rec, nil
}

// Matrix rebuilds the nested rows of rec.
//
// Errors:
//   - ErrRecord when the payload length does not match Rows*Cols.
func (rec Record) Matrix() ([][]complex128, error) {
	n := rec.Rows * rec.Cols
	if rec.Rows <= 0 || rec.Cols <= 0 || len(rec.Re) != n || len(rec.Im) != n {
		return nil, fmt.Errorf("Record.Matrix(%dx%d): %w", rec.Rows, rec.Cols, ErrRecord)
	}
	rows := make([][]complex128, rec.Rows)
	for i := range rows {
		rows[i] = make([]complex128, rec.Cols)
		for j := range rows[i] {
			k := i*rec.Cols + j
			rows[i][j] = complex(rec.Re[k], rec.Im[k])
		}
	}

	return rows, nil
}

// MarshalMsgpack encodes rec with MessagePack.
func MarshalMsgpack(rec Record) ([]byte, error) {
	b, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("MarshalMsgpack: %w", err)
	}

	return b, nil
}

// UnmarshalMsgpack decodes a MessagePack Record and checks its consistency.
//
// Errors:
//   - ErrSyntax for undecodable input; ErrRecord for inconsistent shapes.
func UnmarshalMsgpack(data []byte) (Record, error) {
	var rec Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("UnmarshalMsgpack: %v: %w", err, ErrSyntax)
	}
	if _, err := rec.Matrix(); err != nil {
		return Record{}, fmt.Errorf("UnmarshalMsgpack: %w", err)
	}

	return rec, nil
}
