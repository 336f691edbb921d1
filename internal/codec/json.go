// SPDX-License-Identifier: MIT

// Package codec converts between textual/binary operand encodings and the
// nested [][]complex128 rows accepted by the quantum constructors.
//
// JSON input is either a flat array of scalars (one row) or an array of rows.
// A scalar is a JSON number, a string such as "1+2i", "-0.5i" or "1-1j", or a
// two-element [re, im] array inside a row:
//
//	[1, 0]                    one row
//	[[1], [0]]                one column
//	[[0, "-1i"], [[0, 1], 0]] 2×2 with complex entries
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseJSON decodes nested numeric JSON into rows. Rows are not checked for
// equal length; the matrix constructors reject ragged input.
//
// Errors:
//   - ErrSyntax, ErrScalar, ErrEmpty.
func ParseJSON(data []byte) ([][]complex128, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("ParseJSON: %v: %w", err, ErrSyntax)
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("ParseJSON: %w", ErrEmpty)
	}

	if !isArray(top[0]) {
		row, err := parseRow(top)
		if err != nil {
			return nil, fmt.Errorf("ParseJSON: %w", err)
		}
		return [][]complex128{row}, nil
	}

	rows := make([][]complex128, len(top))
	for i, raw := range top {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("ParseJSON: row %d: %v: %w", i, err, ErrSyntax)
		}
		row, err := parseRow(elems)
		if err != nil {
			return nil, fmt.Errorf("ParseJSON: row %d: %w", i, err)
		}
		rows[i] = row
	}

	return rows, nil
}

// FormatJSON encodes rows as JSON with every element rendered as a complex
// string, e.g. [["(1+0i)","(0-1i)"]]. The output parses back with ParseJSON.
func FormatJSON(rows [][]complex128) ([]byte, error) {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = FormatScalar(v)
		}
	}

	return json.Marshal(out)
}

// ParseScalar parses a textual complex number: "2", "-0.5", "1+2i", "(1-1j)".
func ParseScalar(s string) (complex128, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, "j", "i")
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("ParseScalar(%q): %w", s, ErrScalar)
	}

	return c, nil
}

// FormatScalar renders v in the shortest form ParseScalar accepts.
func FormatScalar(v complex128) string {
	return strconv.FormatComplex(v, 'g', -1, 128)
}

func parseRow(elems []json.RawMessage) ([]complex128, error) {
	if len(elems) == 0 {
		return nil, ErrEmpty
	}
	row := make([]complex128, len(elems))
	for j, raw := range elems {
		v, err := parseElement(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", j, err)
		}
		row[j] = v
	}

	return row, nil
}

func parseElement(raw json.RawMessage) (complex128, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, fmt.Errorf("null: %w", ErrScalar)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return complex(f, 0), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseScalar(s)
	}
	var pair []float64
	if err := json.Unmarshal(raw, &pair); err == nil && len(pair) == 2 {
		return complex(pair[0], pair[1]), nil
	}

	return 0, fmt.Errorf("%s: %w", raw, ErrScalar)
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
