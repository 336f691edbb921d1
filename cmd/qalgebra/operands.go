package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/qalgebra/internal/codec"
	"github.com/katalvlaran/qalgebra/quantum"
)

// errOperand reports a command-line operand that cannot be interpreted.
var errOperand = errors.New("invalid operand")

const msgpackExt = ".msgpack"

// parseOperand turns one argument into a quantum value or a scalar.
// "ket=…", "bra=…" and "op=…" build values; anything else is a number.
func (a *app) parseOperand(arg string) (any, error) {
	kind, value, ok := strings.Cut(arg, "=")
	if !ok {
		return parseNumber(arg)
	}
	rows, err := loadRows(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	var v quantum.Value
	switch strings.ToLower(kind) {
	case "ket":
		v, err = quantum.KetFromRows(rows, a.opts...)
	case "bra":
		v, err = quantum.BraFromRows(rows, a.opts...)
	case "op", "operator":
		v, err = quantum.NewOperator(rows, a.opts...)
	default:
		return nil, fmt.Errorf("unknown kind %q (want ket, bra or op): %w", kind, errOperand)
	}
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("kind", v.Kind().String()).Int("elements", v.Matrix().Len()).Msg("parsed operand")

	return v, nil
}

// parseValue is parseOperand restricted to Ket, Bra and Operator.
func (a *app) parseValue(arg string) (quantum.Value, error) {
	x, err := a.parseOperand(arg)
	if err != nil {
		return nil, err
	}
	v, ok := x.(quantum.Value)
	if !ok {
		return nil, fmt.Errorf("%q is a scalar, want ket=, bra= or op=: %w", arg, errOperand)
	}

	return v, nil
}

// parseOperator is parseOperand restricted to Operators.
func (a *app) parseOperator(arg string) (quantum.Operator, error) {
	v, err := a.parseValue(arg)
	if err != nil {
		return quantum.Operator{}, err
	}
	op, ok := v.(quantum.Operator)
	if !ok {
		return quantum.Operator{}, fmt.Errorf("got %s, want op=: %w", v.Kind(), errOperand)
	}

	return op, nil
}

// parseNumber returns a float64 for real input so that exponents stay real,
// and a complex128 otherwise.
func parseNumber(s string) (any, error) {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f, nil
	}
	c, err := codec.ParseScalar(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errOperand, err)
	}

	return c, nil
}

// loadRows reads an inline JSON literal or an @file reference.
func loadRows(value string) ([][]complex128, error) {
	path, isFile := strings.CutPrefix(value, "@")
	if !isFile {
		return codec.ParseJSON([]byte(value))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read operand file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), msgpackExt) {
		rec, err := codec.UnmarshalMsgpack(data)
		if err != nil {
			return nil, err
		}
		return rec.Matrix()
	}

	return codec.ParseJSON(data)
}
