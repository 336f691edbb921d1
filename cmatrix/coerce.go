// SPDX-License-Identifier: MIT

package cmatrix

import "reflect"

// Number is the set of Go numeric types accepted as matrix components.
// Integers and reals are promoted to complex128 with a zero imaginary part.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Coerce converts any Go numeric value to complex128.
// The boolean is false when v is not an integer, real or complex kind
// (including nil and non-numeric named types).
//
// Implementation:
//   - Stage 1: type switch on the common concrete types (no reflection).
//   - Stage 2: reflect.Kind fallback for named numeric types.
//
// Complexity: O(1).
func Coerce(v any) (complex128, bool) {
	switch x := v.(type) {
	case complex128:
		return x, true
	case float64:
		return complex(x, 0), true
	case int:
		return complex(float64(x), 0), true
	case complex64:
		return complex128(x), true
	case float32:
		return complex(float64(x), 0), true
	case int64:
		return complex(float64(x), 0), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return complex(float64(rv.Int()), 0), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return complex(float64(rv.Uint()), 0), true
	case reflect.Float32, reflect.Float64:
		return complex(rv.Float(), 0), true
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex(), true
	default:
		return 0, false
	}
}

// IsReal reports whether v is an integer or real (non-complex) Go numeric kind.
// Used to validate exponents, which must not be complex.
func IsReal(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// toComplexSlice promotes a typed slice to []complex128 (fresh allocation).
func toComplexSlice[T Number](src []T) []complex128 {
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i], _ = Coerce(v) // T is constrained to Number: always ok
	}

	return out
}
