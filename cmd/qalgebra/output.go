package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/qalgebra/internal/codec"
	"github.com/katalvlaran/qalgebra/quantum"
)

// printResult writes a value, scalar or flag in the selected format.
func (a *app) printResult(w io.Writer, label string, x any) error {
	var text string
	switch v := x.(type) {
	case quantum.Value:
		if a.asJSON {
			b, err := codec.FormatJSON(v.Matrix().Data())
			if err != nil {
				return err
			}
			text = string(b)
		} else {
			text = v.String()
		}
	case complex128:
		text = codec.FormatScalar(v)
		if a.asJSON {
			text = fmt.Sprintf("%q", text)
		}
	default:
		text = fmt.Sprint(v)
	}

	if label != "" {
		_, err := fmt.Fprintf(w, "%s: %s\n", label, text)
		return err
	}
	_, err := fmt.Fprintln(w, text)

	return err
}
