// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrSyntax indicates input that is not a nested numeric JSON array.
	ErrSyntax = errors.New("codec: malformed numeric input")

	// ErrScalar indicates an element that is neither a number, an "a+bi"
	// string nor a [re, im] pair.
	ErrScalar = errors.New("codec: invalid scalar")

	// ErrEmpty indicates input without any element.
	ErrEmpty = errors.New("codec: empty input")

	// ErrRecord indicates a binary record whose shape and payload disagree.
	ErrRecord = errors.New("codec: inconsistent record")
)
