// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer handles the optional fields of catalog items.

Optional numbers are modelled as pointers so that "absent" and "zero" stay
distinct on the wire. Renderers usually only show them when positive.
*/
package pointer

// Number is the set of optional numeric field types.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// To returns a pointer to v, for optional literals in fixtures and tests.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Positive returns *p and true only when p is set and greater than zero.
func Positive[T Number](p *T) (T, bool) {
	v := Val(p)
	return v, v > 0
}
