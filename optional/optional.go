// seehuhn.de/go/bst - a generic unbalanced binary search tree
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package optional provides a value which may be absent.
//
// The zero Value is unset.  Unset values sort before every set value, so
// that a Value can serve as the element type of an ordered container which
// needs a distinguished "no value" element.
package optional

import (
	"cmp"
	"fmt"
)

// Value represents an optional value of type T.
type Value[T any] struct {
	isSet bool
	val   T
}

// Some returns a Value which is set to v.
func Some[T any](v T) Value[T] {
	var x Value[T]
	x.Set(v)
	return x
}

// Get returns the value and whether it is set.
func (x Value[T]) Get() (T, bool) {
	return x.val, x.isSet
}

// IsSet reports whether the value is set.
func (x Value[T]) IsSet() bool {
	return x.isSet
}

// Set sets the value.
func (x *Value[T]) Set(v T) {
	x.isSet = true
	x.val = v
}

// Clear clears the value.
func (x *Value[T]) Clear() {
	var zero T
	x.isSet = false
	x.val = zero
}

// String returns the empty string for unset values and the default
// formatting of the value otherwise.
func (x Value[T]) String() string {
	if !x.isSet {
		return ""
	}
	return fmt.Sprint(x.val)
}

// Equal compares two Values for equality.
// Two unset values are equal.
func Equal[T comparable](a, b Value[T]) bool {
	if a.isSet != b.isSet {
		return false
	}
	return !a.isSet || a.val == b.val
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal
// to, or greater than b.  The unset value is less than every set value.
func Compare[T cmp.Ordered](a, b Value[T]) int {
	return CompareFunc(cmp.Compare[T])(a, b)
}

// CompareFunc extends the comparison function compare to optional values.
// The unset value is less than every set value, and compare is only called
// when both arguments are set.
func CompareFunc[T any](compare func(a, b T) int) func(a, b Value[T]) int {
	return func(a, b Value[T]) int {
		switch {
		case !a.isSet && !b.isSet:
			return 0
		case !a.isSet:
			return -1
		case !b.isSet:
			return 1
		}
		return compare(a.val, b.val)
	}
}
