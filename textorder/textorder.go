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

// Package textorder provides comparison functions for strings, for use as
// the ordering of a [seehuhn.de/go/bst] tree.
//
// Byte-wise comparison, as done by [strings.Compare], puts "Zebra" before
// "apple" and "é" after "z".  The functions in this package order strings
// the way a human reader would expect.
package textorder

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Collation returns a function which compares strings using the collation
// rules for the given language.  Options like [collate.IgnoreCase] or
// [collate.Numeric] modify the rules.
//
// The returned function is not safe for concurrent use.
func Collation(tag language.Tag, opts ...collate.Option) func(a, b string) int {
	c := collate.New(tag, opts...)
	return c.CompareString
}

// Normalized returns a function which brings both strings into the given
// normal form before comparing them with compare.
// If compare is nil, [strings.Compare] is used.
func Normalized(form norm.Form, compare func(a, b string) int) func(a, b string) int {
	if compare == nil {
		compare = strings.Compare
	}
	return func(a, b string) int {
		return compare(form.String(a), form.String(b))
	}
}
