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

package bst

import (
	"cmp"
	"fmt"

	"seehuhn.de/go/bst/optional"
)

// Node is a node of a binary search tree.
//
// Left holds values which compare less than Value, Right holds all other
// values.  The children can be read and replaced directly; no check is
// made that a replaced subtree respects the ordering.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]

	ord *order[T]
}

// order describes how the values of a tree are compared and printed.
// All nodes created by Insert share the order of the tree root.
type order[T any] struct {
	compare  func(a, b T) int
	isAbsent func(T) bool // nil if the type has no absent element
	format   func(T) string
}

// goesLeft reports whether v is placed into the left subtree of a node
// holding the value cur.
func (o *order[T]) goesLeft(v, cur T) bool {
	if o.isAbsent != nil {
		if o.isAbsent(v) {
			return true
		}
		if o.isAbsent(cur) {
			return false
		}
	}
	return o.compare(v, cur) < 0
}

// New returns a single-node tree holding v.
// Values are ordered using [cmp.Compare].
func New[T cmp.Ordered](v T) *Node[T] {
	return NewFunc(v, cmp.Compare[T])
}

// NewFunc returns a single-node tree holding v.
// Values are ordered using compare, which must return a negative number
// when a < b, zero when a == b and a positive number when a > b.
func NewFunc[T any](v T, compare func(a, b T) int) *Node[T] {
	return newRoot(v, &order[T]{compare: compare})
}

// NewNullable returns a single-node tree holding v, where isAbsent
// identifies the absent element of T.
//
// Absent values are less than all other values.  compare is only called
// with two present values.
func NewNullable[T any](v T, compare func(a, b T) int, isAbsent func(T) bool) *Node[T] {
	return newRoot(v, &order[T]{compare: compare, isAbsent: isAbsent})
}

// NewOptional returns a single-node tree of optional values, holding v.
// The unset value is the absent element of the tree.
func NewOptional[T cmp.Ordered](v optional.Value[T]) *Node[optional.Value[T]] {
	return NewOptionalFunc(v, cmp.Compare[T])
}

// NewOptionalFunc is like [NewOptional], but set values are ordered
// using compare.
func NewOptionalFunc[T any](v optional.Value[T], compare func(a, b T) int) *Node[optional.Value[T]] {
	return NewNullable(v, optional.CompareFunc(compare), isUnset[T])
}

// NewPointer returns a single-node tree of pointers, holding v.
// Pointers are ordered by the values they point to, and nil is the
// absent element of the tree.
func NewPointer[T cmp.Ordered](v *T) *Node[*T] {
	ord := &order[*T]{
		compare: func(a, b *T) int {
			return cmp.Compare(*a, *b)
		},
		isAbsent: func(p *T) bool {
			return p == nil
		},
		format: func(p *T) string {
			return fmt.Sprint(*p)
		},
	}
	return newRoot(v, ord)
}

func newRoot[T any](v T, ord *order[T]) *Node[T] {
	if ord.compare == nil {
		panic("bst: missing comparison function")
	}
	if ord.format == nil {
		ord.format = func(v T) string { return fmt.Sprint(v) }
	}
	return &Node[T]{Value: v, ord: ord}
}

func isUnset[T any](v optional.Value[T]) bool {
	return !v.IsSet()
}

// Insert adds v to the tree rooted at n and returns the newly created
// leaf node.
//
// Duplicates are allowed and always end up in the right subtree of an
// equal value.  The ordering of n is used for the whole descent, also
// for subtrees which were attached via the Left and Right fields.
// Insert panics if n is nil or was not created by one of the constructors
// of this package.
func (n *Node[T]) Insert(v T) *Node[T] {
	ord := n.mustOrder()

	cur := n
	for {
		if ord.goesLeft(v, cur.Value) {
			if cur.Left == nil {
				cur.Left = &Node[T]{Value: v, ord: ord}
				return cur.Left
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = &Node[T]{Value: v, ord: ord}
				return cur.Right
			}
			cur = cur.Right
		}
	}
}

func (n *Node[T]) mustOrder() *order[T] {
	if n == nil {
		panic("bst: Insert on empty tree")
	}
	if n.ord == nil {
		panic("bst: tree root was not created by a constructor")
	}
	return n.ord
}
