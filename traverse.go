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

import "iter"

// InOrderRecursive calls visit for every value in the tree, in order:
// first the left subtree, then the node itself, then the right subtree.
//
// The recursion depth equals the height of the tree.
// See [Node.InOrderIterative] for a version which does not recurse.
func (n *Node[T]) InOrderRecursive(visit func(T)) {
	if n == nil {
		return
	}
	n.Left.InOrderRecursive(visit)
	visit(n.Value)
	n.Right.InOrderRecursive(visit)
}

// InOrderIterative calls visit for every value in the tree, in the same
// order as [Node.InOrderRecursive].  An explicit stack is used instead of
// recursion.
func (n *Node[T]) InOrderIterative(visit func(T)) {
	for v := range n.All() {
		visit(v)
	}
}

// All returns an iterator over the values of the tree, in order.
func (n *Node[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]
		cur := n
		for cur != nil || len(stack) > 0 {
			if cur != nil {
				stack = append(stack, cur)
				cur = cur.Left
				continue
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.Value) {
				return
			}
			cur = cur.Right
		}
	}
}
