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

// Height returns the number of nodes on the longest path from n down to
// a leaf, counting n itself.  A single node has height 1, the empty tree
// has height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

// IsBalanced reports whether the heights of the two subtrees of n differ
// by at most one.  Only n itself is checked, the subtrees may be
// unbalanced.
func (n *Node[T]) IsBalanced() bool {
	d := n.Left.Height() - n.Right.Height()
	return d >= -1 && d <= 1
}

// Len returns the number of nodes in the tree.
func (n *Node[T]) Len() int {
	count := 0
	var stack []*Node[T]
	if n != nil {
		stack = append(stack, n)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
	}
	return count
}
