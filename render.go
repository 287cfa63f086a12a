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
	"fmt"
	"strings"
)

// String returns the tree in pre-order, in the form
//
//	{value, L: {left subtree}, R: {right subtree}}
//
// where the "L:" and "R:" parts are omitted for missing children.
// Absent values are shown as "{}".  The empty tree gives the empty string.
func (n *Node[T]) String() string {
	if n == nil {
		return ""
	}
	var ord *order[T]
	if n.ord != nil {
		ord = n.ord
	} else {
		ord = &order[T]{format: func(v T) string { return fmt.Sprint(v) }}
	}

	b := &strings.Builder{}
	n.render(b, ord)
	return b.String()
}

func (n *Node[T]) render(b *strings.Builder, ord *order[T]) {
	b.WriteByte('{')
	if ord.isAbsent == nil || !ord.isAbsent(n.Value) {
		b.WriteString(ord.format(n.Value))
	}
	if n.Left != nil {
		b.WriteString(", L: ")
		n.Left.render(b, ord)
	}
	if n.Right != nil {
		b.WriteString(", R: ")
		n.Right.render(b, ord)
	}
	b.WriteByte('}')
}
