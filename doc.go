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

// Package bst implements a generic, unbalanced binary search tree.
//
// A tree is represented by a pointer to its root [Node]; the empty tree is
// the nil pointer.  Trees are created from a root value using one of the
// constructors [New], [NewFunc], [NewNullable], [NewOptional],
// [NewOptionalFunc] or [NewPointer], and grow by [Node.Insert].  No attempt
// is made to balance the tree, so the shape of the tree depends only on the
// order of insertion.  Inserting a sorted sequence produces a tree of height
// equal to the number of nodes.
//
// Values which compare less than a node go into its left subtree, all other
// values (including values equal to the node) go into the right subtree.
// Trees built with [NewNullable], [NewOptional], [NewOptionalFunc] or
// [NewPointer] have a distinguished absent element.  Absent values are
// always placed to the left, and sort before every present value.
//
// The canonical text form of a tree, returned by [Node.String], lists the
// nodes in pre-order:
//
//	{m, L: {a, L: {}}, R: {z}}
//
// Here "m" is the root, "a" is its left child and "z" its right child.
// The empty braces denote an absent value.
//
// Trees are not safe for concurrent use.
package bst
