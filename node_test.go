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
	"strings"
	"testing"

	"seehuhn.de/go/bst/optional"
)

func TestNewSingleNode(t *testing.T) {
	intTree := New(0)
	if got := intTree.String(); got != "{0}" {
		t.Errorf("String() = %q, want %q", got, "{0}")
	}

	stringTree := New("root")
	if got := stringTree.String(); got != "{root}" {
		t.Errorf("String() = %q, want %q", got, "{root}")
	}
	if stringTree.Left != nil || stringTree.Right != nil {
		t.Error("new tree has children")
	}
}

func TestInsertReturnsNewNode(t *testing.T) {
	tree := New(5)
	node := tree.Insert(4)
	if node == nil {
		t.Fatal("Insert returned nil")
	}
	if node.Value != 4 {
		t.Errorf("node.Value = %d, want 4", node.Value)
	}
	if node != tree.Left {
		t.Error("returned node is not the new left child")
	}
	if node.Left != nil || node.Right != nil {
		t.Error("new node has children")
	}
	if got, want := tree.String(), "{5, L: {4}}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInsertReturnsNewNodeAbsent(t *testing.T) {
	tree := NewOptional(optional.Some("root"))
	node := tree.Insert(optional.Value[string]{})
	if node == nil {
		t.Fatal("Insert returned nil")
	}
	if node.Value.IsSet() {
		t.Error("new node holds a set value")
	}
	if node != tree.Left {
		t.Error("absent value not inserted as left child")
	}
}

func TestInsertPlacement(t *testing.T) {
	tests := []struct {
		name   string
		insert []string
		want   string
	}{
		{"less", []string{"a"}, "{m, L: {a}}"},
		{"equal", []string{"m"}, "{m, R: {m}}"},
		{"greater", []string{"z"}, "{m, R: {z}}"},
		{"both", []string{"a", "z"}, "{m, L: {a}, R: {z}}"},
		{"equal twice", []string{"m", "m"}, "{m, R: {m, R: {m}}}"},
		{"deeper", []string{"f", "c", "h", "x", "p"}, "{m, L: {f, L: {c}, R: {h}}, R: {x, L: {p}}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New("m")
			for _, v := range tt.insert {
				tree.Insert(v)
			}
			if got := tree.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertAbsent(t *testing.T) {
	var none optional.Value[string]

	tree := NewOptional(optional.Some("m"))
	tree.Insert(optional.Some("a"))
	tree.Insert(optional.Some("z"))
	tree.Insert(none)

	want := "{m, L: {a, L: {}}, R: {z}}"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInsertNilPointer(t *testing.T) {
	m, a, z := "m", "a", "z"
	tree := NewPointer(&m)
	tree.Insert(&a)
	tree.Insert(&z)
	tree.Insert(nil)
	tree.Insert(nil)

	want := "{m, L: {a, L: {, L: {}}}, R: {z}}"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAbsentRoot(t *testing.T) {
	var none optional.Value[int]

	tree := NewOptional(none)
	tree.Insert(optional.Some(-5))
	tree.Insert(none)

	// present values are greater than the absent root
	want := "{, L: {}, R: {-5}}"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNullableCompare(t *testing.T) {
	compare := func(a, b *int) int {
		// must never see a nil pointer
		return *a - *b
	}
	isAbsent := func(p *int) bool { return p == nil }

	one, two := 1, 2
	tree := NewNullable(&two, compare, isAbsent)
	tree.Insert(nil)
	tree.Insert(&one)
	tree.Insert(nil)

	if tree.Left == nil || tree.Left.Value != nil {
		t.Fatal("nil not placed left of the root")
	}
	// nil goes left of nil, 1 goes right of nil
	if tree.Left.Left == nil || tree.Left.Left.Value != nil {
		t.Error("second nil not placed left of the first")
	}
	if tree.Left.Right == nil || tree.Left.Right.Value != &one {
		t.Error("1 not placed right of nil")
	}
}

func TestNewFuncOrder(t *testing.T) {
	// order strings by length only
	tree := NewFunc("ccc", func(a, b string) int {
		return len(a) - len(b)
	})
	tree.Insert("a")
	tree.Insert("zzz")
	tree.Insert("bbbb")

	want := "{ccc, L: {a}, R: {zzz, R: {bbbb}}}"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInsertCreatesOneNode(t *testing.T) {
	tree := New(50)
	values := []int{20, 70, 20, 10, 90, 50, 60, 30}
	for i, v := range values {
		node := tree.Insert(v)
		if node.Value != v {
			t.Errorf("Insert(%d) returned node with value %d", v, node.Value)
		}
		if got, want := tree.Len(), i+2; got != want {
			t.Errorf("after %d inserts: Len() = %d, want %d", i+1, got, want)
		}
	}
}

func TestInsertIntoAttachedSubtree(t *testing.T) {
	tree := New(10)
	tree.Left = &Node[int]{Value: 5}
	node := tree.Insert(3)

	if tree.Left.Left != node {
		t.Error("value not inserted into the attached subtree")
	}
	if got, want := tree.String(), "{10, L: {5, L: {3}}}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInsertPanics(t *testing.T) {
	tests := []struct {
		name string
		root *Node[int]
	}{
		{"nil", nil},
		{"zero", &Node[int]{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Insert did not panic")
				}
				msg, ok := r.(string)
				if !ok || !strings.HasPrefix(msg, "bst: ") {
					t.Errorf("unexpected panic value %v", r)
				}
			}()
			tt.root.Insert(1)
		})
	}
}
