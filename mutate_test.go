package treelib

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustAdd(t *testing.T, root *Node, path string, value any) *Node {
	t.Helper()
	res, err := Add(root, path, value)
	if err != nil {
		t.Fatalf("Add(%q, %v): %v", path, value, err)
	}
	return res
}

func TestAddBinaryPaths(t *testing.T) {
	root := New(10)
	mustAdd(t, root, "L", 5)
	mustAdd(t, root, "R", 15)
	mustAdd(t, root, "LL", 3)

	if root.Value != 10 {
		t.Errorf("root value %v, want 10", root.Value)
	}
	if got := root.Children[0].Value; got != 5 {
		t.Errorf("left value %v, want 5", got)
	}
	if got := root.Children[1].Value; got != 15 {
		t.Errorf("right value %v, want 15", got)
	}
	if got := root.Children[0].Children[0].Value; got != 3 {
		t.Errorf("left-left value %v, want 3", got)
	}
}

func TestAddGeneralPath(t *testing.T) {
	root := New(nil)
	mustAdd(t, root, "0,2,1", 99)

	if len(root.Children) < 1 || root.Children[0] == nil {
		t.Fatalf("no intermediate node at slot 0: %v", root.Children)
	}
	mid := root.Children[0]
	if len(mid.Children) < 3 || mid.Children[2] == nil {
		t.Fatalf("no intermediate node at slot 2: %v", mid.Children)
	}
	target := mid.Children[2].Children[1]
	if target == nil || target.Value != 99 {
		t.Fatalf("target node %+v, want value 99", target)
	}
}

func TestAddEmptyPathSetsRootValue(t *testing.T) {
	root := New(1)
	mustAdd(t, root, "", 2)
	if root.Value != 2 {
		t.Errorf("root value %v, want 2", root.Value)
	}
	if len(root.Children) != 0 {
		t.Errorf("empty path add grew children: %v", root.Children)
	}
}

func TestAddOverwriteKeepsSubtree(t *testing.T) {
	root := New(10)
	mustAdd(t, root, "L", 5)
	mustAdd(t, root, "LL", 3)
	mustAdd(t, root, "L", 6)

	left := root.Children[0]
	if left.Value != 6 {
		t.Errorf("left value %v, want 6", left.Value)
	}
	if len(left.Children) != 1 || left.Children[0].Value != 3 {
		t.Errorf("overwrite discarded subtree: %+v", left.Children)
	}
}

func TestEditIdempotent(t *testing.T) {
	once := New(10)
	if _, err := Edit(once, "LR", 7); err != nil {
		t.Fatal(err)
	}
	twice := New(10)
	for range 2 {
		if _, err := Edit(twice, "LR", 7); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("double edit differs from single (-once +twice):\n%s", diff)
	}
}

func TestEditMatchesAdd(t *testing.T) {
	a := New(1)
	mustAdd(t, a, "0,1", "x")
	b := New(1)
	if _, err := Edit(b, "0,1", "x"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("edit differs from add (-add +edit):\n%s", diff)
	}
}

func TestDeleteBinaryKeepsSlots(t *testing.T) {
	root := New(10)
	mustAdd(t, root, "L", 5)
	mustAdd(t, root, "R", 15)

	res, err := Delete(root, "L")
	if err != nil {
		t.Fatal(err)
	}
	if res != root {
		t.Error("delete did not return the root")
	}
	if len(root.Children) != 2 {
		t.Fatalf("children has %d slots, want 2", len(root.Children))
	}
	if root.Children[0] != nil {
		t.Error("slot 0 should be empty")
	}
	if root.Children[1] == nil || root.Children[1].Value != 15 {
		t.Error("slot 1 should be untouched")
	}
}

func TestDeleteGeneralShifts(t *testing.T) {
	root := FromValues(10, 1, 2, 3)

	if _, err := Delete(root, "0"); err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children has %d slots, want 2", len(root.Children))
	}
	if root.Children[0].Value != 2 || root.Children[1].Value != 3 {
		t.Errorf("siblings did not shift down: %v, %v",
			root.Children[0].Value, root.Children[1].Value)
	}
}

func TestDeleteEmptyPathDiscardsTree(t *testing.T) {
	root := New(10)
	res, err := Delete(root, "")
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Errorf("empty path delete returned %+v, want nil", res)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	root := FromValues(10, 1, 2)
	want := root.Clone()
	res, err := Delete(root, "5")
	if err != nil {
		t.Fatal(err)
	}
	if res != root {
		t.Error("out of range delete did not return the root")
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("out of range delete changed the tree:\n%s", diff)
	}
}

func TestMutateInvalidPath(t *testing.T) {
	root := New(1)
	if _, err := Add(root, "nope", 2); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Add: error %v is not ErrInvalidPath", err)
	}
	if _, err := Edit(root, "1,b", 2); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Edit: error %v is not ErrInvalidPath", err)
	}
	if _, err := Delete(root, "L,1"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Delete: error %v is not ErrInvalidPath", err)
	}
}
