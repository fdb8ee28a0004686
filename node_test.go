package treelib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLeftRight(t *testing.T) {
	n := New(1)
	if n.Left() != nil || n.Right() != nil {
		t.Fatal("empty node has left or right")
	}

	left := New(2)
	n.SetLeft(left)
	if n.Left() != left {
		t.Error("Left() does not return the set node")
	}
	if len(n.Children) != 1 {
		t.Errorf("SetLeft grew children to %d slots, want 1", len(n.Children))
	}
	if n.Right() != nil {
		t.Error("Right() should be nil with one slot")
	}

	right := New(3)
	n.SetRight(right)
	if n.Right() != right {
		t.Error("Right() does not return the set node")
	}
	if len(n.Children) != 2 {
		t.Errorf("SetRight grew children to %d slots, want 2", len(n.Children))
	}
	// slot 0 keeps its identity
	if n.Children[0] != left {
		t.Error("SetRight changed slot 0")
	}
}

func TestSetRightPadsLeft(t *testing.T) {
	n := New(1)
	n.SetRight(New(3))
	if len(n.Children) != 2 {
		t.Fatalf("children has %d slots, want 2", len(n.Children))
	}
	if n.Children[0] != nil {
		t.Error("slot 0 should be an empty placeholder")
	}
}

func TestSetLeftOverwrites(t *testing.T) {
	n := New(1)
	n.SetLeft(New(2))
	n.SetRight(New(3))
	repl := New(4)
	n.SetLeft(repl)
	if len(n.Children) != 2 {
		t.Fatalf("children has %d slots, want 2", len(n.Children))
	}
	if n.Children[0] != repl {
		t.Error("SetLeft did not overwrite slot 0")
	}
}

func TestFromValues(t *testing.T) {
	n := FromValues("x", 1, 2, 3)
	if n.Value != "x" || len(n.Children) != 3 {
		t.Fatalf("unexpected node %+v", n)
	}
	for i, want := range []int{1, 2, 3} {
		if n.Children[i].Value != want {
			t.Errorf("child %d has value %v, want %d", i, n.Children[i].Value, want)
		}
	}
}

func TestClone(t *testing.T) {
	n := FromValues("x", 1, 2, 3)
	n.Children[1] = nil
	got := n.Clone()
	if diff := cmp.Diff(n, got); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}
	got.Children[0].Value = "changed"
	if n.Children[0].Value == "changed" {
		t.Error("clone shares child nodes with original")
	}
}

func TestEqual(t *testing.T) {
	a := FromValues(1, 2, 3)
	b := FromValues(1, 2, 3)
	if !Equal(a, b) {
		t.Error("identical trees not equal")
	}
	if !Equal(nil, nil) {
		t.Error("nil trees not equal")
	}
	if Equal(a, nil) {
		t.Error("tree equal to nil")
	}
	b.Children[1].Value = 4
	if Equal(a, b) {
		t.Error("trees with differing values equal")
	}
	// explicit empty slot is part of the shape
	c := FromValues(1, 2, 3)
	c.Children = append(c.Children, nil)
	if Equal(a, c) {
		t.Error("trees with differing slot counts equal")
	}
}

func TestVisit(t *testing.T) {
	n := FromValues("r", "a", "b")
	n.Children = append(n.Children, nil)
	var pre, post []any
	err := n.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Value)
			return false, nil
		}
		pre = append(pre, n.Value)
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []any{"r", "a", "b"}
	wantPost := []any{"a", "b", "r"}
	if diff := cmp.Diff(wantPre, pre); diff != "" {
		t.Errorf("pre order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPost, post); diff != "" {
		t.Errorf("post order (-want +got):\n%s", diff)
	}
}
