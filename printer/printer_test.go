package printer

import (
	"testing"

	"github.com/signadot/treelib"
)

type printTest struct {
	Name string
	Node func() *treelib.Node
	Opts []PrintOption
	Want string
}

var printTests = []printTest{
	{
		Name: "nil tree",
		Node: func() *treelib.Node { return nil },
		Want: "None\n",
	},
	{
		Name: "single node",
		Node: func() *treelib.Node { return treelib.New(10) },
		Want: "Root:10\n",
	},
	{
		Name: "nil value",
		Node: func() *treelib.Node { return treelib.New(nil) },
		Want: "Root:None\n",
	},
	{
		Name: "binary tree",
		Node: func() *treelib.Node {
			root := treelib.New(10)
			treelib.Add(root, "L", 5)
			treelib.Add(root, "R", 15)
			treelib.Add(root, "LL", 3)
			treelib.Add(root, "LR", 7)
			return root
		},
		Want: "Root:10\n" +
			"    L---:5\n" +
			"        L---:3\n" +
			"        R---:7\n" +
			"    R---:15\n",
	},
	{
		Name: "binary empty slot",
		Node: func() *treelib.Node {
			root := treelib.New(1)
			root.SetRight(treelib.New(2))
			return root
		},
		Want: "Root:1\n" +
			"    L---None\n" +
			"    R---:2\n",
	},
	{
		Name: "general labels",
		Node: func() *treelib.Node { return treelib.FromValues("x", 1, 2, 3) },
		Want: "Root:x\n" +
			"    C0---:1\n" +
			"    C1---:2\n" +
			"    C2---:3\n",
	},
	{
		Name: "general empty slot",
		Node: func() *treelib.Node {
			root := treelib.FromValues("x", 1, 2, 3)
			root.Children[1] = nil
			root.Children = append(root.Children, nil)
			return root
		},
		Want: "Root:x\n" +
			"    C0---:1\n" +
			"    C1---None\n" +
			"    C2---:3\n" +
			"    C3---None\n",
	},
	{
		Name: "two slots use binary labels",
		Node: func() *treelib.Node { return treelib.FromValues("x", 1, 2) },
		Want: "Root:x\n" +
			"    L---:1\n" +
			"    R---:2\n",
	},
	{
		Name: "indent and label options",
		Node: func() *treelib.Node {
			root := treelib.New(1)
			root.SetLeft(treelib.New(2))
			return root
		},
		Opts: []PrintOption{Indent(2), Label("T")},
		Want: "T:1\n" +
			"  L---:2\n",
	},
}

func TestPrint(t *testing.T) {
	for _, tc := range printTests {
		got := Sprint(tc.Node(), tc.Opts...)
		if got != tc.Want {
			t.Errorf("%s:\ngot:\n%s\nwant:\n%s", tc.Name, got, tc.Want)
		}
	}
}

func TestDiff(t *testing.T) {
	a := treelib.FromValues(10, 1, 2, 3)
	b := a.Clone()
	if diffs := Diff(a, b); len(diffs) != 0 {
		t.Errorf("identical trees produced a diff: %v", diffs)
	}
	b.Children[1].Value = 4
	if diffs := Diff(a, b); len(diffs) == 0 {
		t.Error("differing trees produced no diff")
	}
}
