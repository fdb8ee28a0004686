package printer

import (
	"github.com/signadot/treelib"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders both trees without color and returns the text diff of
// the renderings. Identical renderings yield an empty diff.
func Diff(from, to *treelib.Node, opts ...PrintOption) []diffpatch.Diff {
	opts = append(opts, PrintColors(nil))
	a := Sprint(from, opts...)
	b := Sprint(to, opts...)
	if a == b {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, true)
	return diffCfg.DiffCleanupSemantic(diffs)
}
