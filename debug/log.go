package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/treelib"
	"github.com/signadot/treelib/printer"
)

// Logf writes a debug line to stderr. *treelib.Node arguments render
// through the printer; maps and slices render as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *treelib.Node:
			args[i] = printer.Sprint(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
