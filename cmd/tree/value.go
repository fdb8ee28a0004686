package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/goccy/go-yaml"
)

// argValue interprets a command line value argument. Values pass
// through YAML scalar parsing so "5" becomes an integer and "true" a
// bool; with isExpr the argument is compiled and run as an expression.
func argValue(arg string, isExpr bool) (any, error) {
	if isExpr {
		program, err := expr.Compile(arg)
		if err != nil {
			return nil, fmt.Errorf("could not compile %q: %w", arg, err)
		}
		return vm.Run(program, map[string]any{})
	}
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return arg, nil
	}
	return v, nil
}
