package printer

type PrintOption func(*printState)

// Indent sets the number of spaces per depth level (default 4).
func Indent(n int) PrintOption {
	return func(ps *printState) { ps.indent = n }
}

// Label sets the root node's label (default "Root").
func Label(s string) PrintOption {
	return func(ps *printState) { ps.label = s }
}

// PrintColors renders labels and values in color.
func PrintColors(c *Colors) PrintOption {
	return func(ps *printState) { ps.colors = c }
}
