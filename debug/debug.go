package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path bool
	YAML bool
	CLI  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("TREELIB_DEBUG_PATH")
	d.YAML = boolEnv("TREELIB_DEBUG_YAML")
	d.CLI = boolEnv("TREELIB_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func YAML() bool {
	return d.YAML
}
func CLI() bool {
	return d.CLI
}
