package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("EDS_DEBUG_LEX")
	d.Parse = boolEnv("EDS_DEBUG_PARSE")
	d.Eval = boolEnv("EDS_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
