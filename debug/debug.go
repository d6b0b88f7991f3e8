package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Encode   bool
	Validate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PROJTREE_DEBUG_PARSE")
	d.Encode = boolEnv("PROJTREE_DEBUG_ENCODE")
	d.Validate = boolEnv("PROJTREE_DEBUG_VALIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Validate() bool {
	return d.Validate
}
