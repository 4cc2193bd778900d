package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Register bool
	Flush    bool
	Lookup   bool
	Similar  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Register = boolEnv("OPREG_DEBUG_REGISTER")
	d.Flush = boolEnv("OPREG_DEBUG_FLUSH")
	d.Lookup = boolEnv("OPREG_DEBUG_LOOKUP")
	d.Similar = boolEnv("OPREG_DEBUG_SIMILAR")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Register() bool {
	return d.Register
}
func Flush() bool {
	return d.Flush
}
func Lookup() bool {
	return d.Lookup
}
func Similar() bool {
	return d.Similar
}
