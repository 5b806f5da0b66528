// Package debug gates verbose trace logging behind environment variables:
// an env-checked bool struct populated once at init, one flag per
// markdoll pipeline stage — scanning, parsing, dispatch, and emission.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type flags struct {
	Scan     bool
	Parse    bool
	Dispatch bool
	Emit     bool
}

var d *flags

func init() {
	d = &flags{
		Scan:     boolEnv("MARKDOLL_DEBUG_SCAN"),
		Parse:    boolEnv("MARKDOLL_DEBUG_PARSE"),
		Dispatch: boolEnv("MARKDOLL_DEBUG_DISPATCH"),
		Emit:     boolEnv("MARKDOLL_DEBUG_EMIT"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool     { return d.Scan }
func Parse() bool    { return d.Parse }
func Dispatch() bool { return d.Dispatch }
func Emit() bool     { return d.Emit }

// Logf writes a trace line to stderr when the caller has already checked
// one of the flags above.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
