// Package debug holds switches, read once from the environment, which turn
// on diagnostic logging in the parser, the merge engine and the build
// driver.
package debug

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/ir"
)

type debug struct {
	Parse bool
	Merge bool
	Patch bool
	Build bool
	Eval  bool
	Match bool
}

var d *debug

var logger atomic.Pointer[slog.Logger]

func init() {
	d = &debug{}
	d.Parse = boolEnv("GON_DEBUG_PARSE")
	d.Merge = boolEnv("GON_DEBUG_MERGE")
	d.Patch = boolEnv("GON_DEBUG_PATCH")
	d.Build = boolEnv("GON_DEBUG_BUILD")
	d.Eval = boolEnv("GON_DEBUG_EVAL")
	d.Match = boolEnv("GON_DEBUG_MATCH")
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
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
func Merge() bool {
	return d.Merge
}
func Patch() bool {
	return d.Patch
}
func Build() bool {
	return d.Build
}
func Eval() bool {
	return d.Eval
}
func Match() bool {
	return d.Match
}

// Logger returns the logger debug output goes to. It writes text records
// to stderr unless replaced with SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}

func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Gon logs a node as GON text on one line.
type Gon struct {
	Node *ir.Node
}

func (g Gon) LogValue() slog.Value {
	if g.Node == nil {
		return slog.StringValue("<nil>")
	}
	s := encode.MustString(g.Node, encode.EncodeIndent(0))
	return slog.StringValue(strings.TrimSpace(strings.ReplaceAll(s, "\n", " ")))
}
