package parse

import (
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/token"
)

type parseOpts struct {
	reporter  ir.Reporter
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseReporter installs r to handle structural errors. When r returns nil
// the parse yields [ir.Missing] and no error.
func ParseReporter(r ir.Reporter) ParseOption {
	return func(o *parseOpts) { o.reporter = r }
}

// ParsePositions records in m the position of the token each node starts
// at. The implicit root of [Parse] is recorded at the start of the text.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
