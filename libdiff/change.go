package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/ir"

	"github.com/fatih/color"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is a difference at Path. From is nil for insertions and To is
// nil for deletions.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return c.Op.String() + " " + c.Path + " " + compact(c.To)
	case Delete:
		return c.Op.String() + " " + c.Path + " " + compact(c.From)
	default:
		return c.Op.String() + " " + c.Path + " " + compact(c.From) + " -> " + compact(c.To)
	}
}

// Reverse returns the changes leading from the target back to the source.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		}
		c.From, c.To = c.To, c.From
		res[i] = c
	}
	return res
}

// Colors holds the colors changes are written with. A nil *Colors writes
// plain text.
type Colors struct {
	Insert  *color.Color
	Delete  *color.Color
	Replace *color.Color
}

func NewColors() *Colors {
	return &Colors{
		Insert:  color.New(color.FgGreen),
		Delete:  color.New(color.FgRed),
		Replace: color.New(color.FgYellow),
	}
}

func (c *Colors) paint(op Op, s string) string {
	if c == nil {
		return s
	}
	var col *color.Color
	switch op {
	case Insert:
		col = c.Insert
	case Delete:
		col = c.Delete
	case Replace:
		col = c.Replace
	}
	if col == nil {
		return s
	}
	return col.Sprint(s)
}

// WriteChanges writes one line per change.
func WriteChanges(w io.Writer, changes []Change, c *Colors) error {
	for _, ch := range changes {
		if _, err := io.WriteString(w, c.paint(ch.Op, ch.String())+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func compact(node *ir.Node) string {
	if node == nil {
		return "<none>"
	}
	s := encode.MustString(node, encode.EncodeIndent(0))
	return strings.ReplaceAll(s, "\n", " ")
}
