package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gon-format/go-gon/ir"
)

type EncState struct {
	indent     int
	shortLimit int
	tab        string

	Color func(ir.Type, ColorAttr, string) string

	w    io.Writer
	last byte
	err  error
}

func newEncState(w io.Writer, opts []EncodeOption) *EncState {
	es := &EncState{
		indent:     4,
		shortLimit: 80,
		w:          w,
	}
	for _, opt := range opts {
		opt(es)
	}
	es.tab = strings.Repeat(" ", es.indent)
	return es
}

// Encode writes node. Containers end with a newline, scalars do not.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(w, opts)
	encode(node, es, "")
	return es.err
}

// EncodeDocument writes the fields of an object as the body of a document,
// one "name value" entry per field.
func EncodeDocument(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: document root must be an Object, got %s", ErrEncoding, node.Type)
	}
	es := newEncState(w, opts)
	for _, c := range node.Values {
		encodeField(c, es, "")
	}
	return es.err
}

func (es *EncState) write(s string) {
	if es.err != nil || s == "" {
		return
	}
	_, es.err = io.WriteString(es.w, s)
	es.last = s[len(s)-1]
}

func (es *EncState) endLine() {
	if es.last != '\n' {
		es.write("\n")
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeField(c *ir.Node, es *EncState, cur string) {
	es.write(cur)
	es.write(es.color(c.Type, FieldColor, EscapeString(c.Name)))
	es.write(" ")
	encode(c, es, cur)
	es.endLine()
}

func encode(node *ir.Node, es *EncState, cur string) {
	switch node.Type {
	case ir.ObjectType:
		encodeObject(node, es, cur)
	case ir.ArrayType:
		encodeArray(node, es, cur)
	case ir.StringType:
		es.write(es.color(ir.StringType, ValueColor, EscapeString(node.String)))
	case ir.NumberType:
		es.write(es.color(ir.NumberType, ValueColor, strconv.FormatInt(node.Int64, 10)))
	case ir.BoolType:
		es.write(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		es.write(es.color(ir.NullType, ValueColor, "null"))
	default:
		if es.err == nil {
			es.err = fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
		}
	}
}

func encodeObject(node *ir.Node, es *EncState, cur string) {
	es.write(es.color(ir.ObjectType, SepColor, "{"))
	es.write("\n")
	for _, c := range node.Values {
		encodeField(c, es, cur+es.tab)
	}
	es.write(cur)
	es.write(es.color(ir.ObjectType, SepColor, "}"))
	es.write("\n")
}

// IsShortArray reports whether the elements of node fit on one line.
func IsShortArray(node *ir.Node, limit int) bool {
	if limit < 0 {
		return false
	}
	total := 0
	for _, c := range node.Values {
		switch c.Type {
		case ir.ObjectType, ir.ArrayType:
			return false
		case ir.StringType:
			total += len(c.String)
		}
	}
	return total <= limit
}

func encodeArray(node *ir.Node, es *EncState, cur string) {
	openB := es.color(ir.ArrayType, SepColor, "[")
	closeB := es.color(ir.ArrayType, SepColor, "]")
	if IsShortArray(node, es.shortLimit) {
		es.write(openB)
		for i, c := range node.Values {
			if i > 0 {
				es.write(" ")
			}
			encode(c, es, cur+es.tab)
		}
		es.write(closeB)
		es.write("\n")
		return
	}
	es.write(openB)
	es.write("\n")
	for _, c := range node.Values {
		es.write(cur + es.tab)
		encode(c, es, cur+es.tab)
		es.endLine()
	}
	es.write(cur)
	es.write(closeB)
	es.write("\n")
}
