package gomap

import (
	"fmt"
	"io"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/format"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/parse"

	"github.com/goccy/go-yaml"
)

// Load parses a GON document and stores it in the value pointed to by p,
// following the yaml struct tags of p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(node, p)
}

// FromIR stores node in the value pointed to by p. Shadowed fields are
// dropped.
func FromIR(node *ir.Node, p any) error {
	d, err := yaml.Marshal(ToMap(node))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(d, p)
}

// Decode reads d in format f. JSON is read as YAML.
func Decode(d []byte, f format.Format, opts ...parse.ParseOption) (*ir.Node, error) {
	if f == format.GonFormat {
		return parse.Parse(d, opts...)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f, err)
	}
	if v == nil {
		return ir.NewObject(), nil
	}
	return FromAny(v)
}

// Encode writes node in format f. GON objects are written as documents;
// other GON values are written on their own and end with a newline.
func Encode(node *ir.Node, w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	switch f {
	case format.GonFormat:
		if node.Type == ir.ObjectType {
			return encode.EncodeDocument(node, w, opts...)
		}
		if err := encode.Encode(node, w, opts...); err != nil {
			return err
		}
		if node.Type.IsLeaf() {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	case format.JSONFormat:
		d, err := yaml.MarshalWithOptions(ToAny(node), yaml.JSON())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
}
