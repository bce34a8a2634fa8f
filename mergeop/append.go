package mergeop

import (
	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/ir"
)

// Append adds the children of src to dst. A Null dst becomes a copy of
// src and two strings are concatenated. Any other pair of kinds is
// reported as an [ir.ErrMergeType].
func Append(dst, src *ir.Node, opts ...Option) error {
	o := newOpts(opts)
	if dst.IsMissing() {
		return o.report(&ir.MergeTypeError{Op: "append", Src: src.Type, Missing: true})
	}
	if debug.Merge() {
		debug.Logger().Debug("append", "dst", dst.Type, "src", src.Type, "name", dst.Name)
	}
	switch {
	case dst.Type == ir.NullType:
		dst.Assign(src)
	case dst.Type == ir.ObjectType && src.Type == ir.ObjectType,
		dst.Type == ir.ArrayType && src.Type == ir.ArrayType:
		appendChildren(dst, src)
	case dst.Type == ir.StringType && src.Type == ir.StringType:
		dst.String += src.String
	default:
		return o.report(&ir.MergeTypeError{Op: "append", Dst: dst.Type, Src: src.Type})
	}
	return nil
}

func appendChildren(dst, src *ir.Node) {
	for _, c := range src.Values {
		dst.AddChild(c.Clone())
	}
}
