package mergeop

import (
	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/ir"
)

// ShallowMerge puts the children of src into dst. An object child whose
// name dst already has replaces the existing child in its slot, without
// merging their contents. Array children are appended. A Null dst becomes
// a copy of src. Any other pair of kinds is reported as an
// [ir.ErrMergeType].
func ShallowMerge(dst, src *ir.Node, opts ...Option) error {
	o := newOpts(opts)
	if dst.IsMissing() {
		return o.report(&ir.MergeTypeError{Op: "shallow merge", Src: src.Type, Missing: true})
	}
	if debug.Merge() {
		debug.Logger().Debug("shallow merge", "dst", dst.Type, "src", src.Type, "name", dst.Name)
	}
	switch {
	case dst.Type == ir.NullType:
		dst.Assign(src)
	case dst.Type == ir.ObjectType && src.Type == ir.ObjectType:
		for _, c := range src.Values {
			i := dst.FieldIndex(c.Name)
			if i == -1 {
				dst.AddChild(c.Clone())
				continue
			}
			if o.onOverwrite != nil {
				o.onOverwrite(dst.Values[i], c)
			}
			dst.SetChild(i, c.Clone())
		}
	case dst.Type == ir.ArrayType && src.Type == ir.ArrayType:
		appendChildren(dst, src)
	default:
		return o.report(&ir.MergeTypeError{Op: "shallow merge", Dst: dst.Type, Src: src.Type})
	}
	return nil
}
