package mergeop

import (
	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/ir"
)

// DeepMerge merges src into dst recursively. The mode for each pair of
// nodes comes from the array policy when both are arrays and from the
// object policy otherwise; both default to [PolicyMerge].
//
//   - Overwrite replaces a container wholesale.
//   - Append and Add append the children of src.
//   - Merge, Default and Multiply recurse into same-named object children
//     and into array elements at the same position, appending the rest.
//
// Strings concatenate under Add and are replaced otherwise. Numbers are
// summed under Add, multiplied under Multiply and replaced otherwise. When
// the kinds differ dst becomes a copy of src. dst keeps its name in every
// case.
func DeepMerge(dst, src *ir.Node, opts ...Option) error {
	o := newOpts(opts)
	if dst.IsMissing() {
		return o.report(&ir.MergeTypeError{Op: "deep merge", Src: src.Type, Missing: true})
	}
	deepMerge(dst, src, o)
	return nil
}

func deepMerge(dst, src *ir.Node, o *mergeOpts) {
	var mode Mode
	if dst.Type == ir.ArrayType && src.Type == ir.ArrayType {
		mode = o.arrayPolicy(dst, src)
	} else {
		mode = o.objectPolicy(dst, src)
	}
	if debug.Merge() {
		debug.Logger().Debug("deep merge", "name", dst.Name, "dst", dst.Type, "src", src.Type, "mode", mode)
	}
	switch {
	case dst.Type != src.Type:
		dst.Assign(src)
	case dst.Type == ir.ObjectType:
		switch mode {
		case Overwrite:
			dst.Assign(src)
		case Append, Add:
			appendChildren(dst, src)
		default:
			for _, c := range src.Values {
				if i := dst.FieldIndex(c.Name); i != -1 {
					deepMerge(dst.Values[i], c, o)
					continue
				}
				dst.AddChild(c.Clone())
			}
		}
	case dst.Type == ir.ArrayType:
		switch mode {
		case Overwrite:
			dst.Assign(src)
		case Append, Add:
			appendChildren(dst, src)
		default:
			for i, c := range src.Values {
				if i < len(dst.Values) {
					deepMerge(dst.Values[i], c, o)
					continue
				}
				dst.AddChild(c.Clone())
			}
		}
	default:
		combineScalars(dst, src, mode, mode == Add)
	}
}
