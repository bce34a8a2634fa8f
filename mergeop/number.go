package mergeop

import "github.com/gon-format/go-gon/ir"

// combineScalars merges two nodes of the same scalar kind.
func combineScalars(dst, src *ir.Node, mode Mode, concat bool) {
	switch dst.Type {
	case ir.StringType:
		if concat {
			dst.String += src.String
			return
		}
		dst.String = src.String
	case ir.NumberType:
		switch mode {
		case Add:
			dst.SetFloat(dst.Float64 + src.Float64)
		case Multiply:
			dst.SetFloat(dst.Float64 * src.Float64)
		default:
			dst.Int64 = src.Int64
			dst.Float64 = src.Float64
			dst.String = src.String
			dst.Bool = src.Bool
		}
	default:
		dst.Assign(src)
	}
}
