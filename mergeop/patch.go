package mergeop

import (
	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/ir"
)

// PatchMerge applies patch to dst. It combines nodes like [DeepMerge], but
// the mode of each patch node is read from the suffix of its name (see
// [ModeOf]) rather than from a policy.
//
// Within an object patch, a child whose name carries a suffix is merged
// into the dst child named by the name without the suffix, whatever the
// mode of the enclosing patch. A child whose name is only a suffix, such
// as ".merge", is applied to dst itself. Every subtree copied from the
// patch has the suffixes trimmed from its names.
//
// Strings concatenate under Append and Add.
func PatchMerge(dst, patch *ir.Node, opts ...Option) error {
	o := newOpts(opts)
	if dst.IsMissing() {
		return o.report(&ir.MergeTypeError{Op: "patch", Src: patch.Type, Missing: true})
	}
	patchMerge(dst, patch)
	return nil
}

func patchMerge(dst, patch *ir.Node) {
	mode := ModeOf(patch.Name)
	if debug.Patch() {
		debug.Logger().Debug("patch", "patch", patch.Name, "dst", dst.Type, "src", patch.Type, "mode", mode)
	}
	switch {
	case dst.Type != patch.Type:
		replace(dst, patch)
	case dst.Type == ir.ObjectType:
		if mode == Overwrite {
			replace(dst, patch)
			return
		}
		for _, pc := range patch.Values {
			if ModeOf(pc.Name) != Default {
				field := TrimSuffixes(pc.Name)
				if field == "" {
					patchMerge(dst, pc)
					continue
				}
				patchField(dst, field, pc)
				continue
			}
			switch mode {
			case Append, Add:
				insertStripped(dst, pc.Name, pc)
			default:
				patchField(dst, pc.Name, pc)
			}
		}
	case dst.Type == ir.ArrayType:
		switch mode {
		case Overwrite:
			replace(dst, patch)
		case Append, Add:
			for _, pc := range patch.Values {
				insertStripped(dst, "", pc)
			}
		default:
			for i, pc := range patch.Values {
				if i < len(dst.Values) {
					patchMerge(dst.Values[i], pc)
					continue
				}
				insertStripped(dst, "", pc)
			}
		}
	default:
		combineScalars(dst, patch, mode, mode == Append || mode == Add)
	}
}

func patchField(dst *ir.Node, field string, pc *ir.Node) {
	if i := dst.FieldIndex(field); i != -1 {
		patchMerge(dst.Values[i], pc)
		return
	}
	insertStripped(dst, field, pc)
}

func insertStripped(dst *ir.Node, field string, pc *ir.Node) {
	c := pc.Clone()
	c.Name = field
	StripSuffixes(c)
	dst.AddChild(c)
}

func replace(dst, patch *ir.Node) {
	dst.Assign(patch)
	StripSuffixes(dst)
}
