package mergeop

import "github.com/gon-format/go-gon/ir"

// Policy chooses the mode DeepMerge uses for a pair of nodes.
type Policy func(dst, src *ir.Node) Mode

func PolicyMerge(_, _ *ir.Node) Mode {
	return Merge
}

func PolicyAppend(_, _ *ir.Node) Mode {
	return Append
}

func PolicyOverwrite(_, _ *ir.Node) Mode {
	return Overwrite
}

// PolicyOf returns a Policy which always chooses m.
func PolicyOf(m Mode) Policy {
	return func(_, _ *ir.Node) Mode { return m }
}
