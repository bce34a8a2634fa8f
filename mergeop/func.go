package mergeop

import (
	"fmt"
	"slices"

	"github.com/gon-format/go-gon/ir"
)

// Func is the signature shared by the merge operations.
type Func func(dst, src *ir.Node, opts ...Option) error

var funcs = map[string]Func{
	"append":  Append,
	"shallow": ShallowMerge,
	"deep":    DeepMerge,
	"patch":   PatchMerge,
}

// FuncNames lists the names accepted by [ByName].
func FuncNames() []string {
	res := make([]string, 0, len(funcs))
	for k := range funcs {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// ByName returns the merge operation called name: append, shallow, deep
// or patch.
func ByName(name string) (Func, error) {
	f, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("unknown merge %q (want one of %v)", name, FuncNames())
	}
	return f, nil
}
