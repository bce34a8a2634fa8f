package eval

import (
	"os"

	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/ir"

	"github.com/expr-lang/expr"
)

// exprOpts makes the script functions available to expressions. Paths
// are resolved against root; whereami reports at.
func exprOpts(root *ir.Node, at string) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return at, nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := root.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res.IsMissing() {
				return nil, nil
			}
			return gomap.ToMap(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := root.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, item := range nodes {
				res[i] = gomap.ToMap(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
