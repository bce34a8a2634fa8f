package eval

import (
	"fmt"
	"maps"

	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the variables visible to an expression.
type Env map[string]any

// DocEnv returns an environment with one variable per field of doc. The
// last of several equally named fields wins. Non-object documents give
// an empty environment.
func DocEnv(doc *ir.Node) Env {
	env := Env{}
	if doc == nil || doc.Type != ir.ObjectType {
		return env
	}
	if m, ok := gomap.ToMap(doc).(map[string]any); ok {
		maps.Copy(env, m)
	}
	return env
}

// Eval evaluates src with doc's fields as variables, extended by extra,
// and returns the result as a node.
func Eval(doc *ir.Node, src string, extra Env) (*ir.Node, error) {
	v, err := EvalAny(doc, src, extra)
	if err != nil {
		return nil, err
	}
	res, err := gomap.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("could not translate result of %q: %w", src, err)
	}
	return res, nil
}

// EvalAny is like Eval but returns the Go value the expression produced.
func EvalAny(doc *ir.Node, src string, extra Env) (any, error) {
	env := DocEnv(doc)
	maps.Copy(env, extra)
	return run(doc, "$", src, env)
}

func run(root *ir.Node, at, src string, env Env) (any, error) {
	if root == nil {
		root = ir.NewObject()
	}
	prg, err := expr.Compile(src, exprOpts(root, at)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := vm.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logger().Debug("eval", "at", at, "expr", src, "result", res)
	}
	return res, nil
}
