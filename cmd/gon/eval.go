package main

import (
	"fmt"
	"strings"

	"github.com/gon-format/go-gon/eval"
	"github.com/gon-format/go-gon/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func gonEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachArg(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Node) error {
		if err := separate(cc.Out, i, file); err != nil {
			return err
		}
		if cfg.Expr != "" {
			res, err := eval.Eval(doc, cfg.Expr, cfg.Env)
			if err != nil {
				return err
			}
			return writeValue(cfg.MainConfig, cc.Out, res)
		}
		if err := eval.ExpandNode(doc, cfg.Env); err != nil {
			return err
		}
		return cfg.output(cc.Out, doc)
	})
}

// envFunc sets the variable at the dotted path of a, which has the form
// path=value. The value is read as YAML.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
