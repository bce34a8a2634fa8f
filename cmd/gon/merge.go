package main

import (
	"fmt"

	"github.com/gon-format/go-gon"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/mergeop"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	if _, err := mergeop.ByName(cfg.Op); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := []mergeop.Option{mergeop.WithReporter(cfg.reporter())}
	var res *ir.Node
	err = forEachArg(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Node) error {
		if i == 0 {
			res = doc
			return nil
		}
		res, err = gon.Merge(cfg.Op, res, doc, opts...)
		return err
	})
	if err != nil {
		return err
	}
	return cfg.output(cc.Out, res)
}
