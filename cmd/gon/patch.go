package main

import (
	"fmt"

	"github.com/gon-format/go-gon"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/libdiff"
	"github.com/gon-format/go-gon/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Symbols {
		fmt.Fprintf(cc.Out, "available patch suffixes:\n")
		for _, s := range mergeop.Symbols() {
			fmt.Fprintf(cc.Out, "\t%s\t%s\n", s.Suffix(), s.Mode())
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch object and files to which to apply it", cli.ErrUsage)
	}
	p, err := getish(cfg.MainConfig, cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := []mergeop.Option{mergeop.WithReporter(cfg.reporter())}
	return forEachArg(cfg.MainConfig, cc, args[1:], func(i int, file string, doc *ir.Node) error {
		res, err := gon.Patch(doc, p, opts...)
		if err != nil {
			return err
		}
		if err := separate(cc.Out, i, file); err != nil {
			return err
		}
		if cfg.Diff {
			return libdiff.WriteChanges(cc.Out, libdiff.Diff(doc, res), cfg.diffColors(cc.Out))
		}
		return cfg.output(cc.Out, res)
	})
}
