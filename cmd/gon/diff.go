package main

import (
	"fmt"

	"github.com/gon-format/go-gon/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Lines {
		diffs := libdiff.Lines(libdiff.Text(a), libdiff.Text(b))
		if !libdiff.Changed(diffs) {
			return nil
		}
		if err := libdiff.WriteLines(cc.Out, diffs, cfg.diffColors(cc.Out)); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if err := libdiff.WriteChanges(cc.Out, changes, cfg.diffColors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
