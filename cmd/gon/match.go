package main

import (
	"fmt"

	"github.com/gon-format/go-gon"
	"github.com/gon-format/go-gon/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	m, err := getish(cfg.MainConfig, cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	n := 0
	err = forEachArg(cfg.MainConfig, cc, args[1:], func(_ int, file string, doc *ir.Node) error {
		if !gon.Match(doc, m) {
			return nil
		}
		if cfg.Trim {
			doc = gon.Trim(m, doc)
		}
		if err := separate(cc.Out, n, file); err != nil {
			return err
		}
		n++
		return cfg.output(cc.Out, doc)
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
