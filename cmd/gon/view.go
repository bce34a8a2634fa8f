package main

import (
	"github.com/gon-format/go-gon/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachArg(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Node) error {
		if err := separate(cc.Out, i, file); err != nil {
			return err
		}
		return cfg.output(cc.Out, doc)
	})
}
