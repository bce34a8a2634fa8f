package main

import (
	"github.com/gon-format/go-gon/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var opts []token.TokenOpt
	if cfg.Wrap {
		opts = append(opts, token.TokenWrap())
	}
	for i, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		if err := separate(cc.Out, i, arg); err != nil {
			return err
		}
		if err := token.PrintTokens(cc.Out, token.Tokenize(d, opts...)); err != nil {
			return err
		}
	}
	return nil
}
