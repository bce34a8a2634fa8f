package main

import (
	"fmt"

	"github.com/gon-format/go-gon/dirbuild"
	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/mergeop"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg, cc, args)
	if err != nil {
		return err
	}
	dirPath := "."
	if len(args) != 0 {
		dirPath = args[0]
	}
	if cfg.ShowEnv && cfg.List {
		return fmt.Errorf("%w: cannot use -s and -l together", cli.ErrUsage)
	}
	env, err := buildEnv(cfg.Env)
	if err != nil {
		return err
	}
	dir, err := dirbuild.OpenDir(dirPath, env)
	if err != nil {
		return err
	}
	if cfg.List {
		for _, profile := range dir.ProfileNames() {
			fmt.Fprintln(cc.Out, profile)
		}
		return nil
	}
	if cfg.ShowEnv {
		node, err := gomap.FromAny(dir.Env)
		if err != nil {
			return err
		}
		return cfg.output(cc.Out, node)
	}
	if dir.Dest != "" && cfg.Out == "" {
		return dir.Run(cc.Out, cfg.Profile)
	}
	node, err := dir.Build(cfg.Profile)
	if err != nil {
		return err
	}
	return cfg.output(cc.Out, node)
}

// buildEnv patches the environment from $GON_BUILD_ENV with the command
// line variables.
func buildEnv(args map[string]any) (map[string]any, error) {
	env, err := dirbuild.LoadEnv()
	if err != nil {
		return nil, err
	}
	if env == nil {
		return args, nil
	}
	doc, err := gomap.FromAny(env)
	if err != nil {
		return nil, err
	}
	p, err := gomap.FromAny(args)
	if err != nil {
		return nil, err
	}
	if err := mergeop.PatchMerge(doc, p); err != nil {
		return nil, err
	}
	res, _ := gomap.ToMap(doc).(map[string]any)
	return res, nil
}

func parseEnvExtras(cfg *BuildConfig, cc *cli.Context, args []string) ([]string, error) {
	delim := -1
	for i, arg := range args {
		if arg == "--" {
			delim = i
			break
		}
	}
	if delim == -1 {
		return args, nil
	}
	f := envOptTypeFunc(cfg.Env)
	ret := args[:delim]
	delim++
	for delim < len(args) {
		arg := args[delim]
		delim++
		_, err := f(cc, arg)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
