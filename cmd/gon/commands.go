package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := newMainConfig()
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: gon/g, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: gon/g, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "gon").
		WithSynopsis("gon [opts] command [opts]").
		WithDescription("gon is a tool for working with GON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gonMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			TokensCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			MatchCommand(cfg),
			PatchCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg),
			BuildCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents in canonical form, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [-w] [files]").
		WithDescription("print the tokens of documents with their positions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <objectpath> [files]").
		WithDescription("get elements from documents by path, such as $.a.b[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <objectpath> [files]").
		WithDescription("list elements matching a path with wildcards, such as $.a[*] or $..name").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <matchobj> [files]").
		WithDescription("print the documents containing a match document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s|-f] [-d] <patchobj> [files]").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

const patchDescription = `patch documents.

The patch is given as a file, or as a string with -s. Each field of the
patch is merged into the field of the same name. A suffix on a patch
field name selects how:

  .overwrite  replace the field wholesale
  .append     append children, or concatenate strings
  .merge      merge children by name or position
  .add        append children, add numbers, concatenate strings
  .multiply   multiply numbers

A field named only by a suffix applies to the enclosing object.`

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg, Op: "deep"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("me").
		WithSynopsis("merge [-m op] files...").
		WithDescription("merge documents in order into the first").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-lines] a b").
		WithDescription("diff documents, exiting with 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		})

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e path=val]... [-x expr] [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gonEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

const evalDescription = `evaluate expressions in documents.

Without -x, string values of the form ".[expr]" are replaced by the value
of expr and "$[expr]" references within strings by the text of theirs.
With -x, expr is evaluated once per document and its value printed.

Expressions see the fields of the document and the -e variables, and may
call getpath(path), listpath(path), whereami() and getenv(name).`

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name: "e",
		Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
	})
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [dir] [-l] [-p profile] [-s] [-- path=val...]").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build merges and patches documents described by a build file.

Build operates on a build directory, which defaults to the current directory.

Build File

Build looks for a file called 'build.{gon,yaml,json}' of the form

  build {
      # merged in order, globs relative to the build directory
      sources [ base.gon "conf/*.gon" ]

      # how sources are merged: append, shallow, deep (default) or patch
      merge deep

      # applied in order; a patch may carry a condition on env
      patches [ "patches/*.gon" { file debug.gon if "debug" } ]

      # extra patches selected with -p
      profiles { prod [ prod.gon ] }

      # variables for .[expr] and $[expr] references in sources and patches
      env { debug false }

      # optional output file; its extension names the format
      dest out.gon
  }

Environment

The env of the build file can be overridden with '-e path=value', with
'-- path1=value1 path2=value2 ...' or with GON text in $GON_BUILD_ENV.
Arguments take precedence over the environment variable, and later
arguments over earlier ones.

build -l lists profiles and build -s shows the environment.`
