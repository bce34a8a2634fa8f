package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/format"
	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/libdiff"
	"github.com/gon-format/go-gon/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Lenient bool `cli:"name=lenient desc='log structural and type errors and carry on'"`
	Indent  int  `cli:"name=indent desc='spaces per indentation level'"`
	Short   int  `cli:"name=short desc='max total string length of one-line arrays, negative for never'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func newMainConfig() *MainConfig {
	return &MainConfig{Indent: 4, Short: 80}
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat == nil {
		return format.GonFormat
	}
	return *cfg.InFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat == nil {
		return format.GonFormat
	}
	return *cfg.OutFormat
}

func (cfg *MainConfig) reporter() ir.Reporter {
	if cfg.Lenient {
		return ir.Logged(debug.Logger())
	}
	return ir.Abort
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseReporter(cfg.reporter())}
}

// decode reads a document in the input format.
func (cfg *MainConfig) decode(d []byte) (*ir.Node, error) {
	return gomap.Decode(d, cfg.inFormat(), cfg.parseOpts()...)
}

// output writes node in the output format.
func (cfg *MainConfig) output(w io.Writer, node *ir.Node) error {
	return gomap.Encode(node, w, cfg.outFormat(), cfg.encOpts(w)...)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeShortLimit(cfg.Short),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if cfg.isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	if cfg.Color || cfg.isTerminal(w) {
		return libdiff.NewColors()
	}
	return nil
}

func (cfg *MainConfig) isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Wrap   bool `cli:"name=w desc='wrap input in implicit braces'"`
	Tokens *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	List *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Lines   bool `cli:"name=lines desc='diff the encoded text line by line'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String  bool `cli:"name=s desc='patch arg as string'"`
	File    bool `cli:"name=f desc='patch arg as file'"`
	Symbols bool `cli:"name=symbols desc='show available patch suffixes'"`
	Diff    bool `cli:"name=d desc='show the changes instead of the result'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Op string `cli:"name=m aliases=merge desc='merge operation: append, shallow, deep or patch'"`

	Merge *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env  map[string]any
	Expr string `cli:"name=x aliases=expr desc='evaluate expression against each document'"`

	Eval *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Env map[string]any

	List    bool   `cli:"name=l aliases=list desc='list profiles'"`
	Profile string `cli:"name=p aliases=profile desc='profile to build'"`
	ShowEnv bool   `cli:"name=s aliases=show desc='show environment'"`

	Build *cli.Command
}
