package main

import (
	"fmt"
	"io"

	"github.com/gon-format/go-gon/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	return forEachArg(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Node) error {
		return queryDoc(cfg.MainConfig, cc.Out, doc, path, false, i > 0)
	})
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	return forEachArg(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Node) error {
		return queryDoc(cfg.MainConfig, cc.Out, doc, path, true, i > 0)
	})
}

func pathArg(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}

func queryDoc(cfg *MainConfig, w io.Writer, doc *ir.Node, query string, list, sep bool) error {
	if sep {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	var (
		res *ir.Node
		err error
	)
	if list {
		var nodes []*ir.Node
		nodes, err = doc.ListPath(nil, query)
		res = ir.FromSlice(nodes)
	} else {
		res, err = doc.GetPath(query)
	}
	if err != nil {
		return err
	}
	return writeValue(cfg, w, res)
}

// writeValue writes a value which need not be an object.
func writeValue(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if node.Type == ir.ObjectType {
		node = node.Clone()
		node.Name = ""
	}
	return cfg.output(w, node)
}
