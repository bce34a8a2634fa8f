package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gon-format/go-gon/ir"

	"github.com/scott-cotton/cli"
)

// readArg reads the file path, or the command input when path is "-".
func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return cfg.decode(d)
}

// forEachArg calls f with the document in each file of args, or in the
// command input when args is empty.
func forEachArg(cfg *MainConfig, cc *cli.Context, args []string, f func(i int, file string, doc *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		doc, err := getObjFile(cfg, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := f(i, arg, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}

// getish reads a document given on the command line, as a string with s
// or a file path with f. Without either, arg is the document text.
func getish(cfg *MainConfig, s, f bool, cc *cli.Context, arg string) (*ir.Node, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var (
		d   []byte
		err error
	)
	if f {
		d, err = readArg(cc, arg)
		if err != nil {
			return nil, err
		}
	} else {
		d = []byte(arg)
	}
	res, err := cfg.decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", arg, err)
	}
	return res, nil
}

// separate writes a comment line naming file before every document but
// the first when several are printed.
func separate(w io.Writer, i int, file string) error {
	if i == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n# %s\n", file)
	return err
}
