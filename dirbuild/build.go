package dirbuild

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/eval"
	"github.com/gon-format/go-gon/format"
	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/mergeop"
)

// Build merges the sources and applies the patches, followed by those of
// profile when it is not empty.
func (d *Dir) Build(profile string) (*ir.Node, error) {
	patches := d.Patches
	if profile != "" {
		pp, ok := d.Profiles[profile]
		if !ok {
			return nil, fmt.Errorf("unknown profile %q (have %v)", profile, d.ProfileNames())
		}
		patches = append(slices.Clip(patches), pp...)
	}
	res, err := d.merge()
	if err != nil {
		return nil, err
	}
	if err := d.patch(res, patches); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *Dir) merge() (*ir.Node, error) {
	f, err := mergeop.ByName(d.Merge)
	if err != nil {
		return nil, err
	}
	var res *ir.Node
	for _, pattern := range d.Sources {
		docs, err := d.fetch(pattern)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if res == nil {
				res = doc
				continue
			}
			if err := f(res, doc); err != nil {
				return nil, fmt.Errorf("error merging %s: %w", pattern, err)
			}
		}
	}
	if res == nil {
		res = ir.NewObject()
	}
	return res, nil
}

func (d *Dir) patch(dst *ir.Node, patches []DirPatch) error {
	for i := range patches {
		dp := &patches[i]
		ok, err := dp.enabled(d.Env)
		if err != nil {
			return err
		}
		if !ok {
			if debug.Patch() {
				debug.Logger().Debug("skipped patch", "patch", dp.String())
			}
			continue
		}
		docs, err := d.fetch(dp.File)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := mergeop.PatchMerge(dst, doc); err != nil {
				return fmt.Errorf("error applying patch %s: %w", dp.File, err)
			}
			if debug.Patch() {
				debug.Logger().Debug("patched", "patch", dp.String(), "result", debug.Gon{Node: dst})
			}
		}
	}
	return nil
}

// fetch loads the files matching pattern, relative to the root of d,
// in lexical order. A pattern without matches is an error.
func (d *Dir) fetch(pattern string) ([]*ir.Node, error) {
	glob := pattern
	if !filepath.IsAbs(glob) {
		glob = filepath.Join(d.Root, glob)
	}
	paths, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %q in %s", pattern, d.Root)
	}
	res := make([]*ir.Node, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		doc, err := gomap.Decode(data, format.FromPath(p))
		if err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", p, err)
		}
		if err := eval.ExpandNode(doc, d.Env); err != nil {
			return nil, fmt.Errorf("error expanding %s: %w", p, err)
		}
		if debug.Build() {
			debug.Logger().Debug("loaded", "file", p, "doc", debug.Gon{Node: doc})
		}
		res = append(res, doc)
	}
	return res, nil
}

// Write writes node to w in format f.
func (d *Dir) Write(w io.Writer, node *ir.Node, f format.Format, opts ...encode.EncodeOption) error {
	bw := bufio.NewWriter(w)
	if err := gomap.Encode(node, bw, f, opts...); err != nil {
		return err
	}
	return bw.Flush()
}

// Run builds profile and writes the result to the dest file of d, in the
// format named by its extension, or to w when d has no dest.
func (d *Dir) Run(w io.Writer, profile string, opts ...encode.EncodeOption) error {
	node, err := d.Build(profile)
	if err != nil {
		return err
	}
	if d.Dest == "" {
		return d.Write(w, node, format.GonFormat, opts...)
	}
	dest := d.Dest
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(d.Root, dest)
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := d.Write(f, node, format.FromPath(dest), opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
