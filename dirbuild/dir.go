// Package dirbuild interprets a gon build directory.
//
// A build directory holds a build file (build.gon, build.yaml or
// build.json) of the form
//
//	build {
//	    sources [ base.gon "conf/*.gon" ]
//	    merge deep
//	    patches [ "patches/*.gon" { file extra.gon if "env == 'prod'" } ]
//	    profiles { prod [ "profiles/prod/*.gon" ] }
//	    env { env dev }
//	    dest out.gon
//	}
//
// Sources are merged in order with the named merge operation, then the
// patches and those of the selected profile are applied with
// [mergeop.PatchMerge]. String values in sources and patches may refer
// to env with $[expr] and .[expr] references.
package dirbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/eval"
	"github.com/gon-format/go-gon/format"
	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/mergeop"
)

const DefaultMerge = "deep"

type Dir struct {
	Root     string                `yaml:"-"`
	Sources  []string              `yaml:"sources"`
	Merge    string                `yaml:"merge,omitempty"`
	Patches  []DirPatch            `yaml:"patches,omitempty"`
	Profiles map[string][]DirPatch `yaml:"profiles,omitempty"`
	Env      map[string]any        `yaml:"env,omitempty"`
	Dest     string                `yaml:"dest,omitempty"`
}

// OpenDir reads the build file in path. Values in env override those of
// the build file's env.
func OpenDir(path string, env map[string]any) (*Dir, error) {
	var (
		node *ir.Node
		err  error
	)
	for _, f := range []format.Format{format.GonFormat, format.YAMLFormat, format.JSONFormat} {
		candidate := filepath.Join(path, "build"+f.Suffix())
		d, rerr := os.ReadFile(candidate)
		if errors.Is(rerr, fs.ErrNotExist) {
			continue
		}
		if rerr != nil {
			return nil, fmt.Errorf("could not read %q: %w", candidate, rerr)
		}
		node, err = gomap.Decode(d, f)
		if err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", candidate, err)
		}
		break
	}
	if node == nil {
		return nil, fmt.Errorf("could not find build.{gon,yaml,json} in %q", path)
	}
	return newDir(node, path, env)
}

func newDir(node *ir.Node, path string, env map[string]any) (*Dir, error) {
	dir := &Dir{Root: path}
	if b := node.Get("build"); b.Type == ir.ObjectType {
		node = b
	}
	if err := gomap.FromIR(node, dir); err != nil {
		return nil, fmt.Errorf("could not decode build in %s: %w", path, err)
	}
	if dir.Merge == "" {
		dir.Merge = DefaultMerge
	}
	if _, err := mergeop.ByName(dir.Merge); err != nil {
		return nil, err
	}
	dirEnv, err := mergeEnv(dir.Env, env)
	if err != nil {
		return nil, err
	}
	dir.Env = dirEnv
	if debug.Build() {
		debug.Logger().Debug("opened build dir", "root", path, "sources", dir.Sources,
			"merge", dir.Merge, "patches", len(dir.Patches), "env", dir.Env)
	}
	return dir, nil
}

// mergeEnv expands the references of dst, then patches it with p.
func mergeEnv(dst, p map[string]any) (map[string]any, error) {
	doc, err := gomap.FromAny(dst)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		doc = ir.NewObject()
	}
	if err := eval.ExpandNode(doc, nil); err != nil {
		return nil, fmt.Errorf("error evaluating env: %w", err)
	}
	if p != nil {
		patch, err := gomap.FromAny(p)
		if err != nil {
			return nil, err
		}
		if err := mergeop.PatchMerge(doc, patch); err != nil {
			return nil, err
		}
	}
	res, _ := gomap.ToMap(doc).(map[string]any)
	return res, nil
}
