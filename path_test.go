package gon

import (
	"testing"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/ir"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$.f",
		Doc:  "f 1",
		Res:  "1",
	},
	{
		Path: "$.f[3]",
		Doc:  "a [1 2] f [0 1 2 three]",
		Res:  "three",
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  `a [1 2] "f[3]" [0 1 2 three]`,
		Res:  "2",
	},
	{
		Path: "$.a.b",
		Doc:  "a { b x b y }",
		Res:  "y",
	},
	{
		Path: "$.nope",
		Doc:  "a 1",
		Res:  "null",
	},
	{
		NoGet: true,
		Path:  "$.a[*]",
		Doc:   "b [1 2 3]",
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.b[*]",
		Doc:   "b [1 2 3]",
		Res:   "[1 2 3]",
	},
	{
		NoGet: true,
		Path:  "$.c.d.a",
		Doc:   "a b c { d 2 a 3 }",
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$..a",
		Doc:   "a b c { d 2 a 3 }",
		Res:   "[b 3]",
	},
	{
		NoGet: true,
		Path:  "$.c..a",
		Doc:   "a b c { d 2 a 3 }",
		Res:   "[3]",
	},
	{
		NoGet: true,
		Path:  "$.c..x",
		Doc:   "a b c { d 2 a 3 }",
		Res:   "[]",
	},
}

func TestPathGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		if pathTest.NoGet {
			continue
		}
		node, err := LoadFromBuffer(pathTest.Doc)
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, err := node.GetPath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		out := encode.MustString(res)
		if out != pathTest.Res {
			t.Errorf("%s: got %q want %q", pathTest.Path, out, pathTest.Res)
		}
	}
}

func TestPathList(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		in, err := LoadFromBuffer(pathTest.Doc)
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		lst, err := in.ListPath(nil, pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		if !pathTest.NoGet {
			get, err := in.GetPath(pathTest.Path)
			if err != nil {
				t.Error(err)
				continue
			}
			if get.IsMissing() {
				if len(lst) != 0 {
					t.Errorf("%s: listed %d missing values", pathTest.Path, len(lst))
				}
				continue
			}
			if len(lst) == 0 {
				t.Errorf("%s: nothing listed", pathTest.Path)
				continue
			}
			gs, ls := encode.MustString(get), encode.MustString(lst[len(lst)-1])
			if gs != ls {
				t.Errorf("# get\n%s---\n# lst\n%s", gs, ls)
			}
			continue
		}
		ls := encode.MustString(ir.FromSlice(lst))
		if ls != pathTest.Res {
			t.Errorf("%s: list gave %q want %q", pathTest.Path, ls, pathTest.Res)
		}
	}
}
