package mergeop_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/mergeop"
	"github.com/gon-format/go-gon/parse"
	"github.com/google/go-cmp/cmp"
)

type mergeTest struct {
	Doc   string
	Patch string
	Res   string
	Opts  []mergeop.Option
}

func doc(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return y
}

func runMergeTests(t *testing.T, f mergeop.Func, tests []mergeTest) {
	t.Helper()
	for i, tc := range tests {
		dst := doc(t, tc.Doc)
		src := doc(t, tc.Patch)
		srcBefore := src.Clone()
		if err := f(dst, src, tc.Opts...); err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		want := encode.MustString(doc(t, tc.Res))
		if diff := cmp.Diff(want, encode.MustString(dst)); diff != "" {
			t.Errorf("%d: %q with %q (-want +got):\n%s", i, tc.Doc, tc.Patch, diff)
		}
		if !ir.Equal(src, srcBefore) {
			t.Errorf("%d: source modified", i)
		}
	}
}

func TestAppend(t *testing.T) {
	runMergeTests(t, mergeop.Append, []mergeTest{
		{Doc: "", Patch: "a 1", Res: "a 1"},
		{Doc: "a 1", Patch: "a 2", Res: "a 1 a 2"},
		{Doc: "a 1 b 2", Patch: "c 3", Res: "a 1 b 2 c 3"},
	})
}

func TestAppendShadows(t *testing.T) {
	dst := ir.NewObject()
	if err := mergeop.Append(dst, doc(t, "a 1")); err != nil {
		t.Fatal(err)
	}
	if err := mergeop.Append(dst, doc(t, "a 2")); err != nil {
		t.Fatal(err)
	}
	if len(dst.Values) != 2 || dst.Values[0].Int64 != 1 || dst.Values[1].Int64 != 2 {
		t.Fatalf("children: %s", encode.MustString(dst))
	}
	if dst.Get("a").AsIntOr(0) != 2 {
		t.Errorf("lookup should find the later a")
	}
}

func TestAppendKinds(t *testing.T) {
	y := doc(t, "l [1 2] s foo n null")
	if err := mergeop.Append(y.Get("l"), doc(t, "x [3]").Get("x")); err != nil {
		t.Fatal(err)
	}
	if err := mergeop.Append(y.Get("s"), ir.FromString("bar")); err != nil {
		t.Fatal(err)
	}
	if err := mergeop.Append(y.Get("n"), doc(t, "k v")); err != nil {
		t.Fatal(err)
	}
	want := encode.MustString(doc(t, "l [1 2 3] s foobar n { k v }"))
	if got := encode.MustString(y); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if y.Get("n").Name != "n" {
		t.Errorf("null destination lost its name")
	}
}

func TestAppendClones(t *testing.T) {
	dst := ir.NewObject()
	src := doc(t, "o { x 1 }")
	if err := mergeop.Append(dst, src); err != nil {
		t.Fatal(err)
	}
	src.Get("o").Get("x").SetInt(2)
	if dst.Get("o").Get("x").Int64 != 1 {
		t.Errorf("destination shares nodes with the source")
	}
}

func TestMismatchReported(t *testing.T) {
	for _, f := range []mergeop.Func{mergeop.Append, mergeop.ShallowMerge} {
		dst := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
		err := f(dst, ir.FromString("x"))
		if !errors.Is(err, ir.ErrMergeType) {
			t.Errorf("expected merge type error, got %v", err)
		}
		var seen error
		err = f(dst, ir.FromString("x"), mergeop.WithReporter(func(e error) error {
			seen = e
			return nil
		}))
		if err != nil || seen == nil {
			t.Errorf("recovering reporter: err %v seen %v", err, seen)
		}
		if dst.Size() != 1 || dst.Type != ir.ArrayType {
			t.Errorf("destination changed after mismatch")
		}
		err = f(dst, ir.FromString("x"), mergeop.WithReporter(ir.Logged(slog.New(slog.NewTextHandler(io.Discard, nil)))))
		if err != nil {
			t.Errorf("logged reporter: %v", err)
		}
	}
}

func TestMergeIntoMissing(t *testing.T) {
	for name, f := range map[string]mergeop.Func{
		"append":  mergeop.Append,
		"shallow": mergeop.ShallowMerge,
		"deep":    mergeop.DeepMerge,
		"patch":   mergeop.PatchMerge,
	} {
		y := ir.NewObject()
		err := f(y.Get("absent"), doc(t, "a 1"))
		if !errors.Is(err, ir.ErrMergeType) {
			t.Errorf("%s into missing: %v", name, err)
		}
		if ir.Missing().Exists() || ir.Missing().Size() != 0 {
			t.Fatalf("%s modified the missing sentinel", name)
		}
	}
}

func TestShallowMerge(t *testing.T) {
	runMergeTests(t, mergeop.ShallowMerge, []mergeTest{
		{Doc: "a { x 1 y 2 }", Patch: "a { x 9 }", Res: "a { x 9 }"},
		{Doc: "a 1 b 2", Patch: "a 3", Res: "a 3 b 2"},
		{Doc: "a 1", Patch: "b { c 1 }", Res: "a 1 b { c 1 }"},
	})
	dst := doc(t, "l [1]")
	if err := mergeop.ShallowMerge(dst.Get("l"), doc(t, "l [2]").Get("l")); err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(dst.Get("l")); got != "[1 2]" {
		t.Errorf("array shallow merge: %s", got)
	}
}

func TestShallowMergeOnOverwrite(t *testing.T) {
	dst := doc(t, "a 1 b 2")
	var seen [][2]string
	err := mergeop.ShallowMerge(dst, doc(t, "b 3 c 4"), mergeop.OnOverwrite(func(existing, incoming *ir.Node) {
		seen = append(seen, [2]string{encode.MustString(existing), encode.MustString(incoming)})
	}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][2]string{{"2", "3"}}, seen); diff != "" {
		t.Errorf("callbacks (-want +got):\n%s", diff)
	}
}

func TestDeepMerge(t *testing.T) {
	runMergeTests(t, mergeop.DeepMerge, []mergeTest{
		{Doc: "a { x 1 y 2 }", Patch: "a { x 9 }", Res: "a { x 9 y 2 }"},
		{Doc: "a { b { c 1 } }", Patch: "a { b { d 2 } e 3 }", Res: "a { b { c 1 d 2 } e 3 }"},
		{Doc: "l [1 2 3]", Patch: "l [9]", Res: "l [9 2 3]"},
		{Doc: "l [1]", Patch: "l [7 8]", Res: "l [7 8]"},
		{Doc: "l [{a 1}]", Patch: "l [{b 2}]", Res: "l [{a 1 b 2}]"},
		{Doc: "a 1", Patch: "a { b 2 }", Res: "a { b 2 }"},
		{Doc: "a { b 2 }", Patch: "a text", Res: "a text"},
		{Doc: "s foo", Patch: "s bar", Res: "s bar"},
		{Doc: "n 1", Patch: "n 2", Res: "n 2"},
		{
			Doc:   "a { x 1 }",
			Patch: "a { x 2 }",
			Res:   "a { x 1 } a { x 2 }",
			Opts:  []mergeop.Option{mergeop.WithObjectPolicy(mergeop.PolicyAppend)},
		},
		{
			Doc:   "a { x 1 y 2 }",
			Patch: "a { x 9 }",
			Res:   "a { x 9 }",
			Opts: []mergeop.Option{mergeop.WithObjectPolicy(func(dst, _ *ir.Node) mergeop.Mode {
				if dst.Name == "a" {
					return mergeop.Overwrite
				}
				return mergeop.Merge
			})},
		},
		{
			Doc:   "l [1] o { a 1 }",
			Patch: "l [2] o { a 2 }",
			Res:   "l [1 2] o { a 2 }",
			Opts:  []mergeop.Option{mergeop.WithArrayPolicy(mergeop.PolicyAppend)},
		},
		{
			Doc:   "l [1 2]",
			Patch: "l [3]",
			Res:   "l [3]",
			Opts:  []mergeop.Option{mergeop.WithArrayPolicy(mergeop.PolicyOverwrite)},
		},
	})
}

func TestDeepMergeScalars(t *testing.T) {
	n := ir.FromInt(5)
	if err := mergeop.DeepMerge(n, ir.FromFloat(2.5), mergeop.WithObjectPolicy(mergeop.PolicyOf(mergeop.Add))); err != nil {
		t.Fatal(err)
	}
	if n.Float64 != 7.5 || n.Int64 != 7 || n.String != "7.5" || !n.Bool {
		t.Errorf("add: %+v", n)
	}
	if err := mergeop.DeepMerge(n, ir.FromInt(2), mergeop.WithObjectPolicy(mergeop.PolicyOf(mergeop.Multiply))); err != nil {
		t.Fatal(err)
	}
	if n.Float64 != 15 || n.Int64 != 15 || n.String != "15" {
		t.Errorf("multiply: %+v", n)
	}
	if err := mergeop.DeepMerge(n, ir.FromInt(-15), mergeop.WithObjectPolicy(mergeop.PolicyOf(mergeop.Add))); err != nil {
		t.Fatal(err)
	}
	if n.Bool || n.String != "0" {
		t.Errorf("zero: %+v", n)
	}
	s := ir.FromString("foo")
	if err := mergeop.DeepMerge(s, ir.FromString("bar"), mergeop.WithObjectPolicy(mergeop.PolicyOf(mergeop.Add))); err != nil {
		t.Fatal(err)
	}
	if s.String != "foobar" {
		t.Errorf("string add: %q", s.String)
	}
	if err := mergeop.DeepMerge(s, ir.FromString("baz"), mergeop.WithObjectPolicy(mergeop.PolicyOf(mergeop.Append))); err != nil {
		t.Fatal(err)
	}
	if s.String != "baz" {
		t.Errorf("string append under deep merge replaces: %q", s.String)
	}
}

func TestOverwriteKeepsName(t *testing.T) {
	y := doc(t, "a { x 1 }")
	a := y.Get("a")
	if err := mergeop.DeepMerge(a, doc(t, "other { z 1 }").Get("other"), mergeop.WithObjectPolicy(mergeop.PolicyOverwrite)); err != nil {
		t.Fatal(err)
	}
	if a.Name != "a" || y.Get("a").Get("z").AsIntOr(0) != 1 {
		t.Errorf("overwrite: %s", encode.MustString(y))
	}
}

func TestPatchMerge(t *testing.T) {
	runMergeTests(t, mergeop.PatchMerge, []mergeTest{
		{Doc: "count 5", Patch: "count.add 3", Res: "count 8"},
		{Doc: "n 3", Patch: "n.multiply 4", Res: "n 12"},
		{Doc: "list [1 2]", Patch: "list.overwrite [9]", Res: "list [9]"},
		{Doc: "list [1 2]", Patch: "list.append [3]", Res: "list [1 2 3]"},
		{Doc: "list [1 2]", Patch: "list [7]", Res: "list [7 2]"},
		{Doc: "a 1", Patch: `".merge" { b 2 }`, Res: "a 1 b 2"},
		{Doc: "a { x 1 y 2 }", Patch: "a.overwrite { z 3 }", Res: "a { z 3 }"},
		{Doc: "a { x 1 y 2 }", Patch: `a { ".overwrite" { z 3 } }`, Res: "a { z 3 }"},
		{Doc: "a { b 1 c 2 }", Patch: "a { b 5 }", Res: "a { b 5 c 2 }"},
		{Doc: "o { a 1 }", Patch: "o.append { a 2 }", Res: "o { a 1 a 2 }"},
		{
			Doc:   "o { a 1 b [1] }",
			Patch: "o.append { c 1 b.overwrite [2] }",
			Res:   "o { a 1 b [2] c 1 }",
		},
		{
			Doc:   "",
			Patch: "new { x.add 1 y.overwrite { z.merge 2 } }",
			Res:   "new { x 1 y { z 2 } }",
		},
		{Doc: "l []", Patch: "l.append [{k.add 1}]", Res: "l [{k 1}]"},
		{Doc: "l [1]", Patch: "l [1 {k.add 1}]", Res: "l [1 {k 1}]"},
		{Doc: "s foo", Patch: "s.append bar", Res: "s foobar"},
		{Doc: "s foo", Patch: "s.add bar", Res: "s foobar"},
		{Doc: "s foo", Patch: "s.merge bar", Res: "s bar"},
		{Doc: "a 1", Patch: "a { b.add 2 }", Res: "a { b 2 }"},
		{Doc: "a { b 1 }", Patch: "a.multiply { b.add 2 }", Res: "a { b 3 }"},
		{Doc: "x.add 1", Patch: "x.add 2", Res: "x.add 1 x 2"},
	})
}

func TestPatchMergeFloat(t *testing.T) {
	dst := doc(t, "r 1.5")
	if err := mergeop.PatchMerge(dst, doc(t, "r.add 1")); err != nil {
		t.Fatal(err)
	}
	r := dst.Get("r")
	if r.Float64 != 2.5 || r.Int64 != 2 || r.String != "2.5" {
		t.Errorf("got %+v", r)
	}
}

func TestSelfPatchCreatesNoEmptyField(t *testing.T) {
	dst := doc(t, "a 1")
	if err := mergeop.PatchMerge(dst, doc(t, `".merge" { b 2 }`)); err != nil {
		t.Fatal(err)
	}
	if dst.Contains("") {
		t.Errorf("self patch created an empty named field")
	}
}

func TestByName(t *testing.T) {
	for _, n := range mergeop.FuncNames() {
		if _, err := mergeop.ByName(n); err != nil {
			t.Errorf("%s: %v", n, err)
		}
	}
	if _, err := mergeop.ByName("nope"); err == nil {
		t.Errorf("unknown name accepted")
	}
}
