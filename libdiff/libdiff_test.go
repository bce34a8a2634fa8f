package libdiff

import (
	"bytes"
	"testing"

	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/parse"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	y, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return y
}

func changeStrings(cs []Change) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.String()
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		from, to string
		want     []string
	}{
		{
			from: `a 1 b [1 2]`,
			to:   `a 1 b [1 2]`,
			want: nil,
		},
		{
			from: `a 1 b 2`,
			to:   `a 1 b 3 c x`,
			want: []string{"~ $.b 2 -> 3", "+ $.c x"},
		},
		{
			from: `a 1 b 2`,
			to:   `b 2`,
			want: []string{"- $.a 1"},
		},
		{
			from: `a { b { c true } }`,
			to:   `a { b { c false } }`,
			want: []string{"~ $.a.b.c true -> false"},
		},
		{
			from: `a 1`,
			to:   `a [1]`,
			want: []string{"~ $.a 1 -> [1]"},
		},
		{
			from: `xs [1 2 3 4]`,
			to:   `xs [1 9 2 3 4]`,
			want: []string{"+ $.xs[1] 9"},
		},
		{
			from: `xs [1 2 3 4]`,
			to:   `xs [1 3 4]`,
			want: []string{"- $.xs[1] 2"},
		},
		{
			from: `xs [a b c]`,
			to:   `xs [a x c]`,
			want: []string{"~ $.xs[1] b -> x"},
		},
		{
			from: `xs [ { n 1 } { n 2 } ]`,
			to:   `xs [ { n 1 } { n 3 } ]`,
			want: []string{"~ $.xs[1].n 2 -> 3"},
		},
		{
			from: `a 1 a 2`,
			to:   `a 1 a 5`,
			want: []string{"~ $.a 2 -> 5"},
		},
	}
	for _, test := range tests {
		got := changeStrings(Diff(mustParse(t, test.from), mustParse(t, test.to)))
		if len(got) == 0 {
			got = nil
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s => %s (-want +got):\n%s", test.from, test.to, diff)
		}
	}
}

func TestReverse(t *testing.T) {
	from := mustParse(t, `a 1 b 2`)
	to := mustParse(t, `b 3 c 4`)
	got := changeStrings(Reverse(Diff(from, to)))
	want := changeStrings(Diff(to, from))
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteChanges(t *testing.T) {
	from := mustParse(t, `a 1`)
	to := mustParse(t, `a 2 o { x [1 2] }`)
	buf := &bytes.Buffer{}
	if err := WriteChanges(buf, Diff(from, to), nil); err != nil {
		t.Fatal(err)
	}
	want := "~ $.a 1 -> 2\n+ $.o { x [1 2] }\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestLines(t *testing.T) {
	from := Text(mustParse(t, `a 1 b 2 c 3`))
	to := Text(mustParse(t, `a 1 b 5 c 3`))
	diffs := Lines(from, to)
	if !Changed(diffs) {
		t.Fatal("no change")
	}
	buf := &bytes.Buffer{}
	if err := WriteLines(buf, diffs, nil); err != nil {
		t.Fatal(err)
	}
	want := " a 1\n-b 2\n+b 5\n c 3\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
	if Changed(Lines(from, from)) {
		t.Error("equal text changed")
	}
}
