package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/parse"
	"github.com/google/go-cmp/cmp"
)

func encodeDoc(t *testing.T, in string, opts ...encode.EncodeOption) string {
	t.Helper()
	y, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	buf := &bytes.Buffer{}
	if err := encode.EncodeDocument(y, buf, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

type encodeTest struct {
	in   string
	want string
}

func TestEncodeDocument(t *testing.T) {
	tests := []encodeTest{
		{
			in:   "name alice tags [a b]",
			want: "name alice\ntags [a b]\n",
		},
		{
			in: "obj { x 1 list [ {a 1} ] }",
			want: `obj {
    x 1
    list [
        {
            a 1
        }
    ]
}
`,
		},
		{
			in:   `s "two words" e "" q "say \"hi\"\n" n null b false`,
			want: "s \"two words\"\ne \"\"\nq \"say \\\"hi\\\"\\n\"\nn null\nb false\n",
		},
		{
			in:   "f 3.7 g -3.7 h 0x10",
			want: "f 3\ng -3\nh 16\n",
		},
		{
			in:   `"a key" 1 "{" 2`,
			want: "\"a key\" 1\n\"{\" 2\n",
		},
		{
			in:   "empty {} none []",
			want: "empty {\n}\nnone []\n",
		},
		{
			in: "nested [[1] 2]",
			want: `nested [
    [1]
    2
]
`,
		},
	}
	for _, tc := range tests {
		got := encodeDoc(t, tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestShortArrays(t *testing.T) {
	five := ir.FromSlice([]*ir.Node{
		ir.FromString("a"), ir.FromString("b"), ir.FromString("c"),
		ir.FromString("d"), ir.FromString("e"),
	})
	if got := encode.MustString(five); got != "[a b c d e]" {
		t.Errorf("five strings: %q", got)
	}
	withObj := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.NewObject()})
	if got := encode.MustString(withObj); !strings.Contains(got, "\n") {
		t.Errorf("array with object on one line: %q", got)
	}
	exact := ir.FromSlice([]*ir.Node{ir.FromString(strings.Repeat("x", 40)), ir.FromString(strings.Repeat("y", 40))})
	if !encode.IsShortArray(exact, 80) {
		t.Errorf("80 characters should still be short")
	}
	exact.Values[1].String += "y"
	if encode.IsShortArray(exact, 80) {
		t.Errorf("81 characters should not be short")
	}
	nums := ir.FromSlice([]*ir.Node{ir.FromInt(123456789), ir.FromInt(987654321)})
	if !encode.IsShortArray(nums, 0) {
		t.Errorf("numbers do not count toward the limit")
	}
	if encode.IsShortArray(nums, -1) {
		t.Errorf("negative limit disables short arrays")
	}
	got := encode.MustString(five, encode.EncodeShortLimit(2), encode.EncodeIndent(2))
	if got != "[\n  a\n  b\n  c\n  d\n  e\n]" {
		t.Errorf("limited: %q", got)
	}
}

func TestEscapeString(t *testing.T) {
	tests := []encodeTest{
		{"abc", "abc"},
		{"42", "42"},
		{"a b", `"a b"`},
		{"", `""`},
		{"{", `"{"`},
		{"a#b", `"a#b"`},
		{"x=y", `"x=y"`},
		{"k:v", `"k:v"`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{`say "hi"`, `"say \"hi\""`},
		{"tab\there", "\"tab\there\""},
	}
	for _, tc := range tests {
		if got := encode.EscapeString(tc.in); got != tc.want {
			t.Errorf("EscapeString(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{"say \"hi\"\n", `a\b`, "x y z", "#not a comment", "[]", "plain"} {
		y, err := parse.ParseValue([]byte(encode.EscapeString(s)))
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if y.String != s {
			t.Errorf("round trip of %q gave %q", s, y.String)
		}
	}
}

func TestIdempotent(t *testing.T) {
	docs := []string{
		"a 1 b [x y z] c { d { e true f null } g [ {h 1} {h 2} ] }",
		`s "with space" t "quote\"d" u "multi\nline" dup 1 dup 2`,
		"n -42 hex 0xff list [[] {} [1 [2]]]",
		"# only a comment",
	}
	for _, d := range docs {
		first, err := parse.Parse([]byte(d))
		if err != nil {
			t.Fatal(err)
		}
		buf := &bytes.Buffer{}
		if err := encode.EncodeDocument(first, buf); err != nil {
			t.Fatal(err)
		}
		second, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("reparse %q: %v", buf.String(), err)
		}
		if !ir.Equal(first, second) {
			t.Errorf("not idempotent: %q encoded as %q", d, buf.String())
		}
		again := &bytes.Buffer{}
		if err := encode.EncodeDocument(second, again); err != nil {
			t.Fatal(err)
		}
		if again.String() != buf.String() {
			t.Errorf("canonical output changed:\n%s\n%s", buf.String(), again.String())
		}
	}
}

func TestEncodeScalar(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(ir.FromInt(5), buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "5" {
		t.Errorf("got %q", buf.String())
	}
	err := encode.EncodeDocument(ir.FromInt(5), buf)
	if !errors.Is(err, encode.ErrEncoding) {
		t.Errorf("document of scalar: %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()
	y := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("b")}})
	colored := encode.MustString(y, encode.EncodeColors(encode.NewColors()))
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("expected escape sequences in %q", colored)
	}
	plain := encode.MustString(y, encode.EncodeColors(nil))
	if plain != "{\n    a b\n}" {
		t.Errorf("plain: %q", plain)
	}
}
