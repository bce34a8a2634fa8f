package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"g": GonFormat, "gon": GonFormat,
		"y": YAMLFormat, "yaml": YAMLFormat, "yml": YAMLFormat,
		"j": JSONFormat, "json": JSONFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%q: %s %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("xml: %v", err)
	}
}

func TestFromPath(t *testing.T) {
	for in, want := range map[string]Format{
		"a/b.json":  JSONFormat,
		"c.YAML":    YAMLFormat,
		"d.gon":     GonFormat,
		"noext":     GonFormat,
		"weird.txt": GonFormat,
	} {
		if got := FromPath(in); got != want {
			t.Errorf("%q: %s want %s", in, got, want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range []Format{GonFormat, YAMLFormat, JSONFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil || g != f {
			t.Errorf("%s: %s %v", f, g, err)
		}
	}
}
