package mergeop

import (
	"fmt"
	"strings"

	"github.com/gon-format/go-gon/ir"
)

// Mode says how a source node is combined into a destination node.
type Mode int

const (
	Default Mode = iota
	Append
	Merge
	Overwrite
	Add
	Multiply
)

func (m Mode) String() string {
	switch m {
	case Default:
		return "default"
	case Append:
		return "append"
	case Merge:
		return "merge"
	case Overwrite:
		return "overwrite"
	case Add:
		return "add"
	case Multiply:
		return "multiply"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	if s == Default.String() {
		return Default, nil
	}
	sym, ok := Lookup(s)
	if !ok {
		return Default, fmt.Errorf("unknown merge mode %q", s)
	}
	return sym.Mode(), nil
}

// ModeOf returns the mode named by the suffix of a patch field name, or
// Default when there is none.
func ModeOf(name string) Mode {
	for _, s := range symbols {
		if strings.HasSuffix(name, s.Suffix()) {
			return s.Mode()
		}
	}
	return Default
}

// TrimSuffixes removes each mode suffix from the end of name, at most once
// each, in the order of [Symbols].
func TrimSuffixes(name string) string {
	for _, s := range symbols {
		name = strings.TrimSuffix(name, s.Suffix())
	}
	return name
}

// StripSuffixes trims mode suffixes from the names of every node below y.
func StripSuffixes(y *ir.Node) {
	for _, c := range y.Values {
		c.Name = TrimSuffixes(c.Name)
		StripSuffixes(c)
	}
	if y.Type == ir.ObjectType {
		y.Reindex()
	}
}
