package mergeop

import "slices"

// Symbol is a merge mode as it is spelled in patch field names.
type Symbol interface {
	String() string
	Suffix() string
	Mode() Mode
}

type name string

func (s name) String() string {
	return string(s)
}

func (s name) Suffix() string {
	return "." + string(s)
}

type modeSymbol struct {
	name
	mode Mode
}

func (s modeSymbol) Mode() Mode {
	return s.mode
}

const (
	overwriteName name = "overwrite"
	appendName    name = "append"
	mergeName     name = "merge"
	addName       name = "add"
	multiplyName  name = "multiply"
)

// detection order: the first matching suffix wins
var symbols = []Symbol{
	modeSymbol{name: overwriteName, mode: Overwrite},
	modeSymbol{name: appendName, mode: Append},
	modeSymbol{name: mergeName, mode: Merge},
	modeSymbol{name: addName, mode: Add},
	modeSymbol{name: multiplyName, mode: Multiply},
}

// Symbols returns the patch suffix symbols in detection order.
func Symbols() []Symbol {
	return slices.Clone(symbols)
}

func Lookup(s string) (Symbol, bool) {
	for _, sym := range symbols {
		if sym.String() == s {
			return sym, true
		}
	}
	return nil, false
}
