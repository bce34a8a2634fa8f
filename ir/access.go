package ir

import (
	"iter"
	"math"
)

func (y *Node) lookup(name string) (int, bool) {
	if y.Type != ObjectType {
		return -1, false
	}
	if y.index != nil {
		i, ok := y.index[name]
		if !ok {
			return -1, false
		}
		if i < len(y.Values) && y.Values[i].Name == name {
			return i, true
		}
	}
	// no index, or Values were edited without Reindex
	for i := len(y.Values) - 1; i >= 0; i-- {
		if y.Values[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// FieldIndex returns the slot of the child reachable as name, or -1.
func (y *Node) FieldIndex(name string) int {
	i, _ := y.lookup(name)
	return i
}

// Get returns the latest child named name, or [Missing].
func (y *Node) Get(name string) *Node {
	i, ok := y.lookup(name)
	if !ok {
		return missing
	}
	return y.Values[i]
}

// Index returns the i'th child, or [Missing]. A scalar is its own only
// element.
func (y *Node) Index(i int) *Node {
	switch y.Type {
	case ObjectType, ArrayType:
		if i < 0 || i >= len(y.Values) {
			return missing
		}
		return y.Values[i]
	default:
		if i != 0 || y == missing {
			return missing
		}
		return y
	}
}

// Field is the strict form of Get.
func (y *Node) Field(name string) (*Node, error) {
	i, ok := y.lookup(name)
	if !ok {
		return nil, &TypeError{Field: name, Missing: true}
	}
	return y.Values[i], nil
}

func (y *Node) Contains(name string) bool {
	_, ok := y.lookup(name)
	return ok
}

func (y *Node) ContainsIndex(i int) bool {
	return y.Index(i) != missing
}

// ChildOrSelf returns the child named name if there is one, y otherwise.
func (y *Node) ChildOrSelf(name string) *Node {
	if i, ok := y.lookup(name); ok {
		return y.Values[i]
	}
	return y
}

// Exists reports whether y is anything but null.
func (y *Node) Exists() bool {
	return y.Type != NullType
}

// Size is the number of children, 0 for null or 1 for another scalar.
func (y *Node) Size() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	case NullType:
		return 0
	default:
		return 1
	}
}

// All iterates over the children of y. A scalar other than null yields
// itself once.
func (y *Node) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		switch y.Type {
		case ObjectType, ArrayType:
			for i, c := range y.Values {
				if !yield(i, c) {
					return
				}
			}
		case NullType:
		default:
			yield(0, y)
		}
	}
}

func (y *Node) typeErr(want string) error {
	return &TypeError{Field: y.Name, Want: want, Got: y.Type, Missing: y == missing}
}

func (y *Node) AsString() (string, error) {
	if !y.Type.IsScalarText() {
		return "", y.typeErr("string")
	}
	return y.String, nil
}

func (y *Node) AsInt() (int64, error) {
	if y.Type != NumberType {
		return 0, y.typeErr("number")
	}
	return y.Int64, nil
}

func (y *Node) AsNumber() (float64, error) {
	if y.Type != NumberType {
		return 0, y.typeErr("number")
	}
	return y.Float64, nil
}

func (y *Node) AsBool() (bool, error) {
	if y.Type != BoolType {
		return false, y.typeErr("bool")
	}
	return y.Bool, nil
}

func (y *Node) AsStringOr(def string) string {
	if v, err := y.AsString(); err == nil {
		return v
	}
	return def
}

func (y *Node) AsIntOr(def int64) int64 {
	if v, err := y.AsInt(); err == nil {
		return v
	}
	return def
}

func (y *Node) AsNumberOr(def float64) float64 {
	if v, err := y.AsNumber(); err == nil {
		return v
	}
	return def
}

func (y *Node) AsBoolOr(def bool) bool {
	if v, err := y.AsBool(); err == nil {
		return v
	}
	return def
}

// Equal reports whether a and b have the same kinds, names, scalar values
// and child order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type || a.Name != b.Name {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case StringType:
		return a.String == b.String
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if a.Int64 != b.Int64 {
			return false
		}
		return a.Float64 == b.Float64 || (math.IsNaN(a.Float64) && math.IsNaN(b.Float64))
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}
