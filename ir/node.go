package ir

import (
	"math"
	"strconv"
)

type Node struct {
	Type Type
	// Name is the key of an object child. It is empty for array elements
	// and for the root.
	Name string

	String  string
	Int64   int64
	Float64 float64
	Bool    bool

	Values []*Node

	index map[string]int
}

var missing = &Node{Type: NullType}

// Missing returns the shared node handed out by lookups that find nothing.
// It reads as Null and must never be modified; merges into it fail with
// [ErrMergeType].
func Missing() *Node {
	return missing
}

// IsMissing reports whether y is the shared [Missing] node.
func (y *Node) IsMissing() bool {
	return y == missing
}

func Null() *Node {
	return &Node{Type: NullType, String: "null"}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v, String: strconv.FormatBool(v)}
}

func FromInt(v int64) *Node {
	y := &Node{Type: NumberType}
	y.SetInt(v)
	return y
}

func FromFloat(v float64) *Node {
	y := &Node{Type: NumberType}
	y.SetFloat(v)
	return y
}

// FromSlice builds an array. It takes ownership of vs.
func FromSlice(vs []*Node) *Node {
	y := &Node{Type: ArrayType, Values: make([]*Node, 0, len(vs))}
	for _, v := range vs {
		y.AddChild(v)
	}
	return y
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object. It takes ownership of the values.
func FromKeyVals(kvs []KeyVal) *Node {
	y := &Node{Type: ObjectType, Values: make([]*Node, 0, len(kvs))}
	for _, kv := range kvs {
		kv.Val.Name = kv.Key
		y.AddChild(kv.Val)
	}
	return y
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// SetInt makes y the number v, keeping every numeric view in sync.
func (y *Node) SetInt(v int64) {
	y.Type = NumberType
	y.Int64 = v
	y.Float64 = float64(v)
	y.Bool = v != 0
	y.String = strconv.FormatInt(v, 10)
}

// SetFloat makes y the number v. The integer view is v truncated toward
// zero and saturated at the int64 range.
func (y *Node) SetFloat(v float64) {
	y.Type = NumberType
	y.Float64 = v
	y.Int64 = Truncate(v)
	y.Bool = v != 0
	if v == math.Trunc(v) && float64(y.Int64) == v {
		y.String = strconv.FormatInt(y.Int64, 10)
		return
	}
	y.String = strconv.FormatFloat(v, 'f', -1, 64)
}

// Truncate converts v to an int64 toward zero, saturating out of range
// values and mapping NaN to 0.
func Truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// AddChild appends c to y, taking ownership of it. Object children keep
// their Name and become the target of lookups by that name. Array children
// lose their Name. AddChild does nothing on scalars.
func (y *Node) AddChild(c *Node) {
	switch y.Type {
	case ObjectType:
		if y.index == nil {
			y.Reindex()
		}
		y.Values = append(y.Values, c)
		y.index[c.Name] = len(y.Values) - 1
	case ArrayType:
		c.Name = ""
		y.Values = append(y.Values, c)
	}
}

// SetChild replaces the child at slot i with c, taking ownership of it.
// c takes over the Name of the child it replaces.
func (y *Node) SetChild(i int, c *Node) {
	if y.Type == ObjectType {
		c.Name = y.Values[i].Name
	} else {
		c.Name = ""
	}
	y.Values[i] = c
}

// Assign overwrites y with a deep copy of src. y keeps its Name.
func (y *Node) Assign(src *Node) {
	name := y.Name
	*y = *src.Clone()
	y.Name = name
}

// InsertChild inserts a copy of c under name. A Null y becomes an empty
// object first. Inserting into an array ignores name.
func (y *Node) InsertChild(name string, c *Node) error {
	if y == missing {
		return &MergeTypeError{Op: "insert", Dst: NullType, Src: c.Type, Missing: true}
	}
	if y.Type == NullType {
		y.Type = ObjectType
		y.String = ""
	}
	switch y.Type {
	case ObjectType:
		cc := c.Clone()
		cc.Name = name
		y.AddChild(cc)
	case ArrayType:
		y.AddChild(c.Clone())
	default:
		return &MergeTypeError{Op: "insert", Dst: y.Type, Src: c.Type}
	}
	return nil
}

// Reindex rebuilds the name index of an object. Code which edits Values
// directly must call it before the next lookup.
func (y *Node) Reindex() {
	if y.Type != ObjectType {
		y.index = nil
		return
	}
	y.index = make(map[string]int, len(y.Values))
	for i, c := range y.Values {
		y.index[c.Name] = i
	}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		Name:    y.Name,
		String:  y.String,
		Int64:   y.Int64,
		Float64: y.Float64,
		Bool:    y.Bool,
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, c := range y.Values {
			res.Values[i] = c.Clone()
		}
	}
	if y.Type == ObjectType {
		res.Reindex()
	}
	return res
}

// Visit walks y depth first. f is called before (isPost false) and after
// (isPost true) the children of each node; returning false from the pre
// call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	ok, err := f(y, false)
	if err != nil {
		return err
	}
	if ok {
		for _, c := range y.Values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}
