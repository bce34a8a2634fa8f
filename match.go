package gon

import (
	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/ir"
)

// Match reports whether doc contains match. A null in match matches
// anything; an object matches objects having matching fields for each of
// its fields, looked up by name; an array matches arrays of the same
// length whose elements match in order. Other values match equal values.
func Match(doc, match *ir.Node) bool {
	if debug.Match() {
		debug.Logger().Debug("match", "doc", doc.Type, "match", match.Type, "name", match.Name)
	}
	if match.Type == ir.NullType {
		return true
	}
	if doc.Type != match.Type {
		return false
	}
	switch match.Type {
	case ir.ObjectType:
		return matchObj(doc, match)
	case ir.ArrayType:
		return matchArray(doc, match)
	case ir.StringType:
		return doc.String == match.String
	case ir.BoolType:
		return doc.Bool == match.Bool
	case ir.NumberType:
		return doc.Int64 == match.Int64 && doc.Float64 == match.Float64
	}
	return false
}

func matchObj(doc, match *ir.Node) bool {
	for _, mc := range match.Values {
		dc := doc.Get(mc.Name)
		if dc.IsMissing() || !Match(dc, mc) {
			return false
		}
	}
	return true
}

func matchArray(doc, match *ir.Node) bool {
	if len(doc.Values) != len(match.Values) {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], match.Values[i]) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc holding only what match mentions. Object
// fields absent from match are dropped. For arrays, each element of match
// keeps the first unused element of doc it matches.
func Trim(match, doc *ir.Node) *ir.Node {
	switch {
	case match.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		res := ir.NewObject()
		res.Name = doc.Name
		for _, dc := range doc.Values {
			mc := match.Get(dc.Name)
			if mc.IsMissing() {
				continue
			}
			t := Trim(mc, dc)
			t.Name = dc.Name
			res.AddChild(t)
		}
		return res
	case match.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		res := ir.NewArray()
		res.Name = doc.Name
		used := make([]bool, len(doc.Values))
		for _, mc := range match.Values {
			for i, dc := range doc.Values {
				if used[i] || !Match(dc, mc) {
					continue
				}
				res.AddChild(Trim(mc, dc))
				used[i] = true
				break
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
