package gomap

import (
	"github.com/gon-format/go-gon/ir"

	"github.com/goccy/go-yaml"
)

// ToAny converts node into strings, bools, int64s, float64s, nil,
// []any and [yaml.MapSlice] values.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Values))
		for _, c := range node.Values {
			res = append(res, yaml.MapItem{Key: c.Name, Value: ToAny(c)})
		}
		return res
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, c := range node.Values {
			res = append(res, ToAny(c))
		}
		return res
	default:
		return scalar(node)
	}
}

// ToMap is like ToAny but converts objects to map[string]any.
func ToMap(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Values))
		for _, c := range node.Values {
			res[c.Name] = ToMap(c)
		}
		return res
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, c := range node.Values {
			res = append(res, ToMap(c))
		}
		return res
	default:
		return scalar(node)
	}
}

func scalar(node *ir.Node) any {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if float64(node.Int64) == node.Float64 {
			return node.Int64
		}
		return node.Float64
	default:
		return nil
	}
}
