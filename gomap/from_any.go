package gomap

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/gon-format/go-gon/ir"

	"github.com/goccy/go-yaml"
)

// FromAny converts a Go value into a tree. Maps with keys other than
// yaml.MapSlice are ordered by the text of their keys.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			c, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(item.Key), Val: c})
		}
		return ir.FromKeyVals(kvs), nil
	case yaml.MapItem:
		return FromAny(yaml.MapSlice{x})
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return ir.FromFloat(float64(u)), nil
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(rv.Float()), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		vs := make([]*ir.Node, 0, rv.Len())
		for i := range rv.Len() {
			c, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs = append(vs, c)
		}
		return ir.FromSlice(vs), nil
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			ka, kb := keyString(a.Interface()), keyString(b.Interface())
			switch {
			case ka < kb:
				return -1
			case ka > kb:
				return 1
			}
			return 0
		})
		kvs := make([]ir.KeyVal, 0, len(keys))
		for _, k := range keys {
			c, err := FromAny(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(k.Interface()), Val: c})
		}
		return ir.FromKeyVals(kvs), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a gon value", v)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
