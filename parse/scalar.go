package parse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gon-format/go-gon/ir"
)

// Scalar types the text of a scalar token.
func Scalar(s string) *ir.Node {
	switch s {
	case "null":
		return &ir.Node{Type: ir.NullType, String: s}
	case "true", "false":
		return &ir.Node{Type: ir.BoolType, String: s, Bool: s == "true"}
	}
	y := &ir.Node{Type: ir.StringType, String: s}
	i, iok := parseInt(s)
	f, fok := parseFloat(s)
	switch {
	case iok && fok:
		y.Int64, y.Float64 = i, f
	case iok:
		y.Int64, y.Float64 = i, float64(i)
	case fok:
		y.Int64, y.Float64 = ir.Truncate(f), f
	default:
		return y
	}
	y.Type = ir.NumberType
	y.Bool = y.Float64 != 0
	return y
}

// parseInt accepts what strtol accepts with base 0 when it consumes the
// whole text. Out of range values saturate.
func parseInt(s string) (int64, bool) {
	if s == "" || strings.IndexByte(s, '_') != -1 {
		return 0, false
	}
	b := s
	if b[0] == '+' || b[0] == '-' {
		b = b[1:]
	}
	if len(b) > 1 && b[0] == '0' {
		switch b[1] {
		case 'b', 'B', 'o', 'O':
			return 0, false
		}
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return i, true
		}
		return 0, false
	}
	return i, true
}

func parseFloat(s string) (float64, bool) {
	if s == "" || strings.IndexByte(s, '_') != -1 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}
