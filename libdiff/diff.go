package libdiff

import (
	"strconv"
	"unicode/utf8"

	"github.com/gon-format/go-gon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order. It
// returns nil when the trees are equal up to the name of the roots.
//
// Object fields are matched by name; the n-th field called x in from
// corresponds to the n-th field called x in to.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, "$", from, to)
}

func diff(res []Change, at string, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return append(res, replace(at, from, to))
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(res, at, from, to)
	case ir.ArrayType:
		return diffArray(res, at, from, to)
	}
	a, b := *from, *to
	a.Name, b.Name = "", ""
	if ir.Equal(&a, &b) {
		return res
	}
	return append(res, replace(at, from, to))
}

type occurrence struct {
	name string
	n    int
}

func occurrences(node *ir.Node) []occurrence {
	seen := map[string]int{}
	res := make([]occurrence, len(node.Values))
	for i, c := range node.Values {
		res[i] = occurrence{name: c.Name, n: seen[c.Name]}
		seen[c.Name]++
	}
	return res
}

func diffObject(res []Change, at string, from, to *ir.Node) []Change {
	toOcc := occurrences(to)
	toIndex := make(map[occurrence]int, len(toOcc))
	for i, o := range toOcc {
		toIndex[o] = i
	}
	matched := make([]bool, len(to.Values))
	for i, o := range occurrences(from) {
		fc := from.Values[i]
		p := field(at, fc.Name)
		j, ok := toIndex[o]
		if !ok {
			res = append(res, Change{Op: Delete, Path: p, From: fc.Clone()})
			continue
		}
		matched[j] = true
		res = diff(res, p, fc, to.Values[j])
	}
	for j, tc := range to.Values {
		if !matched[j] {
			res = append(res, Change{Op: Insert, Path: field(at, tc.Name), To: tc.Clone()})
		}
	}
	return res
}

// diffArray aligns the elements of from and to with a diff over one rune
// per element summary. Within a run of deletions and insertions, elements
// are paired up by position and compared; the rest are deleted or
// inserted.
func diffArray(res []Change, at string, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	dels, ins := 0, 0
	flush := func() {
		paired := min(dels, ins)
		for range paired {
			res = diff(res, index(at, fi), from.Values[fi], to.Values[ti])
			fi++
			ti++
		}
		for range dels - paired {
			res = append(res, Change{Op: Delete, Path: index(at, fi), From: from.Values[fi].Clone()})
			fi++
		}
		for range ins - paired {
			res = append(res, Change{Op: Insert, Path: index(at, ti), To: to.Values[ti].Clone()})
			ti++
		}
		dels, ins = 0, 0
	}
	for i := range diffs {
		d := &diffs[i]
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			dels += n
		case diffpatch.DiffInsert:
			ins += n
		case diffpatch.DiffEqual:
			flush()
			for range n {
				res = diff(res, index(at, fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
	flush()
	return res
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr is equal for elements that may be compared in place:
// containers of the same kind and equal scalars.
func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		return node.Type.String() + "-" + strconv.FormatInt(node.Int64, 10) + "-" + strconv.FormatFloat(node.Float64, 'g', -1, 64)
	default:
		return node.Type.String()
	}
}

func replace(at string, from, to *ir.Node) Change {
	return Change{Op: Replace, Path: at, From: from.Clone(), To: to.Clone()}
}

func field(at, name string) string {
	return at + "." + ir.QuoteField(name)
}

func index(at string, i int) string {
	return at + "[" + strconv.Itoa(i) + "]"
}
