package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed query such as $.a.b[0], $.list[*] or $..name.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	sub := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			b.WriteString("..")
		case x.IndexAll:
			b.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(&b, "[%d]", *x.Index)
		case x.Field != nil:
			if !sub {
				b.WriteByte('.')
			}
			b.WriteString(QuoteField(*x.Field))
		}
		sub = x.Subtree
	}
	return b.String()
}

// selects reports whether p carries a selector.
func (p *Path) selects() bool {
	return p.Subtree || p.IndexAll || p.Index != nil || p.Field != nil
}

func ParsePath(p string) (*Path, error) {
	if p == "" || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	cur := root
	rest := p[1:]
	for rest != "" {
		if cur.selects() {
			cur.Next = &Path{}
			cur = cur.Next
		}
		var err error
		switch {
		case strings.HasPrefix(rest, ".."):
			cur.Subtree = true
			rest = rest[2:]
			if rest != "" && rest[0] != '[' {
				rest = "." + rest
			}
		case rest[0] == '.':
			var field string
			field, rest, err = parseField(rest[1:])
			cur.Field = &field
		case rest[0] == '[':
			i := strings.IndexByte(rest, ']')
			if i == -1 {
				return nil, fmt.Errorf("path %q: expected '[' <index> ']'", p)
			}
			var index int
			index, cur.IndexAll, err = parseIndex(rest[1:i])
			if !cur.IndexAll {
				cur.Index = &index
			}
			rest = rest[i+1:]
		default:
			return nil, fmt.Errorf("path %q: expected '.' or '[' at %q", p, rest)
		}
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", p, err)
		}
	}
	return root, nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath resolves a path with no wildcards against y. It returns
// [Missing] when a field or index is absent. The result is owned by y.
func (y *Node) GetPath(p string) (*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.IndexAll:
			return nil, fmt.Errorf("wildcard index in %q", p)
		case yp.Subtree:
			return nil, fmt.Errorf("recursive descent in %q", p)
		case yp.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%q: index into %s", p, res.Type)
			}
			res = res.Index(*yp.Index)
		case yp.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%q: field of %s", p, res.Type)
			}
			res = res.Get(*yp.Field)
		}
		if res.IsMissing() {
			return res, nil
		}
	}
	return res, nil
}

// QuoteField renders a field name for use in a path.
func QuoteField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// ListPath appends to dst every node matching p. Fields shadowed by a later
// child of the same name match too. Results are clones.
func (y *Node) ListPath(dst []*Node, p string) ([]*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if yp == nil || !yp.selects() {
		return append(dst, y.Clone()), nil
	}
	if yp.Subtree {
		err := y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost || node.Type.IsLeaf() {
				return false, nil
			}
			var err error
			dst, err = node.listPath(dst, yp.Next)
			return err == nil, err
		})
		if err != nil {
			return nil, err
		}
		return dst, nil
	}
	var children []*Node
	switch {
	case yp.Field != nil && y.Type == ObjectType:
		for _, c := range y.Values {
			if c.Name == *yp.Field {
				children = append(children, c)
			}
		}
	case yp.Index != nil && y.Type == ArrayType:
		if i := *yp.Index; 0 <= i && i < len(y.Values) {
			children = y.Values[i : i+1]
		}
	case yp.IndexAll && y.Type == ArrayType:
		children = y.Values
	}
	var err error
	for _, c := range children {
		if dst, err = c.listPath(dst, yp.Next); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
