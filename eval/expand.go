package eval

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/ir"
)

// ExpandNode evaluates the expressions held in the string values of doc,
// in place. A string of the form .[expr] is replaced by the value of expr;
// $[expr] references elsewhere in a string are replaced by the text of
// their values. Inside a reference, a backslash escapes the next byte.
//
// Expressions see the fields of doc as they were before expansion,
// extended by extra.
func ExpandNode(doc *ir.Node, extra Env) error {
	env := DocEnv(doc)
	maps.Copy(env, extra)
	return expandAt(doc, doc, "$", env)
}

func expandAt(root, node *ir.Node, at string, env Env) error {
	switch node.Type {
	case ir.ObjectType:
		for _, c := range node.Values {
			if err := expandAt(root, c, at+"."+ir.QuoteField(c.Name), env); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, c := range node.Values {
			if err := expandAt(root, c, at+"["+strconv.Itoa(i)+"]", env); err != nil {
				return err
			}
		}
	case ir.StringType:
		if src, ok := rawRef(node.String); ok {
			x, err := run(root, at, src, env)
			if err != nil {
				return err
			}
			repl, err := gomap.FromAny(x)
			if err != nil {
				return fmt.Errorf("could not translate result of %q at %s: %w", src, at, err)
			}
			node.Assign(repl)
			return nil
		}
		s, err := expandString(node.String, root, at, env)
		if err != nil {
			return err
		}
		node.String = s
	}
	return nil
}

// ExpandString replaces the $[expr] references in v with the text of
// their values. Unterminated references are left as they are.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, nil, "$", env)
}

func expandString(v string, root *ir.Node, at string, env Env) (string, error) {
	var out strings.Builder
	for {
		i := strings.Index(v, "$[")
		if i == -1 {
			out.WriteString(v)
			break
		}
		src, n, ok := scanRef(v[i+2:])
		if !ok {
			out.WriteString(v)
			break
		}
		out.WriteString(v[:i])
		x, err := run(root, at, strings.TrimSpace(src), env)
		if err != nil {
			return "", err
		}
		text, err := anyText(x)
		if err != nil {
			return "", fmt.Errorf("could not render result of %q: %w", src, err)
		}
		out.WriteString(text)
		v = v[i+2+n:]
	}
	return out.String(), nil
}

// scanRef reads up to the closing bracket of a reference. n counts the
// bytes consumed, closing bracket included.
func scanRef(s string) (src string, n int, ok bool) {
	var buf []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				buf = append(buf, s[i])
			}
		case ']':
			return string(buf), i + 1, true
		default:
			buf = append(buf, s[i])
		}
	}
	return "", 0, false
}

// rawRef extracts expr from a string of the form .[expr].
func rawRef(s string) (string, bool) {
	if len(s) < 3 || !strings.HasPrefix(s, ".[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	return strings.TrimSpace(s[2 : len(s)-1]), true
}

func anyText(x any) (string, error) {
	if s, ok := x.(string); ok {
		return s, nil
	}
	node, err := gomap.FromAny(x)
	if err != nil {
		return "", err
	}
	if node.Type.IsLeaf() {
		return node.String, nil
	}
	return encode.MustString(node, encode.EncodeIndent(0)), nil
}
