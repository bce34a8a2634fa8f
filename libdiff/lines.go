package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text renders node the way it is written to a file: objects as a
// document body, anything else as a single value followed by a newline.
func Text(node *ir.Node) string {
	buf := &bytes.Buffer{}
	if node.Type == ir.ObjectType {
		encode.EncodeDocument(node, buf)
		return buf.String()
	}
	return encode.MustString(node) + "\n"
}

// Lines diffs from and to line by line.
func Lines(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// WriteLines writes diffs with a "-", "+" or " " prefix on each line.
func WriteLines(w io.Writer, diffs []diffpatch.Diff, c *Colors) error {
	for _, d := range diffs {
		var op Op
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			op, prefix = Insert, "+"
		case diffpatch.DiffDelete:
			op, prefix = Delete, "-"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			ln = prefix + ln
			if d.Type != diffpatch.DiffEqual {
				ln = c.paint(op, ln)
			}
			if _, err := io.WriteString(w, ln+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Changed reports whether diffs hold any insertion or deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}
