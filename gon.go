package gon

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gon-format/go-gon/encode"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/mergeop"
	"github.com/gon-format/go-gon/parse"
)

// Load reads and parses the document at path.
func Load(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return load(d, path, opts)
}

// LoadFS reads and parses the document at path in fsys.
func LoadFS(fsys fs.FS, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return load(d, path, opts)
}

func load(d []byte, path string, opts []parse.ParseOption) (*ir.Node, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// LoadFromBuffer parses text as a document.
func LoadFromBuffer(text string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse([]byte(text), opts...)
}

// Save writes node, which must be an object, as a document to path,
// replacing any existing file.
func Save(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	buf := &bytes.Buffer{}
	if err := Write(buf, node, opts...); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Write writes node, which must be an object, as a document to w.
func Write(w io.Writer, node *ir.Node, opts ...encode.EncodeOption) error {
	return encode.EncodeDocument(node, w, opts...)
}

// Patch returns a copy of doc with patch applied by [mergeop.PatchMerge].
func Patch(doc, patch *ir.Node, opts ...mergeop.Option) (*ir.Node, error) {
	res := doc.Clone()
	if err := mergeop.PatchMerge(res, patch, opts...); err != nil {
		return nil, err
	}
	return res, nil
}

// Merge returns a copy of dst with src merged in by the merge operation
// called name (see [mergeop.ByName]).
func Merge(name string, dst, src *ir.Node, opts ...mergeop.Option) (*ir.Node, error) {
	f, err := mergeop.ByName(name)
	if err != nil {
		return nil, err
	}
	res := dst.Clone()
	if err := f(res, src, opts...); err != nil {
		return nil, err
	}
	return res, nil
}
