// Package encode writes [ir.Node] trees as GON text.
//
// Objects open with '{' and list one field per line, indented one unit
// deeper than their parent. Arrays whose elements are all scalars and
// whose string elements are short in total are written on one line;
// other arrays list one element per line. Numbers are written as their
// integer view, so fractional values lose their fraction.
//
//	y := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")})},
//	})
//	err := encode.EncodeDocument(y, os.Stdout)
//
// writes
//
//	name alice
//	tags [a b]
//
// # Related Packages
//
//   - github.com/gon-format/go-gon/parse - parse GON text
//   - github.com/gon-format/go-gon/ir - the node model
package encode
