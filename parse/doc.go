// Package parse builds [ir.Node] trees from GON text.
//
// [Parse] reads a whole document: the text is the body of an implicit
// object, so the result is always an object. [ParseValue] reads a single
// value with no implicit braces.
//
// Scalars are typed by inspecting their text. A token which reads fully as
// a C-style integer (sign, 0x hex and leading-zero octal are recognized)
// or as a floating point number is a Number, carrying both an integer and
// a floating point view. The exact texts null, true and false are Null and
// Bool. Everything else is a String. Quoting a token never changes its
// type; quotes only let a scalar contain whitespace, separators or symbols.
package parse
