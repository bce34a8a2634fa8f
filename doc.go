// Package gon reads and writes GON documents.
//
// A GON document is the body of an object: a sequence of name value
// pairs, where a value is a scalar, a {...} object or a [...] array.
//
//	name app
//	ports [80 443]
//	limits { cpu 2 memory "1Gi" }
//
// [Load] and [LoadFromBuffer] parse documents into [ir.Node] trees,
// [Save] and [Write] write them back. [Patch] and [Merge] combine trees
// without touching their inputs; package mergeop holds the in-place
// operations and describes the patch suffixes.
package gon
