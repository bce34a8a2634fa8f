// Package libdiff compares GON trees.
//
// [Diff] reports structural changes by path. Arrays are aligned with a
// sequence diff over summaries of their elements, so an insertion in
// the middle of an array does not show up as a change to every later
// element. [Lines] and [WriteLines] give a line diff of the encoded text.
package libdiff
