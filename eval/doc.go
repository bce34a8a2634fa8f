// Package eval evaluates expr-lang expressions against GON documents.
//
// The fields of the document are the variables of the expression
// environment, and the functions getpath, listpath, whereami and getenv
// give access to paths and the process environment.
//
// [ExpandNode] interpolates $[expr] references inside string values, and
// replaces strings of the form .[expr] with the value of expr.
package eval
