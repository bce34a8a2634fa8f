// Package token provides tokenization support for GON.
//
// [Tokenize] splits a document into structural tokens ('{', '}', '[', ']')
// and scalar tokens. Separators ('=', ',', ':'), whitespace and '#' line
// comments are dropped. Quoted strings have their escapes resolved and are
// returned as a single [TString] token.
package token
