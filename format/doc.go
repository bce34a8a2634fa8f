// Package format names the text formats the gon tools read and write.
//
// GON is the native format. JSON and YAML are converted through
// github.com/gon-format/go-gon/gomap.
package format
