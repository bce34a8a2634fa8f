// Package gomap converts between GON trees and plain Go values.
//
// Objects become [yaml.MapSlice] values, which keep field order and
// shadowed duplicates, so a tree survives a trip through YAML or JSON
// text. [ToMap] builds ordinary maps instead, for consumers which index by
// key; there the latest field of a name wins, as it does for lookups.
package gomap
