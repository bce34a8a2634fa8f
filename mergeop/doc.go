// Package mergeop combines GON trees.
//
// Every operation merges a source tree into a destination tree in place.
// The source is never modified and never shared: whatever is taken from
// it is copied.
//
//   - [Append] adds every source child to the destination. Object children
//     with a name already present shadow the earlier child.
//   - [ShallowMerge] replaces same-named object children wholesale.
//   - [DeepMerge] recurses into same-named object children and into
//     arrays position by position, asking a [Policy] how to combine each
//     pair of nodes.
//   - [PatchMerge] is like DeepMerge but reads the [Mode] of each node from
//     a suffix on its name in the patch: .overwrite, .append, .merge, .add
//     or .multiply.
//
// Append and ShallowMerge report kind mismatches through the configured
// [ir.Reporter]. DeepMerge and PatchMerge resolve them by replacing the
// destination with a copy of the source.
package mergeop
