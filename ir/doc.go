// Package ir provides the in-memory representation of GON documents.
//
// A document is a tree of [Node] values. Every node has a [Type]; scalars
// carry their payload in String, Int64, Float64 and Bool, containers carry
// their children in Values. Object children are named and looked up through
// a name index which always resolves to the most recently inserted child of
// that name. Earlier children with the same name stay in Values.
//
// Lookups never fail: [Node.Get] and [Node.Index] return the shared
// [Missing] node when nothing is found, so chained access into optional
// structure is safe. The strict accessors ([Node.AsString] and friends)
// return a [*TypeError] instead.
//
// Every node exclusively owns its children. Functions that insert a node
// into a tree either clone it or document that they take ownership.
package ir
