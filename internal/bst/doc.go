// Package bst implements an ordered binary search tree whose nodes live in an arena and
// reference their children by index. A node exclusively owns its two child slots, so
// cycles and shared subtrees cannot be built.
//
// Mutation is untraced ([Tree.Insert], [Tree.Delete]) or traced ([Tree.InsertSteps],
// [Tree.DeleteSteps]); both variants leave the tree in the same state. [Tree.Traverse]
// is a pure read producing a fresh value sequence.
//
// # Thread Safety
//
// A Tree is NOT safe for concurrent use. Callers must not mutate it while a traversal
// result or snapshot is being produced.
package bst
