// Package graph provides an undirected, unweighted, simple graph over integer node IDs
// and breadth-first / depth-first traversal traces over it.
//
// Adjacency is symmetric: an edge is added to both endpoints or to neither. Self-loops
// and repeated edges are rejected at insertion. Traversal edges are reported in
// canonical form (smaller endpoint first) so they can be matched against [View] edges
// regardless of the direction they were crossed.
//
// # Thread Safety
//
// A Graph is NOT safe for concurrent use.
package graph
