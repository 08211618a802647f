package bst

import (
	"golang.org/x/exp/constraints"
)

const nilNode = -1

type node[T constraints.Ordered] struct {
	value       T
	left, right int
}

// Tree is a binary search tree with strict ordering: left subtree < node < right
// subtree. The zero value is not usable; create trees with New.
type Tree[T constraints.Ordered] struct {
	nodes []node[T]
	free  []int
	root  int
	size  int
}

func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{root: nilNode}
}

// Insert adds v. Inserting a value already present is a no-op.
func (t *Tree[T]) Insert(v T) {
	t.root = t.insert(t.root, v)
}

func (t *Tree[T]) insert(n int, v T) int {
	if n == nilNode {
		return t.alloc(v)
	}
	// the arena may grow during the recursive call, so index t.nodes only afterwards
	switch cur := t.nodes[n].value; {
	case v < cur:
		l := t.insert(t.nodes[n].left, v)
		t.nodes[n].left = l
	case v > cur:
		r := t.insert(t.nodes[n].right, v)
		t.nodes[n].right = r
	}
	return n
}

// Delete removes v. Deleting an absent value is a no-op. A node with two children
// takes the minimum of its right subtree, which is then deleted from that subtree.
func (t *Tree[T]) Delete(v T) {
	t.root = t.remove(t.root, v)
}

func (t *Tree[T]) remove(n int, v T) int {
	if n == nilNode {
		return nilNode
	}
	cur := t.nodes[n]
	switch {
	case v < cur.value:
		t.nodes[n].left = t.remove(cur.left, v)
	case v > cur.value:
		t.nodes[n].right = t.remove(cur.right, v)
	case cur.left == nilNode:
		t.release(n)
		return cur.right
	case cur.right == nilNode:
		t.release(n)
		return cur.left
	default:
		succ := t.minFrom(cur.right)
		t.nodes[n].value = succ
		t.nodes[n].right = t.remove(cur.right, succ)
	}
	return n
}

func (t *Tree[T]) minFrom(n int) T {
	for t.nodes[n].left != nilNode {
		n = t.nodes[n].left
	}
	return t.nodes[n].value
}

func (t *Tree[T]) alloc(v T) int {
	t.size++
	nd := node[T]{value: v, left: nilNode, right: nilNode}
	if k := len(t.free); k > 0 {
		i := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[i] = nd
		return i
	}
	t.nodes = append(t.nodes, nd)
	return len(t.nodes) - 1
}

func (t *Tree[T]) release(n int) {
	t.size--
	t.nodes[n] = node[T]{left: nilNode, right: nilNode}
	t.free = append(t.free, n)
}

// Clear discards every node.
func (t *Tree[T]) Clear() {
	t.nodes, t.free = nil, nil
	t.root, t.size = nilNode, 0
}

func (t *Tree[T]) Len() int { return t.size }

func (t *Tree[T]) Contains(v T) bool {
	for n := t.root; n != nilNode; {
		switch cur := t.nodes[n].value; {
		case v < cur:
			n = t.nodes[n].left
		case v > cur:
			n = t.nodes[n].right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value, or false for an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nilNode {
		var zero T
		return zero, false
	}
	return t.minFrom(t.root), true
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return t.height(t.root)
}

func (t *Tree[T]) height(n int) int {
	if n == nilNode {
		return 0
	}
	return 1 + max(t.height(t.nodes[n].left), t.height(t.nodes[n].right))
}

// Traverse returns the values in the given order. It does not modify the tree.
func (t *Tree[T]) Traverse(o Order) []T {
	path := make([]T, 0, t.size)
	t.walk(t.root, o, &path)
	return path
}

func (t *Tree[T]) walk(n int, o Order, path *[]T) {
	if n == nilNode {
		return
	}
	nd := t.nodes[n]
	if o == PreOrder {
		*path = append(*path, nd.value)
	}
	t.walk(nd.left, o, path)
	if o == InOrder {
		*path = append(*path, nd.value)
	}
	t.walk(nd.right, o, path)
	if o == PostOrder {
		*path = append(*path, nd.value)
	}
}

// Snapshot returns a structural copy of the tree, nil when empty.
func (t *Tree[T]) Snapshot() *View[T] {
	return t.view(t.root)
}

func (t *Tree[T]) view(n int) *View[T] {
	if n == nilNode {
		return nil
	}
	nd := t.nodes[n]
	return &View[T]{Value: nd.value, Left: t.view(nd.left), Right: t.view(nd.right)}
}
