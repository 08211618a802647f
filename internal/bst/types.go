package bst

import (
	"strings"

	"github.com/san-kum/algotrace/internal/trace"
)

// Order selects a depth-first traversal order.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	}
	return "unknown"
}

// ParseOrder maps "inorder", "preorder" or "postorder" to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inorder", "in":
		return InOrder, nil
	case "preorder", "pre":
		return PreOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	}
	return 0, trace.InvalidArgument("unknown traversal order %q", s)
}

// View is a read-only structural copy of a tree for rendering.
type View[T any] struct {
	Value T        `json:"value" yaml:"value"`
	Left  *View[T] `json:"left,omitempty" yaml:"left,omitempty"`
	Right *View[T] `json:"right,omitempty" yaml:"right,omitempty"`
}

// Action names one event of a traced mutation.
type Action string

const (
	ActionVisitLeft  Action = "visit-left"
	ActionVisitRight Action = "visit-right"
	ActionInsert     Action = "insert"
	ActionDuplicate  Action = "duplicate"
	ActionReplace    Action = "replace"
	ActionRemove     Action = "remove"
	ActionMissing    Action = "missing"
)

// Step is one event of a traced insert or delete. At is the value of the node the
// action happened at; for ActionReplace it is the successor copied into that node.
// Tree is the shape after the action.
type Step[T any] struct {
	Action Action   `json:"action"`
	Value  T        `json:"value"`
	At     T        `json:"at"`
	Tree   *View[T] `json:"tree,omitempty"`
}
