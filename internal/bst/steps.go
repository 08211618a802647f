package bst

// InsertSteps inserts v like Insert and records the descent that placed it.
func (t *Tree[T]) InsertSteps(v T) []Step[T] {
	var steps []Step[T]
	for n := t.root; n != nilNode; {
		cur := t.nodes[n].value
		switch {
		case v < cur:
			steps = append(steps, t.step(ActionVisitLeft, v, cur))
			n = t.nodes[n].left
		case v > cur:
			steps = append(steps, t.step(ActionVisitRight, v, cur))
			n = t.nodes[n].right
		default:
			return append(steps, t.step(ActionDuplicate, v, cur))
		}
	}
	t.Insert(v)
	return append(steps, t.step(ActionInsert, v, v))
}

// DeleteSteps deletes v like Delete and records the search for it, the successor
// copy for two-child nodes, and the removal.
func (t *Tree[T]) DeleteSteps(v T) []Step[T] {
	var steps []Step[T]
	for n := t.root; n != nilNode; {
		nd := t.nodes[n]
		switch {
		case v < nd.value:
			steps = append(steps, t.step(ActionVisitLeft, v, nd.value))
			n = nd.left
		case v > nd.value:
			steps = append(steps, t.step(ActionVisitRight, v, nd.value))
			n = nd.right
		default:
			if nd.left != nilNode && nd.right != nilNode {
				steps = append(steps, t.step(ActionReplace, v, t.minFrom(nd.right)))
			}
			t.Delete(v)
			return append(steps, t.step(ActionRemove, v, v))
		}
	}
	var zero T
	return append(steps, t.step(ActionMissing, v, zero))
}

func (t *Tree[T]) step(a Action, v, at T) Step[T] {
	return Step[T]{Action: a, Value: v, At: at, Tree: t.Snapshot()}
}
