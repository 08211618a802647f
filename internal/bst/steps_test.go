package bst_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algotrace/internal/bst"
)

func actions(steps []bst.Step[int]) []bst.Action {
	out := make([]bst.Action, len(steps))
	for i, s := range steps {
		out[i] = s.Action
	}
	return out
}

var _ = Describe("Traced mutation", func() {
	var tree *bst.Tree[int]

	BeforeEach(func() {
		tree = build(50, 30, 70, 20, 40)
	})

	It("records the insert descent", func() {
		steps := tree.InsertSteps(35)

		Expect(actions(steps)).To(Equal([]bst.Action{
			bst.ActionVisitLeft, bst.ActionVisitRight, bst.ActionVisitLeft, bst.ActionInsert,
		}))
		Expect(steps[0].At).To(Equal(50))
		Expect(steps[1].At).To(Equal(30))
		Expect(steps[2].At).To(Equal(40))
		Expect(tree.Contains(35)).To(BeTrue())
	})

	It("snapshots the tree after each action", func() {
		steps := tree.InsertSteps(10)

		Expect(steps[0].Tree.Left.Left.Left).To(BeNil())
		last := steps[len(steps)-1]
		Expect(last.Tree.Left.Left.Left.Value).To(Equal(10))
	})

	It("records duplicates without mutating", func() {
		steps := tree.InsertSteps(40)

		Expect(actions(steps)).To(Equal([]bst.Action{
			bst.ActionVisitLeft, bst.ActionVisitRight, bst.ActionDuplicate,
		}))
		Expect(tree.Len()).To(Equal(5))
	})

	It("records successor replacement on two-child deletes", func() {
		steps := tree.DeleteSteps(30)

		Expect(actions(steps)).To(Equal([]bst.Action{
			bst.ActionVisitLeft, bst.ActionReplace, bst.ActionRemove,
		}))
		Expect(steps[1].At).To(Equal(40))
		Expect(tree.Traverse(bst.PreOrder)).To(Equal([]int{50, 40, 20, 70}))
	})

	It("records missing values", func() {
		steps := tree.DeleteSteps(75)

		Expect(actions(steps)).To(Equal([]bst.Action{
			bst.ActionVisitRight, bst.ActionVisitRight, bst.ActionMissing,
		}))
		Expect(tree.Len()).To(Equal(5))
	})

	It("leaves the tree in the same state as untraced mutation", func() {
		plain := build(50, 30, 70, 20, 40)
		for _, v := range []int{45, 50, 20, 99, 30} {
			plain.Delete(v)
			tree.DeleteSteps(v)
		}
		Expect(tree.Snapshot()).To(Equal(plain.Snapshot()))
	})
})
