package bst_test

import (
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algotrace/internal/bst"
	"github.com/san-kum/algotrace/internal/trace"
)

func build(values ...int) *bst.Tree[int] {
	t := bst.New[int]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

var _ = Describe("Tree", func() {
	var tree *bst.Tree[int]

	BeforeEach(func() {
		tree = build(50, 30, 70, 20, 40)
	})

	Describe("Traverse", func() {
		It("yields the sorted values in order", func() {
			Expect(tree.Traverse(bst.InOrder)).To(Equal([]int{20, 30, 40, 50, 70}))
		})

		It("yields node-first values in preorder", func() {
			Expect(tree.Traverse(bst.PreOrder)).To(Equal([]int{50, 30, 20, 40, 70}))
		})

		It("yields children-first values in postorder", func() {
			Expect(tree.Traverse(bst.PostOrder)).To(Equal([]int{20, 40, 30, 70, 50}))
		})

		It("does not modify the tree", func() {
			before := tree.Snapshot()
			tree.Traverse(bst.PostOrder)
			Expect(tree.Snapshot()).To(Equal(before))
		})

		It("returns an empty sequence for an empty tree", func() {
			Expect(bst.New[int]().Traverse(bst.InOrder)).To(BeEmpty())
		})
	})

	Describe("Insert", func() {
		It("drops duplicates silently", func() {
			tree.Insert(30)
			Expect(tree.Len()).To(Equal(5))
			Expect(tree.Traverse(bst.InOrder)).To(Equal([]int{20, 30, 40, 50, 70}))
		})

		It("keeps inorder sorted for random inserts", func() {
			rng := rand.New(rand.NewSource(3))
			t := bst.New[int]()
			for i := 0; i < 300; i++ {
				t.Insert(rng.Intn(100))
			}
			out := t.Traverse(bst.InOrder)
			Expect(slices.IsSorted(out)).To(BeTrue())
			Expect(slices.Compact(slices.Clone(out))).To(HaveLen(len(out)))
			Expect(t.Len()).To(Equal(len(out)))
		})
	})

	Describe("Delete", func() {
		It("splices out a leaf", func() {
			tree.Delete(20)
			Expect(tree.Traverse(bst.PreOrder)).To(Equal([]int{50, 30, 40, 70}))
		})

		It("splices out a node with one child", func() {
			tree.Delete(20)
			tree.Delete(30)
			Expect(tree.Traverse(bst.PreOrder)).To(Equal([]int{50, 40, 70}))
		})

		It("replaces a two-child node with its right-subtree minimum", func() {
			tree.Insert(60)
			tree.Insert(80)
			tree.Delete(50)

			view := tree.Snapshot()
			Expect(view.Value).To(Equal(60))
			Expect(tree.Traverse(bst.PreOrder)).To(Equal([]int{60, 30, 20, 40, 70, 80}))
		})

		It("ignores absent values", func() {
			tree.Delete(99)
			Expect(tree.Len()).To(Equal(5))
			Expect(tree.Traverse(bst.InOrder)).To(Equal([]int{20, 30, 40, 50, 70}))
		})

		It("never returns a deleted value", func() {
			rng := rand.New(rand.NewSource(11))
			t := bst.New[int]()
			for i := 0; i < 200; i++ {
				t.Insert(rng.Intn(60))
			}
			for i := 0; i < 100; i++ {
				v := rng.Intn(60)
				t.Delete(v)
				Expect(t.Contains(v)).To(BeFalse())
				Expect(t.Traverse(bst.InOrder)).NotTo(ContainElement(v))
				Expect(slices.IsSorted(t.Traverse(bst.InOrder))).To(BeTrue())
			}
		})

		It("reuses released arena slots", func() {
			tree.Delete(20)
			tree.Insert(25)
			Expect(tree.Traverse(bst.InOrder)).To(Equal([]int{25, 30, 40, 50, 70}))
			Expect(tree.Height()).To(Equal(3))
		})
	})

	Describe("Clear", func() {
		It("empties the tree", func() {
			tree.Clear()
			Expect(tree.Len()).To(BeZero())
			Expect(tree.Snapshot()).To(BeNil())
			_, ok := tree.Min()
			Expect(ok).To(BeFalse())

			tree.Insert(1)
			Expect(tree.Traverse(bst.InOrder)).To(Equal([]int{1}))
		})
	})

	Describe("Snapshot", func() {
		It("mirrors the structure", func() {
			view := tree.Snapshot()
			Expect(view.Value).To(Equal(50))
			Expect(view.Left.Value).To(Equal(30))
			Expect(view.Left.Left.Value).To(Equal(20))
			Expect(view.Left.Right.Value).To(Equal(40))
			Expect(view.Right.Value).To(Equal(70))
			Expect(view.Right.Left).To(BeNil())
		})

		It("is detached from later mutations", func() {
			view := tree.Snapshot()
			tree.Delete(50)
			Expect(view.Value).To(Equal(50))
		})
	})

	Describe("ParseOrder", func() {
		DescribeTable("accepts known orders",
			func(in string, want bst.Order) {
				o, err := bst.ParseOrder(in)
				Expect(err).NotTo(HaveOccurred())
				Expect(o).To(Equal(want))
			},
			Entry("inorder", "inorder", bst.InOrder),
			Entry("preorder", "preorder", bst.PreOrder),
			Entry("postorder", "PostOrder", bst.PostOrder),
		)

		It("rejects unknown orders", func() {
			_, err := bst.ParseOrder("levelorder")
			Expect(err).To(MatchError(trace.ErrInvalidArgument))
		})
	})
})
