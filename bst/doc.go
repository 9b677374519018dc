// Package bst builds an unbalanced Binary Search Tree from an ordered
// sequence of integers and answers read-only structural queries about it.
//
// What
//
//   - Build inserts every value in input order. A value strictly less than
//     the current node descends left; greater or equal descends right, so
//     duplicates always land in the right subtree.
//   - One Node is created per input value. Nothing is merged or removed, so
//     Count() == len(values) for every input, duplicates included.
//   - Analyzers: Height, Count, IsBalanced, Inorder.
//   - Extra traversals: Preorder, Postorder, LevelOrder (breadth-first with hooks).
//
// Why
//
//	The shape of a BST depends on insertion order: the same multiset inserted
//	in different orders yields different heights. Inorder output, however, is
//	always the sorted (non-decreasing) sequence of the inserted values.
//
// Immutability
//
//	A Tree is built once and never mutated afterwards; all query methods are
//	pure and safe to call repeatedly. A nil *Tree and an empty Tree behave the
//	same: every query returns its identity value (0, true, empty slice).
//
// Complexity (n = number of values, h = height)
//
//   - Build:      O(n·h) time, O(n) memory; O(n²) for sorted input.
//   - Height, Count, IsBalanced, Inorder, Preorder, Postorder: O(n).
//   - LevelOrder: O(n) time, O(w) queue memory for the widest level w.
//
// Usage
//
//	t := bst.Build([]int{8, 4, 12, 2, 6})
//	fmt.Println(t.Height(), t.Count(), t.IsBalanced(), t.Inorder())
//
//	res, err := t.LevelOrder(bst.WithMaxDepth(2))
//	if err != nil {
//	    // ErrOptionViolation or a wrapped OnVisit error
//	}
//
// Errors
//
//   - ErrOptionViolation  if a WalkOption is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bst
