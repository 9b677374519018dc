package bst

// unbalanced is the sentinel height returned by checkBalance once any
// subtree violates the balance condition.
const unbalanced = -1

// Height returns the number of nodes on the longest root-to-leaf path.
// The empty tree has height 0, a single node has height 1.
func (t *Tree) Height() int {
	return height(t.Root())
}

func height(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.Left), height(n.Right))
}

// Count returns the number of nodes reachable from the root.
func (t *Tree) Count() int {
	return count(t.Root())
}

func count(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + count(n.Left) + count(n.Right)
}

// IsBalanced reports whether, for every node, the heights of its left and
// right subtrees differ by at most 1. The empty tree is balanced.
//
// Heights are computed bottom-up in one pass; the first violation
// propagates straight to the root without visiting the remaining subtrees.
func (t *Tree) IsBalanced() bool {
	return checkBalance(t.Root()) != unbalanced
}

// checkBalance returns the height of n, or unbalanced.
func checkBalance(n *Node) int {
	if n == nil {
		return 0
	}

	lh := checkBalance(n.Left)
	if lh == unbalanced {
		return unbalanced
	}
	rh := checkBalance(n.Right)
	if rh == unbalanced {
		return unbalanced
	}
	if lh-rh > 1 || rh-lh > 1 {
		return unbalanced
	}

	return 1 + max(lh, rh)
}

// Inorder returns left subtree, node, right subtree, recursively.
// For any tree produced by Build the result is non-decreasing.
// The empty tree yields an empty, non-nil slice.
func (t *Tree) Inorder() []int {
	out := make([]int, 0, t.Len())
	return inorder(t.Root(), out)
}

func inorder(n *Node, out []int) []int {
	if n == nil {
		return out
	}
	out = inorder(n.Left, out)
	out = append(out, n.Value)

	return inorder(n.Right, out)
}

// Preorder returns node, left subtree, right subtree, recursively.
// Rebuilding a tree from its Preorder output reproduces the same shape.
func (t *Tree) Preorder() []int {
	out := make([]int, 0, t.Len())
	return preorder(t.Root(), out)
}

func preorder(n *Node, out []int) []int {
	if n == nil {
		return out
	}
	out = append(out, n.Value)
	out = preorder(n.Left, out)

	return preorder(n.Right, out)
}

// Postorder returns left subtree, right subtree, node, recursively.
func (t *Tree) Postorder() []int {
	out := make([]int, 0, t.Len())
	return postorder(t.Root(), out)
}

func postorder(n *Node, out []int) []int {
	if n == nil {
		return out
	}
	out = postorder(n.Left, out)
	out = postorder(n.Right, out)

	return append(out, n.Value)
}

// Min returns the smallest value, or false for an empty tree.
func (t *Tree) Min() (int, bool) {
	n := t.Root()
	if n == nil {
		return 0, false
	}
	for n.Left != nil {
		n = n.Left
	}

	return n.Value, true
}

// Max returns the largest value, or false for an empty tree.
// With duplicates, the rightmost copy is the last one inserted.
func (t *Tree) Max() (int, bool) {
	n := t.Root()
	if n == nil {
		return 0, false
	}
	for n.Right != nil {
		n = n.Right
	}

	return n.Value, true
}
