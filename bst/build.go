package bst

// Build constructs a BST by inserting values one by one in input order.
// An empty (or nil) slice yields an empty, non-nil Tree.
//
// Complexity: O(n·h) time where h is the final height.
func Build(values []int) *Tree {
	t := &Tree{}
	for _, v := range values {
		t.insert(v)
	}

	return t
}

// insert places v as a new leaf. Ties descend right.
// The loop is iterative so sorted inputs of any length cannot blow the stack.
func (t *Tree) insert(v int) {
	node := &Node{Value: v}
	t.size++
	if t.root == nil {
		t.root = node
		return
	}

	cur := t.root
	for {
		if v < cur.Value {
			if cur.Left == nil {
				cur.Left = node
				return
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = node
				return
			}
			cur = cur.Right
		}
	}
}
