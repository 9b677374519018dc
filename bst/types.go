// Package bst defines the Node and Tree types, walk options and sentinel
// errors used by the traversal helpers.
package bst

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrOptionViolation is returned when an invalid WalkOption is supplied.
var ErrOptionViolation = errors.New("bst: invalid option supplied")

// Node represents one inserted value.
//
// Every value in Left's subtree is strictly less than Value; every value in
// Right's subtree is greater than or equal to Value.
type Node struct {
	// Value is the inserted integer. Values may repeat across nodes.
	Value int

	// Left and Right are the owned children; nil means no child.
	Left, Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a handle to an optional root Node.
// The zero value and a nil *Tree are both the empty tree.
type Tree struct {
	root *Node
	size int // number of values inserted by Build
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}

	return t.root
}

// Len returns the number of values the tree was built from.
// It always equals Count() for trees produced by Build.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return t.size
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t.Root() == nil
}

// String renders the tree in compact parenthesized pre-order form,
// e.g. "(2 (1) (3))". The empty tree renders as "()".
func (t *Tree) String() string {
	if t.Empty() {
		return "()"
	}

	return nodeString(t.root)
}

func nodeString(n *Node) string {
	switch {
	case n.IsLeaf():
		return fmt.Sprintf("(%d)", n.Value)
	case n.Right == nil:
		return fmt.Sprintf("(%d %s -)", n.Value, nodeString(n.Left))
	case n.Left == nil:
		return fmt.Sprintf("(%d - %s)", n.Value, nodeString(n.Right))
	default:
		return fmt.Sprintf("(%d %s %s)", n.Value, nodeString(n.Left), nodeString(n.Right))
	}
}

// WalkOption configures LevelOrder via functional arguments.
// If an option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when the walk starts.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks for LevelOrder.
type WalkOptions struct {
	// OnVisit is called for every visited node with its value and depth
	// (root depth is 0). Returning an error aborts the walk.
	OnVisit func(value, depth int) error

	// MaxDepth, if > 0, stops descending below this depth (exclusive of
	// deeper levels). 0 means no limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultWalkOptions returns WalkOptions with a no-op hook and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback run on every visited node.
func WithOnVisit(fn func(value, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to depths 0..d-1.
//
//	d > 0: visit at most d levels
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// LevelResult holds the outcome of a breadth-first walk.
//   - Order: node values in visit sequence (level by level, left to right).
//   - Widths: number of nodes found on each visited level; len(Widths) is
//     the number of visited levels.
type LevelResult struct {
	Order  []int
	Widths []int
}

// MaxWidth returns the largest level width, or 0 when nothing was visited.
func (r *LevelResult) MaxWidth() int {
	m := 0
	for _, w := range r.Widths {
		m = max(m, w)
	}

	return m
}
