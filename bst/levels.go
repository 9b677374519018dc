package bst

import (
	"github.com/cockroachdb/errors"
)

// queueItem pairs a node with its depth from the root.
type queueItem struct {
	node  *Node
	depth int
}

// walker encapsulates mutable breadth-first state.
type walker struct {
	opts  WalkOptions
	queue []queueItem
	res   *LevelResult
}

// LevelOrder walks the tree breadth-first, left child before right child,
// applying any number of WalkOptions.
// Returns ErrOptionViolation for bad options or a wrapped OnVisit error.
// On error the partial result is discarded.
func (t *Tree) LevelOrder(opts ...WalkOption) (*LevelResult, error) {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := t.Len()
	w := &walker{
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &LevelResult{
			Order:  make([]int, 0, n),
			Widths: []int{},
		},
	}
	if root := t.Root(); root != nil {
		w.enqueue(root, 0)
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue adds n at depth d unless it lies below MaxDepth.
func (w *walker) enqueue(n *Node, d int) {
	if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
		return
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if item.node.Left != nil {
			w.enqueue(item.node.Left, item.depth+1)
		}
		if item.node.Right != nil {
			w.enqueue(item.node.Right, item.depth+1)
		}
	}

	return nil
}

// visit records the node in Order and Widths, then calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node.Value)
	if item.depth == len(w.res.Widths) {
		w.res.Widths = append(w.res.Widths, 0)
	}
	w.res.Widths[item.depth]++
	if err := w.opts.OnVisit(item.node.Value, item.depth); err != nil {
		return errors.Wrapf(err, "bst: OnVisit error at value %d (depth %d)", item.node.Value, item.depth)
	}

	return nil
}
