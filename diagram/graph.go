package diagram

import (
	"github.com/cockroachdb/swiss"

	"github.com/katalvlaran/bstviz/bst"
)

// builder walks a tree once and records statements in emission order.
type builder struct {
	seen  swiss.Map[int, struct{}] // values already declared
	stmts []Statement
}

// Build converts t into its statement list. The walk is pre-order: a node
// is declared the first time its value is met; then, for the left child
// and then the right child, an edge is emitted followed by that child's
// subtree. The empty tree yields an empty Graph.
func Build(t *bst.Tree) *Graph {
	root := t.Root()
	if root == nil {
		return &Graph{Statements: []Statement{}}
	}

	n := t.Len()
	b := &builder{stmts: make([]Statement, 0, 2*n)}
	b.seen.Init(n)
	b.walk(root)

	return &Graph{Statements: b.stmts}
}

func (b *builder) walk(n *bst.Node) {
	if _, ok := b.seen.Get(n.Value); !ok {
		b.seen.Put(n.Value, struct{}{})
		b.stmts = append(b.stmts, Statement{Kind: VertexStatement, Value: n.Value})
	}
	for _, child := range [2]*bst.Node{n.Left, n.Right} {
		if child == nil {
			continue
		}
		b.stmts = append(b.stmts, Statement{Kind: EdgeStatement, From: n.Value, To: child.Value})
		b.walk(child)
	}
}
