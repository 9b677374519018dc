package visualize

import (
	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/bstviz/bst"
)

// Stats are the structural statistics of one tree.
type Stats struct {
	Height    int   `json:"height"`
	NodeCount int   `json:"nodeCount"`
	Balanced  bool  `json:"balanced"`
	Inorder   []int `json:"inorder"`
}

// Analyze computes Stats for t. A nil or empty tree yields zero height and
// count, Balanced == true and an empty Inorder.
func Analyze(t *bst.Tree) Stats {
	return Stats{
		Height:    t.Height(),
		NodeCount: t.Count(),
		Balanced:  t.IsBalanced(),
		Inorder:   t.Inorder(),
	}
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter. Shape figures are safe;
// the inorder values are user data and stay redactable.
func (s Stats) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("height=%d nodes=%d balanced=%t inorder=%v",
		redact.Safe(s.Height), redact.Safe(s.NodeCount), redact.Safe(s.Balanced), s.Inorder)
}
