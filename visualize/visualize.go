package visualize

import (
	"slices"

	"github.com/katalvlaran/bstviz/bst"
	"github.com/katalvlaran/bstviz/diagram"
	"github.com/katalvlaran/bstviz/input"
)

// Result is everything a presenter needs to show one tree.
// Stats is embedded so its fields serialize at the top level; Result
// therefore also prints like its Stats.
type Result struct {
	// Input is the parsed insertion order.
	Input []int `json:"input"`
	Stats
	// Diagram is the graph description produced by diagram.Describe.
	Diagram string `json:"diagram"`
	// Levels holds the number of nodes on each level, root first.
	Levels []int `json:"levels"`
	// Min and Max are the extreme values; nil for an empty tree.
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Option configures Visualize and FromValues.
type Option func(*options)

type options struct {
	diagram []diagram.Option
}

// WithDiagramOptions forwards options to diagram.Describe.
func WithDiagramOptions(opts ...diagram.Option) Option {
	return func(o *options) {
		o.diagram = append(o.diagram, opts...)
	}
}

// Visualize parses text, builds the tree and describes it.
// Parse errors are returned unchanged with a nil Result.
func Visualize(text string, opts ...Option) (*Result, error) {
	values, err := input.Parse(text)
	if err != nil {
		return nil, err
	}

	return FromValues(values, opts...), nil
}

// FromValues builds and describes the tree for already-parsed values.
// An empty slice yields the empty-tree Result.
func FromValues(values []int, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := bst.Build(values)
	res := &Result{
		Input:   slices.Clone(values),
		Stats:   Analyze(t),
		Diagram: diagram.Describe(t, o.diagram...),
		Levels:  []int{},
	}
	if res.Input == nil {
		res.Input = []int{}
	}
	// The default walk has no hook and no depth limit, so it cannot fail.
	if lv, err := t.LevelOrder(); err == nil {
		res.Levels = lv.Widths
	}
	if v, ok := t.Min(); ok {
		res.Min = &v
	}
	if v, ok := t.Max(); ok {
		res.Max = &v
	}

	return res
}
