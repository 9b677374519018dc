package diagram

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for diagram rendering.
var (
	// ErrUnknownFormat indicates an output format this package cannot render.
	ErrUnknownFormat = errors.New("diagram: unknown format")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("diagram: invalid option supplied")
)

// Format selects the textual encoding produced by Render.
type Format int

const (
	// FormatMermaid renders a Mermaid flowchart ("graph TD" ...).
	FormatMermaid Format = iota
	// FormatDOT renders a Graphviz digraph.
	FormatDOT
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatMermaid:
		return "mermaid"
	case FormatDOT:
		return "dot"
	default:
		return "unknown"
	}
}

// ParseFormat maps a case-insensitive name ("mermaid", "dot", "graphviz")
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mermaid", "":
		return FormatMermaid, nil
	case "dot", "graphviz":
		return FormatDOT, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

const (
	// DefaultDirection is the Mermaid flow direction (top-down).
	DefaultDirection = "TD"
	// DefaultEmptyLabel is the placeholder label for the empty tree.
	DefaultEmptyLabel = "Empty Tree"

	// emptyID is the identifier of the placeholder node.
	emptyID = "Empty"
	// indent prefixes every statement line.
	indent = "    "
)

// validDirections are the flow directions Mermaid accepts.
var validDirections = map[string]struct{}{
	"TD": {}, "TB": {}, "BT": {}, "LR": {}, "RL": {},
}

// Option configures rendering via functional arguments.
// Invalid values are recorded and surfaced by Render.
type Option func(*options)

type options struct {
	format     Format
	direction  string
	emptyLabel string

	err error
}

func defaultOptions() options {
	return options{
		format:     FormatMermaid,
		direction:  DefaultDirection,
		emptyLabel: DefaultEmptyLabel,
	}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithFormat selects the output encoding.
func WithFormat(f Format) Option {
	return func(o *options) {
		if f != FormatMermaid && f != FormatDOT {
			o.err = errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
			return
		}
		o.format = f
	}
}

// WithDirection sets the flow direction. It is case-insensitive and must be
// one of TD, TB, BT, LR, RL. In DOT output it maps onto rankdir.
func WithDirection(dir string) Option {
	return func(o *options) {
		d := strings.ToUpper(strings.TrimSpace(dir))
		if _, ok := validDirections[d]; !ok {
			o.err = errors.Wrapf(ErrOptionViolation, "direction %q", dir)
			return
		}
		o.direction = d
	}
}

// WithEmptyLabel sets the label of the placeholder node drawn for an empty
// tree. The label must be non-empty and must not contain a double quote.
func WithEmptyLabel(label string) Option {
	return func(o *options) {
		if label == "" || strings.ContainsRune(label, '"') {
			o.err = errors.Wrapf(ErrOptionViolation, "empty label %q", label)
			return
		}
		o.emptyLabel = label
	}
}

// StatementKind distinguishes node declarations from edges.
type StatementKind int

const (
	// VertexStatement declares a node for Value.
	VertexStatement StatementKind = iota
	// EdgeStatement is a directed edge From → To.
	EdgeStatement
)

// Statement is one line of a graph description.
// For a VertexStatement only Value is meaningful.
type Statement struct {
	Kind     StatementKind
	Value    int
	From, To int
}

// Edge is a directed parent→child link between two node values.
type Edge struct {
	From, To int
}

// Graph is the ordered statement list produced from a tree.
// An empty Graph (no statements) stands for the empty tree.
type Graph struct {
	Statements []Statement
}

// Empty reports whether g describes the empty tree.
func (g *Graph) Empty() bool {
	return g == nil || len(g.Statements) == 0
}

// Vertices returns the declared node values in declaration order.
// Each value appears at most once.
func (g *Graph) Vertices() []int {
	out := []int{}
	if g == nil {
		return out
	}
	for _, s := range g.Statements {
		if s.Kind == VertexStatement {
			out = append(out, s.Value)
		}
	}

	return out
}

// Edges returns the edges in emission order. Duplicate values may produce
// repeated or self edges.
func (g *Graph) Edges() []Edge {
	out := []Edge{}
	if g == nil {
		return out
	}
	for _, s := range g.Statements {
		if s.Kind == EdgeStatement {
			out = append(out, Edge{From: s.From, To: s.To})
		}
	}

	return out
}
