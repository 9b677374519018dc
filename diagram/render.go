package diagram

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/bstviz/bst"
)

// Describe returns the Mermaid description of t (or another format chosen
// via WithFormat). Invalid options are ignored in favour of the defaults, so
// Describe never fails.
func Describe(t *bst.Tree, opts ...Option) string {
	out, err := Render(t, opts...)
	if err != nil {
		out, _ = Render(t)
	}

	return out
}

// Render is Describe with option validation: it returns ErrUnknownFormat or
// ErrOptionViolation instead of falling back to the defaults.
func Render(t *bst.Tree, opts ...Option) (string, error) {
	o := resolve(opts)
	if o.err != nil {
		return "", o.err
	}

	return Build(t).render(o), nil
}

// Mermaid renders g as a Mermaid flowchart.
func (g *Graph) Mermaid(opts ...Option) (string, error) {
	return g.renderAs(FormatMermaid, opts)
}

// DOT renders g as a Graphviz digraph.
func (g *Graph) DOT(opts ...Option) (string, error) {
	return g.renderAs(FormatDOT, opts)
}

func (g *Graph) renderAs(f Format, opts []Option) (string, error) {
	o := resolve(opts)
	if o.err != nil {
		return "", o.err
	}
	o.format = f

	return g.render(o), nil
}

func (g *Graph) render(o options) string {
	if o.format == FormatDOT {
		return g.dot(o)
	}

	return g.mermaid(o)
}

// mermaid emits "graph <dir>" followed by one indented statement per line.
// Values are interpolated as-is; integers need no escaping.
func (g *Graph) mermaid(o options) string {
	var sb strings.Builder
	sb.WriteString("graph ")
	sb.WriteString(o.direction)
	if g.Empty() {
		sb.WriteString("\n" + indent + emptyID + `["` + o.emptyLabel + `"]`)
		return sb.String()
	}
	for _, s := range g.Statements {
		sb.WriteString("\n" + indent)
		switch s.Kind {
		case VertexStatement:
			v := strconv.Itoa(s.Value)
			sb.WriteString(v + `["` + v + `"]`)
		case EdgeStatement:
			sb.WriteString(strconv.Itoa(s.From) + " --> " + strconv.Itoa(s.To))
		}
	}

	return sb.String()
}

// rankdir maps Mermaid directions onto Graphviz rankdir values.
var rankdir = map[string]string{
	"TD": "TB", "TB": "TB", "BT": "BT", "LR": "LR", "RL": "RL",
}

// dot emits a Graphviz digraph. Node IDs are quoted so negative values stay
// valid identifiers.
func (g *Graph) dot(o options) string {
	var sb strings.Builder
	sb.WriteString("digraph BST {\n")
	sb.WriteString(indent + "rankdir=" + rankdir[o.direction] + ";\n")
	if g.Empty() {
		sb.WriteString(indent + emptyID + ` [label="` + o.emptyLabel + `"];` + "\n")
	}
	for _, s := range g.Statements {
		switch s.Kind {
		case VertexStatement:
			v := strconv.Itoa(s.Value)
			sb.WriteString(indent + `"` + v + `" [label="` + v + `"];` + "\n")
		case EdgeStatement:
			sb.WriteString(indent + `"` + strconv.Itoa(s.From) + `" -> "` + strconv.Itoa(s.To) + `";` + "\n")
		}
	}
	sb.WriteString("}")

	return sb.String()
}
