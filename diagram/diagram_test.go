package diagram_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bstviz/bst"
	"github.com/katalvlaran/bstviz/diagram"
)

// valuesFromInput parses a comma-separated list; blank input is the empty tree.
func valuesFromInput(t *testing.T, in string) []int {
	in = strings.TrimSpace(in)
	if in == "" {
		return nil
	}
	var out []int
	for _, tok := range strings.Split(in, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

func TestDescribe_DataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/describe", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "describe":
			var opts []diagram.Option
			if d.HasArg("format") {
				var name string
				d.ScanArgs(t, "format", &name)
				f, err := diagram.ParseFormat(name)
				require.NoError(t, err)
				opts = append(opts, diagram.WithFormat(f))
			}
			if d.HasArg("direction") {
				var dir string
				d.ScanArgs(t, "direction", &dir)
				opts = append(opts, diagram.WithDirection(dir))
			}
			tree := bst.Build(valuesFromInput(t, d.Input))
			out, err := diagram.Render(tree, opts...)
			if err != nil {
				return err.Error()
			}
			return out
		default:
			t.Fatalf("unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestDescribe_Empty(t *testing.T) {
	want := "graph TD\n    Empty[\"Empty Tree\"]"
	assert.Equal(t, want, diagram.Describe(bst.Build(nil)))
	assert.Equal(t, want, diagram.Describe(nil))
}

func TestDescribe_HeaderFirst(t *testing.T) {
	lines := strings.Split(diagram.Describe(bst.Build([]int{8, 4, 12})), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "graph TD", lines[0])
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, "    "), "line %q", l)
		isNode := strings.HasSuffix(l, `"]`)
		isEdge := strings.Contains(l, " --> ")
		assert.True(t, isNode != isEdge, "line %q must be exactly one of node or edge", l)
	}
}

func TestDescribe_DuplicatesCollapse(t *testing.T) {
	out := diagram.Describe(bst.Build([]int{5, 5, 5}))
	assert.Equal(t, 1, strings.Count(out, `5["5"]`))
	assert.Equal(t, 2, strings.Count(out, "5 --> 5"))

	g := diagram.Build(bst.Build([]int{5, 5, 5}))
	assert.Equal(t, []int{5}, g.Vertices())
	assert.Equal(t, []diagram.Edge{{From: 5, To: 5}, {From: 5, To: 5}}, g.Edges())
}

func TestBuild_OneEdgePerParentChildLink(t *testing.T) {
	in := []int{8, 4, 2, 1, 3, 6, 5, 7, 12, 10, 9, 11, 14, 13, 15}
	tree := bst.Build(in)
	g := diagram.Build(tree)
	assert.Len(t, g.Edges(), tree.Count()-1)
	assert.Len(t, g.Vertices(), len(in))
	// Declarations follow pre-order for distinct values.
	assert.Equal(t, tree.Preorder(), g.Vertices())
}

func TestBuild_Empty(t *testing.T) {
	g := diagram.Build(bst.Build(nil))
	assert.True(t, g.Empty())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
}

func TestRender_Options(t *testing.T) {
	tree := bst.Build([]int{2, 1})

	out, err := diagram.Render(tree, diagram.WithDirection("lr"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))

	_, err = diagram.Render(tree, diagram.WithDirection("up"))
	assert.ErrorIs(t, err, diagram.ErrOptionViolation)

	_, err = diagram.Render(tree, diagram.WithFormat(diagram.Format(9)))
	assert.ErrorIs(t, err, diagram.ErrUnknownFormat)

	_, err = diagram.Render(tree, diagram.WithEmptyLabel(`a"b`))
	assert.ErrorIs(t, err, diagram.ErrOptionViolation)

	out, err = diagram.Render(bst.Build(nil), diagram.WithEmptyLabel("nothing"))
	require.NoError(t, err)
	assert.Equal(t, "graph TD\n    Empty[\"nothing\"]", out)
}

func TestDescribe_InvalidOptionsFallBack(t *testing.T) {
	tree := bst.Build([]int{2, 1})
	assert.Equal(t, diagram.Describe(tree), diagram.Describe(tree, diagram.WithDirection("nope")))
	assert.Equal(t, diagram.Describe(tree), diagram.Describe(tree, diagram.WithFormat(diagram.Format(-1))))
}

func TestGraph_Renderers(t *testing.T) {
	g := diagram.Build(bst.Build([]int{2, 1}))

	m, err := g.Mermaid()
	require.NoError(t, err)
	assert.Equal(t, "graph TD\n    2[\"2\"]\n    2 --> 1\n    1[\"1\"]", m)

	d, err := g.DOT(diagram.WithDirection("LR"))
	require.NoError(t, err)
	assert.Equal(t, "digraph BST {\n    rankdir=LR;\n    \"2\" [label=\"2\"];\n    \"2\" -> \"1\";\n    \"1\" [label=\"1\"];\n}", d)
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]diagram.Format{
		"mermaid":  diagram.FormatMermaid,
		"":         diagram.FormatMermaid,
		"DOT":      diagram.FormatDOT,
		"graphviz": diagram.FormatDOT,
	} {
		got, err := diagram.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		assert.NotEqual(t, "unknown", got.String())
	}
	_, err := diagram.ParseFormat("svg")
	assert.ErrorIs(t, err, diagram.ErrUnknownFormat)
}
