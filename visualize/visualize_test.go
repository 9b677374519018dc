package visualize_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bstviz/bst"
	"github.com/katalvlaran/bstviz/diagram"
	"github.com/katalvlaran/bstviz/input"
	"github.com/katalvlaran/bstviz/visualize"
)

// formatResult prints a Result the way the testdata files expect.
func formatResult(r *visualize.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", r.Stats)
	fmt.Fprintf(&sb, "levels=%v", r.Levels)
	if r.Min != nil && r.Max != nil {
		fmt.Fprintf(&sb, " min=%d max=%d", *r.Min, *r.Max)
	}
	sb.WriteString("\n")
	sb.WriteString(r.Diagram)

	return sb.String()
}

func TestVisualize_DataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/visualize", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "visualize":
			var opts []visualize.Option
			if d.HasArg("format") {
				var name string
				d.ScanArgs(t, "format", &name)
				f, err := diagram.ParseFormat(name)
				require.NoError(t, err)
				opts = append(opts, visualize.WithDiagramOptions(diagram.WithFormat(f)))
			}
			res, err := visualize.Visualize(d.Input, opts...)
			if err != nil {
				require.Nil(t, res)
				return fmt.Sprintf("error: %v", err)
			}
			return formatResult(res)
		default:
			t.Fatalf("unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestVisualize_Errors(t *testing.T) {
	res, err := visualize.Visualize("")
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, input.ErrValidation))

	res, err = visualize.Visualize("1,foo,3")
	assert.Nil(t, res)
	var pe *input.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "foo", pe.Token)
}

func TestVisualize_Duplicates(t *testing.T) {
	res, err := visualize.Visualize("5,5,5")
	require.NoError(t, err)
	assert.Equal(t, 3, res.NodeCount)
	assert.Equal(t, []int{5, 5, 5}, res.Inorder)
	assert.Equal(t, 1, strings.Count(res.Diagram, `5["5"]`))
}

func TestFromValues_Empty(t *testing.T) {
	res := visualize.FromValues(nil)
	assert.Equal(t, []int{}, res.Input)
	assert.Equal(t, 0, res.Height)
	assert.Equal(t, 0, res.NodeCount)
	assert.True(t, res.Balanced)
	assert.Empty(t, res.Inorder)
	assert.Empty(t, res.Levels)
	assert.Nil(t, res.Min)
	assert.Nil(t, res.Max)
	assert.Equal(t, "graph TD\n    Empty[\"Empty Tree\"]", res.Diagram)
}

func TestFromValues_CopiesInput(t *testing.T) {
	in := []int{2, 1, 3}
	res := visualize.FromValues(in)
	in[0] = 42
	assert.Equal(t, []int{2, 1, 3}, res.Input)
}

func TestResult_JSON(t *testing.T) {
	res, err := visualize.Visualize("2,1,3")
	require.NoError(t, err)
	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"input", "height", "nodeCount", "balanced", "inorder", "diagram", "levels", "min", "max"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, float64(2), m["height"])
	assert.Equal(t, true, m["balanced"])
}

func TestStats_Redaction(t *testing.T) {
	s := visualize.Analyze(bst.Build([]int{2, 1, 3}))
	assert.Equal(t, "height=2 nodes=3 balanced=true inorder=[1 2 3]", s.String())

	redacted := string(redact.Sprint(s).Redact())
	assert.Contains(t, redacted, "height=2 nodes=3 balanced=true")
	assert.NotContains(t, redacted, "[1 2 3]")
}

func TestAnalyze_MatchesTree(t *testing.T) {
	tree := bst.Build([]int{7, 6, 5, 4, 3, 2, 1})
	s := visualize.Analyze(tree)
	assert.Equal(t, visualize.Stats{
		Height:    7,
		NodeCount: 7,
		Balanced:  false,
		Inorder:   []int{1, 2, 3, 4, 5, 6, 7},
	}, s)
}
