package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bstviz/diagram"
	"github.com/katalvlaran/bstviz/input"
	"github.com/katalvlaran/bstviz/preset"
	"github.com/katalvlaran/bstviz/visualize"
)

// showT implements the show command.
type showT struct {
	Root *cobra.Command

	logger Logger

	// Flags.
	preset    string
	format    string
	direction string
	asJSON    bool
	plot      bool
	verbose   bool
}

func newShow(logger Logger) *showT {
	s := &showT{logger: logger}
	s.Root = &cobra.Command{
		Use:   "show [numbers]",
		Short: "build a tree and print its statistics and diagram",
		Long: `
Build a BST from comma-separated integers given as arguments, from a named
preset (--preset), or from standard input when neither is given.
`,
		Args: cobra.ArbitraryArgs,
		RunE: s.run,
	}
	s.Root.Flags().StringVarP(
		&s.preset, "preset", "p", "", "use a named preset (see 'bstviz presets')")
	s.Root.Flags().StringVarP(
		&s.format, "format", "f", "mermaid", "diagram format: mermaid or dot")
	s.Root.Flags().StringVarP(
		&s.direction, "direction", "d", diagram.DefaultDirection, "diagram direction: TD, TB, BT, LR or RL")
	s.Root.Flags().BoolVar(
		&s.asJSON, "json", false, "print the result as JSON")
	s.Root.Flags().BoolVar(
		&s.plot, "plot", false, "plot the number of nodes per level")
	s.Root.Flags().BoolVarP(
		&s.verbose, "verbose", "v", false, "log request details to stderr")

	return s
}

func (s *showT) run(cmd *cobra.Command, args []string) error {
	logger := s.logger
	if !s.verbose {
		logger = quietLogger{Logger: s.logger}
	}

	text, err := s.inputText(cmd, args)
	if err != nil {
		return err
	}
	f, err := diagram.ParseFormat(s.format)
	if err != nil {
		return err
	}
	dopts := []diagram.Option{diagram.WithFormat(f), diagram.WithDirection(s.direction)}
	// Describe silently falls back on bad options; surface them here instead.
	if _, err := diagram.Render(nil, dopts...); err != nil {
		return err
	}

	start := time.Now()
	res, err := visualize.Visualize(text, visualize.WithDiagramOptions(dopts...))
	if err != nil {
		return errors.Wrap(err, "show")
	}
	logger.Infof("built tree from %d values in %s", len(res.Input), time.Since(start))

	out := cmd.OutOrStdout()
	if s.asJSON {
		return writeJSON(out, res)
	}
	writeStats(out, res)
	if s.plot {
		writeLevelPlot(out, res.Levels)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, res.Diagram)

	return nil
}

// inputText picks the raw input: arguments, a preset, or standard input.
func (s *showT) inputText(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case s.preset != "" && len(args) > 0:
		return "", errors.New("show: --preset cannot be combined with numbers")
	case s.preset != "":
		p, err := preset.Lookup(s.preset)
		if err != nil {
			return "", err
		}
		return p.Text(), nil
	case len(args) > 0:
		// Unquoted "8, 4, 2" arrives as several arguments.
		return strings.Join(args, " "), nil
	default:
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "show: reading standard input")
		}
		return string(raw), nil
	}
}

func writeJSON(w io.Writer, res *visualize.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// writeStats prints the summary cards and the input/inorder lines.
func writeStats(w io.Writer, res *visualize.Result) {
	renderTable(w,
		[]string{"Tree Height", "Total Nodes", "Is Balanced"},
		[][]string{{
			fmt.Sprint(res.Height),
			fmt.Sprint(res.NodeCount),
			yesNo(res.Balanced),
		}})
	fmt.Fprintf(w, "Input Array: %s\n", input.Format(res.Input))
	fmt.Fprintf(w, "Inorder Traversal (sorted): %s\n", input.Format(res.Inorder))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
