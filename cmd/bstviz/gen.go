package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bstviz/preset"
)

// genT implements the gen command.
type genT struct {
	Root *cobra.Command

	// Flags.
	kind  string
	n     int
	depth int
	seed  int64
}

func newGen() *genT {
	g := &genT{}
	g.Root = &cobra.Command{
		Use:   "gen",
		Short: "print a generated insertion order",
		Long: `
Print a comma-separated insertion order. Kinds:
  ascending   1..n (right-skewed tree)
  descending  n..1 (left-skewed tree)
  perfect     perfect tree of height --depth
  shuffled    random permutation of 1..n seeded by --seed
`,
		Args: cobra.NoArgs,
		RunE: g.run,
	}
	g.Root.Flags().StringVarP(
		&g.kind, "kind", "k", "shuffled", "ascending, descending, perfect or shuffled")
	g.Root.Flags().IntVarP(
		&g.n, "count", "n", 15, "number of values")
	g.Root.Flags().IntVar(
		&g.depth, "depth", 4, "tree height for --kind perfect")
	g.Root.Flags().Int64Var(
		&g.seed, "seed", 1, "random seed for --kind shuffled")

	return g
}

func (g *genT) run(cmd *cobra.Command, _ []string) error {
	var values []int
	var err error
	switch strings.ToLower(g.kind) {
	case "ascending":
		values, err = preset.Ascending(g.n)
	case "descending":
		values, err = preset.Descending(g.n)
	case "perfect":
		values, err = preset.PerfectOrder(g.depth)
	case "shuffled":
		values, err = preset.Shuffled(g.n, preset.WithSeed(g.seed))
	default:
		return errors.Newf("gen: unknown kind %q", g.kind)
	}
	if err != nil {
		return err
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ","))

	return nil
}
