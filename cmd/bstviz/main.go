// Command bstviz builds a Binary Search Tree from a list of integers and
// prints its statistics and a diagram description.
//
//	bstviz show 8,4,2,1,3,6,5,7,12,10,9,11,14,13,15
//	bstviz show --preset right-skewed --format dot
//	bstviz gen --kind shuffled --n 20 --seed 7 | bstviz show --plot
//	bstviz presets
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(logger Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bstviz [command] (flags)",
		Short: "binary search tree builder and visualizer",
		Long: `
Build a Binary Search Tree by inserting integers in the given order and
report its height, node count, balance and inorder sequence together with
a Mermaid (or Graphviz) diagram description.
`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		newShow(logger).Root,
		newPresetsCmd(),
		newGen().Root,
	)

	return rootCmd
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	if err := newRootCmd(DefaultLogger{}).Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
