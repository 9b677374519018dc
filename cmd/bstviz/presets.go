package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bstviz/preset"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list the named example inputs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			var rows [][]string
			for _, p := range preset.All() {
				rows = append(rows, []string{p.Slug, p.Name, p.Text()})
			}
			renderTable(cmd.OutOrStdout(), []string{"Slug", "Name", "Values"}, rows)
		},
	}
}
