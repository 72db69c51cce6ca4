package cmd

import (
	"fmt"

	"github.com/dringlabs/fixturegen/pkg/detrand"
	"github.com/dringlabs/fixturegen/pkg/fixture"
	"github.com/spf13/cobra"
)

// listCmd prints the catalog without touching the filesystem. The pairs
// are built in memory with the same seed as generate, so the reported
// sizes match what generate would write.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fixture catalog without writing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		src := detrand.New(fixture.Seed)
		for _, pair := range fixture.Catalog(src) {
			fmt.Fprintf(out, "%-10s %s / %s (%d / %d bytes) - %s\n",
				pair.Key, pair.A.Name, pair.B.Name,
				len(pair.A.Data), len(pair.B.Data), pair.Desc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
