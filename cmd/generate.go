package cmd

import (
	"fmt"

	"github.com/dringlabs/fixturegen/pkg/detrand"
	"github.com/dringlabs/fixturegen/pkg/fixture"
	"github.com/dringlabs/fixturegen/pkg/output"
	"github.com/spf13/cobra"
)

// outputDir is fixed: the fixtures live next to the generator, and every
// run overwrites the previous catalog in place.
const outputDir = "examples"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the full fixture catalog to the examples directory",
	Long: `Generate builds every fixture pair in a fixed order and writes the
resulting files into ./examples, overwriting any previous run.

Output is fully deterministic: the random source is seeded with a fixed
constant and consumed in a fixed call order, so two runs produce
byte-identical files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Generating example binaries...")

		src := detrand.New(fixture.Seed)
		writer := output.NewWriter(outputDir, out)

		// Each pair is persisted before the next builder runs; a write
		// failure aborts the run with earlier files left on disk.
		for _, pair := range fixture.Catalog(src) {
			for _, f := range pair.Files() {
				if _, err := writer.Write(f.Name, f.Data); err != nil {
					return err
				}
			}
		}

		fmt.Fprintln(out, "Done.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
