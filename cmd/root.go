package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fixturegen",
	Short: "Generate deterministic binary pairs for testing dring",
	Long: `Fixturegen: builds a fixed catalog of binary file pairs with known,
reproducible differences (scattered edits, header mutations, dense random
corruption, text substitutions, exact duplicates) for exercising the
dead-ringer (dring) binary diff viewer.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
