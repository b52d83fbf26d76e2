package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dealdeck",
	Short: "Tool for rendering and validating Monopoly Deal style card decks",
	Long: `Dealdeck renders physical playing-card artwork from declarative card
definitions and a shared design-token configuration, producing one raster
image per card. It can also validate deck definitions, preview single cards
in the terminal, and compose contact sheets of a whole deck.`,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
