package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbmartin/deal-deck-generator/internal/config"
	"github.com/hbmartin/deal-deck-generator/internal/deck"
	"github.com/hbmartin/deal-deck-generator/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck definition file",
	Long: `Validate checks a cards YAML file for structural problems: duplicate
identifiers, rent tables that do not grow with set size, unknown color
keys, and similar mistakes that would produce misleading cards.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		cardsPath := cfg.CardsFile
		if len(args) == 1 {
			cardsPath = args[0]
		}

		if _, err := os.Stat(cardsPath); os.IsNotExist(err) {
			return fmt.Errorf("cards file not found: %s", cardsPath)
		}

		defs, err := deck.Load(cardsPath)
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Create validator and run validation
		v := validator.NewValidator(defs)
		results := v.Validate()

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Deck '%s' is valid.\n", cardsPath)
		} else {
			fmt.Printf("❌ Deck '%s' has %d validation errors:\n", cardsPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
