package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/config"
	"github.com/hbmartin/deal-deck-generator/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect and set up deck definitions",
	Long:  `Commands for inspecting the cards in a deck definition and setting up configuration.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in a deck definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		cardsPath := flagOrDefault(cmd, "cards", cfg.CardsFile)

		defs, err := deck.Load(cardsPath)
		if err != nil {
			return err
		}

		cards, err := defs.Cards(nil)
		if err != nil {
			return err
		}

		if len(cards) == 0 {
			fmt.Printf("No cards found in %s.\n", cardsPath)
			return nil
		}

		counts := map[card.Kind]int{}
		for _, kind := range []card.Kind{card.Property, card.Action, card.Money, card.Rent, card.Wildcard} {
			fmt.Println(colorize.CyanString("%s:", kindLabel(kind)))
			for _, c := range cards {
				if c.Kind() != kind {
					continue
				}
				counts[kind]++
				meta := c.Common()
				if meta.Value != 0 {
					fmt.Printf("  %-28s %s ($%dM)\n", meta.ID, meta.Title, meta.Value)
				} else {
					fmt.Printf("  %-28s %s\n", meta.ID, meta.Title)
				}
			}
			if counts[kind] == 0 {
				fmt.Println("  (none)")
			}
		}

		fmt.Printf("\n%d cards total\n", len(cards))
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the dealdeck configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if err := config.WriteConfig(cfg); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
		fmt.Println("Edit it to point at your cards file, token file and output directory.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckListCmd.Flags().StringP("cards", "c", "", "Path to the cards YAML file")
}
