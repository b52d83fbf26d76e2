package cmd

import (
	"fmt"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/config"
	"github.com/hbmartin/deal-deck-generator/internal/deck"
	"github.com/hbmartin/deal-deck-generator/internal/logger"
	"github.com/hbmartin/deal-deck-generator/internal/render"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render card artwork from a deck definition",
	Long: `Render loads a YAML deck definition and the design-token file, renders
every requested card to an image, and writes one file per card into the
output directory. Cards that fail to render are reported and skipped; the
rest of the batch still completes.

Examples:
  dealdeck render
  dealdeck render --cards cards.yaml --output output/deck
  dealdeck render --types property money --format jpeg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		cardsPath := flagOrDefault(cmd, "cards", cfg.CardsFile)
		tokensPath := flagOrDefault(cmd, "tokens", cfg.TokensFile)
		outputDir := flagOrDefault(cmd, "output", cfg.OutputDir)
		formatName := flagOrDefault(cmd, "format", cfg.OutputFormat)
		typeNames, _ := cmd.Flags().GetStringSlice("types")
		logLevel, _ := cmd.Flags().GetString("log-level")

		log, err := logger.New(logger.Options{Level: logLevel, HumanReadable: true})
		if err != nil {
			return err
		}

		format, err := render.ParseFormat(formatName)
		if err != nil {
			return err
		}

		kinds, err := parseKinds(typeNames)
		if err != nil {
			return err
		}

		defs, err := deck.Load(cardsPath)
		if err != nil {
			return err
		}

		cards, err := defs.Cards(kinds)
		if err != nil {
			return err
		}

		ts, err := tokens.LoadCached(tokensPath)
		if err != nil {
			return err
		}

		log.WithFields(map[string]any{"cards": len(cards), "output": outputDir}).Info("rendering deck")

		stats := map[card.Kind]int{}
		failed := 0
		for _, c := range cards {
			id := c.Common().ID
			path := filepath.Join(outputDir, id+"."+format.Extension())
			if _, err := render.CardToFile(c, ts, path, format); err != nil {
				// Per-card failures are a batch concern, not an engine one:
				// log, skip, keep going.
				failed++
				log.WithFields(map[string]any{"card": id}).Error(err, "render failed")
				continue
			}
			stats[c.Kind()]++
			log.WithFields(map[string]any{"card": id, "file": path}).Debug("card rendered")
		}

		printStats(stats, failed, outputDir)
		if failed > 0 {
			return fmt.Errorf("%d card(s) failed to render", failed)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("cards", "c", "", "Path to the cards YAML file")
	renderCmd.Flags().String("tokens", "", "Path to the design tokens file")
	renderCmd.Flags().StringP("output", "o", "", "Output directory for rendered cards")
	renderCmd.Flags().StringSliceP("types", "t", []string{"all"}, "Card types to render (property, action, money, rent, wildcard, all)")
	renderCmd.Flags().StringP("format", "f", "", "Output image format (png or jpeg)")
	renderCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// flagOrDefault prefers an explicitly set flag over the config value.
func flagOrDefault(cmd *cobra.Command, name, fallback string) string {
	value, _ := cmd.Flags().GetString(name)
	if value != "" {
		return value
	}
	return fallback
}

// parseKinds resolves the --types flag into a kind filter. "all" or an
// empty list renders everything (nil filter).
func parseKinds(names []string) (map[card.Kind]bool, error) {
	kinds := map[card.Kind]bool{}
	for _, name := range names {
		switch name {
		case "all":
			return nil, nil
		case "property", "action", "money", "rent", "wildcard":
			kinds[card.Kind(name)] = true
		default:
			return nil, fmt.Errorf("unknown card type: %s", name)
		}
	}
	if len(kinds) == 0 {
		return nil, nil
	}
	return kinds, nil
}

func printStats(stats map[card.Kind]int, failed int, outputDir string) {
	total := 0
	fmt.Println()
	fmt.Println("Render summary:")
	fmt.Println("---------------")
	for _, kind := range []card.Kind{card.Property, card.Action, card.Money, card.Rent, card.Wildcard} {
		count := stats[kind]
		total += count
		fmt.Printf("  %s %d\n", colorize.CyanString("%-10s", string(kind)), count)
	}
	fmt.Printf("  %s %d -> %s\n", colorize.HiWhiteString("%-10s", "total"), total, outputDir)
	if failed > 0 {
		fmt.Printf("  %s %d\n", colorize.RedString("%-10s", "failed"), failed)
	}
}
