package cmd

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/hbmartin/deal-deck-generator/internal/config"
	"github.com/hbmartin/deal-deck-generator/internal/deck"
	"github.com/hbmartin/deal-deck-generator/internal/render"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render the whole deck onto a single contact sheet",
	Long: `Sheet renders every card in the deck definition and arranges the
thumbnails on a single overview image. Useful for eyeballing a full
deck after a token change.

Examples:
  dealdeck sheet
  dealdeck sheet --columns 8 --output deck-sheet.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		cardsPath := flagOrDefault(cmd, "cards", cfg.CardsFile)
		tokensPath := flagOrDefault(cmd, "tokens", cfg.TokensFile)
		outputPath, _ := cmd.Flags().GetString("output")
		columns, _ := cmd.Flags().GetInt("columns")
		cellWidth, _ := cmd.Flags().GetInt("cell-width")

		defs, err := deck.Load(cardsPath)
		if err != nil {
			return err
		}

		cards, err := defs.Cards(nil)
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			return fmt.Errorf("deck is empty: %s", cardsPath)
		}

		ts, err := tokens.LoadCached(tokensPath)
		if err != nil {
			return err
		}

		images := make([]image.Image, 0, len(cards))
		for _, c := range cards {
			canvas, err := render.Card(c, ts)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", c.Common().ID, err)
			}
			images = append(images, canvas.Image())
		}

		sheet := render.ContactSheet(images, columns, cellWidth)
		if err := imaging.Save(sheet, outputPath); err != nil {
			return fmt.Errorf("saving contact sheet: %w", err)
		}

		fmt.Printf("Wrote %d cards to %s\n", len(cards), outputPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sheetCmd)

	sheetCmd.Flags().StringP("cards", "c", "", "Path to the cards YAML file")
	sheetCmd.Flags().String("tokens", "", "Path to the design tokens file")
	sheetCmd.Flags().StringP("output", "o", "deck-sheet.png", "Output path for the contact sheet")
	sheetCmd.Flags().Int("columns", 6, "Number of cards per row")
	sheetCmd.Flags().Int("cell-width", 200, "Thumbnail width in pixels")
}
