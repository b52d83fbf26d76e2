package render

import (
	"strings"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

// renderWildcard draws a property wildcard: a color-stripe header, a large
// "WILD" caption, optional description and at most one value badge.
// Wildcards never carry a bottom-right badge.
func renderWildcard(c *card.WildcardCard, ts *tokens.Store) (*Canvas, error) {
	canvas, width, _, err := newFrame(ts, "wildcard")
	if err != nil {
		return nil, err
	}

	tr := &tokenReader{ts: ts}
	stripeY := tr.Int("card_types.wildcard.layout.color_stripe_header.y")
	stripeHeight := tr.Int("card_types.wildcard.layout.color_stripe_header.height")
	titleY := tr.Int("card_types.wildcard.layout.title_bar.y")
	charCenterY := tr.Int("card_types.wildcard.layout.character_area.center_y")
	descStartY := tr.Int("card_types.wildcard.layout.description_area.start_y")
	descWidth := tr.Int("card_types.wildcard.layout.description_area.width")
	footerY := tr.Int("card_types.wildcard.layout.footer_text.y")
	if tr.err != nil {
		return nil, tr.err
	}

	stripeKeys := c.AllowedColorSets
	if c.Multicolor {
		stripeKeys = card.AllColorSets
	} else if len(stripeKeys) > 2 {
		stripeKeys = stripeKeys[:2]
	}
	stripeHexes, err := ts.PropertySetColors(stripeKeys)
	if err != nil {
		return nil, err
	}
	if err := ColorStripes(canvas, stripeHexes, stripeY, stripeHeight, 30, width-30); err != nil {
		return nil, err
	}

	black, err := ParseHex("#000000")
	if err != nil {
		return nil, err
	}
	gray, err := ParseHex("#505050")
	if err != nil {
		return nil, err
	}

	titleFace, err := Face(16, true)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	title := "PROPERTY WILD CARD"
	if c.Title != "" {
		title = strings.ToUpper(c.Title)
	}
	canvas.DrawText(title, width/2, titleY, titleFace, black, AnchorCenter)

	wildFace, err := Face(64, true)
	if err != nil {
		return nil, err
	}
	defer wildFace.Close()
	canvas.DrawText("WILD", width/2, charCenterY, wildFace, gray, AnchorCenter)

	if c.Description != "" {
		descFace, err := Face(11, false)
		if err != nil {
			return nil, err
		}
		defer descFace.Close()
		descX := (width - descWidth) / 2
		canvas.DrawParagraph(c.Description, descX, descStartY, descFace, black, descWidth, 13, AlignCenter)
	}

	if c.Value != 0 {
		if err := drawValueBadges(canvas, ts, c.Value, false); err != nil {
			return nil, err
		}
	}

	if err := drawFooter(canvas, footerY); err != nil {
		return nil, err
	}
	return canvas, nil
}
