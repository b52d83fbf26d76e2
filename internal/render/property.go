package render

import (
	"strings"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

// renderProperty draws a property card: a header bar tinted by the card's
// color set, the rent table in its declared order, an optional value badge
// and the footer line.
func renderProperty(c *card.PropertyCard, ts *tokens.Store) (*Canvas, error) {
	canvas, width, _, err := newFrame(ts, "property")
	if err != nil {
		return nil, err
	}

	headerHex, err := ts.PropertySetColor(c.ColorSet)
	if err != nil {
		return nil, err
	}
	headerColor, err := ParseHex(headerHex)
	if err != nil {
		return nil, err
	}
	black, err := ParseHex("#000000")
	if err != nil {
		return nil, err
	}

	tr := &tokenReader{ts: ts}
	headerHeight := tr.Int("card_types.property.layout.header_bar.height")
	headerPadding := tr.Int("card_types.property.layout.header_bar.padding")
	rentStartY := tr.Int("card_types.property.layout.rent_section.start_y")
	rowHeight := tr.Int("card_types.property.layout.rent_section.row_height")
	footerY := tr.Int("card_types.property.layout.footer_text.y")
	if tr.err != nil {
		return nil, tr.err
	}

	canvas.FillRoundedRect(headerPadding, headerPadding, width-headerPadding, headerHeight, 10, headerColor)
	canvas.StrokeRoundedRect(headerPadding, headerPadding, width-headerPadding, headerHeight, 10, black, 2)

	headerFace, err := Face(18, true)
	if err != nil {
		return nil, err
	}
	defer headerFace.Close()
	name := c.PropertyName
	if name == "" {
		name = c.Title
	}
	canvas.DrawText(strings.ToUpper(name), width/2, headerPadding+headerHeight/2, headerFace, black, AnchorCenter)

	rentFace, err := Face(24, true)
	if err != nil {
		return nil, err
	}
	defer rentFace.Close()
	canvas.DrawText("RENT", width/2, rentStartY-30, rentFace, black, AnchorCenter)

	captionFace, err := Face(12, false)
	if err != nil {
		return nil, err
	}
	defer captionFace.Close()
	captionY := rentStartY - 20
	canvas.DrawText("(No. of properties", width/2, captionY-8, captionFace, black, AnchorCenter)
	canvas.DrawText("owned in set)", width/2, captionY+8, captionFace, black, AnchorCenter)

	// Rows render in the table's declared order, top to bottom. The table
	// is trusted verbatim; no sorting, no monotonicity check.
	for i, step := range c.RentTable {
		y := rentStartY + i*rowHeight
		if err := PropertyRentRow(canvas, y, step.Count, step.Amount, headerHex, 30, width-60); err != nil {
			return nil, err
		}
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
