package render

import (
	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

// renderRent draws a rent card. Wild rent fans all ten color sets out as
// equal pie segments around an "ALL / COLORS" disc; otherwise the card's
// one or two explicit colors become concentric discs.
func renderRent(c *card.RentCard, ts *tokens.Store) (*Canvas, error) {
	canvas, width, _, err := newFrame(ts, "rent")
	if err != nil {
		return nil, err
	}

	if err := DecorativeBorder(canvas, 15, "#505050", BorderChainLink); err != nil {
		return nil, err
	}

	tr := &tokenReader{ts: ts}
	titleY := tr.Int("card_types.rent.layout.title_bar.y")
	circleCenterY := tr.Int("card_types.rent.layout.color_circles.center_y")
	outerRadius := tr.Int("card_types.rent.layout.color_circles.outer_diameter") / 2
	innerRadius := tr.Int("card_types.rent.layout.color_circles.inner_diameter") / 2
	descStartY := tr.Int("card_types.rent.layout.description_area.start_y")
	descWidth := tr.Int("card_types.rent.layout.description_area.width")
	footerY := tr.Int("card_types.rent.layout.footer_text.y")
	if tr.err != nil {
		return nil, tr.err
	}

	black, err := ParseHex("#000000")
	if err != nil {
		return nil, err
	}
	white, err := ParseHex("#FFFFFF")
	if err != nil {
		return nil, err
	}

	titleFace, err := Face(20, true)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	canvas.DrawText("RENT", width/2, titleY, titleFace, black, AnchorCenter)

	cx := width / 2
	if c.Wild {
		// The explicit color list is ignored when wild: always the ten
		// canonical sets, one 36-degree segment each.
		hexes, err := ts.PropertySetColors(card.AllColorSets)
		if err != nil {
			return nil, err
		}
		segment := 360.0 / float64(len(hexes))

		canvas.StrokeCircle(cx, circleCenterY, outerRadius, black, 4)
		for i, hex := range hexes {
			fill, err := ParseHex(hex)
			if err != nil {
				return nil, err
			}
			start := float64(i) * segment
			canvas.FillPieSlice(cx, circleCenterY, outerRadius, start, start+segment, fill)
			canvas.StrokePieSlice(cx, circleCenterY, outerRadius, start, start+segment, black, 2)
		}

		canvas.FillCircle(cx, circleCenterY, innerRadius, white)
		canvas.StrokeCircle(cx, circleCenterY, innerRadius, black, 3)

		allFace, err := Face(42, true)
		if err != nil {
			return nil, err
		}
		defer allFace.Close()
		canvas.DrawText("ALL", cx, circleCenterY-15, allFace, black, AnchorCenter)

		colorsFace, err := Face(20, true)
		if err != nil {
			return nil, err
		}
		defer colorsFace.Close()
		canvas.DrawText("COLORS", cx, circleCenterY+15, colorsFace, black, AnchorCenter)
	} else if len(c.ColorSets) > 0 {
		outerHex, err := ts.PropertySetColor(c.ColorSets[0])
		if err != nil {
			return nil, err
		}
		outer, err := ParseHex(outerHex)
		if err != nil {
			return nil, err
		}
		canvas.FillCircle(cx, circleCenterY, outerRadius, outer)
		canvas.StrokeCircle(cx, circleCenterY, outerRadius, black, 4)

		if len(c.ColorSets) > 1 {
			innerHex, err := ts.PropertySetColor(c.ColorSets[1])
			if err != nil {
				return nil, err
			}
			inner, err := ParseHex(innerHex)
			if err != nil {
				return nil, err
			}
			canvas.FillCircle(cx, circleCenterY, innerRadius, inner)
			canvas.StrokeCircle(cx, circleCenterY, innerRadius, black, 3)
		}
	}

	if c.Description != "" {
		descFace, err := Face(12, false)
		if err != nil {
			return nil, err
		}
		defer descFace.Close()
		descX := (width - descWidth) / 2
		canvas.DrawParagraph(c.Description, descX, descStartY, descFace, black, descWidth, 14, AlignCenter)
	}

	if c.Value != 0 {
		if err := drawValueBadges(canvas, ts, c.Value, true); err != nil {
			return nil, err
		}
	}

	if err := drawFooter(canvas, footerY); err != nil {
		return nil, err
	}
	return canvas, nil
}
