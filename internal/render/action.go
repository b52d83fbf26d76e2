package render

import (
	"strings"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

// actionNameSplitLen is the length past which an action name is broken
// into two lines inside the title circle.
const actionNameSplitLen = 12

// renderAction draws an action card: chain-link border, fixed caption, the
// action name inside a circle, optional description and corner badges.
func renderAction(c *card.ActionCard, ts *tokens.Store) (*Canvas, error) {
	canvas, width, _, err := newFrame(ts, "action")
	if err != nil {
		return nil, err
	}

	if err := DecorativeBorder(canvas, 15, "#505050", BorderChainLink); err != nil {
		return nil, err
	}

	tr := &tokenReader{ts: ts}
	titleY := tr.Int("card_types.action.layout.title_bar.y")
	circleCenterY := tr.Int("card_types.action.layout.title_circle.center_y")
	circleDiameter := tr.Int("card_types.action.layout.title_circle.diameter")
	circleBorder := tr.Int("card_types.action.layout.title_circle.border_width")
	circleBg := tr.Hex("card_types.action.colors.circle_bg")
	descStartY := tr.Int("card_types.action.layout.description_area.start_y")
	descWidth := tr.Int("card_types.action.layout.description_area.width")
	footerY := tr.Int("card_types.action.layout.footer_text.y")
	if tr.err != nil {
		return nil, tr.err
	}

	black, err := ParseHex("#000000")
	if err != nil {
		return nil, err
	}

	titleFace, err := Face(16, true)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	canvas.DrawText("ACTION CARD", width/2, titleY, titleFace, black, AnchorCenter)

	canvas.FillCircle(width/2, circleCenterY, circleDiameter/2, circleBg)
	canvas.StrokeCircle(width/2, circleCenterY, circleDiameter/2, black, float64(circleBorder))

	nameFace, err := Face(28, true)
	if err != nil {
		return nil, err
	}
	defer nameFace.Close()
	name := c.ActionName
	if name == "" {
		name = c.Title
	}
	// Long names are bisected at the midpoint of the word list, not by
	// measured width.
	if len(name) > actionNameSplitLen {
		words := strings.Fields(name)
		mid := len(words) / 2
		line1 := strings.Join(words[:mid], " ")
		line2 := strings.Join(words[mid:], " ")
		canvas.DrawText(strings.ToUpper(line1), width/2, circleCenterY-20, nameFace, black, AnchorCenter)
		canvas.DrawText(strings.ToUpper(line2), width/2, circleCenterY+20, nameFace, black, AnchorCenter)
	} else {
		canvas.DrawText(strings.ToUpper(name), width/2, circleCenterY, nameFace, black, AnchorCenter)
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
