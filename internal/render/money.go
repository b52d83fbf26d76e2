package render

import (
	"fmt"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

// renderMoney draws a money card: chain-link border, one large denomination
// circle and denomination badges at both corner anchors. Unlike the other
// paid variants the corner badges are unconditional; the denomination is
// guaranteed positive by construction.
func renderMoney(c *card.MoneyCard, ts *tokens.Store) (*Canvas, error) {
	canvas, width, _, err := newFrame(ts, "money")
	if err != nil {
		return nil, err
	}

	if err := DecorativeBorder(canvas, 15, "#505050", BorderChainLink); err != nil {
		return nil, err
	}

	tr := &tokenReader{ts: ts}
	circleCenterY := tr.Int("card_types.money.layout.denomination_circle.center_y")
	circleDiameter := tr.Int("card_types.money.layout.denomination_circle.diameter")
	circleBorder := tr.Int("card_types.money.layout.denomination_circle.border_width")
	circleBg := tr.Hex("card_types.money.colors.circle_bg")
	footerY := tr.Int("card_types.money.layout.footer_text.y")
	if tr.err != nil {
		return nil, tr.err
	}

	black, err := ParseHex("#000000")
	if err != nil {
		return nil, err
	}

	canvas.FillCircle(width/2, circleCenterY, circleDiameter/2, circleBg)
	canvas.StrokeCircle(width/2, circleCenterY, circleDiameter/2, black, float64(circleBorder))

	denomFace, err := Face(60, true)
	if err != nil {
		return nil, err
	}
	defer denomFace.Close()
	canvas.DrawText(fmt.Sprintf("$%dM", c.Denomination), width/2, circleCenterY, denomFace, black, AnchorCenter)

	if err := drawValueBadges(canvas, ts, c.Denomination, true); err != nil {
		return nil, err
	}

	if err := drawFooter(canvas, footerY); err != nil {
		return nil, err
	}
	return canvas, nil
}
