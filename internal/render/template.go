package render

import (
	"image/color"

	"github.com/hbmartin/deal-deck-generator/internal/tokens"
)

// footerText is the print line carried on every card face.
const footerText = "© 1935, 2008 HASBRO"

// tokenReader reads token values with a sticky first error, so templates
// can resolve a whole layout block before checking once. A missing token
// still aborts the render with the offending dotted path.
type tokenReader struct {
	ts  *tokens.Store
	err error
}

func (r *tokenReader) Int(path string) int {
	if r.err != nil {
		return 0
	}
	v, err := r.ts.Int(path)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *tokenReader) String(path string) string {
	if r.err != nil {
		return ""
	}
	v, err := r.ts.String(path)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *tokenReader) Hex(path string) color.NRGBA {
	if r.err != nil {
		return color.NRGBA{}
	}
	v, err := r.ts.String(path)
	if err != nil {
		r.err = err
		return color.NRGBA{}
	}
	parsed, err := ParseHex(v)
	if err != nil {
		r.err = err
	}
	return parsed
}

// newFrame allocates the canvas for a card variant: canonical card size,
// rounded corners, and the variant's background color.
func newFrame(ts *tokens.Store, kind string) (*Canvas, int, int, error) {
	tr := &tokenReader{ts: ts}
	width := tr.Int("global.card.width")
	height := tr.Int("global.card.height")
	radius := tr.Int("global.card.corner_radius")
	background := tr.Hex("card_types." + kind + ".colors.background")
	if tr.err != nil {
		return nil, 0, 0, tr.err
	}
	return NewCanvas(width, height, background, radius), width, height, nil
}

// drawValueBadges draws the top-left badge and, when bottomRight is set,
// the mirrored bottom-right badge. The bottom-right token offsets are
// negative and added to the card dimensions.
func drawValueBadges(c *Canvas, ts *tokens.Store, value int, bottomRight bool) error {
	tr := &tokenReader{ts: ts}
	diameter := tr.Int("global.value_badge.diameter")
	tlx := tr.Int("global.value_badge.position.top_left.x")
	tly := tr.Int("global.value_badge.position.top_left.y")
	if tr.err != nil {
		return tr.err
	}
	if err := ValueBadge(c, value, tlx, tly, diameter, DefaultBadgeStyle()); err != nil {
		return err
	}
	if !bottomRight {
		return nil
	}

	brx := tr.Int("global.value_badge.position.bottom_right.x")
	bry := tr.Int("global.value_badge.position.bottom_right.y")
	if tr.err != nil {
		return tr.err
	}
	width, height := c.Size()
	return ValueBadge(c, value, width+brx, height+bry, diameter, DefaultBadgeStyle())
}

// drawFooter centers the footer print line at the given baseline.
func drawFooter(c *Canvas, y int) error {
	face, err := Face(10, false)
	if err != nil {
		return err
	}
	defer face.Close()
	gray, err := ParseHex("#505050")
	if err != nil {
		return err
	}
	width, _ := c.Size()
	c.DrawText(footerText, width/2, y, face, gray, AnchorCenter)
	return nil
}
