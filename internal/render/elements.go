package render

import (
	"fmt"
	"image"
	"strconv"
)

// BadgeStyle holds the colors of a circular value badge.
type BadgeStyle struct {
	Background  string
	Border      string
	Text        string
	BorderWidth float64
}

// DefaultBadgeStyle is the white badge with a black ring used on every
// card variant.
func DefaultBadgeStyle() BadgeStyle {
	return BadgeStyle{
		Background:  "#FFFFFF",
		Border:      "#000000",
		Text:        "#000000",
		BorderWidth: 3,
	}
}

// ValueBadge draws a circular badge with a centered "$<value>M" label.
func ValueBadge(c *Canvas, value, cx, cy, diameter int, style BadgeStyle) error {
	background, err := ParseHex(style.Background)
	if err != nil {
		return err
	}
	border, err := ParseHex(style.Border)
	if err != nil {
		return err
	}
	ink, err := ParseHex(style.Text)
	if err != nil {
		return err
	}

	radius := diameter / 2
	c.FillCircle(cx, cy, radius, background)
	c.StrokeCircle(cx, cy, radius, border, style.BorderWidth)

	face, err := Face(float64(diameter)/3, true)
	if err != nil {
		return err
	}
	defer face.Close()
	c.DrawText(fmt.Sprintf("$%dM", value), cx, cy, face, ink, AnchorCenter)
	return nil
}

// BorderPattern selects a decorative border style.
type BorderPattern string

const (
	BorderChainLink BorderPattern = "chain_link"
	BorderDouble    BorderPattern = "double"
	BorderSolid     BorderPattern = "solid"
)

// Chain-link border geometry: segment and gap lengths in pixels.
const (
	chainSegment = 15.0
	chainGap     = 5.0
)

// DecorativeBorder draws a border inset 10px from the card edge. Patterns
// form a closed set; an unrecognized pattern falls back to the solid style
// rather than failing, so token files may name styles this build predates.
func DecorativeBorder(c *Canvas, borderWidth float64, hexColor string, pattern BorderPattern) error {
	col, err := ParseHex(hexColor)
	if err != nil {
		return err
	}
	w, h := c.Size()
	const margin = 10

	switch pattern {
	case BorderChainLink:
		dashes := []float64{chainSegment, chainGap}
		c.Line(margin, margin, w-margin, margin, col, 3, dashes)
		c.Line(margin, h-margin, w-margin, h-margin, col, 3, dashes)
		c.Line(margin, margin, margin, h-margin, col, 3, dashes)
		c.Line(w-margin, margin, w-margin, h-margin, col, 3, dashes)
	case BorderDouble:
		c.StrokeRect(margin, margin, w-margin, h-margin, col, 2)
		c.StrokeRect(margin+5, margin+5, w-margin-5, h-margin-5, col, 2)
	default:
		c.StrokeRect(margin, margin, w-margin, h-margin, col, borderWidth)
	}
	return nil
}

// PropertyRentRow draws one row of a property rent table at vertical
// position y: a two-tone house glyph, a numbered badge, a dotted connector
// and the rent amount right-aligned. Row spacing is the caller's concern.
func PropertyRentRow(c *Canvas, y, count, rentAmount int, iconHex string, xStart, rowWidth int) error {
	iconColor, err := ParseHex(iconHex)
	if err != nil {
		return err
	}
	black, err := ParseHex("#000000")
	if err != nil {
		return err
	}
	white, err := ParseHex("#FFFFFF")
	if err != nil {
		return err
	}
	gray, err := ParseHex("#505050")
	if err != nil {
		return err
	}

	const iconSize = 40
	iconX := xStart + 20
	houseY := y - iconSize/2

	// House body with a darker roof for the two-tone look.
	c.FillRect(iconX, houseY+iconSize/3, iconX+iconSize, houseY+iconSize, iconColor)
	c.StrokeRect(iconX, houseY+iconSize/3, iconX+iconSize, houseY+iconSize, black, 2)
	roof := []image.Point{
		{X: iconX, Y: houseY + iconSize/3},
		{X: iconX + iconSize/2, Y: houseY},
		{X: iconX + iconSize, Y: houseY + iconSize/3},
	}
	c.FillPolygon(roof, shade(iconColor, 0.25))
	c.StrokePolygon(roof, black, 1)

	// Numbered badge over the house.
	const badgeRadius = 18
	badgeX := iconX + iconSize/2
	c.FillCircle(badgeX, y, badgeRadius, white)
	c.StrokeCircle(badgeX, y, badgeRadius, black, 2)

	countFace, err := Face(16, true)
	if err != nil {
		return err
	}
	defer countFace.Close()
	c.DrawText(strconv.Itoa(count), badgeX, y, countFace, black, AnchorCenter)

	// Dotted connector.
	dotsStart := iconX + iconSize + 20
	dotsEnd := xStart + rowWidth - 80
	for x := dotsStart; x < dotsEnd; x += 10 {
		c.FillCircle(x, y, 2, gray)
	}

	rentFace, err := Face(18, true)
	if err != nil {
		return err
	}
	defer rentFace.Close()
	c.DrawText(fmt.Sprintf("$%dM", rentAmount), xStart+rowWidth-50, y, rentFace, black, AnchorRightMiddle)
	return nil
}

// ColorStripes divides the span [xStart,xEnd] evenly among the given hex
// colors and paints one solid block per color, bordered as a unit. With no
// colors it draws nothing at all.
func ColorStripes(c *Canvas, hexColors []string, y, height, xStart, xEnd int) error {
	if len(hexColors) == 0 {
		return nil
	}
	black, err := ParseHex("#000000")
	if err != nil {
		return err
	}

	stripeWidth := (xEnd - xStart) / len(hexColors)
	for i, hex := range hexColors {
		col, err := ParseHex(hex)
		if err != nil {
			return err
		}
		x1 := xStart + i*stripeWidth
		c.FillRect(x1, y, x1+stripeWidth, y+height, col)
	}
	c.StrokeRect(xStart, y, xEnd, y+height, black, 2)
	return nil
}
