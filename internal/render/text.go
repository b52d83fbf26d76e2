package render

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Anchor positions text relative to its reference point.
type Anchor int

const (
	// AnchorTopLeft places the reference point at the top-left of the text.
	AnchorTopLeft Anchor = iota
	// AnchorCenter centers the text on the reference point.
	AnchorCenter
	// AnchorRightMiddle right-aligns the text, vertically centered.
	AnchorRightMiddle
)

// Align controls horizontal placement of wrapped paragraph lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontErr     error
)

func parseFonts() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		return
	}
	boldFont, fontErr = opentype.Parse(gobold.TTF)
}

// Face builds a font face at the given point size. Faces carry internal
// rasterization buffers, so each caller gets its own instance and renders
// stay free of shared mutable state.
func Face(size float64, bold bool) (font.Face, error) {
	fontOnce.Do(parseFonts)
	if fontErr != nil {
		return nil, fontErr
	}
	src := regularFont
	if bold {
		src = boldFont
	}
	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// DrawText draws a single line of text at (x,y) with the given anchor.
func (c *Canvas) DrawText(text string, x, y int, face font.Face, col color.Color, anchor Anchor) {
	metrics := face.Metrics()
	width := font.MeasureString(face, text)

	dot := fixed.P(x, y)
	switch anchor {
	case AnchorCenter:
		dot.X -= width / 2
		dot.Y += (metrics.Ascent - metrics.Descent) / 2
	case AnchorRightMiddle:
		dot.X -= width
		dot.Y += (metrics.Ascent - metrics.Descent) / 2
	default:
		dot.Y += metrics.Ascent
	}

	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(text)
}

// WrapText greedily wraps text to fit maxWidth pixels. Line capacity is
// estimated from the width of a reference glyph rather than measured per
// glyph; the approximation is intentional and matches the card layouts.
// Paragraph breaks in the input are preserved as empty lines.
func WrapText(text string, face font.Face, maxWidth int) []string {
	avg := font.MeasureString(face, "M").Ceil()
	if avg < 1 {
		avg = 1
	}
	budget := maxWidth / avg
	if budget < 10 {
		budget = 10
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapParagraph(paragraph, budget)...)
	}
	return lines
}

// wrapParagraph wraps a single paragraph to a character budget per line.
func wrapParagraph(paragraph string, budget int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	current := ""
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= budget:
			current += " " + word
		default:
			result = append(result, current)
			current = word
		}
	}
	if current != "" {
		result = append(result, current)
	}
	return result
}

// DrawParagraph wraps text to maxWidth and draws it line by line starting
// at the top-left position (x,y). Alignment is applied per line within the
// maxWidth span using measured line widths.
func (c *Canvas) DrawParagraph(text string, x, y int, face font.Face, col color.Color, maxWidth, lineHeight int, align Align) {
	for _, line := range WrapText(text, face, maxWidth) {
		lineX := x
		switch align {
		case AlignCenter:
			lineX = x + (maxWidth-font.MeasureString(face, line).Ceil())/2
		case AlignRight:
			lineX = x + maxWidth - font.MeasureString(face, line).Ceil()
		}
		c.DrawText(line, lineX, y, face, col, AnchorTopLeft)
		y += lineHeight
	}
}
