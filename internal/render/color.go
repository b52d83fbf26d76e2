package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	ddgerrors "github.com/hbmartin/deal-deck-generator/pkg/errors"
)

// ParseHex converts a 6-digit (#RRGGBB) or 8-digit (#RRGGBBAA) hex string
// into a color. The leading # is optional. Any other length fails with an
// InvalidColorFormatError.
func ParseHex(hex string) (color.NRGBA, error) {
	trimmed := strings.TrimPrefix(hex, "#")

	var digits [4]uint8
	switch len(trimmed) {
	case 6, 8:
		for i := 0; i*2 < len(trimmed); i++ {
			v, err := strconv.ParseUint(trimmed[i*2:i*2+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, ddgerrors.NewInvalidColorFormatError(hex)
			}
			digits[i] = uint8(v)
		}
	default:
		return color.NRGBA{}, ddgerrors.NewInvalidColorFormatError(hex)
	}

	alpha := uint8(0xFF)
	if len(trimmed) == 8 {
		alpha = digits[3]
	}
	return color.NRGBA{R: digits[0], G: digits[1], B: digits[2], A: alpha}, nil
}

// shade blends a color toward black in Lab space. Used for the darker tone
// of two-tone glyphs such as the rent-row house roof.
func shade(c color.Color, amount float64) color.Color {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	dark := base.BlendLab(colorful.Color{R: 0, G: 0, B: 0}, amount).Clamped()
	r, g, b := dark.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
