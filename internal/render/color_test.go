package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	ddgerrors "github.com/hbmartin/deal-deck-generator/pkg/errors"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	c, err := ParseHex("#1FB25A")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x1F, G: 0xB2, B: 0x5A, A: 0xFF}, c)

	// Without the leading hash.
	c, err = ParseHex("505050")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF}, c)

	// Eight digits carry an explicit alpha.
	c, err = ParseHex("#FF000080")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0x80}, c)
}

func TestParseHexRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12", "#12345", "#GGGGGG", "red"} {
		_, err := ParseHex(input)
		require.Error(t, err, "input %q", input)

		var invalid *ddgerrors.InvalidColorFormatError
		require.ErrorAs(t, err, &invalid, "input %q", input)
	}
}

func TestShadeDarkens(t *testing.T) {
	t.Parallel()

	base := color.NRGBA{R: 0xF7, G: 0x94, B: 0x1D, A: 0xFF}
	darker := shade(base, 0.25)

	r1, g1, b1, _ := base.RGBA()
	r2, g2, b2, _ := darker.RGBA()
	require.Less(t, r2+g2+b2, r1+g1+b1)
}
