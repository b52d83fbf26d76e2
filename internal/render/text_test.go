package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFaceParsesBundledFonts(t *testing.T) {
	t.Parallel()

	regular, err := Face(12, false)
	require.NoError(t, err)
	require.NotNil(t, regular)

	bold, err := Face(28, true)
	require.NoError(t, err)
	require.NotNil(t, bold)
}

func TestWrapTextKeepsShortTextOnOneLine(t *testing.T) {
	t.Parallel()

	face, err := Face(12, false)
	require.NoError(t, err)

	lines := WrapText("Draw 2 extra cards.", face, 340)
	require.Equal(t, []string{"Draw 2 extra cards."}, lines)
}

func TestWrapTextBreaksLongText(t *testing.T) {
	t.Parallel()

	face, err := Face(12, false)
	require.NoError(t, err)

	text := "Force one player to pay you rent for properties you own in any color, " +
		"or collect from every player at once."
	lines := WrapText(text, face, 200)
	require.Greater(t, len(lines), 1)

	// No word is lost or reordered.
	require.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapTextEnforcesMinimumBudget(t *testing.T) {
	t.Parallel()

	face, err := Face(12, false)
	require.NoError(t, err)

	// Even an absurdly narrow width keeps at least ten characters per line,
	// so one long word is never split.
	lines := WrapText("uninterruptible", face, 1)
	require.Equal(t, []string{"uninterruptible"}, lines)
}

func TestWrapTextPreservesParagraphBreaks(t *testing.T) {
	t.Parallel()

	face, err := Face(12, false)
	require.NoError(t, err)

	lines := WrapText("First part.\n\nSecond part.", face, 340)
	require.Equal(t, []string{"First part.", "", "Second part."}, lines)
}
