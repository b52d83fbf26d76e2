package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ddgerrors "github.com/hbmartin/deal-deck-generator/pkg/errors"
)

func testTree() map[string]any {
	return map[string]any{
		"global": map[string]any{
			"card": map[string]any{
				"width":         int64(413),
				"height":        int64(455),
				"corner_radius": int64(20),
			},
			"colors": map[string]any{
				"property_sets": map[string]any{
					"brown": "#955436",
					"green": "#1FB25A",
				},
			},
		},
		"card_types": map[string]any{
			"money": map[string]any{
				"colors": map[string]any{"background": "#FBF3D8"},
			},
		},
	}
}

func TestIntResolvesDottedPath(t *testing.T) {
	t.Parallel()

	ts := NewStore(testTree())

	width, err := ts.Int("global.card.width")
	require.NoError(t, err)
	require.Equal(t, 413, width)
}

func TestMissingKeyReportsFullPath(t *testing.T) {
	t.Parallel()

	ts := NewStore(testTree())

	_, err := ts.Int("global.card.border_width")
	require.Error(t, err)

	var missing *ddgerrors.MissingTokenKeyError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "global.card.border_width", missing.Path)
}

func TestLookupThroughLeafFails(t *testing.T) {
	t.Parallel()

	ts := NewStore(testTree())

	// global.card.width is a leaf; descending further must fail, not panic.
	_, err := ts.Int("global.card.width.px")
	var missing *ddgerrors.MissingTokenKeyError
	require.ErrorAs(t, err, &missing)
}

func TestStringTypeMismatch(t *testing.T) {
	t.Parallel()

	ts := NewStore(testTree())

	_, err := ts.String("global.card.width")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected string")
}

func TestPropertySetColorFallsBackForUnknownKey(t *testing.T) {
	t.Parallel()

	ts := NewStore(testTree())

	hex, err := ts.PropertySetColor("green")
	require.NoError(t, err)
	require.Equal(t, "#1FB25A", hex)

	hex, err = ts.PropertySetColor("turquoise")
	require.NoError(t, err)
	require.Equal(t, DefaultPropertyColor, hex)
}

func TestPropertySetColorRequiresPalette(t *testing.T) {
	t.Parallel()

	ts := NewStore(map[string]any{"global": map[string]any{}})

	_, err := ts.PropertySetColor("green")
	var missing *ddgerrors.MissingTokenKeyError
	require.ErrorAs(t, err, &missing)
}

func TestPropertySetColorsPreservesOrder(t *testing.T) {
	t.Parallel()

	ts := NewStore(testTree())

	hexes, err := ts.PropertySetColors([]string{"green", "brown", "unknown"})
	require.NoError(t, err)
	require.Equal(t, []string{"#1FB25A", "#955436", DefaultPropertyColor}, hexes)
}

func TestLoadDecodesTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.toml")
	require.NoError(t, os.WriteFile(path, []byte("[global.card]\nwidth = 413\n"), 0644))

	ts, err := Load(path)
	require.NoError(t, err)

	width, err := ts.Int("global.card.width")
	require.NoError(t, err)
	require.Equal(t, 413, width)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)

	var loadErr *ddgerrors.TokenLoadError
	require.ErrorAs(t, err, &loadErr)
}
