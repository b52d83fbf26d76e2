package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
	ddgerrors "github.com/hbmartin/deal-deck-generator/pkg/errors"
)

// testStore builds a complete in-memory token tree so render tests never
// touch the filesystem.
func testStore() *tokens.Store {
	layoutCommon := func(extra map[string]any) map[string]any {
		layout := map[string]any{
			"footer_text": map[string]any{"y": 440},
		}
		for k, v := range extra {
			layout[k] = v
		}
		return layout
	}

	return tokens.NewStore(map[string]any{
		"global": map[string]any{
			"card": map[string]any{
				"width":         413,
				"height":        455,
				"corner_radius": 20,
			},
			"value_badge": map[string]any{
				"diameter": 50,
				"position": map[string]any{
					"top_left":     map[string]any{"x": 45, "y": 45},
					"bottom_right": map[string]any{"x": -45, "y": -45},
				},
			},
			"colors": map[string]any{
				"property_sets": map[string]any{
					"brown":      "#955436",
					"light_blue": "#AAE0FA",
					"pink":       "#D93A96",
					"orange":     "#F7941D",
					"red":        "#ED1B24",
					"yellow":     "#FEF200",
					"green":      "#1FB25A",
					"dark_blue":  "#0072BB",
					"railroad":   "#000000",
					"utility":    "#28A228",
				},
			},
		},
		"card_types": map[string]any{
			"property": map[string]any{
				"colors": map[string]any{"background": "#F7F2E7"},
				"layout": layoutCommon(map[string]any{
					"header_bar":   map[string]any{"height": 80, "padding": 15},
					"rent_section": map[string]any{"start_y": 170, "row_height": 55},
				}),
			},
			"action": map[string]any{
				"colors": map[string]any{"background": "#FDF6E3", "circle_bg": "#F5E6C8"},
				"layout": layoutCommon(map[string]any{
					"title_bar":        map[string]any{"y": 45},
					"title_circle":     map[string]any{"center_y": 200, "diameter": 240, "border_width": 4},
					"description_area": map[string]any{"start_y": 340, "width": 340},
				}),
			},
			"money": map[string]any{
				"colors": map[string]any{"background": "#FBF3D8", "circle_bg": "#F0E3B6"},
				"layout": layoutCommon(map[string]any{
					"denomination_circle": map[string]any{"center_y": 227, "diameter": 230, "border_width": 4},
				}),
			},
			"rent": map[string]any{
				"colors": map[string]any{"background": "#FDF6E3"},
				"layout": layoutCommon(map[string]any{
					"title_bar":        map[string]any{"y": 45},
					"color_circles":    map[string]any{"center_y": 210, "outer_diameter": 220, "inner_diameter": 120},
					"description_area": map[string]any{"start_y": 350, "width": 340},
				}),
			},
			"wildcard": map[string]any{
				"colors": map[string]any{"background": "#F7F2E7"},
				"layout": layoutCommon(map[string]any{
					"color_stripe_header": map[string]any{"y": 30, "height": 60},
					"title_bar":           map[string]any{"y": 115},
					"character_area":      map[string]any{"center_y": 230},
					"description_area":    map[string]any{"start_y": 330, "width": 340},
				}),
			},
		},
	})
}

func sampleCards(t *testing.T) []card.Card {
	t.Helper()

	property, err := card.NewProperty("p-green-1", "Pacific Avenue", "green", 4,
		[]card.RentStep{{Count: 1, Amount: 2}, {Count: 2, Amount: 4}, {Count: 3, Amount: 7}}, 3)
	require.NoError(t, err)

	money, err := card.NewMoney("money-5m", 5)
	require.NoError(t, err)

	return []card.Card{
		property,
		card.NewAction("deal-breaker", "Deal Breaker", 5, "Steal a complete set of properties from any player."),
		money,
		card.NewRent("rent-wild", "Rent", 3, nil, true, "Charge rent in any color."),
		card.NewWildcard("wild-any", "Property Wild Card", 0, nil, true, "Use as part of any set."),
	}
}

func TestEveryVariantRendersCanonicalSize(t *testing.T) {
	t.Parallel()

	ts := testStore()
	for _, c := range sampleCards(t) {
		canvas, err := Card(c, ts)
		require.NoError(t, err, "card %s", c.Common().ID)

		w, h := canvas.Size()
		require.Equal(t, 413, w, "card %s", c.Common().ID)
		require.Equal(t, 455, h, "card %s", c.Common().ID)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	ts := testStore()
	for _, c := range sampleCards(t) {
		first, err := Card(c, ts)
		require.NoError(t, err)
		second, err := Card(c, ts)
		require.NoError(t, err)

		require.Equal(t, first.Image().Pix, second.Image().Pix, "card %s", c.Common().ID)
	}
}

func TestUnknownColorSetStillRenders(t *testing.T) {
	t.Parallel()

	c, err := card.NewProperty("p-custom", "Speculative Avenue", "turquoise", 2,
		[]card.RentStep{{Count: 1, Amount: 1}}, 1)
	require.NoError(t, err)

	canvas, err := Card(c, testStore())
	require.NoError(t, err)
	require.NotNil(t, canvas)
}

func TestMissingTokenKeyIsFatal(t *testing.T) {
	t.Parallel()

	// A tree without the money layout table.
	ts := tokens.NewStore(map[string]any{
		"global": map[string]any{
			"card": map[string]any{"width": 413, "height": 455, "corner_radius": 20},
		},
		"card_types": map[string]any{
			"money": map[string]any{
				"colors": map[string]any{"background": "#FBF3D8"},
			},
		},
	})

	money, err := card.NewMoney("money-1m", 1)
	require.NoError(t, err)

	_, err = Card(money, ts)
	require.Error(t, err)

	var missing *ddgerrors.MissingTokenKeyError
	require.ErrorAs(t, err, &missing)
}

func TestUnsupportedCardType(t *testing.T) {
	t.Parallel()

	_, err := Card(bogusCard{}, testStore())
	var unsupported *ddgerrors.UnsupportedCardTypeError
	require.ErrorAs(t, err, &unsupported)
}

type bogusCard struct{}

func (bogusCard) Kind() card.Kind   { return card.Kind("bogus") }
func (bogusCard) Common() card.Meta { return card.Meta{} }

func TestWildRentUsesAllTenColors(t *testing.T) {
	t.Parallel()

	wild := card.NewRent("rent-wild", "Rent", 3, []string{"green"}, true, "")
	plain := card.NewRent("rent-green", "Rent", 1, []string{"green"}, false, "")

	ts := testStore()
	wildCanvas, err := Card(wild, ts)
	require.NoError(t, err)
	plainCanvas, err := Card(plain, ts)
	require.NoError(t, err)

	// The wild wheel draws all ten segment colors; the single-color disc
	// cannot, so the two faces must differ.
	require.NotEqual(t, wildCanvas.Image().Pix, plainCanvas.Image().Pix)
}

func TestRentTableRendersInDeclaredOrder(t *testing.T) {
	t.Parallel()

	ts := testStore()

	// The rent table is trusted verbatim: a descending table still renders,
	// rows in the declared order, no sorting.
	descending, err := card.NewProperty("p-desc", "Baltic Avenue", "brown", 1,
		[]card.RentStep{{Count: 2, Amount: 4}, {Count: 1, Amount: 2}}, 2)
	require.NoError(t, err)
	ascending, err := card.NewProperty("p-desc", "Baltic Avenue", "brown", 1,
		[]card.RentStep{{Count: 1, Amount: 2}, {Count: 2, Amount: 4}}, 2)
	require.NoError(t, err)

	descCanvas, err := Card(descending, ts)
	require.NoError(t, err)
	ascCanvas, err := Card(ascending, ts)
	require.NoError(t, err)

	// Same rows in a different order must land in different positions.
	require.NotEqual(t, descCanvas.Image().Pix, ascCanvas.Image().Pix)
}

func TestZeroValueDrawsNoBadge(t *testing.T) {
	t.Parallel()

	ts := testStore()

	with := card.NewWildcard("w1", "Property Wild Card", 4, []string{"green"}, false, "")
	without := card.NewWildcard("w1", "Property Wild Card", 0, []string{"green"}, false, "")

	withCanvas, err := Card(with, ts)
	require.NoError(t, err)
	withoutCanvas, err := Card(without, ts)
	require.NoError(t, err)

	require.NotEqual(t, withCanvas.Image().Pix, withoutCanvas.Image().Pix)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Format{
		"":     FormatPNG,
		"png":  FormatPNG,
		"jpeg": FormatJPEG,
		"jpg":  FormatJPEG,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, "format %q", name)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("webp")
	require.Error(t, err)
}

func TestCardToFileWritesImage(t *testing.T) {
	t.Parallel()

	money, err := card.NewMoney("money-10m", 10)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "deck", "money-10m.png")

	_, err = CardToFile(money, testStore(), path, FormatPNG)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// PNG signature.
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestCardToFileLeavesNoPartialFile(t *testing.T) {
	t.Parallel()

	money, err := card.NewMoney("money-1m", 1)
	require.NoError(t, err)

	// Empty token tree makes the render fail before any encode.
	ts := tokens.NewStore(map[string]any{})

	dir := t.TempDir()
	path := filepath.Join(dir, "money-1m.png")

	_, err = CardToFile(money, ts, path, FormatPNG)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestContactSheetGrid(t *testing.T) {
	t.Parallel()

	ts := testStore()

	var images []image.Image
	for _, c := range sampleCards(t) {
		canvas, err := Card(c, ts)
		require.NoError(t, err)
		images = append(images, canvas.Image())
	}

	// 5 cards in 2 columns -> 3 rows.
	sheet := ContactSheet(images, 2, 100)
	cellHeight := 100 * 455 / 413

	wantWidth := sheetMargin*2 + 2*100 + sheetGap
	wantHeight := sheetMargin*2 + 3*cellHeight + 2*sheetGap
	require.Equal(t, wantWidth, sheet.Bounds().Dx())
	require.Equal(t, wantHeight, sheet.Bounds().Dy())
}

func TestContactSheetEmpty(t *testing.T) {
	t.Parallel()

	sheet := ContactSheet(nil, 4, 100)
	require.Equal(t, sheetMargin*2, sheet.Bounds().Dx())
}
