package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hbmartin/deal-deck-generator/internal/card"
)

func writeDeck(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

const sampleDeck = `
property_cards:
  - id: property-green-1
    name: Pacific Avenue
    color: green
    value: 4
    set_size: 3
    rent_values:
      - [1, 2]
      - [2, 4]
      - [3, 7]

action_cards:
  - id: pass-go
    name: Pass Go
    value: 1
    quantity: 3
    description: Draw 2 extra cards.

money_cards:
  - denomination: 5
    quantity: 2
  - denomination: 10

rent_cards:
  - id: rent-wild
    name: Rent
    value: 3
    is_wild: true

wildcards:
  - id: wildcard-multicolor
    name: Property Wild Card
    is_multicolor: true
`

func TestLoadAndExpand(t *testing.T) {
	t.Parallel()

	defs, err := Load(writeDeck(t, sampleDeck))
	require.NoError(t, err)

	cards, err := defs.Cards(nil)
	require.NoError(t, err)
	// 1 property + 3 actions + 3 money + 1 rent + 1 wildcard.
	require.Len(t, cards, 9)

	ids := map[string]bool{}
	for _, c := range cards {
		ids[c.Common().ID] = true
	}
	require.True(t, ids["pass-go-1"])
	require.True(t, ids["pass-go-3"])
	require.True(t, ids["money-5m-2"])
	// Single-card definitions keep their IDs unsuffixed.
	require.True(t, ids["money-10m"])
	require.True(t, ids["property-green-1"])
}

func TestCardsKindFilter(t *testing.T) {
	t.Parallel()

	defs, err := Load(writeDeck(t, sampleDeck))
	require.NoError(t, err)

	cards, err := defs.Cards(map[card.Kind]bool{card.Money: true, card.Rent: true})
	require.NoError(t, err)
	require.Len(t, cards, 4)
	for _, c := range cards {
		require.Contains(t, []card.Kind{card.Money, card.Rent}, c.Kind())
	}
}

func TestPropertyRentTableOrderPreserved(t *testing.T) {
	t.Parallel()

	defs, err := Load(writeDeck(t, sampleDeck))
	require.NoError(t, err)

	cards, err := defs.Cards(map[card.Kind]bool{card.Property: true})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	prop, ok := cards[0].(*card.PropertyCard)
	require.True(t, ok)
	require.Equal(t, []card.RentStep{
		{Count: 1, Amount: 2},
		{Count: 2, Amount: 4},
		{Count: 3, Amount: 7},
	}, prop.RentTable)
}

func TestLoadRejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	_, err := Load(writeDeck(t, `
property_cards:
  - id: broken
    name: No Color
    rent_values:
      - [1, 1]
`))
	require.Error(t, err)
}

func TestLoadRejectsRentCardWithTooManyColors(t *testing.T) {
	t.Parallel()

	_, err := Load(writeDeck(t, `
rent_cards:
  - id: rent-everything
    name: Rent
    colors: [green, red, brown]
`))
	require.Error(t, err)
}

func TestCardsRejectsMalformedRentPairs(t *testing.T) {
	t.Parallel()

	defs, err := Load(writeDeck(t, `
property_cards:
  - id: bad-pairs
    name: Bad Pairs
    color: red
    rent_values:
      - [1, 2, 3]
`))
	require.NoError(t, err)

	_, err = defs.Cards(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad-pairs")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
