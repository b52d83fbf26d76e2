package deck

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hbmartin/deal-deck-generator/internal/card"
)

// Definitions is the parsed cards.yaml document: declarative card lists
// organized by variant.
type Definitions struct {
	PropertyCards []PropertyDef `yaml:"property_cards" validate:"omitempty,dive"`
	ActionCards   []ActionDef   `yaml:"action_cards" validate:"omitempty,dive"`
	MoneyCards    []MoneyDef    `yaml:"money_cards" validate:"omitempty,dive"`
	RentCards     []RentDef     `yaml:"rent_cards" validate:"omitempty,dive"`
	Wildcards     []WildcardDef `yaml:"wildcards" validate:"omitempty,dive"`
}

// PropertyDef declares one property card. RentValues holds
// (properties-owned, rent) pairs in display order.
type PropertyDef struct {
	ID         string  `yaml:"id" validate:"required"`
	Name       string  `yaml:"name" validate:"required"`
	Color      string  `yaml:"color" validate:"required"`
	Value      int     `yaml:"value" validate:"min=0"`
	RentValues [][]int `yaml:"rent_values" validate:"required,min=1"`
	SetSize    int     `yaml:"set_size" validate:"min=0"`
	Quantity   int     `yaml:"quantity" validate:"omitempty,min=1"`
}

// ActionDef declares one action card.
type ActionDef struct {
	ID          string `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Value       int    `yaml:"value" validate:"min=0"`
	Description string `yaml:"description"`
	Quantity    int    `yaml:"quantity" validate:"omitempty,min=1"`
}

// MoneyDef declares one money denomination. Identity and title are derived
// from the denomination.
type MoneyDef struct {
	Denomination int `yaml:"denomination" validate:"required,min=1"`
	Quantity     int `yaml:"quantity" validate:"omitempty,min=1"`
}

// RentDef declares one rent card.
type RentDef struct {
	ID          string   `yaml:"id" validate:"required"`
	Name        string   `yaml:"name" validate:"required"`
	Value       int      `yaml:"value" validate:"min=0"`
	Colors      []string `yaml:"colors" validate:"max=2"`
	IsWild      bool     `yaml:"is_wild"`
	Description string   `yaml:"description"`
	Quantity    int      `yaml:"quantity" validate:"omitempty,min=1"`
}

// WildcardDef declares one property wildcard.
type WildcardDef struct {
	ID            string   `yaml:"id" validate:"required"`
	Name          string   `yaml:"name" validate:"required"`
	Value         int      `yaml:"value" validate:"min=0"`
	AllowedColors []string `yaml:"allowed_colors"`
	IsMulticolor  bool     `yaml:"is_multicolor"`
	Description   string   `yaml:"description"`
	Quantity      int      `yaml:"quantity" validate:"omitempty,min=1"`
}

var validate = validator.New()

// Load reads and validates a card-definition file.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card definitions: %w", err)
	}

	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := validate.Struct(&defs); err != nil {
		return nil, fmt.Errorf("invalid card definitions in %s: %w", path, err)
	}
	return &defs, nil
}

// Cards expands the definitions into card instances, honoring quantity
// multipliers. A nil kinds set expands every variant; otherwise only the
// listed kinds are built.
func (d *Definitions) Cards(kinds map[card.Kind]bool) ([]card.Card, error) {
	want := func(k card.Kind) bool {
		return kinds == nil || kinds[k]
	}
	var cards []card.Card

	if want(card.Property) {
		for _, def := range d.PropertyCards {
			table := make([]card.RentStep, 0, len(def.RentValues))
			for _, pair := range def.RentValues {
				if len(pair) != 2 {
					return nil, fmt.Errorf("property %s: rent_values entries must be [count, rent] pairs", def.ID)
				}
				table = append(table, card.RentStep{Count: pair[0], Amount: pair[1]})
			}
			for i := 0; i < quantity(def.Quantity); i++ {
				c, err := card.NewProperty(expandID(def.ID, def.Quantity, i), def.Name, def.Color, def.Value, table, def.SetSize)
				if err != nil {
					return nil, err
				}
				cards = append(cards, c)
			}
		}
	}

	if want(card.Action) {
		for _, def := range d.ActionCards {
			for i := 0; i < quantity(def.Quantity); i++ {
				cards = append(cards, card.NewAction(expandID(def.ID, def.Quantity, i), def.Name, def.Value, def.Description))
			}
		}
	}

	if want(card.Money) {
		for _, def := range d.MoneyCards {
			baseID := fmt.Sprintf("money-%dm", def.Denomination)
			for i := 0; i < quantity(def.Quantity); i++ {
				c, err := card.NewMoney(expandID(baseID, def.Quantity, i), def.Denomination)
				if err != nil {
					return nil, err
				}
				cards = append(cards, c)
			}
		}
	}

	if want(card.Rent) {
		for _, def := range d.RentCards {
			for i := 0; i < quantity(def.Quantity); i++ {
				cards = append(cards, card.NewRent(expandID(def.ID, def.Quantity, i), def.Name, def.Value, def.Colors, def.IsWild, def.Description))
			}
		}
	}

	if want(card.Wildcard) {
		for _, def := range d.Wildcards {
			for i := 0; i < quantity(def.Quantity); i++ {
				cards = append(cards, card.NewWildcard(expandID(def.ID, def.Quantity, i), def.Name, def.Value, def.AllowedColors, def.IsMulticolor, def.Description))
			}
		}
	}

	return cards, nil
}

func quantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// expandID suffixes the ordinal only when the definition multiplies into
// several cards, keeping single-card IDs stable.
func expandID(id string, declared, index int) string {
	if declared > 1 {
		return fmt.Sprintf("%s-%d", id, index+1)
	}
	return id
}
