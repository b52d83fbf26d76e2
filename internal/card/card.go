package card

import (
	"fmt"

	ddgerrors "github.com/hbmartin/deal-deck-generator/pkg/errors"
)

// Kind identifies one of the five closed card variants.
type Kind string

const (
	Property Kind = "property"
	Action   Kind = "action"
	Money    Kind = "money"
	Rent     Kind = "rent"
	Wildcard Kind = "wildcard"
)

// AllColorSets lists the ten canonical property color-set keys in their
// fixed display order. Wild rent wheels and multicolor wildcard stripes
// draw the sets in exactly this order.
var AllColorSets = []string{
	"brown",
	"light_blue",
	"pink",
	"orange",
	"red",
	"yellow",
	"green",
	"dark_blue",
	"railroad",
	"utility",
}

// Meta holds the fields shared by every card variant. Value is the face
// value in millions; zero means the card carries no face value and no
// value badge is drawn.
type Meta struct {
	ID          string
	Title       string
	Value       int
	Description string
	Metadata    map[string]any
}

// Card is the closed union over the five card variants. The kind is fixed
// by the variant type itself, so it cannot drift after construction.
type Card interface {
	Kind() Kind
	Common() Meta
}

// RentStep is one row of a property rent table: the rent charged when
// Count properties of the set are owned.
type RentStep struct {
	Count  int
	Amount int
}

// PropertyCard is a colored property with a rent table.
type PropertyCard struct {
	Meta
	ColorSet     string
	PropertyName string
	RentTable    []RentStep
	SetSize      int
}

// NewProperty builds a property card. The color-set key is required.
func NewProperty(id, name, colorSet string, value int, rentTable []RentStep, setSize int) (*PropertyCard, error) {
	if colorSet == "" {
		return nil, ddgerrors.NewConstructionError(string(Property), "color", "color-set key is required")
	}
	return &PropertyCard{
		Meta:         Meta{ID: id, Title: name, Value: value},
		ColorSet:     colorSet,
		PropertyName: name,
		RentTable:    rentTable,
		SetSize:      setSize,
	}, nil
}

func (c *PropertyCard) Kind() Kind   { return Property }
func (c *PropertyCard) Common() Meta { return c.Meta }

// ActionCard is a playable action.
type ActionCard struct {
	Meta
	ActionName string
}

// NewAction builds an action card. The action name defaults to the title.
func NewAction(id, title string, value int, description string) *ActionCard {
	return &ActionCard{
		Meta:       Meta{ID: id, Title: title, Value: value, Description: description},
		ActionName: title,
	}
}

func (c *ActionCard) Kind() Kind   { return Action }
func (c *ActionCard) Common() Meta { return c.Meta }

// MoneyCard is a banknote of a fixed denomination.
type MoneyCard struct {
	Meta
	Denomination int
}

// NewMoney builds a money card. The denomination must be positive.
func NewMoney(id string, denomination int) (*MoneyCard, error) {
	if denomination <= 0 {
		return nil, ddgerrors.NewConstructionError(string(Money), "denomination", "must be a positive integer")
	}
	return &MoneyCard{
		Meta:         Meta{ID: id, Title: fmt.Sprintf("$%dM", denomination), Value: denomination},
		Denomination: denomination,
	}, nil
}

func (c *MoneyCard) Kind() Kind   { return Money }
func (c *MoneyCard) Common() Meta { return c.Meta }

// RentCard charges rent on one or two color sets, or on all ten when wild.
type RentCard struct {
	Meta
	ColorSets []string
	Wild      bool
}

// NewRent builds a rent card. When wild is set the explicit color list is
// ignored at render time and rent applies across all ten color sets.
func NewRent(id, title string, value int, colorSets []string, wild bool, description string) *RentCard {
	return &RentCard{
		Meta:      Meta{ID: id, Title: title, Value: value, Description: description},
		ColorSets: colorSets,
		Wild:      wild,
	}
}

func (c *RentCard) Kind() Kind   { return Rent }
func (c *RentCard) Common() Meta { return c.Meta }

// WildcardCard stands in for a property of any allowed color set.
type WildcardCard struct {
	Meta
	AllowedColorSets []string
	Multicolor       bool
}

// NewWildcard builds a property wildcard. When multicolor is set the card
// is valid for all ten color sets regardless of the explicit list.
func NewWildcard(id, title string, value int, allowed []string, multicolor bool, description string) *WildcardCard {
	return &WildcardCard{
		Meta:             Meta{ID: id, Title: title, Value: value, Description: description},
		AllowedColorSets: allowed,
		Multicolor:       multicolor,
	}
}

func (c *WildcardCard) Kind() Kind   { return Wildcard }
func (c *WildcardCard) Common() Meta { return c.Meta }
