package validator

import (
	"fmt"
	"sort"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/deck"
)

// ValidationResults collects everything found while checking a deck
// definition. Errors block rendering; warnings do not.
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a card-definition document for problems the renderer
// itself stays silent about. The engine renders rent tables verbatim and
// falls back on unknown color-set keys, so both surface here as warnings
// instead.
type Validator struct {
	Defs    *deck.Definitions
	Results ValidationResults
}

// NewValidator builds a validator over loaded definitions.
func NewValidator(defs *deck.Definitions) *Validator {
	return &Validator{
		Defs:    defs,
		Results: ValidationResults{},
	}
}

// Validate runs every check and returns the accumulated results.
func (v *Validator) Validate() ValidationResults {
	v.validateIdentifiers()
	v.validateProperties()
	v.validateRentCards()
	v.validateWildcards()
	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateIdentifiers checks that IDs are unique, including the
// "money-<d>m" IDs money cards derive from their denomination. Quantity
// expansion keeps expanded IDs unique when these are.
func (v *Validator) validateIdentifiers() {
	seen := map[string]int{}
	for _, def := range v.Defs.PropertyCards {
		seen[def.ID]++
	}
	for _, def := range v.Defs.ActionCards {
		seen[def.ID]++
	}
	for _, def := range v.Defs.MoneyCards {
		seen[fmt.Sprintf("money-%dm", def.Denomination)]++
	}
	for _, def := range v.Defs.RentCards {
		seen[def.ID]++
	}
	for _, def := range v.Defs.Wildcards {
		seen[def.ID]++
	}

	var dups []string
	for id, count := range seen {
		if count > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	for _, id := range dups {
		v.errorf("duplicate card id: %s", id)
	}
}

func (v *Validator) validateProperties() {
	for _, def := range v.Defs.PropertyCards {
		v.checkColorKey(def.ID, def.Color)

		prevRent := 0
		monotonic := true
		for _, pair := range def.RentValues {
			if len(pair) != 2 {
				v.errorf("property %s: rent_values entries must be [count, rent] pairs", def.ID)
				monotonic = false
				break
			}
			if pair[1] < prevRent {
				monotonic = false
			}
			prevRent = pair[1]
		}
		// The renderer draws tables in declared order without checking,
		// so a descending table only warns.
		if !monotonic {
			v.warnf("property %s: rent table is not monotonically increasing", def.ID)
		}

		if def.SetSize > 0 && len(def.RentValues) > def.SetSize {
			v.warnf("property %s: rent table has more rows than the set size %d", def.ID, def.SetSize)
		}
	}
}

func (v *Validator) validateRentCards() {
	for _, def := range v.Defs.RentCards {
		if def.IsWild && len(def.Colors) > 0 {
			v.warnf("rent %s: colors are ignored on wild rent cards", def.ID)
		}
		if !def.IsWild && len(def.Colors) == 0 {
			v.warnf("rent %s: no colors declared; the color wheel will be empty", def.ID)
		}
		for _, color := range def.Colors {
			v.checkColorKey(def.ID, color)
		}
	}
}

func (v *Validator) validateWildcards() {
	for _, def := range v.Defs.Wildcards {
		if def.IsMulticolor && len(def.AllowedColors) > 0 && len(def.AllowedColors) != len(card.AllColorSets) {
			v.warnf("wildcard %s: allowed_colors is ignored on multicolor wildcards", def.ID)
		}
		if !def.IsMulticolor {
			if len(def.AllowedColors) == 0 {
				v.warnf("wildcard %s: no allowed colors declared; the stripe header will be empty", def.ID)
			}
			if len(def.AllowedColors) > 2 {
				v.warnf("wildcard %s: only the first two allowed colors are drawn", def.ID)
			}
		}
		for _, color := range def.AllowedColors {
			v.checkColorKey(def.ID, color)
		}
	}
}

// checkColorKey warns about color-set keys outside the canonical ten. The
// renderer tolerates them with the default color, which is rarely what a
// deck author intended.
func (v *Validator) checkColorKey(id, key string) {
	for _, known := range card.AllColorSets {
		if key == known {
			return
		}
	}
	v.warnf("%s: unknown color-set key %q renders with the fallback color", id, key)
}
