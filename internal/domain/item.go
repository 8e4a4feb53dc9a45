package domain

import (
	"fmt"
	"strings"
)

type ItemCategory string

const (
	Electronics ItemCategory = "ELECTRONICS"
	Furniture   ItemCategory = "FURNITURE"
	Clothing    ItemCategory = "CLOTHING"
	Food        ItemCategory = "FOOD"
)

func ParseItemCategory(s string) (ItemCategory, error) {
	switch c := ItemCategory(strings.ToUpper(strings.TrimSpace(s))); c {
	case Electronics, Furniture, Clothing, Food:
		return c, nil
	}
	return "", fmt.Errorf("unknown item category %q", s)
}

// A stock-keeping entry held by an inventory ledger.
// UnitWeight is in kilograms per unit.
type Item struct {
	Name       string
	Quantity   int
	UnitWeight float64
	Category   ItemCategory
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item: name must be non-empty")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("item %q: quantity=%d: %w", i.Name, i.Quantity, ErrInvalidQuantity)
	}
	if i.UnitWeight < 0 {
		return fmt.Errorf("item %q: unit weight=%g: %w", i.Name, i.UnitWeight, ErrInvalidWeight)
	}
	return nil
}

func (i Item) String() string {
	return fmt.Sprintf("%s (Qty: %d, Weight: %gkg, Category: %s)", i.Name, i.Quantity, i.UnitWeight, i.Category)
}
