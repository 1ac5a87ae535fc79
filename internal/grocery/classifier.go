// Package grocery classifies shopping-list items into a fixed store-aisle
// order and provides the ListItem record shared by the list tooling.
package grocery

import (
	"fmt"
	"sort"
	"strings"
)

// Category is a canonical store aisle. The numeric value is the aisle's
// position in the walking order; General is always last.
type Category int

const (
	Produce Category = iota
	Dairy
	MeatSeafood
	Deli
	Bakery
	GrainsPasta
	CannedGoods
	CondimentsSauces
	Snacks
	Beverages
	Frozen
	General
)

var categoryNames = [...]string{
	Produce:          "Produce",
	Dairy:            "Dairy",
	MeatSeafood:      "Meat & Seafood",
	Deli:             "Deli",
	Bakery:           "Bakery",
	GrainsPasta:      "Grains & Pasta",
	CannedGoods:      "Canned Goods",
	CondimentsSauces: "Condiments & Sauces",
	Snacks:           "Snacks",
	Beverages:        "Beverages",
	Frozen:           "Frozen",
	General:          "General",
}

// Categories returns every canonical category in aisle order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for i := range categoryNames {
		out = append(out, Category(i))
	}
	return out
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[General]
	}
	return categoryNames[c]
}

// Index is the aisle position used for ordering.
func (c Category) Index() int {
	if c < 0 || int(c) >= len(categoryNames) {
		return int(General)
	}
	return int(c)
}

// MarshalText renders the display name, so maps keyed by Category encode
// with readable keys.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts any text MapToGroceryCategory understands.
func (c *Category) UnmarshalText(b []byte) error {
	if c == nil {
		return fmt.Errorf("grocery: unmarshal into nil Category")
	}
	*c = MapToGroceryCategory(string(b))
	return nil
}

// ListItem is one entry of a shopping or pantry list as stored by the data
// store. Functions in this module never modify a ListItem in place.
type ListItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Checked  bool    `json:"checked"`
	Note     string  `json:"note,omitempty"`
}

// MapToGroceryCategory maps free-text category labels (for example "Fridge"
// or "veggies") to a canonical aisle. Unrecognised text maps to General.
func MapToGroceryCategory(text string) Category {
	key := normalizeCategory(text)
	if key == "" {
		return General
	}
	if cat, ok := categorySynonyms[key]; ok {
		return cat
	}
	if cat, ok := categorySynonyms[singularCategory(key)]; ok {
		return cat
	}
	return General
}

// CategoryOf returns the canonical aisle of an item's category text.
func CategoryOf(item ListItem) Category {
	return MapToGroceryCategory(item.Category)
}

// SortItemsByGroceryLogic returns a copy of items ordered by aisle. Items in
// the same aisle keep their relative input order.
func SortItemsByGroceryLogic(items []ListItem) []ListItem {
	out := make([]ListItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return CategoryOf(out[i]).Index() < CategoryOf(out[j]).Index()
	})
	return out
}

// GroupItemsByGroceryCategory buckets items by canonical aisle. Only aisles
// with at least one item are present.
func GroupItemsByGroceryCategory(items []ListItem) map[Category][]ListItem {
	groups := make(map[Category][]ListItem)
	for _, item := range items {
		cat := CategoryOf(item)
		groups[cat] = append(groups[cat], item)
	}
	return groups
}

// Group is one aisle and the items that belong to it.
type Group struct {
	Category Category   `json:"category"`
	Items    []ListItem `json:"items"`
}

// Groups is GroupItemsByGroceryCategory in aisle order.
func Groups(items []ListItem) []Group {
	byCat := GroupItemsByGroceryCategory(items)
	out := make([]Group, 0, len(byCat))
	for _, cat := range Categories() {
		if members, ok := byCat[cat]; ok {
			out = append(out, Group{Category: cat, Items: members})
		}
	}
	return out
}

// IsCatchAll reports whether text maps to the General aisle.
func IsCatchAll(text string) bool {
	return MapToGroceryCategory(text) == General
}

// DisplayName is the item name trimmed, falling back to its ID.
func DisplayName(item ListItem) string {
	if name := strings.TrimSpace(item.Name); name != "" {
		return name
	}
	if item.ID != "" {
		return "Item " + item.ID
	}
	return "Untitled item"
}
