package grocery

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// categorySynonyms maps normalized free-text category labels to a canonical
// aisle. Keys must already be in normalizeCategory form.
var categorySynonyms = map[string]Category{
	// Produce
	"produce":    Produce,
	"fruit":      Produce,
	"fruits":     Produce,
	"vegetable":  Produce,
	"vegetables": Produce,
	"veggie":     Produce,
	"veggies":    Produce,
	"greens":     Produce,
	"herbs":      Produce,
	"fresh":      Produce,
	"salad":      Produce,

	// Dairy
	"dairy":          Dairy,
	"fridge":         Dairy,
	"refrigerated":   Dairy,
	"chilled":        Dairy,
	"milk":           Dairy,
	"cheese":         Dairy,
	"yogurt":         Dairy,
	"eggs":           Dairy,
	"dairy and eggs": Dairy,

	// Meat & Seafood
	"meat & seafood":   MeatSeafood,
	"meat and seafood": MeatSeafood,
	"meat":             MeatSeafood,
	"meats":            MeatSeafood,
	"seafood":          MeatSeafood,
	"fish":             MeatSeafood,
	"poultry":          MeatSeafood,
	"butcher":          MeatSeafood,
	"protein":          MeatSeafood,

	// Deli
	"deli":         Deli,
	"delicatessen": Deli,
	"cold cuts":    Deli,
	"lunch meat":   Deli,
	"charcuterie":  Deli,
	"prepared":     Deli,

	// Bakery
	"bakery":      Bakery,
	"bread":       Bakery,
	"breads":      Bakery,
	"pastry":      Bakery,
	"pastries":    Bakery,
	"baked goods": Bakery,

	// Grains & Pasta
	"grains & pasta":   GrainsPasta,
	"grains and pasta": GrainsPasta,
	"grains":           GrainsPasta,
	"grain":            GrainsPasta,
	"pasta":            GrainsPasta,
	"rice":             GrainsPasta,
	"cereal":           GrainsPasta,
	"cereals":          GrainsPasta,
	"dry goods":        GrainsPasta,
	"pantry":           GrainsPasta,
	"baking":           GrainsPasta,

	// Canned Goods
	"canned goods": CannedGoods,
	"canned":       CannedGoods,
	"cans":         CannedGoods,
	"tinned":       CannedGoods,
	"jarred":       CannedGoods,
	"soup":         CannedGoods,
	"soups":        CannedGoods,

	// Condiments & Sauces
	"condiments & sauces":   CondimentsSauces,
	"condiments and sauces": CondimentsSauces,
	"condiments":            CondimentsSauces,
	"condiment":             CondimentsSauces,
	"sauces":                CondimentsSauces,
	"sauce":                 CondimentsSauces,
	"spices":                CondimentsSauces,
	"spice":                 CondimentsSauces,
	"seasoning":             CondimentsSauces,
	"seasonings":            CondimentsSauces,
	"dressing":              CondimentsSauces,
	"oils":                  CondimentsSauces,

	// Snacks
	"snacks":  Snacks,
	"snack":   Snacks,
	"chips":   Snacks,
	"candy":   Snacks,
	"sweets":  Snacks,
	"cookies": Snacks,
	"nuts":    Snacks,

	// Beverages
	"beverages": Beverages,
	"beverage":  Beverages,
	"drinks":    Beverages,
	"drink":     Beverages,
	"juice":     Beverages,
	"soda":      Beverages,
	"coffee":    Beverages,
	"tea":       Beverages,
	"water":     Beverages,
	"alcohol":   Beverages,
	"wine":      Beverages,
	"beer":      Beverages,

	// Frozen
	"frozen":       Frozen,
	"frozen foods": Frozen,
	"freezer":      Frozen,
	"ice cream":    Frozen,

	// General
	"general":       General,
	"other":         General,
	"misc":          General,
	"miscellaneous": General,
}

// normalizeCategory folds free text into the key space of categorySynonyms.
func normalizeCategory(raw string) string {
	s := strings.ToLower(strings.TrimSpace(norm.NFKC.String(raw)))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

// singularCategory strips a trailing plural so "cheeses" finds "cheese".
func singularCategory(s string) string {
	switch {
	case len(s) > 4 && strings.HasSuffix(s, "ies"):
		return strings.TrimSuffix(s, "ies") + "y"
	case len(s) > 3 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return strings.TrimSuffix(s, "s")
	}
	return s
}
