package listclean

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tayloree/pantry/internal/grocery"
)

// Kind says what a suggestion would change.
type Kind string

const (
	KindDuplicate Kind = "duplicate"
	KindQuantity  Kind = "quantity"
	KindCategory  Kind = "category"

	// KindMissing is reserved for "you usually buy X" suggestions; nothing
	// generates it yet.
	KindMissing Kind = "missing"
)

// Priority orders suggestions for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityWeights = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Weight is the sort key: high 3, medium 2, low 1.
func (p Priority) Weight() int {
	return priorityWeights[p]
}

// Suggestion is one derived, dismissible improvement to a list. The ID is a
// pure function of Kind and ItemIDs, so a caller can remember dismissals
// across recomputations.
type Suggestion struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	ItemIDs     []string `json:"itemIds"`
	Priority    Priority `json:"priority"`
}

const (
	bulkQuantityThreshold = 10
	catchAllThreshold     = 5
)

// countUnits are the units that mean "this many individual things".
var countUnits = map[string]bool{
	"pc":     true,
	"pcs":    true,
	"piece":  true,
	"pieces": true,
	"item":   true,
	"items":  true,
	"each":   true,
	"ea":     true,
	"unit":   true,
	"units":  true,
	"count":  true,
	"ct":     true,
}

// Aisles sold by weight get a weight unit; everything else comes in packs.
var bulkUnits = map[grocery.Category]string{
	grocery.Produce:     "kg",
	grocery.MeatSeafood: "kg",
	grocery.Deli:        "kg",
}

const defaultBulkUnit = "pack"

var suggestionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("pantry/suggestion"))

// ErrNotApplicable is returned by Apply for suggestions that need a human
// decision rather than a mechanical edit.
var ErrNotApplicable = errors.New("suggestion cannot be applied automatically")

// GenerateSmartSuggestions derives suggestions for items, highest priority
// first. Suggestions of equal priority keep generation order: duplicates,
// then quantities in list order, then categories.
func GenerateSmartSuggestions(items []grocery.ListItem) []Suggestion {
	out := make([]Suggestion, 0)

	for _, g := range DetectDuplicates(items) {
		out = append(out, duplicateSuggestion(g))
	}
	for _, item := range items {
		if s, ok := quantitySuggestion(item); ok {
			out = append(out, s)
		}
	}
	if s, ok := categorySuggestion(items); ok {
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Weight() > out[j].Priority.Weight()
	})
	return out
}

// WithoutDismissed drops suggestions whose ID the caller has dismissed.
func WithoutDismissed(suggestions []Suggestion, dismissed []string) []Suggestion {
	hidden := idSet(dismissed)
	out := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if !hidden[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// Apply performs a suggestion's edit and returns the new list. Only
// duplicate suggestions have a mechanical edit.
func Apply(items []grocery.ListItem, s Suggestion) ([]grocery.ListItem, error) {
	if s.Kind != KindDuplicate {
		return nil, fmt.Errorf("%s suggestion: %w", s.Kind, ErrNotApplicable)
	}
	return ApplyMerge(items, s.ItemIDs)
}

// BulkUnit is the unit a quantity suggestion recommends for item.
func BulkUnit(item grocery.ListItem) string {
	if unit, ok := bulkUnits[grocery.CategoryOf(item)]; ok {
		return unit
	}
	return defaultBulkUnit
}

func duplicateSuggestion(g DuplicateGroup) Suggestion {
	names := make([]string, 0, len(g.Items))
	for _, item := range g.Items {
		names = append(names, grocery.DisplayName(item))
	}
	return newSuggestion(KindDuplicate, PriorityHigh, g.IDs(),
		fmt.Sprintf("Merge %d similar items", len(g.Items)),
		fmt.Sprintf("%s look like the same item. Combined: %s.",
			strings.Join(names, ", "), formatAmount(g.SuggestedQuantity, g.SuggestedUnit)),
		"Merge items",
	)
}

func quantitySuggestion(item grocery.ListItem) (Suggestion, bool) {
	unit := strings.ToLower(strings.TrimSpace(item.Unit))
	if item.Quantity <= bulkQuantityThreshold || !countUnits[unit] {
		return Suggestion{}, false
	}
	bulk := BulkUnit(item)
	name := grocery.DisplayName(item)
	return newSuggestion(KindQuantity, PriorityMedium, []string{item.ID},
		fmt.Sprintf("Buy %s by the %s", name, bulk),
		fmt.Sprintf("%s of %s is a lot to count. Consider buying by the %s.",
			formatAmount(item.Quantity, item.Unit), name, bulk),
		"Switch to "+bulk,
	), true
}

func categorySuggestion(items []grocery.ListItem) (Suggestion, bool) {
	var ids []string
	for _, item := range items {
		if grocery.CategoryOf(item) == grocery.General {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) <= catchAllThreshold {
		return Suggestion{}, false
	}
	return newSuggestion(KindCategory, PriorityLow, ids,
		fmt.Sprintf("Categorize %d items", len(ids)),
		fmt.Sprintf("%d items are filed under %s. Giving them an aisle makes the list easier to shop.",
			len(ids), grocery.General),
		"Review categories",
	), true
}

func newSuggestion(kind Kind, priority Priority, ids []string, title, description, action string) Suggestion {
	return Suggestion{
		ID:          suggestionID(kind, ids),
		Kind:        kind,
		Title:       title,
		Description: description,
		Action:      action,
		ItemIDs:     ids,
		Priority:    priority,
	}
}

func suggestionID(kind Kind, ids []string) string {
	key := string(kind) + "\x00" + strings.Join(ids, "\x00")
	return uuid.NewSHA1(suggestionNamespace, []byte(key)).String()
}

func formatAmount(qty float64, unit string) string {
	amount := strconv.FormatFloat(qty, 'f', -1, 64)
	if unit = strings.TrimSpace(unit); unit != "" {
		return amount + " " + unit
	}
	return amount
}
