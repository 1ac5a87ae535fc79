// Package listclean finds near-duplicate shopping-list entries, merges them
// into one normalized entry, and turns what it finds into prioritized,
// dismissible suggestions.
//
// Duplicate detection compares every pair of items, so it costs O(n²) edit
// distance computations, each O(len₁·len₂). That is fine for shopping lists
// (tens to a few hundred items) and is the package's scalability ceiling;
// call it when a list changes, not on a hot path.
package listclean

import (
	"strings"
	"unicode/utf8"

	"github.com/tayloree/pantry/internal/grocery"
	"golang.org/x/text/unicode/norm"
)

// SimilarityThreshold is the normalized similarity above which two names are
// treated as the same item.
const SimilarityThreshold = 0.8

// pluralPairs is the closed table of singular/plural spellings that edit
// distance alone scores too low.
var pluralPairs = map[string]string{
	"bananas":  "banana",
	"tomatoes": "tomato",
	"apples":   "apple",
	"oranges":  "orange",
	"potatoes": "potato",
	"onions":   "onion",
	"eggs":     "egg",
	"lemons":   "lemon",
	"limes":    "lime",
	"carrots":  "carrot",
	"peppers":  "pepper",
	"berries":  "berry",
	"cherries": "cherry",
	"leaves":   "leaf",
	"loaves":   "loaf",
}

// DuplicateGroup is a set of list items that look like the same thing.
type DuplicateGroup struct {
	Items             []grocery.ListItem `json:"items"`
	SuggestedQuantity float64            `json:"suggestedQuantity"`
	SuggestedUnit     string             `json:"suggestedUnit"`
}

// IDs returns the member identities in group order.
func (g DuplicateGroup) IDs() []string {
	out := make([]string, 0, len(g.Items))
	for _, item := range g.Items {
		out = append(out, item.ID)
	}
	return out
}

// DetectDuplicates groups similar items in one greedy pass: each item not
// yet grouped collects every later ungrouped item similar to it. Membership
// is decided against that first item only, so the result is not a
// transitive closure and depends on list order.
func DetectDuplicates(items []grocery.ListItem) []DuplicateGroup {
	groups := make([]DuplicateGroup, 0)
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = normalizeName(item.Name)
	}

	grouped := make([]bool, len(items))
	for i := range items {
		if grouped[i] || names[i] == "" {
			continue
		}
		members := []grocery.ListItem{items[i]}
		for j := i + 1; j < len(items); j++ {
			if grouped[j] || !similarNames(names[i], names[j]) {
				continue
			}
			members = append(members, items[j])
			grouped[j] = true
		}
		if len(members) < 2 {
			continue
		}
		grouped[i] = true
		groups = append(groups, DuplicateGroup{
			Items:             members,
			SuggestedQuantity: totalQuantity(members),
			SuggestedUnit:     mostCommonUnit(members),
		})
	}
	return groups
}

// IsSimilar reports whether two item names refer to the same thing.
func IsSimilar(a, b string) bool {
	return similarNames(normalizeName(a), normalizeName(b))
}

// Similarity is 1 - editDistance/max(len) over the normalized names, in
// runes. Two empty names are identical.
func Similarity(a, b string) float64 {
	return similarity(normalizeName(a), normalizeName(b))
}

func similarNames(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if similarity(a, b) > SimilarityThreshold {
		return true
	}
	return singular(a) == singular(b)
}

func similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(EditDistance(a, b))/float64(longest)
}

// EditDistance is the Levenshtein distance between a and b, in runes.
func EditDistance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
	return strings.Join(strings.Fields(s), " ")
}

func singular(name string) string {
	if s, ok := pluralPairs[name]; ok {
		return s
	}
	return name
}

func totalQuantity(items []grocery.ListItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// mostCommonUnit picks the unit used by the most items, compared without
// case. Ties go to the unit seen first; items without a unit do not vote.
func mostCommonUnit(items []grocery.ListItem) string {
	counts := make(map[string]int)
	first := make(map[string]string)
	var order []string
	for _, item := range items {
		unit := strings.TrimSpace(item.Unit)
		if unit == "" {
			continue
		}
		key := strings.ToLower(unit)
		if _, seen := first[key]; !seen {
			first[key] = unit
			order = append(order, key)
		}
		counts[key]++
	}

	best := ""
	for _, key := range order {
		if best == "" || counts[key] > counts[best] {
			best = key
		}
	}
	return first[best]
}
