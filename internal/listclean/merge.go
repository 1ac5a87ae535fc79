package listclean

import (
	"errors"
	"strings"

	"github.com/tayloree/pantry/internal/grocery"
)

// ErrNothingToMerge is returned when none of the requested IDs are on the
// list.
var ErrNothingToMerge = errors.New("no matching items to merge")

// MergeItems folds the items whose IDs are listed into one normalized item.
//
// The first matching item in list order supplies identity and name. Quantity
// is the sum over the group, unit the most common unit, category the most
// common specific aisle (General only when nothing more specific is present),
// and notes are joined with "; ".
func MergeItems(items []grocery.ListItem, ids []string) (grocery.ListItem, error) {
	members := selectMembers(items, ids)
	if len(members) == 0 {
		return grocery.ListItem{}, ErrNothingToMerge
	}

	merged := members[0]
	merged.Quantity = totalQuantity(members)
	merged.Unit = mostCommonUnit(members)
	merged.Category = mostCommonCategory(members).String()
	merged.Note = joinNotes(members)
	return merged, nil
}

// ApplyMerge returns a copy of items where the merged item takes the place
// of the first group member and the other members are gone.
func ApplyMerge(items []grocery.ListItem, ids []string) ([]grocery.ListItem, error) {
	merged, err := MergeItems(items, ids)
	if err != nil {
		return nil, err
	}

	want := idSet(ids)
	out := make([]grocery.ListItem, 0, len(items))
	placed := false
	for _, item := range items {
		if !want[item.ID] {
			out = append(out, item)
			continue
		}
		if !placed {
			out = append(out, merged)
			placed = true
		}
	}
	return out, nil
}

func selectMembers(items []grocery.ListItem, ids []string) []grocery.ListItem {
	want := idSet(ids)
	var members []grocery.ListItem
	for _, item := range items {
		if want[item.ID] {
			members = append(members, item)
		}
	}
	return members
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func mostCommonCategory(items []grocery.ListItem) grocery.Category {
	counts := make(map[grocery.Category]int)
	var order []grocery.Category
	for _, item := range items {
		cat := grocery.CategoryOf(item)
		if cat == grocery.General {
			continue
		}
		if counts[cat] == 0 {
			order = append(order, cat)
		}
		counts[cat]++
	}

	best := grocery.General
	for _, cat := range order {
		if best == grocery.General || counts[cat] > counts[best] {
			best = cat
		}
	}
	return best
}

func joinNotes(items []grocery.ListItem) string {
	var notes []string
	for _, item := range items {
		if note := strings.TrimSpace(item.Note); note != "" {
			notes = append(notes, note)
		}
	}
	return strings.Join(notes, "; ")
}
