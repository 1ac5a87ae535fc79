package match

import (
	"strings"
	"time"
)

// Canonical time slots, in the order they are reported.
var slotOrder = []string{"morning", "afternoon", "evening"}

var slotAliases = map[string]string{
	"morning":   "morning",
	"breakfast": "morning",
	"brunch":    "morning",
	"am":        "morning",
	"afternoon": "afternoon",
	"lunch":     "afternoon",
	"midday":    "afternoon",
	"evening":   "evening",
	"dinner":    "evening",
	"night":     "evening",
	"pm":        "evening",
}

var anyDay = map[string]bool{
	"any":      true,
	"anytime":  true,
	"flexible": true,
	"daily":    true,
	"everyday": true,
	"all":      true,
}

var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// CanonicalSlot folds a time-slot label ("Dinner", "evenings") onto one of
// morning, afternoon or evening. The second result is false for anything
// else.
func CanonicalSlot(text string) (string, bool) {
	tok := strings.ToLower(strings.TrimSpace(text))
	if slot, ok := slotAliases[tok]; ok {
		return slot, true
	}
	slot, ok := slotAliases[strings.TrimSuffix(tok, "s")]
	return slot, ok
}

// availabilityPattern is one parsed availability tag such as
// "weekend-evenings" or "mon,wed:lunch".
type availabilityPattern struct {
	days  []string
	slots []string
}

func parseAvailability(tag string) availabilityPattern {
	fields := strings.FieldsFunc(strings.ToLower(tag), func(r rune) bool {
		switch r {
		case ' ', '\t', '-', ':', ',', '/':
			return true
		}
		return false
	})
	var p availabilityPattern
	for _, f := range fields {
		if slot, ok := CanonicalSlot(f); ok {
			p.slots = append(p.slots, slot)
			continue
		}
		p.days = append(p.days, f)
	}
	return p
}

// dayMatches is true when the pattern's day tokens all admit the date. Tags
// that name no day apply to every day; a zero date only satisfies the
// any-day words.
func (p availabilityPattern) dayMatches(date time.Time) bool {
	for _, tok := range p.days {
		if !dayTokenMatches(tok, date) {
			return false
		}
	}
	return true
}

func (p availabilityPattern) offersSlot(slot string) bool {
	if len(p.slots) == 0 {
		return true
	}
	for _, s := range p.slots {
		if s == slot {
			return true
		}
	}
	return false
}

func dayTokenMatches(tok string, date time.Time) bool {
	if anyDay[tok] {
		return true
	}
	if date.IsZero() {
		return false
	}
	if day, ok := dayNames[tok]; ok {
		return day == date.Weekday()
	}
	tok = strings.TrimSuffix(tok, "s")
	switch tok {
	case "weekend":
		return isWeekend(date)
	case "weekday":
		return !isWeekend(date)
	}
	day, ok := dayNames[tok]
	return ok && day == date.Weekday()
}

// matchesAvailability reports whether any of the candidate's tags covers the
// requested day and slot. An unrecognised requested slot only matches tags
// that do not restrict the slot.
func matchesAvailability(tags []string, r RequestCriteria) bool {
	slot, hasSlot := CanonicalSlot(r.TimeSlot)
	for _, tag := range tags {
		p := parseAvailability(tag)
		if len(p.days) == 0 && len(p.slots) == 0 {
			continue
		}
		if !p.dayMatches(r.EventDate) {
			continue
		}
		if len(p.slots) == 0 || (hasSlot && p.offersSlot(slot)) {
			return true
		}
	}
	return false
}

// AvailableSlots lists, in canonical order, the slots the candidate offers
// on the request's event day.
func AvailableSlots(c Candidate, r RequestCriteria) []string {
	offered := make(map[string]bool, len(slotOrder))
	for _, tag := range c.Availability {
		p := parseAvailability(tag)
		if len(p.days) == 0 && len(p.slots) == 0 {
			continue
		}
		if !p.dayMatches(r.EventDate) {
			continue
		}
		for _, slot := range slotOrder {
			if p.offersSlot(slot) {
				offered[slot] = true
			}
		}
	}

	out := make([]string, 0, len(offered))
	for _, slot := range slotOrder {
		if offered[slot] {
			out = append(out, slot)
		}
	}
	return out
}
