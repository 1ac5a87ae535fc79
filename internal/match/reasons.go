package match

import (
	"fmt"
	"strings"
)

const maxReasons = 3

type reasonRule struct {
	holds   func(c Candidate, r RequestCriteria, kind EventKind) bool
	message func(c Candidate, r RequestCriteria, kind EventKind) string
}

// reasonCascade is checked top to bottom; the first maxReasons rules that
// hold explain a match.
var reasonCascade = []reasonRule{
	{
		holds: func(c Candidate, r RequestCriteria, _ EventKind) bool {
			_, ok := specialtyOverlap(c, r)
			return ok
		},
		message: func(c Candidate, r RequestCriteria, _ EventKind) string {
			tag, _ := specialtyOverlap(c, r)
			return fmt.Sprintf("Specializes in %s cuisine", tag)
		},
	},
	{
		holds: func(c Candidate, _ RequestCriteria, kind EventKind) bool {
			return IsIdealPairing(c.Tier, kind)
		},
		message: func(c Candidate, _ RequestCriteria, kind EventKind) string {
			return fmt.Sprintf("%s chef, a perfect fit for %s events", titleWord(string(c.Tier)), kind)
		},
	},
	{
		holds: func(c Candidate, _ RequestCriteria, _ EventKind) bool {
			return c.Rating >= 4.8
		},
		message: func(c Candidate, _ RequestCriteria, _ EventKind) string {
			return fmt.Sprintf("Top rated at %.1f stars", c.Rating)
		},
	},
	{
		holds: func(c Candidate, _ RequestCriteria, _ EventKind) bool {
			return c.YearsExperience >= 10
		},
		message: func(c Candidate, _ RequestCriteria, _ EventKind) string {
			return fmt.Sprintf("%d years of professional experience", c.YearsExperience)
		},
	},
	{
		holds: func(c Candidate, _ RequestCriteria, _ EventKind) bool {
			return c.Certifications > 0
		},
		message: func(c Candidate, _ RequestCriteria, _ EventKind) string {
			if c.Certifications == 1 {
				return "Holds a verified certification"
			}
			return fmt.Sprintf("Holds %d verified certifications", c.Certifications)
		},
	},
}

// Reasons explains a match with at most three short messages.
func Reasons(c Candidate, r RequestCriteria) []string {
	kind := ParseEventKind(r.EventType)
	out := make([]string, 0, maxReasons)
	for _, rule := range reasonCascade {
		if len(out) == maxReasons {
			break
		}
		if rule.holds(c, r, kind) {
			out = append(out, rule.message(c, r, kind))
		}
	}
	return out
}

// specialtyOverlap returns the first specialty tag, as the candidate wrote
// it, that contains one of the requested cuisines.
func specialtyOverlap(c Candidate, r RequestCriteria) (string, bool) {
	wanted := nonEmptyLower(r.Cuisines)
	for _, tag := range c.Specialties {
		lower := strings.ToLower(strings.TrimSpace(tag))
		if lower == "" {
			continue
		}
		for _, w := range wanted {
			if strings.Contains(lower, w) {
				return strings.TrimSpace(tag), true
			}
		}
	}
	return "", false
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
