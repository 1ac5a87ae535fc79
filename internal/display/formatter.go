package display

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/listclean"
	"github.com/tayloree/pantry/internal/match"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	highTag      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// RecommendationJSON is the JSON output shape for a ranked match.
type RecommendationJSON struct {
	Rank           int             `json:"rank"`
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Tier           match.Tier      `json:"tier"`
	MatchScore     float64         `json:"matchScore"`
	EstimatedPrice float64         `json:"estimatedPrice"`
	Reasons        []string        `json:"reasons"`
	AvailableSlots []string        `json:"availableSlots"`
	Breakdown      match.Breakdown `json:"breakdown"`
}

// DuplicateGroupJSON is the JSON output shape for a duplicate group.
type DuplicateGroupJSON struct {
	ItemIDs           []string `json:"itemIds"`
	Names             []string `json:"names"`
	SuggestedQuantity float64  `json:"suggestedQuantity"`
	SuggestedUnit     string   `json:"suggestedUnit"`
}

// AisleJSON is the JSON output shape for one aisle of a sorted list.
type AisleJSON struct {
	Category string             `json:"category"`
	Items    []grocery.ListItem `json:"items"`
}

// CategoryMatchJSON is the JSON output shape for one classified text.
type CategoryMatchJSON struct {
	Input    string `json:"input"`
	Category string `json:"category"`
	CatchAll bool   `json:"catchAll"`
}

// PrintRecommendations renders ranked matches to the writer.
func PrintRecommendations(w io.Writer, results []match.MatchResult, r match.RequestCriteria) {
	fmt.Fprintf(w, "\n%s — %s\n",
		headerStyle.Render("Recommended chefs"),
		cyanStyle.Render(plural(len(results), "match", "matches")),
	)
	fmt.Fprintf(w, "%s\n\n", dimStyle.Render(describeCriteria(r)))

	if len(results) == 0 {
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render("No candidate scored above the cut-off."))
		return
	}
	for i, res := range results {
		printMatch(w, i+1, res)
		fmt.Fprintln(w)
	}
}

// PrintRecommendationsJSON renders ranked matches as JSON.
func PrintRecommendationsJSON(w io.Writer, results []match.MatchResult) error {
	out := make([]RecommendationJSON, 0, len(results))
	for i, res := range results {
		out = append(out, toRecommendationJSON(i+1, res))
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintQuote renders one candidate's full factor breakdown.
func PrintQuote(w io.Writer, res match.MatchResult) {
	c := res.Candidate
	b := res.Breakdown
	fmt.Fprintf(w, "\n%s  %s\n\n", titleStyle.Render(candidateName(c)), dimStyle.Render(string(c.Tier)))

	fmt.Fprintf(w, "  %-14s %s\n", "Estimated", priceStyle.Render(formatMoney(res.EstimatedPrice)))
	fmt.Fprintf(w, "  %-14s %s\n", "Match score", scoreStyle.Render(formatScore(res.Score)))
	fmt.Fprintln(w)

	rows := []struct {
		label  string
		weight string
		value  float64
	}{
		{"Budget", "30%", b.Budget},
		{"Cuisine", "25%", b.Cuisine},
		{"Tier", "20%", b.Tier},
		{"Availability", "15%", b.Availability},
		{"Dietary", "10%", b.Dietary},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-14s %5s  %s\n", row.label, formatScore(row.value), dimStyle.Render(row.weight))
	}

	if len(res.Reasons) > 0 {
		fmt.Fprintln(w)
		for _, reason := range res.Reasons {
			fmt.Fprintf(w, "  • %s\n", reason)
		}
	}
	if len(res.AvailableSlots) > 0 {
		fmt.Fprintf(w, "\n  %s\n", dimStyle.Render("Available: "+strings.Join(res.AvailableSlots, ", ")))
	}
	fmt.Fprintln(w)
}

// PrintQuoteJSON renders one candidate's breakdown as JSON.
func PrintQuoteJSON(w io.Writer, res match.MatchResult) error {
	return json.NewEncoder(w).Encode(toRecommendationJSON(0, res))
}

// PrintDuplicates renders duplicate groups.
func PrintDuplicates(w io.Writer, groups []listclean.DuplicateGroup) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Possible duplicates"),
		cyanStyle.Render(plural(len(groups), "group", "groups")),
	)
	if len(groups) == 0 {
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render("Nothing looks duplicated."))
		return
	}
	for _, g := range groups {
		names := make([]string, 0, len(g.Items))
		for _, item := range g.Items {
			names = append(names, fmt.Sprintf("%s (%s)", grocery.DisplayName(item), formatAmount(item.Quantity, item.Unit)))
		}
		fmt.Fprintf(w, "  %s\n", titleStyle.Render(strings.Join(names, ", ")))
		fmt.Fprintf(w, "    %s  %s\n",
			priceStyle.Render("→ "+formatAmount(g.SuggestedQuantity, g.SuggestedUnit)),
			dimStyle.Render("ids "+strings.Join(g.IDs(), " ")),
		)
		fmt.Fprintln(w)
	}
}

// PrintDuplicatesJSON renders duplicate groups as JSON.
func PrintDuplicatesJSON(w io.Writer, groups []listclean.DuplicateGroup) error {
	out := make([]DuplicateGroupJSON, 0, len(groups))
	for _, g := range groups {
		names := make([]string, 0, len(g.Items))
		for _, item := range g.Items {
			names = append(names, grocery.DisplayName(item))
		}
		out = append(out, DuplicateGroupJSON{
			ItemIDs:           g.IDs(),
			Names:             names,
			SuggestedQuantity: g.SuggestedQuantity,
			SuggestedUnit:     g.SuggestedUnit,
		})
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintMergedItem renders the result of a merge.
func PrintMergedItem(w io.Writer, item grocery.ListItem, mergedCount int) {
	fmt.Fprintf(w, "\n%s\n\n", headerStyle.Render(fmt.Sprintf("Merged %s", plural(mergedCount, "item", "items"))))
	printItem(w, item)
	fmt.Fprintln(w)
}

// PrintMergedItemJSON renders the merged item as JSON.
func PrintMergedItemJSON(w io.Writer, item grocery.ListItem) error {
	return json.NewEncoder(w).Encode(item)
}

// PrintSuggestions renders prioritized suggestions.
func PrintSuggestions(w io.Writer, suggestions []listclean.Suggestion) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Suggestions"),
		cyanStyle.Render(plural(len(suggestions), "suggestion", "suggestions")),
	)
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render("The list looks tidy."))
		return
	}
	for _, s := range suggestions {
		printSuggestion(w, s)
		fmt.Fprintln(w)
	}
}

// PrintSuggestionsJSON renders suggestions as JSON.
func PrintSuggestionsJSON(w io.Writer, suggestions []listclean.Suggestion) error {
	if suggestions == nil {
		suggestions = []listclean.Suggestion{}
	}
	return json.NewEncoder(w).Encode(suggestions)
}

// PrintAisles renders a list grouped in store-aisle order.
func PrintAisles(w io.Writer, groups []grocery.Group) {
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Shopping list by aisle"),
		cyanStyle.Render(plural(total, "item", "items")),
	)
	for _, g := range groups {
		fmt.Fprintf(w, "  %s\n", cyanStyle.Render(g.Category.String()))
		for _, item := range g.Items {
			fmt.Fprint(w, "  ")
			printItem(w, item)
		}
		fmt.Fprintln(w)
	}
}

// PrintAislesJSON renders aisle groups as JSON.
func PrintAislesJSON(w io.Writer, groups []grocery.Group) error {
	out := make([]AisleJSON, 0, len(groups))
	for _, g := range groups {
		out = append(out, AisleJSON{Category: g.Category.String(), Items: g.Items})
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintCategories renders how each text was classified.
func PrintCategories(w io.Writer, inputs []string) {
	fmt.Fprintln(w)
	for _, in := range inputs {
		cat := grocery.MapToGroceryCategory(in)
		label := cyanStyle.Render(cat.String())
		if cat == grocery.General {
			label = dimStyle.Render(cat.String())
		}
		fmt.Fprintf(w, "  %q → %s\n", in, label)
	}
	fmt.Fprintln(w)
}

// PrintCategoriesJSON renders classifications as JSON.
func PrintCategoriesJSON(w io.Writer, inputs []string) error {
	out := make([]CategoryMatchJSON, 0, len(inputs))
	for _, in := range inputs {
		cat := grocery.MapToGroceryCategory(in)
		out = append(out, CategoryMatchJSON{Input: in, Category: cat.String(), CatchAll: cat == grocery.General})
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

func printMatch(w io.Writer, rank int, res match.MatchResult) {
	c := res.Candidate
	fmt.Fprintf(w, "  %s %s  %s\n",
		cyanStyle.Render(fmt.Sprintf("%d.", rank)),
		titleStyle.Render(candidateName(c)),
		dimStyle.Render(string(c.Tier)),
	)
	fmt.Fprintf(w, "    %s | %s\n",
		scoreStyle.Render("score "+formatScore(res.Score)),
		priceStyle.Render(formatMoney(res.EstimatedPrice)),
	)
	if len(res.Reasons) > 0 {
		fmt.Fprintf(w, "    %s\n", wordWrap(strings.Join(res.Reasons, " · "), 72, "    "))
	}
	if len(res.AvailableSlots) > 0 {
		fmt.Fprintf(w, "    %s\n", dimStyle.Render("Available: "+strings.Join(res.AvailableSlots, ", ")))
	}
}

func printSuggestion(w io.Writer, s listclean.Suggestion) {
	tag := dimStyle.Render(strings.ToUpper(string(s.Priority)))
	if s.Priority == listclean.PriorityHigh {
		tag = highTag.Render("HIGH")
	}
	fmt.Fprintf(w, "  %s %s\n", tag, titleStyle.Render(s.Title))
	if s.Description != "" {
		fmt.Fprintf(w, "    %s\n", wordWrap(s.Description, 72, "    "))
	}
	fmt.Fprintf(w, "    %s\n", dimStyle.Render(fmt.Sprintf("%s | %s | id %s", s.Action, s.Kind, s.ID)))
}

func printItem(w io.Writer, item grocery.ListItem) {
	check := "[ ]"
	if item.Checked {
		check = "[x]"
	}
	line := fmt.Sprintf("  %s %s  %s", check, titleStyle.Render(grocery.DisplayName(item)), formatAmount(item.Quantity, item.Unit))
	if note := strings.TrimSpace(item.Note); note != "" {
		line += "  " + dimStyle.Render(note)
	}
	fmt.Fprintln(w, line)
}

func toRecommendationJSON(rank int, res match.MatchResult) RecommendationJSON {
	reasons := res.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	slots := res.AvailableSlots
	if slots == nil {
		slots = []string{}
	}
	b := res.Breakdown
	b.Budget = round(b.Budget, 1)
	b.Cuisine = round(b.Cuisine, 1)
	b.Tier = round(b.Tier, 1)
	b.Availability = round(b.Availability, 1)
	b.Dietary = round(b.Dietary, 1)
	b.Price = round(b.Price, 2)
	b.Total = round(b.Total, 1)
	return RecommendationJSON{
		Rank:           rank,
		ID:             res.Candidate.ID,
		Name:           candidateName(res.Candidate),
		Tier:           res.Candidate.Tier,
		MatchScore:     round(res.Score, 1),
		EstimatedPrice: round(res.EstimatedPrice, 2),
		Reasons:        reasons,
		AvailableSlots: slots,
		Breakdown:      b,
	}
}

func describeCriteria(r match.RequestCriteria) string {
	parts := []string{fmt.Sprintf("budget %s–%s", formatMoney(r.BudgetMin), formatMoney(r.BudgetMax))}
	if et := strings.TrimSpace(r.EventType); et != "" {
		parts = append(parts, fmt.Sprintf("%s (%s)", et, match.ParseEventKind(et)))
	}
	if !r.EventDate.IsZero() {
		parts = append(parts, r.EventDate.Format("Mon Jan 2"))
	}
	if r.TimeSlot != "" {
		parts = append(parts, r.TimeSlot)
	}
	if r.EventSize > 0 {
		parts = append(parts, plural(r.EventSize, "guest", "guests"))
	}
	if len(r.Cuisines) > 0 {
		parts = append(parts, strings.Join(r.Cuisines, "/"))
	}
	if len(r.Dietary) > 0 {
		parts = append(parts, strings.Join(r.Dietary, "/"))
	}
	return strings.Join(parts, " | ")
}

func candidateName(c match.Candidate) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return "Candidate " + c.ID
}

func formatAmount(qty float64, unit string) string {
	amount := strconv.FormatFloat(qty, 'f', -1, 64)
	if unit = strings.TrimSpace(unit); unit != "" {
		return amount + " " + unit
	}
	return amount
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(round(v, 1), 'f', 1, 64)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func wordWrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
