package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tayloree/pantry/internal/display"
	"github.com/tayloree/pantry/internal/logging"
	"github.com/tayloree/pantry/internal/match"
	"github.com/tayloree/pantry/internal/source"
	"github.com/tayloree/pantry/internal/validation"
)

const dateLayout = "2006-01-02"

var (
	flagRequest   string
	flagBudgetMin float64
	flagBudgetMax float64
	flagCuisines  []string
	flagEvent     string
	flagDate      string
	flagSize      int
	flagSlot      string
	flagDietary   []string
	flagLimit     int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank candidate chefs against event criteria",
	Long: "Scores every candidate in the pool on budget, cuisine, tier, availability\n" +
		"and dietary fit, drops weak matches and prints the best ones with reasons.",
	Example: `  pantry recommend --candidates pool.json --event wedding --budget-min 200 --budget-max 500
  pantry recommend -c pool.json --cuisine italian --cuisine french --date 2026-06-13 --slot evening
  pantry recommend --request request.json --limit 10 --json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

var quoteCmd = &cobra.Command{
	Use:   "quote CANDIDATE_ID",
	Short: "Explain one candidate's score and price for the criteria",
	Example: `  pantry quote c1 --candidates pool.json --event corporate --size 30 --date 2026-06-13
  pantry quote c1 --request request.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(quoteCmd)

	registerCriteriaFlags(recommendCmd.Flags())
	recommendCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum matches to show (default from config, 5)")

	registerCriteriaFlags(quoteCmd.Flags())
}

func registerCriteriaFlags(f *pflag.FlagSet) {
	f.StringVar(&flagRequest, "request", "", "Request criteria as JSON (file, or - for stdin); flags override its fields")
	f.Float64Var(&flagBudgetMin, "budget-min", 0, "Lowest acceptable price")
	f.Float64Var(&flagBudgetMax, "budget-max", 0, "Highest acceptable price")
	f.StringSliceVar(&flagCuisines, "cuisine", nil, "Wanted cuisine (repeatable)")
	f.StringVar(&flagEvent, "event", "", "Event type (e.g. wedding, corporate lunch, family dinner)")
	f.StringVar(&flagDate, "date", "", "Event date as YYYY-MM-DD")
	f.IntVar(&flagSize, "size", 0, "Number of guests")
	f.StringVar(&flagSlot, "slot", "", "Time slot: morning, afternoon or evening")
	f.StringSliceVar(&flagDietary, "dietary", nil, "Dietary requirement (repeatable)")
}

func resetCriteriaFlags() {
	flagRequest = ""
	flagBudgetMin = 0
	flagBudgetMax = 0
	flagCuisines = nil
	flagEvent = ""
	flagDate = ""
	flagSize = 0
	flagSlot = ""
	flagDietary = nil
}

// buildCriteria assembles the request from --request and the criteria flags.
// A flag set on the command line overrides the same field from the file.
func buildCriteria(cmd *cobra.Command) (match.RequestCriteria, error) {
	var r match.RequestCriteria
	if flagRequest != "" {
		loaded, err := source.LoadCriteria(flagRequest, cmd.InOrStdin())
		if err != nil {
			return r, snapshotError("reading request", err)
		}
		r = loaded
	}

	f := cmd.Flags()
	if f.Changed("budget-min") {
		r.BudgetMin = flagBudgetMin
	}
	if f.Changed("budget-max") {
		r.BudgetMax = flagBudgetMax
	}
	if f.Changed("cuisine") {
		r.Cuisines = flagCuisines
	}
	if f.Changed("event") {
		r.EventType = flagEvent
	}
	if f.Changed("date") {
		date, err := time.Parse(dateLayout, strings.TrimSpace(flagDate))
		if err != nil {
			return r, invalidArgsError(
				fmt.Sprintf("invalid value for --date: %q (use YYYY-MM-DD)", flagDate),
				"pantry recommend -c pool.json --date 2026-06-13",
			)
		}
		r.EventDate = date
	}
	if f.Changed("size") {
		r.EventSize = flagSize
	}
	if f.Changed("slot") {
		if _, ok := match.CanonicalSlot(flagSlot); !ok {
			return r, invalidArgsError(
				fmt.Sprintf("invalid value for --slot: %q (use morning, afternoon or evening)", flagSlot),
				"pantry recommend -c pool.json --slot evening",
			)
		}
		r.TimeSlot = flagSlot
	}
	if f.Changed("dietary") {
		r.Dietary = flagDietary
	}

	if err := validation.Struct(&r); err != nil {
		return r, invalidArgsError(
			fmt.Sprintf("invalid criteria: %v", err),
			"pantry recommend -c pool.json --budget-min 100 --budget-max 300",
		)
	}
	if r.BudgetMax == 0 && r.BudgetMin == 0 {
		logging.Warn().Msg("no budget given; every priced candidate is over budget")
	}
	return r, nil
}

func loadRecommendInputs(cmd *cobra.Command) ([]match.Candidate, match.RequestCriteria, error) {
	if usesStdin(flagRequest, flagCandidates) > 1 {
		return nil, match.RequestCriteria{}, invalidArgsError(
			"only one of --request and --candidates can read stdin",
			"pantry recommend --candidates pool.json --request -",
		)
	}

	r, err := buildCriteria(cmd)
	if err != nil {
		return nil, r, err
	}
	pool, err := loadCandidatePool(cmd)
	if err != nil {
		return nil, r, err
	}
	return pool, r, nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if flagLimit < 0 {
		return invalidArgsError(
			"--limit must not be negative",
			"pantry recommend -c pool.json --limit 5",
		)
	}
	cfg, err := settings()
	if err != nil {
		return err
	}
	pool, r, err := loadRecommendInputs(cmd)
	if err != nil {
		return err
	}

	limit := flagLimit
	if limit == 0 {
		limit = cfg.Recommend.Limit
	}

	results := match.GenerateRecommendations(pool, r, limit)
	logging.Debug().
		Int("pool", len(pool)).
		Int("matches", len(results)).
		Str("event", match.ParseEventKind(r.EventType).String()).
		Msg("candidates ranked")

	if flagJSON {
		return display.PrintRecommendationsJSON(cmd.OutOrStdout(), results)
	}
	display.PrintRecommendations(cmd.OutOrStdout(), results, r)
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	pool, r, err := loadRecommendInputs(cmd)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(args[0])
	candidate, ok := findCandidate(pool, id)
	if !ok {
		ids := make([]string, 0, len(pool))
		for _, c := range pool {
			ids = append(ids, c.ID)
		}
		suggestions := []string{"Run `pantry recommend` to see candidate IDs."}
		if near, found := closestMatch(id, ids, 2); found {
			suggestions = append([]string{fmt.Sprintf("Did you mean `%s`?", near)}, suggestions...)
		}
		return notFoundError(fmt.Sprintf("no candidate with id %q", id), suggestions...)
	}

	res := match.Evaluate(candidate, r)
	logging.Debug().Str("candidate", id).Float64("score", res.Score).Msg("candidate quoted")

	if flagJSON {
		return display.PrintQuoteJSON(cmd.OutOrStdout(), res)
	}
	display.PrintQuote(cmd.OutOrStdout(), res)
	return nil
}

func findCandidate(pool []match.Candidate, id string) (match.Candidate, bool) {
	for _, c := range pool {
		if c.ID == id {
			return c, true
		}
	}
	return match.Candidate{}, false
}
