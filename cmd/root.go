package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tayloree/pantry/internal/config"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/logging"
	"github.com/tayloree/pantry/internal/match"
	"github.com/tayloree/pantry/internal/source"
)

var (
	flagJSON       bool
	flagConfig     string
	flagLogLevel   string
	flagItems      string
	flagList       string
	flagCandidates string
)

var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Rank chefs for an event and tidy shopping lists",
	Long: "CLI tool that ranks candidate chefs against event criteria and cleans up\n" +
		"shopping lists: duplicate detection, merges, suggestions and aisle order.\n\n" +
		"Data comes from local JSON snapshots (--items, --candidates, `-` for stdin)\n" +
		"or from the data store configured under store.url.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -items list.json, items=list.json, --itmes list.json).",
	Example: `  pantry recommend --candidates pool.json --event wedding --budget-max 500
  pantry quote c1 --candidates pool.json --event corporate
  pantry duplicates --items list.json
  pantry merge 3 7 --items list.json --out list.json
  pantry suggest --list weekly --dismissed 6f1c...
  pantry aisles --items - < list.json
  pantry category fridge veggies`,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.StringVar(&flagConfig, "config", "", "Config file (default pantry.yaml, or $PANTRY_CONFIG)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error, disabled")
	pf.StringVarP(&flagItems, "items", "i", "", "Shopping list snapshot (JSON file, or - for stdin)")
	pf.StringVarP(&flagList, "list", "l", "", "Shopping list ID in the data store")
	pf.StringVarP(&flagCandidates, "candidates", "c", "", "Candidate pool snapshot (JSON file, or - for stdin)")
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	flagJSON = false
	flagConfig = ""
	flagLogLevel = ""
	flagItems = ""
	flagList = ""
	flagCandidates = ""
	resetCriteriaFlags()
	flagLimit = 0
	flagDismissed = nil
	flagOut = ""
	activeConfig = nil
	resetFlagState(rootCmd)
}

// resetFlagState clears what pflag remembers from a previous run so
// Changed() only reports flags from the current arguments.
func resetFlagState(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !strings.HasSuffix(f.Value.Type(), "Slice") {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlagState(child)
	}
}

// activeConfig is loaded once per invocation by settings.
var activeConfig *config.Config

// settings loads configuration and applies its log settings. Flags win over
// the file and the environment.
func settings() (*config.Config, error) {
	if activeConfig != nil {
		return activeConfig, nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, invalidArgsError(
			fmt.Sprintf("loading config: %v", err),
			"Check pantry.yaml or unset PANTRY_CONFIG.",
		)
	}
	if flagLogLevel != "" {
		if !logging.ValidLevel(flagLogLevel) {
			return nil, invalidArgsError(
				fmt.Sprintf("invalid value for --log-level: %q", flagLogLevel),
				"pantry suggest --items list.json --log-level debug",
			)
		}
		cfg.Log.Level = flagLogLevel
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logging.Debug().
		Str("store", cfg.Store.URL).
		Int("limit", cfg.Recommend.Limit).
		Msg("config loaded")

	activeConfig = cfg
	return cfg, nil
}

func storeClient(cfg *config.Config) *source.Client {
	return source.NewClient(
		cfg.Store.URL,
		source.WithToken(cfg.Store.Token),
		source.WithTimeout(cfg.Store.Timeout),
	)
}

// loadListItems reads the shopping list named by --items or --list.
func loadListItems(cmd *cobra.Command) ([]grocery.ListItem, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}

	var items []grocery.ListItem
	switch {
	case flagItems != "" && flagList != "":
		return nil, invalidArgsError(
			"use either --items or --list, not both",
			"pantry duplicates --items list.json",
			"pantry duplicates --list weekly",
		)
	case flagItems != "":
		items, err = source.LoadItems(flagItems, cmd.InOrStdin())
		if err != nil {
			return nil, snapshotError("reading list", err)
		}
	case flagList != "":
		if cfg.Store.URL == "" {
			return nil, invalidArgsError(
				"--list needs store.url in the config (or PANTRY_STORE_URL)",
				"PANTRY_STORE_URL=https://store.example.com pantry duplicates --list weekly",
			)
		}
		items, err = storeClient(cfg).FetchListItems(cmd.Context(), flagList)
		if err != nil {
			return nil, storeError("fetching list", err)
		}
	default:
		return nil, invalidArgsError(
			"please provide --items FILE or --list ID",
			"pantry duplicates --items list.json",
			"pantry duplicates --list weekly",
		)
	}

	logging.Debug().Int("items", len(items)).Msg("list loaded")
	return items, nil
}

// loadCandidatePool reads the pool from --candidates, or from the store when
// no snapshot is given.
func loadCandidatePool(cmd *cobra.Command) ([]match.Candidate, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}

	var pool []match.Candidate
	switch {
	case flagCandidates != "":
		pool, err = source.LoadCandidates(flagCandidates, cmd.InOrStdin())
		if err != nil {
			return nil, snapshotError("reading candidates", err)
		}
	case cfg.Store.URL != "":
		pool, err = storeClient(cfg).FetchCandidates(cmd.Context())
		if err != nil {
			return nil, storeError("fetching candidates", err)
		}
		pool = source.ValidCandidates(pool)
	default:
		return nil, invalidArgsError(
			"please provide --candidates FILE or configure store.url",
			"pantry recommend --candidates pool.json --budget-max 300",
		)
	}

	if len(pool) == 0 {
		return nil, notFoundError(
			"the candidate pool is empty",
			"Check the snapshot, or the data store's /candidates endpoint.",
		)
	}
	logging.Debug().Int("candidates", len(pool)).Msg("pool loaded")
	return pool, nil
}

func usesStdin(paths ...string) int {
	n := 0
	for _, p := range paths {
		if strings.TrimSpace(p) == source.Stdin {
			n++
		}
	}
	return n
}
