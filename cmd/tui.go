package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tayloree/pantry/internal/display"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/listclean"
	"github.com/tayloree/pantry/internal/logging"
	"golang.org/x/term"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Triage list suggestions interactively in the terminal",
	Long: "Opens a two-pane view of the list's suggestions. Apply merges, dismiss\n" +
		"what you do not want, and write the cleaned list with --out.",
	Example: `  pantry review --items list.json --out list.json
  pantry review --list weekly`,
	Args: cobra.NoArgs,
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the reviewed list to FILE (- for stdout)")
}

func runReview(cmd *cobra.Command, _ []string) error {
	if flagJSON {
		items, err := loadListItems(cmd)
		if err != nil {
			return err
		}
		return display.PrintSuggestionsJSON(cmd.OutOrStdout(), listclean.GenerateSmartSuggestions(items))
	}
	if !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`pantry review` requires an interactive terminal",
			"Use `pantry suggest --items list.json --json` in pipelines.",
		)
	}
	if flagItems == "-" {
		return invalidArgsError(
			"`pantry review` reads keys from stdin, so --items cannot be -",
			"pantry review --items list.json",
		)
	}

	model := newLoadingReviewModel(reviewLoadConfig{
		load: func() ([]grocery.ListItem, error) { return loadListItems(cmd) },
	})
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running review: %w", err)
	}

	result, ok := final.(reviewModel)
	if !ok {
		return nil
	}
	if result.fatalErr != nil {
		return result.fatalErr
	}
	logging.Debug().
		Int("applied", result.applied).
		Int("dismissed", len(result.dismissed)).
		Msg("review finished")

	if result.applied > 0 && flagOut != "" {
		if err := writeList(cmd, flagOut, result.items); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), reviewSummary(result))
	return nil
}

func reviewSummary(m reviewModel) string {
	summary := fmt.Sprintf("applied %d, dismissed %d, %d items on the list", m.applied, len(m.dismissed), len(m.items))
	if m.applied > 0 && flagOut == "" {
		summary += " (not saved; pass --out FILE to keep the changes)"
	}
	if len(m.dismissed) > 0 {
		summary += "\ndismissed:"
		for _, id := range m.dismissed {
			summary += " " + id
		}
	}
	return summary
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}
