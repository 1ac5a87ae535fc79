package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tayloree/pantry/internal/display"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/listclean"
	"github.com/tayloree/pantry/internal/logging"
	"github.com/tayloree/pantry/internal/source"
)

var (
	flagDismissed []string
	flagOut       string
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Find items on a list that look like the same thing",
	Example: `  pantry duplicates --items list.json
  pantry duplicates --list weekly --json`,
	Args: cobra.NoArgs,
	RunE: runDuplicates,
}

var mergeCmd = &cobra.Command{
	Use:   "merge ID ID...",
	Short: "Merge list items into one normalized item",
	Long: "Combines the named items: quantities are summed, the most common unit\n" +
		"and aisle win, notes are joined. With --out the whole list is written\n" +
		"back with the merged item in place of the group.",
	Example: `  pantry merge 3 7 --items list.json
  pantry merge 3 7 --items list.json --out list.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest improvements to a list, most important first",
	Example: `  pantry suggest --items list.json
  pantry suggest --list weekly --dismissed 5b1e0c2a-... --json`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

var aislesCmd = &cobra.Command{
	Use:   "aisles",
	Short: "Print a list sorted and grouped by store aisle",
	Example: `  pantry aisles --items list.json
  pantry aisles --list weekly --json`,
	Args: cobra.NoArgs,
	RunE: runAisles,
}

var categoryCmd = &cobra.Command{
	Use:   "category TEXT...",
	Short: "Show which aisle free-text category labels map to",
	Example: `  pantry category fridge veggies "cleaning supplies"
  pantry category Bakery --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCategory,
}

func init() {
	rootCmd.AddCommand(duplicatesCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(aislesCmd)
	rootCmd.AddCommand(categoryCmd)

	mergeCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the updated list to FILE (- for stdout)")
	suggestCmd.Flags().StringSliceVar(&flagDismissed, "dismissed", nil, "Suggestion ID to hide (repeatable)")
}

func runDuplicates(cmd *cobra.Command, _ []string) error {
	items, err := loadListItems(cmd)
	if err != nil {
		return err
	}

	groups := listclean.DetectDuplicates(items)
	logging.Debug().Int("items", len(items)).Int("groups", len(groups)).Msg("duplicates detected")

	if flagJSON {
		return display.PrintDuplicatesJSON(cmd.OutOrStdout(), groups)
	}
	display.PrintDuplicates(cmd.OutOrStdout(), groups)
	return nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	items, err := loadListItems(cmd)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(args))
	for _, arg := range args {
		if id := strings.TrimSpace(arg); id != "" {
			ids = append(ids, id)
		}
	}

	merged, err := listclean.MergeItems(items, ids)
	if errors.Is(err, listclean.ErrNothingToMerge) {
		return notFoundError(
			fmt.Sprintf("none of %s is on the list", strings.Join(ids, ", ")),
			"Run `pantry duplicates` to see item IDs.",
		)
	}
	if err != nil {
		return err
	}
	count := countPresent(items, ids)
	logging.Debug().Strs("ids", ids).Int("merged", count).Msg("items merged")

	if flagOut != "" {
		updated, err := listclean.ApplyMerge(items, ids)
		if err != nil {
			return err
		}
		if err := writeList(cmd, flagOut, updated); err != nil {
			return err
		}
		if flagOut == source.Stdin {
			return nil
		}
	}

	if flagJSON {
		return display.PrintMergedItemJSON(cmd.OutOrStdout(), merged)
	}
	display.PrintMergedItem(cmd.OutOrStdout(), merged, count)
	return nil
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	items, err := loadListItems(cmd)
	if err != nil {
		return err
	}

	all := listclean.GenerateSmartSuggestions(items)
	visible := listclean.WithoutDismissed(all, flagDismissed)
	logging.Debug().
		Int("items", len(items)).
		Int("suggestions", len(all)).
		Int("hidden", len(all)-len(visible)).
		Msg("suggestions generated")

	if flagJSON {
		return display.PrintSuggestionsJSON(cmd.OutOrStdout(), visible)
	}
	display.PrintSuggestions(cmd.OutOrStdout(), visible)
	return nil
}

func runAisles(cmd *cobra.Command, _ []string) error {
	items, err := loadListItems(cmd)
	if err != nil {
		return err
	}

	groups := grocery.Groups(items)
	if flagJSON {
		return display.PrintAislesJSON(cmd.OutOrStdout(), groups)
	}
	display.PrintAisles(cmd.OutOrStdout(), groups)
	return nil
}

func runCategory(cmd *cobra.Command, args []string) error {
	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), args)
	}
	display.PrintCategories(cmd.OutOrStdout(), args)
	return nil
}

func countPresent(items []grocery.ListItem, ids []string) int {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	n := 0
	for _, item := range items {
		if want[item.ID] {
			n++
		}
	}
	return n
}

// writeList writes items as a JSON snapshot to path, or to stdout for "-".
func writeList(cmd *cobra.Command, path string, items []grocery.ListItem) error {
	if path == source.Stdin {
		return source.WriteItems(cmd.OutOrStdout(), items)
	}

	f, err := os.Create(path)
	if err != nil {
		return invalidArgsError(fmt.Sprintf("writing list: %v", err), "Check that --out points at a writable path.")
	}
	if err := source.WriteItems(f, items); err != nil {
		f.Close()
		return fmt.Errorf("writing list: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing list: %w", err)
	}
	logging.Info().Str("path", path).Int("items", len(items)).Msg("list written")
	return nil
}
