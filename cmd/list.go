package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/model"
	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/timecalc"
)

var listSorted bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored wellness entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listSorted, "sorted", false, "Show entries in date order (does not rewrite the file)")
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	entries, err := store.LoadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if listSorted {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date < entries[j].Date
		})
	}

	printEntries(entries)
	return nil
}

// printEntries renders one line per entry, with notes indented below.
func printEntries(entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	fmt.Printf("%-12s%-9s%-10s%-6s%-24s%s\n",
		"DATE", "SLEEP", "EXERCISE", "MOOD", "TAGS", "ACTIVITIES")
	for _, e := range entries {
		fmt.Printf("%-12s%-9s%-10s%-6.1f%-24s%s\n",
			e.Date,
			timecalc.FormatDuration(e.SleepMinutes),
			timecalc.FormatDuration(e.ExerciseMinutes),
			e.MoodScale,
			strings.Join(e.MoodTags, ", "),
			strings.Join(e.Activities, ", "),
		)
		if e.Notes != "" {
			fmt.Printf("            %s\n", e.Notes)
		}
	}
}
