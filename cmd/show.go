package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/timecalc"
)

var showCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show the entry for one date",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	date := args[0]

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	entry, err := store.FindByDate(date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "No entry for %s.\n", date)
		os.Exit(1)
	}

	fmt.Printf("Date:       %s\n", entry.Date)
	fmt.Printf("Sleep:      %s\n", timecalc.FormatDuration(entry.SleepMinutes))
	fmt.Printf("Exercise:   %s\n", timecalc.FormatDuration(entry.ExerciseMinutes))
	fmt.Printf("Mood:       %.1f\n", entry.MoodScale)
	fmt.Printf("Mood tags:  %s\n", strings.Join(entry.MoodTags, ", "))
	fmt.Printf("Activities: %s\n", strings.Join(entry.Activities, ", "))
	if entry.Notes != "" {
		fmt.Printf("Notes:      %s\n", entry.Notes)
	}
	return nil
}
