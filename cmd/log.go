package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/timecalc"
	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/validate"
)

var (
	logDate            string
	logDay             string
	logMonth           string
	logYear            string
	logSleepHours      string
	logSleepMinutes    string
	logExerciseHours   string
	logExerciseMinutes string
	logMood            string
	logTags            string
	logActivities      string
	logNotes           string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log or update the wellness entry for a day",
	Long: `log validates the given fields and upserts the entry for the date.
The date defaults to today; it can also be given as --date 2024-06-15 or as
separate --day/--month/--year components (month by name, abbreviation, or
number). All validation errors are reported together, one line per field.`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&logDay, "day", "", "Day of month (used with --month and --year)")
	logCmd.Flags().StringVar(&logMonth, "month", "", "Month name, abbreviation, or number")
	logCmd.Flags().StringVar(&logYear, "year", "", "Four-digit year")
	logCmd.Flags().StringVar(&logSleepHours, "sleep-hours", "", "Hours slept (whole hours)")
	logCmd.Flags().StringVar(&logSleepMinutes, "sleep-minutes", "", "Extra minutes slept (0-59)")
	logCmd.Flags().StringVar(&logExerciseHours, "exercise-hours", "", "Hours exercised (whole hours)")
	logCmd.Flags().StringVar(&logExerciseMinutes, "exercise-minutes", "", "Extra minutes exercised (0-59)")
	logCmd.Flags().StringVar(&logMood, "mood", "", "Mood rating, 0.0 to 10.0")
	logCmd.Flags().StringVar(&logTags, "tags", "", "Comma-separated mood tags")
	logCmd.Flags().StringVar(&logActivities, "activities", "", "Comma-separated activities")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Free-form notes")
}

func runLog(cmd *cobra.Command, args []string) error {
	rawDate, err := resolveDate()
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}

	raw := validate.RawEntry{
		Date:            rawDate,
		SleepHours:      logSleepHours,
		SleepMinutes:    logSleepMinutes,
		ExerciseHours:   logExerciseHours,
		ExerciseMinutes: logExerciseMinutes,
		MoodScale:       logMood,
		MoodTags:        logTags,
		Activities:      logActivities,
		Notes:           logNotes,
	}

	entry, fieldErrs := validate.Validate(raw)
	if len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			fmt.Fprintln(os.Stderr, red(fe.Error()))
		}
		os.Exit(1)
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	updated, err := store.Upsert(entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	action := "inserted"
	if updated {
		action = "updated"
	}
	fmt.Println(green(fmt.Sprintf("Saved entry for %s (%s)", entry.Date, action)))
	return nil
}

// resolveDate turns the date flags into the raw ISO candidate string the
// validator checks. Bare `log` means today; --date wins over components.
func resolveDate() (string, error) {
	if logDate != "" {
		return logDate, nil
	}
	if logDay == "" && logMonth == "" && logYear == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if logDay == "" || logMonth == "" || logYear == "" {
		return "", fmt.Errorf("date: --day, --month and --year must be given together")
	}

	day, err := strconv.Atoi(logDay)
	if err != nil {
		return "", fmt.Errorf("date: day must be a whole number")
	}
	year, err := strconv.Atoi(logYear)
	if err != nil {
		return "", fmt.Errorf("date: year must be a whole number")
	}
	month, ok := timecalc.MonthNumber(logMonth)
	if !ok {
		return "", fmt.Errorf("date: month must be a real month (example: January)")
	}
	return timecalc.ComposeDate(day, month, year), nil
}
