package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/model"
	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/timecalc"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: json, yaml, md (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	entries, err := store.LoadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	format := exportFormat
	if format == "" {
		format = cfg.Export.Format
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding YAML:", err)
			os.Exit(2)
		}
		fmt.Print(string(data))
	case "md":
		printMarkdown(entries)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want json, yaml, or md)\n", format)
		os.Exit(1)
	}
	return nil
}

func printMarkdown(entries []model.Entry) {
	fmt.Println("| Date | Sleep | Exercise | Mood | Mood tags | Activities | Notes |")
	fmt.Println("|---|---|---|---|---|---|---|")
	for _, e := range entries {
		fmt.Printf("| %s | %s | %s | %.1f | %s | %s | %s |\n",
			e.Date,
			timecalc.FormatHHMM(e.SleepMinutes),
			timecalc.FormatHHMM(e.ExerciseMinutes),
			e.MoodScale,
			strings.Join(e.MoodTags, ", "),
			strings.Join(e.Activities, ", "),
			mdEscape(e.Notes),
		)
	}
}

// mdEscape keeps pipes in free-form notes from breaking the table.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
