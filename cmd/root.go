package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/config"
	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/storage"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Personal Wellness Tracker – one wellness record per day",
	Long: `wellness logs one record per calendar day (sleep, exercise, mood,
tags, activities, notes) into a plain CSV file. Logging the same date twice
updates the existing row instead of adding a duplicate.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sortCmd)
}

// openStore loads the config and opens the store over the configured
// data file.
func openStore() (*storage.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	return storage.New(cfg.DataFile), cfg, nil
}
