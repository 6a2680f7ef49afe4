package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Rewrite the backing file in date order",
	Long: `sort reorders the rows of the backing CSV by date, oldest first.
Logging never reorders rows by itself, so this is useful after importing or
hand-editing data.`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := store.SortByDate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println(green("Sorted " + store.Path() + " by date."))
	return nil
}
