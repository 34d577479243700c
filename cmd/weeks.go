package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/window"
)

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "List the ISO weeks of a year for use with --week",
	RunE: func(_ *cobra.Command, _ []string) error {
		now := time.Now()
		year, _ := now.ISOWeek()
		if flagYear != 0 {
			year = flagYear
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(weeksTable(year, now)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weeksCmd)
}

func weeksTable(year int, now time.Time) cli.Table {
	t := cli.Table{
		Title:   fmt.Sprintf("ISO weeks of %d", year),
		Headers: []string{"Week", "From", "To", ""},
		Left:    4,
	}
	cy, cw := now.ISOWeek()
	for _, w := range window.WeeksInYear(year) {
		mark := ""
		if cy == year && cw == w.Number {
			mark = "◀ now"
		}
		t.Rows = append(t.Rows, []string{strconv.Itoa(w.Number), cli.FormatDate(w.Start), cli.FormatDate(w.End), mark})
	}
	return t
}
