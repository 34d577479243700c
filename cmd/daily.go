package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/pipeline"
)

var flagDailyDays int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show per-day income and spending",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagDailyDays, "days", "n", 14, "Number of days to show")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	if flagDailyDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}
	now := time.Now()

	return withSession(func(s *session) error {
		days := pipeline.Daily(s.ledger.Snapshot(), now.AddDate(0, 0, -(flagDailyDays-1)), now)

		t := cli.Table{
			Title:   fmt.Sprintf("Last %d days", flagDailyDays),
			Headers: []string{"Date", "Day", "Income", "Food", "Misc", "Debt", "Spent"},
			Left:    2,
		}
		spend := make([]int64, len(days))
		var totalIn, totalOut int64
		for i, d := range days {
			t.Rows = append(t.Rows, []string{
				cli.FormatDate(d.Date),
				cli.FormatDayOfWeek(int(d.Date.Weekday())),
				cli.FormatAmount(d.Income),
				cli.FormatAmount(d.Food),
				cli.FormatAmount(d.Misc),
				cli.FormatAmount(d.DebtPayments),
				cli.FormatAmount(d.Spending()),
			})
			// oldest first for the sparkline
			spend[len(days)-1-i] = d.Spending()
			totalIn += d.Income
			totalOut += d.Spending()
		}
		t.Rows = append(t.Rows, cli.SeparatorRow,
			[]string{"Total", "", cli.FormatAmount(totalIn), "", "", "", cli.FormatAmount(totalOut)})

		fmt.Println()
		fmt.Print(cli.RenderTable(t))
		fmt.Printf("  Spending  %s\n\n", cli.RenderSparkline(spend))
		return nil
	})
}
