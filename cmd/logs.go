package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/window"
)

var flagLogDate string

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Record, list and correct income",
}

var incomeAddCmd = &cobra.Command{
	Use:   "add AMOUNT",
	Short: "Record income",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, date, err := amountAndDate(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			l, err := s.ledger.AddIncome(amount, date)
			if err != nil {
				return err
			}
			fmt.Printf("  Income %s on %s\n", cli.FormatAmount(l.Amount), cli.FormatDate(l.Date))
			return nil
		})
	},
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List income in the active window",
	RunE: func(_ *cobra.Command, _ []string) error {
		f, err := activeFilter(time.Now())
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			t := cli.Table{Title: "Income · " + window.Label(f), Headers: []string{"ID", "Date", "Amount", "Source"}, Left: 2}
			var total int64
			for _, l := range sortedByDate(s.ledger.Snapshot().IncomeLogs, func(l model.IncomeLog) time.Time { return l.Date }) {
				if !window.Matches(l.Date, f) {
					continue
				}
				src := "earned"
				if l.IsSavingsWithdrawal {
					src = "savings"
				}
				t.Rows = append(t.Rows, []string{shortID(l.ID), cli.FormatDate(l.Date), cli.FormatAmount(l.Amount), src})
				total += l.Amount
			}
			t.Rows = append(t.Rows, cli.SeparatorRow, []string{"", "Total", cli.FormatAmount(total), ""})
			fmt.Println()
			fmt.Print(cli.RenderTable(t))
			return nil
		})
	},
}

var incomeEditCmd = &cobra.Command{
	Use:   "edit ID AMOUNT",
	Short: "Correct the amount of an income entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			var ids []string
			for _, l := range s.ledger.Snapshot().IncomeLogs {
				ids = append(ids, l.ID)
			}
			id, err := resolveID("income entry", args[0], ids)
			if err != nil {
				return err
			}
			l, err := s.ledger.EditIncome(id, amount)
			if err != nil {
				return err
			}
			fmt.Printf("  Income on %s is now %s\n", cli.FormatDate(l.Date), cli.FormatAmount(l.Amount))
			return nil
		})
	},
}

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Record food spending",
}

var foodAddCmd = &cobra.Command{
	Use:   "add AMOUNT",
	Short: "Record a food expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, date, err := amountAndDate(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			l, err := s.ledger.AddFood(amount, date)
			if err != nil {
				return err
			}
			fmt.Printf("  Food %s on %s\n", cli.FormatAmount(l.Amount), cli.FormatDate(l.Date))
			return nil
		})
	},
}

var miscCmd = &cobra.Command{
	Use:   "misc",
	Short: "Record, list and delete miscellaneous spending",
}

var miscAddCmd = &cobra.Command{
	Use:   "add NAME AMOUNT",
	Short: "Record a named expense",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, date, err := amountAndDate(args[1])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			l, err := s.ledger.AddMisc(args[0], amount, date)
			if err != nil {
				return err
			}
			fmt.Printf("  %s %s on %s (%s)\n", l.Name, cli.FormatAmount(l.Amount), cli.FormatDate(l.Date), shortID(l.ID))
			return nil
		})
	},
}

var miscListCmd = &cobra.Command{
	Use:   "list",
	Short: "List miscellaneous spending in the active window",
	RunE: func(_ *cobra.Command, _ []string) error {
		f, err := activeFilter(time.Now())
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			t := cli.Table{Title: "Misc · " + window.Label(f), Headers: []string{"ID", "Date", "Name", "Amount"}, Left: 3}
			var total int64
			for _, l := range sortedByDate(s.ledger.Snapshot().MiscLogs, func(l model.MiscLog) time.Time { return l.Date }) {
				if !window.Matches(l.Date, f) {
					continue
				}
				t.Rows = append(t.Rows, []string{shortID(l.ID), cli.FormatDate(l.Date), l.Name, cli.FormatAmount(l.Amount)})
				total += l.Amount
			}
			t.Rows = append(t.Rows, cli.SeparatorRow, []string{"", "", "Total", cli.FormatAmount(total)})
			fmt.Println()
			fmt.Print(cli.RenderTable(t))
			return nil
		})
	},
}

var miscDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a miscellaneous expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			var ids []string
			for _, l := range s.ledger.Snapshot().MiscLogs {
				ids = append(ids, l.ID)
			}
			id, err := resolveID("misc entry", args[0], ids)
			if err != nil {
				return err
			}
			if err := s.ledger.DeleteMisc(id); err != nil {
				return err
			}
			fmt.Println("  Deleted.")
			return nil
		})
	},
}

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the food and misc budgets",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set food|misc AMOUNT",
	Short: "Set a budget",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			switch args[0] {
			case "food":
				err = s.ledger.SetFoodBudget(amount)
			case "misc":
				err = s.ledger.SetMiscBudget(amount)
			default:
				return fmt.Errorf("%w: unknown budget %q (food or misc)", model.ErrInvalidArgument, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Printf("  %s budget set to %s\n", args[0], cli.FormatAmount(amount))
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{incomeAddCmd, foodAddCmd, miscAddCmd} {
		c.Flags().StringVar(&flagLogDate, "date", "", "Date as YYYY-MM-DD (default now)")
	}

	incomeCmd.AddCommand(incomeAddCmd, incomeListCmd, incomeEditCmd)
	foodCmd.AddCommand(foodAddCmd)
	miscCmd.AddCommand(miscAddCmd, miscListCmd, miscDeleteCmd)
	budgetCmd.AddCommand(budgetSetCmd)
	rootCmd.AddCommand(incomeCmd, foodCmd, miscCmd, budgetCmd)
}

func amountAndDate(arg string) (int64, time.Time, error) {
	amount, err := parseAmount(arg)
	if err != nil {
		return 0, time.Time{}, err
	}
	date, err := parseDate(flagLogDate)
	if err != nil {
		return 0, time.Time{}, err
	}
	return amount, date, nil
}

// sortedByDate returns a copy of logs, most recent first.
func sortedByDate[T any](logs []T, date func(T) time.Time) []T {
	out := make([]T, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool { return date(out[i]).After(date(out[j])) })
	return out
}
