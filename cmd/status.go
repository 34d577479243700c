package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/debt"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
	"github.com/theirongolddev/tally/internal/window"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the budget summary for the active window",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	now := time.Now()
	f, err := activeFilter(now)
	if err != nil {
		return err
	}

	return withSession(func(s *session) error {
		state := s.ledger.Snapshot()
		sum, err := pipeline.Summarize(state, f, cfg.Costs(), now)
		if err != nil {
			return err
		}
		fixed := pipeline.FixedCosts(state, f, now)

		fmt.Println()
		fmt.Println(cli.RenderTitle(window.Label(f)))
		fmt.Println()
		fmt.Print(cli.RenderKV([][2]string{
			{"Income", cli.FormatAmount(sum.FilteredIncome)},
			{"Food", cli.FormatAmount(sum.FilteredFood) + " of " + cli.FormatAmount(sum.FoodBudget)},
			{"Misc", cli.FormatAmount(sum.FilteredMisc) + " of " + cli.FormatAmount(sum.MiscBudget)},
			{"Debt payments", cli.FormatAmount(sum.FilteredDebtPayments)},
			{"Fixed costs", cli.FormatAmount(sum.FixedExpenses)},
			{"Spent", cli.FormatAmount(sum.TotalActualSpending)},
			{"Planned", cli.FormatDecimal(sum.TotalPlannedSpending)},
			{"Weekly debt need", cli.FormatDecimal(sum.WeeklyDebtContribution)},
			{"Status", cli.Colored(cli.FormatSigned(sum.FinancialStatus), sum.FinancialStatus)},
			{"Disposable", cli.Colored(cli.FormatSigned(sum.DisposableIncome), sum.DisposableIncome)},
			{"Days off", cli.FormatDays(int64(sum.DaysOffCanTake), sum.DaysOffUnbounded)},
			{"Savings", cli.FormatAmount(state.SavingsBalance)},
		}))
		fmt.Println()
		printFixedCosts(fixed)

		month, year := now.Month(), now.Year()
		if f.Kind == model.FilterMonth {
			month, year = f.Month, f.Year
		}
		period := debt.ForPeriod(state.Debts, month, year)
		if len(period) > 0 {
			fmt.Println()
			fmt.Print(cli.RenderTable(debtTable(
				fmt.Sprintf("Debts for %s %d", month, year), period, sum.DisposableIncome, now)))
		}
		fmt.Println()
		return nil
	})
}

func printFixedCosts(fc model.FixedCostStatus) {
	fuel := "not filled today"
	if fc.FuelFilledToday {
		fuel = "filled today"
	}
	fuel += fmt.Sprintf(", %d fills in window", fc.FuelFillsInWindow)
	if fc.HasFuelInterval {
		fuel += fmt.Sprintf(", last interval %d days", fc.LastFuelInterval)
		if fc.FuelIntervalShorter {
			fuel += " (shorter than usual)"
		}
	}

	wifi := "never paid"
	if !fc.LastConnectivityPayment.IsZero() {
		wifi = "paid " + cli.FormatDate(fc.LastConnectivityPayment)
		switch {
		case fc.ConnectivityDueSoon:
			wifi += ", due soon"
		case !fc.ConnectivityPaidRecently:
			wifi += ", expired"
		}
	}

	fmt.Print(cli.RenderKV([][2]string{
		{"Fuel", fuel},
		{"Connectivity", wifi},
	}))
}

func suggestionText(sg model.Suggestion) string {
	switch sg {
	case model.SuggestPause:
		return "pause"
	case model.SuggestIncrease:
		return "pay more"
	case model.SuggestContinue:
		return "continue"
	default:
		return ""
	}
}

func debtTable(title string, debts []model.Debt, disposable int64, now time.Time) cli.Table {
	t := cli.Table{
		Title:   title,
		Headers: []string{"ID", "Name", "Remaining", "Due", "Left", "Per week", "Paid", "Hint"},
		Left:    2,
	}
	for _, d := range debts {
		st := debt.Status(d, now)
		t.Rows = append(t.Rows, []string{
			shortID(d.ID),
			d.Name,
			cli.FormatAmount(st.Remaining),
			cli.FormatDate(d.DueDate),
			cli.FormatDaysLeft(st.DaysLeft),
			cli.FormatDecimal(st.WeeklyPaymentNeed),
			cli.RenderProgressBar(st.Progress, 10, st.Level),
			suggestionText(debt.Suggest(disposable, st)),
		})
	}
	return t
}

// shortID trims generated ids for display; commands accept any unique prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
