package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/debt"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
)

var (
	flagDebtSource string
	flagDebtDue    string
	flagDebtUntil  string
	flagDebtEvery  string
	flagDebtMonth  int
	flagDebtYear   int
	flagDebtName   string
	flagDebtAmount string
	flagDebtAll    bool
	flagPayDate    string
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Manage debts and their payments",
}

var debtAddCmd = &cobra.Command{
	Use:   "add NAME AMOUNT",
	Short: "Add a debt, or an installment series with --until",
	Long: "Add a single debt due on --due. With --until the amount is repeated as an\n" +
		"installment every --every (weekly or monthly) from --due through --until.",
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		due, err := parseDate(flagDebtDue)
		if err != nil {
			return err
		}
		until, err := parseDate(flagDebtUntil)
		if err != nil {
			return err
		}

		p := debt.Plan{
			Kind:        debt.Single,
			Name:        args[0],
			Source:      flagDebtSource,
			TotalAmount: amount,
			DueDate:     due,
			TargetMonth: time.Month(flagDebtMonth),
			TargetYear:  flagDebtYear,
		}
		if !until.IsZero() {
			p.Kind = debt.Stepped
			p.EndDate = until
			p.Frequency = debt.Frequency(flagDebtEvery)
		}
		return addDebts(p)
	},
}

var debtBillCmd = &cobra.Command{
	Use:   "bill AMOUNT",
	Short: "Add the monthly pay-later statement for --month/--year",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		now := time.Now()
		month, year := now.Month(), now.Year()
		if flagDebtMonth != 0 {
			month = time.Month(flagDebtMonth)
		}
		if flagDebtYear != 0 {
			year = flagDebtYear
		}
		return addDebts(debt.Plan{
			Kind:          debt.Billing,
			TotalAmount:   amount,
			BillMonth:     month,
			BillYear:      year,
			BillingSource: cfg.Billing.Source,
			BillingPrefix: cfg.Billing.NamePrefix,
			BillingDueDay: cfg.Billing.DueDay,
		})
	},
}

func addDebts(p debt.Plan) error {
	return withSession(func(s *session) error {
		debts, err := s.ledger.AddDebts(p)
		if err != nil {
			return err
		}
		if len(debts) == 0 {
			fmt.Println("  Schedule is empty, nothing added.")
			return nil
		}
		for _, d := range debts {
			fmt.Printf("  Added %s %s due %s (%s)\n", d.Name, cli.FormatAmount(d.TotalAmount), cli.FormatDate(d.DueDate), shortID(d.ID))
		}
		return nil
	})
}

var debtPayCmd = &cobra.Command{
	Use:   "pay ID AMOUNT",
	Short: "Record a payment toward a debt",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		date, err := parseDate(flagPayDate)
		if err != nil {
			return err
		}
		return withDebt(args[0], func(s *session, id string) error {
			d, err := s.ledger.RecordPayment(id, amount, date)
			if err != nil {
				return err
			}
			fmt.Printf("  Paid %s toward %s, %s remaining\n", cli.FormatAmount(amount), d.Name, cli.FormatAmount(d.Remaining()))
			return nil
		})
	},
}

var debtWithdrawCmd = &cobra.Command{
	Use:   "withdraw ID AMOUNT REASON",
	Short: "Take money back out of what was paid toward a debt",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		return withDebt(args[0], func(s *session, id string) error {
			d, err := s.ledger.RecordWithdrawal(id, amount, args[2])
			if err != nil {
				return err
			}
			fmt.Printf("  Withdrew %s from %s, %s paid so far\n", cli.FormatAmount(amount), d.Name, cli.FormatAmount(d.AmountPaid))
			return nil
		})
	},
}

var debtEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a debt's name, source, amount, due date or target period",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return withDebt(args[0], func(s *session, id string) error {
			d, err := s.ledger.Debt(id)
			if err != nil {
				return err
			}
			e := ledger.DebtEdit{
				Name:        d.Name,
				Source:      d.Source,
				TotalAmount: d.TotalAmount,
				DueDate:     d.DueDate,
				TargetMonth: d.TargetMonth,
				TargetYear:  d.TargetYear,
			}
			flags := c.Flags()
			if flags.Changed("name") {
				e.Name = flagDebtName
			}
			if flags.Changed("source") {
				e.Source = flagDebtSource
			}
			if flags.Changed("amount") {
				if e.TotalAmount, err = parseAmount(flagDebtAmount); err != nil {
					return err
				}
			}
			if flags.Changed("due") {
				if e.DueDate, err = parseDate(flagDebtDue); err != nil {
					return err
				}
			}
			if flags.Changed("target-month") {
				e.TargetMonth = time.Month(flagDebtMonth)
			}
			if flags.Changed("target-year") {
				e.TargetYear = flagDebtYear
			}

			d, err = s.ledger.EditDebt(id, e)
			if err != nil {
				return err
			}
			fmt.Printf("  Updated %s: %s due %s\n", d.Name, cli.FormatAmount(d.TotalAmount), cli.FormatDate(d.DueDate))
			return nil
		})
	},
}

var debtDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a debt and its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withDebt(args[0], func(s *session, id string) error {
			if err := s.ledger.DeleteDebt(id); err != nil {
				return err
			}
			fmt.Println("  Deleted.")
			return nil
		})
	},
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active debts (--all includes completed ones)",
	RunE: func(_ *cobra.Command, _ []string) error {
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
			active, completed := debt.Partition(state.Debts)

			fmt.Println()
			if len(active) == 0 {
				fmt.Println("  No active debts.")
			} else {
				fmt.Print(cli.RenderTable(debtTable("Active debts", active, sum.DisposableIncome, now)))
				fmt.Printf("  Weekly need %s\n", cli.FormatDecimal(debt.WeeklyContribution(state.Debts, now)))
			}
			if flagDebtAll && len(completed) > 0 {
				fmt.Println()
				fmt.Print(cli.RenderTable(debtTable("Completed", completed, sum.DisposableIncome, now)))
			}
			return nil
		})
	},
}

var debtHistoryCmd = &cobra.Command{
	Use:   "history ID",
	Short: "Show a debt's payments and withdrawals, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withDebt(args[0], func(s *session, id string) error {
			d, err := s.ledger.Debt(id)
			if err != nil {
				return err
			}
			t := cli.Table{
				Title:   fmt.Sprintf("%s · %s of %s paid", d.Name, cli.FormatAmount(d.AmountPaid), cli.FormatAmount(d.TotalAmount)),
				Headers: []string{"Date", "Type", "Amount", "Reason"},
				Left:    2,
			}
			for _, tx := range debt.History(d) {
				amount := cli.FormatSigned(tx.Amount)
				if tx.Type == model.Withdrawal {
					amount = cli.FormatSigned(-tx.Amount)
				}
				t.Rows = append(t.Rows, []string{cli.FormatDate(tx.Date), string(tx.Type), amount, tx.Reason})
			}
			fmt.Println()
			if len(t.Rows) == 0 {
				fmt.Println("  No transactions yet.")
				return nil
			}
			fmt.Print(cli.RenderTable(t))
			return nil
		})
	},
}

// withDebt resolves an id prefix to a debt id inside an open session.
func withDebt(prefix string, fn func(s *session, id string) error) error {
	return withSession(func(s *session) error {
		var ids []string
		for _, d := range s.ledger.Snapshot().Debts {
			ids = append(ids, d.ID)
		}
		id, err := resolveID("debt", prefix, ids)
		if err != nil {
			return err
		}
		return fn(s, id)
	})
}

func init() {
	debtAddCmd.Flags().StringVar(&flagDebtSource, "source", "", "Who the debt is owed to")
	debtAddCmd.Flags().StringVar(&flagDebtDue, "due", "", "Due date (first due date for a series), YYYY-MM-DD")
	debtAddCmd.Flags().StringVar(&flagDebtUntil, "until", "", "Last due date of an installment series, YYYY-MM-DD")
	debtAddCmd.Flags().StringVar(&flagDebtEvery, "every", string(debt.Monthly), "Installment frequency: weekly or monthly")
	debtAddCmd.Flags().IntVar(&flagDebtMonth, "target-month", 0, "Budget month the debt counts toward, 1-12")
	debtAddCmd.Flags().IntVar(&flagDebtYear, "target-year", 0, "Budget year the debt counts toward")
	_ = debtAddCmd.MarkFlagRequired("due")

	debtBillCmd.Flags().IntVar(&flagDebtMonth, "bill-month", 0, "Statement month, 1-12 (default this month)")
	debtBillCmd.Flags().IntVar(&flagDebtYear, "bill-year", 0, "Statement year (default this year)")

	debtPayCmd.Flags().StringVar(&flagPayDate, "date", "", "Payment date, YYYY-MM-DD (default now)")

	debtEditCmd.Flags().StringVar(&flagDebtName, "name", "", "New name")
	debtEditCmd.Flags().StringVar(&flagDebtSource, "source", "", "New source")
	debtEditCmd.Flags().StringVar(&flagDebtAmount, "amount", "", "New total amount")
	debtEditCmd.Flags().StringVar(&flagDebtDue, "due", "", "New due date, YYYY-MM-DD")
	debtEditCmd.Flags().IntVar(&flagDebtMonth, "target-month", 0, "Budget month, 1-12 (0 clears)")
	debtEditCmd.Flags().IntVar(&flagDebtYear, "target-year", 0, "Budget year (0 clears)")

	debtListCmd.Flags().BoolVar(&flagDebtAll, "all", false, "Include completed debts")

	debtCmd.AddCommand(debtAddCmd, debtBillCmd, debtPayCmd, debtWithdrawCmd,
		debtEditCmd, debtDeleteCmd, debtListCmd, debtHistoryCmd)
	rootCmd.AddCommand(debtCmd)
}
