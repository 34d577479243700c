package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Move money into and out of the savings buffer",
}

var savingsDepositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit the active window's surplus into savings",
	RunE: func(_ *cobra.Command, _ []string) error {
		f, err := activeFilter(time.Now())
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			moved, err := s.ledger.DepositSurplus(f, cfg.Costs())
			if err != nil {
				return err
			}
			if moved == 0 {
				fmt.Println("  No surplus to deposit.")
				return nil
			}
			fmt.Printf("  Deposited %s, savings now %s\n", cli.FormatAmount(moved), cli.FormatAmount(s.ledger.Snapshot().SavingsBalance))
			return nil
		})
	},
}

var savingsWithdrawCmd = &cobra.Command{
	Use:   "withdraw AMOUNT",
	Short: "Withdraw from savings back into income",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			if _, err := s.ledger.WithdrawSavings(amount); err != nil {
				return err
			}
			fmt.Printf("  Withdrew %s, savings now %s\n", cli.FormatAmount(amount), cli.FormatAmount(s.ledger.Snapshot().SavingsBalance))
			return nil
		})
	},
}

var fuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "Track fuel fills",
}

var fuelToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Mark or unmark a fuel fill today",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withSession(func(s *session) error {
			filled, err := s.ledger.ToggleFuelToday()
			if err != nil {
				return err
			}
			if filled {
				fmt.Println("  Fuel filled today.")
			} else {
				fmt.Println("  Removed today's fuel fill.")
			}
			return nil
		})
	},
}

var fuelLogCmd = &cobra.Command{
	Use:   "log DATE",
	Short: "Record a past fuel fill (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		date, err := parseDate(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			l, err := s.ledger.LogFuel(date)
			if err != nil {
				return err
			}
			fmt.Printf("  Fuel fill on %s recorded.\n", cli.FormatDate(l.Date))
			return nil
		})
	},
}

var wifiCmd = &cobra.Command{
	Use:     "wifi",
	Aliases: []string{"connectivity"},
	Short:   "Track the weekly connectivity payment",
}

var wifiToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Mark connectivity paid now, or clear a payment from the last 7 days",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withSession(func(s *session) error {
			paid, err := s.ledger.ToggleConnectivity()
			if err != nil {
				return err
			}
			if paid {
				fmt.Println("  Connectivity paid.")
			} else {
				fmt.Println("  Connectivity payment cleared.")
			}
			return nil
		})
	},
}

var wifiLogCmd = &cobra.Command{
	Use:   "log DATE",
	Short: "Set the last connectivity payment date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		date, err := parseDate(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			if err := s.ledger.SetConnectivityPaid(date); err != nil {
				return err
			}
			fmt.Printf("  Connectivity paid on %s.\n", cli.FormatDate(date))
			return nil
		})
	},
}

func init() {
	savingsCmd.AddCommand(savingsDepositCmd, savingsWithdrawCmd)
	fuelCmd.AddCommand(fuelToggleCmd, fuelLogCmd)
	wifiCmd.AddCommand(wifiToggleCmd, wifiLogCmd)
	rootCmd.AddCommand(savingsCmd, fuelCmd, wifiCmd)
}
