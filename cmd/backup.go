package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/snapshot"
)

var flagImportYes bool

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write the whole ledger as a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			data, err := snapshot.Encode(s.ledger.Snapshot())
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			fmt.Printf("  Exported to %s\n", args[0])
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the ledger with a JSON backup",
	Long:  "Replace the whole ledger with a JSON backup. The current ledger is kept in\nthe database's backup history first.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading backup: %w", err)
		}
		l, err := snapshot.Decode(data)
		if err != nil {
			return err
		}

		if !flagImportYes {
			confirmed := false
			err := huh.NewConfirm().
				Title("Replace all ledger data?").
				Description(fmt.Sprintf("%d debts, %d income entries and %s savings will be loaded from %s.",
					len(l.Debts), len(l.IncomeLogs), cli.FormatAmount(l.SavingsBalance), args[0])).
				Affirmative("Replace").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
			if !confirmed {
				fmt.Println("  Import cancelled.")
				return nil
			}
		}

		return withSession(func(s *session) error {
			if err := s.db.Backup(); err != nil {
				return err
			}
			s.ledger.Replace(l)
			fmt.Printf("  Imported %s\n", args[0])
			return nil
		})
	},
}

func init() {
	importCmd.Flags().BoolVarP(&flagImportYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(exportCmd, importCmd)
}
