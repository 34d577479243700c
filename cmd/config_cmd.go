package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/store"
)

var flagUIMode string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagUIMode, "ui-mode", "", "Set the layout preference: desktop or mobile")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if flagUIMode != "" {
		if err := db.SetUIMode(flagUIMode); err != nil {
			return err
		}
	}
	mode, err := db.UIMode()
	if err != nil {
		return err
	}
	savedAt, err := db.SavedAt()
	if err != nil {
		return err
	}
	backups, err := db.BackupCount()
	if err != nil {
		return err
	}

	status := "using defaults (no config file)"
	if config.Exists() {
		status = "loaded"
	}
	saved := "never"
	if !savedAt.IsZero() {
		saved = savedAt.Local().Format("02/01/2006 15:04")
	}

	fmt.Println()
	fmt.Print(cli.RenderKV([][2]string{
		{"Config file", config.ConfigPath() + " (" + status + ")"},
		{"Database", cfg.DBPath()},
		{"Last saved", saved},
		{"Backups", fmt.Sprintf("%d", backups)},
		{"UI mode", mode},
		{"Default window", cfg.General.DefaultFilter},
		{"Fuel", cli.FormatAmount(cfg.FixedCosts.Fuel)},
		{"Connectivity", cli.FormatAmount(cfg.FixedCosts.Connectivity)},
		{"Food budget", cli.FormatAmount(cfg.Budget.Food)},
		{"Misc budget", cli.FormatAmount(cfg.Budget.Misc)},
		{"Billing", fmt.Sprintf("%s %s, due day %d", cfg.Billing.Source, cfg.Billing.NamePrefix, cfg.Billing.DueDay)},
		{"Theme", cfg.Appearance.Theme},
		{"Logging", cfg.Logging.Level + " / " + cfg.Logging.Format},
	}))
	fmt.Println()
	return nil
}
