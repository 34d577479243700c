package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/theme"
)

// setupValues holds the form fields of the setup wizard. Amounts are edited
// as text and parsed on save.
type setupValues struct {
	fuel         string
	connectivity string
	foodBudget   string
	miscBudget   string
	filter       string
	theme        string
}

func newSetupValues(cfg config.Config) *setupValues {
	return &setupValues{
		fuel:         strconv.FormatInt(cfg.FixedCosts.Fuel, 10),
		connectivity: strconv.FormatInt(cfg.FixedCosts.Connectivity, 10),
		foodBudget:   strconv.FormatInt(cfg.Budget.Food, 10),
		miscBudget:   strconv.FormatInt(cfg.Budget.Misc, 10),
		filter:       cfg.General.DefaultFilter,
		theme:        cfg.Appearance.Theme,
	}
}

func validAmount(s string) error {
	if _, err := parseAmount(s); err != nil {
		return err
	}
	return nil
}

// parseAmount accepts whole amounts with optional "." or "," grouping.
func parseAmount(s string) (int64, error) {
	clean := strings.NewReplacer(".", "", ",", "", " ", "", "đ", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return 0, errors.New("enter an amount")
	}
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q is not a whole non-negative amount", s)
	}
	return n, nil
}

func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := []huh.Option[string]{huh.NewOption("Seasonal (follows the calendar)", theme.SeasonalName)}
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tally").
				Description("A few numbers the budget needs. Press Enter to continue."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Fuel cost per week").
				Value(&v.fuel).
				Validate(validAmount),
			huh.NewInput().
				Title("Connectivity cost per week").
				Value(&v.connectivity).
				Validate(validAmount),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Weekly food budget").
				Value(&v.foodBudget).
				Validate(validAmount),
			huh.NewInput().
				Title("Weekly misc budget").
				Value(&v.miscBudget).
				Validate(validAmount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default window").
				Options(
					huh.NewOption("This week", string(model.FilterWeek)),
					huh.NewOption("This month", string(model.FilterMonth)),
					huh.NewOption("This year", string(model.FilterYear)),
					huh.NewOption("All time", string(model.FilterAll)),
				).
				Value(&v.filter),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
		),
	).WithTheme(huh.ThemeDracula())
}

// apply copies the form values onto cfg.
func (v *setupValues) apply(cfg *config.Config) error {
	var err error
	if cfg.FixedCosts.Fuel, err = parseAmount(v.fuel); err != nil {
		return fmt.Errorf("fuel: %w", err)
	}
	if cfg.FixedCosts.Connectivity, err = parseAmount(v.connectivity); err != nil {
		return fmt.Errorf("connectivity: %w", err)
	}
	if cfg.Budget.Food, err = parseAmount(v.foodBudget); err != nil {
		return fmt.Errorf("food budget: %w", err)
	}
	if cfg.Budget.Misc, err = parseAmount(v.miscBudget); err != nil {
		return fmt.Errorf("misc budget: %w", err)
	}
	cfg.General.DefaultFilter = v.filter
	cfg.Appearance.Theme = v.theme
	return nil
}

func (a *App) saveSetupConfig() error {
	if err := a.setupVals.apply(&a.cfg); err != nil {
		return err
	}
	theme.SetActive(a.cfg.Appearance.Theme, a.now())

	if err := a.store.SetFoodBudget(a.cfg.Budget.Food); err != nil {
		return err
	}
	if err := a.store.SetMiscBudget(a.cfg.Budget.Misc); err != nil {
		return err
	}
	return config.Save(a.cfg)
}

// RunSetup runs the setup wizard outside the dashboard and applies the
// answers to cfg. It returns huh.ErrUserAborted if the user quits.
func RunSetup(cfg *config.Config) error {
	v := newSetupValues(*cfg)
	if err := newSetupForm(v).Run(); err != nil {
		return err
	}
	return v.apply(cfg)
}
