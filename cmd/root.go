// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/holiday"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"
	"github.com/theirongolddev/tally/internal/tui/theme"
	"github.com/theirongolddev/tally/internal/window"
)

var (
	flagDataDir string
	flagFilter  string
	flagYear    int
	flagMonth   int
	flagWeek    int
)

var (
	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:               "tally",
	Short:             "Personal budget ledger",
	Long:              "Track income, spending, debts and goals against weekly, monthly or yearly windows.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Ledger data directory (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagFilter, "filter", "f", "", "Time window: week, month, year or all")
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "Window year (ISO year for weeks)")
	rootCmd.PersistentFlags().IntVar(&flagMonth, "month", 0, "Window month, 1-12")
	rootCmd.PersistentFlags().IntVar(&flagWeek, "week", 0, "Window ISO week, 1-53")
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	theme.SetActive(cfg.Appearance.Theme, time.Now())
	logger = newLogger(cfg.Logging)
	return nil
}

func newLogger(lc config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(lc.Level))
	if err != nil || lc.Level == "" {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if lc.Format == "json" {
		l = zerolog.New(os.Stderr)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return l.Level(level).With().Timestamp().Logger()
}

// session is one open ledger: the document store plus the in-memory ledger
// whose committed changes are saved back automatically.
type session struct {
	db     *store.DB
	ledger *ledger.Store
}

// openSession loads the ledger from the store, refreshes the holiday calendar
// and wires autosave. Callers must Close it.
func openSession() (*session, error) {
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, err
	}

	saved, err := db.Load()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	initial := model.Ledger{FoodBudget: cfg.Budget.Food, MiscBudget: cfg.Budget.Misc}
	if saved != nil {
		initial = *saved
	}

	st := ledger.New(initial, ledger.WithLogger(logger))
	if err := st.MergeHolidays(holiday.Upcoming(time.Now())); err != nil {
		_ = db.Close()
		return nil, err
	}
	st.OnChange(store.Autosave(db, logger))

	return &session{db: db, ledger: st}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}

// withSession runs fn against an open session.
func withSession(fn func(s *session) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// activeFilter builds the time window from the flags, falling back to the
// configured default kind around now.
func activeFilter(now time.Time) (model.Filter, error) {
	kind := model.FilterKind(cfg.General.DefaultFilter)
	if flagFilter != "" {
		kind = model.FilterKind(strings.ToLower(flagFilter))
	}
	switch kind {
	case model.FilterAll, model.FilterWeek, model.FilterMonth, model.FilterYear:
	default:
		return model.Filter{}, fmt.Errorf("%w: unknown filter %q", model.ErrInvalidArgument, kind)
	}

	f := window.Current(kind, now)
	if flagYear != 0 {
		f.Year = flagYear
	}
	if flagMonth != 0 && kind == model.FilterMonth {
		f.Month = time.Month(flagMonth)
	}
	if flagWeek != 0 && kind == model.FilterWeek {
		f.Week = flagWeek
	}
	if err := window.Validate(f); err != nil {
		return model.Filter{}, err
	}
	return f, nil
}

// parseDate reads a YYYY-MM-DD date in local time; empty means now.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", model.ErrInvalidArgument, s)
	}
	return t, nil
}

// parseAmount reads a whole amount, accepting "." or "," grouping.
func parseAmount(s string) (int64, error) {
	clean := strings.NewReplacer(".", "", ",", "", "_", "", "đ", "").Replace(strings.TrimSpace(s))
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole amount", model.ErrInvalidArgument, s)
	}
	return n, nil
}

// resolveID matches an exact id or a unique id prefix.
func resolveID(kind, prefix string, ids []string) (string, error) {
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %s id %q is ambiguous", model.ErrInvalidArgument, kind, prefix)
			}
			match = id
		}
	}
	if match == "" || prefix == "" {
		return "", fmt.Errorf("%s %q: %w", kind, prefix, model.ErrNotFound)
	}
	return match, nil
}
