package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/tally/internal/model"
)

// Config holds all tally configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	FixedCosts FixedCostsConfig `toml:"fixed_costs"`
	Budget     BudgetConfig     `toml:"budget"`
	Billing    BillingConfig    `toml:"billing"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir       string `toml:"data_dir,omitempty"`
	DefaultFilter string `toml:"default_filter"`
}

// FixedCostsConfig holds the flat recurring fees.
type FixedCostsConfig struct {
	Fuel         int64 `toml:"fuel"`
	Connectivity int64 `toml:"connectivity"`
}

// BudgetConfig holds the budgets a new ledger starts with.
type BudgetConfig struct {
	Food int64 `toml:"food"`
	Misc int64 `toml:"misc"`
}

// BillingConfig describes the revolving statement used by `debt bill`.
type BillingConfig struct {
	Source     string `toml:"source"`
	NamePrefix string `toml:"name_prefix"`
	DueDay     int    `toml:"due_day"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig holds log level and output format.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // human or json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultFilter: string(model.FilterWeek),
		},
		FixedCosts: FixedCostsConfig{
			Fuel:         70_000,
			Connectivity: 30_000,
		},
		Budget: BudgetConfig{
			Food: 315_000,
		},
		Billing: BillingConfig{
			Source:     "Shopee",
			NamePrefix: "SPayLater",
			DueDay:     10,
		},
		Appearance: AppearanceConfig{
			Theme: "seasonal",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "human",
		},
	}
}

// Costs returns the configured fixed costs.
func (c Config) Costs() model.FixedCosts {
	return model.FixedCosts{Fuel: c.FixedCosts.Fuel, Connectivity: c.FixedCosts.Connectivity}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tally")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tally")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the ledger database.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tally")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "tally")
}

// DBPath returns the ledger database path.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir(), "tally.db")
}

// Load reads .env, the config file and TALLY_* overrides, returning defaults
// for anything unset. The result is validated.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path, applies environment overrides and validates.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from ConfigPath or the caller
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TALLY_DATA_DIR"); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv("TALLY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TALLY_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TALLY_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []string

	switch model.FilterKind(c.General.DefaultFilter) {
	case model.FilterAll, model.FilterWeek, model.FilterMonth, model.FilterYear:
	default:
		errs = append(errs, fmt.Sprintf("invalid default filter '%s': must be all, week, month or year", c.General.DefaultFilter))
	}
	if c.FixedCosts.Fuel < 0 || c.FixedCosts.Connectivity < 0 {
		errs = append(errs, "fixed costs cannot be negative")
	}
	if c.Budget.Food < 0 || c.Budget.Misc < 0 {
		errs = append(errs, "budgets cannot be negative")
	}
	if c.Billing.DueDay < 1 || c.Billing.DueDay > 28 {
		errs = append(errs, fmt.Sprintf("invalid billing due day %d: must be between 1 and 28", c.Billing.DueDay))
	}
	if strings.TrimSpace(c.Billing.NamePrefix) == "" {
		errs = append(errs, "billing name prefix cannot be empty")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.Logging.Level))
	}
	if c.Logging.Format != "human" && c.Logging.Format != "json" {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be human or json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes cfg to path with owner-only permissions.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path comes from ConfigPath or the caller
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
