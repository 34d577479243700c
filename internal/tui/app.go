// Package tui provides the interactive Bubble Tea dashboard for tally.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"
	"github.com/theirongolddev/tally/internal/window"
)

// LedgerChangedMsg carries the committed state after a mutation.
type LedgerChangedMsg struct {
	State model.Ledger
}

// App is the root Bubble Tea model.
type App struct {
	store *ledger.Store
	cfg   config.Config
	log   zerolog.Logger
	now   func() time.Time

	// Derived for the current filter
	state   model.Ledger
	filter  model.Filter
	summary model.BudgetSummary
	fixed   model.FixedCostStatus
	err     error

	// UI state
	width     int
	height    int
	activeTab int
	scroll    int
	showHelp  bool
	savedAt   time.Time

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues // shared with the form across model copies
	needSetup bool

	changes chan model.Ledger
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 140
	minContentHeight = 5
)

// Option configures an App.
type Option func(*App)

// WithClock overrides the dashboard clock.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// NewApp creates a dashboard over st. The filter starts at the configured
// default window around now.
func NewApp(st *ledger.Store, cfg config.Config, log zerolog.Logger, opts ...Option) App {
	a := App{
		store:     st,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
		needSetup: !config.Exists(),
		changes:   make(chan model.Ledger, 1),
	}
	for _, opt := range opts {
		opt(&a)
	}
	a.filter = window.Current(model.FilterKind(cfg.General.DefaultFilter), a.now())

	ch := a.changes
	st.OnChange(func(l model.Ledger) {
		// Drop a stale pending state in favour of the newest one.
		select {
		case <-ch:
		default:
		}
		ch <- l
	})

	a.state = st.Snapshot()
	a.recompute()

	if a.needSetup {
		a.setupVals = newSetupValues(cfg)
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		waitForChange(a.changes),
		tickCmd(),
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	now := a.now()
	s, err := pipeline.Summarize(a.state, a.filter, a.cfg.Costs(), now)
	if err != nil {
		a.err = err
		return
	}
	a.err = nil
	a.summary = s
	a.fixed = pipeline.FixedCosts(a.state, a.filter, now)
}

func (a *App) setFilter(f model.Filter) {
	if window.Validate(f) != nil {
		return
	}
	a.filter = f
	a.scroll = 0
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scroll = max(a.scroll-1, 0)
		case tea.MouseButtonWheelDown:
			a.scroll++
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := components.TabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
					a.scroll = 0
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.handleKey(key)

	case LedgerChangedMsg:
		a.state = msg.State
		a.savedAt = a.now()
		a.recompute()
		return a, waitForChange(a.changes)

	case tickMsg:
		// Day-based figures (days left, fuel today) move with the clock.
		a.recompute()
		return a, tickCmd()
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) handleKey(key string) (tea.Model, tea.Cmd) {
	now := a.now()

	switch key {
	case "q":
		return a, tea.Quit
	case "s":
		a.setupVals = newSetupValues(a.cfg)
		a.setupForm = newSetupForm(a.setupVals)
		if a.width > 0 {
			a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.setupForm.Init()

	case "w":
		a.setFilter(window.Current(model.FilterWeek, now))
	case "m":
		a.setFilter(window.Current(model.FilterMonth, now))
	case "y":
		a.setFilter(window.Current(model.FilterYear, now))
	case "a":
		a.setFilter(window.Current(model.FilterAll, now))
	case "left":
		a.setFilter(window.Shift(a.filter, -1))
	case "right":
		a.setFilter(window.Shift(a.filter, 1))

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.scroll = 0
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		a.scroll = 0

	case "j", "down":
		a.scroll++
	case "k", "up":
		a.scroll = max(a.scroll-1, 0)

	case "f":
		if _, err := a.store.ToggleFuelToday(); err != nil {
			a.log.Error().Err(err).Msg("toggle fuel")
		}
	case "c":
		if _, err := a.store.ToggleConnectivity(); err != nil {
			a.log.Error().Err(err).Msg("toggle connectivity")
		}

	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				a.scroll = 0
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			a.log.Error().Err(err).Msg("saving setup")
		}
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tally needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Info).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"o d g h", "Jump to tab"},
		{"tab", "Next tab"},
		{"w m y a", "Week / month / year / all time"},
		{"← →", "Previous / next window"},
		{"j k", "Scroll"},
		{"f", "Toggle today's fuel fill"},
		{"c", "Toggle connectivity payment"},
		{"s", "Settings"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "%s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	greeting := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(" " + t.Greeting)
	header := components.RenderTabBar(a.activeTab, w) + "\n" + greeting

	saved := ""
	if !a.savedAt.IsZero() {
		saved = "saved " + a.savedAt.Format("15:04")
	}
	statusBar := components.RenderStatusBar(w, window.Label(a.filter), saved)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch {
	case a.err != nil:
		content = lipgloss.NewStyle().Foreground(t.Negative).Render("  " + a.err.Error())
	case a.activeTab == 0:
		content = a.renderOverviewTab(cw)
	case a.activeTab == 1:
		content = a.renderDebtsTab(cw)
	case a.activeTab == 2:
		content = a.renderGoalsTab(cw)
	case a.activeTab == 3:
		content = a.renderHolidaysTab(cw)
	}

	content = padHeight(truncateHeight(scrollLines(content, a.scroll), contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// waitForChange blocks until the store publishes a new state.
func waitForChange(sub chan model.Ledger) tea.Cmd {
	return func() tea.Msg {
		return LedgerChangedMsg{State: <-sub}
	}
}

func scrollLines(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	offset = min(offset, max(len(lines)-1, 0))
	return strings.Join(lines[offset:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
