// Package theme defines the color themes shared by the CLI and TUI. The
// seasonal theme follows the calendar quarter.
package theme

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used for rendering.
type Theme struct {
	Name     string
	Greeting string // shown in the title bar

	Surface     lipgloss.Color // card and panel backgrounds
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	TextDim     lipgloss.Color // hints, separators
	TextMuted   lipgloss.Color // labels
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color

	Positive lipgloss.Color // surplus, income, paid
	Warning  lipgloss.Color // urgent debts, due soon
	Negative lipgloss.Color // deficit, overdue
	Info     lipgloss.Color
}

// Spring covers January through March, the Lunar New Year season.
var Spring = Theme{
	Name:        "spring",
	Greeting:    "Chúc mừng năm mới!",
	Surface:     lipgloss.Color("#2A1215"),
	Border:      lipgloss.Color("#5C2A2E"),
	BorderFocus: lipgloss.Color("#F2C14E"),
	TextDim:     lipgloss.Color("#7D5A5C"),
	TextMuted:   lipgloss.Color("#C9A9A6"),
	TextPrimary: lipgloss.Color("#FFF4E6"),
	Accent:      lipgloss.Color("#F2C14E"),
	Positive:    lipgloss.Color("#9BC53D"),
	Warning:     lipgloss.Color("#F29E4C"),
	Negative:    lipgloss.Color("#F25C54"),
	Info:        lipgloss.Color("#FDA4AF"),
}

// Summer covers April through June.
var Summer = Theme{
	Name:        "summer",
	Greeting:    "Chào hè rực rỡ!",
	Surface:     lipgloss.Color("#0C2B3A"),
	Border:      lipgloss.Color("#1D4E63"),
	BorderFocus: lipgloss.Color("#FACC15"),
	TextDim:     lipgloss.Color("#4B7A8C"),
	TextMuted:   lipgloss.Color("#9CC9D9"),
	TextPrimary: lipgloss.Color("#F0FBFF"),
	Accent:      lipgloss.Color("#FACC15"),
	Positive:    lipgloss.Color("#34D399"),
	Warning:     lipgloss.Color("#FB923C"),
	Negative:    lipgloss.Color("#F87171"),
	Info:        lipgloss.Color("#5EEAD4"),
}

// Autumn covers July through September.
var Autumn = Theme{
	Name:        "autumn",
	Greeting:    "Thu sang dịu dàng!",
	Surface:     lipgloss.Color("#2B1A0E"),
	Border:      lipgloss.Color("#5A3A1E"),
	BorderFocus: lipgloss.Color("#F97316"),
	TextDim:     lipgloss.Color("#7A5C45"),
	TextMuted:   lipgloss.Color("#D6B899"),
	TextPrimary: lipgloss.Color("#FFF7ED"),
	Accent:      lipgloss.Color("#F97316"),
	Positive:    lipgloss.Color("#A3B859"),
	Warning:     lipgloss.Color("#D97706"),
	Negative:    lipgloss.Color("#DC2626"),
	Info:        lipgloss.Color("#FDBA74"),
}

// Winter covers October through December.
var Winter = Theme{
	Name:        "winter",
	Greeting:    "Đông ấm áp!",
	Surface:     lipgloss.Color("#111827"),
	Border:      lipgloss.Color("#283352"),
	BorderFocus: lipgloss.Color("#FBBF24"),
	TextDim:     lipgloss.Color("#4B5578"),
	TextMuted:   lipgloss.Color("#A5B4FC"),
	TextPrimary: lipgloss.Color("#F1F5F9"),
	Accent:      lipgloss.Color("#FBBF24"),
	Positive:    lipgloss.Color("#6EE7B7"),
	Warning:     lipgloss.Color("#FDBA74"),
	Negative:    lipgloss.Color("#FDA4AF"),
	Info:        lipgloss.Color("#93C5FD"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	BorderFocus: lipgloss.Color("6"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Positive:    lipgloss.Color("2"),
	Warning:     lipgloss.Color("3"),
	Negative:    lipgloss.Color("1"),
	Info:        lipgloss.Color("4"),
}

// SeasonalName selects the theme matching the current quarter.
const SeasonalName = "seasonal"

// Active is the currently selected theme.
var Active = Seasonal(time.Now().Month())

// All available fixed themes.
var All = []Theme{Spring, Summer, Autumn, Winter, Terminal}

// Seasonal returns the theme for the quarter containing m.
func Seasonal(m time.Month) Theme {
	switch {
	case m <= time.March:
		return Spring
	case m <= time.June:
		return Summer
	case m <= time.September:
		return Autumn
	default:
		return Winter
	}
}

// ByName returns a theme by its name. "seasonal" and unknown names resolve
// to the season at now.
func ByName(name string, now time.Time) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Seasonal(now.Month())
}

// SetActive sets the active theme by name.
func SetActive(name string, now time.Time) {
	Active = ByName(name, now)
}
