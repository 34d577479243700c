// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatNumber groups thousands the Vietnamese way.
// e.g., 1234567 -> "1.234.567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatAmount formats a whole-unit money amount.
// e.g., 1000000 -> "1.000.000đ"
func FormatAmount(n int64) string {
	return FormatNumber(n) + "đ"
}

// FormatDecimal rounds a fractional amount to whole units before formatting.
func FormatDecimal(d decimal.Decimal) string {
	return FormatAmount(d.Round(0).IntPart())
}

// FormatSigned formats an amount with an explicit sign.
func FormatSigned(n int64) string {
	if n >= 0 {
		return "+" + FormatAmount(n)
	}
	return "-" + FormatAmount(-n)
}

// FormatCompact formats an amount with k/tr/tỷ (thousand, million, billion) suffixes.
// e.g., 1500000 -> "1.5tr"
func FormatCompact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1ftỷ", float64(n)/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1ftr", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.0fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatDays renders the days-off capacity, "∞" when nothing is spent.
func FormatDays(days int64, unbounded bool) string {
	if unbounded {
		return "∞"
	}
	return FormatNumber(days)
}

// FormatDaysLeft describes a countdown to a due date.
func FormatDaysLeft(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// FormatDate renders a calendar date as DD/MM/YYYY. Zero dates print as "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
