package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0đ"},
		{999, "999đ"},
		{70000, "70.000đ"},
		{1000000, "1.000.000đ"},
		{-250000, "-250.000đ"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(1500); got != "+1.500đ" {
		t.Errorf("FormatSigned(1500) = %q", got)
	}
	if got := FormatSigned(-1500); got != "-1.500đ" {
		t.Errorf("FormatSigned(-1500) = %q", got)
	}
}

func TestFormatDecimal(t *testing.T) {
	// 1,000,000 over 3 weeks
	d := decimal.NewFromInt(1000000).Div(decimal.NewFromInt(3))
	if got := FormatDecimal(d); got != "333.333đ" {
		t.Errorf("FormatDecimal() = %q, want %q", got, "333.333đ")
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{500, "500"},
		{70000, "70k"},
		{1500000, "1.5tr"},
		{2000000000, "2.0tỷ"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(0, true); got != "∞" {
		t.Errorf("FormatDays(unbounded) = %q", got)
	}
	if got := FormatDays(21, false); got != "21" {
		t.Errorf("FormatDays(21) = %q", got)
	}
}

func TestFormatDaysLeft(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{-2, "2d overdue"},
		{0, "due today"},
		{1, "1 day left"},
		{14, "14 days left"},
	}
	for _, tt := range tests {
		if got := FormatDaysLeft(tt.in); got != tt.want {
			t.Errorf("FormatDaysLeft(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "05/03/2025" {
		t.Errorf("FormatDate() = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero) = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]int64{0, 50, 100})
	if got != "▁▄█" {
		t.Errorf("RenderSparkline() = %q, want %q", got, "▁▄█")
	}
	if RenderSparkline(nil) != "" {
		t.Error("RenderSparkline(nil) should be empty")
	}
}

func TestRenderTableAlignsMultibyteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Name", "Amount"},
		Rows: [][]string{
			{"Tiền nhà", FormatAmount(1000000)},
			SeparatorRow,
			{"Xăng", FormatAmount(70000)},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("RenderTable() produced %d lines, want 7", len(lines))
	}
	if !strings.Contains(out, "Tiền nhà") || !strings.Contains(out, "1.000.000đ") {
		t.Errorf("RenderTable() missing cell content:\n%s", out)
	}
}
