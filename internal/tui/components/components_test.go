package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{10, 3, []int{4, 3, 3}},
		{9, 3, []int{3, 3, 3}},
		{5, 0, nil},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	short := ContentCard("Short", "Content", 22)
	tall := ContentCard("Tall", "1\n2\n3\n4\n5", 22)

	joined := CardRow([]string{tall, short})
	if got, want := lipgloss.Height(joined), lipgloss.Height(tall); got != want {
		t.Errorf("CardRow height = %d, want %d", got, want)
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "2.000.000đ", Tone: Good},
		{Label: "Spent", Value: "500.000đ"},
		{Label: "Status", Value: "-10.000đ", Tone: Bad},
	}, 90)
	if got := lipgloss.Width(row); got != 90 {
		t.Errorf("MetricCardRow width = %d, want 90", got)
	}
}

func TestTabAtX(t *testing.T) {
	// " Overview   Debts   Goals   Holidays"
	tests := []struct {
		x    int
		want int
	}{
		{0, -1},
		{1, 0},
		{8, 0},
		{9, -1},
		{12, 1},
		{20, 2},
		{28, 3},
		{40, -1},
	}
	for _, tt := range tests {
		if got := TabAtX(tt.x); got != tt.want {
			t.Errorf("TabAtX(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('g'); got != 2 {
		t.Errorf("TabIdxByKey('g') = %d, want 2", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestBarChartScales(t *testing.T) {
	out := BarChart([]Bar{
		{Label: "Mon", Value: 100, Text: "100"},
		{Label: "Tue", Value: 50, Text: "50"},
	}, lipgloss.Color("#fff"), 30)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("BarChart() lines = %d, want 2", len(lines))
	}
	full := strings.Count(lines[0], "█")
	half := strings.Count(lines[1], "█")
	if full != 2*half {
		t.Errorf("bar lengths = %d and %d, want 2:1", full, half)
	}
}
