// Package debt expands debt plans into schedules and derives status,
// amortization and suggestions from debt state.
package debt

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tally/internal/model"
)

// Kind selects the schedule expansion strategy of a Plan.
type Kind string

const (
	Single  Kind = "single"
	Stepped Kind = "stepped"
	Billing Kind = "billing"
)

// Frequency is the step size of a stepped schedule.
type Frequency string

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Plan describes one or more debts to create. Which fields are read depends on Kind:
//   - Single: Name, Source, TotalAmount, DueDate, TargetMonth, TargetYear
//   - Stepped: Name, Source, TotalAmount, DueDate, EndDate, Frequency
//   - Billing: TotalAmount, BillMonth, BillYear and the Billing* overrides
type Plan struct {
	Kind        Kind
	Name        string
	Source      string
	TotalAmount int64
	DueDate     time.Time
	TargetMonth time.Month
	TargetYear  int

	EndDate   time.Time
	Frequency Frequency

	BillMonth     time.Month
	BillYear      int
	BillingSource string // defaults to DefaultBillingSource
	BillingPrefix string // defaults to DefaultBillingPrefix
	BillingDueDay int    // defaults to DefaultBillingDueDay
}

const (
	DefaultBillingSource = "Shopee"
	DefaultBillingPrefix = "SPayLater"
	DefaultBillingDueDay = 10
)

// Expander turns a plan into debt drafts. Drafts carry no ID.
type Expander interface {
	Expand(p Plan, now time.Time) []model.Debt
}

type singleExpander struct{}

func (singleExpander) Expand(p Plan, now time.Time) []model.Debt {
	return []model.Debt{draft(p.Name, p.Source, p.TotalAmount, p.DueDate, p.TargetMonth, p.TargetYear, now)}
}

type steppedExpander struct{}

// Expand emits one debt per step from DueDate through EndDate inclusive.
// Monthly steps use calendar normalization, so Jan 31 steps to Mar 3.
func (steppedExpander) Expand(p Plan, now time.Time) []model.Debt {
	var out []model.Debt
	cur := p.DueDate
	for count := 1; !cur.After(p.EndDate); count++ {
		var suffix string
		if p.Frequency == Monthly {
			suffix = fmt.Sprintf("(T%d/%d)", int(cur.Month()), cur.Year())
		} else {
			suffix = fmt.Sprintf("(Kỳ %d)", count)
		}
		out = append(out, draft(p.Name+" "+suffix, p.Source, p.TotalAmount, cur, cur.Month(), cur.Year(), now))
		if p.Frequency == Monthly {
			cur = cur.AddDate(0, 1, 0)
		} else {
			cur = cur.AddDate(0, 0, 7)
		}
	}
	return out
}

type billingExpander struct{}

// Expand emits a single statement debt due on the configured day of the month
// after the billing month, attributed to the billing month itself.
func (billingExpander) Expand(p Plan, now time.Time) []model.Debt {
	source, prefix, day := p.BillingSource, p.BillingPrefix, p.BillingDueDay
	if source == "" {
		source = DefaultBillingSource
	}
	if prefix == "" {
		prefix = DefaultBillingPrefix
	}
	if day == 0 {
		day = DefaultBillingDueDay
	}
	dueMonth, dueYear := p.BillMonth+1, p.BillYear
	if dueMonth > time.December {
		dueMonth, dueYear = time.January, dueYear+1
	}
	loc := now.Location()
	due := time.Date(dueYear, dueMonth, day, 0, 0, 0, 0, loc)
	name := fmt.Sprintf("%s T%d", prefix, int(p.BillMonth))
	return []model.Debt{draft(name, source, p.TotalAmount, due, p.BillMonth, p.BillYear, now)}
}

var expanders = map[Kind]Expander{
	Single:  singleExpander{},
	Stepped: steppedExpander{},
	Billing: billingExpander{},
}

// Expand validates p and runs the matching strategy. An EndDate before
// DueDate yields an empty schedule.
func Expand(p Plan, now time.Time) ([]model.Debt, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	exp, ok := expanders[p.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown plan kind %q", model.ErrInvalidArgument, p.Kind)
	}
	return exp.Expand(p, now), nil
}

func validate(p Plan) error {
	if p.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount must be positive", model.ErrInvalidArgument)
	}
	switch p.Kind {
	case Single, Stepped:
		if p.Name == "" {
			return fmt.Errorf("%w: debt name is required", model.ErrInvalidArgument)
		}
		if p.DueDate.IsZero() {
			return fmt.Errorf("%w: due date is required", model.ErrInvalidArgument)
		}
		if p.Kind == Stepped && p.Frequency != Weekly && p.Frequency != Monthly {
			return fmt.Errorf("%w: unknown frequency %q", model.ErrInvalidArgument, p.Frequency)
		}
	case Billing:
		if p.BillMonth < time.January || p.BillMonth > time.December || p.BillYear <= 0 {
			return fmt.Errorf("%w: billing period needs a month and year", model.ErrInvalidArgument)
		}
		if p.BillingDueDay < 0 || p.BillingDueDay > 28 {
			return fmt.Errorf("%w: billing due day %d out of range", model.ErrInvalidArgument, p.BillingDueDay)
		}
	}
	return nil
}

func draft(name, source string, total int64, due time.Time, month time.Month, year int, now time.Time) model.Debt {
	return model.Debt{
		Name:        name,
		Source:      source,
		TotalAmount: total,
		DueDate:     due,
		CreatedAt:   now,
		TargetMonth: month,
		TargetYear:  year,
	}
}
