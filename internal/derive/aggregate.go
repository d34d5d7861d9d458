package derive

import (
	"math"

	"github.com/chayilhub/chayil/internal/domain"
)

// HabitTotal counts completed day flags across all habits.
func HabitTotal(habits []domain.Habit) int {
	total := 0
	for _, h := range habits {
		total += h.CompletedDays()
	}
	return total
}

// TaskProgress returns the completed percentage of the given task view,
// rounded to the nearest integer. An empty view is 0, never a division
// error.
func TaskProgress(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// FilterTasks returns the tasks whose effective recurrence matches rec.
// An empty rec is the pass-through "all" filter. The underlying collection
// is never mutated.
func FilterTasks(tasks []domain.Task, rec domain.Recurrence) []domain.Task {
	if rec == "" {
		out := make([]domain.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	var out []domain.Task
	for _, t := range tasks {
		if t.EffectiveRecurrence() == rec {
			out = append(out, t)
		}
	}
	return out
}

// ActiveTasks returns up to limit incomplete tasks in collection order.
func ActiveTasks(tasks []domain.Task, limit int) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}

// UpcomingMeetings returns the first n meetings in collection order.
func UpcomingMeetings(meetings []domain.Meeting, n int) []domain.Meeting {
	if n > len(meetings) {
		n = len(meetings)
	}
	out := make([]domain.Meeting, n)
	copy(out, meetings[:n])
	return out
}

// FinanceTotals aggregates a transaction list into income, expense and
// balance.
type FinanceTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// FinanceSummary reduces a transaction list to its totals.
func FinanceSummary(transactions []domain.Transaction) FinanceTotals {
	var t FinanceTotals
	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionIncome:
			t.Income += tx.Amount
		case domain.TransactionExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// ConsolidatedSummary combines personal and business transactions into one
// set of totals.
func ConsolidatedSummary(personal, business []domain.Transaction) FinanceTotals {
	p := FinanceSummary(personal)
	b := FinanceSummary(business)
	return FinanceTotals{
		Income:  p.Income + b.Income,
		Expense: p.Expense + b.Expense,
		Balance: p.Balance + b.Balance,
	}
}
