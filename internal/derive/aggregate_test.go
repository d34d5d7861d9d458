package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayilhub/chayil/internal/domain"
)

func TestTaskProgress(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"empty", 0, 0, 0},
		{"none done", 0, 3, 0},
		{"half", 2, 4, 50},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"all done", 5, 5, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tasks := make([]domain.Task, tc.total)
			for i := range tasks {
				tasks[i] = domain.Task{ID: "t", Text: "x", Completed: i < tc.completed}
			}
			assert.Equal(t, tc.want, TaskProgress(tasks))
		})
	}
}

func TestFilterTasks_All(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Text: "a", Recurrence: domain.RecurrenceWeekly},
		{ID: "b", Text: "b"},
	}
	got := FilterTasks(tasks, "")
	assert.Equal(t, tasks, got)

	got[0].Text = "mutated"
	assert.Equal(t, "a", tasks[0].Text, "filter must not alias the source")
}

func TestFilterTasks_ByRecurrence(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Text: "a", Recurrence: domain.RecurrenceDaily},
		{ID: "b", Text: "b", Recurrence: domain.RecurrenceWeekly},
		{ID: "c", Text: "c"}, // empty recurrence is effectively daily
	}
	daily := FilterTasks(tasks, domain.RecurrenceDaily)
	require.Len(t, daily, 2)
	assert.Equal(t, "a", daily[0].ID)
	assert.Equal(t, "c", daily[1].ID)

	weekly := FilterTasks(tasks, domain.RecurrenceWeekly)
	require.Len(t, weekly, 1)
	assert.Equal(t, "b", weekly[0].ID)

	assert.Empty(t, FilterTasks(tasks, domain.RecurrenceAnnual))
}

func TestHabitTotal(t *testing.T) {
	habits := []domain.Habit{
		{ID: "h1", Name: "Oração", Days: []bool{true, false, true, false, false, false, false}},
		{ID: "h2", Name: "Exercício", Days: []bool{true, true, true, false, false, false, false}},
	}
	assert.Equal(t, 5, HabitTotal(habits))
	assert.Equal(t, 0, HabitTotal(nil))
}

func TestActiveTasks(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Text: "a", Completed: true},
		{ID: "b", Text: "b"},
		{ID: "c", Text: "c"},
		{ID: "d", Text: "d"},
	}
	got := ActiveTasks(tasks, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	assert.Len(t, ActiveTasks(tasks, 10), 3)
	assert.Empty(t, ActiveTasks(nil, 5))
}

func TestUpcomingMeetings(t *testing.T) {
	meetings := []domain.Meeting{
		{ID: "m1", Title: "Mentoria"},
		{ID: "m2", Title: "Cliente"},
		{ID: "m3", Title: "Equipe"},
	}
	got := UpcomingMeetings(meetings, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)

	assert.Len(t, UpcomingMeetings(meetings, 10), 3)
}

func TestFinanceSummary(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "1", Amount: 1500, Type: domain.TransactionIncome},
		{ID: "2", Amount: 300, Type: domain.TransactionExpense},
		{ID: "3", Amount: 200, Type: domain.TransactionExpense},
	}
	got := FinanceSummary(txs)
	assert.Equal(t, 1500.0, got.Income)
	assert.Equal(t, 500.0, got.Expense)
	assert.Equal(t, 1000.0, got.Balance)
}

func TestFinanceSummary_Empty(t *testing.T) {
	got := FinanceSummary(nil)
	assert.Equal(t, FinanceTotals{}, got)
}

func TestConsolidatedSummary(t *testing.T) {
	personal := []domain.Transaction{
		{ID: "1", Amount: 100, Type: domain.TransactionIncome},
	}
	business := []domain.Transaction{
		{ID: "2", Amount: 2000, Type: domain.TransactionIncome},
		{ID: "3", Amount: 500, Type: domain.TransactionExpense},
	}
	got := ConsolidatedSummary(personal, business)
	assert.Equal(t, 2100.0, got.Income)
	assert.Equal(t, 500.0, got.Expense)
	assert.Equal(t, 1600.0, got.Balance)
}
