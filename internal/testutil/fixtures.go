package testutil

import (
	"github.com/chayilhub/chayil/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithRecurrence(r domain.Recurrence) TaskOption {
	return func(t *domain.Task) {
		t.Recurrence = r
	}
}

func NewTestTask(text string, opts ...TaskOption) domain.Task {
	task := domain.Task{
		ID:   uuid.New().String(),
		Text: text,
	}
	for _, opt := range opts {
		opt(&task)
	}
	return task
}

// NewTestState builds a seeded aggregate for the given user name with the
// provided tasks appended.
func NewTestState(userName string, tasks ...domain.Task) domain.PlannerState {
	state := domain.NewSeedState(userName)
	state.Tasks = append(state.Tasks, tasks...)
	return state
}

// NewTestTransaction builds a transaction with a fresh ID.
func NewTestTransaction(description string, amount float64, txType domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      amount,
		Type:        txType,
		Date:        "2026-09-01",
		Category:    "Geral",
	}
}
