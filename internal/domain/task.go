package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do entry. Recurrence is optional: an absent recurrence
// is displayed and filtered as daily, but never stored as such.
type Task struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Completed  bool       `json:"completed"`
	Recurrence Recurrence `json:"recurrence,omitempty"`
}

// EffectiveRecurrence returns the recurrence used for display and filtering.
func (t Task) EffectiveRecurrence() Recurrence {
	if t.Recurrence == "" {
		return RecurrenceDaily
	}
	return t.Recurrence
}

// NewTask creates a user-authored task with a fresh unique ID.
func NewTask(text string, recurrence Recurrence) Task {
	return Task{
		ID:         uuid.New().String(),
		Text:       text,
		Recurrence: recurrence,
	}
}

// NewSyncedTask creates a task extracted from the daily planning text.
// The ID contract is uniqueness at creation time, not reproducibility.
func NewSyncedTask(text string) Task {
	return Task{
		ID:   fmt.Sprintf("sync-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8]),
		Text: text,
	}
}
