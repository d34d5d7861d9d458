package domain

// DaysPerWeek is the fixed length of a habit's day sequence.
// Index 0 is Monday.
const DaysPerWeek = 7

// Habit is one entry of the fixed weekly habit list. Habits are seeded once
// and never created or deleted by the user; only day flags toggle.
type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Days []bool `json:"days"`
}

// CompletedDays counts the true day flags of this habit.
func (h Habit) CompletedDays() int {
	n := 0
	for _, d := range h.Days {
		if d {
			n++
		}
	}
	return n
}
