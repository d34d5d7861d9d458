package domain

import "time"

// Wheel scores are bounded to 1..10.
const (
	WheelScoreMin = 1
	WheelScoreMax = 10
)

// WheelCategory is one life category of the wheel-of-life assessment.
// The category set is fixed at seeding; only the score changes.
type WheelCategory struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// WheelEntry is an immutable snapshot of all category scores at the moment
// a calibration was saved. History is append-only, newest first.
type WheelEntry struct {
	Date       string          `json:"date"`
	Categories []WheelCategory `json:"categories"`
}

// NewWheelEntry snapshots the given categories with the current timestamp.
func NewWheelEntry(now time.Time, categories []WheelCategory) WheelEntry {
	snapshot := make([]WheelCategory, len(categories))
	copy(snapshot, categories)
	return WheelEntry{
		Date:       now.UTC().Format(time.RFC3339),
		Categories: snapshot,
	}
}
