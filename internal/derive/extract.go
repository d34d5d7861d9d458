// Package derive holds the pure derivation functions of the planner core:
// everything computed from the aggregate on demand and never cached in it.
package derive

import (
	"strings"
	"unicode/utf8"

	"github.com/chayilhub/chayil/internal/domain"
)

// taskMarkers are the bullet prefixes recognized by the extraction rule.
const taskMarkers = "-•*"

// ExtractCandidates splits the daily planning text into candidate task
// texts: bullet lines with the marker and surrounding whitespace stripped,
// empty candidates dropped, source order preserved.
func ExtractCandidates(diario string) []string {
	var candidates []string
	for _, line := range strings.Split(diario, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		marker, width := utf8.DecodeRuneInString(line)
		if !strings.ContainsRune(taskMarkers, marker) {
			continue
		}
		text := strings.TrimSpace(line[width:])
		if text != "" {
			candidates = append(candidates, text)
		}
	}
	return candidates
}

// SyncTasks returns the tasks to append so that every bullet line of the
// daily planning text has a matching task. Matching is exact text,
// case-sensitive, independent of completion state and marker choice.
// Existing tasks are never removed or mutated; running twice on unchanged
// text yields nothing new.
func SyncTasks(tasks []domain.Task, diario string) []domain.Task {
	existing := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		existing[t.Text] = true
	}

	var added []domain.Task
	for _, text := range ExtractCandidates(diario) {
		if existing[text] {
			continue
		}
		existing[text] = true
		added = append(added, domain.NewSyncedTask(text))
	}
	return added
}
