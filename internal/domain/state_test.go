package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_DeepCopiesCollections(t *testing.T) {
	state := NewSeedState("Ana")
	state.Tasks = []Task{{ID: "t1", Text: "original"}}
	state.WheelHistory = []WheelEntry{
		NewWheelEntry(time.Now(), state.Wheel),
	}
	state.Clients = []Client{{ID: "c1", Name: "Cliente", History: []StatusLog{{Reason: "fechou contrato"}}}}

	clone := state.Clone()

	clone.Tasks[0].Text = "mudado"
	clone.Habits[0].Days[0] = true
	clone.Wheel[0].Score = 9
	clone.WheelHistory[0].Categories[0].Score = 1
	clone.Clients[0].History[0].Reason = "mutated"

	assert.Equal(t, "original", state.Tasks[0].Text)
	assert.False(t, state.Habits[0].Days[0])
	assert.Equal(t, 5, state.Wheel[0].Score)
	assert.Equal(t, 5, state.WheelHistory[0].Categories[0].Score)
	assert.Equal(t, "fechou contrato", state.Clients[0].History[0].Reason)
}

func TestNewWheelEntry_SnapshotsCategories(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	categories := []WheelCategory{{Name: "FAMÍLIA", Score: 7}}

	entry := NewWheelEntry(now, categories)
	assert.Equal(t, "2026-09-01T18:30:00Z", entry.Date, "dates are stored in UTC")
	require.Len(t, entry.Categories, 1)

	categories[0].Score = 2
	assert.Equal(t, 7, entry.Categories[0].Score, "snapshot must not alias the live wheel")
}
