package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedState(t *testing.T) {
	state := NewSeedState("Ana")
	assert.Equal(t, "Ana", state.UserName)

	require.Len(t, state.Habits, 12)
	for i, h := range state.Habits {
		assert.Equal(t, CanonicalHabits[i], h.Name)
		assert.NotEmpty(t, h.ID)
		require.Len(t, h.Days, DaysPerWeek)
		assert.Equal(t, 0, h.CompletedDays())
	}

	require.Len(t, state.Wheel, 12)
	for i, cat := range state.Wheel {
		assert.Equal(t, CanonicalWheelCategories[i], cat.Name)
		assert.Equal(t, 5, cat.Score)
	}

	assert.Empty(t, state.DailyAffirmation, "affirmation is the lifecycle's job")
	assert.NotNil(t, state.Tasks)
	assert.NotNil(t, state.WheelHistory)
	assert.NotNil(t, state.FinancePersonal)
	assert.NotNil(t, state.FinanceBusiness)
}

func TestNewSeedState_IndependentDays(t *testing.T) {
	state := NewSeedState("Ana")
	state.Habits[0].Days[0] = true
	assert.False(t, state.Habits[1].Days[0], "habits must not share day slices")
}

func TestRandomAffirmation_FromPool(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := RandomAffirmation()
		assert.Contains(t, Affirmations, got)
	}
}

func TestDailyQuote_RotatesByDayOfMonth(t *testing.T) {
	day1 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	day5 := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Quotes[1%len(Quotes)], DailyQuote(day1))
	assert.Equal(t, Quotes[5%len(Quotes)], DailyQuote(day5))
	assert.Equal(t, DailyQuote(day1), DailyQuote(day5.AddDate(0, 0, -4)), "same day, same quote")
}
