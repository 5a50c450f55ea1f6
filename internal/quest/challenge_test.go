package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextDailyBoundary(t *testing.T) {
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC) // Wednesday afternoon
	b := NextDailyBoundary(now)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), b)

	// exactly at midnight rolls to the next day, never to itself
	midnight := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), NextDailyBoundary(midnight))
}

func TestNextWeeklyBoundary(t *testing.T) {
	wednesday := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), NextWeeklyBoundary(wednesday))

	// a Monday resolves to the following Monday
	monday := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), NextWeeklyBoundary(monday))
}

func TestChallengeBoundary_Cadence(t *testing.T) {
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	daily := Challenge{Cadence: CadenceDaily}
	weekly := Challenge{Cadence: CadenceWeekly}

	assert.Equal(t, NextDailyBoundary(now), daily.Boundary(now))
	assert.Equal(t, NextWeeklyBoundary(now), weekly.Boundary(now))
}

func TestChallengeExpired(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	c := Challenge{}
	assert.False(t, c.Expired(now), "zero expiry means never started, not expired")

	c.ExpiresAt = now.Add(time.Minute)
	assert.False(t, c.Expired(now))

	c.ExpiresAt = now
	assert.True(t, c.Expired(now))
}

func TestChallengeRegenerate(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	c := Challenge{
		ID:        "daily_grind",
		Target:    50_000,
		Baseline:  100,
		Current:   50_000,
		Completed: true,
		Claimed:   true,
		ExpiresAt: now,
	}

	fresh := c.Regenerate(123_456, now.Add(24*time.Hour))

	assert.Equal(t, 123_456.0, fresh.Baseline)
	assert.Equal(t, 0.0, fresh.Current)
	assert.False(t, fresh.Completed)
	assert.False(t, fresh.Claimed)
	assert.Equal(t, now.Add(24*time.Hour), fresh.ExpiresAt)
	assert.Equal(t, 50_000.0, fresh.Target, "identity and target carry over")
}

func TestActiveIndex_StableWithinWindow(t *testing.T) {
	window := 48 * time.Hour
	start, end := WindowBounds(time.Unix(5_000_000, 0), window)

	first := ActiveIndex(start, window, 3)
	assert.Equal(t, first, ActiveIndex(end.Add(-time.Second), window, 3))
	assert.NotEqual(t, first, ActiveIndex(end, window, 3))
	assert.Equal(t, (first+1)%3, ActiveIndex(end, window, 3))
}

func TestWindowBounds(t *testing.T) {
	window := 48 * time.Hour
	now := time.Unix(5_000_000, 0)

	start, end := WindowBounds(now, window)
	assert.False(t, now.Before(start))
	assert.True(t, now.Before(end))
	assert.Equal(t, window, end.Sub(start))
}

func TestQuestIsComplete(t *testing.T) {
	q := Quest{Steps: []Step{
		{Metric: MetricManualClicks, Target: 10, Current: 10},
		{Metric: MetricUpgradesOwned, Target: 1, Current: 0},
	}}
	assert.False(t, q.IsComplete())

	q.Steps[1].Current = 1
	assert.True(t, q.IsComplete())

	empty := Quest{}
	assert.False(t, empty.IsComplete(), "a quest with no steps never completes")
}
