package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEverySeededAchievementHasAPredicate(t *testing.T) {
	preds := Predicates()
	for _, a := range Seed() {
		_, ok := preds[a.ID]
		assert.True(t, ok, "achievement %s can never unlock", a.ID)
	}
}

func TestSeedIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Seed() {
		assert.False(t, seen[a.ID], "duplicate achievement id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestPredicateThresholds(t *testing.T) {
	preds := Predicates()

	assert.False(t, preds["hundred_clicks"](Snapshot{ManualClicks: 99}))
	assert.True(t, preds["hundred_clicks"](Snapshot{ManualClicks: 100}))

	assert.False(t, preds["million_lifetime"](Snapshot{LifetimeClicks: 999_999}))
	assert.True(t, preds["million_lifetime"](Snapshot{LifetimeClicks: 1_000_000}))

	assert.True(t, preds["marathon"](Snapshot{PlayTimeSeconds: 3600}))
	assert.False(t, preds["first_eternity"](Snapshot{}))
}
