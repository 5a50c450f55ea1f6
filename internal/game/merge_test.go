package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/tree"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/upgrade"
)

func TestMergeSnapshot_NilGivesFresh(t *testing.T) {
	e, _ := newTestEngine(2)

	merged := e.MergeSnapshot(nil)

	assert.Equal(t, 0.0, merged.LifetimeClicks)
	assert.Len(t, merged.Upgrades, len(upgrade.Seed()))
	assert.NotNil(t, merged.ActiveEvent)
}

func TestMergeSnapshot_SerializedRoundTripPreservesProgress(t *testing.T) {
	e, _ := newTestEngine(2)
	s := e.NewState()
	s.Clicks = 5_000
	s.LifetimeClicks = 12_000
	s.PrestigePoints = 3
	s.TotalPrestigePoints = 9
	s.TotalPrestiges = 2
	setOwned(t, s, "energy", 3)
	ownNode(t, s, tree.TierSkill, "sk_strong_fingers")
	s = e.Tick(s, 0) // unlock ten_k_lifetime et al before saving

	payload, err := json.Marshal(s)
	require.NoError(t, err)
	var raw GameState
	require.NoError(t, json.Unmarshal(payload, &raw))

	merged := e.MergeSnapshot(&raw)

	assert.Equal(t, 5_000.0, merged.Clicks)
	assert.Equal(t, 12_000.0, merged.LifetimeClicks)
	assert.Equal(t, int64(3), merged.PrestigePoints)
	assert.Equal(t, int64(9), merged.TotalPrestigePoints)
	assert.Equal(t, int64(2), merged.TotalPrestiges)
	assert.Equal(t, 3, findUpgrade(merged, "energy").Owned)
	assert.True(t, findNode(merged.SkillTree, "sk_strong_fingers").Owned)

	for _, a := range merged.Achievements {
		if a.ID == "ten_k_lifetime" {
			assert.True(t, a.Unlocked)
		}
	}
}

func TestMergeSnapshot_NewContentFreshOrphansDropped(t *testing.T) {
	e, _ := newTestEngine(2)
	raw := e.NewState()
	setOwned(t, raw, "energy", 7)
	raw.Upgrades = append(raw.Upgrades, upgrade.Upgrade{
		ID:       "retired_upgrade",
		BaseCost: 1,
		CostMult: 1,
		Owned:    9,
		Kind:     upgrade.KindClickPower,
	})

	merged := e.MergeSnapshot(raw)

	assert.Len(t, merged.Upgrades, len(upgrade.Seed()), "table ids come from current content only")
	assert.Nil(t, findUpgrade(merged, "retired_upgrade"))
	assert.Equal(t, 7, findUpgrade(merged, "energy").Owned)
}

func TestMergeSnapshot_ClaimedQuestStaysClaimed(t *testing.T) {
	e, _ := newTestEngine(2)
	raw := e.NewState()
	for i := range raw.Quests {
		if raw.Quests[i].ID == "getting_started" {
			raw.Quests[i].Completed = true
			raw.Quests[i].Claimed = true
		}
	}

	merged := e.MergeSnapshot(raw)

	for _, q := range merged.Quests {
		if q.ID == "getting_started" {
			assert.True(t, q.Claimed)
		}
	}
}

func TestOfflineEarnings(t *testing.T) {
	e, _ := newTestEngine(2)
	now := e.Clock.Now()

	s := e.NewState()
	s.CPS = 10
	s.Stats.LastOnlineTime = now.Add(-90 * time.Second)

	report := OfflineEarnings(s, now)
	assert.Equal(t, 90*time.Second, report.Elapsed)
	assert.Equal(t, 900.0, report.Earned)
}

func TestOfflineEarnings_Guards(t *testing.T) {
	e, _ := newTestEngine(2)
	now := e.Clock.Now()

	s := e.NewState()
	s.CPS = 10

	s.Stats.LastOnlineTime = time.Time{}
	assert.Equal(t, OfflineReport{}, OfflineEarnings(s, now))

	s.Stats.LastOnlineTime = now.Add(time.Hour)
	assert.Equal(t, OfflineReport{}, OfflineEarnings(s, now))
}
