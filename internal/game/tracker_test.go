package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
)

func findChallenge(t *testing.T, s *GameState, id string) int {
	t.Helper()
	for i := range s.Challenges {
		if s.Challenges[i].ID == id {
			return i
		}
	}
	t.Fatalf("challenge %s missing", id)
	return -1
}

func TestAchievementBoosts_UnlockOnceApplyOnce(t *testing.T) {
	e, rec := newTestEngine(2)
	s := e.NewState()
	s.Stats.ManualClicks = 100

	s = e.Tick(s, 0)

	// first_click (no boost) and hundred_clicks (+1%)
	assert.Equal(t, 1.01, s.ClickPower)
	assert.Equal(t, 2, countEvents(t, rec, telemetry.EventAchievementUnlocked))

	// another pass must not compound the boost or re-fire telemetry
	s = e.Tick(s, 0)
	assert.Equal(t, 1.01, s.ClickPower)
	assert.Equal(t, 2, countEvents(t, rec, telemetry.EventAchievementUnlocked))
}

func TestChallenge_WindowOpensOnFirstTrack(t *testing.T) {
	e, _ := newTestEngine(2)
	s := e.NewState()

	i := findChallenge(t, s, "daily_tapper")
	c := s.Challenges[i]
	assert.True(t, c.ExpiresAt.After(clockAt(2)))
	assert.Equal(t, 0.0, c.Current)
	assert.False(t, c.Completed)
}

func TestChallenge_CompletesRelativeToBaseline(t *testing.T) {
	e, _ := newTestEngine(2)
	s := e.NewState()
	s.Stats.ManualClicks = 600

	s = e.Tick(s, 0)

	c := s.Challenges[findChallenge(t, s, "daily_tapper")]
	assert.Equal(t, 600.0, c.Current)
	assert.True(t, c.Completed)
}

func TestChallenge_RegeneratesAfterExpiry(t *testing.T) {
	e, _ := newTestEngine(2)
	clock := e.Clock.(*FakeClock)

	s := e.NewState()
	s.Stats.ManualClicks = 600
	s = e.Tick(s, 0)
	s = e.ClaimChallenge(s, "daily_tapper")

	before := s.Challenges[findChallenge(t, s, "daily_tapper")]
	require.True(t, before.Claimed)

	clock.Advance(48 * time.Hour)
	s = e.Tick(s, 0)

	after := s.Challenges[findChallenge(t, s, "daily_tapper")]
	assert.False(t, after.Claimed)
	assert.False(t, after.Completed)
	assert.Equal(t, 0.0, after.Current, "baseline resets progress to zero")
	assert.Equal(t, 600.0, after.Baseline)
	assert.True(t, after.ExpiresAt.After(before.ExpiresAt))

	// progress in the new window is window-relative
	s.Stats.ManualClicks = 700
	s = e.Tick(s, 0)
	assert.Equal(t, 100.0, s.Challenges[findChallenge(t, s, "daily_tapper")].Current)
}

func TestChallengeClaim_Reward(t *testing.T) {
	e, rec := newTestEngine(2)
	s := e.NewState()
	s.Stats.ManualClicks = 600
	s = e.Tick(s, 0)

	clicksBefore := s.Clicks
	s = e.ClaimChallenge(s, "daily_tapper")

	assert.Equal(t, clicksBefore+5_000, s.Clicks)
	assert.Equal(t, 1, countEvents(t, rec, telemetry.EventChallengeClaimed))

	assert.Same(t, s, e.ClaimChallenge(s, "daily_tapper"))
	assert.Equal(t, 1, countEvents(t, rec, telemetry.EventChallengeClaimed))
}

func TestEventRotation_Deterministic(t *testing.T) {
	want := []string{"click_frenzy", "idle_storm", "prestige_surge"}
	for idx, id := range want {
		e, _ := newTestEngine(idx)
		s := e.NewState()
		require.NotNil(t, s.ActiveEvent)
		assert.Equal(t, id, s.ActiveEvent.ID)
	}

	// two sessions at the same wall-clock time agree
	a, _ := newTestEngine(1)
	b, _ := newTestEngine(1)
	assert.Equal(t, a.NewState().ActiveEvent.ID, b.NewState().ActiveEvent.ID)
}

func TestEventRotation_WindowChangeInstallsNextEvent(t *testing.T) {
	e, _ := newTestEngine(0)
	clock := e.Clock.(*FakeClock)

	s := e.NewState()
	require.Equal(t, "click_frenzy", s.ActiveEvent.ID)

	clock.Advance(48 * time.Hour)
	s = e.Tick(s, 0)

	assert.Equal(t, "idle_storm", s.ActiveEvent.ID)
	assert.False(t, s.ActiveEvent.Claimed)
}

func TestEventMultipliers(t *testing.T) {
	// click_frenzy doubles click power
	e0, _ := newTestEngine(0)
	assert.Equal(t, 2.0, e0.NewState().ClickPower)

	// idle_storm triples passive rate
	e1, _ := newTestEngine(1)
	s := e1.NewState()
	s.Clicks = 2000
	s = e1.BuyUpgrade(s, "click_intern")
	assert.Equal(t, 3.0, s.CPS)
	assert.Equal(t, 1.0, s.ClickPower)
}

func TestQuest_ProgressAndClaim(t *testing.T) {
	e, _ := newTestEngine(2)
	s := e.NewState()
	for i := 0; i < 10; i++ {
		s = e.Click(s)
	}
	s.Clicks = 100
	s = e.BuyUpgrade(s, "energy")

	q := -1
	for i := range s.Quests {
		if s.Quests[i].ID == "getting_started" {
			q = i
			break
		}
	}
	require.GreaterOrEqual(t, q, 0)
	require.True(t, s.Quests[q].Completed)

	clicksBefore := s.Clicks
	s = e.ClaimQuest(s, "getting_started")
	assert.True(t, s.Quests[q].Claimed)
	assert.Equal(t, clicksBefore+100, s.Clicks)

	assert.Same(t, s, e.ClaimQuest(s, "getting_started"))
}

func TestQuestClaim_IncompleteIsNoOp(t *testing.T) {
	e, _ := newTestEngine(2)
	s := e.NewState()

	assert.Same(t, s, e.ClaimQuest(s, "getting_started"))
	assert.Same(t, s, e.ClaimQuest(s, "nope"))
}

func TestEventReward_ClaimOnceAfterChallenges(t *testing.T) {
	e, _ := newTestEngine(0) // click_frenzy: click 1,000 times
	s := e.NewState()

	// challenges incomplete: no-op
	assert.Same(t, s, e.ClaimEventReward(s, "click_frenzy"))

	s.Stats.ManualClicks = 1_500
	s = e.Tick(s, 0)
	require.True(t, s.ActiveEvent.Challenges[0].Completed)

	clicksBefore := s.Clicks
	s = e.ClaimEventReward(s, "click_frenzy")
	assert.True(t, s.ActiveEvent.Claimed)
	assert.Equal(t, clicksBefore+100_000, s.Clicks)

	assert.Same(t, s, e.ClaimEventReward(s, "click_frenzy"))
	assert.Same(t, s, e.ClaimEventReward(s, "wrong_id"))
}
