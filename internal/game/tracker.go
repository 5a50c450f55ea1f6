package game

import (
	"time"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/quest"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
)

// track brings every derived fact up to date on a freshly cloned state:
// challenge windows, the event rotation, quest counters, derived stats,
// the best-CPS record and achievement flags. It runs at the end of every
// mutation, so no caller ever observes a stale tracker field.
func (e *Engine) track(s *GameState) {
	now := e.now()
	e.refreshChallenges(s, now)
	e.refreshEvent(s, now)
	e.refreshQuests(s)
	e.recompute(s)

	if s.CPS > s.Stats.BestCPS {
		s.Stats.BestCPS = s.CPS
	}

	if e.evaluateAchievements(s) {
		// An unlock may carry a passive boost; fold it in.
		e.recompute(s)
	}
}

// recompute reapplies achievement boosts and event multipliers on top of
// the base calculator values. It always starts from the base, so running
// it again with no new unlocks leaves the values unchanged — the same
// bonus can never compound twice.
func (e *Engine) recompute(s *GameState) {
	base := BaseClickPower(s)
	rate := BasePassiveRate(s)

	boost := 1.0
	for _, a := range s.Achievements {
		if a.Unlocked && a.Boost > 0 {
			boost *= 1 + a.Boost
		}
	}

	evClick, evCPS := 1.0, 1.0
	if s.ActiveEvent != nil {
		if s.ActiveEvent.ClickMult > 0 {
			evClick = s.ActiveEvent.ClickMult
		}
		if s.ActiveEvent.CPSMult > 0 {
			evCPS = s.ActiveEvent.CPSMult
		}
	}

	s.ClickPower = base * boost * evClick
	s.CPS = rate * boost * evCPS
}

// evaluateAchievements flips locked achievements whose predicate now
// holds. The transition is one-way; unlocked entries are never
// re-evaluated. Reports whether anything unlocked.
func (e *Engine) evaluateAchievements(s *GameState) bool {
	snap := s.Snapshot()
	changed := false
	for i := range s.Achievements {
		a := &s.Achievements[i]
		if a.Unlocked {
			continue
		}
		pred, ok := e.Predicates[a.ID]
		if !ok {
			continue
		}
		if pred(snap) {
			a.Unlocked = true
			changed = true
			e.record(telemetry.EventAchievementUnlocked, telemetry.EventMetadata{
				"achievement_id": a.ID,
			})
		}
	}
	return changed
}

func (e *Engine) refreshQuests(s *GameState) {
	for i := range s.Quests {
		q := &s.Quests[i]
		if q.Claimed {
			continue
		}
		for j := range q.Steps {
			q.Steps[j].Current = metricValue(s, q.Steps[j].Metric)
		}
		if !q.Completed && q.IsComplete() {
			q.Completed = true
		}
	}
}

// refreshChallenges regenerates expired or never-started challenges with
// a fresh window and baseline, then recomputes window-relative progress.
func (e *Engine) refreshChallenges(s *GameState, now time.Time) {
	for i := range s.Challenges {
		c := &s.Challenges[i]
		if c.ExpiresAt.IsZero() || c.Expired(now) {
			*c = c.Regenerate(metricValue(s, c.Metric), c.Boundary(now))
		}
		updateChallengeProgress(s, c)
	}
}

// refreshEvent installs the rotation entry whose window contains now.
// Selection is purely a function of wall-clock time, so every session
// agrees on the active event.
func (e *Engine) refreshEvent(s *GameState, now time.Time) {
	if len(e.EventPool) == 0 {
		return
	}

	window := time.Duration(e.Balance.EventWindowHours) * time.Hour
	if window <= 0 {
		window = 48 * time.Hour
	}

	idx := quest.ActiveIndex(now, window, len(e.EventPool))
	_, end := quest.WindowBounds(now, window)

	if s.ActiveEvent == nil || s.ActiveEvent.ID != e.EventPool[idx].ID || !s.EventWindowEnd.Equal(end) {
		ev := e.EventPool[idx]
		ev.Challenges = append([]quest.Challenge(nil), ev.Challenges...)
		for i := range ev.Challenges {
			ev.Challenges[i] = ev.Challenges[i].Regenerate(metricValue(s, ev.Challenges[i].Metric), end)
		}
		ev.Claimed = false
		s.ActiveEvent = &ev
		s.EventWindowEnd = end
	}

	for i := range s.ActiveEvent.Challenges {
		updateChallengeProgress(s, &s.ActiveEvent.Challenges[i])
	}
}

func updateChallengeProgress(s *GameState, c *quest.Challenge) {
	cur := metricValue(s, c.Metric) - c.Baseline
	if cur < 0 {
		cur = 0
	}
	c.Current = cur
	if !c.Completed && c.Current >= c.Target {
		c.Completed = true
	}
}

// metricValue resolves a progress tag to the state field it designates.
func metricValue(s *GameState, m quest.Metric) float64 {
	switch m {
	case quest.MetricLifetimeClicks:
		return s.LifetimeClicks
	case quest.MetricManualClicks:
		return float64(s.Stats.ManualClicks)
	case quest.MetricClickPower:
		return s.ClickPower
	case quest.MetricCPS:
		return s.CPS
	case quest.MetricUpgradesOwned:
		return float64(s.UpgradesOwned())
	case quest.MetricNodesOwned:
		return float64(s.NodesOwned())
	case quest.MetricTotalPrestiges:
		return float64(s.TotalPrestiges)
	case quest.MetricTotalAscensions:
		return float64(s.TotalAscensions)
	}
	return 0
}
