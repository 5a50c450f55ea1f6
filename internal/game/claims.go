package game

import (
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/quest"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
)

// ClaimQuest grants a completed quest's reward exactly once. Claiming an
// unknown, incomplete or already-claimed quest is a no-op.
func (e *Engine) ClaimQuest(s *GameState, id string) *GameState {
	idx := -1
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || !s.Quests[idx].Completed || s.Quests[idx].Claimed {
		return s
	}

	next := s.Clone()
	next.Quests[idx].Claimed = true
	grantReward(next, next.Quests[idx].Reward)
	e.track(next)
	e.record(telemetry.EventQuestClaimed, telemetry.EventMetadata{"quest_id": id})
	return next
}

// ClaimChallenge grants a completed challenge's reward for the current
// window. The claimed flag holds until the window expires and the
// challenge regenerates.
func (e *Engine) ClaimChallenge(s *GameState, id string) *GameState {
	idx := -1
	for i := range s.Challenges {
		if s.Challenges[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || !s.Challenges[idx].Completed || s.Challenges[idx].Claimed {
		return s
	}

	next := s.Clone()
	next.Challenges[idx].Claimed = true
	grantReward(next, next.Challenges[idx].Reward)
	e.track(next)
	e.record(telemetry.EventChallengeClaimed, telemetry.EventMetadata{"challenge_id": id})
	return next
}

// ClaimEventReward grants the active event's bundle reward once all of
// its embedded challenges are complete.
func (e *Engine) ClaimEventReward(s *GameState, id string) *GameState {
	ev := s.ActiveEvent
	if ev == nil || ev.ID != id || ev.Claimed {
		return s
	}
	for _, c := range ev.Challenges {
		if !c.Completed {
			return s
		}
	}

	next := s.Clone()
	next.ActiveEvent.Claimed = true
	grantReward(next, next.ActiveEvent.Reward)
	e.track(next)
	e.record(telemetry.EventEventRewardClaimed, telemetry.EventMetadata{"event_id": id})
	return next
}

// grantReward applies a reward payload. Reward clicks count as earned
// currency; granted points raise the cumulative totals the reset-gain
// formulas read.
func grantReward(s *GameState, r quest.Reward) {
	s.Clicks += r.Clicks
	s.LifetimeClicks += r.Clicks
	s.PrestigePoints += r.PrestigePoints
	s.TotalPrestigePoints += r.PrestigePoints
	s.AscensionPoints += r.AscensionPoints
	s.TotalAscensionPoints += r.AscensionPoints
}
