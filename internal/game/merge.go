package game

import (
	"time"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/quest"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/tree"
)

// MergeSnapshot reconciles a loaded snapshot against the current content
// tables: start from a fresh state covering all current content, overlay
// the snapshot's scalar progress, and merge every id-keyed collection so
// saved mutable fields win, new content ids appear fresh, and ids no
// longer in the tables are dropped. Adding content never breaks an old
// save and never loses progress on surviving content.
func (e *Engine) MergeSnapshot(raw *GameState) *GameState {
	fresh := NewState(e.now())
	if raw == nil {
		e.track(fresh)
		return fresh
	}

	fresh.Clicks = raw.Clicks
	fresh.LifetimeClicks = raw.LifetimeClicks

	fresh.PrestigePoints = raw.PrestigePoints
	fresh.TotalPrestigePoints = raw.TotalPrestigePoints
	fresh.AscensionPoints = raw.AscensionPoints
	fresh.TotalAscensionPoints = raw.TotalAscensionPoints
	fresh.TranscendencePoints = raw.TranscendencePoints
	fresh.TotalTranscendencePoints = raw.TotalTranscendencePoints
	fresh.EternityPoints = raw.EternityPoints
	fresh.TotalEternityPoints = raw.TotalEternityPoints

	fresh.TotalPrestiges = raw.TotalPrestiges
	fresh.TotalAscensions = raw.TotalAscensions
	fresh.TotalTranscendences = raw.TotalTranscendences
	fresh.TotalEternities = raw.TotalEternities

	fresh.Stats = raw.Stats
	fresh.Stats.ClickHistory = append([]Sample(nil), raw.Stats.ClickHistory...)
	fresh.Stats.CPSHistory = append([]Sample(nil), raw.Stats.CPSHistory...)

	mergeUpgrades(fresh, raw)
	for _, t := range tree.Tiers {
		mergeNodes(fresh.Tree(t), raw.Tree(t))
	}
	mergeAchievements(fresh, raw)
	mergeQuests(fresh, raw)
	mergeChallenges(fresh, raw)

	// The saved active event is kept verbatim; the tracker replaces it
	// the moment its window is stale.
	if raw.ActiveEvent != nil {
		ev := *raw.ActiveEvent
		ev.Challenges = append([]quest.Challenge(nil), raw.ActiveEvent.Challenges...)
		fresh.ActiveEvent = &ev
		fresh.EventWindowEnd = raw.EventWindowEnd
	}

	fresh.ClickPower = BaseClickPower(fresh)
	fresh.CPS = BasePassiveRate(fresh)
	e.track(fresh)
	return fresh
}

func mergeUpgrades(fresh, raw *GameState) {
	saved := make(map[string]int, len(raw.Upgrades))
	for _, u := range raw.Upgrades {
		saved[u.ID] = u.Owned
	}
	for i := range fresh.Upgrades {
		if owned, ok := saved[fresh.Upgrades[i].ID]; ok && owned > 0 {
			fresh.Upgrades[i].Owned = owned
		}
	}
}

func mergeNodes(fresh, raw []tree.Node) {
	saved := make(map[string]bool, len(raw))
	for _, n := range raw {
		saved[n.ID] = n.Owned
	}
	for i := range fresh {
		if owned, ok := saved[fresh[i].ID]; ok {
			fresh[i].Owned = owned
		}
	}
}

func mergeAchievements(fresh, raw *GameState) {
	saved := make(map[string]bool, len(raw.Achievements))
	for _, a := range raw.Achievements {
		saved[a.ID] = a.Unlocked
	}
	for i := range fresh.Achievements {
		if unlocked, ok := saved[fresh.Achievements[i].ID]; ok {
			fresh.Achievements[i].Unlocked = unlocked
		}
	}
}

func mergeQuests(fresh, raw *GameState) {
	saved := make(map[string]quest.Quest, len(raw.Quests))
	for _, q := range raw.Quests {
		saved[q.ID] = q
	}
	for i := range fresh.Quests {
		old, ok := saved[fresh.Quests[i].ID]
		if !ok {
			continue
		}
		fresh.Quests[i].Completed = old.Completed
		fresh.Quests[i].Claimed = old.Claimed
	}
}

func mergeChallenges(fresh, raw *GameState) {
	saved := make(map[string]quest.Challenge, len(raw.Challenges))
	for _, c := range raw.Challenges {
		saved[c.ID] = c
	}
	for i := range fresh.Challenges {
		old, ok := saved[fresh.Challenges[i].ID]
		if !ok {
			continue
		}
		tpl := fresh.Challenges[i]
		tpl.Baseline = old.Baseline
		tpl.Current = old.Current
		tpl.Completed = old.Completed
		tpl.Claimed = old.Claimed
		tpl.ExpiresAt = old.ExpiresAt
		fresh.Challenges[i] = tpl
	}
}

// OfflineReport is the one-time passive-earnings summary computed on
// load. The engine only reports the amount; whether it is credited to
// the balance is the embedding session's policy.
type OfflineReport struct {
	Elapsed time.Duration `json:"elapsed"`
	Earned  float64       `json:"earned"`
}

// OfflineEarnings computes elapsed-time passive production since the
// state was last online.
func OfflineEarnings(s *GameState, now time.Time) OfflineReport {
	if s.Stats.LastOnlineTime.IsZero() {
		return OfflineReport{}
	}
	elapsed := now.Sub(s.Stats.LastOnlineTime)
	if elapsed < 0 {
		return OfflineReport{}
	}
	return OfflineReport{
		Elapsed: elapsed,
		Earned:  s.CPS * elapsed.Seconds(),
	}
}
