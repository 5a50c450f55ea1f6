package game

import (
	"time"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/achievement"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/quest"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/tree"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/upgrade"
)

// GameState is the root aggregate: the single unit of persistence and
// the single argument/return value of every engine operation. Engine
// operations never mutate their input; they clone, mutate the clone and
// return it.
type GameState struct {
	Clicks         float64 `json:"clicks"`
	LifetimeClicks float64 `json:"lifetime_clicks"`
	ClickPower     float64 `json:"click_power"`
	CPS            float64 `json:"cps"`

	PrestigePoints           int64 `json:"prestige_points"`
	TotalPrestigePoints      int64 `json:"total_prestige_points"`
	AscensionPoints          int64 `json:"ascension_points"`
	TotalAscensionPoints     int64 `json:"total_ascension_points"`
	TranscendencePoints      int64 `json:"transcendence_points"`
	TotalTranscendencePoints int64 `json:"total_transcendence_points"`
	EternityPoints           int64 `json:"eternity_points"`
	TotalEternityPoints      int64 `json:"total_eternity_points"`

	TotalPrestiges      int64 `json:"total_prestiges"`
	TotalAscensions     int64 `json:"total_ascensions"`
	TotalTranscendences int64 `json:"total_transcendences"`
	TotalEternities     int64 `json:"total_eternities"`

	Upgrades          []upgrade.Upgrade         `json:"upgrades"`
	SkillTree         []tree.Node               `json:"skill_tree"`
	AscensionTree     []tree.Node               `json:"ascension_tree"`
	TranscendenceTree []tree.Node               `json:"transcendence_tree"`
	EternityTree      []tree.Node               `json:"eternity_tree"`
	Achievements      []achievement.Achievement `json:"achievements"`

	Quests     []quest.Quest     `json:"quests"`
	Challenges []quest.Challenge `json:"challenges"`

	// ActiveEvent is the live instance of the rotation entry currently
	// in window, including its challenge baselines and claim flag.
	ActiveEvent    *quest.Event `json:"active_event,omitempty"`
	EventWindowEnd time.Time    `json:"event_window_end"`

	Stats Stats `json:"stats"`
}

type Stats struct {
	PlayTimeSeconds float64   `json:"play_time_seconds"`
	ManualClicks    int64     `json:"manual_clicks"`
	BestCPS         float64   `json:"best_cps"`
	LastOnlineTime  time.Time `json:"last_online_time"`
	ClickHistory    []Sample  `json:"click_history"`
	CPSHistory      []Sample  `json:"cps_history"`
}

// Sample is one point of the 10-second historical series.
type Sample struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}

// NewState builds a fresh state covering the full current content tables.
func NewState(now time.Time) *GameState {
	s := &GameState{
		Upgrades:          upgrade.Seed(),
		SkillTree:         tree.Seed(tree.TierSkill),
		AscensionTree:     tree.Seed(tree.TierAscension),
		TranscendenceTree: tree.Seed(tree.TierTranscendence),
		EternityTree:      tree.Seed(tree.TierEternity),
		Achievements:      achievement.Seed(),
		Quests:            quest.SeedQuests(),
		Challenges:        quest.SeedChallenges(),
	}
	s.Stats.LastOnlineTime = now
	s.ClickPower = BaseClickPower(s)
	s.CPS = BasePassiveRate(s)
	return s
}

// Clone deep-copies the state so mutations are snapshot replacements,
// never in-place edits observable mid-operation.
func (s *GameState) Clone() *GameState {
	next := *s

	next.Upgrades = append([]upgrade.Upgrade(nil), s.Upgrades...)
	next.SkillTree = append([]tree.Node(nil), s.SkillTree...)
	next.AscensionTree = append([]tree.Node(nil), s.AscensionTree...)
	next.TranscendenceTree = append([]tree.Node(nil), s.TranscendenceTree...)
	next.EternityTree = append([]tree.Node(nil), s.EternityTree...)
	next.Achievements = append([]achievement.Achievement(nil), s.Achievements...)

	next.Quests = make([]quest.Quest, len(s.Quests))
	for i, q := range s.Quests {
		q.Steps = append([]quest.Step(nil), q.Steps...)
		next.Quests[i] = q
	}
	next.Challenges = append([]quest.Challenge(nil), s.Challenges...)

	if s.ActiveEvent != nil {
		ev := *s.ActiveEvent
		ev.Challenges = append([]quest.Challenge(nil), s.ActiveEvent.Challenges...)
		next.ActiveEvent = &ev
	}

	next.Stats.ClickHistory = append([]Sample(nil), s.Stats.ClickHistory...)
	next.Stats.CPSHistory = append([]Sample(nil), s.Stats.CPSHistory...)

	return &next
}

// Tree returns the node collection for a tier.
func (s *GameState) Tree(t tree.Tier) []tree.Node {
	switch t {
	case tree.TierSkill:
		return s.SkillTree
	case tree.TierAscension:
		return s.AscensionTree
	case tree.TierTranscendence:
		return s.TranscendenceTree
	case tree.TierEternity:
		return s.EternityTree
	}
	return nil
}

// UpgradesOwned is the total owned count across all upgrades.
func (s *GameState) UpgradesOwned() int {
	n := 0
	for _, u := range s.Upgrades {
		n += u.Owned
	}
	return n
}

// NodesOwned counts owned nodes across all four trees.
func (s *GameState) NodesOwned() int {
	n := 0
	for _, t := range tree.Tiers {
		for _, node := range s.Tree(t) {
			if node.Owned {
				n++
			}
		}
	}
	return n
}

// Snapshot flattens the state into the plain value achievement
// predicates evaluate against.
func (s *GameState) Snapshot() achievement.Snapshot {
	return achievement.Snapshot{
		Clicks:              s.Clicks,
		LifetimeClicks:      s.LifetimeClicks,
		ClickPower:          s.ClickPower,
		CPS:                 s.CPS,
		BestCPS:             s.Stats.BestCPS,
		ManualClicks:        s.Stats.ManualClicks,
		UpgradesOwned:       s.UpgradesOwned(),
		NodesOwned:          s.NodesOwned(),
		TotalPrestigePoints: s.TotalPrestigePoints,
		TotalPrestiges:      s.TotalPrestiges,
		TotalAscensions:     s.TotalAscensions,
		TotalTranscendences: s.TotalTranscendences,
		TotalEternities:     s.TotalEternities,
		PlayTimeSeconds:     s.Stats.PlayTimeSeconds,
	}
}
