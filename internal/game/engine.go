package game

import (
	"time"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/achievement"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/config"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/quest"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/tree"
)

// AmountMax is the sentinel bulk amount meaning "as many as affordable".
const AmountMax = -1

// Engine holds the content-derived collaborators of the mutation
// operations: the clock, the balance constants, the event rotation pool,
// the achievement predicate registry and an optional telemetry sink.
// Every operation takes a state and returns the next state; invalid
// requests return the input unchanged, never an error.
type Engine struct {
	Clock      Clock
	Balance    config.Balance
	Telemetry  telemetry.Repository
	EventPool  []quest.Event
	Predicates map[string]achievement.Predicate
}

func NewEngine(clock Clock, bal config.Balance, rec telemetry.Repository) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{
		Clock:      clock,
		Balance:    bal,
		Telemetry:  rec,
		EventPool:  quest.SeedEvents(),
		Predicates: achievement.Predicates(),
	}
}

func (e *Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e *Engine) record(t telemetry.EventType, md telemetry.EventMetadata) {
	if e.Telemetry != nil {
		_ = e.Telemetry.RecordEvent(t, md)
	}
}

// NewState builds a fresh state and brings its tracker-driven fields
// (challenge windows, active event, derived stats) up to date.
func (e *Engine) NewState() *GameState {
	s := NewState(e.now())
	e.track(s)
	return s
}

// Click applies one manual click at the current click power.
func (e *Engine) Click(s *GameState) *GameState {
	next := s.Clone()
	next.Clicks += next.ClickPower
	next.LifetimeClicks += next.ClickPower
	next.Stats.ManualClicks++
	e.track(next)
	e.record(telemetry.EventClick, nil)
	return next
}

// BuyUpgrade purchases a single unit. Unknown id or insufficient clicks
// is a no-op returning the input state.
func (e *Engine) BuyUpgrade(s *GameState, id string) *GameState {
	cost := UpgradeCost(s, id)
	if cost < 0 || s.Clicks < float64(cost) {
		return s
	}

	next := s.Clone()
	u := findUpgrade(next, id)
	next.Clicks -= float64(cost)
	u.Owned++

	// Recompute from the incremented count; cost and power both depend
	// on it.
	next.ClickPower = BaseClickPower(next)
	next.CPS = BasePassiveRate(next)
	e.track(next)
	e.record(telemetry.EventUpgradePurchased, telemetry.EventMetadata{
		"upgrade_id": id,
		"cost":       cost,
		"owned":      u.Owned,
	})
	return next
}

// BuyUpgradeBulk purchases up to amount units (AmountMax for as many as
// affordable) as one atomic transition with a single recompute at the
// end. A resolved count of zero is a no-op.
func (e *Engine) BuyUpgradeBulk(s *GameState, id string, amount int) *GameState {
	affordable := MaxAffordable(s, id, e.bulkCeiling())

	count := affordable
	if amount != AmountMax {
		if amount <= 0 {
			return s
		}
		if amount < count {
			count = amount
		}
	}
	if count == 0 {
		return s
	}

	next := s.Clone()
	u := findUpgrade(next, id)
	for i := 0; i < count; i++ {
		next.Clicks -= float64(costAt(next, u, u.Owned))
		u.Owned++
	}

	next.ClickPower = BaseClickPower(next)
	next.CPS = BasePassiveRate(next)
	e.track(next)
	e.record(telemetry.EventUpgradePurchased, telemetry.EventMetadata{
		"upgrade_id": id,
		"count":      count,
		"owned":      u.Owned,
	})
	return next
}

// BuyTreeNode purchases a one-time node with the tier's point currency.
func (e *Engine) BuyTreeNode(s *GameState, t tree.Tier, id string) *GameState {
	n := findNode(s.Tree(t), id)
	if n == nil || n.Owned || e.points(s, t) < n.Cost {
		return s
	}

	next := s.Clone()
	node := findNode(next.Tree(t), id)
	node.Owned = true
	e.spendPoints(next, t, node.Cost)

	// A node may affect click power, passive rate or cost formulas.
	next.ClickPower = BaseClickPower(next)
	next.CPS = BasePassiveRate(next)
	e.track(next)
	e.record(telemetry.EventNodePurchased, telemetry.EventMetadata{
		"tier":    string(t),
		"node_id": id,
	})
	return next
}

// Tick grants elapsed passive production and refreshes the tracker.
// elapsed comes from monotonic clock deltas so suspended sessions do
// not over- or under-grant.
func (e *Engine) Tick(s *GameState, elapsed time.Duration) *GameState {
	secs := elapsed.Seconds()
	if secs < 0 {
		secs = 0
	}

	next := s.Clone()
	earned := next.CPS * secs
	next.Clicks += earned
	next.LifetimeClicks += earned
	next.Stats.PlayTimeSeconds += secs
	e.track(next)
	return next
}

// Cheat applies a debug code. Unknown codes are logged via telemetry and
// leave the state unchanged.
func (e *Engine) Cheat(s *GameState, code string) *GameState {
	switch code {
	case "motherlode":
		next := s.Clone()
		next.Clicks += 1_000_000
		next.LifetimeClicks += 1_000_000
		e.track(next)
		return next
	case "timewarp":
		return e.Tick(s, time.Hour)
	default:
		e.record(telemetry.EventCheatRejected, telemetry.EventMetadata{"code": code})
		return s
	}
}

func (e *Engine) bulkCeiling() int {
	if e.Balance.BulkCeiling > 0 {
		return e.Balance.BulkCeiling
	}
	return 10_000
}

func (e *Engine) points(s *GameState, t tree.Tier) int64 {
	switch t {
	case tree.TierSkill:
		return s.PrestigePoints
	case tree.TierAscension:
		return s.AscensionPoints
	case tree.TierTranscendence:
		return s.TranscendencePoints
	case tree.TierEternity:
		return s.EternityPoints
	}
	return 0
}

func (e *Engine) spendPoints(s *GameState, t tree.Tier, cost int64) {
	switch t {
	case tree.TierSkill:
		s.PrestigePoints -= cost
	case tree.TierAscension:
		s.AscensionPoints -= cost
	case tree.TierTranscendence:
		s.TranscendencePoints -= cost
	case tree.TierEternity:
		s.EternityPoints -= cost
	}
}
