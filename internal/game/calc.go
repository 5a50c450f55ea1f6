package game

import (
	"math"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/tree"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/upgrade"
)

// The calculator is pure: every function here is deterministic for a
// given state and mutates nothing.

// BaseClickPower computes click power before achievement boosts and
// event multipliers. The ordering is load-bearing for numeric parity:
// additive upgrade contributions first, then multiplicative node
// bonuses in tier order, lowest tier first.
func BaseClickPower(s *GameState) float64 {
	power := 1.0
	for _, u := range s.Upgrades {
		if u.Kind == upgrade.KindClickPower {
			power += u.Effect * float64(u.Owned)
		}
	}
	for _, n := range s.SkillTree {
		if n.Owned && n.Kind == tree.KindClickMult {
			power *= n.Effect
		}
	}
	for _, t := range []tree.Tier{tree.TierAscension, tree.TierTranscendence, tree.TierEternity} {
		for _, n := range s.Tree(t) {
			if n.Owned && n.Kind == tree.KindAllProduction {
				power *= n.Effect
			}
		}
	}
	if power < 0 || math.IsNaN(power) {
		return 0
	}
	return power
}

// BasePassiveRate computes clicks per second before achievement boosts
// and event multipliers. Passive rate scales with click power, not a
// flat sum: each auto clicker contributes effect x owned x click power.
func BasePassiveRate(s *GameState) float64 {
	power := BaseClickPower(s)

	rate := 0.0
	for _, u := range s.Upgrades {
		if u.Kind == upgrade.KindAutoClicker {
			rate += u.Effect * float64(u.Owned) * power
		}
	}
	for _, n := range s.SkillTree {
		if n.Owned && (n.Kind == tree.KindSpeedBoost || n.Kind == tree.KindCPSMult) {
			rate *= n.Effect
		}
	}
	// All-production nodes already flow in through click power; only the
	// rate-specific bonuses apply here.
	for _, t := range []tree.Tier{tree.TierAscension, tree.TierTranscendence, tree.TierEternity} {
		for _, n := range s.Tree(t) {
			if n.Owned && n.Kind == tree.KindUltimateRate {
				rate *= n.Effect
			}
		}
	}
	if rate < 0 || math.IsNaN(rate) {
		return 0
	}
	return rate
}

// UpgradeCost prices the next unit of an upgrade:
// floor(base x mult^owned), then each owned cost-reduction bonus applied
// multiplicatively, floored after every application. Returns -1 for an
// unknown id so callers can distinguish "unknown" from "free".
func UpgradeCost(s *GameState, id string) int64 {
	u := findUpgrade(s, id)
	if u == nil {
		return -1
	}
	return costAt(s, u, u.Owned)
}

func costAt(s *GameState, u *upgrade.Upgrade, owned int) int64 {
	cost := math.Floor(float64(u.BaseCost) * math.Pow(u.CostMult, float64(owned)))
	for _, n := range s.SkillTree {
		if n.Owned && n.Kind == tree.KindCostReduction {
			cost = math.Floor(cost * n.Effect)
		}
	}
	for _, n := range s.AscensionTree {
		if n.Owned && n.Kind == tree.KindSuperCost {
			cost = math.Floor(cost * n.Effect)
		}
	}
	if cost < 0 || math.IsNaN(cost) {
		return 0
	}
	return int64(cost)
}

// BulkCost sums the cost of count sequential purchases, each re-priced
// from the incremented owned count. The ceiling caps the simulation to
// guarantee termination.
func BulkCost(s *GameState, id string, count, ceiling int) int64 {
	u := findUpgrade(s, id)
	if u == nil || count <= 0 {
		return 0
	}
	if count > ceiling {
		count = ceiling
	}
	var total int64
	for i := 0; i < count; i++ {
		total += costAt(s, u, u.Owned+i)
	}
	return total
}

// MaxAffordable runs the same greedy simulation against the current
// currency, stopping as soon as the running total would exceed it.
func MaxAffordable(s *GameState, id string, ceiling int) int {
	u := findUpgrade(s, id)
	if u == nil {
		return 0
	}
	budget := s.Clicks
	var total int64
	for i := 0; i < ceiling; i++ {
		total += costAt(s, u, u.Owned+i)
		if float64(total) > budget {
			return i
		}
	}
	return ceiling
}

func findUpgrade(s *GameState, id string) *upgrade.Upgrade {
	for i := range s.Upgrades {
		if s.Upgrades[i].ID == id {
			return &s.Upgrades[i]
		}
	}
	return nil
}

func findNode(nodes []tree.Node, id string) *tree.Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	return nil
}
