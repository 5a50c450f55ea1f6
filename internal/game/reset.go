package game

import (
	"math"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/tree"
)

// Gain previews. Each is the amount the corresponding reset would award
// right now; the UI shows these and the reset operations enforce the
// gain > 0 precondition independently of the caller.

// PrestigeGain is floor(lifetimeClicks / divisor), scaled by an active
// event's prestige multiplier.
func (e *Engine) PrestigeGain(s *GameState) int64 {
	div := e.Balance.PrestigeDivisor
	if div <= 0 {
		return 0
	}
	mult := 1.0
	if s.ActiveEvent != nil && s.ActiveEvent.PrestigeMult > 0 {
		mult = s.ActiveEvent.PrestigeMult
	}
	return floorGain(s.LifetimeClicks / div * mult)
}

// AscensionGain is floor(sqrt(totalPrestigePoints / divisor)).
func (e *Engine) AscensionGain(s *GameState) int64 {
	return sqrtGain(float64(s.TotalPrestigePoints), e.Balance.AscensionDivisor)
}

// TranscendenceGain is floor(sqrt(totalAscensionPoints / divisor)).
func (e *Engine) TranscendenceGain(s *GameState) int64 {
	return sqrtGain(float64(s.TotalAscensionPoints), e.Balance.TranscendenceDivisor)
}

// EternityGain is floor(sqrt(totalTranscendencePoints / divisor)).
func (e *Engine) EternityGain(s *GameState) int64 {
	return sqrtGain(float64(s.TotalTranscendencePoints), e.Balance.EternityDivisor)
}

func sqrtGain(total, div float64) int64 {
	if div <= 0 || total <= 0 {
		return 0
	}
	return floorGain(math.Sqrt(total / div))
}

func floorGain(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int64(math.Floor(v))
}

// Prestige converts lifetime clicks into prestige points. Clicks,
// lifetime clicks and upgrade counts reset; the skill tree survives.
func (e *Engine) Prestige(s *GameState) *GameState {
	gain := e.PrestigeGain(s)
	if gain <= 0 {
		return s
	}

	next := s.Clone()
	next.PrestigePoints += gain
	next.TotalPrestigePoints += gain
	next.TotalPrestiges++

	e.resetPrestigeScope(next)
	e.finishReset(next)
	e.record(telemetry.EventPrestige, telemetry.EventMetadata{"gain": gain})
	return next
}

// Ascend additionally wipes prestige points and the skill tree.
func (e *Engine) Ascend(s *GameState) *GameState {
	gain := e.AscensionGain(s)
	if gain <= 0 {
		return s
	}

	next := s.Clone()
	next.AscensionPoints += gain
	next.TotalAscensionPoints += gain
	next.TotalAscensions++

	next.PrestigePoints = 0
	clearTree(next.SkillTree)
	e.resetPrestigeScope(next)
	e.finishReset(next)
	e.record(telemetry.EventAscension, telemetry.EventMetadata{"gain": gain})
	return next
}

// Transcend additionally wipes ascension points and the ascension tree.
func (e *Engine) Transcend(s *GameState) *GameState {
	gain := e.TranscendenceGain(s)
	if gain <= 0 {
		return s
	}

	next := s.Clone()
	next.TranscendencePoints += gain
	next.TotalTranscendencePoints += gain
	next.TotalTranscendences++

	next.AscensionPoints = 0
	clearTree(next.AscensionTree)
	next.PrestigePoints = 0
	clearTree(next.SkillTree)
	e.resetPrestigeScope(next)
	e.finishReset(next)
	e.record(telemetry.EventTranscendence, telemetry.EventMetadata{"gain": gain})
	return next
}

// EternityReset additionally wipes transcendence points and the
// transcendence tree.
func (e *Engine) EternityReset(s *GameState) *GameState {
	gain := e.EternityGain(s)
	if gain <= 0 {
		return s
	}

	next := s.Clone()
	next.EternityPoints += gain
	next.TotalEternityPoints += gain
	next.TotalEternities++

	next.TranscendencePoints = 0
	clearTree(next.TranscendenceTree)
	next.AscensionPoints = 0
	clearTree(next.AscensionTree)
	next.PrestigePoints = 0
	clearTree(next.SkillTree)
	e.resetPrestigeScope(next)
	e.finishReset(next)
	e.record(telemetry.EventEternity, telemetry.EventMetadata{"gain": gain})
	return next
}

// ResetAll wipes everything back to a fresh state.
func (e *Engine) ResetAll(s *GameState) *GameState {
	return e.NewState()
}

// resetPrestigeScope zeroes the collections every tier shares: clicks,
// lifetime clicks and upgrade owned counts. Owned starting-clicks nodes
// that survive the reset set the post-reset floor instead of zero, the
// highest applicable bonus winning.
func (e *Engine) resetPrestigeScope(s *GameState) {
	for i := range s.Upgrades {
		s.Upgrades[i].Owned = 0
	}

	floor := startingClicks(s)
	s.Clicks = floor
	s.LifetimeClicks = floor
}

func startingClicks(s *GameState) float64 {
	best := 0.0
	for _, t := range tree.Tiers {
		for _, n := range s.Tree(t) {
			if n.Owned && n.Kind == tree.KindStartingClicks && n.Effect > best {
				best = n.Effect
			}
		}
	}
	return best
}

func clearTree(nodes []tree.Node) {
	for i := range nodes {
		nodes[i].Owned = false
	}
}

func (e *Engine) finishReset(s *GameState) {
	s.ClickPower = BaseClickPower(s)
	s.CPS = BasePassiveRate(s)
	e.track(s)
}
