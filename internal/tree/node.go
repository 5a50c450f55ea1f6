package tree

// Tier names the four nested reset layers. Each tier has its own node
// collection and its own point currency.
type Tier string

const (
	TierSkill         Tier = "skill"
	TierAscension     Tier = "ascension"
	TierTranscendence Tier = "transcendence"
	TierEternity      Tier = "eternity"
)

// Tiers lists the tiers in reset order, lowest first. Multiplicative
// bonuses are applied in this order.
var Tiers = []Tier{TierSkill, TierAscension, TierTranscendence, TierEternity}

// Kind selects which derived stat an owned node modifies.
type Kind string

const (
	KindClickMult      Kind = "click_multiplier"
	KindCPSMult        Kind = "cps_multiplier"
	KindSpeedBoost     Kind = "speed_boost"
	KindCostReduction  Kind = "cost_reduction"
	KindStartingClicks Kind = "starting_clicks"
	KindAllProduction  Kind = "all_production"
	KindUltimateRate   Kind = "ultimate_rate"
	KindSuperCost      Kind = "super_cost"
)

// Node is a one-time tree purchase. Owned is the only mutable field.
type Node struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        int64   `json:"cost"`
	Effect      float64 `json:"effect"`
	Kind        Kind    `json:"kind"`
	Owned       bool    `json:"owned"`
}
