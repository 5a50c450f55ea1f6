package tree

// Seed returns the node table for one tier, nothing owned.
func Seed(t Tier) []Node {
	switch t {
	case TierSkill:
		return seedSkill()
	case TierAscension:
		return seedAscension()
	case TierTranscendence:
		return seedTranscendence()
	case TierEternity:
		return seedEternity()
	}
	return nil
}

func seedSkill() []Node {
	return []Node{
		{ID: "sk_strong_fingers", Name: "Strong Fingers", Description: "x2 click power", Cost: 1, Effect: 2, Kind: KindClickMult},
		{ID: "sk_iron_wrists", Name: "Iron Wrists", Description: "x3 click power", Cost: 5, Effect: 3, Kind: KindClickMult},
		{ID: "sk_oiled_bearings", Name: "Oiled Bearings", Description: "x2 passive rate", Cost: 2, Effect: 2, Kind: KindSpeedBoost},
		{ID: "sk_overclock", Name: "Overclock", Description: "x2.5 passive rate", Cost: 8, Effect: 2.5, Kind: KindCPSMult},
		{ID: "sk_bulk_discount", Name: "Bulk Discount", Description: "upgrades cost 10% less", Cost: 3, Effect: 0.9, Kind: KindCostReduction},
		{ID: "sk_head_start", Name: "Head Start", Description: "start with 1,000 clicks after a prestige", Cost: 4, Effect: 1_000, Kind: KindStartingClicks},
	}
}

func seedAscension() []Node {
	return []Node{
		{ID: "as_ascendant_touch", Name: "Ascendant Touch", Description: "x3 all production", Cost: 1, Effect: 3, Kind: KindAllProduction},
		{ID: "as_celestial_engine", Name: "Celestial Engine", Description: "x5 all production", Cost: 6, Effect: 5, Kind: KindAllProduction},
		{ID: "as_ultimate_rate", Name: "Ultimate Rate", Description: "x4 passive rate", Cost: 3, Effect: 4, Kind: KindUltimateRate},
		{ID: "as_super_cost", Name: "Super Cost", Description: "upgrades cost 20% less", Cost: 4, Effect: 0.8, Kind: KindSuperCost},
		{ID: "as_rich_start", Name: "Rich Start", Description: "start with 100,000 clicks after any reset", Cost: 5, Effect: 100_000, Kind: KindStartingClicks},
	}
}

func seedTranscendence() []Node {
	return []Node{
		{ID: "tr_beyond_flesh", Name: "Beyond Flesh", Description: "x10 all production", Cost: 1, Effect: 10, Kind: KindAllProduction},
		{ID: "tr_timeless_rate", Name: "Timeless Rate", Description: "x8 passive rate", Cost: 2, Effect: 8, Kind: KindUltimateRate},
		{ID: "tr_endowment", Name: "Endowment", Description: "start with 10,000,000 clicks after any reset", Cost: 3, Effect: 10_000_000, Kind: KindStartingClicks},
	}
}

func seedEternity() []Node {
	return []Node{
		{ID: "et_eternal_engine", Name: "Eternal Engine", Description: "x100 all production", Cost: 1, Effect: 100, Kind: KindAllProduction},
		{ID: "et_first_light", Name: "First Light", Description: "start with 1,000,000,000 clicks after any reset", Cost: 2, Effect: 1_000_000_000, Kind: KindStartingClicks},
	}
}
