package achievement

// Seed returns the achievement table, all locked.
func Seed() []Achievement {
	return []Achievement{
		{ID: "first_click", Name: "First Click", Description: "click once", Icon: "👆", Boost: 0},
		{ID: "hundred_clicks", Name: "Warm Fingers", Description: "click 100 times", Icon: "🔥", Boost: 0.01},
		{ID: "ten_k_lifetime", Name: "Five Digits", Description: "earn 10,000 lifetime clicks", Icon: "💰", Boost: 0.01},
		{ID: "million_lifetime", Name: "Clickionaire", Description: "earn 1,000,000 lifetime clicks", Icon: "💎", Boost: 0.02},
		{ID: "billion_lifetime", Name: "Absurd Wealth", Description: "earn 1,000,000,000 lifetime clicks", Icon: "🌋", Boost: 0.05},
		{ID: "first_upgrade", Name: "Shopping Spree", Description: "buy an upgrade", Icon: "🛒", Boost: 0},
		{ID: "fifty_upgrades", Name: "Collector", Description: "own 50 upgrades", Icon: "📦", Boost: 0.02},
		{ID: "cps_hundred", Name: "Idle Hands", Description: "reach 100 clicks per second", Icon: "⚙️", Boost: 0.01},
		{ID: "cps_ten_k", Name: "Perpetual Motion", Description: "reach 10,000 clicks per second", Icon: "🌀", Boost: 0.03},
		{ID: "first_prestige", Name: "Born Again", Description: "prestige once", Icon: "⭐", Boost: 0.02},
		{ID: "ten_prestiges", Name: "Serial Rebirther", Description: "prestige 10 times", Icon: "🌟", Boost: 0.05},
		{ID: "first_ascension", Name: "Higher Plane", Description: "ascend once", Icon: "🪽", Boost: 0.05},
		{ID: "first_transcendence", Name: "Beyond", Description: "transcend once", Icon: "🔮", Boost: 0.05},
		{ID: "first_eternity", Name: "Endless", Description: "complete an eternity reset", Icon: "♾️", Boost: 0.1},
		{ID: "marathon", Name: "Marathon", Description: "play for an hour", Icon: "⏰", Boost: 0},
	}
}

// Predicates maps achievement IDs to their unlock conditions. Every ID in
// Seed has an entry here; an achievement without one can never unlock.
func Predicates() map[string]Predicate {
	return map[string]Predicate{
		"first_click":         func(s Snapshot) bool { return s.ManualClicks >= 1 },
		"hundred_clicks":      func(s Snapshot) bool { return s.ManualClicks >= 100 },
		"ten_k_lifetime":      func(s Snapshot) bool { return s.LifetimeClicks >= 10_000 },
		"million_lifetime":    func(s Snapshot) bool { return s.LifetimeClicks >= 1_000_000 },
		"billion_lifetime":    func(s Snapshot) bool { return s.LifetimeClicks >= 1_000_000_000 },
		"first_upgrade":       func(s Snapshot) bool { return s.UpgradesOwned >= 1 },
		"fifty_upgrades":      func(s Snapshot) bool { return s.UpgradesOwned >= 50 },
		"cps_hundred":         func(s Snapshot) bool { return s.CPS >= 100 },
		"cps_ten_k":           func(s Snapshot) bool { return s.CPS >= 10_000 },
		"first_prestige":      func(s Snapshot) bool { return s.TotalPrestiges >= 1 },
		"ten_prestiges":       func(s Snapshot) bool { return s.TotalPrestiges >= 10 },
		"first_ascension":     func(s Snapshot) bool { return s.TotalAscensions >= 1 },
		"first_transcendence": func(s Snapshot) bool { return s.TotalTranscendences >= 1 },
		"first_eternity":      func(s Snapshot) bool { return s.TotalEternities >= 1 },
		"marathon":            func(s Snapshot) bool { return s.PlayTimeSeconds >= 3600 },
	}
}
