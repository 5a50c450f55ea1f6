package upgrade

// Seed returns the full upgrade table with zero owned counts.
func Seed() []Upgrade {
	return []Upgrade{
		{
			ID:          "energy",
			Name:        "Energy Drink",
			Description: "+1 click power per can",
			BaseCost:    50,
			CostMult:    1.25,
			Effect:      1,
			Kind:        KindClickPower,
		},
		{
			ID:          "double_click",
			Name:        "Double Click",
			Description: "+3 click power",
			BaseCost:    400,
			CostMult:    1.3,
			Effect:      3,
			Kind:        KindClickPower,
		},
		{
			ID:          "power_glove",
			Name:        "Power Glove",
			Description: "+10 click power",
			BaseCost:    3_500,
			CostMult:    1.35,
			Effect:      10,
			Kind:        KindClickPower,
		},
		{
			ID:          "golden_mouse",
			Name:        "Golden Mouse",
			Description: "+50 click power",
			BaseCost:    40_000,
			CostMult:    1.4,
			Effect:      50,
			Kind:        KindClickPower,
		},
		{
			ID:          "auto_cursor",
			Name:        "Auto Cursor",
			Description: "clicks for you, slowly",
			BaseCost:    125,
			CostMult:    1.2,
			Effect:      0.1,
			Kind:        KindAutoClicker,
		},
		{
			ID:          "click_intern",
			Name:        "Click Intern",
			Description: "one click per second, minimum wage",
			BaseCost:    1_200,
			CostMult:    1.25,
			Effect:      1,
			Kind:        KindAutoClicker,
		},
		{
			ID:          "click_farm",
			Name:        "Click Farm",
			Description: "industrial scale clicking",
			BaseCost:    15_000,
			CostMult:    1.3,
			Effect:      8,
			Kind:        KindAutoClicker,
		},
		{
			ID:          "server_rack",
			Name:        "Server Rack",
			Description: "scripted clicks around the clock",
			BaseCost:    200_000,
			CostMult:    1.35,
			Effect:      45,
			Kind:        KindAutoClicker,
		},
	}
}
