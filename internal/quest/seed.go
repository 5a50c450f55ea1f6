package quest

// SeedQuests returns the quest table, nothing claimed.
func SeedQuests() []Quest {
	return []Quest{
		{
			ID:          "getting_started",
			Title:       "Getting Started",
			Description: "Click 10 times and buy your first upgrade",
			Steps: []Step{
				{Metric: MetricManualClicks, Target: 10},
				{Metric: MetricUpgradesOwned, Target: 1},
			},
			Reward: Reward{Clicks: 100},
		},
		{
			ID:          "building_momentum",
			Title:       "Building Momentum",
			Description: "Reach 10 clicks per second",
			Steps: []Step{
				{Metric: MetricCPS, Target: 10},
			},
			Reward: Reward{Clicks: 2_500},
		},
		{
			ID:          "serious_business",
			Title:       "Serious Business",
			Description: "Earn 100,000 lifetime clicks with 25 upgrades owned",
			Steps: []Step{
				{Metric: MetricLifetimeClicks, Target: 100_000},
				{Metric: MetricUpgradesOwned, Target: 25},
			},
			Reward: Reward{Clicks: 50_000},
		},
		{
			ID:          "the_first_leap",
			Title:       "The First Leap",
			Description: "Prestige for the first time",
			Steps: []Step{
				{Metric: MetricTotalPrestiges, Target: 1},
			},
			Reward: Reward{PrestigePoints: 2},
		},
		{
			ID:          "skyward",
			Title:       "Skyward",
			Description: "Prestige 5 times and ascend once",
			Steps: []Step{
				{Metric: MetricTotalPrestiges, Target: 5},
				{Metric: MetricTotalAscensions, Target: 1},
			},
			Reward: Reward{AscensionPoints: 1},
		},
	}
}

// SeedChallenges returns the rotating challenge table. Expiry windows and
// baselines are filled in by the tracker on the first tick.
func SeedChallenges() []Challenge {
	return []Challenge{
		{
			ID:          "daily_grind",
			Title:       "Daily Grind",
			Description: "Earn 50,000 clicks today",
			Metric:      MetricLifetimeClicks,
			Target:      50_000,
			Cadence:     CadenceDaily,
			Reward:      Reward{Clicks: 10_000},
		},
		{
			ID:          "daily_tapper",
			Title:       "Finger Workout",
			Description: "Click 500 times today",
			Metric:      MetricManualClicks,
			Target:      500,
			Cadence:     CadenceDaily,
			Reward:      Reward{Clicks: 5_000},
		},
		{
			ID:          "weekly_empire",
			Title:       "Weekly Empire",
			Description: "Earn 5,000,000 clicks this week",
			Metric:      MetricLifetimeClicks,
			Target:      5_000_000,
			Cadence:     CadenceWeekly,
			Reward:      Reward{Clicks: 1_000_000, PrestigePoints: 1},
		},
	}
}

// SeedEvents returns the fixed event rotation pool.
func SeedEvents() []Event {
	return []Event{
		{
			ID:           "click_frenzy",
			Name:         "Click Frenzy",
			Description:  "Double click power while the frenzy lasts",
			ClickMult:    2,
			CPSMult:      1,
			PrestigeMult: 1,
			Challenges: []Challenge{
				{ID: "frenzy_clicks", Title: "Frenzied Fingers", Description: "Click 1,000 times during the frenzy", Metric: MetricManualClicks, Target: 1_000},
			},
			Reward: Reward{Clicks: 100_000},
		},
		{
			ID:           "idle_storm",
			Name:         "Idle Storm",
			Description:  "Triple passive generation",
			ClickMult:    1,
			CPSMult:      3,
			PrestigeMult: 1,
			Challenges: []Challenge{
				{ID: "storm_earnings", Title: "Storm Chaser", Description: "Earn 2,000,000 clicks during the storm", Metric: MetricLifetimeClicks, Target: 2_000_000},
			},
			Reward: Reward{Clicks: 500_000},
		},
		{
			ID:           "prestige_surge",
			Name:         "Prestige Surge",
			Description:  "Prestige gains doubled",
			ClickMult:    1,
			CPSMult:      1,
			PrestigeMult: 2,
			Challenges: []Challenge{
				{ID: "surge_prestige", Title: "Ride the Surge", Description: "Prestige during the surge", Metric: MetricTotalPrestiges, Target: 1},
			},
			Reward: Reward{PrestigePoints: 3},
		},
	}
}
