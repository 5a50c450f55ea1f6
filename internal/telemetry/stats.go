package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period            string            `json:"period"`
	EventCounts       map[EventType]int `json:"event_counts"`
	Clicks            int               `json:"clicks"`
	Purchases         int               `json:"purchases"`
	PurchasesByID     map[string]int    `json:"purchases_by_id"`
	Resets            int               `json:"resets"`
	AchievementsWon   int               `json:"achievements_won"`
	RewardsClaimed    int               `json:"rewards_claimed"`
	ClicksPerPurchase float64           `json:"clicks_per_purchase"`
}

// CalculateStats computes balance stats from events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:        since.Format("2006-01-02"),
		EventCounts:   make(map[EventType]int),
		PurchasesByID: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventClick:
			stats.Clicks++
		case EventUpgradePurchased:
			stats.Purchases++
			if id, ok := metadata["upgrade_id"].(string); ok {
				stats.PurchasesByID[id]++
			}
		case EventPrestige, EventAscension, EventTranscendence, EventEternity:
			stats.Resets++
		case EventAchievementUnlocked:
			stats.AchievementsWon++
		case EventQuestClaimed, EventChallengeClaimed, EventEventRewardClaimed:
			stats.RewardsClaimed++
		}
	}

	if stats.Purchases > 0 {
		stats.ClicksPerPurchase = float64(stats.Clicks) / float64(stats.Purchases)
	}

	return stats, nil
}
