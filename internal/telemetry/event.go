package telemetry

import "time"

// EventType names an engine event. The presentation layer may map these
// to audio cues or toasts; the engine never depends on whether anything
// listens.
type EventType string

const (
	EventClick               EventType = "click"
	EventUpgradePurchased    EventType = "upgrade_purchased"
	EventNodePurchased       EventType = "node_purchased"
	EventPrestige            EventType = "prestige"
	EventAscension           EventType = "ascension"
	EventTranscendence       EventType = "transcendence"
	EventEternity            EventType = "eternity"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventQuestClaimed        EventType = "quest_claimed"
	EventChallengeClaimed    EventType = "challenge_claimed"
	EventEventRewardClaimed  EventType = "event_reward_claimed"
	EventSave                EventType = "save"
	EventLoad                EventType = "load"
	EventCheatRejected       EventType = "cheat_rejected"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
