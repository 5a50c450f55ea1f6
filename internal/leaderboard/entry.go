package leaderboard

import "time"

// ScoreType tags what an entry measures. The leaderboard is display
// only; nothing here feeds back into gameplay.
type ScoreType string

const (
	ScoreLifetimeClicks ScoreType = "lifetime_clicks"
	ScoreBestCPS        ScoreType = "best_cps"
	ScorePrestigeCount  ScoreType = "prestige_count"
)

func (t ScoreType) Valid() bool {
	switch t {
	case ScoreLifetimeClicks, ScoreBestCPS, ScorePrestigeCount:
		return true
	}
	return false
}

type Entry struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	Score      float64   `json:"score"`
	Type       ScoreType `json:"type"`
	RecordedAt time.Time `json:"recorded_at"`
}
