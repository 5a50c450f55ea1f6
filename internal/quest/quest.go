package quest

// Metric names the state field a progress counter reads. The tracker in
// internal/game resolves these against the live state.
type Metric string

const (
	MetricLifetimeClicks  Metric = "lifetime_clicks"
	MetricManualClicks    Metric = "manual_clicks"
	MetricClickPower      Metric = "click_power"
	MetricCPS             Metric = "cps"
	MetricUpgradesOwned   Metric = "upgrades_owned"
	MetricNodesOwned      Metric = "nodes_owned"
	MetricTotalPrestiges  Metric = "total_prestiges"
	MetricTotalAscensions Metric = "total_ascensions"
)

// Reward is the payload granted exactly once at claim time.
type Reward struct {
	Clicks          float64 `json:"clicks,omitempty"`
	PrestigePoints  int64   `json:"prestige_points,omitempty"`
	AscensionPoints int64   `json:"ascension_points,omitempty"`
}

// Step is one goal within a quest. Current is recomputed from state by
// the tracker; it is never incremented by hand.
type Step struct {
	Metric  Metric  `json:"metric"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

func (s Step) Complete() bool { return s.Current >= s.Target }

// Quest is an ordered sequence of steps with a one-time reward.
// Claimed is terminal.
type Quest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
	Completed   bool   `json:"completed"`
	Claimed     bool   `json:"claimed"`
	Reward      Reward `json:"reward"`
}

// IsComplete checks if every step has met its target.
func (q *Quest) IsComplete() bool {
	for _, s := range q.Steps {
		if !s.Complete() {
			return false
		}
	}
	return len(q.Steps) > 0
}
