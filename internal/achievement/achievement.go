package achievement

// Snapshot is the view of game state that predicates see. It is a plain
// value so predicates stay pure and the achievement table never touches
// live engine state.
type Snapshot struct {
	Clicks         float64
	LifetimeClicks float64
	ClickPower     float64
	CPS            float64
	BestCPS        float64

	ManualClicks  int64
	UpgradesOwned int
	NodesOwned    int

	TotalPrestigePoints int64
	TotalPrestiges      int64
	TotalAscensions     int64
	TotalTranscendences int64
	TotalEternities     int64

	PlayTimeSeconds float64
}

// Predicate reports whether an achievement should unlock for a snapshot.
// Predicates are code, not data: they live in the registry and are
// re-attached by ID on load, never serialized.
type Predicate func(Snapshot) bool

// Achievement is the persisted record. Unlocked is monotonic: once true
// it never reverts, not even across tier resets.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	// Boost is an optional passive production bonus granted while
	// unlocked, e.g. 0.01 for +1%. Zero for trophy-only achievements.
	Boost    float64 `json:"boost"`
	Unlocked bool    `json:"unlocked"`
}
