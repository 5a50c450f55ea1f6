package upgrade

// Kind selects which derived stat an upgrade feeds.
type Kind string

const (
	KindClickPower  Kind = "click_power"
	KindAutoClicker Kind = "auto_clicker"
)

// Upgrade is a repeatable purchase. Owned is the only mutable field;
// everything else is content-table data with a stable ID.
type Upgrade struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BaseCost    int64   `json:"base_cost"`
	CostMult    float64 `json:"cost_mult"` // strictly > 1 so the cost curve is increasing
	Effect      float64 `json:"effect"`
	Kind        Kind    `json:"kind"`
	Owned       int     `json:"owned"`
}
