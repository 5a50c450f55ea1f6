package quest

import "time"

// Cadence tags a challenge as daily or weekly.
type Cadence string

const (
	CadenceDaily  Cadence = "daily"
	CadenceWeekly Cadence = "weekly"
)

// Challenge is a single-counter, time-boxed goal. Progress is measured
// relative to Baseline, the metric value captured when the window opened,
// so a regenerated challenge genuinely starts at zero. An expired
// challenge is replaced with a fresh instance; unclaimed rewards on an
// expired window are forfeited.
type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Metric      Metric    `json:"metric"`
	Target      float64   `json:"target"`
	Baseline    float64   `json:"baseline"`
	Current     float64   `json:"current"`
	Cadence     Cadence   `json:"cadence"`
	ExpiresAt   time.Time `json:"expires_at"`
	Completed   bool      `json:"completed"`
	Claimed     bool      `json:"claimed"`
	Reward      Reward    `json:"reward"`
}

func (c *Challenge) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Regenerate returns a fresh unclaimed instance of the challenge with a
// new expiry and a new baseline.
func (c Challenge) Regenerate(baseline float64, expiresAt time.Time) Challenge {
	c.Baseline = baseline
	c.Current = 0
	c.Completed = false
	c.Claimed = false
	c.ExpiresAt = expiresAt
	return c
}

// NextDailyBoundary is the upcoming local midnight.
func NextDailyBoundary(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// NextWeeklyBoundary is the upcoming Monday local midnight.
func NextWeeklyBoundary(now time.Time) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return midnight.AddDate(0, 0, days)
}

// Boundary picks the next expiry for the challenge's cadence.
func (c Challenge) Boundary(now time.Time) time.Time {
	if c.Cadence == CadenceWeekly {
		return NextWeeklyBoundary(now)
	}
	return NextDailyBoundary(now)
}
