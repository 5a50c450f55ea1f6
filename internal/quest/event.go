package quest

import "time"

// Event is one entry of the special-event rotation. While an event is
// active its multipliers stack multiplicatively on top of every other
// bonus. Exactly one event is active at any wall-clock time.
type Event struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ClickMult   float64 `json:"click_mult"`
	CPSMult     float64 `json:"cps_mult"`
	// PrestigeMult scales the prestige gain formula while active.
	PrestigeMult float64 `json:"prestige_mult"`
	Challenges   []Challenge `json:"challenges"`
	Reward       Reward      `json:"reward"`
	Claimed      bool        `json:"claimed"`
}

// ActiveIndex selects which pool entry is live at now, with deterministic
// window boundaries of length window.
func ActiveIndex(now time.Time, window time.Duration, poolSize int) int {
	if poolSize <= 0 || window <= 0 {
		return 0
	}
	n := now.Unix() / int64(window/time.Second)
	idx := int(n % int64(poolSize))
	if idx < 0 {
		idx += poolSize
	}
	return idx
}

// WindowBounds returns the [start, end) of the event window containing now.
func WindowBounds(now time.Time, window time.Duration) (time.Time, time.Time) {
	secs := int64(window / time.Second)
	if secs <= 0 {
		return now, now
	}
	start := (now.Unix() / secs) * secs
	return time.Unix(start, 0), time.Unix(start+secs, 0)
}
