package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/format"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/game"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/leaderboard"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/save"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/session"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/tree"
)

// App holds what the handlers depend on.
type App struct {
	Session *session.Session
	Engine  *game.Engine
	Store   *save.Store
	Boards  leaderboard.Repository
	Events  telemetry.Repository
	Logger  *log.Logger
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// stateView is the derived read model the presentation layer renders.
type stateView struct {
	Clicks         float64 `json:"clicks"`
	LifetimeClicks float64 `json:"lifetime_clicks"`
	ClickPower     float64 `json:"click_power"`
	CPS            float64 `json:"cps"`

	ClicksDisplay     string `json:"clicks_display"`
	LifetimeDisplay   string `json:"lifetime_display"`
	ClickPowerDisplay string `json:"click_power_display"`
	CPSDisplay        string `json:"cps_display"`

	PrestigePoints           int64 `json:"prestige_points"`
	TotalPrestigePoints      int64 `json:"total_prestige_points"`
	AscensionPoints          int64 `json:"ascension_points"`
	TotalAscensionPoints     int64 `json:"total_ascension_points"`
	TranscendencePoints      int64 `json:"transcendence_points"`
	TotalTranscendencePoints int64 `json:"total_transcendence_points"`
	EternityPoints           int64 `json:"eternity_points"`
	TotalEternityPoints      int64 `json:"total_eternity_points"`

	TotalPrestiges      int64 `json:"total_prestiges"`
	TotalAscensions     int64 `json:"total_ascensions"`
	TotalTranscendences int64 `json:"total_transcendences"`
	TotalEternities     int64 `json:"total_eternities"`

	PrestigeGain      int64 `json:"prestige_gain"`
	AscensionGain     int64 `json:"ascension_gain"`
	TranscendenceGain int64 `json:"transcendence_gain"`
	EternityGain      int64 `json:"eternity_gain"`

	Upgrades []upgradeView   `json:"upgrades"`
	State    *game.GameState `json:"state"`

	LastSaved string `json:"last_saved"`
}

// upgradeView decorates an upgrade with its live pricing.
type upgradeView struct {
	ID            string `json:"id"`
	NextCost      int64  `json:"next_cost"`
	MaxAffordable int    `json:"max_affordable"`
}

func (app *App) view(s *game.GameState) stateView {
	v := stateView{
		Clicks:         s.Clicks,
		LifetimeClicks: s.LifetimeClicks,
		ClickPower:     s.ClickPower,
		CPS:            s.CPS,

		ClicksDisplay:     format.Number(s.Clicks),
		LifetimeDisplay:   format.Number(s.LifetimeClicks),
		ClickPowerDisplay: format.Number(s.ClickPower),
		CPSDisplay:        format.Number(s.CPS),

		PrestigePoints:           s.PrestigePoints,
		TotalPrestigePoints:      s.TotalPrestigePoints,
		AscensionPoints:          s.AscensionPoints,
		TotalAscensionPoints:     s.TotalAscensionPoints,
		TranscendencePoints:      s.TranscendencePoints,
		TotalTranscendencePoints: s.TotalTranscendencePoints,
		EternityPoints:           s.EternityPoints,
		TotalEternityPoints:      s.TotalEternityPoints,

		TotalPrestiges:      s.TotalPrestiges,
		TotalAscensions:     s.TotalAscensions,
		TotalTranscendences: s.TotalTranscendences,
		TotalEternities:     s.TotalEternities,

		PrestigeGain:      app.Engine.PrestigeGain(s),
		AscensionGain:     app.Engine.AscensionGain(s),
		TranscendenceGain: app.Engine.TranscendenceGain(s),
		EternityGain:      app.Engine.EternityGain(s),

		State:     s,
		LastSaved: format.Ago(s.Stats.LastOnlineTime),
	}
	for _, u := range s.Upgrades {
		v.Upgrades = append(v.Upgrades, upgradeView{
			ID:            u.ID,
			NextCost:      game.UpgradeCost(s, u.ID),
			MaxAffordable: game.MaxAffordable(s, u.ID, app.Engine.Balance.BulkCeiling),
		})
	}
	return v
}

func (app *App) writeState(w http.ResponseWriter, s *game.GameState) {
	writeJSON(w, app.view(s))
}

// bulkAmount accepts a positive integer or the string "max".
type bulkAmount struct {
	N   int
	Max bool
}

func (a *bulkAmount) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.ToLower(bytes.Trim(b, `"`)), []byte("max")) {
		a.Max = true
		return nil
	}
	return json.Unmarshal(b, &a.N)
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	engine := app.Engine
	sess := app.Session

	Handle(mux, rr, "GET /api/state", "Current read model", "", func(w http.ResponseWriter, r *http.Request) {
		app.writeState(w, sess.State())
	})

	Handle(mux, rr, "POST /api/click", "Apply one manual click", "", func(w http.ResponseWriter, r *http.Request) {
		app.writeState(w, sess.Apply(engine.Click))
	})

	Handle(mux, rr, "POST /api/upgrades/buy", "Buy one upgrade unit", `{"id":"energy"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.writeState(w, sess.Apply(func(s *game.GameState) *game.GameState {
			return engine.BuyUpgrade(s, body.ID)
		}))
	})

	Handle(mux, rr, "POST /api/upgrades/buy-bulk", "Buy several units in one transition", `{"id":"energy","amount":"max"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID     string     `json:"id"`
			Amount bulkAmount `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		amount := body.Amount.N
		if body.Amount.Max {
			amount = game.AmountMax
		}
		app.writeState(w, sess.Apply(func(s *game.GameState) *game.GameState {
			return engine.BuyUpgradeBulk(s, body.ID, amount)
		}))
	})

	Handle(mux, rr, "POST /api/tree/buy", "Buy a tree node", `{"tier":"skill","id":"sk_strong_fingers"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Tier string `json:"tier"`
			ID   string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.writeState(w, sess.Apply(func(s *game.GameState) *game.GameState {
			return engine.BuyTreeNode(s, tree.Tier(body.Tier), body.ID)
		}))
	})

	Handle(mux, rr, "POST /api/prestige", "Prestige reset", "", func(w http.ResponseWriter, r *http.Request) {
		app.writeState(w, sess.Apply(engine.Prestige))
	})
	Handle(mux, rr, "POST /api/ascend", "Ascension reset", "", func(w http.ResponseWriter, r *http.Request) {
		app.writeState(w, sess.Apply(engine.Ascend))
	})
	Handle(mux, rr, "POST /api/transcend", "Transcendence reset", "", func(w http.ResponseWriter, r *http.Request) {
		app.writeState(w, sess.Apply(engine.Transcend))
	})
	Handle(mux, rr, "POST /api/eternity", "Eternity reset", "", func(w http.ResponseWriter, r *http.Request) {
		app.writeState(w, sess.Apply(engine.EternityReset))
	})
	Handle(mux, rr, "POST /api/reset-all", "Wipe everything", "", func(w http.ResponseWriter, r *http.Request) {
		app.writeState(w, sess.Apply(engine.ResetAll))
	})

	Handle(mux, rr, "POST /api/quests/claim", "Claim a completed quest", `{"id":"getting_started"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.writeState(w, sess.Apply(func(s *game.GameState) *game.GameState {
			return engine.ClaimQuest(s, body.ID)
		}))
	})

	Handle(mux, rr, "POST /api/challenges/claim", "Claim a completed challenge", `{"id":"daily_grind"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.writeState(w, sess.Apply(func(s *game.GameState) *game.GameState {
			return engine.ClaimChallenge(s, body.ID)
		}))
	})

	Handle(mux, rr, "POST /api/events/claim", "Claim the active event bundle", `{"id":"click_frenzy"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.writeState(w, sess.Apply(func(s *game.GameState) *game.GameState {
			return engine.ClaimEventReward(s, body.ID)
		}))
	})

	Handle(mux, rr, "GET /api/leaderboard", "Top scores", "", func(w http.ResponseWriter, r *http.Request) {
		scoreType := leaderboard.ScoreType(r.URL.Query().Get("type"))
		if !scoreType.Valid() {
			scoreType = leaderboard.ScoreLifetimeClicks
		}
		limit := 10
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}
		entries, err := app.Boards.Top(r.Context(), scoreType, limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, entries)
	})

	Handle(mux, rr, "POST /api/leaderboard", "Record a score from the current state", `{"name":"landon","type":"best_cps"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
			Type string `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if body.Name == "" {
			http.Error(w, "name is required", 400)
			return
		}
		scoreType := leaderboard.ScoreType(body.Type)
		if !scoreType.Valid() {
			http.Error(w, "unknown score type", 400)
			return
		}

		s := sess.State()
		entry := leaderboard.Entry{
			ID:         uuid.NewString(),
			PlayerName: body.Name,
			Score:      scoreFor(s, scoreType),
			Type:       scoreType,
			RecordedAt: engine.Clock.Now(),
		}
		if err := app.Boards.Add(r.Context(), entry); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, entry)
	})

	Handle(mux, rr, "POST /api/save", "Persist the current state", "", func(w http.ResponseWriter, r *http.Request) {
		if err := sess.Save(r.Context()); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		app.writeState(w, sess.State())
	})

	Handle(mux, rr, "POST /api/load", "Reload and merge the persisted state", "", func(w http.ResponseWriter, r *http.Request) {
		if err := sess.Load(r.Context()); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{
			"state":   app.view(sess.State()),
			"offline": sess.OfflineReport(),
		})
	})

	Handle(mux, rr, "GET /api/offline", "Offline earnings computed at last load", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, sess.OfflineReport())
	})

	Handle(mux, rr, "POST /api/cheat", "Apply a debug code", `{"code":"motherlode"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.writeState(w, sess.Apply(func(s *game.GameState) *game.GameState {
			return engine.Cheat(s, body.Code)
		}))
	})

	Handle(mux, rr, "GET /api/audio", "Audio settings", "", func(w http.ResponseWriter, r *http.Request) {
		settings, err := app.Store.LoadAudio(r.Context())
		if err != nil {
			app.Logger.Printf(`{"level":"warn","msg":"audio_load_failed","error":%q}`, err.Error())
		}
		writeJSON(w, settings)
	})

	Handle(mux, rr, "PUT /api/audio", "Update audio settings", `{"volume":0.5,"sfx_enabled":true,"music_enabled":false}`, func(w http.ResponseWriter, r *http.Request) {
		var settings save.AudioSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if err := app.Store.SaveAudio(r.Context(), settings, engine.Clock.Now()); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, settings)
	})

	Handle(mux, rr, "GET /api/telemetry/stats", "Engine event stats", "", func(w http.ResponseWriter, r *http.Request) {
		since := time.Now().Add(-24 * time.Hour)
		if raw := r.URL.Query().Get("since"); raw != "" {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				since = t
			}
		}
		events, err := app.Events.GetEvents(since, nil)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, stats)
	})
}

func scoreFor(s *game.GameState, t leaderboard.ScoreType) float64 {
	switch t {
	case leaderboard.ScoreLifetimeClicks:
		return s.LifetimeClicks
	case leaderboard.ScoreBestCPS:
		return s.Stats.BestCPS
	case leaderboard.ScorePrestigeCount:
		return float64(s.TotalPrestiges)
	}
	return 0
}
