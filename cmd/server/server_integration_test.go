package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/config"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/serverapp"
)

func TestServer_HealthExposesRequestID(t *testing.T) {
	app := newTestApp(t)

	res := app.request(http.MethodGet, "/healthz", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("/healthz expected 200, got %d body=%s", res.Code, res.Body.String())
	}
	if rid := strings.TrimSpace(res.Header().Get("X-Request-Id")); rid == "" {
		t.Fatalf("/healthz missing X-Request-Id header")
	}
}

func TestServer_ClickAndUpgradeFlow(t *testing.T) {
	app := newTestApp(t)

	stateRes := app.request(http.MethodGet, "/api/state", nil, "")
	if stateRes.Code != http.StatusOK {
		t.Fatalf("state expected 200, got %d body=%s", stateRes.Code, stateRes.Body.String())
	}
	if cost := app.upgradeCost(t, stateRes, "energy"); cost != 50 {
		t.Fatalf("expected energy to cost 50 on a fresh state, got %d", cost)
	}

	clickRes := app.json(http.MethodPost, "/api/click", nil)
	if clickRes.Code != http.StatusOK {
		t.Fatalf("click expected 200, got %d body=%s", clickRes.Code, clickRes.Body.String())
	}
	body := decodeBodyMap(t, clickRes)
	if clicks, _ := body["clicks"].(float64); clicks < 1 {
		t.Fatalf("expected at least one click after /api/click, got %v", body["clicks"])
	}

	cheatRes := app.json(http.MethodPost, "/api/cheat", map[string]any{"code": "motherlode"})
	if cheatRes.Code != http.StatusOK {
		t.Fatalf("cheat expected 200, got %d body=%s", cheatRes.Code, cheatRes.Body.String())
	}

	buyRes := app.json(http.MethodPost, "/api/upgrades/buy", map[string]any{"id": "energy"})
	if buyRes.Code != http.StatusOK {
		t.Fatalf("buy expected 200, got %d body=%s", buyRes.Code, buyRes.Body.String())
	}
	if cost := app.upgradeCost(t, buyRes, "energy"); cost != 62 {
		t.Fatalf("expected energy to cost 62 after one purchase, got %d", cost)
	}

	bulkRes := app.json(http.MethodPost, "/api/upgrades/buy-bulk", map[string]any{
		"id":     "energy",
		"amount": "max",
	})
	if bulkRes.Code != http.StatusOK {
		t.Fatalf("buy-bulk expected 200, got %d body=%s", bulkRes.Code, bulkRes.Body.String())
	}
}

func TestServer_SaveLoadRoundTrip(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 5; i++ {
		res := app.json(http.MethodPost, "/api/click", nil)
		if res.Code != http.StatusOK {
			t.Fatalf("click %d expected 200, got %d", i, res.Code)
		}
	}

	saveRes := app.json(http.MethodPost, "/api/save", nil)
	if saveRes.Code != http.StatusOK {
		t.Fatalf("save expected 200, got %d body=%s", saveRes.Code, saveRes.Body.String())
	}

	loadRes := app.json(http.MethodPost, "/api/load", nil)
	if loadRes.Code != http.StatusOK {
		t.Fatalf("load expected 200, got %d body=%s", loadRes.Code, loadRes.Body.String())
	}
	loadBody := decodeBodyMap(t, loadRes)
	if _, ok := loadBody["offline"]; !ok {
		t.Fatalf("load response missing offline report, body=%s", loadRes.Body.String())
	}
	state, ok := loadBody["state"].(map[string]any)
	if !ok {
		t.Fatalf("load response missing state, body=%s", loadRes.Body.String())
	}
	if lifetime, _ := state["lifetime_clicks"].(float64); lifetime < 5 {
		t.Fatalf("expected merged state to keep at least 5 lifetime clicks, got %v", state["lifetime_clicks"])
	}
}

func TestServer_LeaderboardRoundTrip(t *testing.T) {
	app := newTestApp(t)

	if res := app.json(http.MethodPost, "/api/click", nil); res.Code != http.StatusOK {
		t.Fatalf("click expected 200, got %d", res.Code)
	}

	postRes := app.json(http.MethodPost, "/api/leaderboard", map[string]any{
		"name": "landon",
		"type": "lifetime_clicks",
	})
	if postRes.Code != http.StatusOK {
		t.Fatalf("leaderboard post expected 200, got %d body=%s", postRes.Code, postRes.Body.String())
	}

	getRes := app.request(http.MethodGet, "/api/leaderboard?type=lifetime_clicks", nil, "")
	if getRes.Code != http.StatusOK {
		t.Fatalf("leaderboard get expected 200, got %d body=%s", getRes.Code, getRes.Body.String())
	}
	var entries []map[string]any
	if err := json.Unmarshal(getRes.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode leaderboard: %v body=%s", err, getRes.Body.String())
	}
	if len(entries) == 0 {
		t.Fatalf("expected at least one leaderboard entry")
	}
	if name, _ := entries[0]["player_name"].(string); name != "landon" {
		t.Fatalf("expected top entry for landon, got %v", entries[0])
	}
}

func TestServer_AudioSettingsRoundTrip(t *testing.T) {
	app := newTestApp(t)

	putRes := app.json(http.MethodPut, "/api/audio", map[string]any{
		"volume":        0.25,
		"sfx_enabled":   false,
		"music_enabled": true,
	})
	if putRes.Code != http.StatusOK {
		t.Fatalf("audio put expected 200, got %d body=%s", putRes.Code, putRes.Body.String())
	}

	getRes := app.request(http.MethodGet, "/api/audio", nil, "")
	if getRes.Code != http.StatusOK {
		t.Fatalf("audio get expected 200, got %d body=%s", getRes.Code, getRes.Body.String())
	}
	settings := decodeBodyMap(t, getRes)
	if vol, _ := settings["volume"].(float64); vol != 0.25 {
		t.Fatalf("expected volume 0.25 after round trip, got %v", settings["volume"])
	}
}

type testApp struct {
	handler http.Handler
	logs    *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.Default()
	cfg.Data.Dir = t.TempDir()

	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	srv, err := serverapp.New(context.Background(), serverapp.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("serverapp.New: %v", err)
	}
	t.Cleanup(func() {
		_ = srv.Close(context.Background())
	})

	return &testApp{handler: srv.Handler, logs: &logs}
}

func (a *testApp) json(method, path string, body any) *httptest.ResponseRecorder {
	if body == nil {
		return a.request(method, path, strings.NewReader("{}"), "application/json")
	}
	b, _ := json.Marshal(body)
	return a.request(method, path, bytes.NewReader(b), "application/json")
}

func (a *testApp) request(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) upgradeCost(t *testing.T, rec *httptest.ResponseRecorder, id string) int64 {
	t.Helper()
	body := decodeBodyMap(t, rec)
	upgrades, ok := body["upgrades"].([]any)
	if !ok {
		t.Fatalf("response missing upgrades, body=%s", rec.Body.String())
	}
	for _, raw := range upgrades {
		u, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if u["id"] == id {
			cost, _ := u["next_cost"].(float64)
			return int64(cost)
		}
	}
	t.Fatalf("upgrade %s not present in response, body=%s", id, rec.Body.String())
	return 0
}

func decodeBodyMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode json body failed: %v body=%s", err, rec.Body.String())
	}
	return out
}
