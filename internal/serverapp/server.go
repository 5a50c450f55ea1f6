// Package serverapp wires the engine, session, persistence and HTTP
// surface into one runnable server.
package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/config"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/game"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/httpmw"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/leaderboard"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/save"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/server"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/session"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
)

type Options struct {
	Config *config.Config
	Clock  game.Clock
	Logger *log.Logger
}

type Server struct {
	Handler http.Handler
	App     *server.App

	session *session.Session
	store   *save.Store
	boards  leaderboard.Repository
}

// New builds the full server. The leaderboard backend follows the
// config: redis when an address is set, in-memory otherwise.
func New(ctx context.Context, opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Clock == nil {
		opts.Clock = game.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	cfg := opts.Config

	store, err := save.Open(filepath.Join(cfg.Data.Dir, "landonclicker.db"), opts.Logger)
	if err != nil {
		return nil, err
	}

	events := telemetry.NewMemoryRepository(0)
	engine := game.NewEngine(opts.Clock, cfg.Balance, events)

	sess := session.New(engine, store, cfg, opts.Logger)
	if err := sess.Start(ctx); err != nil {
		store.Close()
		return nil, err
	}

	var boards leaderboard.Repository
	if cfg.Redis.Addr != "" {
		redisRepo := leaderboard.NewRedisRepo(cfg.Redis.Addr)
		if err := redisRepo.Ping(ctx); err != nil {
			opts.Logger.Printf(`{"level":"warn","msg":"redis_unreachable_using_memory","error":%q}`, err.Error())
			boards = leaderboard.NewMemoryRepo()
		} else {
			boards = redisRepo
		}
	} else {
		boards = leaderboard.NewMemoryRepo()
	}

	app := &server.App{
		Session: sess,
		Engine:  engine,
		Store:   store,
		Boards:  boards,
		Events:  events,
		Logger:  opts.Logger,
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"service": "landonclicker",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("GET /_/admin/routes.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rr.List())
	})

	server.RegisterAPIRoutes(mux, rr, app)

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRecover(opts.Logger),
	)

	return &Server{
		Handler: handler,
		App:     app,
		session: sess,
		store:   store,
		boards:  boards,
	}, nil
}

// Close stops the session loop, writes a final save and releases the
// store and any leaderboard connection.
func (s *Server) Close(ctx context.Context) error {
	err := s.session.Close(ctx)
	if r, ok := s.boards.(*leaderboard.RedisRepo); ok {
		_ = r.Close()
	}
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	return err
}
