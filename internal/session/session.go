// Package session owns the live GameState: it runs the passive tick, the
// stats sampling cadence and the autosave loop, and funnels every
// mutation through the engine so the state is only ever replaced by
// fully-formed snapshots.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/config"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/game"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/save"
	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/telemetry"
)

type Session struct {
	engine *game.Engine
	store  *save.Store
	cfg    *config.Config
	logger *log.Logger

	mu      sync.RWMutex
	state   *game.GameState
	offline game.OfflineReport

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(engine *game.Engine, store *save.Store, cfg *config.Config, logger *log.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		engine: engine,
		store:  store,
		cfg:    cfg,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start loads and merges the persisted snapshot (falling open to a fresh
// state), computes the offline-earnings report and launches the tick
// loop. Offline earnings are credited only when the config says so;
// otherwise the report is surfaced for display and nothing is granted.
func (s *Session) Start(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	go s.run()
	return nil
}

// State returns the current snapshot. Snapshots are never mutated after
// installation, so callers may read it without further locking.
func (s *Session) State() *game.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OfflineReport returns the earnings computed at the last load.
func (s *Session) OfflineReport() game.OfflineReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offline
}

// Apply installs fn(current) as the new snapshot and returns it. All
// engine operations route through here, one at a time.
func (s *Session) Apply(fn func(*game.GameState) *game.GameState) *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

// Save writes the current snapshot. The snapshot is handed to the store
// fully formed; a tick landing immediately after simply produces the
// next snapshot.
func (s *Session) Save(ctx context.Context) error {
	st := s.State()
	if err := s.store.SaveState(ctx, st, s.engine.Clock.Now()); err != nil {
		return err
	}
	s.recordEvent(telemetry.EventSave)
	return nil
}

// Load reads, merges against current content and installs the result.
func (s *Session) Load(ctx context.Context) error {
	raw, err := s.store.LoadState(ctx)
	if err != nil {
		s.logger.Printf(`{"level":"warn","msg":"load_failed_starting_fresh","error":%q}`, err.Error())
		raw = nil
	}

	merged := s.engine.MergeSnapshot(raw)
	report := game.OfflineEarnings(merged, s.engine.Clock.Now())
	if raw != nil && s.cfg.Session.CreditOffline && report.Elapsed > 0 {
		merged = s.engine.Tick(merged, report.Elapsed)
	}

	s.mu.Lock()
	s.state = merged
	s.offline = report
	s.mu.Unlock()

	s.recordEvent(telemetry.EventLoad)
	return nil
}

// Close stops the tick loop and writes a final save.
func (s *Session) Close(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
	return s.Save(ctx)
}

func (s *Session) run() {
	defer close(s.done)

	tick := time.NewTicker(time.Duration(s.cfg.Session.TickMillis) * time.Millisecond)
	defer tick.Stop()
	sample := time.NewTicker(time.Duration(s.cfg.Session.SampleSeconds) * time.Second)
	defer sample.Stop()
	autosave := time.NewTicker(time.Duration(s.cfg.Session.AutosaveSeconds) * time.Second)
	defer autosave.Stop()

	// Elapsed time is measured between monotonic clock readings, never
	// assumed equal to the ticker interval.
	last := s.engine.Clock.Now()

	for {
		select {
		case <-s.stop:
			return
		case <-tick.C:
			now := s.engine.Clock.Now()
			elapsed := now.Sub(last)
			last = now
			s.Apply(func(st *game.GameState) *game.GameState {
				return s.engine.Tick(st, elapsed)
			})
		case <-sample.C:
			s.sample()
		case <-autosave.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Save(ctx); err != nil {
				s.logger.Printf(`{"level":"warn","msg":"autosave_failed","error":%q}`, err.Error())
			}
			cancel()
		}
	}
}

// sample appends one point to the historical series, keeping both capped.
func (s *Session) sample() {
	now := s.engine.Clock.Now()
	limit := s.cfg.Balance.SeriesCap
	s.Apply(func(st *game.GameState) *game.GameState {
		next := st.Clone()
		next.Stats.ClickHistory = appendCapped(next.Stats.ClickHistory, game.Sample{At: now, Value: next.Clicks}, limit)
		next.Stats.CPSHistory = appendCapped(next.Stats.CPSHistory, game.Sample{At: now, Value: next.CPS}, limit)
		return next
	})
}

func appendCapped(series []game.Sample, s game.Sample, limit int) []game.Sample {
	series = append(series, s)
	if limit > 0 && len(series) > limit {
		series = series[len(series)-limit:]
	}
	return series
}

func (s *Session) recordEvent(t telemetry.EventType) {
	if s.engine.Telemetry != nil {
		_ = s.engine.Telemetry.RecordEvent(t, nil)
	}
}
