package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	cklog "github.com/msto63/chomsky/foundation/core/log"
	"github.com/msto63/chomsky/foundation/pda"
	"github.com/msto63/chomsky/foundation/pda/automaton"
	"github.com/msto63/chomsky/foundation/pda/grammar"
	"github.com/msto63/chomsky/foundation/pda/registry"
	"github.com/msto63/chomsky/internal/chomsky/store"
	"github.com/msto63/chomsky/pkg/core/cache"
	"github.com/msto63/chomsky/pkg/core/logging"
)

// ErrPersistenceDisabled is returned for history operations when no store is configured
var ErrPersistenceDisabled = errors.New("run persistence is disabled")

// Recognition is the service-level outcome of a recognition request
type Recognition struct {
	RunID  string      `json:"run_id"`
	Cached bool        `json:"cached,omitempty"`
	Result *pda.Result `json:"result"`
}

// Config holds configuration for the recognition service
type Config struct {
	GrammarDir        string
	StorePath         string
	EnablePersistence bool
	CacheResults      bool
	ResultTTL         time.Duration
	MaxStackDepth     int
	MaxSteps          int
	MaxInputLength    int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		GrammarDir:        "./grammars",
		StorePath:         "./data/runs.db",
		EnablePersistence: true,
		CacheResults:      true,
		ResultTTL:         10 * time.Minute,
	}
}

// Service ties the recognition engine to run history and result caching
type Service struct {
	engine *pda.Engine
	store  store.RunStore
	cache  *cache.ResultsCache
	logger *cklog.Logger
}

// NewService creates a new recognition service
func NewService(cfg Config) (*Service, error) {
	logger := logging.NewSimpleLogger("chomsky")

	engine := pda.NewEngine(pda.Options{
		Logger:         logger,
		MaxStackDepth:  cfg.MaxStackDepth,
		MaxSteps:       cfg.MaxSteps,
		MaxInputLength: cfg.MaxInputLength,
	})

	svc := &Service{
		engine: engine,
		logger: logger,
	}

	// Initialize SQLite store if enabled
	if cfg.EnablePersistence {
		runStore, err := store.NewSQLiteRunStore(store.SQLiteRunConfig{
			Path: cfg.StorePath,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create run store: %w", err)
		}
		svc.store = runStore
		logger.Info("run persistence enabled", cklog.Fields{"path": cfg.StorePath})
	}

	if cfg.CacheResults {
		svc.cache = cache.NewResultsCache(cache.ResultsConfig{
			ResultTTL: cfg.ResultTTL,
		})
	}

	return svc, nil
}

// Recognize runs the given input against a registered grammar, records the
// run in history and serves repeated requests from the result cache.
func (s *Service) Recognize(ctx context.Context, grammarName, input string) (*Recognition, error) {
	runID := uuid.NewString()

	if s.cache != nil {
		if cached, ok := s.cache.Get(grammarName, input); ok {
			if result, ok := cached.(*pda.Result); ok {
				s.logger.Debug("result cache hit", cklog.Fields{
					"run_id":  runID,
					"grammar": grammarName,
				})
				return &Recognition{RunID: runID, Cached: true, Result: result}, nil
			}
		}
	}

	result, err := s.engine.Recognize(grammarName, input)
	if err != nil {
		return nil, err
	}

	rec := &Recognition{RunID: runID, Result: result}

	if s.cache != nil {
		s.cache.Set(grammarName, input, result)
	}
	s.persist(ctx, rec, input)

	s.logger.Audit("recognition request served", cklog.Fields{
		"run_id":   runID,
		"grammar":  grammarName,
		"accepted": result.Accepted,
		"tokens":   result.TokenCount,
		"steps":    result.Steps,
	})

	return rec, nil
}

// RecognizeWithTrace runs recognition while capturing every automaton event.
// Traced runs bypass the result cache but are still recorded in history.
func (s *Service) RecognizeWithTrace(ctx context.Context, grammarName, input string) (*Recognition, []automaton.Event, error) {
	runID := uuid.NewString()

	var events []automaton.Event
	result, err := s.engine.RecognizeWithTrace(grammarName, input, func(ev automaton.Event) {
		events = append(events, ev)
	})
	if err != nil {
		return nil, nil, err
	}

	rec := &Recognition{RunID: runID, Result: result}
	s.persist(ctx, rec, input)

	s.logger.Audit("recognition traced", cklog.Fields{
		"run_id":   runID,
		"grammar":  grammarName,
		"accepted": result.Accepted,
		"events":   len(events),
	})

	return rec, events, nil
}

// persist writes a run record, logging instead of failing the request
func (s *Service) persist(ctx context.Context, rec *Recognition, input string) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveRun(ctx, toRunRecord(rec, input)); err != nil {
		s.logger.WarnWithErr("failed to persist run", err, cklog.Fields{"run_id": rec.RunID})
	}
}

// toRunRecord converts a service Recognition to a store RunRecord
func toRunRecord(rec *Recognition, input string) *store.RunRecord {
	r := rec.Result
	return &store.RunRecord{
		ID:         rec.RunID,
		Grammar:    r.Grammar,
		Goal:       r.Goal,
		Input:      input,
		Accepted:   r.Accepted,
		Cursor:     r.Cursor,
		TokenCount: r.TokenCount,
		Steps:      r.Steps,
		MaxDepth:   r.MaxDepth,
		DurationMS: float64(r.Duration.Microseconds()) / 1000.0,
		FailReason: r.FailReason,
	}
}

// LoadGrammarFile loads a grammar definition file and registers it
func (s *Service) LoadGrammarFile(path string) (*grammar.Grammar, error) {
	return s.engine.LoadGrammarFile(path)
}

// CheckGrammarFile validates a grammar definition file without registering it
func (s *Service) CheckGrammarFile(path string) (*grammar.Grammar, error) {
	return s.engine.CheckGrammarFile(path)
}

// LoadGrammarDir loads every grammar definition file found in dir.
// Files that fail to load are logged and skipped.
func (s *Service) LoadGrammarDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read grammar directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".toml", ".yaml", ".yml":
		default:
			continue
		}

		path := filepath.Join(dir, entry.Name())
		g, err := s.engine.LoadGrammarFile(path)
		if err != nil {
			s.logger.WarnWithErr("failed to load grammar", err, cklog.Fields{"file": entry.Name()})
			continue
		}
		s.logger.Debug("grammar loaded", cklog.Fields{
			"grammar": g.Name(),
			"file":    entry.Name(),
		})
		loaded++
	}

	return loaded, nil
}

// Grammars lists all registered grammars
func (s *Service) Grammars() []registry.Info {
	return s.engine.Grammars()
}

// GetRun retrieves a single run from history
func (s *Service) GetRun(ctx context.Context, id string) (*store.RunRecord, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}
	return s.store.GetRun(ctx, id)
}

// ListRuns retrieves run history based on filter criteria
func (s *Service) ListRuns(ctx context.Context, filter store.RunFilter) ([]*store.RunRecord, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}
	return s.store.ListRuns(ctx, filter)
}

// RunStats returns run-history statistics
func (s *Service) RunStats(ctx context.Context) (map[string]interface{}, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}
	return s.store.Stats(ctx)
}

// PruneRuns removes history entries older than the given duration
func (s *Service) PruneRuns(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.store == nil {
		return 0, ErrPersistenceDisabled
	}
	return s.store.Prune(ctx, olderThan)
}

// CacheStats returns result-cache statistics, or nil when caching is disabled
func (s *Service) CacheStats() map[string]interface{} {
	if s.cache == nil {
		return nil
	}
	return s.cache.Stats()
}

// Engine exposes the underlying recognition engine
func (s *Service) Engine() *pda.Engine {
	return s.engine
}

// Store exposes the underlying run store, nil when persistence is disabled
func (s *Service) Store() store.RunStore {
	return s.store
}

// Close closes the service and releases resources
func (s *Service) Close() error {
	var errs []error
	if s.cache != nil {
		s.cache.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
