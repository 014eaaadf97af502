package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	"github.com/msto63/chomsky/foundation/pda/grammar"
	"github.com/msto63/chomsky/internal/chomsky/store"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GrammarDir != "./grammars" {
		t.Errorf("GrammarDir = %v, want ./grammars", cfg.GrammarDir)
	}
	if cfg.StorePath != "./data/runs.db" {
		t.Errorf("StorePath = %v, want ./data/runs.db", cfg.StorePath)
	}
	if !cfg.EnablePersistence {
		t.Error("EnablePersistence should default to true")
	}
	if !cfg.CacheResults {
		t.Error("CacheResults should default to true")
	}
	if cfg.ResultTTL != 10*time.Minute {
		t.Errorf("ResultTTL = %v, want 10m", cfg.ResultTTL)
	}
}

func TestService_Recognize(t *testing.T) {
	svc := newTestService(t, false)
	defer svc.Close()
	ctx := context.Background()

	rec, err := svc.Recognize(ctx, "balanced", "a a b b")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}

	if len(rec.RunID) != 36 {
		t.Errorf("RunID = %q, want UUID format", rec.RunID)
	}
	if rec.Cached {
		t.Error("first run should not be cached")
	}
	if !rec.Result.Accepted {
		t.Error("input should be accepted")
	}
	if rec.Result.Steps != 11 {
		t.Errorf("Steps = %v, want 11", rec.Result.Steps)
	}

	rejected, err := svc.Recognize(ctx, "balanced", "a b b")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if rejected.Result.Accepted {
		t.Error("input should be rejected")
	}
	if rejected.Result.FailReason != "stopped at token 2 of 3" {
		t.Errorf("FailReason = %q, want 'stopped at token 2 of 3'", rejected.Result.FailReason)
	}
}

func TestService_Recognize_CacheHit(t *testing.T) {
	svc := newTestService(t, false)
	defer svc.Close()
	ctx := context.Background()

	first, err := svc.Recognize(ctx, "balanced", "a b")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}

	second, err := svc.Recognize(ctx, "balanced", "a b")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}

	if !second.Cached {
		t.Error("repeated run should be served from cache")
	}
	if second.Result != first.Result {
		t.Error("cached run should reuse the stored result")
	}
	if second.RunID == first.RunID {
		t.Error("each request should get its own run ID")
	}

	stats := svc.CacheStats()
	if stats == nil {
		t.Fatal("CacheStats() should not be nil when caching is enabled")
	}
	if stats["hits"].(int64) < 1 {
		t.Errorf("cache hits = %v, want >= 1", stats["hits"])
	}
}

func TestService_Recognize_UnknownGrammar(t *testing.T) {
	svc := newTestService(t, false)
	defer svc.Close()

	_, err := svc.Recognize(context.Background(), "missing", "a b")
	if err == nil {
		t.Fatal("Recognize() should fail for unknown grammar")
	}
	if !ckerrors.HasCode(err, ckerrors.CodeNotFound) {
		t.Errorf("error code = %v, want NOT_FOUND", ckerrors.GetCode(err))
	}
}

func TestService_RecognizeWithTrace(t *testing.T) {
	svc := newTestService(t, true)
	defer svc.Close()
	ctx := context.Background()

	rec, events, err := svc.RecognizeWithTrace(ctx, "balanced", "a b")
	if err != nil {
		t.Fatalf("RecognizeWithTrace() error = %v", err)
	}

	if !rec.Result.Accepted {
		t.Error("input should be accepted")
	}
	if len(events) != 9 {
		t.Errorf("events = %v, want 9", len(events))
	}

	// Traced runs still land in history
	record, err := svc.GetRun(ctx, rec.RunID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if record.Input != "a b" {
		t.Errorf("Input = %q, want 'a b'", record.Input)
	}
}

func TestService_Persistence(t *testing.T) {
	svc := newTestService(t, true)
	defer svc.Close()
	ctx := context.Background()

	accepted, err := svc.Recognize(ctx, "balanced", "a b")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if _, err := svc.Recognize(ctx, "balanced", "a b b"); err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}

	runs, err := svc.ListRuns(ctx, store.RunFilter{})
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() count = %v, want 2", len(runs))
	}

	record, err := svc.GetRun(ctx, accepted.RunID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if record.Grammar != "balanced" || record.Input != "a b" {
		t.Errorf("record = %v/%q, want balanced/'a b'", record.Grammar, record.Input)
	}
	if !record.Accepted {
		t.Error("record should be accepted")
	}

	acceptedOnly, _ := svc.ListRuns(ctx, store.RunFilter{AcceptedOnly: true})
	if len(acceptedOnly) != 1 {
		t.Errorf("AcceptedOnly count = %v, want 1", len(acceptedOnly))
	}

	stats, err := svc.RunStats(ctx)
	if err != nil {
		t.Fatalf("RunStats() error = %v", err)
	}
	if stats["total_runs"].(int64) != 2 {
		t.Errorf("total_runs = %v, want 2", stats["total_runs"])
	}
}

func TestService_Persistence_CacheHitNotRecorded(t *testing.T) {
	svc := newTestService(t, true)
	defer svc.Close()
	ctx := context.Background()

	svc.Recognize(ctx, "balanced", "a b")
	svc.Recognize(ctx, "balanced", "a b")

	runs, _ := svc.ListRuns(ctx, store.RunFilter{})
	if len(runs) != 1 {
		t.Errorf("history count = %v, want 1 (cache hits are not engine runs)", len(runs))
	}
}

func TestService_HistoryDisabled(t *testing.T) {
	svc := newTestService(t, false)
	defer svc.Close()
	ctx := context.Background()

	if _, err := svc.GetRun(ctx, "any"); !errors.Is(err, ErrPersistenceDisabled) {
		t.Errorf("GetRun() error = %v, want ErrPersistenceDisabled", err)
	}
	if _, err := svc.ListRuns(ctx, store.RunFilter{}); !errors.Is(err, ErrPersistenceDisabled) {
		t.Errorf("ListRuns() error = %v, want ErrPersistenceDisabled", err)
	}
	if _, err := svc.RunStats(ctx); !errors.Is(err, ErrPersistenceDisabled) {
		t.Errorf("RunStats() error = %v, want ErrPersistenceDisabled", err)
	}
	if _, err := svc.PruneRuns(ctx, time.Hour); !errors.Is(err, ErrPersistenceDisabled) {
		t.Errorf("PruneRuns() error = %v, want ErrPersistenceDisabled", err)
	}
	if svc.Store() != nil {
		t.Error("Store() should be nil when persistence is disabled")
	}
}

func TestService_LoadGrammarDir(t *testing.T) {
	svc, err := NewService(Config{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	defer svc.Close()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "balanced.toml"), balancedTOML)
	writeFile(t, filepath.Join(dir, "pair.yaml"), pairYAML)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a grammar")
	writeFile(t, filepath.Join(dir, "broken.toml"), "name = \"broken")

	loaded, err := svc.LoadGrammarDir(dir)
	if err != nil {
		t.Fatalf("LoadGrammarDir() error = %v", err)
	}
	if loaded != 2 {
		t.Errorf("loaded = %v, want 2", loaded)
	}
	if len(svc.Grammars()) != 2 {
		t.Errorf("Grammars() count = %v, want 2", len(svc.Grammars()))
	}

	// Missing directory is an error
	if _, err := svc.LoadGrammarDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("LoadGrammarDir() should fail for missing directory")
	}
}

func TestService_CacheDisabled(t *testing.T) {
	svc, err := NewService(Config{CacheResults: false})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	defer svc.Close()
	registerBalanced(t, svc)
	ctx := context.Background()

	svc.Recognize(ctx, "balanced", "a b")
	rec, _ := svc.Recognize(ctx, "balanced", "a b")
	if rec.Cached {
		t.Error("run should not be cached when caching is disabled")
	}
	if svc.CacheStats() != nil {
		t.Error("CacheStats() should be nil when caching is disabled")
	}
}

// Helpers

const balancedTOML = `name = "balanced"
goal = "S"

[[rules]]
name = "S"
productions = [
    ["'a'", "S", "'b'"],
    [],
]
`

const pairYAML = `name: pair
goal: S
rules:
  - name: S
    productions:
      - ["'a'", "'b'"]
`

func newTestService(t *testing.T, persist bool) *Service {
	t.Helper()

	cfg := Config{CacheResults: true, ResultTTL: time.Minute}
	if persist {
		cfg.EnablePersistence = true
		cfg.StorePath = filepath.Join(t.TempDir(), "runs.db")
	}

	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	registerBalanced(t, svc)
	return svc
}

func registerBalanced(t *testing.T, svc *Service) {
	t.Helper()

	g, err := grammar.NewBuilder("balanced").
		Goal("S").
		Rule("S",
			grammar.Prod(grammar.Terminal("a"), grammar.NonTerminal("S"), grammar.Terminal("b")),
			grammar.Epsilon(),
		).
		Build()
	if err != nil {
		t.Fatalf("failed to build grammar: %v", err)
	}
	if err := svc.Engine().Register(g); err != nil {
		t.Fatalf("failed to register grammar: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
