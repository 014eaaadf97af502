package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/chomsky/internal/chomsky/service"
)

// newWorkbench builds a fully wired service with run history in a
// fresh SQLite database. Returns the service and the database path.
func newWorkbench(t *testing.T, grammarDir string) (*service.Service, string) {
	t.Helper()

	cfg := service.DefaultConfig()
	cfg.GrammarDir = grammarDir
	cfg.StorePath = filepath.Join(t.TempDir(), "runs.db")
	cfg.EnablePersistence = true
	cfg.CacheResults = true
	cfg.ResultTTL = time.Minute

	svc, err := service.NewService(cfg)
	requireNoError(t, err, "NewService failed")
	t.Cleanup(func() { svc.Close() })

	return svc, cfg.StorePath
}

// writeGrammarFile writes a grammar source into dir and returns its path
func writeGrammarFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write grammar file %s: %v", name, err)
	}
	return path
}

// testContext returns a context with timeout for tests
func testContext(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), timeout)
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// logTestStart logs the start of a test
func logTestStart(t *testing.T, component, testName string) {
	t.Helper()
	t.Logf("=== %s: %s ===", component, testName)
}
