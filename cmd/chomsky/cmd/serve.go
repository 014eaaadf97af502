package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/chomsky/internal/chomsky/server"
	"github.com/msto63/chomsky/internal/chomsky/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recognition API server",
	Long: `Starts the chomsky recognition API server.

The server loads all grammars from the grammar directory, serves
recognition over HTTP and WebSocket, and records runs in the
history database.

Endpoints:
  GET  /api/v1/health            - Health check
  GET  /api/v1/grammars          - Registered grammars
  POST /api/v1/recognize         - Run a recognition
  GET  /api/v1/recognize/ws      - WebSocket trace streaming
  GET  /api/v1/runs              - Run history
  GET  /api/v1/stats             - Server statistics

Examples:
  chomsky serve
  chomsky serve --config ./configs/chomsky.toml
  CHOMSKY_CONFIG=/etc/chomsky.toml chomsky serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appCfg, err := loadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	fmt.Println("chomsky")
	fmt.Println("=======")

	// Build the recognition service
	svcCfg := service.DefaultConfig()
	svcCfg.GrammarDir = appCfg.Engine.GrammarDir
	svcCfg.StorePath = appCfg.History.Path
	svcCfg.EnablePersistence = appCfg.History.Enabled
	svcCfg.CacheResults = appCfg.Cache.Enabled
	svcCfg.ResultTTL = appCfg.Cache.TTL.Duration
	svcCfg.MaxStackDepth = appCfg.Engine.MaxStackDepth
	svcCfg.MaxSteps = appCfg.Engine.MaxSteps
	svcCfg.MaxInputLength = appCfg.Engine.MaxInputLength

	svc, err := service.NewService(svcCfg)
	if err != nil {
		return fmt.Errorf("failed to create service: %v", err)
	}

	loaded, err := svc.LoadGrammarDir(svcCfg.GrammarDir)
	if err != nil {
		fmt.Printf("  [!] No grammars loaded: %v\n", err)
	} else {
		fmt.Printf("  [+] %d grammar(s) loaded from %s\n", loaded, svcCfg.GrammarDir)
	}

	// Apply the retention policy on startup
	if appCfg.History.Enabled && appCfg.History.RetentionDays > 0 {
		retention := time.Duration(appCfg.History.RetentionDays) * 24 * time.Hour
		if deleted, err := svc.PruneRuns(ctx, retention); err == nil && deleted > 0 {
			fmt.Printf("  [+] Pruned %d run(s) older than %d day(s)\n", deleted, appCfg.History.RetentionDays)
		}
	}

	// Build and start the server
	srvCfg := server.DefaultConfig()
	srvCfg.Host = appCfg.Server.Host
	srvCfg.HTTPPort = appCfg.Server.Port
	srvCfg.ReadTimeout = appCfg.Server.ReadTimeout.Duration
	srvCfg.WriteTimeout = appCfg.Server.WriteTimeout.Duration
	srvCfg.Version = Version

	srv := server.New(srvCfg, svc)

	if err := srv.StartAsync(); err != nil {
		svc.Close()
		return fmt.Errorf("failed to start server: %v", err)
	}

	fmt.Printf("  [+] Recognition API on :%d\n", srvCfg.HTTPPort)
	fmt.Println()
	fmt.Printf("API:          http://localhost:%d/api/v1\n", srvCfg.HTTPPort)
	fmt.Printf("Health Check: http://localhost:%d/api/v1/health\n", srvCfg.HTTPPort)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		printError("shutdown", err)
	}
	if err := svc.Close(); err != nil {
		printError("service close", err)
	}

	fmt.Println("Server stopped.")
	return nil
}
