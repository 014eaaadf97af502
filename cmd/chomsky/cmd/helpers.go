package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/msto63/chomsky/internal/chomsky/service"
	"github.com/msto63/chomsky/pkg/core/config"
)

// loadAppConfig resolves the application configuration. The --config flag
// wins, then CHOMSKY_CONFIG and the default locations, then built-in
// defaults.
func loadAppConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// newLocalService builds a one-shot recognition service for CLI commands.
// Runs are not persisted or cached; history belongs to the server.
func newLocalService(grammarFiles []string, grammarDir string) (*service.Service, error) {
	appCfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	svcCfg := service.DefaultConfig()
	svcCfg.EnablePersistence = false
	svcCfg.CacheResults = false
	svcCfg.MaxStackDepth = appCfg.Engine.MaxStackDepth
	svcCfg.MaxSteps = appCfg.Engine.MaxSteps
	svcCfg.MaxInputLength = appCfg.Engine.MaxInputLength

	svc, err := service.NewService(svcCfg)
	if err != nil {
		return nil, err
	}

	for _, path := range grammarFiles {
		if _, err := svc.LoadGrammarFile(path); err != nil {
			svc.Close()
			return nil, fmt.Errorf("failed to load grammar %s: %w", path, err)
		}
	}

	if len(grammarFiles) == 0 {
		dir := grammarDir
		if dir == "" {
			dir = appCfg.Engine.GrammarDir
		}
		if _, err := svc.LoadGrammarDir(dir); err != nil {
			svc.Close()
			return nil, fmt.Errorf("failed to load grammars from %s: %w", dir, err)
		}
	}

	if len(svc.Grammars()) == 0 {
		svc.Close()
		return nil, fmt.Errorf("no grammars loaded, use --grammar-file or --grammar-dir")
	}

	return svc, nil
}

// getInputText collects input from stdin, a file path, or the arguments
func getInputText(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		return strings.Join(args, " "), nil
	}

	return "", nil
}
