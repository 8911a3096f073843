package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"growthplot/internal/app"
	"growthplot/internal/config"
	"growthplot/internal/logger"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx := context.Background()

	cfg, err := loadConfig(os.Getenv("GROWTHPLOT_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logFile, err := setupLogOutput(cfg.App.LogPath)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.App.LogLevel)

	a, err := app.NewApp(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("init app: %v", err)
	}
	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// loadConfig reads path, or the default path when empty. A missing default
// file means built-in defaults; a missing explicit file is an error.
func loadConfig(path string) (*config.Config, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigPath); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(defaultConfigPath)
}

func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	mw := io.MultiWriter(os.Stderr, file)
	log.SetOutput(mw)
	logger.SetOutput(mw)
	return file, nil
}
