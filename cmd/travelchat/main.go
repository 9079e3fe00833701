package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travelchat/internal"
	"travelchat/internal/ai"
	"travelchat/internal/ai/tools"
	botconfig "travelchat/internal/config"
	"travelchat/internal/logger"
	"travelchat/internal/server"
	"travelchat/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	if err := ai.InitializeClient(); err != nil {
		logger.Warnf("AI client initialization: %v", err)
	}

	defer func() {
		logger.CloseLogFiles()
	}()

	configPath := botconfig.GetConfigPath()
	cfg, err := botconfig.LoadConfig(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warnf("No config file at %s, using defaults", configPath)
			cfg = botconfig.Default()
		} else {
			logger.Errorf("Configuration error: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Infof("Loaded configuration from %s", configPath)
	}

	ai.ApplyServerConfig(cfg.AI)

	sessions := session.NewStore()

	var completer ai.Completer
	if ai.IsInitialized() {
		completer = ai.GetClient()
	}
	orchestrator := ai.NewOrchestrator(completer, tools.GetRegistry())
	srv := server.New(cfg, orchestrator, sessions)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		logger.Infof("Shutdown signal received, exiting...")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
			internal.DEFAULT_SHUTDOWN_TIMEOUT*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Error during shutdown: %v", err)
		}
		<-errCh
		logger.Infof("Server stopped")
	case err := <-errCh:
		if err != nil {
			logger.Errorf("Server error: %v", err)
			os.Exit(1)
		}
	}
}
