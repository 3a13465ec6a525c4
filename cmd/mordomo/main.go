// cmd/mordomo/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "mordomo/internal/command/core"
	_ "mordomo/internal/command/music"

	"mordomo/internal/config"
	"mordomo/internal/discord"
	"mordomo/internal/logger"
	"mordomo/internal/storage"
	v "mordomo/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	logger.Init(cfg.LogLevel, cfg.LogPath)
	defer logger.Sync()

	logger.Infof("Starting %s %s...", v.AppName, v.AppVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.DatabasePath)
	if err != nil {
		logger.Errorf("Opening database: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Infof("Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			logger.Errorf("Discord bot error: %v", err)
		}
		cancel()
	}

	logger.Infof("%s exited cleanly", v.AppName)
}
