package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parley/api/internal/app"
	"parley/api/internal/config"
	"parley/api/internal/kvstore"
	"parley/api/internal/localize"
	"parley/api/internal/session"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	store, err := kvstore.Open(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	defer store.Close()

	localizer, err := localize.New(cfg.Locale)
	if err != nil {
		log.Fatalf("failed to load locale tables: %v", err)
	}
	if localizer.Locale() != cfg.Locale {
		log.Printf("locale %q not available, using %q", cfg.Locale, localizer.Locale())
	}

	watcher, err := session.Watch(ctx, store)
	if err != nil {
		log.Fatalf("session watch failed: %v", err)
	}
	defer watcher.Close()

	service := app.New(store, watcher, localizer)

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Parley report API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
