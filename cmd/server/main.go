package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glutools-directory/internal/config"
	"glutools-directory/internal/db"
	"glutools-directory/internal/http/router"
	"glutools-directory/internal/security"
	"glutools-directory/internal/seed"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config/app.yaml")
	if err != nil {
		log.Printf("Failed to load config: %v, using defaults", err)
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize store
	store, err := db.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer store.Close()

	// Seed defaults once per start; a failure leaves the server running.
	if _, err := seed.Run(ctx, store, seed.Options{
		AdminName:     cfg.SeedAdminName,
		AdminEmail:    cfg.SeedAdminEmail,
		AdminPassword: cfg.SeedAdminPassword,
		Hash:          security.HashPassword,
	}); err != nil {
		log.Printf("Error initializing data: %v", err)
	}

	catalog, err := seed.Catalog()
	if err != nil {
		log.Fatalf("Failed to load tool catalog: %v", err)
	}

	if cfg.SessionSecret == "" {
		log.Printf("SESSION_SECRET not set, sessions will not survive a restart")
	}
	sessionStore := security.NewSessionStore([]byte(cfg.SessionSecret), cfg.SecureCookies)

	// Setup router
	handler := router.Setup(store, sessionStore, router.Options{
		Prefix:         cfg.APIPrefix,
		APIKey:         cfg.APIKey,
		AllowedOrigin:  cfg.AllowedOrigin,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Catalog:        catalog,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Failed to shut down cleanly: %v", err)
		}
	}()

	log.Printf("Starting server on port %s (store: %s, prefix: %s)", cfg.Port, cfg.StoreDriver, cfg.APIPrefix)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
