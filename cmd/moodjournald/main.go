package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsaristov/MoodJournal/internal/api"
	"github.com/tsaristov/MoodJournal/internal/config"
	"github.com/tsaristov/MoodJournal/internal/mood"
	"github.com/tsaristov/MoodJournal/internal/oracle"
	"github.com/tsaristov/MoodJournal/internal/prompt"
	"github.com/tsaristov/MoodJournal/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting moodjournald...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	oracleClient, err := oracle.NewClient(cfg.OracleURL, cfg.APIKey, cfg.OracleTimeout)
	if err != nil {
		log.Fatalf("Failed to create oracle client: %v", err)
	}

	mapper := mood.NewMapper(oracleClient, cfg.MoodModel, cfg.CoordinateFallback)
	generator := prompt.NewGenerator(oracleClient, cfg.PromptModel, prompt.NewSelector())

	router := api.NewRouter(cfg, s, mapper, generator)

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down gracefully...")

	// Give ongoing requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Closing store...")
	if err := s.Close(); err != nil {
		log.Printf("Store close error: %v", err)
	}

	log.Println("Shutdown complete")
}
