package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsaristov/MoodJournal/internal/config"
	"github.com/tsaristov/MoodJournal/internal/mood"
	"github.com/tsaristov/MoodJournal/internal/prompt"
	"github.com/tsaristov/MoodJournal/internal/store"
)

func NewRouter(cfg *config.Config, s *store.Store, mapper *mood.Mapper, generator *prompt.Generator) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)

	handlers := NewHandlers(cfg, s, mapper, generator)

	r.Get("/health", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(JSONContentType)

		r.Post("/emotion", handlers.GetEmotion)
		r.Post("/prompt", handlers.GetPrompt)
		r.Post("/entries", handlers.SaveEntry)
		r.Get("/entries", handlers.Entries)
		r.Get("/insights", handlers.Insights)
	})

	return r
}
