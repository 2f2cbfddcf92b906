package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/tsaristov/MoodJournal/internal/config"
	"github.com/tsaristov/MoodJournal/internal/models"
	"github.com/tsaristov/MoodJournal/internal/mood"
	"github.com/tsaristov/MoodJournal/internal/prompt"
	"github.com/tsaristov/MoodJournal/internal/store"
)

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  code,
	})
}

type Handlers struct {
	cfg       *config.Config
	store     *store.Store
	mapper    *mood.Mapper
	generator *prompt.Generator
}

func NewHandlers(cfg *config.Config, s *store.Store, mapper *mood.Mapper, generator *prompt.Generator) *Handlers {
	return &Handlers{
		cfg:       cfg,
		store:     s,
		mapper:    mapper,
		generator: generator,
	}
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:  "ok",
		Oracle:  h.checkOracle(),
		Store:   h.checkStore(),
		Version: "1.0.0",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (h *Handlers) checkOracle() string {
	// Probing the real endpoint costs a billable call; report configuration
	// state only.
	if h.cfg.APIKey == "" {
		return "not configured"
	}
	return "configured"
}

func (h *Handlers) checkStore() string {
	if err := h.store.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

// GetEmotion handles POST /api/v1/emotion. The request carries either
// coordinates (resolved through the mapper) or a typed emotion word.
func (h *Handlers) GetEmotion(w http.ResponseWriter, r *http.Request) {
	var req models.EmotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.Coordinates != nil {
		emotion, err := h.mapper.MapCoordinates(r.Context(), req.Coordinates.X, req.Coordinates.Y)
		if err != nil {
			var oor *mood.OutOfRangeError
			if errors.As(err, &oor) {
				writeError(w, http.StatusBadRequest, oor.Error(), "OUT_OF_RANGE")
				return
			}
			log.Printf("coordinate mapping failed: %v", err)
			writeError(w, http.StatusBadGateway, "emotion service unavailable", "ORACLE_UNAVAILABLE")
			return
		}

		json.NewEncoder(w).Encode(models.EmotionResponse{
			Emotion:     emotion,
			Coordinates: req.Coordinates,
		})
		return
	}

	if req.Emotion != "" {
		json.NewEncoder(w).Encode(models.EmotionResponse{
			Emotion: mood.Capitalize(req.Emotion),
		})
		return
	}

	writeError(w, http.StatusBadRequest, "either coordinates or emotion is required", "INVALID_REQUEST")
}

// GetPrompt handles POST /api/v1/prompt. Prompt generation never fails; the
// worst case is a locally selected fallback prompt.
func (h *Handlers) GetPrompt(w http.ResponseWriter, r *http.Request) {
	var req models.PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.Emotion == "" {
		writeError(w, http.StatusBadRequest, "emotion is required", "MISSING_EMOTION")
		return
	}

	text := h.generator.Generate(r.Context(), req.Emotion)
	json.NewEncoder(w).Encode(models.PromptResponse{Prompt: text})
}

// SaveEntry handles POST /api/v1/entries
func (h *Handlers) SaveEntry(w http.ResponseWriter, r *http.Request) {
	var req models.SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.Emotion == "" || req.Prompt == "" || req.Response == "" {
		writeError(w, http.StatusBadRequest, "emotion, prompt and response are required", "MISSING_FIELDS")
		return
	}

	entry := store.NewEntry{
		Emotion:  req.Emotion,
		Prompt:   req.Prompt,
		Response: req.Response,
	}
	if req.Coordinates != nil {
		c := *req.Coordinates
		if c.X < mood.MinCoordinate || c.X > mood.MaxCoordinate || c.Y < mood.MinCoordinate || c.Y > mood.MaxCoordinate {
			writeError(w, http.StatusBadRequest, "coordinates must be between -100 and 100", "OUT_OF_RANGE")
			return
		}
		entry.X, entry.Y = &c.X, &c.Y
	}

	id, err := h.store.Append(entry)
	if err != nil {
		log.Printf("saving entry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save entry", "STORE_ERROR")
		return
	}

	json.NewEncoder(w).Encode(models.SaveEntryResponse{Success: true, ID: id})
}

// Entries handles GET /api/v1/entries?period=
func (h *Handlers) Entries(w http.ResponseWriter, r *http.Request) {
	period := periodParam(r)
	start, end := store.PeriodWindow(period, time.Now().UTC())

	entries, err := h.store.EntriesBetween(start, end)
	if err != nil {
		log.Printf("listing entries failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load entries", "STORE_ERROR")
		return
	}

	resp := models.EntriesResponse{
		Period:  period,
		Entries: make([]models.EntryView, 0, len(entries)),
	}
	for _, e := range entries {
		view := models.EntryView{
			ID:        e.ID,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Emotion:   e.Emotion,
			Prompt:    e.Prompt,
			Response:  e.Response,
		}
		if e.X != nil && e.Y != nil {
			view.Coordinates = &models.Coordinates{X: *e.X, Y: *e.Y}
		}
		resp.Entries = append(resp.Entries, view)
	}

	json.NewEncoder(w).Encode(resp)
}

// Insights handles GET /api/v1/insights?period=
func (h *Handlers) Insights(w http.ResponseWriter, r *http.Request) {
	period := periodParam(r)
	start, end := store.PeriodWindow(period, time.Now().UTC())

	counts, err := h.store.CountByEmotion(start, end)
	if err != nil {
		log.Printf("aggregating emotions failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load insights", "STORE_ERROR")
		return
	}

	timeline, err := h.store.Timeline(start, end)
	if err != nil {
		log.Printf("loading timeline failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load insights", "STORE_ERROR")
		return
	}

	resp := models.InsightsResponse{
		Period:   period,
		Emotions: make([]models.EmotionCountView, 0, len(counts)),
		Timeline: make([]models.TimelinePointView, 0, len(timeline)),
	}
	for _, c := range counts {
		resp.Emotions = append(resp.Emotions, models.EmotionCountView{Emotion: c.Emotion, Count: c.Count})
	}
	for _, p := range timeline {
		resp.Timeline = append(resp.Timeline, models.TimelinePointView{
			Emotion:   p.Emotion,
			Timestamp: p.Timestamp.Format(time.RFC3339),
		})
	}

	json.NewEncoder(w).Encode(resp)
}

func periodParam(r *http.Request) string {
	period := r.URL.Query().Get("period")
	if period == "" {
		return store.PeriodWeek
	}
	return period
}
