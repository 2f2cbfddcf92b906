package models

// Coordinates is a point on the valence/arousal plane.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EmotionRequest carries either a point on the plane or a typed emotion word.
type EmotionRequest struct {
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Emotion     string       `json:"emotion,omitempty"`
}

// EmotionResponse is the resolved emotion, echoing coordinates when they
// were the input.
type EmotionResponse struct {
	Emotion     string       `json:"emotion"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// PromptRequest asks for a journal prompt for an emotion.
type PromptRequest struct {
	Emotion string `json:"emotion"`
}

// PromptResponse carries the generated or fallback prompt.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// SaveEntryRequest is a complete journal entry ready to persist.
type SaveEntryRequest struct {
	Emotion     string       `json:"emotion"`
	Prompt      string       `json:"prompt"`
	Response    string       `json:"response"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// SaveEntryResponse acknowledges a persisted entry.
type SaveEntryResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// EntryView is one journal entry in a read response.
type EntryView struct {
	ID          int64        `json:"id"`
	Timestamp   string       `json:"timestamp"`
	Emotion     string       `json:"emotion"`
	Prompt      string       `json:"prompt"`
	Response    string       `json:"response"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// EntriesResponse is the entry list for a time period, newest first.
type EntriesResponse struct {
	Period  string      `json:"period"`
	Entries []EntryView `json:"entries"`
}

// EmotionCountView is one grouped count for the aggregate chart.
type EmotionCountView struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// TimelinePointView is one (emotion, timestamp) pair, oldest first.
type TimelinePointView struct {
	Emotion   string `json:"emotion"`
	Timestamp string `json:"timestamp"`
}

// InsightsResponse feeds the aggregate and timeline chart views.
type InsightsResponse struct {
	Period   string              `json:"period"`
	Emotions []EmotionCountView  `json:"emotions"`
	Timeline []TimelinePointView `json:"timeline"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Oracle  string `json:"oracle"`
	Store   string `json:"store"`
	Version string `json:"version"`
}
