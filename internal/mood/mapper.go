package mood

import (
	"context"
	"fmt"
	"strings"
)

const (
	// Coordinate bounds of the valence/arousal plane.
	MinCoordinate = -100
	MaxCoordinate = 100

	// defaultEmotion is returned when the oracle replies with empty or
	// whitespace-only content. Silence from the model is common in the
	// positive/high-energy quadrant, so degrade gracefully instead of
	// failing the user-facing action.
	defaultEmotion = "Excited"

	mapperSystemPrompt = "You are an expert psychologist specializing in emotions and mood states."
)

// OutOfRangeError is returned when a coordinate lies outside
// [MinCoordinate, MaxCoordinate]. No oracle call is made.
type OutOfRangeError struct {
	X, Y int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("coordinates (%d, %d) must be between %d and %d", e.X, e.Y, MinCoordinate, MaxCoordinate)
}

// Completer is the slice of the oracle client the mapper needs.
type Completer interface {
	Complete(ctx context.Context, model, system, user string, temperature float64, maxTokens int) (string, error)
}

// Mapper converts a point on the valence/arousal plane into an emotion word
// via the oracle.
type Mapper struct {
	oracle Completer
	model  string

	// fallbackEmotion, when non-empty, is returned instead of surfacing
	// oracle failures. Disabled by default: the coordinate picker is only
	// usable when the service is up, unlike the prompt generator which
	// always has a local path.
	fallbackEmotion string
}

func NewMapper(oracle Completer, model, fallbackEmotion string) *Mapper {
	return &Mapper{
		oracle:          oracle,
		model:           model,
		fallbackEmotion: fallbackEmotion,
	}
}

// MapCoordinates returns a single capitalized emotion word for the point
// (x, y). Out-of-range input fails with *OutOfRangeError before any network
// call.
func (m *Mapper) MapCoordinates(ctx context.Context, x, y int) (string, error) {
	if x < MinCoordinate || x > MaxCoordinate || y < MinCoordinate || y > MaxCoordinate {
		return "", &OutOfRangeError{X: x, Y: y}
	}

	raw, err := m.oracle.Complete(ctx, m.model, mapperSystemPrompt, elicitationPrompt(x, y), 0, 50)
	if err != nil {
		if m.fallbackEmotion != "" {
			return Capitalize(m.fallbackEmotion), nil
		}
		return "", fmt.Errorf("mapping coordinates (%d, %d): %w", x, y, err)
	}

	if strings.TrimSpace(raw) == "" {
		return defaultEmotion, nil
	}

	return NormalizeWord(raw), nil
}

// Descriptor buckets each axis into a qualitative label. Thresholds are
// inclusive toward the lower-magnitude bucket.
func Descriptor(x, y int) (valence, arousal string) {
	return valenceDescriptor(x), arousalDescriptor(y)
}

func valenceDescriptor(x int) string {
	switch {
	case x <= -80:
		return "extremely negative"
	case x <= -50:
		return "very negative"
	case x < 0:
		return "somewhat negative"
	case x == 0:
		return "neutral"
	case x < 50:
		return "somewhat positive"
	case x < 80:
		return "very positive"
	default:
		return "extremely positive"
	}
}

func arousalDescriptor(y int) string {
	switch {
	case y <= -80:
		return "extremely low energy"
	case y <= -50:
		return "very low energy"
	case y < 0:
		return "somewhat low energy"
	case y == 0:
		return "neutral energy"
	case y < 50:
		return "somewhat high energy"
	case y < 80:
		return "very high energy"
	default:
		return "extremely high energy"
	}
}

func elicitationPrompt(x, y int) string {
	valence, arousal := Descriptor(x, y)
	return fmt.Sprintf(`Give me exactly one word (just a single word) that describes a mood or emotional state
that is %s (value: %d on a scale of -100 to +100) and %s (value: %d on a scale of -100 to +100).

The X-axis (-100 to +100) represents the valence from negative to positive emotions.
The Y-axis (-100 to +100) represents the arousal/energy level from low to high.

Respond with ONLY a single word that captures this specific emotional state. No explanations or other text.`,
		valence, x, arousal, y)
}
