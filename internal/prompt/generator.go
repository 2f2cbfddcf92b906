package prompt

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// StockPrompt is the one phrase the oracle is explicitly forbidden from
// returning. Seeing it back means the model ignored the instruction.
const StockPrompt = "Describe how you're feeling right now"

// minPromptLength is the quality floor: anything shorter is not a usable
// reflective prompt.
const minPromptLength = 20

// Completer is the slice of the oracle client the generator needs.
type Completer interface {
	Complete(ctx context.Context, model, system, user string, temperature float64, maxTokens int) (string, error)
}

// Generator is the resilience boundary for prompt generation: try the
// oracle, validate the output, and fall back to a local prompt on any
// failure or low-quality reply. Generate never fails.
type Generator struct {
	oracle   Completer
	model    string
	fallback *Selector
}

func NewGenerator(oracle Completer, model string, fallback *Selector) *Generator {
	if fallback == nil {
		fallback = NewSelector()
	}
	return &Generator{
		oracle:   oracle,
		model:    model,
		fallback: fallback,
	}
}

// Generate returns a journal prompt for the emotion. Oracle errors are
// logged and recovered locally, never propagated.
func (g *Generator) Generate(ctx context.Context, emotion string) string {
	if g.oracle != nil {
		text, err := g.oracle.Complete(ctx, g.model, systemInstruction(emotion), "Generate a journal prompt.", 0.1, 0)
		if err != nil {
			log.Printf("prompt generation for %q failed, using fallback: %v", emotion, err)
			return g.fallback.Pick(emotion)
		}
		if accepted, ok := acceptOracleText(text); ok {
			return accepted
		}
	}
	return g.fallback.Pick(emotion)
}

// acceptOracleText applies the quality gate: reject the stock phrase (with
// or without a trailing period) and anything under minPromptLength.
func acceptOracleText(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if strings.TrimSuffix(trimmed, ".") == StockPrompt {
		return "", false
	}
	if len(trimmed) < minPromptLength {
		return "", false
	}
	return trimmed, true
}

func systemInstruction(emotion string) string {
	return fmt.Sprintf("You are a thoughtful, thought-provoking, and introspective journal prompt generator, specifically for the emotion %s. "+
		"Produce a short reflective prompt of one or two sentences, specific to that emotion, never generic. "+
		"Never respond with the phrase %q.", emotion, StockPrompt)
}
