package prompt

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Curated prompts for well-known emotions, three per emotion. Lookup is
// case-insensitive on the emotion word.
var curatedPrompts = map[string][]string{
	"happy": {
		"What moment today brought you the most joy, and what made it special?",
		"Describe something you're grateful for right now and how it shapes your happiness.",
		"Who would you most like to share this happy feeling with, and why?",
	},
	"sad": {
		"What is weighing on you most right now, and where do you feel it in your body?",
		"Write about a time you moved through sadness before. What helped you then?",
		"If your sadness could speak, what would it be asking for?",
	},
	"angry": {
		"What boundary feels crossed right now, and what would honoring it look like?",
		"Describe the moment your anger started. What happened just before?",
		"What would you say to the source of your anger if there were no consequences?",
	},
	"anxious": {
		"What is the worry underneath your anxiety, and how likely is it really?",
		"List what is within your control right now and what is not.",
		"Describe a place, real or imagined, where your anxiety quiets down.",
	},
	"excited": {
		"What are you most looking forward to, and what does it say about what you value?",
		"How does this excitement feel in your body compared to other strong emotions?",
		"What small step could you take today to build on this energy?",
	},
}

// genericTemplates produce prompts for emotions outside the curated table.
// Each interpolates the lower-cased emotion word.
var genericTemplates = []string{
	"Explore one trigger that intensified your feeling of %s recently.",
	"How does feeling %s change the way you see the people around you?",
	"Write about the last time you felt %s. What was different then?",
	"If your sense of %s had a color and a shape, what would it be and why?",
	"What would you tell a close friend who told you they were feeling %s?",
}

// Selector produces a local journal prompt for any emotion without a network
// dependency. Selection is uniformly random over the candidate set; tests
// assert membership, or inject a seeded source for exact selection.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a time-seeded selector.
func NewSelector() *Selector {
	return NewSelectorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSelectorWithSource injects the randomness source.
func NewSelectorWithSource(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// Pick returns a prompt for the emotion. It never fails and the result is
// always non-empty.
func (s *Selector) Pick(emotion string) string {
	candidates := CandidatesFor(emotion)
	return candidates[s.rng.Intn(len(candidates))]
}

// CandidatesFor returns the full candidate set Pick draws from: the curated
// three for known emotions, or five generated ones for anything else.
func CandidatesFor(emotion string) []string {
	key := strings.ToLower(strings.TrimSpace(emotion))
	if curated, ok := curatedPrompts[key]; ok {
		return curated
	}

	generated := make([]string, len(genericTemplates))
	for i, tmpl := range genericTemplates {
		generated[i] = fmt.Sprintf(tmpl, key)
	}
	return generated
}
