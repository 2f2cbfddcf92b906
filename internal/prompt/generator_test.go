package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsaristov/MoodJournal/internal/oracle"
)

type stubCompleter struct {
	reply string
	err   error

	calls      int
	lastSystem string
}

func (s *stubCompleter) Complete(_ context.Context, _, system, _ string, _ float64, _ int) (string, error) {
	s.calls++
	s.lastSystem = system
	return s.reply, s.err
}

func TestGenerateNeverFails(t *testing.T) {
	failures := []error{
		&oracle.TransportError{Err: errors.New("connection refused")},
		&oracle.ServiceError{Status: 500, Body: "internal"},
		&oracle.ParseError{Body: "<html>", Err: errors.New("invalid json")},
		errors.New("something else entirely"),
	}

	for _, failure := range failures {
		gen := NewGenerator(&stubCompleter{err: failure}, "m", NewSelector())
		text := gen.Generate(context.Background(), "happy")
		assert.NotEmpty(t, text, "failure %v", failure)
	}
}

func TestGenerateFallsBackOnOracleError(t *testing.T) {
	stub := &stubCompleter{err: &oracle.TransportError{Err: errors.New("timeout")}}
	gen := NewGenerator(stub, "m", NewSelector())

	text := gen.Generate(context.Background(), "sad")
	assert.Contains(t, CandidatesFor("sad"), text)
}

func TestGenerateRejectsStockPhrase(t *testing.T) {
	for _, reply := range []string{
		StockPrompt,
		StockPrompt + ".",
		"  " + StockPrompt + "  ",
	} {
		stub := &stubCompleter{reply: reply}
		gen := NewGenerator(stub, "m", NewSelector())

		text := gen.Generate(context.Background(), "anxious")
		assert.NotEqual(t, reply, text)
		assert.Contains(t, CandidatesFor("anxious"), text)
	}
}

func TestGenerateRejectsShortReply(t *testing.T) {
	stub := &stubCompleter{reply: "Why so glum?"}
	gen := NewGenerator(stub, "m", NewSelector())

	text := gen.Generate(context.Background(), "sad")
	assert.Contains(t, CandidatesFor("sad"), text)
}

func TestGeneratePassesThroughGoodReply(t *testing.T) {
	reply := "What does your anger want you to protect, and is it succeeding?"
	stub := &stubCompleter{reply: "  " + reply + "  "}
	gen := NewGenerator(stub, "m", NewSelector())

	text := gen.Generate(context.Background(), "angry")
	assert.Equal(t, reply, text)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerateInstructionForbidsStockPhrase(t *testing.T) {
	stub := &stubCompleter{reply: "A reflective prompt long enough to pass the gate."}
	gen := NewGenerator(stub, "m", NewSelector())

	gen.Generate(context.Background(), "excited")
	require.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.lastSystem, "excited")
	assert.True(t, strings.Contains(stub.lastSystem, StockPrompt))
}

func TestGenerateNilOracleUsesFallback(t *testing.T) {
	gen := NewGenerator(nil, "", NewSelector())
	text := gen.Generate(context.Background(), "happy")
	assert.Contains(t, CandidatesFor("happy"), text)
}

func TestAcceptOracleText(t *testing.T) {
	tests := []struct {
		text string
		ok   bool
	}{
		{"What made today feel heavier than yesterday?", true},
		{StockPrompt, false},
		{StockPrompt + ".", false},
		{"Too short.", false},
		{"", false},
		{"                              ", false},
	}

	for _, tc := range tests {
		_, ok := acceptOracleText(tc.text)
		assert.Equal(t, tc.ok, ok, "text=%q", tc.text)
	}
}
