package reflection

import (
	"context"
	"fmt"
	"strings"

	"github.com/oyunsanaa/oyunsanaa/internal/results"
)

const reflectionSystem = `You are a gentle, encouraging wellness companion.
The user has just completed a self-check questionnaire. Write a short
supportive reflection (2-3 sentences) on their result. Acknowledge how
things are, highlight one strength, and suggest one small concrete next
step. Never diagnose, never alarm, never mention scores or percentages.`

const maxReflectionTokens = 300

// Reflector turns a scored result into a short supportive note.
type Reflector struct {
	provider Provider
}

// NewReflector creates a Reflector over the given provider.
func NewReflector(p Provider) *Reflector {
	return &Reflector{provider: p}
}

// Reflect generates a supportive reflection for a scored result.
// Callers treat any error as "no reflection available" and move on.
func (r *Reflector) Reflect(ctx context.Context, res results.ScoredResult) (string, error) {
	resp, err := r.provider.Generate(ctx, Request{
		System:      reflectionSystem,
		Prompt:      reflectionPrompt(res),
		MaxTokens:   maxReflectionTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("empty reflection")}
	}
	return text, nil
}

func reflectionPrompt(res results.ScoredResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Self-check: %s\n", res.Title)
	fmt.Fprintf(&b, "Outcome: %s\n", res.Band.Title)
	if res.Band.Summary != "" {
		fmt.Fprintf(&b, "Outcome summary: %s\n", res.Band.Summary)
	}
	for _, tip := range res.Band.Tips {
		fmt.Fprintf(&b, "Suggested practice: %s\n", tip)
	}
	b.WriteString("\nWrite the reflection now.")
	return b.String()
}
