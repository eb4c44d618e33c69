package ai

import (
	"context"
	"errors"

	"smart-scholar/internal/input"
	"smart-scholar/internal/scholar"
)

// NoSummaryPlaceholder is returned instead of an empty summary so downstream
// rendering and export always have a string to work with.
const NoSummaryPlaceholder = "No summary generated."

// Generator produces the three Smart Scholar deliverables.
//
// Visualize never fails: the visualization is an enrichment, so every backend
// or parse failure is absorbed and downgraded to a NONE result.
type Generator interface {
	Summarize(ctx context.Context, src input.Sources) (string, error)
	Visualize(ctx context.Context, summaryText string, lang scholar.Language) scholar.VisualData
	Slides(ctx context.Context, src input.Sources) (scholar.SlideDeck, error)
}

// Noop satisfies Generator without a backend. Useful for dry runs and tests.
type Noop struct{}

func (Noop) Summarize(ctx context.Context, src input.Sources) (string, error) {
	return NoSummaryPlaceholder, nil
}

func (Noop) Visualize(ctx context.Context, summaryText string, lang scholar.Language) scholar.VisualData {
	return scholar.NoVisual()
}

func (Noop) Slides(ctx context.Context, src input.Sources) (scholar.SlideDeck, error) {
	return scholar.SlideDeck{}, &scholar.GenerationError{
		Task: scholar.TaskSlides,
		Err:  errors.New("no generative backend configured"),
	}
}
