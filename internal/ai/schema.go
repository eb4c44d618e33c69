package ai

import (
	"fmt"

	genai "google.golang.org/genai"

	"smart-scholar/internal/scholar"
)

// visualSchema constrains the VISUALIZE response.
func visualSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"type": {
				Type: genai.TypeString,
				Enum: []string{string(scholar.VisualProcess), string(scholar.VisualChart), string(scholar.VisualNone)},
			},
			"title": {Type: genai.TypeString, Description: "Title of the diagram"},
			"steps": {
				Type:        genai.TypeArray,
				Description: "Only if type is PROCESS. An ordered list of steps.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"step":        {Type: genai.TypeInteger},
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
				},
			},
			"chartData": {
				Type:        genai.TypeArray,
				Description: "Only if type is CHART. Data points.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":  {Type: genai.TypeString},
						"value": {Type: genai.TypeNumber},
					},
				},
			},
			"chartLabel": {Type: genai.TypeString, Description: "Label for the values (e.g., 'Percentage', 'Revenue')"},
		},
		Required: []string{"type", "title"},
	}
}

// slideSchema constrains the SLIDES response.
func slideSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"themeColor": {Type: genai.TypeString, Description: "A hex color code suitable for the theme (e.g. #1e3a8a)"},
			"fontStyle":  {Type: genai.TypeString, Description: "Suggested font family name (e.g. 'Inter', 'Serif')"},
			"slides": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":           {Type: genai.TypeInteger},
						"title":        {Type: genai.TypeString},
						"bullets":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"footer":       {Type: genai.TypeString},
						"speakerNotes": {Type: genai.TypeString},
						"layout":       {Type: genai.TypeString, Enum: []string{scholar.LayoutTitle, scholar.LayoutContent, scholar.LayoutSplit}},
					},
					Required: []string{"id", "title", "bullets", "layout", "speakerNotes"},
				},
			},
		},
		Required: []string{"themeColor", "fontStyle", "slides"},
	}
}

// ValidateVisual checks the parsed union locally before it is trusted: the
// tag must be a known value and the payload must match the tag. The backend's
// schema conformance is treated as a hint, not a proof.
func ValidateVisual(v scholar.VisualData) error {
	switch v.Type {
	case scholar.VisualProcess:
		if len(v.Steps) == 0 {
			return fmt.Errorf("PROCESS visual without steps")
		}
		if len(v.ChartData) > 0 {
			return fmt.Errorf("PROCESS visual carrying chart data")
		}
		for i, s := range v.Steps {
			if s.Step < 1 {
				return fmt.Errorf("step %d has invalid number %d", i, s.Step)
			}
		}
	case scholar.VisualChart:
		if len(v.ChartData) == 0 {
			return fmt.Errorf("CHART visual without data points")
		}
		if len(v.Steps) > 0 {
			return fmt.Errorf("CHART visual carrying process steps")
		}
	case scholar.VisualNone:
		if len(v.Steps) > 0 || len(v.ChartData) > 0 {
			return fmt.Errorf("NONE visual carrying a payload")
		}
	default:
		return fmt.Errorf("unknown visual type %q", v.Type)
	}
	return nil
}

// ValidateDeck checks the parsed slide deck shape: required theme fields, a
// non-empty slide list, known layouts, and unique positive slide ids.
func ValidateDeck(d scholar.SlideDeck) error {
	if d.ThemeColor == "" {
		return fmt.Errorf("deck missing themeColor")
	}
	if d.FontStyle == "" {
		return fmt.Errorf("deck missing fontStyle")
	}
	if len(d.Slides) == 0 {
		return fmt.Errorf("deck has no slides")
	}
	seen := make(map[int]bool, len(d.Slides))
	for i, s := range d.Slides {
		if s.ID < 1 {
			return fmt.Errorf("slide %d has invalid id %d", i, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate slide id %d", s.ID)
		}
		seen[s.ID] = true
		switch s.Layout {
		case scholar.LayoutTitle, scholar.LayoutContent, scholar.LayoutSplit:
		default:
			return fmt.Errorf("slide %d has unknown layout %q", s.ID, s.Layout)
		}
	}
	return nil
}
