package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	genai "google.golang.org/genai"

	"smart-scholar/internal/scholar"
)

func TestValidateVisual(t *testing.T) {
	cases := []struct {
		name string
		v    scholar.VisualData
		ok   bool
	}{
		{"valid process", scholar.VisualData{Type: scholar.VisualProcess, Steps: []scholar.ProcessStep{{Step: 1, Title: "a"}}}, true},
		{"process without steps", scholar.VisualData{Type: scholar.VisualProcess}, false},
		{"process with chart payload", scholar.VisualData{Type: scholar.VisualProcess, Steps: []scholar.ProcessStep{{Step: 1}}, ChartData: []scholar.ChartPoint{{Name: "x"}}}, false},
		{"process with zero step number", scholar.VisualData{Type: scholar.VisualProcess, Steps: []scholar.ProcessStep{{Step: 0, Title: "a"}}}, false},
		{"valid chart", scholar.VisualData{Type: scholar.VisualChart, ChartData: []scholar.ChartPoint{{Name: "x", Value: 1}}}, true},
		{"chart without data", scholar.VisualData{Type: scholar.VisualChart}, false},
		{"valid none", scholar.NoVisual(), true},
		{"none with payload", scholar.VisualData{Type: scholar.VisualNone, Steps: []scholar.ProcessStep{{Step: 1}}}, false},
		{"unknown tag", scholar.VisualData{Type: "DIAGRAM"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateVisual(tc.v)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func validDeck() scholar.SlideDeck {
	return scholar.SlideDeck{
		ThemeColor: "#1e3a8a",
		FontStyle:  "Inter",
		Slides: []scholar.Slide{
			{ID: 1, Title: "Intro", Layout: scholar.LayoutTitle},
			{ID: 2, Title: "Body", Layout: scholar.LayoutContent},
		},
	}
}

func TestValidateDeck(t *testing.T) {
	assert.NoError(t, ValidateDeck(validDeck()))

	d := validDeck()
	d.ThemeColor = ""
	assert.Error(t, ValidateDeck(d))

	d = validDeck()
	d.FontStyle = ""
	assert.Error(t, ValidateDeck(d))

	d = validDeck()
	d.Slides = nil
	assert.Error(t, ValidateDeck(d))

	d = validDeck()
	d.Slides[1].ID = 1
	assert.Error(t, ValidateDeck(d))

	d = validDeck()
	d.Slides[0].ID = 0
	assert.Error(t, ValidateDeck(d))

	d = validDeck()
	d.Slides[1].Layout = "poster"
	assert.Error(t, ValidateDeck(d))
}

func TestSchemasDeclareRequiredFields(t *testing.T) {
	vs := visualSchema()
	assert.Equal(t, genai.TypeObject, vs.Type)
	assert.ElementsMatch(t, []string{"type", "title"}, vs.Required)
	assert.Contains(t, vs.Properties["type"].Enum, "PROCESS")

	ss := slideSchema()
	assert.ElementsMatch(t, []string{"themeColor", "fontStyle", "slides"}, ss.Required)
	slide := ss.Properties["slides"].Items
	assert.Contains(t, slide.Required, "speakerNotes")
	assert.Contains(t, slide.Properties["layout"].Enum, scholar.LayoutTitle)
}
