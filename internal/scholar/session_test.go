package scholar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSingleFlight(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	assert.ErrorIs(t, s.Begin(), ErrBusy)

	s.Fail()
	assert.NoError(t, s.Begin())
}

func TestSessionPublishAndAttach(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	token := s.PublishSummary(SummaryResult{MarkdownText: "text", Language: LangEnglish})
	require.NotEmpty(t, token)

	require.NoError(t, s.BeginEnrichment())
	v := VisualData{Type: VisualChart, Title: "t", ChartData: []ChartPoint{{Name: "a", Value: 1}}}
	assert.True(t, s.AttachVisual(token, v))

	res, ok := s.Summary()
	require.True(t, ok)
	require.NotNil(t, res.VisualData)
	assert.Equal(t, VisualChart, res.VisualData.Type)
	assert.Equal(t, "text", res.MarkdownText)
}

func TestSessionStaleVisualDropped(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	token := s.PublishSummary(SummaryResult{MarkdownText: "first"})

	s.Reset()
	assert.False(t, s.AttachVisual(token, NoVisual()))
	_, ok := s.Summary()
	assert.False(t, ok)
}

func TestSessionSupersededVisualDropped(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	old := s.PublishSummary(SummaryResult{MarkdownText: "first"})

	require.NoError(t, s.Begin())
	fresh := s.PublishSummary(SummaryResult{MarkdownText: "second"})
	require.NotEqual(t, old, fresh)

	assert.False(t, s.AttachVisual(old, NoVisual()))
	res, ok := s.Summary()
	require.True(t, ok)
	assert.Equal(t, "second", res.MarkdownText)
	assert.Nil(t, res.VisualData)
}

func TestSessionEnrichmentRequiresSummary(t *testing.T) {
	s := NewSession()
	assert.Error(t, s.BeginEnrichment())

	require.NoError(t, s.Begin())
	s.PublishSummary(SummaryResult{MarkdownText: "x"})
	require.NoError(t, s.BeginEnrichment())
	assert.ErrorIs(t, s.BeginEnrichment(), ErrBusy)
}

func TestSessionBeginClearsResults(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	s.PublishDeck(SlideDeck{Slides: []Slide{{ID: 1}}})
	_, ok := s.Deck()
	require.True(t, ok)

	require.NoError(t, s.Begin())
	_, ok = s.Deck()
	assert.False(t, ok)
	s.Fail()
}

func TestAccentColorDefault(t *testing.T) {
	assert.Equal(t, "#1e3a8a", SlideDeck{}.AccentColor())
	assert.Equal(t, "#be123c", SlideDeck{ThemeColor: "#be123c"}.AccentColor())
}
