package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-scholar/internal/scholar"
)

func testDeck() scholar.SlideDeck {
	return scholar.SlideDeck{
		ThemeColor: "#0f766e",
		FontStyle:  "Inter",
		Slides: []scholar.Slide{
			{ID: 1, Title: "Opening", Bullets: []string{"a subtitle"}, Layout: scholar.LayoutTitle},
			{ID: 2, Title: "Body", Bullets: []string{"first", "second"}, Footer: "Deck", Layout: scholar.LayoutContent},
			{ID: 3, Title: "Closing", Bullets: []string{"done"}, Layout: scholar.LayoutSplit},
		},
	}
}

func assertPNG(t *testing.T, b []byte) {
	t.Helper()
	require.Greater(t, len(b), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b[:4])
}

func TestCarouselClamps(t *testing.T) {
	c := NewCarousel(testDeck())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Prev())

	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 2, c.Index())

	assert.Equal(t, 0, c.Goto(-5))
	assert.Equal(t, 2, c.Goto(99))
	assert.Equal(t, 1, c.Goto(1))
	assert.Equal(t, 2, c.Current().ID)
}

func TestSlidePNG(t *testing.T) {
	deck := testDeck()
	for i := range deck.Slides {
		b, err := SlidePNG(deck, i)
		require.NoError(t, err)
		assertPNG(t, b)
	}

	_, err := SlidePNG(deck, 3)
	assert.Error(t, err)
	_, err = SlidePNG(deck, -1)
	assert.Error(t, err)
}

func TestDeckPages(t *testing.T) {
	deck := testDeck()
	pages := DeckPages(deck)
	require.Len(t, pages, len(deck.Slides))
	b, err := pages[1].PNG()
	require.NoError(t, err)
	assertPNG(t, b)
}

func TestChartPNG(t *testing.T) {
	v := scholar.VisualData{
		Type:       scholar.VisualChart,
		Title:      "Adoption",
		ChartLabel: "Percent",
		ChartData: []scholar.ChartPoint{
			{Name: "2023", Value: 12},
			{Name: "2024", Value: 31},
			{Name: "2025", Value: 58},
		},
	}
	b, err := ChartPNG(v, "#1e3a8a")
	require.NoError(t, err)
	assertPNG(t, b)

	_, err = ChartPNG(scholar.NoVisual(), "#1e3a8a")
	assert.Error(t, err)
}

func TestTimelinePNG(t *testing.T) {
	v := scholar.VisualData{
		Type:  scholar.VisualProcess,
		Title: "Pipeline",
		Steps: []scholar.ProcessStep{
			{Step: 1, Title: "Collect", Description: "Gather the sources"},
			{Step: 2, Title: "Generate", Description: "Call the backend"},
			{Step: 3, Title: "Export", Description: "Write the artifacts"},
		},
	}
	b, err := TimelinePNG(v, "#1e3a8a")
	require.NoError(t, err)
	assertPNG(t, b)

	_, err = TimelinePNG(scholar.NoVisual(), "#1e3a8a")
	assert.Error(t, err)
}

func TestSummaryPages(t *testing.T) {
	res := scholar.SummaryResult{
		MarkdownText: "# Title\n\nSome **bold** prose.\n- one\n- two",
		Language:     scholar.LangEnglish,
	}
	cfg := scholar.DefaultPdfConfig()

	pages, err := SummaryPages(res, cfg)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	b, err := pages[0].PNG()
	require.NoError(t, err)
	assertPNG(t, b)
}

func TestSummaryPagesAppendsVisual(t *testing.T) {
	v := scholar.VisualData{
		Type:      scholar.VisualChart,
		Title:     "Numbers",
		ChartData: []scholar.ChartPoint{{Name: "a", Value: 1}, {Name: "b", Value: 2}},
	}
	res := scholar.SummaryResult{
		MarkdownText: "short",
		VisualData:   &v,
		Language:     scholar.LangEnglish,
	}

	cfg := scholar.DefaultPdfConfig()
	with, err := SummaryPages(res, cfg)
	require.NoError(t, err)

	cfg.IncludeVisual = false
	without, err := SummaryPages(res, cfg)
	require.NoError(t, err)
	assert.Len(t, with, len(without)+1)
}

func TestSummaryPagesNoneVisualAddsNothing(t *testing.T) {
	v := scholar.NoVisual()
	res := scholar.SummaryResult{MarkdownText: "short", VisualData: &v, Language: scholar.LangEnglish}
	pages, err := SummaryPages(res, scholar.DefaultPdfConfig())
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}
