package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	genai "google.golang.org/genai"

	"smart-scholar/internal/input"
	"smart-scholar/internal/scholar"
)

// fakeCaller replays a canned response and records the config it was given.
type fakeCaller struct {
	text string
	err  error

	gotModel string
	gotCfg   *genai.GenerateContentConfig
	gotParts int
}

func (f *fakeCaller) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotCfg = cfg
	if len(contents) > 0 {
		f.gotParts = len(contents[0].Parts)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

func testGemini(f *fakeCaller) *Gemini {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &Gemini{caller: f, model: defaultModel, log: log}
}

func TestSummarize(t *testing.T) {
	f := &fakeCaller{text: "## Result\n**done**"}
	g := testGemini(f)

	out, err := g.Summarize(context.Background(), input.Sources{Text: "x", Language: scholar.LangEnglish})
	require.NoError(t, err)
	assert.Equal(t, "## Result\n**done**", out)
	assert.Equal(t, defaultModel, f.gotModel)
	// Free-text task, no schema constraint.
	assert.Empty(t, f.gotCfg.ResponseMIMEType)
	require.NotNil(t, f.gotCfg.Temperature)
	assert.InDelta(t, 0.3, *f.gotCfg.Temperature, 0.001)
}

func TestSummarizeEmptyResponseYieldsPlaceholder(t *testing.T) {
	g := testGemini(&fakeCaller{text: "  \n "})
	out, err := g.Summarize(context.Background(), input.Sources{Text: "x", Language: scholar.LangEnglish})
	require.NoError(t, err)
	assert.Equal(t, NoSummaryPlaceholder, out)
}

func TestSummarizeTransportError(t *testing.T) {
	g := testGemini(&fakeCaller{err: errors.New("boom")})
	_, err := g.Summarize(context.Background(), input.Sources{Text: "x", Language: scholar.LangEnglish})
	var gerr *scholar.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, scholar.TaskSummary, gerr.Task)
}

func TestVisualizeParsesSchemaResponse(t *testing.T) {
	f := &fakeCaller{text: `{"type":"CHART","title":"Growth","chartData":[{"name":"2024","value":10}],"chartLabel":"Users"}`}
	g := testGemini(f)

	v := g.Visualize(context.Background(), "summary", scholar.LangEnglish)
	assert.Equal(t, scholar.VisualChart, v.Type)
	assert.Equal(t, "Growth", v.Title)
	require.Len(t, v.ChartData, 1)
	assert.Equal(t, "application/json", f.gotCfg.ResponseMIMEType)
	require.NotNil(t, f.gotCfg.ResponseSchema)
	assert.InDelta(t, 0.2, *f.gotCfg.Temperature, 0.001)
}

func TestVisualizeNeverFails(t *testing.T) {
	cases := []struct {
		name string
		f    *fakeCaller
	}{
		{"transport error", &fakeCaller{err: errors.New("boom")}},
		{"empty response", &fakeCaller{text: ""}},
		{"unparsable response", &fakeCaller{text: "this is not json"}},
		{"schema violation", &fakeCaller{text: `{"type":"PROCESS","title":"x"}`}},
		{"unknown tag", &fakeCaller{text: `{"type":"DIAGRAM","title":"x"}`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := testGemini(tc.f)
			v := g.Visualize(context.Background(), "summary", scholar.LangEnglish)
			assert.Equal(t, scholar.NoVisual(), v)
		})
	}
}

func TestSlides(t *testing.T) {
	f := &fakeCaller{text: `{"themeColor":"#0f766e","fontStyle":"Inter","slides":[
		{"id":1,"title":"Intro","bullets":["a"],"speakerNotes":"hello","layout":"title"},
		{"id":2,"title":"Body","bullets":["b","c"],"speakerNotes":"","layout":"content"}]}`}
	g := testGemini(f)

	deck, err := g.Slides(context.Background(), input.Sources{Text: "x", Language: scholar.LangEnglish})
	require.NoError(t, err)
	assert.Equal(t, "#0f766e", deck.ThemeColor)
	require.Len(t, deck.Slides, 2)
	assert.Equal(t, scholar.LayoutTitle, deck.Slides[0].Layout)
	assert.InDelta(t, 0.4, *f.gotCfg.Temperature, 0.001)
}

func TestSlidesCodeFencedResponse(t *testing.T) {
	f := &fakeCaller{text: "```json\n{\"themeColor\":\"#111\",\"fontStyle\":\"Serif\",\"slides\":[{\"id\":1,\"title\":\"T\",\"bullets\":[],\"speakerNotes\":\"n\",\"layout\":\"title\"}]}\n```"}
	g := testGemini(f)

	deck, err := g.Slides(context.Background(), input.Sources{Text: "x", Language: scholar.LangEnglish})
	require.NoError(t, err)
	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "T", deck.Slides[0].Title)
}

func TestSlidesInvalidDeck(t *testing.T) {
	// Duplicate ids survive JSON parsing but fail local validation.
	f := &fakeCaller{text: `{"themeColor":"#111","fontStyle":"Serif","slides":[
		{"id":1,"title":"A","bullets":[],"speakerNotes":"","layout":"title"},
		{"id":1,"title":"B","bullets":[],"speakerNotes":"","layout":"content"}]}`}
	g := testGemini(f)

	_, err := g.Slides(context.Background(), input.Sources{Text: "x", Language: scholar.LangEnglish})
	var gerr *scholar.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, scholar.TaskSlides, gerr.Task)
}

func TestGenerateSendsFileParts(t *testing.T) {
	f := &fakeCaller{text: "ok"}
	g := testGemini(f)

	src := input.Sources{
		Text:     "also text",
		Language: scholar.LangEnglish,
		File:     &input.EncodedFile{MIMEType: "application/pdf", Data: "JVBERg=="},
	}
	_, err := g.Summarize(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 3, f.gotParts)
}

func TestGenerateRejectsBadFilePayload(t *testing.T) {
	g := testGemini(&fakeCaller{text: "ok"})
	src := input.Sources{
		Language: scholar.LangEnglish,
		File:     &input.EncodedFile{MIMEType: "application/pdf", Data: "!!not base64!!"},
	}
	_, err := g.Summarize(context.Background(), src)
	assert.Error(t, err)
}

func TestDecodeJSONRecovery(t *testing.T) {
	var v scholar.VisualData
	require.NoError(t, decodeJSON("Here you go:\n{\"type\":\"NONE\",\"title\":\"\"} hope that helps", &v))
	assert.Equal(t, scholar.VisualNone, v.Type)

	assert.Error(t, decodeJSON("no json at all", &v))
}

func TestNoopGenerator(t *testing.T) {
	n := Noop{}
	out, err := n.Summarize(context.Background(), input.Sources{})
	require.NoError(t, err)
	assert.Equal(t, NoSummaryPlaceholder, out)

	assert.Equal(t, scholar.NoVisual(), n.Visualize(context.Background(), "x", scholar.LangEnglish))

	_, err = n.Slides(context.Background(), input.Sources{})
	var gerr *scholar.GenerationError
	assert.ErrorAs(t, err, &gerr)
}
