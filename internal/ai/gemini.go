package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	genai "google.golang.org/genai"

	"smart-scholar/internal/input"
	"smart-scholar/internal/scholar"
)

const defaultModel = "gemini-2.5-flash"

// contentCaller is the seam to the Gemini API, narrowed so tests can inject a
// fake backend.
type contentCaller interface {
	generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type apiCaller struct {
	client *genai.Client
}

func (c apiCaller) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, cfg)
}

// Gemini implements Generator against the Gemini API with schema-constrained
// output for the JSON tasks and free text for summaries.
type Gemini struct {
	caller contentCaller
	model  string
	log    *logrus.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, log *logrus.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if model == "" {
		model = defaultModel
	}
	if log == nil {
		log = logrus.New()
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{caller: apiCaller{client: c}, model: model, log: log}, nil
}

// Summarize runs the SUMMARY task. An empty backend response yields the fixed
// placeholder rather than an error; everything else non-OK propagates as
// GenerationError.
func (g *Gemini) Summarize(ctx context.Context, src input.Sources) (string, error) {
	req := BuildSummaryRequest(src)
	text, err := g.generate(ctx, req, nil)
	if err != nil {
		return "", &scholar.GenerationError{Task: scholar.TaskSummary, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return NoSummaryPlaceholder, nil
	}
	return text, nil
}

// Visualize runs the VISUALIZE task. Any failure (transport, bad JSON, or a
// schema violation) is downgraded to a NONE result so the caller's summary is
// never blocked by its enrichment.
func (g *Gemini) Visualize(ctx context.Context, summaryText string, lang scholar.Language) scholar.VisualData {
	req := BuildVisualRequest(summaryText, lang)
	text, err := g.generate(ctx, req, visualSchema())
	if err != nil {
		g.log.WithError(err).Warn("visualization downgraded to NONE")
		return scholar.NoVisual()
	}
	var v scholar.VisualData
	if err := decodeJSON(text, &v); err != nil {
		g.log.WithError(err).Warn("visualization response unparsable, downgraded to NONE")
		return scholar.NoVisual()
	}
	if err := ValidateVisual(v); err != nil {
		g.log.WithError(err).Warn("visualization payload malformed, downgraded to NONE")
		return scholar.NoVisual()
	}
	return v
}

// Slides runs the SLIDES task and validates the deck shape before returning it.
func (g *Gemini) Slides(ctx context.Context, src input.Sources) (scholar.SlideDeck, error) {
	req := BuildSlidesRequest(src)
	text, err := g.generate(ctx, req, slideSchema())
	if err != nil {
		return scholar.SlideDeck{}, &scholar.GenerationError{Task: scholar.TaskSlides, Err: err}
	}
	var deck scholar.SlideDeck
	if err := decodeJSON(text, &deck); err != nil {
		return scholar.SlideDeck{}, &scholar.GenerationError{Task: scholar.TaskSlides, Err: err}
	}
	if err := ValidateDeck(deck); err != nil {
		return scholar.SlideDeck{}, &scholar.GenerationError{Task: scholar.TaskSlides, Err: err}
	}
	return deck, nil
}

func (g *Gemini) generate(ctx context.Context, req GenerationRequest, schema *genai.Schema) (string, error) {
	contents, err := toContents(req.Parts)
	if err != nil {
		return "", err
	}
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = schema
	}

	g.log.WithFields(logrus.Fields{
		"task":  req.Task,
		"model": g.model,
		"parts": len(req.Parts),
	}).Debug("calling generative backend")

	res, err := g.caller.generate(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	text := res.Text()
	if schema != nil && strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response for %s", req.Task)
	}
	return text, nil
}

func toContents(parts []Part) ([]*genai.Content, error) {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.Data != "" {
			b, err := base64.StdEncoding.DecodeString(p.Data)
			if err != nil {
				return nil, fmt.Errorf("invalid file payload: %w", err)
			}
			out = append(out, &genai.Part{InlineData: &genai.Blob{MIMEType: p.MIME, Data: b}})
			continue
		}
		out = append(out, &genai.Part{Text: p.Text})
	}
	return []*genai.Content{{Role: genai.RoleUser, Parts: out}}, nil
}

// decodeJSON parses a model response, tolerating code fences and surrounding
// prose around the first JSON object.
func decodeJSON(s string, v any) error {
	s = stripCodeFences(s)
	if err := json.Unmarshal([]byte(s), v); err != nil {
		if first := findFirstJSON(s); first != "" {
			if err2 := json.Unmarshal([]byte(first), v); err2 != nil {
				return fmt.Errorf("failed to parse response as JSON: %w (original error: %v)", err2, err)
			}
			return nil
		}
		return fmt.Errorf("failed to parse response - no JSON found: %w", err)
	}
	return nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func findFirstJSON(s string) string {
	start := -1
	depth := 0
	for i, r := range s {
		if r == '{' {
			if start == -1 {
				start = i
			}
			depth++
		} else if r == '}' {
			if start != -1 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
