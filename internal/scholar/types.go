package scholar

// Language selects the output language for everything the model produces.
type Language string

const (
	LangIndonesian Language = "ID"
	LangEnglish    Language = "EN"
)

// Task discriminates the three generation modes.
type Task string

const (
	TaskSummary   Task = "SUMMARY"
	TaskVisualize Task = "VISUALIZE"
	TaskSlides    Task = "SLIDES"
)

// VisualType tags the VisualData union.
type VisualType string

const (
	VisualProcess VisualType = "PROCESS"
	VisualChart   VisualType = "CHART"
	VisualNone    VisualType = "NONE"
)

// ProcessStep is one entry of a PROCESS visualization. Step is the
// model-assigned number shown as a label; display order follows slice order.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChartPoint is one bar of a CHART visualization.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// VisualData is a tagged union: Steps is set only for PROCESS, ChartData and
// ChartLabel only for CHART, and NONE carries no payload.
type VisualData struct {
	Type       VisualType    `json:"type"`
	Title      string        `json:"title"`
	Steps      []ProcessStep `json:"steps,omitempty"`
	ChartData  []ChartPoint  `json:"chartData,omitempty"`
	ChartLabel string        `json:"chartLabel,omitempty"`
}

// NoVisual is the downgrade value for every failed or malformed
// visualization attempt.
func NoVisual() VisualData {
	return VisualData{Type: VisualNone, Title: ""}
}

// SummaryResult holds a generated summary. VisualData is attached later by an
// independent enrichment call and replaced wholesale, never patched.
type SummaryResult struct {
	MarkdownText string      `json:"markdownText"`
	VisualData   *VisualData `json:"visualData,omitempty"`
	Language     Language    `json:"language"`
}

// SlideLayout values the model may choose per slide.
const (
	LayoutTitle   = "title"
	LayoutContent = "content"
	LayoutSplit   = "split"
)

// Slide is one slide of a deck. SpeakerNotes is required but may be empty.
type Slide struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Bullets      []string `json:"bullets"`
	Footer       string   `json:"footer,omitempty"`
	SpeakerNotes string   `json:"speakerNotes"`
	Layout       string   `json:"layout"`
}

// SlideDeck is the slides-mode deliverable. Slide order is ID order by
// generation convention; the first slide conventionally uses the title layout.
type SlideDeck struct {
	ThemeColor string  `json:"themeColor"`
	FontStyle  string  `json:"fontStyle"`
	Slides     []Slide `json:"slides"`
}

// AccentColor returns the deck theme color, defaulting to the scholar navy.
func (d SlideDeck) AccentColor() string {
	if d.ThemeColor == "" {
		return "#1e3a8a"
	}
	return d.ThemeColor
}

// PdfExportConfig styles the summary PDF export.
type PdfExportConfig struct {
	FontStyle     string // "serif" or "sans"
	ThemeColor    string // hex accent
	Density       string // "comfortable" or "compact"
	IncludeVisual bool
}

// DefaultPdfConfig mirrors the defaults offered before export.
func DefaultPdfConfig() PdfExportConfig {
	return PdfExportConfig{
		FontStyle:     "serif",
		ThemeColor:    "#1e3a8a",
		Density:       "comfortable",
		IncludeVisual: true,
	}
}
