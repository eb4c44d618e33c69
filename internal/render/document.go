package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	"smart-scholar/internal/scholar"
)

// A4 portrait at 150dpi.
const (
	pageWidth  = 1240
	pageHeight = 1754
	pageMargin = 110.0
)

type densityMetrics struct {
	body    float64
	h1      float64
	h2      float64
	h3      float64
	spacing float64
}

func metricsFor(density string) densityMetrics {
	if density == "compact" {
		return densityMetrics{body: 22, h1: 34, h2: 28, h3: 24, spacing: 1.3}
	}
	return densityMetrics{body: 25, h1: 40, h2: 32, h3: 27, spacing: 1.55}
}

// SummaryPages paginates a summary into A4 raster pages styled by the export
// config, appending a visual page when one is attached and requested.
func SummaryPages(res scholar.SummaryResult, cfg scholar.PdfExportConfig) ([]Page, error) {
	text := res.MarkdownText
	theme := hexOrDefault(cfg.ThemeColor)
	m := metricsFor(cfg.Density)

	pngs, err := paginateSummary(text, res.Language, theme, m)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(pngs)+1)
	for _, b := range pngs {
		b := b
		pages = append(pages, PageFunc(func() ([]byte, error) { return b, nil }))
	}

	if cfg.IncludeVisual && res.VisualData != nil {
		switch res.VisualData.Type {
		case scholar.VisualChart:
			v := *res.VisualData
			pages = append(pages, PageFunc(func() ([]byte, error) { return ChartPNG(v, theme) }))
		case scholar.VisualProcess:
			v := *res.VisualData
			pages = append(pages, PageFunc(func() ([]byte, error) { return TimelinePNG(v, theme) }))
		}
	}
	return pages, nil
}

type summaryLine struct {
	text   string
	size   float64
	bold   bool
	accent bool
	bullet bool
}

func classifyLine(ln string, m densityMetrics) summaryLine {
	switch {
	case strings.HasPrefix(ln, "### "):
		return summaryLine{text: strings.TrimPrefix(ln, "### "), size: m.h3, bold: true}
	case strings.HasPrefix(ln, "## "):
		return summaryLine{text: strings.TrimPrefix(ln, "## "), size: m.h2, bold: true, accent: true}
	case strings.HasPrefix(ln, "# "):
		return summaryLine{text: strings.TrimPrefix(ln, "# "), size: m.h1, bold: true, accent: true}
	case strings.HasPrefix(ln, "- "):
		return summaryLine{text: strings.TrimPrefix(ln, "- "), size: m.body, bullet: true}
	default:
		return summaryLine{text: ln, size: m.body}
	}
}

var boldMarker = strings.NewReplacer("**", "")

func paginateSummary(text string, lang scholar.Language, theme string, m densityMetrics) ([][]byte, error) {
	tr, tg, tb := parseHex(theme)
	gr, gg2, gb := parseHex(secondaryColor)

	var pages [][]byte
	var dc *gg.Context
	y := 0.0

	flush := func() error {
		if dc == nil {
			return nil
		}
		var buf bytes.Buffer
		if err := dc.EncodePNG(&buf); err != nil {
			return fmt.Errorf("page render failed: %w", err)
		}
		pages = append(pages, buf.Bytes())
		dc = nil
		return nil
	}

	newPage := func(withHeader bool) error {
		if err := flush(); err != nil {
			return err
		}
		dc = gg.NewContext(pageWidth, pageHeight)
		dc.SetRGB(1, 1, 1)
		dc.Clear()
		y = pageMargin

		if withHeader {
			headFace, err := face(44, true)
			if err != nil {
				return err
			}
			subFace, err := face(18, false)
			if err != nil {
				return err
			}
			title := "Document Summary"
			if lang == scholar.LangIndonesian {
				title = "Ringkasan Dokumen"
			}
			dc.SetFontFace(headFace)
			dc.SetRGB(0.08, 0.09, 0.12)
			dc.DrawString(title, pageMargin, y+30)
			dc.SetFontFace(subFace)
			dc.SetRGB(0.55, 0.57, 0.6)
			dc.DrawString("Generated by Smart Scholar AI", pageMargin, y+62)
			dc.SetRGB(gr, gg2, gb)
			dc.DrawRectangle(pageMargin, y+84, pageWidth-2*pageMargin, 4)
			dc.Fill()
			y += 140
		}
		return nil
	}

	if err := newPage(true); err != nil {
		return nil, err
	}

	for _, raw := range strings.Split(text, "\n") {
		ln := classifyLine(strings.TrimRight(raw, " \t"), m)
		ln.text = boldMarker.Replace(ln.text)
		if strings.TrimSpace(ln.text) == "" {
			y += ln.size * 0.9
			continue
		}

		f, err := face(ln.size, ln.bold)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(f)

		indent := pageMargin
		wrapWidth := pageWidth - 2*pageMargin
		if ln.bullet {
			indent += 28
			wrapWidth -= 28
		}
		lines := dc.WordWrap(ln.text, wrapWidth)
		blockHeight := float64(len(lines)) * ln.size * m.spacing

		if y+blockHeight > pageHeight-pageMargin {
			if err := newPage(false); err != nil {
				return nil, err
			}
			dc.SetFontFace(f)
		}

		if ln.accent {
			y += ln.size * 0.6
			dc.SetRGB(tr, tg, tb)
		} else {
			dc.SetRGB(0.22, 0.25, 0.29)
		}
		if ln.bullet {
			dc.SetRGB(tr, tg, tb)
			dc.DrawCircle(pageMargin+10, y+ln.size*0.55, 3.5)
			dc.Fill()
			dc.SetRGB(0.22, 0.25, 0.29)
		}
		dc.DrawStringWrapped(ln.text, indent, y, 0, 0, wrapWidth, m.spacing, gg.AlignLeft)
		y += blockHeight + ln.size*0.45
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return pages, nil
}
