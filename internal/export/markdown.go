package export

import (
	"fmt"
	"strings"

	"smart-scholar/internal/render"
	"smart-scholar/internal/scholar"
)

func wrapExportErr(format string, err error) error {
	return &scholar.ExportError{Format: format, Err: err}
}

// WriteMarkdown saves the summary's markdown text verbatim.
func WriteMarkdown(dir string, res scholar.SummaryResult) (string, error) {
	return writeArtifact(dir, SummaryMarkdownName(), []byte(res.MarkdownText), "markdown")
}

// WriteHTML saves a standalone HTML rendering of the summary, honoring the
// export config's font family and accent color.
func WriteHTML(dir string, res scholar.SummaryResult, cfg scholar.PdfExportConfig) (string, error) {
	family := "Georgia, 'Times New Roman', serif"
	if cfg.FontStyle == "sans" {
		family = "'Helvetica Neue', Arial, sans-serif"
	}
	lineHeight := "1.7"
	if cfg.Density == "compact" {
		lineHeight = "1.4"
	}
	title := "Document Summary"
	if res.Language == scholar.LangIndonesian {
		title = "Ringkasan Dokumen"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	fmt.Fprintf(&b, "<style>body{font-family:%s;line-height:%s;max-width:52rem;margin:2rem auto;color:#374151}h1,h2,h3{color:%s}strong{background:rgba(255,255,0,0.1)}</style>\n", family, lineHeight, cfg.ThemeColor)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n<p><em>Generated by Smart Scholar AI</em></p>\n<hr>\n", title)
	b.WriteString(render.MarkdownHTML(res.MarkdownText))
	b.WriteString("\n</body>\n</html>\n")

	return writeArtifact(dir, SummaryHTMLName(), []byte(b.String()), "html")
}
