package webfetch

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// ConvertToMarkdown converts an HTML page to markdown, prefixing the document
// title as a heading when one exists. Boilerplate containers are stripped
// first so the model sees article content rather than navigation chrome.
func ConvertToMarkdown(htmlContent string) (string, error) {
	title := ""
	cleaned := htmlContent
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent)); err == nil {
		title = strings.TrimSpace(doc.Find("title").First().Text())
		doc.Find("script, style, noscript, iframe, nav, header, footer, aside, form, svg").Remove()
		if h, err := doc.Html(); err == nil {
			cleaned = h
		}
	}

	markdown, err := htmltomarkdown.ConvertString(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	markdown = collapseBlankLines(markdown)

	if title != "" {
		return "# " + title + "\n\n" + markdown, nil
	}
	return markdown, nil
}

// collapseBlankLines squeezes runs of blank lines down to one.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, ln)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
