// Package render maps typed results to displayable forms: a restricted
// markdown-to-HTML conversion and PNG rasters for charts, process timelines,
// slides, and paginated summary pages.
package render

import "regexp"

// The renderer recognizes a restricted subset only: **bold**, #/##/###
// headings, literal line breaks, and "- " list items. Substitution order
// matters; later passes must not re-match text introduced by earlier ones.
// Unsupported constructs pass through as literal text.
var (
	mdBold  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	mdH1    = regexp.MustCompile(`(?m)^# (.*)$`)
	mdH2    = regexp.MustCompile(`(?m)^## (.*)$`)
	mdH3    = regexp.MustCompile(`(?m)^### (.*)$`)
	mdBreak = regexp.MustCompile(`\n`)
	mdItem  = regexp.MustCompile(`- ([^<]*)`)
)

// MarkdownHTML converts the markdown subset to HTML. Plain text with no
// markers comes out with only line breaks converted, and a second pass over
// already-rendered plain text changes nothing.
func MarkdownHTML(content string) string {
	out := mdBold.ReplaceAllString(content, `<strong>$1</strong>`)
	out = mdH1.ReplaceAllString(out, `<h1>$1</h1>`)
	out = mdH2.ReplaceAllString(out, `<h2>$1</h2>`)
	out = mdH3.ReplaceAllString(out, `<h3>$1</h3>`)
	out = mdBreak.ReplaceAllString(out, `<br />`)
	out = mdItem.ReplaceAllString(out, `<li>$1</li>`)
	return out
}
