// Package export writes the generated results out as downloadable artifacts:
// Markdown, HTML, image-based PDF, PPTX, and single-slide PNG. Every adapter
// is a read-only projection of the result it is given; a failed export never
// touches displayed state.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// datestamp is the UTC date embedded in artifact filenames.
func datestamp() string {
	return time.Now().UTC().Format("2006-01-02")
}

// SummaryMarkdownName returns e.g. SmartScholar_Summary_2026-08-30.md.
func SummaryMarkdownName() string {
	return fmt.Sprintf("SmartScholar_Summary_%s.md", datestamp())
}

// SummaryHTMLName returns the HTML artifact name.
func SummaryHTMLName() string {
	return fmt.Sprintf("SmartScholar_Summary_%s.html", datestamp())
}

// SummaryPDFName returns the summary PDF artifact name.
func SummaryPDFName() string {
	return fmt.Sprintf("SmartScholar_Summary_%s.pdf", datestamp())
}

// DeckPDFName returns the slides PDF artifact name.
func DeckPDFName() string {
	return fmt.Sprintf("SmartScholar_Slides_%s.pdf", datestamp())
}

// DeckPPTXName returns the PPTX artifact name.
func DeckPPTXName() string {
	return fmt.Sprintf("SmartScholar_%s.pptx", datestamp())
}

// SlidePNGName returns the single-slide PNG artifact name.
func SlidePNGName(slideID int) string {
	return fmt.Sprintf("Slide_%d_%d.png", slideID, time.Now().UTC().Unix())
}

func writeArtifact(dir, name string, data []byte, format string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", wrapExportErr(format, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", wrapExportErr(format, err)
	}
	return path, nil
}
