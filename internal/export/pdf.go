package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"smart-scholar/internal/render"
	"smart-scholar/internal/scholar"
)

// WritePDF rasterizes the given pages and assembles them into a paginated,
// image-based PDF, one page per rendered region.
func WritePDF(dir, name string, pages []render.Page) (string, error) {
	if len(pages) == 0 {
		return "", wrapExportErr("pdf", fmt.Errorf("nothing to export"))
	}

	imgs := make([]io.Reader, 0, len(pages))
	for i, p := range pages {
		b, err := p.PNG()
		if err != nil {
			return "", wrapExportErr("pdf", fmt.Errorf("page %d: %w", i+1, err))
		}
		imgs = append(imgs, bytes.NewReader(b))
	}

	imp, err := api.Import("form:A4, pos:c, scale:0.95 rel", types.POINTS)
	if err != nil {
		return "", wrapExportErr("pdf", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", wrapExportErr("pdf", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", wrapExportErr("pdf", err)
	}
	defer f.Close()

	if err := api.ImportImages(nil, f, imgs, imp, nil); err != nil {
		// Remove the partial file; exports must not leave corrupt artifacts.
		_ = os.Remove(path)
		return "", wrapExportErr("pdf", err)
	}
	return path, nil
}

// WriteSummaryPDF paginates and saves the summary as a PDF.
func WriteSummaryPDF(dir string, res scholar.SummaryResult, cfg scholar.PdfExportConfig) (string, error) {
	pages, err := render.SummaryPages(res, cfg)
	if err != nil {
		return "", wrapExportErr("pdf", err)
	}
	return WritePDF(dir, SummaryPDFName(), pages)
}

// WriteDeckPDF saves the deck as a PDF, one page per slide.
func WriteDeckPDF(dir string, deck scholar.SlideDeck) (string, error) {
	return WritePDF(dir, DeckPDFName(), render.DeckPages(deck))
}
