package export

import (
	"os"
	"path/filepath"

	"smart-scholar/internal/export/pptx"
	"smart-scholar/internal/scholar"
)

// WriteDeckPPTX saves the deck as an editable PowerPoint file with one slide
// and one speaker-notes page per deck slide.
func WriteDeckPPTX(dir string, deck scholar.SlideDeck) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", wrapExportErr("pptx", err)
	}
	path := filepath.Join(dir, DeckPPTXName())
	f, err := os.Create(path)
	if err != nil {
		return "", wrapExportErr("pptx", err)
	}
	defer f.Close()

	if err := pptx.Write(f, deck); err != nil {
		_ = os.Remove(path)
		return "", wrapExportErr("pptx", err)
	}
	return path, nil
}
