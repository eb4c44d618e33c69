package export

import (
	"smart-scholar/internal/render"
	"smart-scholar/internal/scholar"
)

// WriteSlidePNG rasterizes the slide at the carousel's current position and
// saves it as a PNG snapshot.
func WriteSlidePNG(dir string, deck scholar.SlideDeck, idx int) (string, error) {
	b, err := render.SlidePNG(deck, idx)
	if err != nil {
		return "", wrapExportErr("png", err)
	}
	return writeArtifact(dir, SlidePNGName(deck.Slides[idx].ID), b, "png")
}
