package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"smart-scholar/internal/scholar"
)

// 16:9 slide canvas.
const (
	slideWidth  = 1280
	slideHeight = 720
)

// Carousel is a cursor into a deck's slide sequence, clamped to
// [0, len-1] with no wraparound.
type Carousel struct {
	deck  scholar.SlideDeck
	index int
}

func NewCarousel(deck scholar.SlideDeck) *Carousel {
	return &Carousel{deck: deck}
}

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Current() scholar.Slide { return c.deck.Slides[c.index] }

func (c *Carousel) Next() int {
	if c.index < len(c.deck.Slides)-1 {
		c.index++
	}
	return c.index
}

func (c *Carousel) Prev() int {
	if c.index > 0 {
		c.index--
	}
	return c.index
}

// Goto jumps to a slide, clamping out-of-range targets.
func (c *Carousel) Goto(i int) int {
	if i < 0 {
		i = 0
	}
	if i > len(c.deck.Slides)-1 {
		i = len(c.deck.Slides) - 1
	}
	c.index = i
	return c.index
}

// SlidePNG rasterizes one slide. The title layout centers its content above a
// theme divider; content and split layouts left-align the title behind a side
// accent bar and list bullets beneath it.
func SlidePNG(deck scholar.SlideDeck, idx int) ([]byte, error) {
	if idx < 0 || idx >= len(deck.Slides) {
		return nil, fmt.Errorf("slide index %d out of range", idx)
	}
	slide := deck.Slides[idx]
	accent := hexOrDefault(deck.AccentColor())
	ar, ag, ab := parseHex(accent)

	dc := gg.NewContext(slideWidth, slideHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Corner decorations, faint theme-colored quarter circles.
	dc.SetRGBA(ar, ag, ab, 0.1)
	dc.DrawCircle(slideWidth, 0, 130)
	dc.Fill()
	dc.DrawCircle(0, slideHeight, 100)
	dc.Fill()

	brandFace, err := face(15, true)
	if err != nil {
		return nil, err
	}
	footFace, err := face(16, false)
	if err != nil {
		return nil, err
	}

	// Brand mark.
	dc.SetRGB(ar, ag, ab)
	dc.DrawCircle(64, 56, 12)
	dc.Fill()
	dc.SetFontFace(brandFace)
	dc.SetRGB(0.65, 0.67, 0.7)
	dc.DrawString("SMART SCHOLAR", 86, 61)

	if slide.Layout == scholar.LayoutTitle {
		titleFace, err := face(54, true)
		if err != nil {
			return nil, err
		}
		subFace, err := face(24, false)
		if err != nil {
			return nil, err
		}

		dc.SetFontFace(titleFace)
		dc.SetRGB(0.08, 0.09, 0.12)
		dc.DrawStringWrapped(slide.Title, slideWidth/2, 290, 0.5, 0.5, slideWidth-240, 1.15, gg.AlignCenter)

		dc.SetRGB(ar, ag, ab)
		dc.DrawRectangle(slideWidth/2-48, 372, 96, 5)
		dc.Fill()

		dc.SetFontFace(subFace)
		dc.SetRGB(0.35, 0.38, 0.42)
		y := 420.0
		for _, b := range slide.Bullets {
			dc.DrawStringAnchored(b, slideWidth/2, y, 0.5, 0.5)
			y += 38
		}
	} else {
		// content and split render alike.
		titleFace, err := face(36, true)
		if err != nil {
			return nil, err
		}
		bodyFace, err := face(24, false)
		if err != nil {
			return nil, err
		}

		dc.SetRGB(ar, ag, ab)
		dc.DrawRectangle(80, 104, 6, 48)
		dc.Fill()

		dc.SetFontFace(titleFace)
		dc.SetRGB(0.08, 0.09, 0.12)
		dc.DrawStringWrapped(slide.Title, 104, 106, 0, 0, slideWidth-200, 1.1, gg.AlignLeft)

		dc.SetFontFace(bodyFace)
		dc.SetRGB(0.25, 0.28, 0.32)
		y := 220.0
		for _, b := range slide.Bullets {
			dc.SetRGB(ar, ag, ab)
			dc.DrawCircle(96, y+12, 4)
			dc.Fill()
			dc.SetRGB(0.25, 0.28, 0.32)
			lines := dc.WordWrap(b, slideWidth-240)
			dc.DrawStringWrapped(b, 116, y, 0, 0, slideWidth-240, 1.3, gg.AlignLeft)
			y += float64(len(lines))*31 + 16
			if y > slideHeight-120 {
				break
			}
		}
	}

	// Footer rule and captions.
	dc.SetRGB(0.9, 0.91, 0.93)
	dc.SetLineWidth(1)
	dc.DrawLine(80, slideHeight-70, slideWidth-80, slideHeight-70)
	dc.Stroke()

	footer := slide.Footer
	if footer == "" {
		footer = "Smart Scholar Presentation"
	}
	dc.SetFontFace(footFace)
	dc.SetRGB(0.65, 0.67, 0.7)
	dc.DrawString(footer, 80, slideHeight-42)
	pos := fmt.Sprintf("%d / %d", slide.ID, len(deck.Slides))
	tw, _ := dc.MeasureString(pos)
	dc.DrawString(pos, slideWidth-80-tw, slideHeight-42)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("slide render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// DeckPages exposes every slide as a renderable page for the PDF export.
func DeckPages(deck scholar.SlideDeck) []Page {
	pages := make([]Page, len(deck.Slides))
	for i := range deck.Slides {
		i := i
		pages[i] = PageFunc(func() ([]byte, error) {
			return SlidePNG(deck, i)
		})
	}
	return pages
}
