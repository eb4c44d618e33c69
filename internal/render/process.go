package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"smart-scholar/internal/scholar"
)

// TimelinePNG renders a PROCESS visualization as an alternating left/right
// timeline. Boxes alternate sides and colors by array position; the
// model-provided step number is only the circle label, so out-of-order
// numbering shows up as-is rather than being re-sorted.
func TimelinePNG(v scholar.VisualData, themeColor string) ([]byte, error) {
	if v.Type != scholar.VisualProcess {
		return nil, fmt.Errorf("not a process visualization: %s", v.Type)
	}
	if len(v.Steps) == 0 {
		return nil, fmt.Errorf("process has no steps")
	}

	const (
		width     = 1100.0
		rowHeight = 170.0
		topPad    = 120.0
		boxWidth  = 420.0
		boxHeight = 130.0
	)
	height := topPad + rowHeight*float64(len(v.Steps)) + 40

	dc := gg.NewContext(int(width), int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	theme := hexOrDefault(themeColor)
	tr, tg, tb := parseHex(theme)
	sr, sg, sb := parseHex(secondaryColor)

	titleFace, err := face(30, true)
	if err != nil {
		return nil, err
	}
	headFace, err := face(22, true)
	if err != nil {
		return nil, err
	}
	bodyFace, err := face(17, false)
	if err != nil {
		return nil, err
	}
	numFace, err := face(24, true)
	if err != nil {
		return nil, err
	}

	// Diagram title with accent underline.
	dc.SetFontFace(titleFace)
	dc.SetRGB(tr, tg, tb)
	title := v.Title
	if title == "" {
		title = "Visual Framework"
	}
	dc.DrawStringAnchored(title, width/2, 50, 0.5, 0.5)
	dc.SetLineWidth(3)
	dc.DrawLine(width/2-140, 72, width/2+140, 72)
	dc.Stroke()

	// Center spine.
	dc.SetRGB(0.93, 0.93, 0.95)
	dc.SetLineWidth(6)
	dc.DrawLine(width/2, topPad-20, width/2, height-30)
	dc.Stroke()

	for i, step := range v.Steps {
		cy := topPad + rowHeight*float64(i) + boxHeight/2
		left := i%2 == 0
		r, g, b := tr, tg, tb
		if !left {
			r, g, b = sr, sg, sb
		}

		bx := width/2 - 90 - boxWidth
		if !left {
			bx = width/2 + 90
		}
		by := cy - boxHeight/2

		// Content box with a colored top border.
		dc.SetRGB(0.98, 0.98, 0.99)
		dc.DrawRoundedRectangle(bx, by, boxWidth, boxHeight, 10)
		dc.Fill()
		dc.SetRGB(r, g, b)
		dc.DrawRectangle(bx, by, boxWidth, 6)
		dc.Fill()

		dc.SetFontFace(headFace)
		dc.SetRGB(0.1, 0.1, 0.15)
		dc.DrawStringWrapped(step.Title, bx+16, by+20, 0, 0, boxWidth-32, 1.2, gg.AlignLeft)

		dc.SetFontFace(bodyFace)
		dc.SetRGB(0.35, 0.38, 0.42)
		dc.DrawStringWrapped(truncate(step.Description, 180), bx+16, by+52, 0, 0, boxWidth-32, 1.25, gg.AlignLeft)

		// Numbered circle on the spine.
		dc.SetRGB(r, g, b)
		dc.DrawCircle(width/2, cy, 26)
		dc.Fill()
		dc.SetFontFace(numFace)
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(fmt.Sprintf("%d", step.Step), width/2, cy, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("timeline render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
