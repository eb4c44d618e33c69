package render

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Page is a renderable region that produces raster bytes (PNG). Exporters
// depend on this seam only, never on a particular drawing backend.
type Page interface {
	PNG() ([]byte, error)
}

// PageFunc adapts a function to the Page interface.
type PageFunc func() ([]byte, error)

func (f PageFunc) PNG() ([]byte, error) { return f() }

// secondaryColor is the gold accent paired with the theme color.
const secondaryColor = "#fbbf24"

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *truetype.Font
	boldFont    *truetype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = truetype.Parse(gobold.TTF)
	})
	return fontErr
}

// face returns a Go font face at the given point size.
func face(size float64, bold bool) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("font load failed: %w", err)
	}
	f := regularFont
	if bold {
		f = boldFont
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// parseHex turns "#rrggbb" into 0..1 RGB components, falling back to the
// scholar navy on malformed input.
func parseHex(hex string) (r, g, b float64) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return parseHex("#1e3a8a")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return parseHex("#1e3a8a")
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255
}

// hexOrDefault normalizes a hex color, substituting the default accent for
// anything malformed.
func hexOrDefault(hex string) string {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return "#1e3a8a"
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "#1e3a8a"
	}
	return "#" + strings.ToLower(s)
}
