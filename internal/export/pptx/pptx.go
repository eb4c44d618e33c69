// Package pptx assembles a PowerPoint file for a slide deck. A .pptx is a zip
// of OOXML parts; this writer emits the fixed scaffolding from parts.go plus
// one slide part and one notes part per deck slide, with shapes positioned to
// mirror the on-screen slide rendering.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"smart-scholar/internal/scholar"
)

// Slide canvas in EMU (16:9, 13.33 x 7.5 inches).
const (
	slideCx = 12192000
	slideCy = 6858000
	emuInch = 914400
)

func emu(inches float64) int64 {
	return int64(inches * emuInch)
}

// Write assembles the deck into a .pptx and streams it to w.
func Write(w io.Writer, deck scholar.SlideDeck) error {
	if len(deck.Slides) == 0 {
		return fmt.Errorf("pptx: deck has no slides")
	}

	zw := zip.NewWriter(w)
	parts := map[string]string{
		"[Content_Types].xml":                          contentTypes(len(deck.Slides)),
		"_rels/.rels":                                  relsRoot,
		"docProps/core.xml":                            coreProps(deckTitle(deck)),
		"docProps/app.xml":                             appProps(len(deck.Slides)),
		"ppt/presentation.xml":                         presentation(len(deck.Slides)),
		"ppt/_rels/presentation.xml.rels":              presentationRels(len(deck.Slides)),
		"ppt/slideMasters/slideMaster1.xml":            slideMaster1,
		"ppt/slideMasters/_rels/slideMaster1.xml.rels": slideMaster1Rels,
		"ppt/slideLayouts/slideLayout1.xml":            slideLayout1,
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels": slideLayout1Rels,
		"ppt/notesMasters/notesMaster1.xml":            notesMaster1,
		"ppt/notesMasters/_rels/notesMaster1.xml.rels": notesMaster1Rels,
		"ppt/theme/theme1.xml":                         theme1,
	}
	for i, s := range deck.Slides {
		n := i + 1
		parts[fmt.Sprintf("ppt/slides/slide%d.xml", n)] = slideXML(deck, s)
		parts[fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n)] = slideRels(n)
		parts[fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n)] = notesSlideXML(s)
		parts[fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", n)] = notesSlideRels(n)
	}

	// Deterministic entry order keeps the archive reproducible.
	for _, name := range sortedKeys(parts) {
		f, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("pptx: create %s: %w", name, err)
		}
		if _, err := io.WriteString(f, parts[name]); err != nil {
			return fmt.Errorf("pptx: write %s: %w", name, err)
		}
	}
	return zw.Close()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contentTypes(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/notesMasters/notesMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
		fmt.Fprintf(&b, `<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, i)
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

func presentation(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, 2+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideCx, slideCy)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRels(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="notesMasters/notesMaster1.xml"/>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 2+i, i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slideRels(n int) string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
		fmt.Sprintf(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide%d.xml"/>`, n) +
		`</Relationships>`
}

func notesSlideRels(n int) string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="../notesMasters/notesMaster1.xml"/>` +
		fmt.Sprintf(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="../slides/slide%d.xml"/>`, n) +
		`</Relationships>`
}

// deckTitle uses the opening slide's title as the document title.
func deckTitle(deck scholar.SlideDeck) string {
	if len(deck.Slides) > 0 && deck.Slides[0].Title != "" {
		return deck.Slides[0].Title
	}
	return "Smart Scholar Presentation"
}

func coreProps(title string) string {
	now := time.Now().UTC().Format(time.RFC3339)
	return xmlHeader + `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + escape(title) + `</dc:title>` +
		`<dc:creator>Smart Scholar</dc:creator>` +
		`<cp:lastModifiedBy>Smart Scholar</cp:lastModifiedBy>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + now + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + now + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

func appProps(slides int) string {
	return xmlHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>Smart Scholar</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, slides) +
		`</Properties>`
}

// box is a shape frame in EMU.
type box struct {
	x, y, cx, cy int64
}

func rect(x, y, w, h float64) box {
	return box{emu(x), emu(y), emu(w), emu(h)}
}

func slideXML(deck scholar.SlideDeck, s scholar.Slide) string {
	accent := hexVal(deck.AccentColor())
	face := fontFace(deck.FontStyle)

	var shapes strings.Builder
	id := 2
	sp := func(x string) {
		shapes.WriteString(x)
		id++
	}

	footer := s.Footer
	if footer == "" {
		footer = "Smart Scholar"
	}
	footerText := fmt.Sprintf("%s | %d", footer, s.ID)

	if s.Layout == scholar.LayoutTitle {
		sp(fillRect(id, "Accent Bar", rect(0, 0, 13.33, 0.27), accent))
		sp(textBox(id, "Title", rect(0.67, 2.3, 12, 1.8), []para{{
			align: "ctr",
			runs:  []run{{text: s.Title, size: 3600, bold: true, color: "1E293B", face: face}},
		}}))
		var body []para
		for _, b := range s.Bullets {
			body = append(body, para{align: "ctr", runs: []run{{text: b, size: 1800, color: "475569", face: face}}})
		}
		if len(body) > 0 {
			sp(textBox(id, "Subtitle", rect(1.33, 4.3, 10.67, 2.0), body))
		}
		sp(textBox(id, "Footer", rect(0.67, 6.95, 12, 0.4), []para{{
			align: "ctr",
			runs:  []run{{text: footerText, size: 1000, color: "94A3B8", face: face}},
		}}))
	} else {
		sp(fillRect(id, "Accent Bar", rect(0, 0.62, 0.27, 1.0), accent))
		sp(textBox(id, "Title", rect(0.67, 0.55, 12, 1.1), []para{{
			runs: []run{{text: s.Title, size: 2400, bold: true, color: "1E293B", face: face}},
		}}))
		var body []para
		for _, b := range s.Bullets {
			body = append(body, para{bullet: true, runs: []run{{text: b, size: 1600, color: "334155", face: face}}})
		}
		if len(body) > 0 {
			sp(textBox(id, "Body", rect(0.67, 1.9, 12, 4.7), body))
		}
		sp(textBox(id, "Footer", rect(0.67, 6.95, 12, 0.4), []para{{
			runs: []run{{text: footerText, size: 1000, color: "94A3B8", face: face}},
		}}))
	}

	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(emptySpTree)
	b.WriteString(shapes.String())
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func notesSlideXML(s scholar.Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:notes xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(emptySpTree)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/>`)
	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	b.WriteString(`<a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>`)
	b.WriteString(escape(s.SpeakerNotes))
	b.WriteString(`</a:t></a:r></a:p>`)
	b.WriteString(`</p:txBody></p:sp>`)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:notes>`)
	return b.String()
}

type run struct {
	text  string
	size  int // hundredths of a point
	bold  bool
	color string
	face  string
}

type para struct {
	align  string // "" or "ctr"
	bullet bool
	runs   []run
}

func fillRect(id int, name string, bx box, color string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`+
		`<a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:ln><a:noFill/></a:ln></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>`,
		id, escape(name), bx.x, bx.y, bx.cx, bx.cy, color)
}

func textBox(id int, name string, bx box, paras []para) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, escape(name))
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, bx.x, bx.y, bx.cx, bx.cy)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	b.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range paras {
		b.WriteString(`<a:p><a:pPr`)
		if p.align != "" {
			fmt.Fprintf(&b, ` algn="%s"`, p.align)
		}
		if p.bullet {
			b.WriteString(` marL="285750" indent="-285750"`)
		}
		b.WriteString(`>`)
		if p.bullet {
			b.WriteString(`<a:buChar char="&#8226;"/>`)
		} else {
			b.WriteString(`<a:buNone/>`)
		}
		b.WriteString(`</a:pPr>`)
		for _, r := range p.runs {
			fmt.Fprintf(&b, `<a:r><a:rPr lang="en-US" sz="%d"`, r.size)
			if r.bold {
				b.WriteString(` b="1"`)
			}
			b.WriteString(` dirty="0">`)
			fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, r.color)
			fmt.Fprintf(&b, `<a:latin typeface="%s"/>`, escape(r.face))
			b.WriteString(`</a:rPr>`)
			fmt.Fprintf(&b, `<a:t>%s</a:t></a:r>`, escape(r.text))
		}
		b.WriteString(`</a:p>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
	return b.String()
}

// hexVal strips the leading # and normalizes to the uppercase 6-digit form
// srgbClr expects.
func hexVal(hex string) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return "1E3A8A"
	}
	return strings.ToUpper(h)
}

// fontFace maps the deck's declared font style onto a typeface that ships
// with every PowerPoint install.
func fontFace(style string) string {
	s := strings.ToLower(style)
	if strings.Contains(s, "serif") && !strings.Contains(s, "sans") {
		return "Georgia"
	}
	return "Arial"
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
