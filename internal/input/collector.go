// Package input gathers and validates the user-supplied content sources and
// encodes files for inclusion in a generative request.
package input

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	rpdf "rsc.io/pdf"

	"smart-scholar/internal/scholar"
)

// EncodedFile is a base64 payload tagged with its MIME type, ready to become
// an inline part of a generation request.
type EncodedFile struct {
	Name     string
	MIMEType string
	Data     string // base64
	Pages    int    // PDF page count, 0 for other types
}

// Bytes decodes the base64 payload back to raw bytes.
func (f EncodedFile) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(f.Data)
}

// Sources is the validated collection of content inputs for one request.
type Sources struct {
	Text         string
	Instructions string
	File         *EncodedFile
	Language     scholar.Language
}

// summaryExts and slideExts mirror the file pickers of the two modes.
var (
	summaryExts = []string{".pdf", ".txt"}
	slideExts   = []string{".pdf", ".txt", ".docx"}
)

// Collect validates and assembles the inputs for the given task. It fails
// with InputValidationError when no content source is present, before any
// network call is made.
func Collect(task scholar.Task, text, filePath, instructions string, lang scholar.Language) (Sources, error) {
	if text == "" && filePath == "" && (task != scholar.TaskSlides || instructions == "") {
		return Sources{}, &scholar.InputValidationError{
			Reason: localizedEmptyInput(lang),
		}
	}
	if lang != scholar.LangIndonesian && lang != scholar.LangEnglish {
		return Sources{}, &scholar.InputValidationError{
			Reason: fmt.Sprintf("unsupported language %q (use ID or EN)", lang),
		}
	}

	src := Sources{Text: text, Instructions: instructions, Language: lang}
	if filePath == "" {
		return src, nil
	}

	if !allowedExt(task, filePath) {
		return Sources{}, &scholar.InputValidationError{
			Reason: fmt.Sprintf("unsupported file type %s for %s", filepath.Ext(filePath), task),
		}
	}
	f, err := EncodeFile(filePath)
	if err != nil {
		return Sources{}, err
	}
	src.File = f
	return src, nil
}

// EncodeFile reads a document and produces its base64 payload and MIME type.
// PDFs are probed for a page count so unreadable files fail here instead of
// at the backend.
func EncodeFile(path string) (*EncodedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &scholar.EncodingError{Path: path, Err: err}
	}
	ext := strings.ToLower(filepath.Ext(path))
	mt := mime.TypeByExtension(ext)
	if mt == "" {
		mt = fallbackMIME(ext)
	}
	// mime.TypeByExtension appends charset params for text types.
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	enc := &EncodedFile{
		Name:     filepath.Base(path),
		MIMEType: mt,
		Data:     base64.StdEncoding.EncodeToString(b),
	}
	if ext == ".pdf" {
		n, err := pdfPageCount(path)
		if err != nil {
			return nil, &scholar.EncodingError{Path: path, Err: err}
		}
		enc.Pages = n
	}
	return enc, nil
}

// IsURL reports whether the free-text input looks like a fetchable address.
func IsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func allowedExt(task scholar.Task, path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	allowed := summaryExts
	if task == scholar.TaskSlides {
		allowed = slideExts
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

func fallbackMIME(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}

func pdfPageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	doc, err := rpdf.NewReader(f, st.Size())
	if err != nil {
		return 0, err
	}
	return doc.NumPage(), nil
}

func localizedEmptyInput(lang scholar.Language) string {
	if lang == scholar.LangIndonesian {
		return "mohon sediakan file, URL, atau instruksi"
	}
	return "please provide a file, URL, or instructions"
}
