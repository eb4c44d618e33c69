package input

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-scholar/internal/scholar"
)

func TestCollectRejectsEmptyInput(t *testing.T) {
	_, err := Collect(scholar.TaskSummary, "", "", "", scholar.LangEnglish)
	var verr *scholar.InputValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "please provide")

	_, err = Collect(scholar.TaskSummary, "", "", "", scholar.LangIndonesian)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "mohon sediakan")
}

func TestCollectInstructionsOnlyForSlides(t *testing.T) {
	src, err := Collect(scholar.TaskSlides, "", "", "make it funny", scholar.LangEnglish)
	require.NoError(t, err)
	assert.Equal(t, "make it funny", src.Instructions)

	_, err = Collect(scholar.TaskSummary, "", "", "make it funny", scholar.LangEnglish)
	assert.Error(t, err)
}

func TestCollectRejectsUnknownLanguage(t *testing.T) {
	_, err := Collect(scholar.TaskSummary, "some text", "", "", scholar.Language("FR"))
	var verr *scholar.InputValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCollectExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "payload.exe")
	require.NoError(t, os.WriteFile(exe, []byte("x"), 0o644))

	_, err := Collect(scholar.TaskSummary, "", exe, "", scholar.LangEnglish)
	var verr *scholar.InputValidationError
	assert.ErrorAs(t, err, &verr)

	// docx is slides-only.
	docx := filepath.Join(dir, "doc.docx")
	require.NoError(t, os.WriteFile(docx, []byte("x"), 0o644))
	_, err = Collect(scholar.TaskSummary, "", docx, "", scholar.LangEnglish)
	assert.Error(t, err)
	_, err = Collect(scholar.TaskSlides, "", docx, "", scholar.LangEnglish)
	assert.NoError(t, err)
}

func TestEncodeFileText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello scholar"), 0o644))

	f, err := EncodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", f.Name)
	assert.Equal(t, "text/plain", f.MIMEType)
	assert.Equal(t, 0, f.Pages)

	raw, err := f.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "hello scholar", string(raw))
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello scholar")), f.Data)
}

func TestEncodeFileMissing(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "absent.txt"))
	var eerr *scholar.EncodingError
	assert.ErrorAs(t, err, &eerr)
}

func TestEncodeFileBadPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := EncodeFile(path)
	var eerr *scholar.EncodingError
	assert.ErrorAs(t, err, &eerr)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/article"))
	assert.True(t, IsURL("  http://example.com  "))
	assert.False(t, IsURL("example.com"))
	assert.False(t, IsURL("ftp://example.com"))
	assert.False(t, IsURL("just some pasted text"))
	assert.False(t, IsURL(""))
}
