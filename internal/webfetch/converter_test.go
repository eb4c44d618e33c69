package webfetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToMarkdown(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
<title>Quantum Computing Primer</title>
<script>alert("tracking")</script>
<style>body { color: red }</style>
</head>
<body>
<nav><a href="/home">Home</a></nav>
<h2>Qubits</h2>
<p>A qubit holds a <strong>superposition</strong> of states.</p>
<footer>copyright</footer>
</body>
</html>`

	md, err := ConvertToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "# Quantum Computing Primer")
	assert.Contains(t, md, "Qubits")
	assert.Contains(t, md, "**superposition**")
	assert.NotContains(t, md, "alert")
	assert.NotContains(t, md, "color: red")
	assert.NotContains(t, md, "copyright")
}

func TestConvertToMarkdownNoTitle(t *testing.T) {
	md, err := ConvertToMarkdown("<p>bare fragment</p>")
	require.NoError(t, err)
	assert.Contains(t, md, "bare fragment")
	assert.NotContains(t, md, "# ")
}

func TestCollapseBlankLines(t *testing.T) {
	in := "a\n\n\n\nb\n\nc\n\n"
	assert.Equal(t, "a\n\nb\n\nc", collapseBlankLines(in))
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, looksLikeHTML([]byte("<!DOCTYPE html><html>")))
	assert.True(t, looksLikeHTML([]byte("  <HTML lang=\"en\">")))
	assert.False(t, looksLikeHTML([]byte("plain text body")))
	assert.False(t, looksLikeHTML(nil))
}
