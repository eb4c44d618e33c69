// Package webfetch turns a pasted URL into markdown text suitable for a
// generation request.
package webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "smart-scholar/1.0 (document summarizer)"

	// maxContentSize caps page downloads to keep prompts bounded (10MB).
	maxContentSize = 10 * 1024 * 1024
)

// Client fetches web pages for summarization input.
type Client struct {
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				req.Header.Set("User-Agent", userAgent)
				return nil
			},
		},
		log: log,
	}
}

// FetchMarkdown downloads a page and converts it to markdown. Non-HTML
// responses are returned as plain text.
func (c *Client) FetchMarkdown(ctx context.Context, targetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch failed: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentSize))
	if err != nil {
		return "", fmt.Errorf("read failed: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"url":   targetURL,
		"bytes": len(body),
	}).Debug("fetched page content")

	ct := resp.Header.Get("Content-Type")
	if strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml") || looksLikeHTML(body) {
		return ConvertToMarkdown(string(body))
	}
	return string(body), nil
}

func looksLikeHTML(b []byte) bool {
	head := strings.ToLower(string(b[:min(len(b), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
