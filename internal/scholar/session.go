package scholar

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrBusy is returned when a generation is already in flight. The caller is
// expected to disable the trigger, not to queue or cancel.
var ErrBusy = errors.New("a generation is already in flight")

// Session owns the per-run state the UI owned per browser tab: the current
// result, a single-flight guard per operation, and a token that ties late
// enrichment results to the summary they belong to. Results are published by
// single assignment under the lock; a stale visualization is silently dropped.
type Session struct {
	mu sync.Mutex

	token      string
	generating bool
	enriching  bool
	summary    *SummaryResult
	deck       *SlideDeck
}

func NewSession() *Session {
	return &Session{}
}

// Begin marks a primary generation (summary or slides) as in flight and
// clears prior results, like switching back to the collect screen.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return ErrBusy
	}
	s.generating = true
	s.summary = nil
	s.deck = nil
	return nil
}

// PublishSummary atomically installs a fresh summary and returns the token an
// enrichment call must present to attach its result.
func (s *Session) PublishSummary(res SummaryResult) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	s.token = uuid.NewString()
	s.summary = &res
	return s.token
}

// PublishDeck atomically installs a fresh slide deck.
func (s *Session) PublishDeck(deck SlideDeck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	s.deck = &deck
}

// Fail ends an in-flight generation without publishing, leaving prior-screen
// state intact for a retry.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
}

// BeginEnrichment marks the visualization call as in flight. It requires an
// existing summary and is itself single-flight.
func (s *Session) BeginEnrichment() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return errors.New("no summary to enrich")
	}
	if s.enriching {
		return ErrBusy
	}
	s.enriching = true
	return nil
}

// AttachVisual merges a visualization into the current summary by replacing
// the VisualData field wholesale. A result arriving with a token that no
// longer matches (reset or superseded session) is dropped.
func (s *Session) AttachVisual(token string, v VisualData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enriching = false
	if s.summary == nil || token != s.token {
		return false
	}
	res := *s.summary
	res.VisualData = &v
	s.summary = &res
	return true
}

// Summary returns a copy of the current summary, if any.
func (s *Session) Summary() (SummaryResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return SummaryResult{}, false
	}
	return *s.summary, true
}

// Deck returns a copy of the current slide deck, if any.
func (s *Session) Deck() (SlideDeck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deck == nil {
		return SlideDeck{}, false
	}
	return *s.deck, true
}

// Reset drops all results and invalidates outstanding enrichment tokens.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = uuid.NewString()
	s.generating = false
	s.enriching = false
	s.summary = nil
	s.deck = nil
}
