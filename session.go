package postbrief

import (
	"context"
	"sync"
)

// MissingCredentialMessage is shown when no active key is available.
// It prompts credential entry rather than signaling a failure.
const MissingCredentialMessage = "Missing API key. Add your Fireworks API key to proceed."

// Session orchestrates summary requests for one display surface.
//
// At most one generation request is in flight at a time: a new request
// (automatic or regenerate) supersedes the previous one by canceling its
// context, and a completion arriving for a superseded request is
// discarded rather than surfaced.
type Session struct {
	summarizer Summarizer
	creds      *Credentials

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewSession creates a Session around a summarizer and credential state.
func NewSession(summarizer Summarizer, creds *Credentials) *Session {
	return &Session{summarizer: summarizer, creds: creds}
}

// Summarize requests a summary for the post.
//
// With no active key it returns ENOCREDENTIAL immediately, without any
// network call. An EUNAUTHORIZED failure invalidates the active
// credential (evicting a persisted key) before the error is returned.
// Regeneration is the same call again; nothing is cached.
func (s *Session) Summarize(ctx context.Context, post Post, opts SummarizeOptions) (string, error) {
	if s.creds.ActiveKey() == "" {
		return "", Errorf(ENOCREDENTIAL, "%s", MissingCredentialMessage)
	}

	cctx, gen := s.begin(ctx)
	defer s.end(gen)

	text, err := s.summarizer.Summarize(cctx, post, opts)

	if s.superseded(gen) {
		return "", Errorf(EINTERNAL, "request superseded by a newer one")
	}

	if err != nil {
		if ErrorCode(err) == EUNAUTHORIZED {
			if ierr := s.creds.Invalidate(ctx); ierr != nil {
				return "", ierr
			}
		}
		return "", err
	}

	return text, nil
}

// begin registers a new in-flight generation, canceling any previous one,
// and returns its context and generation token.
func (s *Session) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	cctx, cancel := context.WithCancel(ctx)
	s.gen++
	s.cancel = cancel
	return cctx, s.gen
}

// end releases the cancel func for a completed generation if it is still
// the current one.
func (s *Session) end(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == gen && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// superseded reports whether a newer generation has started since gen.
func (s *Session) superseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen != gen
}
