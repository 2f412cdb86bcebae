// Package fireworks provides a postbrief.Summarizer backed by the
// Fireworks chat-completions API.
package fireworks

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mwalczyk/postbrief"
)

// DefaultBaseURL is the chat-completions endpoint.
const DefaultBaseURL = "https://api.fireworks.ai/inference/v1/chat/completions"

// DefaultModel is the model used for every request.
const DefaultModel = "accounts/sentientfoundation/models/dobby-unhinged-llama-3-3-70b-new"

// DefaultTimeout bounds a single generation round trip.
const DefaultTimeout = 60 * time.Second

const (
	maxTokens   = 700
	temperature = 1
)

// EmptyResponseMessage is the fixed fallback shown when the endpoint
// succeeds without usable text.
const EmptyResponseMessage = "No response. Please try again."

// Ensure Summarizer implements postbrief.Summarizer at compile time.
var _ postbrief.Summarizer = (*Summarizer)(nil)

// Summarizer sends single-turn summary requests to the generation
// endpoint. No conversation history is retained between requests.
type Summarizer struct {
	baseURL string
	model   string
	key     func() string
	client  *http.Client
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithBaseURL overrides the endpoint URL. Used by tests to point at a
// local server.
func WithBaseURL(u string) Option {
	return func(s *Summarizer) {
		s.baseURL = u
	}
}

// WithModel overrides the model identifier.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		s.client = &http.Client{Timeout: d}
	}
}

// NewSummarizer creates a Summarizer. The key func is consulted on every
// request so credential changes between requests take effect without
// rebuilding the client.
func NewSummarizer(key func() string, opts ...Option) *Summarizer {
	s := &Summarizer{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		key:     key,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type chatRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize builds the single user message from the post and requests a
// completion. Authorization rejections are reported as EUNAUTHORIZED,
// other non-success statuses as EUPSTREAM with the status code, and a
// success without text as EEMPTY with a fixed fallback message.
func (s *Summarizer) Summarize(ctx context.Context, post postbrief.Post, opts postbrief.SummarizeOptions) (string, error) {
	payload := chatRequest{
		Model:       s.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []message{
			{Role: "user", Content: postbrief.BuildPrompt(post, opts)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EINTERNAL, "failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", postbrief.Errorf(postbrief.EINTERNAL, "failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.key())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EUPSTREAM, "generation request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return "", postbrief.Errorf(postbrief.EUNAUTHORIZED, "API key invalid or expired")
	case resp.StatusCode != http.StatusOK:
		return "", postbrief.Errorf(postbrief.EUPSTREAM, "API error: %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", postbrief.Errorf(postbrief.EUPSTREAM, "failed to decode response: %v", err)
	}

	if len(decoded.Choices) == 0 {
		return "", postbrief.Errorf(postbrief.EEMPTY, "%s", EmptyResponseMessage)
	}

	text := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if text == "" {
		return "", postbrief.Errorf(postbrief.EEMPTY, "%s", EmptyResponseMessage)
	}

	return text, nil
}
