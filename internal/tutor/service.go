package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// AdviceInput carries the context of a failing attempt.
type AdviceInput struct {
	LessonTitle string
	Goal        string
	Source      string
	Diagnostic  string
	Output      string
}

// Advice is a short structured explanation for a failing attempt.
type Advice struct {
	Diagnosis  string `json:"diagnosis"`
	Suggestion string `json:"suggestion"`
	Concept    string `json:"concept"`
}

// ServiceConfig tunes advice generation.
type ServiceConfig struct {
	MaxTokens   int
	Temperature float64
}

// Service generates advice asynchronously. The UI polls ConsumeAdvice on
// its tick rather than blocking on the provider.
type Service struct {
	provider Provider
	cfg      ServiceConfig

	mu      sync.Mutex
	pending *Advice
	err     error
	ready   bool
}

// NewService creates an advice generation service.
func NewService(provider Provider, cfg ServiceConfig) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestAdvice starts async advice generation. Only one request is
// in-flight at a time; a new request replaces a pending result.
func (s *Service) RequestAdvice(ctx context.Context, input AdviceInput) {
	go func() {
		advice, err := s.Explain(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = advice
		s.err = err
		s.ready = true
	}()
}

// ConsumeAdvice returns the pending advice if one is ready. Returns
// (nil, false) while generation is still in flight or nothing was
// requested. After consumption the pending slot is cleared.
func (s *Service) ConsumeAdvice() (*Advice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	advice := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return advice, advice != nil
}

// LastError reports the error from the most recent completed generation,
// if any. Cleared by ConsumeAdvice.
func (s *Service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Explain generates advice synchronously. The TUI goes through
// RequestAdvice/ConsumeAdvice instead; this is the path for callers that
// can block, like the tutor subcommand.
func (s *Service) Explain(ctx context.Context, input AdviceInput) (*Advice, error) {
	req := Request{
		System: adviceSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildAdviceUserMessage(input)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var advice Advice
	if err := json.Unmarshal(resp.Content, &advice); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}

	return &advice, nil
}
