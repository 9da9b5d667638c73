package internal

import (
	"context"
	"fmt"
	"sort"
)

// Action enumerates the store operations that resynchronize the remote
// conversation. Dispatch is a closed switch; values outside the set are a
// typed error, not a reflective lookup failure.
type Action int

const (
	ActionFetch Action = iota
	ActionUndo
	ActionRedo
)

func (a Action) String() string {
	switch a {
	case ActionFetch:
		return "fetch"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ConfirmFunc gates integration of a changed asset. It receives the asset
// path and the review diff; returning false skips the update. New assets
// are integrated without confirmation.
type ConfirmFunc func(path string, diff []DiffLine) bool

// Session drives the full cycle against the text-generation service: match
// assets, build a request, send it, extract path-tagged blocks from the
// reply, review and integrate them, push to disk. It also tracks which
// asset paths have been part of the conversation so reset requests can
// resynchronize exactly those.
type Session struct {
	store       *Store
	extractor   *Extractor
	provider    Provider
	transcripts *Transcripts

	threshold float64
	confirm   ConfirmFunc
	tracked   map[string]struct{}
	log       LogFunc
}

type SessionOption func(*Session)

func WithThreshold(threshold float64) SessionOption {
	return func(s *Session) { s.threshold = threshold }
}

func WithConfirm(confirm ConfirmFunc) SessionOption {
	return func(s *Session) { s.confirm = confirm }
}

func WithSessionLog(log LogFunc) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

func NewSession(store *Store, extractor *Extractor, provider Provider, transcripts *Transcripts, opts ...SessionOption) *Session {
	s := &Session{
		store:       store,
		extractor:   extractor,
		provider:    provider,
		transcripts: transcripts,
		threshold:   DefaultMatchThreshold,
		tracked:     make(map[string]struct{}),
		log:         nopLog,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task sends a code-update request built from the assets matching prompt,
// integrates the returned blocks, and pushes the result to disk.
func (s *Session) Task(ctx context.Context, prompt string) error {
	if s.provider == nil {
		return ErrNoProvider
	}

	matched := s.store.Collection().Match(prompt, s.threshold)
	if matched.Len() == 0 {
		return fmt.Errorf("%w for task", ErrNoMatch)
	}
	s.log("assets: %v", matched.Paths())
	s.track(matched.Paths())

	request := UpdateRequest(s.store.Codec(), prompt, matched)
	s.transcripts.SaveRequest(request)

	response, err := s.provider.Complete(ctx, request)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	s.transcripts.SaveResponse(response)

	for _, incoming := range s.extractor.Extract(response).Assets() {
		s.integrate(incoming)
	}

	return s.store.Push()
}

func (s *Session) integrate(incoming Asset) {
	existing, ok := s.store.Collection().Get(incoming.Path)
	if ok && existing.Body == incoming.Body {
		s.log("no changes detected for asset: %s, skipping update", incoming.Path)
		s.track([]string{incoming.Path})
		return
	}

	if ok && s.confirm != nil {
		if !s.confirm(incoming.Path, DiffLines(existing.Body, incoming.Body)) {
			s.log("skipped updating asset: %s", incoming.Path)
			return
		}
	}

	s.store.AddOrUpdate(incoming.Path, incoming.Body)
	s.track([]string{incoming.Path})
}

// Query sends a query request over the matching assets and returns the
// textual reply unmodified.
func (s *Session) Query(ctx context.Context, prompt string) (string, error) {
	if s.provider == nil {
		return "", ErrNoProvider
	}

	matched := s.store.Collection().Match(prompt, s.threshold)
	if matched.Len() == 0 {
		return "", fmt.Errorf("%w for query", ErrNoMatch)
	}
	s.log("assets: %v", matched.Paths())
	s.track(matched.Paths())

	request := QueryRequest(s.store.Codec(), prompt, matched)
	s.transcripts.SaveRequest(request)

	response, err := s.provider.Complete(ctx, request)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	s.transcripts.SaveResponse(response)

	return response, nil
}

// Reset runs one of the store's history/reconciliation actions, then tells
// the service to treat the tracked assets' current state as the latest
// versions. The store operation happens regardless of whether a provider is
// configured; the resynchronization round trip is skipped without one.
func (s *Session) Reset(ctx context.Context, action Action) error {
	switch action {
	case ActionFetch:
		if err := s.store.Fetch(); err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
	case ActionUndo:
		s.store.Undo()
	case ActionRedo:
		s.store.Redo()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	matching := NewCollection()
	for _, a := range s.store.Collection().Assets() {
		if _, ok := s.tracked[a.Path]; ok {
			matching.AddOrUpdate(a)
		}
	}
	if matching.Len() == 0 {
		s.log("no matching assets found")
		return nil
	}
	s.log("assets for %s: %v", action, matching.Paths())

	if s.provider == nil {
		return nil
	}

	request := ResetRequest(s.store.Codec(), matching)
	s.transcripts.SaveRequest(request)

	response, err := s.provider.Complete(ctx, request)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	s.transcripts.SaveResponse(response)

	return nil
}

// Clear drops the tracked asset paths.
func (s *Session) Clear() {
	s.tracked = make(map[string]struct{})
}

// Tracked returns the tracked asset paths, sorted.
func (s *Session) Tracked() []string {
	out := make([]string, 0, len(s.tracked))
	for p := range s.tracked {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (s *Session) track(paths []string) {
	for _, p := range paths {
		s.tracked[p] = struct{}{}
	}
}
