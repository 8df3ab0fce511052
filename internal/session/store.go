package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"muse/internal/synth"
)

// State is the in-memory creative session: prompts, batches, selection, and
// refinement modifiers. It has no durable backing; losing the session id
// silently resets it.
type State struct {
	ID              string          `json:"id"`
	Prompt          string          `json:"prompt"`
	EnhancedPrompt  string          `json:"enhanced_prompt"`
	AspectRatio     string          `json:"aspect_ratio"`
	Quality         string          `json:"quality"`
	CurrentBatch    []synth.Image   `json:"current_batch"`
	Selected        *synth.Image    `json:"selected,omitempty"`
	ActiveModifiers []string        `json:"active_modifiers"`
	History         [][]synth.Image `json:"history"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Store holds sessions keyed by id behind a mutex. Handlers mutate state
// synchronously; the synthesis call is the only suspension point and the
// client disables its trigger while a request is outstanding.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*State)}
}

// Ensure returns the session for the id, creating one when the id is empty
// or unknown. The returned id must be echoed back to the caller.
func (s *Store) Ensure(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if _, ok := s.sessions[id]; ok {
			return id
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	s.sessions[id] = &State{ID: id, UpdatedAt: time.Now()}
	return id
}

// Snapshot returns a copy of the session state.
func (s *Store) Snapshot(id string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return State{}, false
	}
	return copyState(sess), true
}

// RecordBatch appends the batch to history, makes it current, and clears any
// selection. History is append-only, newest last.
func (s *Store) RecordBatch(id, prompt, enhanced, aspectRatio, quality string, batch []synth.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreateLocked(id)
	sess.Prompt = prompt
	sess.EnhancedPrompt = enhanced
	sess.AspectRatio = aspectRatio
	sess.Quality = quality
	sess.CurrentBatch = append([]synth.Image(nil), batch...)
	sess.Selected = nil
	sess.History = append(sess.History, append([]synth.Image(nil), batch...))
	sess.UpdatedAt = time.Now()
}

// Select marks one image of the current batch as selected.
func (s *Store) Select(id, imageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	for i := range sess.CurrentBatch {
		if sess.CurrentBatch[i].ID == imageID {
			img := sess.CurrentBatch[i]
			sess.Selected = &img
			sess.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// AddModifiers accumulates modifier ids, preserving order and skipping
// duplicates. Modifiers persist across refinements until reset.
func (s *Store) AddModifiers(id string, ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreateLocked(id)
	for _, m := range ids {
		if m == "" || contains(sess.ActiveModifiers, m) {
			continue
		}
		sess.ActiveModifiers = append(sess.ActiveModifiers, m)
	}
	sess.UpdatedAt = time.Now()
	return append([]string(nil), sess.ActiveModifiers...)
}

// ResetModifiers clears the active modifier list.
func (s *Store) ResetModifiers(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.ActiveModifiers = nil
		sess.UpdatedAt = time.Now()
	}
}

// Clear resets the session to its initial state, keeping the id valid.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		s.sessions[id] = &State{ID: id, UpdatedAt: time.Now()}
	}
}

func (s *Store) getOrCreateLocked(id string) *State {
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &State{ID: id, UpdatedAt: time.Now()}
	s.sessions[id] = sess
	return sess
}

func copyState(sess *State) State {
	out := *sess
	out.CurrentBatch = append([]synth.Image(nil), sess.CurrentBatch...)
	out.ActiveModifiers = append([]string(nil), sess.ActiveModifiers...)
	out.History = make([][]synth.Image, len(sess.History))
	for i, batch := range sess.History {
		out.History[i] = append([]synth.Image(nil), batch...)
	}
	if sess.Selected != nil {
		img := *sess.Selected
		out.Selected = &img
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
