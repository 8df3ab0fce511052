package profile

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Repository is the optional durable backing for style profiles. Load returns
// (nil, nil) when no record exists for the client.
type Repository interface {
	Load(ctx context.Context, clientID string) (*StyleProfile, error)
	Save(ctx context.Context, clientID string, p StyleProfile) error
	Delete(ctx context.Context, clientID string) error
}

// Store caches style profiles per client with write-through to the repository
// when one is configured. Without a repository it runs memory-only, which is
// the documented mode for unconfigured deployments.
type Store struct {
	mu       sync.Mutex
	profiles map[string]StyleProfile
	repo     Repository
	logger   zerolog.Logger
}

func NewStore(repo Repository, logger zerolog.Logger) *Store {
	return &Store{
		profiles: make(map[string]StyleProfile),
		repo:     repo,
		logger:   logger,
	}
}

// Get returns the client's profile. Cache misses fall through to the
// repository; a repository failure degrades to "not set" rather than erroring.
func (s *Store) Get(ctx context.Context, clientID string) (StyleProfile, bool) {
	s.mu.Lock()
	if p, ok := s.profiles[clientID]; ok {
		s.mu.Unlock()
		return p, true
	}
	s.mu.Unlock()

	if s.repo == nil {
		return StyleProfile{}, false
	}
	p, err := s.repo.Load(ctx, clientID)
	if err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("profile: load failed; treating as unset")
		return StyleProfile{}, false
	}
	if p == nil {
		return StyleProfile{}, false
	}

	s.mu.Lock()
	s.profiles[clientID] = *p
	s.mu.Unlock()
	return *p, true
}

// Set overwrites the client's profile wholesale and persists it immediately.
// Persistence is last-write-wins; concurrent writers are not reconciled.
func (s *Store) Set(ctx context.Context, clientID string, p StyleProfile) {
	s.mu.Lock()
	s.profiles[clientID] = p
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, clientID, p); err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("profile: save failed")
	}
}

// Clear removes the client's profile from cache and backing storage.
func (s *Store) Clear(ctx context.Context, clientID string) {
	s.mu.Lock()
	delete(s.profiles, clientID)
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Delete(ctx, clientID); err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("profile: delete failed")
	}
}
