package profile

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompleteRequiresAllFiveFields(t *testing.T) {
	full := StyleProfile{
		Palettes: []string{"warm-sunset"},
		Styles:   []string{"abstract"},
		Subjects: []string{"landscapes"},
		Mood:     "calm",
		Room:     "living-room",
	}
	if !full.Complete() {
		t.Fatalf("fully populated profile reported incomplete")
	}

	missing := []StyleProfile{
		{Styles: full.Styles, Subjects: full.Subjects, Mood: full.Mood, Room: full.Room},
		{Palettes: full.Palettes, Subjects: full.Subjects, Mood: full.Mood, Room: full.Room},
		{Palettes: full.Palettes, Styles: full.Styles, Mood: full.Mood, Room: full.Room},
		{Palettes: full.Palettes, Styles: full.Styles, Subjects: full.Subjects, Room: full.Room},
		{Palettes: full.Palettes, Styles: full.Styles, Subjects: full.Subjects, Mood: full.Mood},
	}
	for i, p := range missing {
		if p.Complete() {
			t.Fatalf("profile %d missing a field but reported complete", i)
		}
	}
}

type stubRepo struct {
	saved   map[string]StyleProfile
	loadErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{saved: make(map[string]StyleProfile)}
}

func (r *stubRepo) Load(_ context.Context, clientID string) (*StyleProfile, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if p, ok := r.saved[clientID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *stubRepo) Save(_ context.Context, clientID string, p StyleProfile) error {
	r.saved[clientID] = p
	return nil
}

func (r *stubRepo) Delete(_ context.Context, clientID string) error {
	delete(r.saved, clientID)
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestStoreMemoryOnly(t *testing.T) {
	store := NewStore(nil, testLogger())
	ctx := context.Background()

	if _, ok := store.Get(ctx, "c1"); ok {
		t.Fatalf("empty store returned a profile")
	}
	store.Set(ctx, "c1", StyleProfile{Mood: "calm"})
	p, ok := store.Get(ctx, "c1")
	if !ok || p.Mood != "calm" {
		t.Fatalf("stored profile lost: ok=%v p=%+v", ok, p)
	}
	store.Clear(ctx, "c1")
	if _, ok := store.Get(ctx, "c1"); ok {
		t.Fatalf("cleared profile still present")
	}
}

func TestStoreReadThroughAndWriteThrough(t *testing.T) {
	repo := newStubRepo()
	repo.saved["c1"] = StyleProfile{Room: "office"}
	store := NewStore(repo, testLogger())
	ctx := context.Background()

	p, ok := store.Get(ctx, "c1")
	if !ok || p.Room != "office" {
		t.Fatalf("read-through miss: ok=%v p=%+v", ok, p)
	}

	store.Set(ctx, "c2", StyleProfile{Mood: "bold"})
	if repo.saved["c2"].Mood != "bold" {
		t.Fatalf("write-through did not persist")
	}

	store.Clear(ctx, "c2")
	if _, ok := repo.saved["c2"]; ok {
		t.Fatalf("clear did not delete persisted record")
	}
}

func TestStoreDegradesWhenRepositoryFails(t *testing.T) {
	repo := newStubRepo()
	repo.loadErr = errors.New("connection refused")
	store := NewStore(repo, testLogger())

	if _, ok := store.Get(context.Background(), "c1"); ok {
		t.Fatalf("repository failure should read as unset")
	}
}
