package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shashankd123/workout-frontend/internal/plan"
	"github.com/shashankd123/workout-frontend/internal/store"
)

// memStore is an in-memory Store with switchable failure modes.
type memStore struct {
	mu      sync.Mutex
	data    map[string]string
	failGet bool
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return "", false, errors.New("store unavailable")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("store unavailable")
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestLoadEmptyStore verifies the first Load with nothing persisted returns
// exactly the built-in default plan.
func TestLoadEmptyStore(t *testing.T) {
	r := New(newMemStore(), testLogger())

	got := r.Load(context.Background())

	if !plan.Equal(got, plan.Default()) {
		t.Error("Load on empty store != default plan")
	}
}

// TestCommitLoadRoundTrip verifies a committed plan reads back deep-equal
// through storage in a fresh session.
func TestCommitLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	r := New(s, testLogger())
	p := plan.SetDayTitle(r.Load(ctx), "Monday", "Push Day")
	p = plan.ToggleCompletion(p, "Monday", 0)
	r.Commit(ctx, p)

	// Fresh repository over the same store = new session.
	r2 := New(s, testLogger())
	got := r2.Load(ctx)

	if !plan.Equal(got, p) {
		t.Error("loaded plan != committed plan")
	}
	if got["Monday"].Workout != "Push Day" {
		t.Errorf("workout = %q", got["Monday"].Workout)
	}
	if !got["Monday"].Exercises[0].Completed {
		t.Error("completion state lost in round trip")
	}
}

// TestLoadCorruptStore verifies a malformed stored plan silently falls back
// to the default.
func TestLoadCorruptStore(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	s.data[store.KeyPlan] = `{"Monday": not json`

	r := New(s, testLogger())
	got := r.Load(ctx)

	if !plan.Equal(got, plan.Default()) {
		t.Error("corrupt store did not fall back to default plan")
	}
}

// TestLoadFailingStore verifies a failing read degrades to the default plan
// instead of failing the caller.
func TestLoadFailingStore(t *testing.T) {
	s := newMemStore()
	s.failGet = true

	r := New(s, testLogger())
	got := r.Load(context.Background())

	if !plan.Equal(got, plan.Default()) {
		t.Error("failing store did not fall back to default plan")
	}
}

// TestCommitWriteFailureKeepsMemoryAuthoritative verifies an edit survives
// in memory when the durable write fails, and a Load in the same session
// observes it (read-your-writes).
func TestCommitWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	r := New(s, testLogger())
	p := r.Load(ctx)

	s.failSet = true
	edited := plan.SetDayTitle(p, "Tuesday", "Pull Day")
	r.Commit(ctx, edited)

	if got := r.Current(); got["Tuesday"].Workout != "Pull Day" {
		t.Error("Current does not reflect the failed-write commit")
	}
	if got := r.Load(ctx); got["Tuesday"].Workout != "Pull Day" {
		t.Error("Load in the same session does not observe the commit")
	}
}

// TestCurrentReturnsSnapshot verifies mutating a Current result does not
// leak into the repository.
func TestCurrentReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	r := New(newMemStore(), testLogger())
	r.Load(ctx)

	snap := r.Current()
	snap["Monday"].Exercises[0].Name = "tampered"

	if r.Current()["Monday"].Exercises[0].Name == "tampered" {
		t.Error("Current exposed internal state")
	}
}

// TestUserIDCreateOnce verifies the device ID is created on first use and
// stable afterwards, including across sessions.
func TestUserIDCreateOnce(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	r := New(s, testLogger())
	id1, err := r.UserID(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == "" {
		t.Fatal("empty user id")
	}
	id2, err := r.UserID(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if id2 != id1 {
		t.Errorf("second call returned %q, want %q", id2, id1)
	}

	r2 := New(s, testLogger())
	id3, err := r2.UserID(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if id3 != id1 {
		t.Errorf("new session returned %q, want %q", id3, id1)
	}
}

// TestUserIDStoreFailure verifies identity errors are surfaced, unlike plan
// persistence failures.
func TestUserIDStoreFailure(t *testing.T) {
	s := newMemStore()
	s.failGet = true

	r := New(s, testLogger())
	if _, err := r.UserID(context.Background()); err == nil {
		t.Error("expected error from failing store")
	}
}
