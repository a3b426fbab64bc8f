// Package repo owns the canonical in-memory weekly plan and synchronizes it
// with durable storage. All plan writes in the application flow through
// Commit; nothing else touches the plan's storage key.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shashankd123/workout-frontend/internal/plan"
	"github.com/shashankd123/workout-frontend/internal/store"
)

// Repository is the single owner of the live plan. Readers get immutable
// snapshots; writers go through Commit. The in-memory value is authoritative
// for the session: a failed durable write is logged, never surfaced, and
// never rolls back an edit.
type Repository struct {
	store store.Store
	log   *slog.Logger

	mu     sync.RWMutex
	plan   plan.WeeklyPlan
	userID string
}

// New creates a Repository. Call Load before serving reads.
func New(s store.Store, log *slog.Logger) *Repository {
	return &Repository{store: s, log: log}
}

// Load hydrates the repository from storage. An absent or unreadable stored
// plan falls back to the built-in default — a missing or corrupt store is
// not a fatal condition. Once the session holds a plan, Load returns it
// without re-reading storage, so a Commit is observed by a following Load
// even when the durable write failed.
func (r *Repository) Load(ctx context.Context) plan.WeeklyPlan {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.plan != nil {
		return r.plan.Clone()
	}

	raw, ok, err := r.store.Get(ctx, store.KeyPlan)
	if err != nil {
		r.log.Warn("plan read failed, using default plan", "error", err)
		r.plan = plan.Default()
		return r.plan.Clone()
	}
	if !ok {
		r.plan = plan.Default()
		return r.plan.Clone()
	}

	var p plan.WeeklyPlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		r.log.Warn("stored plan is corrupt, using default plan", "error", err)
		r.plan = plan.Default()
		return r.plan.Clone()
	}

	r.plan = p.Normalize()
	return r.plan.Clone()
}

// Commit makes p the canonical plan and writes it to storage. The in-memory
// state updates synchronously regardless of whether persistence succeeds.
func (r *Repository) Commit(ctx context.Context, p plan.WeeklyPlan) {
	snapshot := p.Clone()

	r.mu.Lock()
	r.plan = snapshot
	r.mu.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		r.log.Error("plan serialization failed, edit not persisted", "error", err)
		return
	}
	if err := r.store.Set(ctx, store.KeyPlan, string(data)); err != nil {
		r.log.Error("plan write failed, edit kept in memory only", "error", err)
	}
}

// Current returns a snapshot of the live plan. Returns the built-in default
// if Load has not run yet.
func (r *Repository) Current() plan.WeeklyPlan {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.plan == nil {
		return plan.Default()
	}
	return r.plan.Clone()
}

// UserID returns the device identifier, creating and persisting a random
// one on first use. Unlike plan writes, a failure here is surfaced: the
// generation service requires a user ID.
func (r *Repository) UserID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.userID != "" {
		return r.userID, nil
	}

	id, ok, err := r.store.Get(ctx, store.KeyUserID)
	if err != nil {
		return "", fmt.Errorf("reading user id: %w", err)
	}
	if ok && id != "" {
		r.userID = id
		return id, nil
	}

	id = uuid.NewString()
	if err := r.store.Set(ctx, store.KeyUserID, id); err != nil {
		return "", fmt.Errorf("persisting user id: %w", err)
	}
	r.userID = id
	return id, nil
}
