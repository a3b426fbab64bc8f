// Package store provides durable key/value persistence for the plan and the
// device identity. Two backends exist: a local SQLite file (the default) and
// PostgreSQL for running the daemon against a shared database.
package store

import "context"

// Well-known keys. KeyPlan holds the JSON-serialized weekly plan; KeyUserID
// holds the device identifier, created once and reused.
const (
	KeyPlan   = "workoutPlan"
	KeyUserID = "user_id"
)

// Store is the durable key/value contract. Get reports absence via the bool
// rather than an error; errors mean the store itself failed.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
