package history

import "context"

// Repository stores transfer attempts.
type Repository interface {
	// Save inserts r together with its recipients and files.
	Save(ctx context.Context, r *Record) error

	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Get returns the record with the given local id or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*Record, error)
}
