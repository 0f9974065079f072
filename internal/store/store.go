package store

import "buildsurge/internal/domain"

// Store persists the full inquiry collection as one unit. Load returns
// records in insertion order; Save replaces the whole collection.
// Implementations do not need to be safe for concurrent use; the
// service serializes access.
type Store interface {
	Load() ([]domain.Inquiry, error)
	Save([]domain.Inquiry) error
}
