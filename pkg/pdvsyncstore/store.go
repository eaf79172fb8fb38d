// Package pdvsyncstore persists PDV synchronization snapshots in PostgreSQL.
package pdvsyncstore

import (
	"context"

	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
)

// Store defines the persistence operations of the sync status registry.
type Store interface {
	// UpsertStatus inserts the snapshot or fully replaces the existing one for the same pdv_id,
	// atomically.
	UpsertStatus(ctx context.Context, status *pdvsync.Status) error
	// ListStatuses returns every snapshot, most recently seen first.
	ListStatuses(ctx context.Context) ([]*pdvsync.Status, error)
}
