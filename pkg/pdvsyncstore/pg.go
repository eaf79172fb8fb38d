package pdvsyncstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
)

// replacedColumns are overwritten on every report for an existing pdv_id.
var replacedColumns = []string{
	"status",
	"total_enviadas",
	"total_recebidas",
	"pending_sales_local",
	"errors",
	"started_at",
	"finished_at",
	"app_version",
	"device_name",
	"last_seen_at",
}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the pdv sync status store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// UpsertStatus writes the snapshot with a single INSERT ... ON CONFLICT (pdv_id) DO UPDATE.
// Concurrent first reports for the same terminal therefore collapse into one row and the
// last commit wins.
func (s *pgStore) UpsertStatus(ctx context.Context, st *pdvsync.Status) error {
	dao := toStatusDao(st)

	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewInsert().
			Model(dao).
			On("CONFLICT (pdv_id) DO UPDATE")
		for _, col := range replacedColumns {
			q = q.Set("? = EXCLUDED.?", bun.Ident(col), bun.Ident(col))
		}
		_, err := q.Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert pdv status %q: %w", st.PdvID, err)
	}

	return nil
}

func (s *pgStore) ListStatuses(ctx context.Context) ([]*pdvsync.Status, error) {
	var daos []StatusDao
	err := s.db.NewSelect().
		Model(&daos).
		OrderExpr("? DESC", bun.Ident("last_seen_at")).
		OrderExpr("? ASC", bun.Ident("pdv_id")).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pdv statuses: %w", err)
	}

	statuses := make([]*pdvsync.Status, len(daos))
	for i := range daos {
		statuses[i] = toStatus(&daos[i])
	}
	return statuses, nil
}
