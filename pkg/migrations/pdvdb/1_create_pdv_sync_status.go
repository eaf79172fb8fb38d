package pdvdb

import (
	"context"
	"log"

	mghelper "github.com/pdv3/hybrid-backend/pkg/pgutil/migrations"
	"github.com/pdv3/hybrid-backend/pkg/pdvsyncstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating pdv_sync_status table...")
		if err := mghelper.CreateSchema(ctx, db, &pdvsyncstore.StatusDao{}); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, "ALTER TABLE pdv_sync_status ALTER COLUMN errors SET DEFAULT '{}'")
		if err != nil {
			return err
		}
		// listing is ordered by recency
		return mghelper.CreateModelIndexes(ctx, db, &pdvsyncstore.StatusDao{}, "last_seen_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping pdv_sync_status table...")
		return mghelper.DropTables(ctx, db, &pdvsyncstore.StatusDao{})
	})
}
