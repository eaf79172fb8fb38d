package pdvdb

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/pdv3/hybrid-backend/pkg/pgutil"
	mghelper "github.com/pdv3/hybrid-backend/pkg/pgutil/migrations"
)

func TestPDVDBMigrations_Apply(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{"pdv_sync_status", "usuarios", "bun_migrations"} {
		pgutil.AssertTableExists(t, db, table)
	}

	pgutil.AssertIndexExists(t, db, "idx_pdv_sync_status_last_seen_at")
	pgutil.AssertIndexExists(t, db, "idx_usuarios_usuario_lower")
}

func TestPDVDBMigrations_ErrorsDefaultsToEmptyArray(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := mghelper.RunMigrations(ctx, migrator, "up"); err != nil {
		t.Fatalf("up failed: %v", err)
	}

	// rows written outside the service still get an empty error list
	_, err := db.ExecContext(ctx, `INSERT INTO pdv_sync_status
		(pdv_id, status, total_enviadas, total_recebidas, pending_sales_local, last_seen_at)
		VALUES ('PDV-RAW', 'idle', 0, 0, 0, now())`)
	if err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	var n int
	if err := db.NewRaw("SELECT cardinality(errors) FROM pdv_sync_status WHERE pdv_id = ?", "PDV-RAW").Scan(ctx, &n); err != nil {
		t.Fatalf("failed to read errors: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty errors array, got %d elements", n)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO pdv_sync_status
		(pdv_id, status, total_enviadas, total_recebidas, pending_sales_local, last_seen_at)
		VALUES ('PDV-RAW', 'idle', 0, 0, 0, now())`)
	if err == nil {
		t.Error("expected duplicate pdv_id insert to fail")
	}
}

func TestPDVDBMigrations_Idempotency(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	pgutil.AssertTableExists(t, db, "pdv_sync_status")
	pgutil.AssertTableExists(t, db, "usuarios")
}

func TestPDVDBMigrations_Rollback(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, Migrations)

	for _, cmd := range []string{"init", "up", "status"} {
		if err := mghelper.RunMigrations(ctx, migrator, cmd); err != nil {
			t.Fatalf("RunMigrations(%s) failed: %v", cmd, err)
		}
	}

	// both migrations were applied in one group
	if err := mghelper.RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}

	pgutil.AssertTableNotExists(t, db, "pdv_sync_status")
	pgutil.AssertTableNotExists(t, db, "usuarios")
	pgutil.AssertTableExists(t, db, "bun_migrations")

	ms, err := migrator.MigrationsWithStatus(ctx)
	if err != nil {
		t.Fatalf("MigrationsWithStatus() failed: %v", err)
	}
	if len(ms.Unapplied()) != 2 {
		t.Errorf("expected 2 unapplied migrations after rollback, got %d", len(ms.Unapplied()))
	}
}
