package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

	"github.com/pdv3/hybrid-backend/pkg/pgutil"
	mghelper "github.com/pdv3/hybrid-backend/pkg/pgutil/migrations"
)

func setupDB(t *testing.T) (context.Context, *bun.DB) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &UsuarioDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return ctx, db
}

var technical = Account{
	Username:    "Neotrix",
	DisplayName: "Neotrix Tecnologias",
	Password:    "s3cret-pass",
}

func TestEnsureTechnicalAccount_CreatesOnce(t *testing.T) {
	ctx, db := setupDB(t)

	created, err := EnsureTechnicalAccount(ctx, db, technical)
	if err != nil {
		t.Fatalf("EnsureTechnicalAccount() failed: %v", err)
	}
	if !created {
		t.Fatal("expected account to be created")
	}

	var u UsuarioDao
	if err := db.NewSelect().Model(&u).Where("usuario = ?", "Neotrix").Scan(ctx); err != nil {
		t.Fatalf("failed to load account: %v", err)
	}
	if u.Nome != "Neotrix Tecnologias" || !u.IsAdmin || !u.Ativo {
		t.Fatalf("unexpected account: %+v", u)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	created, err = EnsureTechnicalAccount(ctx, db, technical)
	if err != nil {
		t.Fatalf("second EnsureTechnicalAccount() failed: %v", err)
	}
	if created {
		t.Fatal("expected second call to be a no-op")
	}
	pgutil.AssertRowCount(t, db, "usuarios", 1)
}

func TestEnsureTechnicalAccount_MatchesCaseInsensitively(t *testing.T) {
	ctx, db := setupDB(t)

	existing := &UsuarioDao{
		ID:        uuid.New(),
		Nome:      "Existing",
		Usuario:   "NEOTRIX",
		SenhaHash: "not-a-real-hash",
		Ativo:     false,
	}
	if _, err := db.NewInsert().Model(existing).Exec(ctx); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	created, err := EnsureTechnicalAccount(ctx, db, technical)
	if err != nil {
		t.Fatalf("EnsureTechnicalAccount() failed: %v", err)
	}
	if created {
		t.Fatal("expected existing account to be left alone")
	}

	var u UsuarioDao
	if err := db.NewSelect().Model(&u).Where("usuario = ?", "NEOTRIX").Scan(ctx); err != nil {
		t.Fatalf("failed to load account: %v", err)
	}
	// existing accounts are never modified
	if u.Nome != "Existing" || u.SenhaHash != "not-a-real-hash" || u.IsAdmin {
		t.Fatalf("existing account was modified: %+v", u)
	}
	pgutil.AssertRowCount(t, db, "usuarios", 1)
}

func TestEnsureTechnicalAccount_PasswordRequired(t *testing.T) {
	ctx, db := setupDB(t)

	acct := technical
	acct.Password = ""

	_, err := EnsureTechnicalAccount(ctx, db, acct)
	if !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
	pgutil.AssertRowCount(t, db, "usuarios", 0)
}

func TestEnsureTechnicalAccount_ExistingWithoutPassword(t *testing.T) {
	ctx, db := setupDB(t)

	if _, err := EnsureTechnicalAccount(ctx, db, technical); err != nil {
		t.Fatalf("EnsureTechnicalAccount() failed: %v", err)
	}

	// no password is needed once the account exists
	acct := technical
	acct.Password = ""
	created, err := EnsureTechnicalAccount(ctx, db, acct)
	if err != nil {
		t.Fatalf("expected no error for existing account, got %v", err)
	}
	if created {
		t.Fatal("expected no new account")
	}
}
