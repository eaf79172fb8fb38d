// Package bootstrap provisions the technical admin account used by online PDVs to auto-login.
// It runs from the migrate command only; the API server never touches it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordRequired is returned when the account must be created but no password was given.
var ErrPasswordRequired = errors.New("bootstrap password is required to create the technical account")

// Account describes the technical account to provision.
type Account struct {
	Username    string
	DisplayName string
	Password    string
}

// EnsureTechnicalAccount creates the account unless a user with the same login
// (case-insensitive) already exists. Existing accounts are never modified.
// It reports whether a new row was inserted.
func EnsureTechnicalAccount(ctx context.Context, db bun.IDB, acct Account) (bool, error) {
	exists, err := db.NewSelect().
		Model((*UsuarioDao)(nil)).
		Where("lower(usuario) = lower(?)", acct.Username).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check technical account: %w", err)
	}
	if exists {
		return false, nil
	}

	if acct.Password == "" {
		return false, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(acct.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	res, err := db.NewInsert().
		Model(&UsuarioDao{
			ID:        uuid.New(),
			Nome:      acct.DisplayName,
			Usuario:   acct.Username,
			SenhaHash: string(hash),
			IsAdmin:   true,
			Ativo:     true,
		}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to create technical account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to create technical account: %w", err)
	}
	return n > 0, nil
}
