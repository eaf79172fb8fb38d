package bootstrap

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UsuarioDao maps the subset of the 'usuarios' table needed to provision the technical account.
type UsuarioDao struct {
	bun.BaseModel `bun:"table:usuarios,alias:u"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	Nome          string    `bun:"nome,notnull,type:varchar(120)"`
	Usuario       string    `bun:"usuario,notnull,type:varchar(80)"`
	SenhaHash     string    `bun:"senha_hash,notnull,type:varchar(255)"`
	IsAdmin       bool      `bun:"is_admin,notnull"`
	Ativo         bool      `bun:"ativo,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
