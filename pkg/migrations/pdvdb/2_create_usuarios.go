package pdvdb

import (
	"context"
	"log"

	"github.com/pdv3/hybrid-backend/pkg/bootstrap"
	mghelper "github.com/pdv3/hybrid-backend/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating usuarios table...")
		if err := mghelper.CreateSchema(ctx, db, &bootstrap.UsuarioDao{}); err != nil {
			return err
		}
		// logins are matched case-insensitively
		return mghelper.CreateModelExprIndex(ctx, db, &bootstrap.UsuarioDao{}, "usuario_lower", "lower(usuario)", true)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping usuarios table...")
		return mghelper.DropTables(ctx, db, &bootstrap.UsuarioDao{})
	})
}
