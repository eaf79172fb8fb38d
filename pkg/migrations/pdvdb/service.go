// Package pdvdb holds all the migrations for the PDV database
package pdvdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the PDV database
var Migrations = migrate.NewMigrations()
