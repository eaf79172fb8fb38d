package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/pdv3/hybrid-backend/pkg/bootstrap"
	"github.com/pdv3/hybrid-backend/pkg/config"
	"github.com/pdv3/hybrid-backend/pkg/migrations/pdvdb"
	"github.com/pdv3/hybrid-backend/pkg/pgutil"
	mghelper "github.com/pdv3/hybrid-backend/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	args := flag.Args()
	if len(args) > 0 && args[0] == "bootstrap" {
		created, err := bootstrap.EnsureTechnicalAccount(ctx, db, bootstrap.Account{
			Username:    cfg.Bootstrap.Username,
			DisplayName: cfg.Bootstrap.DisplayName,
			Password:    os.Getenv(cfg.Bootstrap.PasswordEnv),
		})
		if err != nil {
			mghelper.Exitf("%s (env=%s)", err.Error(), cfg.Bootstrap.PasswordEnv)
		}
		if created {
			log.Printf("technical account %q created\n", cfg.Bootstrap.Username)
		} else {
			log.Printf("technical account %q already exists\n", cfg.Bootstrap.Username)
		}
		return
	}

	log.Printf("Running migrations for PDV database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, pdvdb.Migrations)

	if err := mghelper.RunMigrations(ctx, migrator, args...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
