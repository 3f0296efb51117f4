// Command dbsetup creates the schema and optional dummy data. It is a
// development tool and refuses to run against a production environment.
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/inkwell/blog-platform/internal/infrastructure/config"
	"github.com/inkwell/blog-platform/internal/infrastructure/db/postgres"
	"github.com/inkwell/blog-platform/pkg/logger"
)

func main() {
	setup := flag.Bool("setup", false, "create the tables")
	dummy := flag.Bool("dummy", false, "insert dummy data (run once, after -setup)")
	clear := flag.Bool("dangerous-clear", false, "drop all tables")
	flag.Parse()

	// No flags behaves like -setup.
	if !*setup && !*dummy && !*clear {
		*setup = true
	}

	_ = godotenv.Load()

	log := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: true})
	cfg := config.Load(log)

	if cfg.Env == "production" {
		log.Fatal().Msg("refusing to run against a production environment (ENV)")
	}

	ctx := context.Background()
	// The SQL scripts hold several statements per file, which the extended
	// query protocol refuses.
	db, err := postgres.Connect(ctx, postgres.Config{
		Host:           cfg.Postgres.Host,
		Port:           cfg.Postgres.Port,
		User:           cfg.Postgres.User,
		Password:       cfg.Postgres.Password,
		Database:       cfg.Postgres.Database,
		SSLMode:        cfg.Postgres.SSLMode,
		SimpleProtocol: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if *clear {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS blogposts; DROP TABLE IF EXISTS users;`); err != nil {
			log.Fatal().Err(err).Msg("failed to clear database")
		}
		log.Info().Msg("database cleared")
		return
	}

	if *setup {
		if err := execFile(ctx, db, "sql/setup.sql"); err != nil {
			log.Fatal().Err(err).Msg("database setup failed")
		}
		log.Info().Msg("database set up")
	}

	if *dummy {
		if err := execFile(ctx, db, "sql/dummydata.sql"); err != nil {
			log.Fatal().Err(err).Msg("dummy data insert failed (already inserted?)")
		}
		log.Info().Msg("dummy data inserted")
	}
}

func execFile(ctx context.Context, db *sql.DB, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, string(script))
	return err
}
