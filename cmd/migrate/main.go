package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	log := logger.New("migrate").Function("main")
	loadEnvFiles()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseDSN())
	if err != nil {
		log.Er("failed to connect to database", err)
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := run(db, *command, *name, migrationsDir()); err != nil {
		log.Er("migration command failed", err, "command", *command)
		os.Exit(1)
	}
}

func run(db *sql.DB, command, name, dir string) error {
	log := logger.New("migrate").Function("run")

	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		log.Info("migrations applied", "dir", dir)
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("rollback migrations: %w", err)
		}
		log.Info("migrations rolled back", "dir", dir)
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	case "create":
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		log.Info("migration created", "name", name)
	default:
		return fmt.Errorf("unknown command %q: use up, down, status, create", command)
	}
	return nil
}
