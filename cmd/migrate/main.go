// Command migrate applies the shipping schema with golang-migrate.
//
// Migrations are embedded in the binary; -path switches to a directory on
// disk, which is also where create writes new files.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/erp/shipping/internal/infrastructure/migration"
	"github.com/erp/shipping/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "migrations"

var errUsage = errors.New("usage")

// dbCommand runs against a connected migrator
type dbCommand func(m *migration.Migrator, args []string, log *zap.Logger) error

var dbCommands = map[string]dbCommand{
	"up":      func(m *migration.Migrator, _ []string, _ *zap.Logger) error { return m.Up() },
	"down":    func(m *migration.Migrator, _ []string, _ *zap.Logger) error { return m.Down() },
	"step":    stepCommand,
	"goto":    gotoCommand,
	"version": versionCommand,
	"force":   forceCommand,
	"drop":    dropCommand,
}

func main() {
	dir := flag.String("path", "", "Read migrations from this directory instead of the embedded set")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{
		Level:      *logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
		Service:    "shipping-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(args[0], args[1:], *dir, log); err != nil {
		if errors.Is(err, errUsage) {
			log.Error("Invalid arguments", zap.String("command", args[0]), zap.Error(err))
			printUsage()
			os.Exit(2)
		}
		log.Fatal("Migration command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func run(command string, args []string, dir string, log *zap.Logger) error {
	var source fs.FS = migrations.FS
	if dir != "" || command == "create" {
		if dir == "" {
			dir = defaultMigrationsDir
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve migrations path: %w", err)
		}
		dir = abs
		source = os.DirFS(dir)
	}
	log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("migrations_path", dir),
		zap.Bool("embedded", dir == ""),
	)

	switch command {
	case "create":
		return createCommand(dir, args, log)
	case "list":
		return listCommand(source, log)
	}

	cmd, ok := dbCommands[command]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	m, err := migration.New(db, source, log)
	if err != nil {
		return err
	}
	defer m.Close()

	return cmd(m, args, log)
}

func createCommand(dir string, args []string, log *zap.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: create needs a name", errUsage)
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}
	mf, err := migration.CreateMigration(dir, args[0], description)
	if err != nil {
		return err
	}
	log.Info("Migration created",
		zap.String("version", mf.Version),
		zap.String("up_file", mf.UpPath),
		zap.String("down_file", mf.DownPath),
	)
	return nil
}

func listCommand(source fs.FS, log *zap.Logger) error {
	names, err := migration.ListMigrations(source)
	if err != nil {
		return err
	}
	log.Info("Available migrations", zap.Int("count", len(names)))
	for _, name := range names {
		fmt.Println("  -", name)
	}
	return nil
}

func stepCommand(m *migration.Migrator, args []string, _ *zap.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: step needs a count", errUsage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid step count %q", errUsage, args[0])
	}
	return m.Steps(n)
}

func gotoCommand(m *migration.Migrator, args []string, _ *zap.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: goto needs a version", errUsage)
	}
	v, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid version %q", errUsage, args[0])
	}
	return m.GoTo(uint(v))
}

func versionCommand(m *migration.Migrator, _ []string, log *zap.Logger) error {
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if v == 0 {
		log.Info("No migrations applied")
		return nil
	}
	log.Info("Current migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
	return nil
}

func forceCommand(m *migration.Migrator, args []string, _ *zap.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: force needs a version", errUsage)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid version %q", errUsage, args[0])
	}
	return m.Force(v)
}

func dropCommand(m *migration.Migrator, args []string, log *zap.Logger) error {
	if len(args) == 0 || (args[0] != "-confirm" && args[0] != "--confirm") {
		return fmt.Errorf("%w: drop requires -confirm", errUsage)
	}
	log.Warn("Dropping every shipping table")
	return m.Drop()
}

func printUsage() {
	fmt.Println(`Shipping rates migration tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (negative rolls back)
  goto <version>        Migrate to a specific version
  version               Show the current version
  force <version>       Set the version without running migrations
  drop -confirm         Drop every table
  create <name> [desc]  Write a new migration pair under -path
  list                  List available migrations

Flags:
  -path string          Read migrations from a directory instead of the embedded set
  -log-level string     debug, info, warn or error (default: info)

Database settings come from config.toml or SHIP_DATABASE_* variables
(SHIP_DATABASE_HOST, SHIP_DATABASE_PORT, SHIP_DATABASE_USER,
SHIP_DATABASE_PASSWORD, SHIP_DATABASE_DBNAME, SHIP_DATABASE_SSLMODE).

Examples:
  migrate up
  migrate step -1
  migrate -path ./migrations create add_zip_index "Index rate records by zip"`)
}
