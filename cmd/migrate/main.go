// Command migrate applies and authors database schema migrations.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/inventorydb/backend/internal/infrastructure/config"
	"github.com/inventorydb/backend/internal/infrastructure/logger"
	"github.com/inventorydb/backend/internal/infrastructure/migration"
	"github.com/inventorydb/backend/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

// errUsage marks argument errors that should print the usage text
var errUsage = errors.New("invalid usage")

func main() {
	var (
		migrationsPath string
		logLevel       string
		embedded       bool
	)

	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (default: ./migrations)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&embedded, "embedded", false, "Use the migrations compiled into the binary instead of -path")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	path, err := filepath.Abs(resolveMigrationsPath(migrationsPath))
	if err != nil {
		log.Fatal("Failed to get absolute path", zap.Error(err))
	}

	log.Info("Migration CLI started",
		zap.String("command", args[0]),
		zap.String("migrations_path", path),
		zap.Bool("embedded", embedded),
	)

	if err := run(args, path, embedded, log); err != nil {
		if errors.Is(err, errUsage) {
			log.Error(err.Error())
			printUsage()
			os.Exit(1)
		}
		log.Fatal("Migration command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

// resolveMigrationsPath falls back to ./migrations, then to the directory two
// levels above the executable.
func resolveMigrationsPath(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(defaultMigrationsPath); err == nil {
		return defaultMigrationsPath
	}
	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), "..", "..", defaultMigrationsPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return defaultMigrationsPath
}

func run(args []string, path string, embedded bool, log *zap.Logger) error {
	command, rest := args[0], args[1:]

	// Commands that only touch the filesystem
	switch command {
	case "create":
		if len(rest) < 1 {
			return fmt.Errorf("%w: migration name required, usage: migrate create <name> [description]", errUsage)
		}
		description := ""
		if len(rest) > 1 {
			description = rest[1]
		}
		mf, err := migration.CreateMigration(path, rest[0], description)
		if err != nil {
			return err
		}
		log.Info("Migration created successfully",
			zap.String("version", mf.Version),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath),
		)
		return nil

	case "list":
		names, err := migration.ListMigrations(path)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			log.Info("No migrations found")
			return nil
		}
		log.Info("Available migrations", zap.Int("count", len(names)))
		for _, name := range names {
			fmt.Println("  -", name)
		}
		return nil
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

	var m *migration.Migrator
	if embedded {
		m, err = migration.NewFromFS(db, migrations.FS, log)
	} else {
		m, err = migration.New(db, path, log)
	}
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up()

	case "down":
		return m.Down()

	case "step":
		if len(rest) < 1 {
			return fmt.Errorf("%w: step count required, usage: migrate step <n>", errUsage)
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("%w: invalid step count %q", errUsage, rest[0])
		}
		return m.Steps(n)

	case "goto":
		if len(rest) < 1 {
			return fmt.Errorf("%w: version required, usage: migrate goto <version>", errUsage)
		}
		version, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid version %q", errUsage, rest[0])
		}
		return m.GoTo(uint(version))

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		if version == 0 {
			log.Info("No migrations applied")
			return nil
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
		return nil

	case "force":
		if len(rest) < 1 {
			return fmt.Errorf("%w: version required, usage: migrate force <version>", errUsage)
		}
		version, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("%w: invalid version %q", errUsage, rest[0])
		}
		log.Warn("Forcing migration version - use with caution!")
		return m.Force(version)

	case "drop":
		if !hasConfirm(rest) {
			return fmt.Errorf("%w: drop cancelled, use 'migrate drop -confirm' to confirm", errUsage)
		}
		log.Warn("Dropping all database objects")
		return m.Drop()
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, command)
}

func hasConfirm(args []string) bool {
	for _, arg := range args {
		if arg == "-confirm" || arg == "--confirm" {
			return true
		}
	}
	return false
}

func printUsage() {
	fmt.Println(`Inventory Database Migration Tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (positive=up, negative=down)
  goto <version>        Migrate to a specific version
  version               Show current migration version
  force <version>       Force set migration version (use with caution)
  drop -confirm         Drop all database objects (DANGEROUS)
  create <name> [desc]  Create a new migration file pair
  list                  List available migrations

Flags:
  -path string          Path to migrations directory (default: ./migrations)
  -embedded             Use the migrations compiled into the binary
  -log-level string     Log level: debug, info, warn, error (default: info)

Environment Variables:
  INVENTORY_DATABASE_HOST, INVENTORY_DATABASE_PORT, INVENTORY_DATABASE_USER,
  INVENTORY_DATABASE_PASSWORD, INVENTORY_DATABASE_DBNAME, INVENTORY_DATABASE_SSLMODE

Examples:
  # Apply all pending migrations
  migrate up

  # Roll back the last migration
  migrate step -1

  # Create a new migration
  migrate create add_supplier_column "Add supplier to products"

  # Check current version
  migrate version`)
}
