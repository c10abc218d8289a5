package shared

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// CurrentVersion is the schema version this code reads and writes.
	CurrentVersion = 5
	// LegacyVersion is the newest version that cannot be migrated. Stores at or below it are reset.
	LegacyVersion = 3
	// FileSizeVersion introduced recording.file_size.
	FileSizeVersion = 5
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Migration represents one additive schema step that brings a store up to Version.
type Migration struct {
	Version int
	Name    string
	Up      string
}

// loadMigrations reads the numbered files from the embedded filesystem and returns them sorted by version.
//
// Unnumbered files (schema.sql, reset.sql) are not migrations and are skipped.
func loadMigrations() ([]Migration, error) {
	entries, err := schemaFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		// "0005_add_file_size.sql" -> version 5
		prefix, rest, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}

		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}

		content, err := schemaFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(rest, ".sql"),
			Up:      string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration for version %d", migrations[i].Version)
		}
	}

	return migrations, nil
}

// SchemaVersion returns the version tag stored in the database header (PRAGMA user_version).
func SchemaVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Migrate brings the store to [CurrentVersion].
//
// A fresh store (version 0) gets both tables. Stores at or below [LegacyVersion] and stores newer than
// [CurrentVersion] are dropped and recreated, discarding their rows. Anything in between runs the numbered
// migrations it is missing. Every path runs in one transaction together with the version bump, so a failure
// leaves both the tables and the version tag as they were.
func Migrate(db *sql.DB, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	version, err := SchemaVersion(db)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMigrationFailed, err)
	}

	if version == CurrentVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrMigrationFailed, err)
	}
	defer tx.Rollback()

	start := time.Now()
	upgrading := false

	switch {
	case version == 0:
		logger.Debug("creating database", "version", CurrentVersion)
		err = createSchema(tx)
	case version > CurrentVersion:
		logger.Warn("cannot downgrade database, recreating", "from", version, "to", CurrentVersion)
		err = recreateSchema(tx)
	case version <= LegacyVersion:
		logger.Info("deleting old database version", "version", version)
		err = recreateSchema(tx)
	default:
		logger.Info("upgrading database", "from", version, "to", CurrentVersion)
		upgrading = true
		err = upgradeSchema(tx, version, CurrentVersion)
	}
	if err != nil {
		return fmt.Errorf("%w: from version %d: %w", ErrMigrationFailed, version, err)
	}

	if err := setSchemaVersion(tx, CurrentVersion); err != nil {
		return fmt.Errorf("%w: %w", ErrMigrationFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit: %w", ErrMigrationFailed, err)
	}

	if upgrading {
		logger.Info("database upgrade finished", "from", version, "to", CurrentVersion, "duration_ms", time.Since(start).Milliseconds())
	}

	return nil
}

// createSchema creates both tables at the current layout.
func createSchema(tx *sql.Tx) error {
	return execFile(tx, "schema.sql")
}

// recreateSchema drops both tables and creates them again.
func recreateSchema(tx *sql.Tx) error {
	if err := execFile(tx, "reset.sql"); err != nil {
		return err
	}
	return createSchema(tx)
}

// upgradeSchema applies every migration in (from, to].
func upgradeSchema(tx *sql.Tx, from, to int) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= from || m.Version > to {
			continue
		}
		if err := execScript(tx, m.Up); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
	}

	return nil
}

func setSchemaVersion(tx *sql.Tx, version int) error {
	// PRAGMA does not take bound parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

func execFile(tx *sql.Tx, name string) error {
	content, err := schemaFiles.ReadFile(path.Join("sql", name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return execScript(tx, string(content))
}

// execScript executes each statement of a SQL script separately.
func execScript(tx *sql.Tx, script string) error {
	for _, stmt := range strings.Split(removeComments(script), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %w\nStatement: %s", err, stmt)
		}
	}
	return nil
}

// removeComments removes SQL comments from a statement.
func removeComments(sql string) string {
	lines := strings.Split(sql, "\n")
	var result []string
	for _, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
