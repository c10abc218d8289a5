package shared

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory store.
const MemoryPath = ":memory:"

// NewDatabase opens a connection to a SQLite database at the specified path.
// The path can be ":memory:" for an in-memory database, in which case the pool is pinned to a single
// connection so every statement sees the same database.
// Returns an open database connection or an error if connection fails.
func NewDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// ConfigureDatabase sets connection pool settings for the database.
// Recommended for production use to limit connections and improve performance.
func ConfigureDatabase(db *sql.DB, maxOpenConns, maxIdleConns int) {
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
}

// DataSourceName builds the go-sqlite3 DSN for cfg.
//
// The busy timeout lets SQLite's file lock arbitrate between processes sharing the store.
func DataSourceName(cfg DatabaseConfig) string {
	if cfg.Path == MemoryPath || cfg.BusyTimeoutMS <= 0 {
		return cfg.Path
	}
	sep := "?"
	if strings.Contains(cfg.Path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", cfg.Path, sep, cfg.BusyTimeoutMS)
}

// OpenStore opens the recording store described by cfg and brings its schema to [CurrentVersion].
//
// The returned handle is meant to live for the whole process; callers close it on shutdown.
func OpenStore(cfg DatabaseConfig, logger *log.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = log.Default()
	}

	db, err := NewDatabase(DataSourceName(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreOpen, cfg.Path, err)
	}

	if cfg.Path != MemoryPath && (cfg.MaxOpenConns > 0 || cfg.MaxIdleConns > 0) {
		ConfigureDatabase(db, cfg.MaxOpenConns, cfg.MaxIdleConns)
	}

	if err := Migrate(db, WithLogger(logger, "store", cfg.Path)); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
