package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wbmirror/wbmirror/internal/model"
)

// FileName is the manifest file name inside the output directory.
const FileName = "wbmirror.db"

// MirrorDB stores the manifest of one or more mirror runs into the same
// output directory.
type MirrorDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite manifest file.
	dbPath string
}

// Options configures MirrorDB behavior.
type Options struct {
	// CreateIfNotExists creates the manifest file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging so the manifest can be queried
	// while a run is writing.
	EnableWAL bool
}

// DefaultOptions returns the default manifest options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the manifest inside dir.
// If CreateIfNotExists is false and no manifest exists, an error is returned.
func Open(dir string, opts Options) (*MirrorDB, error) {
	dbPath := filepath.Join(dir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("manifest not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check manifest path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}

	// SQLite only supports one writer; the crawl is sequential anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	mdb := &MirrorDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := mdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return mdb, nil
}

// Close closes the manifest.
func (mdb *MirrorDB) Close() error {
	return mdb.db.Close()
}

// Path returns the path of the manifest file.
func (mdb *MirrorDB) Path() string {
	return mdb.dbPath
}

// createTables creates the manifest schema if it doesn't exist.
func (mdb *MirrorDB) createTables() error {
	schema := `
	-- Runs record each invocation against this output directory
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed TEXT NOT NULL,
		snapshot_timestamp TEXT NOT NULL,
		started_at DATETIME NOT NULL
	);

	-- Resources record the outcome per distinct archived address.
	-- Re-runs overwrite, matching the mirror tree's overwrite semantics.
	CREATE TABLE IF NOT EXISTS resources (
		archived_url TEXT PRIMARY KEY,
		original_url TEXT NOT NULL,
		local_path TEXT NOT NULL DEFAULT '',
		content_type TEXT NOT NULL DEFAULT '',
		size INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		fetched_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_resources_status ON resources(status);
	`

	_, err := mdb.db.ExecContext(context.Background(), schema)
	return err
}

// RecordRun inserts a run record and returns its ID.
func (mdb *MirrorDB) RecordRun(ctx context.Context, seed, timestamp string, startedAt time.Time) (int64, error) {
	result, err := mdb.db.ExecContext(ctx,
		"INSERT INTO runs (seed, snapshot_timestamp, started_at) VALUES (?, ?, ?)",
		seed, timestamp, startedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return result.LastInsertId()
}

// RecordResource inserts or updates a resource outcome.
// Uses UPSERT so a re-run against the same directory overwrites the
// previous record for the same archived address.
func (mdb *MirrorDB) RecordResource(ctx context.Context, res *model.Resource) error {
	query := `
	INSERT INTO resources (archived_url, original_url, local_path, content_type, size, status, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(archived_url) DO UPDATE SET
		original_url = excluded.original_url,
		local_path = excluded.local_path,
		content_type = excluded.content_type,
		size = excluded.size,
		status = excluded.status,
		fetched_at = excluded.fetched_at
	`

	_, err := mdb.db.ExecContext(ctx, query,
		res.ArchivedURL,
		res.OriginalURL,
		res.LocalPath,
		res.ContentType,
		res.Size,
		string(res.Status),
		res.FetchedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record resource: %w", err)
	}
	return nil
}

// Resources returns all recorded resources ordered by archived address.
func (mdb *MirrorDB) Resources(ctx context.Context) ([]*model.Resource, error) {
	rows, err := mdb.db.QueryContext(ctx, `
		SELECT archived_url, original_url, local_path, content_type, size, status, fetched_at
		FROM resources ORDER BY archived_url`)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var resources []*model.Resource
	for rows.Next() {
		var res model.Resource
		var status string
		if err := rows.Scan(
			&res.ArchivedURL,
			&res.OriginalURL,
			&res.LocalPath,
			&res.ContentType,
			&res.Size,
			&status,
			&res.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		res.Status = model.ResourceStatus(status)
		resources = append(resources, &res)
	}
	return resources, rows.Err()
}

// CountByStatus returns the number of resources with the given status.
func (mdb *MirrorDB) CountByStatus(ctx context.Context, status model.ResourceStatus) (int, error) {
	var count int
	err := mdb.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM resources WHERE status = ?", string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return count, nil
}
