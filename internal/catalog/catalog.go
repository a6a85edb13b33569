package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"photo-viewer/internal/logging"
)

// Default timeout for catalog operations
const defaultTimeout = 5 * time.Second

// ErrNotFound is returned when an asset id does not exist in the catalog.
var ErrNotFound = errors.New("asset not found")

// Catalog is the SQLite-backed asset store acting as the data-fetch
// collaborator for the viewer.
type Catalog struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// Open creates a Catalog instance. dbPath must be the full path to the
// database file and its parent directory must already exist and be writable;
// use startup.LoadConfig to validate directories first.
func Open(ctx context.Context, dbPath string) (*Catalog, error) {
	logging.Info("Catalog path: %s", dbPath)

	// WAL mode and a busy timeout prevent "database is locked" errors when
	// the status surface reads while an ingest is writing.
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close catalog after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to connect to catalog: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	c := &Catalog{db: db, dbPath: dbPath}

	if err := c.initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close catalog after initialization failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize catalog schema: %w", err)
	}

	logging.Info("Catalog initialized successfully at %s", dbPath)
	return c, nil
}

func (c *Catalog) initialize(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS assets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		primary_ref TEXT NOT NULL UNIQUE,
		fallback_ref TEXT,
		created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
		updated_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);

	CREATE INDEX IF NOT EXISTS idx_assets_filename ON assets(filename COLLATE NOCASE);
	`

	execCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.db.ExecContext(execCtx, schema)
	return err
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Upsert inserts or updates an asset keyed by its primary reference and
// fills in the assigned id. The record is validated first.
func (c *Catalog) Upsert(ctx context.Context, asset *Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	query := `
		INSERT INTO assets (filename, width, height, primary_ref, fallback_ref, updated_at)
		VALUES (?, ?, ?, ?, NULLIF(?, ''), strftime('%s', 'now'))
		ON CONFLICT(primary_ref) DO UPDATE SET
			filename = excluded.filename,
			width = excluded.width,
			height = excluded.height,
			fallback_ref = excluded.fallback_ref,
			updated_at = excluded.updated_at
	`

	execCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.db.ExecContext(execCtx, query,
		asset.Filename, asset.Width, asset.Height, asset.PrimaryRef, asset.FallbackRef); err != nil {
		return fmt.Errorf("failed to upsert asset %s: %w", asset.Filename, err)
	}

	row := c.db.QueryRowContext(execCtx, "SELECT id FROM assets WHERE primary_ref = ?", asset.PrimaryRef)
	if err := row.Scan(&asset.ID); err != nil {
		return fmt.Errorf("failed to read back asset id for %s: %w", asset.PrimaryRef, err)
	}
	return nil
}

// Get returns a single asset by id.
func (c *Catalog) Get(ctx context.Context, id int64) (Asset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	queryCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := c.db.QueryRowContext(queryCtx,
		"SELECT id, filename, width, height, primary_ref, COALESCE(fallback_ref, '') FROM assets WHERE id = ?", id)

	var asset Asset
	if err := row.Scan(&asset.ID, &asset.Filename, &asset.Width, &asset.Height,
		&asset.PrimaryRef, &asset.FallbackRef); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Asset{}, ErrNotFound
		}
		return Asset{}, fmt.Errorf("failed to get asset %d: %w", id, err)
	}
	return asset, nil
}

// List returns all assets ordered by filename.
func (c *Catalog) List(ctx context.Context) ([]Asset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	queryCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(queryCtx,
		"SELECT id, filename, width, height, primary_ref, COALESCE(fallback_ref, '') FROM assets ORDER BY filename COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logging.Warn("failed to close asset rows: %v", err)
		}
	}()

	var assets []Asset
	for rows.Next() {
		var asset Asset
		if err := rows.Scan(&asset.ID, &asset.Filename, &asset.Width, &asset.Height,
			&asset.PrimaryRef, &asset.FallbackRef); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// Count returns the number of assets in the catalog.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	queryCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var count int
	if err := c.db.QueryRowContext(queryCtx, "SELECT COUNT(*) FROM assets").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

// Delete removes assets by id in a single transaction and returns the number
// of rows deleted. Ids not present in the catalog are skipped silently.
func (c *Catalog) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	execCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	result, err := c.db.ExecContext(execCtx,
		"DELETE FROM assets WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete assets: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	logging.Debug("Catalog deleted %d of %d requested assets", deleted, len(ids))
	return deleted, nil
}
