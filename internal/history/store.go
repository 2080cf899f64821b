package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"saveedit/internal/config"
)

// ErrDisabled reports that the history journal is turned off in config.
var ErrDisabled = errors.New("history journal is disabled")

const (
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond

	lockTimeout    = 3 * time.Second
	lockRetryDelay = 50 * time.Millisecond
)

// Entry is one journal row.
type Entry struct {
	ID              string
	Title           string
	SourcePath      string
	Mode            string
	BlockCount      int
	SelectedOrdinal int
	OpenedAt        time.Time
	ExportPath      string
	ExportedAt      time.Time
}

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open connects to the journal database, creating it and applying the
// schema when needed. The sibling lock file serializes CLI invocations.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg == nil || !cfg.History.Enabled || cfg.History.Path == "" {
		return nil, ErrDisabled
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.History.Path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	if !ok {
		return nil, errors.New("history database is locked by another saveedit instance")
	}

	db, err := sql.Open("sqlite", cfg.History.Path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.History.Path, lock: lock}
	if err := store.applySchema(ctx); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// RecordOpen inserts a journal row for a freshly opened session.
func (s *Store) RecordOpen(ctx context.Context, e Entry) error {
	openedAt := e.OpenedAt
	if openedAt.IsZero() {
		openedAt = time.Now().UTC()
	}
	_, err := s.execWithRetry(ctx,
		`INSERT INTO sessions (
            id, title, source_path, mode, block_count, selected_ordinal, opened_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.SourcePath, e.Mode, e.BlockCount, e.SelectedOrdinal,
		openedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// RecordExport marks a journaled session as exported.
func (s *Store) RecordExport(ctx context.Context, sessionID, exportPath string) error {
	res, err := s.execWithRetry(ctx,
		`UPDATE sessions SET export_path = ?, exported_at = ? WHERE id = ?`,
		exportPath, time.Now().UTC().Format(time.RFC3339Nano), sessionID,
	)
	if err != nil {
		return fmt.Errorf("update session export: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no journaled session with id %s", sessionID)
	}
	return nil
}

// Recent returns the newest journal entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, source_path, mode, block_count, selected_ordinal,
                opened_at, export_path, exported_at
         FROM sessions ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			openedAt   string
			exportPath sql.NullString
			exportedAt sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.SourcePath, &e.Mode,
			&e.BlockCount, &e.SelectedOrdinal, &openedAt, &exportPath, &exportedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		e.OpenedAt, _ = time.Parse(time.RFC3339Nano, openedAt)
		if exportPath.Valid {
			e.ExportPath = exportPath.String
		}
		if exportedAt.Valid {
			e.ExportedAt, _ = time.Parse(time.RFC3339Nano, exportedAt.String)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return entries, nil
}

// Clear removes every journal entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res     sql.Result
		execErr error
	)
	delay := busyRetryInitialBackoff
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		if execErr == nil || !isSQLiteBusy(execErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return res, execErr
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == 5 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
