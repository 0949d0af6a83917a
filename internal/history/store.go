package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"vccd/internal/config"
	"vccd/internal/fileutil"
)

// Store manages build history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const buildColumns = "id, source_path, source_sha256, output_path, output_sha256, language, language_tag, entries, blocks, size, created_at"

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx = ensureContext(ctx)
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts b, assigning an ID and timestamp when they are unset.
func (s *Store) Record(ctx context.Context, b *Build) error {
	if b == nil {
		return errors.New("record build: nil build")
	}
	if b.SourcePath == "" || b.OutputPath == "" {
		return errors.New("record build: source and output paths are required")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	_, err := s.execWithRetry(ctx,
		`INSERT INTO builds (`+buildColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID,
		b.SourcePath,
		b.SourceSHA256,
		b.OutputPath,
		b.OutputSHA256,
		nullableString(b.Language),
		nullableString(b.LanguageTag),
		b.Entries,
		b.Blocks,
		b.Size,
		b.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert build: %w", err)
	}
	return nil
}

// Latest returns the most recent build of sourcePath, or nil when none exists.
func (s *Store) Latest(ctx context.Context, sourcePath string) (*Build, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT `+buildColumns+` FROM builds WHERE source_path = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		sourcePath,
	)
	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest build: %w", err)
	}
	return b, nil
}

// List returns builds newest first. A limit <= 0 returns every build.
func (s *Store) List(ctx context.Context, limit int) ([]*Build, error) {
	query := `SELECT ` + buildColumns + ` FROM builds ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	defer rows.Close()

	var builds []*Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// Clear removes every recorded build and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM builds`)
	if err != nil {
		return 0, fmt.Errorf("clear builds: %w", err)
	}
	return res.RowsAffected()
}

// Unchanged reports whether the latest build of sourcePath came from a source
// with digest sourceSHA, was written to outputPath, and that file still
// holds the recorded bytes.
func (s *Store) Unchanged(ctx context.Context, sourcePath, sourceSHA, outputPath string) (bool, error) {
	last, err := s.Latest(ctx, sourcePath)
	if err != nil || last == nil {
		return false, err
	}
	if last.SourceSHA256 != sourceSHA || last.OutputPath != outputPath {
		return false, nil
	}
	sum, err := fileutil.HashFile(outputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return sum == last.OutputSHA256, nil
}

func scanBuild(scanner interface{ Scan(dest ...any) error }) (*Build, error) {
	var (
		b           Build
		language    sql.NullString
		languageTag sql.NullString
		createdRaw  string
	)
	if err := scanner.Scan(
		&b.ID,
		&b.SourcePath,
		&b.SourceSHA256,
		&b.OutputPath,
		&b.OutputSHA256,
		&language,
		&languageTag,
		&b.Entries,
		&b.Blocks,
		&b.Size,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	b.Language = language.String
	b.LanguageTag = languageTag.String
	if ts, err := time.Parse(timeLayout, createdRaw); err == nil {
		b.CreatedAt = ts
	}
	return &b, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
