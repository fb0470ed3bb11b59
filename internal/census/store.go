package census

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"hex-tribes/pkg/sims/hexlife"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrBatchNotFound is returned when a batch id has no stored runs.
var ErrBatchNotFound = errors.New("census batch not found")

// Store persists census batches in SQLite.
type Store struct {
	conn *sqlx.DB
}

// Batch is one stored batch header.
type Batch struct {
	ID        string
	CreatedAt time.Time
	Runs      int
}

type runRow struct {
	ID             string `db:"id"`
	BatchID        string `db:"batch_id"`
	Seed           int64  `db:"seed"`
	Generator      string `db:"generator"`
	Size           int    `db:"size"`
	Generations    int    `db:"generations"`
	Extinct        bool   `db:"extinct"`
	PeakAlive      int    `db:"peak_alive"`
	PopulationJSON string `db:"population_json"`
}

// Open opens or creates a SQLite database at path and applies pending
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// migrate runs each embedded migration at most once, recording applied files
// in schema_migrations.
func (s *Store) migrate() error {
	if _, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}
	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, file := range files {
		var applied int
		err := s.conn.Get(&applied, "SELECT COUNT(*) FROM schema_migrations WHERE name = ?", file)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied > 0 {
			continue
		}
		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		tx, err := s.conn.Beginx()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)",
			file, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// upSection returns the SQL between the Up and Down markers.
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	if i := strings.Index(content, up); i >= 0 {
		content = content[i+len(up):]
	}
	if i := strings.Index(content, down); i >= 0 {
		content = content[:i]
	}
	return content
}

// SaveBatch stores results under batchID in a single transaction.
func (s *Store) SaveBatch(ctx context.Context, batchID string, results []Result) error {
	if strings.TrimSpace(batchID) == "" {
		return fmt.Errorf("batch id is required")
	}
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch %s: %w", batchID, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO census_batches (id, created_at, runs) VALUES (?, ?, ?)",
		batchID, time.Now().UTC().UnixMilli(), len(results),
	); err != nil {
		return fmt.Errorf("insert batch %s: %w", batchID, err)
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO census_runs
		(id, batch_id, seed, generator, size, generations, extinct, peak_alive, population_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range results {
		population, err := json.Marshal(r.Population)
		if err != nil {
			return fmt.Errorf("encode population for seed %d: %w", r.Seed, err)
		}
		extinct := 0
		if r.Extinct {
			extinct = 1
		}
		if _, err := stmt.ExecContext(ctx, r.RunID, batchID, r.Seed, string(r.Generator), r.Size,
			r.Generations, extinct, r.PeakAlive, string(population)); err != nil {
			return fmt.Errorf("insert run %s: %w", r.RunID, err)
		}
	}
	return tx.Commit()
}

// ListRuns returns the runs of a batch in seed order.
func (s *Store) ListRuns(ctx context.Context, batchID string) ([]Result, error) {
	var rows []runRow
	if err := s.conn.SelectContext(ctx, &rows,
		`SELECT id, batch_id, seed, generator, size, generations, extinct, peak_alive, population_json
		FROM census_runs WHERE batch_id = ? ORDER BY seed`, batchID); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	if len(rows) == 0 {
		var exists int
		if err := s.conn.GetContext(ctx, &exists, "SELECT COUNT(*) FROM census_batches WHERE id = ?", batchID); err != nil {
			return nil, fmt.Errorf("lookup batch: %w", err)
		}
		if exists == 0 {
			return nil, fmt.Errorf("%w: %s", ErrBatchNotFound, batchID)
		}
	}
	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		var population []int
		if err := json.Unmarshal([]byte(row.PopulationJSON), &population); err != nil {
			return nil, fmt.Errorf("decode population for run %s: %w", row.ID, err)
		}
		results = append(results, Result{
			RunID:       row.ID,
			Seed:        row.Seed,
			Generator:   hexlife.Generator(row.Generator),
			Size:        row.Size,
			Generations: row.Generations,
			Extinct:     row.Extinct,
			PeakAlive:   row.PeakAlive,
			Population:  population,
		})
	}
	return results, nil
}

// ListBatches returns stored batch headers, newest first.
func (s *Store) ListBatches(ctx context.Context) ([]Batch, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT id, created_at, runs FROM census_batches ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var batches []Batch
	for rows.Next() {
		var (
			b       Batch
			created int64
		)
		if err := rows.Scan(&b.ID, &created, &b.Runs); err != nil {
			return nil, err
		}
		b.CreatedAt = time.UnixMilli(created).UTC()
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
