// Package sqlite implements the SQLite store backend for Stride. It
// serves the fixed set of collections with generic filtered selects,
// insert-returning-row, partial updates, deletes, and the sample-data
// RPC. Ids, timestamps, the unique like pair, and the denormalized post
// counters are all owned here, never by callers.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/stride-careers/stride/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file created under DataDir.
const dbFileName = "stride.db"

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface over a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist and applies the schema. Existing data is
// kept. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach releases the SQLite connection. After Detach, all operations
// return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// conn returns the live database handle, or ErrStoreDetached.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}

// Select returns all rows in the collection matching the query, in query
// order. Unknown filter or order columns are rejected; no match yields
// an empty slice.
func (b *Backend) Select(collection string, q types.Query) ([]types.Row, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	cols, ok := collections[collection]
	if !ok {
		return nil, types.ErrCollectionNotFound
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	query := "SELECT " + strings.Join(names, ", ") + " FROM " + collection

	var conditions []string
	var args []any
	// Walk the schema order so the generated SQL is deterministic.
	matched := 0
	for _, c := range cols {
		v, ok := q.Filter[c.name]
		if !ok {
			continue
		}
		matched++
		enc, err := encodeValue(c, v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", types.ErrInvalidFilter, err)
		}
		conditions = append(conditions, c.name+" = ?")
		args = append(args, enc)
	}
	if matched != len(q.Filter) {
		return nil, fmt.Errorf("%w: unknown filter column", types.ErrInvalidFilter)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var orders []string
	for _, o := range q.OrderBy {
		if _, ok := lookupColumn(cols, o.Column); !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrInvalidOrder, o.Column)
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		orders = append(orders, o.Column+" "+dir)
	}
	if len(orders) > 0 {
		query += " ORDER BY " + strings.Join(orders, ", ")
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting from %s: %w", collection, err)
	}
	defer rows.Close()

	result := []types.Row{}
	for rows.Next() {
		dests := make([]any, len(cols))
		for i := range dests {
			dests[i] = new(any)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", collection, err)
		}
		row := types.Row{}
		for i, c := range cols {
			row[c.name] = decodeValue(c, *dests[i].(*any))
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s rows: %w", collection, err)
	}
	return result, nil
}

// Insert stores a new row, assigning id, created_at, and updated_at, and
// returns the stored row including columns filled by schema defaults.
// Constraint violations (the unique like pair) surface as errors.
func (b *Backend) Insert(collection string, values types.Row) (types.Row, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	cols, ok := collections[collection]
	if !ok {
		return nil, types.ErrCollectionNotFound
	}

	id := generateUUID()
	now := time.Now().UTC()

	names := []string{"id", "created_at", "updated_at"}
	args := []any{id, now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano)}
	matched := 0
	for _, c := range cols {
		v, ok := values[c.name]
		if !ok {
			continue
		}
		matched++
		if c.name == "id" || c.name == "created_at" || c.name == "updated_at" {
			// Store-assigned columns; caller values are ignored.
			continue
		}
		enc, err := encodeValue(c, v)
		if err != nil {
			return nil, fmt.Errorf("inserting into %s: %w", collection, err)
		}
		names = append(names, c.name)
		args = append(args, enc)
	}
	if matched != len(values) {
		return nil, fmt.Errorf("inserting into %s: unknown column", collection)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := "INSERT INTO " + collection + " (" + strings.Join(names, ", ") +
		") VALUES (" + placeholders + ")"
	if _, err := db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", collection, err)
	}

	return b.selectByID(collection, id)
}

// Update merges the supplied values into the row with the given id and
// refreshes updated_at. Returns ErrNotFound if no row exists.
func (b *Backend) Update(collection string, id string, values types.Row) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	cols, ok := collections[collection]
	if !ok {
		return types.ErrCollectionNotFound
	}
	if id == "" {
		return types.ErrInvalidID
	}
	if err := b.checkExists(db, collection, id); err != nil {
		return err
	}

	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Format(time.RFC3339Nano)}
	matched := 0
	for _, c := range cols {
		v, ok := values[c.name]
		if !ok {
			continue
		}
		matched++
		if c.name == "id" || c.name == "created_at" || c.name == "updated_at" {
			continue
		}
		enc, err := encodeValue(c, v)
		if err != nil {
			return fmt.Errorf("updating %s %s: %w", collection, id, err)
		}
		sets = append(sets, c.name+" = ?")
		args = append(args, enc)
	}
	if matched != len(values) {
		return fmt.Errorf("updating %s %s: unknown column", collection, id)
	}
	args = append(args, id)

	query := "UPDATE " + collection + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("updating %s %s: %w", collection, id, err)
	}
	return nil
}

// Delete removes the row with the given id.
// Returns ErrNotFound if no row exists.
func (b *Backend) Delete(collection string, id string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if _, ok := collections[collection]; !ok {
		return types.ErrCollectionNotFound
	}
	if id == "" {
		return types.ErrInvalidID
	}
	if err := b.checkExists(db, collection, id); err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM "+collection+" WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting %s %s: %w", collection, id, err)
	}
	return nil
}

// Rpc invokes a named server-side procedure. The only procedure served
// is seed_user_sample_data, which populates the attached user's
// collections with sample rows.
func (b *Backend) Rpc(name string) error {
	if _, err := b.conn(); err != nil {
		return err
	}
	if name != types.SeedRPC {
		return fmt.Errorf("%w: %s", types.ErrUnknownRPC, name)
	}
	return b.seed()
}

// selectByID fetches a single row by id.
func (b *Backend) selectByID(collection, id string) (types.Row, error) {
	rows, err := b.Select(collection, types.Query{Filter: map[string]any{"id": id}})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, types.ErrNotFound
	}
	return rows[0], nil
}

// checkExists verifies a row with the given id exists in the collection.
func (b *Backend) checkExists(db *sql.DB, collection, id string) error {
	var one int
	err := db.QueryRow("SELECT 1 FROM "+collection+" WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking %s %s: %w", collection, id, err)
	}
	return nil
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
