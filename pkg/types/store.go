package types

import "errors"

// Row is the generic record shape exchanged with the Store. Values are
// primitives (string, int64, float64, bool), time.Time for timestamp
// columns, or []string for tag-like columns.
type Row = map[string]any

// Order names a column to sort by and its direction.
type Order struct {
	Column string
	Desc   bool
}

// Query describes a filtered, ordered select against one collection.
// Filters are equality-only; a nil or empty filter matches every row.
type Query struct {
	Filter  map[string]any
	OrderBy []Order
}

// Standard collection names served by every Store backend.
const (
	PostsCollection     = "community_posts"
	CommentsCollection  = "community_comments"
	LikesCollection     = "post_likes"
	DocumentsCollection = "documents"
	GoalsCollection     = "goals"
	RemindersCollection = "reminders"
	TemplatesCollection = "templates"
	ProfilesCollection  = "profiles"
)

// SeedRPC is the only remote procedure a Store must serve. It populates
// the attached user's collections with sample rows.
const SeedRPC = "seed_user_sample_data"

// Store is the remote store client boundary: named collections with
// equality-filtered selects, insert-returning-row, partial update by id,
// delete by id, and RPC invocation. The store owns row ids, timestamps,
// denormalized counters, and uniqueness constraints; callers treat it as
// a black box that either returns rows or fails.
//
// Operations carry no context: the data layer is plain request/response
// with no client-side cancellation or timeout.
type Store interface {
	// Select returns all rows in the collection matching the query,
	// in query order. No match yields an empty slice, not an error.
	Select(collection string, q Query) ([]Row, error)

	// Insert stores a new row, assigning id, created_at, and updated_at.
	// Returns the stored row including the assigned fields.
	Insert(collection string, values Row) (Row, error)

	// Update merges the supplied values into the row with the given id.
	// Columns absent from values keep their prior value; last write wins.
	// Returns ErrNotFound if no row exists with that id.
	Update(collection string, id string, values Row) error

	// Delete removes the row with the given id.
	// Returns ErrNotFound if no row exists with that id.
	Delete(collection string, id string) error

	// Rpc invokes a named server-side procedure with no arguments.
	Rpc(name string) error

	// Attach connects the Store to the backend described by config.
	// Idempotent on first call; returns ErrAlreadyAttached if called
	// while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached      = errors.New("store is detached")
	ErrAlreadyAttached    = errors.New("store is already attached")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrUnknownRPC         = errors.New("unknown rpc")
)

// Store operation errors.
var (
	ErrNotFound      = errors.New("row not found")
	ErrInvalidID     = errors.New("invalid row id")
	ErrInvalidFilter = errors.New("invalid filter value type")
	ErrInvalidOrder  = errors.New("invalid order column")
)
