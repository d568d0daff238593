// Package workspace implements the entity sync layer: one accessor per
// entity type, each binding the remote store, the object store, the
// identity provider, and the local query cache into the same
// read-through / invalidate-on-mutation contract.
//
// Every operation is a single round trip. Nothing here retries, queues,
// or batches; a store failure is surfaced once, wrapped as a
// *types.RemoteError, and never swallowed. Mutations require a resolved
// principal and, on success, invalidate exactly the cached lists whose
// filter could include the affected row.
package workspace

import (
	"github.com/rs/zerolog"

	"github.com/stride-careers/stride/pkg/cache"
	"github.com/stride-careers/stride/pkg/types"
)

// Workspace bundles the collaborators every accessor shares.
type Workspace struct {
	store    types.Store
	objects  types.ObjectStore
	identity types.Identity
	cache    *cache.Cache
	log      zerolog.Logger
}

// New creates a Workspace over an attached store, an object store, and
// an identity provider. Logging is off by default; see SetLogger.
func New(store types.Store, objects types.ObjectStore, identity types.Identity) *Workspace {
	return &Workspace{
		store:    store,
		objects:  objects,
		identity: identity,
		cache:    cache.New(),
		log:      zerolog.Nop(),
	}
}

// SetLogger routes workspace logging to the given logger.
func (w *Workspace) SetLogger(log zerolog.Logger) {
	w.log = log
}

// Posts returns the accessor for community posts and likes.
func (w *Workspace) Posts() *Posts { return &Posts{ws: w} }

// Comments returns the accessor for post comments.
func (w *Workspace) Comments() *Comments { return &Comments{ws: w} }

// Documents returns the accessor for documents and their payloads.
func (w *Workspace) Documents() *Documents { return &Documents{ws: w} }

// Goals returns the accessor for career goals.
func (w *Workspace) Goals() *Goals { return &Goals{ws: w} }

// Reminders returns the accessor for reminders.
func (w *Workspace) Reminders() *Reminders { return &Reminders{ws: w} }

// Templates returns the accessor for message templates.
func (w *Workspace) Templates() *Templates { return &Templates{ws: w} }

// Seed invokes the store's sample-data procedure for the current
// principal and drops every cached list.
func (w *Workspace) Seed() error {
	if _, err := w.requireUser(); err != nil {
		return err
	}
	if err := w.store.Rpc(types.SeedRPC); err != nil {
		return types.NewRemoteError("rpc", types.SeedRPC, err)
	}
	w.invalidate(
		types.PostsCollection,
		types.CommentsCollection,
		types.LikesCollection,
		types.DocumentsCollection,
		types.GoalsCollection,
		types.RemindersCollection,
		types.TemplatesCollection,
	)
	w.log.Info().Msg("sample data seeded")
	return nil
}

// requireUser resolves the current principal.
// Returns ErrNotAuthenticated when none is resolved; terminal, never
// retried.
func (w *Workspace) requireUser() (string, error) {
	id, ok := w.identity.UserID()
	if !ok {
		return "", types.ErrNotAuthenticated
	}
	return id, nil
}

// authorName resolves the principal's display name from the profiles
// collection. A missing profile, a lookup failure, or an empty full name
// all fall open to Anonymous.
func (w *Workspace) authorName(userID string) string {
	rows, err := w.store.Select(types.ProfilesCollection, types.Query{
		Filter: map[string]any{"user_id": userID},
	})
	if err != nil || len(rows) == 0 {
		return types.AnonymousAuthor
	}
	profile := types.ProfileFromRow(rows[0])
	if profile.FullName == "" {
		return types.AnonymousAuthor
	}
	return profile.FullName
}

// list is the read-through path every accessor shares: cached rows when
// the key is live, otherwise a store select that fills the cache.
func (w *Workspace) list(collection string, q types.Query) ([]types.Row, error) {
	key := cache.Key(collection, q)
	if rows, ok := w.cache.Get(key); ok {
		return rows, nil
	}
	rows, err := w.store.Select(collection, q)
	if err != nil {
		return nil, types.NewRemoteError("select", collection, err)
	}
	w.cache.Put(key, rows)
	return rows, nil
}

// invalidate drops cached lists after a successful mutation. Coarse by
// design: the entire collection, not individual entries.
func (w *Workspace) invalidate(collections ...string) {
	for _, c := range collections {
		w.cache.Invalidate(c)
	}
}
