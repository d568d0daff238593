package types

// Identity supplies the current authenticated principal. Every mutating
// operation in the sync layer requires a resolved principal; absence is
// a terminal ErrNotAuthenticated, not a retryable condition.
type Identity interface {
	// UserID returns the current principal's id, or ok=false when no
	// principal is resolved.
	UserID() (id string, ok bool)
}

// StaticIdentity resolves to a fixed user id. The CLI uses it with the
// user id from config; tests use it directly.
type StaticIdentity string

// UserID returns the fixed id; an empty StaticIdentity resolves nothing.
func (s StaticIdentity) UserID() (string, bool) {
	if s == "" {
		return "", false
	}
	return string(s), true
}
