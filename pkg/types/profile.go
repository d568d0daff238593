package types

import "time"

// Profile is the human-readable identity behind a principal. The data
// layer only reads profiles, to denormalize FullName onto posts and
// comments at creation time.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileFromRow hydrates a Profile from a store row.
func ProfileFromRow(r Row) Profile {
	return Profile{
		ID:        rowString(r, "id"),
		UserID:    rowString(r, "user_id"),
		FullName:  rowString(r, "full_name"),
		CreatedAt: rowTime(r, "created_at"),
		UpdatedAt: rowTime(r, "updated_at"),
	}
}
