package types

import "time"

// Like marks a principal's like on a post. The (PostID, UserID) pair is
// unique; the store enforces the constraint.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeFromRow hydrates a Like from a store row.
func LikeFromRow(r Row) Like {
	return Like{
		ID:        rowString(r, "id"),
		PostID:    rowString(r, "post_id"),
		UserID:    rowString(r, "user_id"),
		CreatedAt: rowTime(r, "created_at"),
	}
}
