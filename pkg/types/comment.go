package types

import "time"

// Comment is a reply on a community post, scoped to its parent via PostID.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	LikesCount int       `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CommentFromRow hydrates a Comment from a store row.
func CommentFromRow(r Row) Comment {
	return Comment{
		ID:         rowString(r, "id"),
		PostID:     rowString(r, "post_id"),
		UserID:     rowString(r, "user_id"),
		AuthorName: rowString(r, "author_name"),
		Content:    rowString(r, "content"),
		LikesCount: rowInt(r, "likes_count"),
		CreatedAt:  rowTime(r, "created_at"),
		UpdatedAt:  rowTime(r, "updated_at"),
	}
}
